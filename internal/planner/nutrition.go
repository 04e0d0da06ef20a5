// internal/planner/nutrition.go
package planner

import "meal-planner/internal/models"

// Aggregate sums the nutrition facts of every selected dish. Values are not
// rounded.
func Aggregate(sel Selection) models.DailyNutrition {
	var total models.DailyNutrition
	for _, t := range models.MealTypes {
		dish, ok := sel[t]
		if !ok {
			continue
		}
		total.CaloriesKcal += dish.CaloriesKcal
		total.ProteinG += dish.ProteinG
		total.CarbsG += dish.CarbsG
		total.FatG += dish.FatG
	}
	return total
}
