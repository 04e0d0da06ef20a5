// internal/planner/ingredients.go
package planner

import "meal-planner/internal/models"

// Consolidate sums ingredient amounts across the selected dishes. Names are
// matched exactly and the result is ordered by first appearance, walking meal
// types in display order.
func Consolidate(sel Selection) models.Ingredients {
	out := models.Ingredients{}
	index := make(map[string]int)

	for _, t := range models.MealTypes {
		dish, ok := sel[t]
		if !ok {
			continue
		}
		for _, ing := range dish.Ingredients {
			if i, seen := index[ing.Name]; seen {
				out[i].Grams += ing.Grams
				continue
			}
			index[ing.Name] = len(out)
			out = append(out, ing)
		}
	}
	return out
}
