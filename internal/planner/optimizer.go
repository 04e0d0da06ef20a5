// internal/planner/optimizer.go
package planner

import (
	"errors"
	"fmt"
	"math"

	"meal-planner/internal/models"
)

// ProteinWeight scales protein deviation against calorie deviation in Score.
const ProteinWeight = 20

var ErrEmptyMealType = errors.New("catalog has no dishes for meal type")

type Target struct {
	Calories float64 `json:"calorie_target"`
	Protein  float64 `json:"protein_target"`
}

type Result struct {
	Selection    Selection `json:"-"`
	Score        float64   `json:"score"`
	InitialScore float64   `json:"initial_score"`
}

// Score measures how far a selection is from target; lower is better.
func Score(sel Selection, target Target) float64 {
	n := Aggregate(sel)
	return math.Abs(n.CaloriesKcal-target.Calories) + ProteinWeight*math.Abs(n.ProteinG-target.Protein)
}

// Optimize starts from the first dish of every meal type and, one meal type at
// a time, swaps in any dish that strictly lowers the score. Earlier meal types
// are not revisited, so the result is a local optimum.
func Optimize(catalog *models.Catalog, target Target) (Result, error) {
	best := make(Selection, len(models.MealTypes))
	for _, t := range models.MealTypes {
		dishes := catalog.Dishes[t]
		if len(dishes) == 0 {
			return Result{}, fmt.Errorf("%w: %s", ErrEmptyMealType, t)
		}
		best[t] = dishes[0]
	}

	initial := Score(best, target)
	bestScore := initial

	for _, t := range models.MealTypes {
		for _, dish := range catalog.Dishes[t] {
			candidate := best.Clone()
			candidate[t] = dish
			if score := Score(candidate, target); score < bestScore {
				best, bestScore = candidate, score
			}
		}
	}

	return Result{
		Selection:    best,
		Score:        bestScore,
		InitialScore: initial,
	}, nil
}
