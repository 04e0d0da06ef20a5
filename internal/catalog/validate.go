// internal/catalog/validate.go
package catalog

import (
	"errors"
	"fmt"
	"math"

	"meal-planner/internal/models"
)

var ErrInvalidCatalog = errors.New("invalid catalog")

func invalid(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidCatalog, fmt.Sprintf(format, args...))
}

// Validate checks the assumptions the planner relies on: every meal type has
// at least one dish, dish names are unique per meal type, nutrition is
// non-negative and every ingredient amount is positive.
func Validate(c *models.Catalog) error {
	if c == nil {
		return invalid("catalog is nil")
	}

	for t := range c.Dishes {
		if !t.Valid() {
			return invalid("unknown meal type %q", t)
		}
	}

	for _, t := range models.MealTypes {
		dishes := c.Dishes[t]
		if len(dishes) == 0 {
			return invalid("no dishes for %s", t)
		}

		names := make(map[string]bool, len(dishes))
		for i, dish := range dishes {
			if dish.Name == "" {
				return invalid("%s dish %d has no name", t, i)
			}
			if names[dish.Name] {
				return invalid("duplicate %s dish %q", t, dish.Name)
			}
			names[dish.Name] = true

			if err := validateDish(dish); err != nil {
				return invalid("%s dish %q: %v", t, dish.Name, err)
			}
		}
	}

	for i, p := range c.Products {
		if p.Name == "" {
			return invalid("product %d has no name", i)
		}
	}

	return nil
}

func validateDish(dish models.Dish) error {
	facts := []struct {
		name  string
		value float64
	}{
		{"calories_kcal", dish.CaloriesKcal},
		{"protein_g", dish.ProteinG},
		{"carbs_g", dish.CarbsG},
		{"fat_g", dish.FatG},
	}
	for _, f := range facts {
		if f.value < 0 || math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return fmt.Errorf("%s must be a non-negative number, got %v", f.name, f.value)
		}
	}

	seen := make(map[string]bool, len(dish.Ingredients))
	for _, ing := range dish.Ingredients {
		if ing.Name == "" {
			return errors.New("ingredient with empty name")
		}
		if seen[ing.Name] {
			return fmt.Errorf("duplicate ingredient %q", ing.Name)
		}
		seen[ing.Name] = true

		if !(ing.Grams > 0) || math.IsInf(ing.Grams, 0) {
			return fmt.Errorf("ingredient %q amount must be positive, got %v", ing.Name, ing.Grams)
		}
	}
	return nil
}
