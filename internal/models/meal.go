// internal/models/meal.go
package models

type MealType string

const (
	Breakfast MealType = "breakfast"
	Lunch     MealType = "lunch"
	Dinner    MealType = "dinner"
	Snack     MealType = "snack"
)

// MealTypes lists every meal type in display order.
var MealTypes = []MealType{Breakfast, Lunch, Dinner, Snack}

func (t MealType) Valid() bool {
	switch t {
	case Breakfast, Lunch, Dinner, Snack:
		return true
	}
	return false
}

func ParseMealType(s string) (MealType, bool) {
	t := MealType(s)
	return t, t.Valid()
}

type Dish struct {
	Name         string      `json:"name" yaml:"name"`
	CaloriesKcal float64     `json:"calories_kcal" yaml:"calories_kcal"`
	ProteinG     float64     `json:"protein_g" yaml:"protein_g"`
	CarbsG       float64     `json:"carbs_g" yaml:"carbs_g"`
	FatG         float64     `json:"fat_g" yaml:"fat_g"`
	Ingredients  Ingredients `json:"ingredients" yaml:"ingredients"`
}

type DailyNutrition struct {
	CaloriesKcal float64 `json:"calories_kcal"`
	ProteinG     float64 `json:"protein_g"`
	CarbsG       float64 `json:"carbs_g"`
	FatG         float64 `json:"fat_g"`
}

type Product struct {
	Name        string `json:"product" yaml:"product"`
	Quantity    string `json:"quantity" yaml:"quantity"` // package size, e.g. "500g", "6 pieces", "1 loaf"
	Description string `json:"description" yaml:"description"`
}

// Catalog is the static reference data the planner works from. It is never
// mutated once loaded.
type Catalog struct {
	Dishes   map[MealType][]Dish `json:"dishes" yaml:"dishes"`
	Products []Product           `json:"products" yaml:"products"`
}

// FindDish looks a dish up by name within one meal type.
func (c *Catalog) FindDish(t MealType, name string) (Dish, bool) {
	for _, dish := range c.Dishes[t] {
		if dish.Name == name {
			return dish, true
		}
	}
	return Dish{}, false
}
