package planner

import "meal-planner/internal/models"

func dish(name string, kcal, protein, carbs, fat float64, ingredients ...models.Ingredient) models.Dish {
	return models.Dish{
		Name:         name,
		CaloriesKcal: kcal,
		ProteinG:     protein,
		CarbsG:       carbs,
		FatG:         fat,
		Ingredients:  ingredients,
	}
}

func ing(name string, grams float64) models.Ingredient {
	return models.Ingredient{Name: name, Grams: grams}
}

func testCatalog() *models.Catalog {
	return &models.Catalog{
		Dishes: map[models.MealType][]models.Dish{
			models.Breakfast: {
				dish("Porridge", 350, 10, 60, 7, ing("oats", 80), ing("milk", 250)),
				dish("Eggs on Toast", 420, 25, 30, 20, ing("eggs", 150), ing("bread", 80)),
			},
			models.Lunch: {
				dish("Chicken Salad", 450, 40, 15, 22, ing("chicken", 180), ing("lettuce", 100)),
				dish("Pasta", 600, 15, 90, 14, ing("pasta", 120)),
			},
			models.Dinner: {
				dish("Salmon", 620, 42, 40, 28, ing("salmon", 180), ing("rice", 80)),
				dish("Chicken Rice", 580, 45, 60, 12, ing("chicken", 150), ing("rice", 90)),
			},
			models.Snack: {
				dish("Apple", 95, 0, 25, 0, ing("apple", 180)),
				dish("Shake", 220, 30, 12, 5, ing("protein powder", 35), ing("milk", 250)),
			},
		},
		Products: []models.Product{
			{Name: "Rolled Oats", Quantity: "1000g"},
			{Name: "Whole Milk", Quantity: "1000ml"},
			{Name: "Milk (small)", Quantity: "500ml"},
			{Name: "Chicken Breast", Quantity: "500g"},
			{Name: "Chicken Breast (small)", Quantity: "250g"},
			{Name: "Lettuce", Quantity: "1 head"},
			{Name: "Basmati Rice", Quantity: "1000g"},
		},
	}
}
