// internal/models/shopping.go
package models

// ShoppingItem is the purchase recommendation for one consolidated ingredient.
// RawAmount is set when no product matched at all. A matched product whose
// package size could not be parsed is still reported, with a zero Count.
type ShoppingItem struct {
	Ingredient    string   `json:"ingredient"`
	RequiredGrams float64  `json:"required_grams"`
	RawAmount     bool     `json:"raw_amount"`
	Product       *Product `json:"selected_product,omitempty"`
	Count         int      `json:"count,omitempty"`
	PackageGrams  float64  `json:"package_grams,omitempty"`
	CoveredGrams  float64  `json:"covered_grams,omitempty"`
}

// Purchase is one line of the "products to buy" list: a product and how many
// packages of it cover every ingredient it was matched to.
type Purchase struct {
	Product       Product  `json:"product"`
	Count         int      `json:"count"`
	RequiredGrams float64  `json:"required_grams"`
	Ingredients   []string `json:"ingredients"`
}
