// internal/planner/matcher.go
package planner

import (
	"math"
	"sort"
	"strings"

	"meal-planner/internal/models"
)

const smallSuffix = " (small)"

// Matches reports whether product is a candidate for ingredient: either the
// ingredient name appears in the product name, or the product name (without a
// trailing " (small)") appears in the ingredient name. Case is ignored.
func Matches(ingredient string, product models.Product) bool {
	ing := strings.ToLower(ingredient)
	name := strings.ToLower(product.Name)
	if strings.Contains(name, ing) {
		return true
	}
	return strings.Contains(ing, strings.TrimSuffix(name, smallSuffix))
}

// Candidates returns the products matching ingredient, small packages first
// and catalog order otherwise.
func Candidates(ingredient string, products []models.Product) []models.Product {
	var out []models.Product
	for _, p := range products {
		if Matches(ingredient, p) {
			out = append(out, p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return isSmall(out[i]) && !isSmall(out[j])
	})
	return out
}

func isSmall(p models.Product) bool {
	return strings.Contains(strings.ToLower(p.Name), "small")
}

// Resolve picks the product and package count whose covered amount lands
// closest to grams. Ties go to the earlier candidate.
func Resolve(ingredient string, grams float64, products []models.Product) models.ShoppingItem {
	item := models.ShoppingItem{
		Ingredient:    ingredient,
		RequiredGrams: grams,
	}

	candidates := Candidates(ingredient, products)
	if len(candidates) == 0 {
		item.RawAmount = true
		return item
	}

	best := -1
	bestDeviation := math.Inf(1)
	var bestCount int
	var bestSize float64
	for i, p := range candidates {
		size := ParsePackageGrams(p.Quantity)
		if size <= 0 {
			continue
		}
		count := int(math.Ceil(grams / size))
		deviation := math.Abs(size*float64(count) - grams)
		if deviation < bestDeviation {
			best, bestDeviation = i, deviation
			bestCount, bestSize = count, size
		}
	}

	if best < 0 {
		// Matched, but no candidate has a usable package size.
		product := candidates[0]
		item.Product = &product
		return item
	}

	product := candidates[best]
	item.Product = &product
	item.Count = bestCount
	item.PackageGrams = bestSize
	item.CoveredGrams = bestSize * float64(bestCount)
	return item
}

// ShoppingList resolves every consolidated ingredient, keeping their order.
func ShoppingList(ingredients models.Ingredients, products []models.Product) []models.ShoppingItem {
	items := make([]models.ShoppingItem, 0, len(ingredients))
	for _, ing := range ingredients {
		items = append(items, Resolve(ing.Name, ing.Grams, products))
	}
	return items
}

// Purchases groups matched shopping items by product. Products sharing a
// name but not a package size stay separate. Count covers the summed grams
// of every grouped ingredient, so it can be lower than the sum of the
// per-item counts.
func Purchases(items []models.ShoppingItem) []models.Purchase {
	out := []models.Purchase{}
	index := make(map[models.Product]int)

	for _, item := range items {
		if item.Product == nil {
			continue
		}
		i, ok := index[*item.Product]
		if !ok {
			i = len(out)
			index[*item.Product] = i
			out = append(out, models.Purchase{Product: *item.Product})
		}
		out[i].RequiredGrams += item.RequiredGrams
		out[i].Ingredients = append(out[i].Ingredients, item.Ingredient)
	}

	for i := range out {
		if size := ParsePackageGrams(out[i].Product.Quantity); size > 0 {
			out[i].Count = int(math.Ceil(out[i].RequiredGrams / size))
		}
	}
	return out
}
