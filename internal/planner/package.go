// internal/planner/package.go
package planner

import (
	"regexp"
	"strconv"
	"strings"
)

// Fixed weights for package descriptors that do not state grams.
const (
	GramsPerPiece = 200
	LoafGrams     = 800
	HalfLoafGrams = 400
)

var (
	gramsPattern  = regexp.MustCompile(`^(\d+)\s*g$`)
	piecesPattern = regexp.MustCompile(`^(\d+)\s*pieces$`)
	mlPattern     = regexp.MustCompile(`^(\d+)\s*ml$`)
)

// ParsePackageGrams converts a product quantity descriptor into grams.
// Unrecognised descriptors yield 0, which marks the package as unusable for
// quantity math.
func ParsePackageGrams(quantity string) float64 {
	q := strings.ToLower(strings.TrimSpace(quantity))

	if m := gramsPattern.FindStringSubmatch(q); m != nil {
		return leadingInt(m[1])
	}
	if strings.Contains(q, "pieces") {
		if m := piecesPattern.FindStringSubmatch(q); m != nil {
			return leadingInt(m[1]) * GramsPerPiece
		}
		return 0
	}
	if strings.Contains(q, "loaf") {
		if strings.Contains(q, "half") {
			return HalfLoafGrams
		}
		return LoafGrams
	}
	if strings.Contains(q, "ml") {
		if m := mlPattern.FindStringSubmatch(q); m != nil {
			return leadingInt(m[1])
		}
	}
	return 0
}

func leadingInt(digits string) float64 {
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0
	}
	return float64(n)
}
