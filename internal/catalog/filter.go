// Package catalog implements the storefront's product filter engine: a pure
// recomputation over the full product list, run every time a filter input or
// the catalog itself changes.
package catalog

import (
	"strconv"
	"strings"

	"go-giftstore-api/internal/product"
)

// CategoryAll is the sentinel value of the legacy single-category dropdown
// meaning "no restriction".
const CategoryAll = "All"

// FilterSpec is the set of active predicates. Predicates are combined with
// logical AND; within a multi-valued set the match is a logical OR. An empty
// set or empty search string means that predicate is inactive.
type FilterSpec struct {
	// PriceRange is an inclusive [min, max] bound. An inverted range
	// (min > max) matches nothing; bounds are never swapped.
	PriceRange [2]float64 `json:"priceRange"`

	// Categories is the sidebar multi-select. Exact membership test.
	Categories []string `json:"selectedCategories"`

	// Subcategories mirrors Categories for the subcategory level.
	Subcategories []string `json:"selectedSubcategories"`

	// Search is a free-text query matched case-insensitively as a substring
	// of name, category, subcategory, description and the decimal form of
	// the price.
	Search string `json:"search"`

	// Category is the legacy single-select dropdown kept for backward
	// compatibility. Unlike Categories it is a case-insensitive substring
	// match, not an exact one.
	Category string `json:"selectedCategory"`
}

// Filter returns the products satisfying every active predicate of spec,
// preserving the input order. It never mutates products and never fails;
// malformed specs simply match nothing.
func Filter(products []product.Product, spec FilterSpec) []product.Product {
	search := strings.ToLower(strings.TrimSpace(spec.Search))

	out := make([]product.Product, 0, len(products))
	for _, p := range products {
		if search != "" && !matchesSearch(p, search) {
			continue
		}
		if p.Price < spec.PriceRange[0] || p.Price > spec.PriceRange[1] {
			continue
		}
		if len(spec.Categories) > 0 && !contains(spec.Categories, p.Category) {
			continue
		}
		if len(spec.Subcategories) > 0 && !contains(spec.Subcategories, p.Subcategory) {
			continue
		}
		if !matchesLegacyCategory(p, spec.Category) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func matchesSearch(p product.Product, query string) bool {
	return strings.Contains(strings.ToLower(p.Name), query) ||
		strings.Contains(strings.ToLower(p.Category), query) ||
		strings.Contains(strings.ToLower(p.Subcategory), query) ||
		strings.Contains(strings.ToLower(p.Description), query) ||
		strings.Contains(formatPrice(p.Price), query)
}

// matchesLegacyCategory applies the dropdown selector: "All" (or unset)
// imposes nothing, anything else is a looser substring test on the category.
func matchesLegacyCategory(p product.Product, selected string) bool {
	if selected == "" || selected == CategoryAll {
		return true
	}
	return strings.Contains(strings.ToLower(p.Category), strings.ToLower(selected))
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

// formatPrice renders the price the way the storefront displays it: integral
// prices without a decimal point.
func formatPrice(price float64) string {
	return strconv.FormatFloat(price, 'f', -1, 64)
}
