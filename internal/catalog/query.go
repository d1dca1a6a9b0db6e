package catalog

import "go-giftstore-api/internal/product"

// DefaultMaxPrice mirrors the storefront price slider's upper bound.
const DefaultMaxPrice = 10000

// SpecFromQuery converts the HTTP list query into a FilterSpec, applying the
// slider defaults for absent price bounds.
func SpecFromQuery(q product.ListQuery) FilterSpec {
	spec := FilterSpec{
		PriceRange:    [2]float64{0, DefaultMaxPrice},
		Categories:    q.Categories,
		Subcategories: q.Subcategories,
		Search:        q.Search,
		Category:      q.Category,
	}

	if q.MinPrice != nil {
		spec.PriceRange[0] = *q.MinPrice
	}
	if q.MaxPrice != nil {
		spec.PriceRange[1] = *q.MaxPrice
	}
	return spec
}

// FilterQuery adapts Filter to the product service's Filterer hook.
func FilterQuery(products []product.Product, q product.ListQuery) []product.Product {
	return Filter(products, SpecFromQuery(q))
}
