package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go-giftstore-api/internal/catalog"
	"go-giftstore-api/internal/product"
)

func fixture() []product.Product {
	return []product.Product{
		{ID: "1", Name: "Baby Shower Hamper", Category: "Baby Shower", Subcategory: "Hampers", Description: "A welcome hamper", Price: 1200},
		{ID: "2", Name: "Corporate Box", Category: "Corporate", Subcategory: "Boxes", Description: "Branded gift box", Price: 2500},
		{ID: "3", Name: "Photo Mug", Category: "Personalized", Subcategory: "Mugs", Description: "Custom photo print", Price: 499},
		{ID: "4", Name: "Name Necklace", Category: "Personalized", Subcategory: "Jewellery", Description: "Engraved pendant", Price: 1299},
	}
}

func openSpec() catalog.FilterSpec {
	return catalog.FilterSpec{PriceRange: [2]float64{0, catalog.DefaultMaxPrice}}
}

func ids(products []product.Product) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.ID)
	}
	return out
}

func TestFilter_Scenario_SearchWithPriceCeiling(t *testing.T) {
	spec := openSpec()
	spec.PriceRange = [2]float64{0, 2000}
	spec.Search = "baby"

	got := catalog.Filter(fixture(), spec)

	assert.Equal(t, []string{"1"}, ids(got))
}

func TestFilter_Scenario_CategoryMultiSelect(t *testing.T) {
	spec := openSpec()
	spec.Categories = []string{"Corporate"}

	got := catalog.Filter(fixture(), spec)

	assert.Equal(t, []string{"2"}, ids(got))
}

func TestFilter_Idempotent(t *testing.T) {
	specs := []catalog.FilterSpec{
		openSpec(),
		{PriceRange: [2]float64{500, 1500}, Search: "a"},
		{PriceRange: [2]float64{0, 10000}, Categories: []string{"Personalized"}},
		{PriceRange: [2]float64{0, 10000}, Category: "corp"},
	}

	for _, spec := range specs {
		once := catalog.Filter(fixture(), spec)
		twice := catalog.Filter(once, spec)
		assert.Equal(t, once, twice)
	}
}

func TestFilter_Monotonic(t *testing.T) {
	base := openSpec()
	baseline := len(catalog.Filter(fixture(), base))

	narrower := []catalog.FilterSpec{}

	s := base
	s.PriceRange = [2]float64{500, 1300}
	narrower = append(narrower, s)

	s = base
	s.Categories = []string{"Personalized"}
	narrower = append(narrower, s)

	s = base
	s.Search = "photo"
	narrower = append(narrower, s)

	s = base
	s.Subcategories = []string{"Mugs"}
	narrower = append(narrower, s)

	for _, spec := range narrower {
		assert.LessOrEqual(t, len(catalog.Filter(fixture(), spec)), baseline)
	}
}

func TestFilter_SearchCaseInsensitive(t *testing.T) {
	upper := openSpec()
	upper.Search = "Baby"
	lower := openSpec()
	lower.Search = "baby"

	assert.Equal(t, catalog.Filter(fixture(), upper), catalog.Filter(fixture(), lower))
}

func TestFilter_SearchFields(t *testing.T) {
	cases := []struct {
		search string
		want   []string
	}{
		{"necklace", []string{"4"}},     // name
		{"corporate", []string{"2"}},    // category
		{"jewellery", []string{"4"}},    // subcategory
		{"photo print", []string{"3"}},  // description
		{"499", []string{"3"}},          // price as displayed
		{"  baby  ", []string{"1"}},     // trimmed before matching
		{"zzz", []string{}},             // no match
	}

	for _, tc := range cases {
		spec := openSpec()
		spec.Search = tc.search
		assert.Equal(t, tc.want, ids(catalog.Filter(fixture(), spec)), "search %q", tc.search)
	}
}

func TestFilter_PriceRangeInclusive(t *testing.T) {
	spec := openSpec()
	spec.PriceRange = [2]float64{499, 1299}

	got := catalog.Filter(fixture(), spec)

	assert.Equal(t, []string{"1", "3", "4"}, ids(got))
}

func TestFilter_InvertedPriceRangeMatchesNothing(t *testing.T) {
	spec := openSpec()
	spec.PriceRange = [2]float64{2000, 100}

	got := catalog.Filter(fixture(), spec)

	assert.Empty(t, got)
}

func TestFilter_LegacyCategorySelector(t *testing.T) {
	t.Run("AllImposesNothing", func(t *testing.T) {
		spec := openSpec()
		spec.Category = catalog.CategoryAll

		assert.Len(t, catalog.Filter(fixture(), spec), len(fixture()))
	})

	t.Run("SubstringCaseInsensitive", func(t *testing.T) {
		spec := openSpec()
		spec.Category = "person"

		assert.Equal(t, []string{"3", "4"}, ids(catalog.Filter(fixture(), spec)))
	})
}

func TestFilter_CategorySetIsExactMatch(t *testing.T) {
	// Unlike the legacy selector, the multi-select does not substring-match.
	spec := openSpec()
	spec.Categories = []string{"Person"}

	assert.Empty(t, catalog.Filter(fixture(), spec))
}

func TestFilter_PredicatesCombineWithAND(t *testing.T) {
	spec := openSpec()
	spec.Categories = []string{"Personalized"}
	spec.PriceRange = [2]float64{0, 1000}

	assert.Equal(t, []string{"3"}, ids(catalog.Filter(fixture(), spec)))
}

func TestFilter_PreservesOrderAndInput(t *testing.T) {
	in := fixture()
	spec := openSpec()
	spec.Categories = []string{"Personalized", "Corporate"}

	got := catalog.Filter(in, spec)

	assert.Equal(t, []string{"2", "3", "4"}, ids(got))
	// Input slice untouched.
	assert.Equal(t, fixture(), in)
}

func TestFilter_EmptyProductList(t *testing.T) {
	assert.Empty(t, catalog.Filter(nil, openSpec()))
}

func TestSpecFromQuery_Defaults(t *testing.T) {
	spec := catalog.SpecFromQuery(product.ListQuery{})

	assert.Equal(t, [2]float64{0, catalog.DefaultMaxPrice}, spec.PriceRange)

	min, max := 100.0, 500.0
	spec = catalog.SpecFromQuery(product.ListQuery{MinPrice: &min, MaxPrice: &max})

	assert.Equal(t, [2]float64{100, 500}, spec.PriceRange)
}
