package cart

import (
	"time"

	"go-giftstore-api/internal/product"
)

// The functions in this file are the pure cart operations. They are total:
// malformed input (out-of-bounds index, non-positive quantity) is handled
// in place and never produces an error. Callers own persistence.

// Add appends a new line item copied from p. It never coalesces with an
// existing line item for the same product; repeated adds yield repeated
// lines. A quantity below 1 defaults to 1.
func Add(items []Item, p product.Product, quantity int, pers *Personalization) []Item {
	if quantity < 1 {
		quantity = 1
	}

	out := make([]Item, len(items), len(items)+1)
	copy(out, items)

	return append(out, Item{
		Product:         p,
		Quantity:        quantity,
		Personalization: pers,
		AddedAt:         time.Now(),
	})
}

// Remove drops the line item at the given position. An out-of-bounds index
// is a no-op and returns the cart unchanged.
func Remove(items []Item, index int) []Item {
	if index < 0 || index >= len(items) {
		return items
	}

	out := make([]Item, 0, len(items)-1)
	out = append(out, items[:index]...)
	return append(out, items[index+1:]...)
}

// Merge reconciles a guest cart into a user's remote cart at sign-in. The
// result starts with the remote items in their existing order; local items
// follow, skipping any whose product id already exists remotely. Dedup is
// checked against the remote cart only, so duplicate lines already present
// in the local cart survive the merge (the same asymmetry as Add).
func Merge(local, remote []Item) []Item {
	merged := make([]Item, len(remote), len(remote)+len(local))
	copy(merged, remote)

	inRemote := make(map[string]struct{}, len(remote))
	for _, it := range remote {
		inRemote[it.ID] = struct{}{}
	}

	for _, it := range local {
		if _, ok := inRemote[it.ID]; !ok {
			merged = append(merged, it)
		}
	}
	return merged
}

// Total sums the unit price of every line item. Quantity is deliberately not
// multiplied in: this mirrors the storefront's historical behavior, where a
// line item is priced once regardless of its quantity field. Callers that
// want quantity-aware sums use QuantityTotal.
func Total(items []Item) float64 {
	var total float64
	for _, it := range items {
		total += it.Price
	}
	return total
}

// QuantityTotal sums price×quantity. It exists alongside Total because the
// quantity-blind Total is kept for compatibility; nothing in the default
// checkout path uses QuantityTotal yet.
func QuantityTotal(items []Item) float64 {
	var total float64
	for _, it := range items {
		qty := it.Quantity
		if qty < 1 {
			qty = 1
		}
		total += it.Price * float64(qty)
	}
	return total
}

// Count returns the number of line items, not the summed quantities.
func Count(items []Item) int {
	return len(items)
}
