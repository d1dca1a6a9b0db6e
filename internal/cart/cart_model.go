package cart

import (
	"time"

	"go-giftstore-api/internal/product"
)

// Personalization is the optional customer-supplied payload attached to a
// personalizable line item.
type Personalization struct {
	CustomerName  string `json:"customerName,omitempty" firestore:"customerName,omitempty"`
	CustomerImage string `json:"customerImage,omitempty" firestore:"customerImage,omitempty"`
	Message       string `json:"message,omitempty" firestore:"message,omitempty"`
}

// Item is one cart line item: a value copy of the product at the time it was
// added, so later catalog edits do not change carts retroactively. The same
// product may appear as several independent line items.
type Item struct {
	product.Product

	Quantity        int              `json:"quantity" firestore:"quantity"`
	Personalization *Personalization `json:"personalization,omitempty" firestore:"personalization,omitempty"`
	AddedAt         time.Time        `json:"addedAt" firestore:"addedAt"`
}
