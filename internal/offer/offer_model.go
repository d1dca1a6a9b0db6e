package offer

import "time"

// Offer is a payment-partner promotion shown on the storefront. These are
// informational; the store does not process the payment, so applicability
// is just the minimum-transaction check.
type Offer struct {
	ID             string    `json:"id" firestore:"-"`
	Provider       string    `json:"provider" firestore:"provider"`
	Logo           string    `json:"logo,omitempty" firestore:"logo,omitempty"`
	Description    string    `json:"description" firestore:"description"`
	Discount       string    `json:"discount" firestore:"discount"`
	MinTransaction float64   `json:"minTransaction,omitempty" firestore:"minTransaction"`
	Code           string    `json:"code,omitempty" firestore:"code,omitempty"`
	Link           string    `json:"link,omitempty" firestore:"link,omitempty"`
	CreatedAt      time.Time `json:"createdAt" firestore:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt" firestore:"updatedAt"`
}

// AppliesTo reports whether the offer is usable at a given cart total. A
// zero MinTransaction means no floor.
func (o Offer) AppliesTo(total float64) bool {
	return o.MinTransaction <= 0 || total >= o.MinTransaction
}
