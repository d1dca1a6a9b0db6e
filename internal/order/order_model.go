package order

import (
	"time"

	"go-giftstore-api/internal/address"
	"go-giftstore-api/internal/cart"
)

// Delivery statuses. An order is Confirmed the moment checkout hands it to
// WhatsApp; everything after that is the admin panel moving it along.
const (
	StatusConfirmed      = "confirmed"
	StatusPacked         = "packed"
	StatusShipped        = "shipped"
	StatusOutForDelivery = "out_for_delivery"
	StatusDelivered      = "delivered"
	StatusCancelled      = "cancelled"
)

// transitions is the forward path plus cancellation. Delivered and Cancelled
// are terminal.
var transitions = map[string][]string{
	StatusConfirmed:      {StatusPacked, StatusCancelled},
	StatusPacked:         {StatusShipped, StatusCancelled},
	StatusShipped:        {StatusOutForDelivery, StatusCancelled},
	StatusOutForDelivery: {StatusDelivered, StatusCancelled},
	StatusDelivered:      {},
	StatusCancelled:      {},
}

// ValidStatus reports whether s is a known delivery status.
func ValidStatus(s string) bool {
	_, ok := transitions[s]
	return ok
}

// CanTransition reports whether an order may move from one status to another.
func CanTransition(from, to string) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Order is a snapshot of the cart at checkout time. Items carry the product
// copy that was in the cart, so later catalog edits never rewrite history.
type Order struct {
	ID           string           `json:"id" firestore:"-"`
	UserID       string           `json:"userId,omitempty" firestore:"userId"`
	CustomerName string           `json:"customerName" firestore:"customerName"`
	Phone        string           `json:"phone" firestore:"phone"`
	Items        []cart.Item      `json:"items" firestore:"items"`
	ItemCount    int              `json:"itemCount" firestore:"itemCount"`
	Total        float64          `json:"total" firestore:"total"`
	Status       string           `json:"status" firestore:"status"`
	Address      *address.Address `json:"address,omitempty" firestore:"address,omitempty"`
	Note         string           `json:"note,omitempty" firestore:"note,omitempty"`
	CreatedAt    time.Time        `json:"createdAt" firestore:"createdAt"`
	UpdatedAt    time.Time        `json:"updatedAt" firestore:"updatedAt"`
}

// OrderCreatedPayload is the outbox event body published to order.events.
type OrderCreatedPayload struct {
	OrderID   string `json:"orderId"`
	UserID    string `json:"userId,omitempty"`
	SessionID string `json:"sessionId"`
	Total     float64 `json:"total"`
}
