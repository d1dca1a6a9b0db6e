// Package whatsapp builds the pre-filled wa.me deep link that carries a cart
// to the store's order channel. There is no API call here; checkout is a
// hand-off, not a payment.
package whatsapp

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/shopspring/decimal"

	"go-giftstore-api/internal/cart"
)

type Service interface {
	FormatCart(items []cart.Item) string
	OrderURL(items []cart.Item) string
}

type service struct {
	phone     string
	storeName string
}

func NewService(phone, storeName string) Service {
	return &service{
		phone:     phone,
		storeName: storeName,
	}
}

// FormatCart renders the order message: one bullet per line item with its
// unit price, then the cart total. The total matches cart.Total, i.e. it is
// quantity-blind on purpose.
func (s *service) FormatCart(items []cart.Item) string {
	if len(items) == 0 {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Hi %s! I'd like to place an order:\n\n", s.storeName)

	total := decimal.Zero
	for _, item := range items {
		price := decimal.NewFromFloat(item.Price)
		fmt.Fprintf(&b, "• %s - ₹%s\n", item.Name, price.String())
		total = total.Add(price)
	}

	fmt.Fprintf(&b, "\n*Total: ₹%s*\n\n", total.String())
	b.WriteString("Please confirm availability and delivery details.")

	return b.String()
}

func (s *service) OrderURL(items []cart.Item) string {
	message := s.FormatCart(items)
	return fmt.Sprintf("https://wa.me/%s?text=%s", s.phone, url.QueryEscape(message))
}
