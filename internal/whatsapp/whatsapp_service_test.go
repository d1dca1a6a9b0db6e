package whatsapp_test

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"go-giftstore-api/internal/cart"
	"go-giftstore-api/internal/product"
	"go-giftstore-api/internal/whatsapp"
)

func sampleItems() []cart.Item {
	return []cart.Item{
		{Product: product.Product{ID: "p1", Name: "Photo Mug", Price: 499}, Quantity: 2},
		{Product: product.Product{ID: "p2", Name: "Name Necklace", Price: 1299.5}, Quantity: 1},
	}
}

func TestWhatsAppService_FormatCart(t *testing.T) {
	svc := whatsapp.NewService("919876543210", "Martini")

	t.Run("MessageLayout", func(t *testing.T) {
		msg := svc.FormatCart(sampleItems())

		assert.True(t, strings.HasPrefix(msg, "Hi Martini! I'd like to place an order:"))
		assert.Contains(t, msg, "• Photo Mug - ₹499\n")
		assert.Contains(t, msg, "• Name Necklace - ₹1299.5\n")
		assert.Contains(t, msg, "Please confirm availability and delivery details.")
	})

	t.Run("TotalIgnoresQuantity", func(t *testing.T) {
		msg := svc.FormatCart(sampleItems())

		// 499 + 1299.5, not 499*2 + 1299.5
		assert.Contains(t, msg, "*Total: ₹1798.5*")
	})

	t.Run("NoFloatNoise", func(t *testing.T) {
		msg := svc.FormatCart([]cart.Item{
			{Product: product.Product{ID: "p1", Name: "Candle", Price: 0.1}},
			{Product: product.Product{ID: "p2", Name: "Card", Price: 0.2}},
		})

		assert.Contains(t, msg, "*Total: ₹0.3*")
	})

	t.Run("EmptyCart", func(t *testing.T) {
		assert.Empty(t, svc.FormatCart(nil))
	})
}

func TestWhatsAppService_OrderURL(t *testing.T) {
	svc := whatsapp.NewService("919876543210", "Martini")

	link := svc.OrderURL(sampleItems())

	assert.True(t, strings.HasPrefix(link, "https://wa.me/919876543210?text="))

	parsed, err := url.Parse(link)
	assert.NoError(t, err)
	assert.Equal(t, svc.FormatCart(sampleItems()), parsed.Query().Get("text"))
}
