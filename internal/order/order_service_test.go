package order_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"go-giftstore-api/internal/cart"
	mockCart "go-giftstore-api/internal/mock/cart"
	mockOrder "go-giftstore-api/internal/mock/order"
	mockOutbox "go-giftstore-api/internal/mock/outbox"
	"go-giftstore-api/internal/order"
	ordererrors "go-giftstore-api/internal/order/errors"
	"go-giftstore-api/internal/outbox"
	"go-giftstore-api/internal/product"
	"go-giftstore-api/internal/whatsapp"
)

type testDeps struct {
	repo   *mockOrder.MockRepository
	cart   *mockCart.MockService
	outbox *mockOutbox.MockRepository
}

func newTestService(t *testing.T) (order.Service, testDeps) {
	ctrl := gomock.NewController(t)
	deps := testDeps{
		repo:   mockOrder.NewMockRepository(ctrl),
		cart:   mockCart.NewMockService(ctrl),
		outbox: mockOutbox.NewMockRepository(ctrl),
	}

	svc := order.NewService(order.Deps{
		Repo:     deps.repo,
		Cart:     deps.cart,
		WhatsApp: whatsapp.NewService("919876543210", "Martini"),
		Outbox:   deps.outbox,
	})
	return svc, deps
}

func sampleItems() []cart.Item {
	return []cart.Item{
		{Product: product.Product{ID: "p1", Name: "Photo Mug", Price: 499}, Quantity: 2},
		{Product: product.Product{ID: "p2", Name: "Name Necklace", Price: 1299}, Quantity: 1},
	}
}

func checkoutRequest() order.CheckoutRequest {
	return order.CheckoutRequest{
		CustomerName: "Priya Sharma",
		Phone:        "9876543210",
	}
}

func TestOrderService_Checkout(t *testing.T) {
	sess := cart.Session{SessionID: "sess-1", UserID: "user-1"}

	t.Run("Success", func(t *testing.T) {
		svc, deps := newTestService(t)

		deps.cart.EXPECT().
			Items(gomock.Any(), sess).
			Return(sampleItems(), nil)
		deps.repo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, o order.Order) error {
				assert.Equal(t, "user-1", o.UserID)
				assert.Equal(t, order.StatusConfirmed, o.Status)
				assert.Equal(t, 2, o.ItemCount)
				// Unit prices only; quantity does not multiply in.
				assert.InDelta(t, 499+1299, o.Total, 0.001)
				return nil
			})
		deps.outbox.EXPECT().
			Add(gomock.Any(), order.EventOrderCreated, "order", gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _, _, _ string, payload []byte) (outbox.Event, error) {
				var p order.OrderCreatedPayload
				assert.NoError(t, json.Unmarshal(payload, &p))
				assert.Equal(t, "sess-1", p.SessionID)
				assert.Equal(t, "user-1", p.UserID)
				return outbox.Event{}, nil
			})

		res, err := svc.Checkout(context.Background(), sess, checkoutRequest())

		assert.NoError(t, err)
		assert.NotEmpty(t, res.Order.ID)
		assert.Contains(t, res.WhatsAppURL, "wa.me/919876543210")
	})

	t.Run("Failed_EmptyCart", func(t *testing.T) {
		svc, deps := newTestService(t)

		deps.cart.EXPECT().
			Items(gomock.Any(), sess).
			Return([]cart.Item{}, nil)

		_, err := svc.Checkout(context.Background(), sess, checkoutRequest())

		assert.ErrorIs(t, err, ordererrors.ErrEmptyCart)
	})

	t.Run("Failed_Validation", func(t *testing.T) {
		svc, _ := newTestService(t)

		req := checkoutRequest()
		req.CustomerName = ""

		_, err := svc.Checkout(context.Background(), sess, req)

		assert.Error(t, err)
	})

	t.Run("Success_OutboxFailureSwallowed", func(t *testing.T) {
		svc, deps := newTestService(t)

		deps.cart.EXPECT().
			Items(gomock.Any(), sess).
			Return(sampleItems(), nil)
		deps.repo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(nil)
		deps.outbox.EXPECT().
			Add(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(outbox.Event{}, errors.New("firestore unavailable"))

		_, err := svc.Checkout(context.Background(), sess, checkoutRequest())

		assert.NoError(t, err)
	})

	t.Run("Success_Guest", func(t *testing.T) {
		svc, deps := newTestService(t)
		guest := cart.Session{SessionID: "sess-2"}

		deps.cart.EXPECT().
			Items(gomock.Any(), guest).
			Return(sampleItems(), nil)
		deps.repo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, o order.Order) error {
				assert.Empty(t, o.UserID)
				return nil
			})
		deps.outbox.EXPECT().
			Add(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(outbox.Event{}, nil)

		_, err := svc.Checkout(context.Background(), guest, checkoutRequest())

		assert.NoError(t, err)
	})
}

func TestOrderService_Detail(t *testing.T) {
	t.Run("Failed_WrongUser", func(t *testing.T) {
		svc, deps := newTestService(t)

		deps.repo.EXPECT().
			GetByID(gomock.Any(), "o1").
			Return(order.Order{ID: "o1", UserID: "someone-else"}, nil)

		_, err := svc.Detail(context.Background(), "user-1", "o1")

		assert.ErrorIs(t, err, ordererrors.ErrOrderForbidden)
	})
}

func TestOrderService_UpdateStatus(t *testing.T) {
	t.Run("Success_ForwardStep", func(t *testing.T) {
		svc, deps := newTestService(t)

		deps.repo.EXPECT().
			GetByID(gomock.Any(), "o1").
			Return(order.Order{ID: "o1", Status: order.StatusConfirmed}, nil)
		deps.repo.EXPECT().
			Update(gomock.Any(), gomock.Any()).
			Return(nil)

		o, err := svc.UpdateStatus(context.Background(), "o1", order.StatusPacked)

		assert.NoError(t, err)
		assert.Equal(t, order.StatusPacked, o.Status)
	})

	t.Run("Failed_SkipAhead", func(t *testing.T) {
		svc, deps := newTestService(t)

		deps.repo.EXPECT().
			GetByID(gomock.Any(), "o1").
			Return(order.Order{ID: "o1", Status: order.StatusConfirmed}, nil)

		_, err := svc.UpdateStatus(context.Background(), "o1", order.StatusDelivered)

		assert.ErrorIs(t, err, ordererrors.ErrInvalidTransition)
	})

	t.Run("Failed_TerminalState", func(t *testing.T) {
		svc, deps := newTestService(t)

		deps.repo.EXPECT().
			GetByID(gomock.Any(), "o1").
			Return(order.Order{ID: "o1", Status: order.StatusDelivered}, nil)

		_, err := svc.UpdateStatus(context.Background(), "o1", order.StatusCancelled)

		assert.ErrorIs(t, err, ordererrors.ErrInvalidTransition)
	})

	t.Run("Failed_UnknownStatus", func(t *testing.T) {
		svc, _ := newTestService(t)

		_, err := svc.UpdateStatus(context.Background(), "o1", "lost_in_transit")

		assert.ErrorIs(t, err, ordererrors.ErrInvalidStatus)
	})

	t.Run("Success_CancelFromAnyActiveState", func(t *testing.T) {
		for _, from := range []string{order.StatusConfirmed, order.StatusPacked, order.StatusShipped, order.StatusOutForDelivery} {
			svc, deps := newTestService(t)

			deps.repo.EXPECT().
				GetByID(gomock.Any(), "o1").
				Return(order.Order{ID: "o1", Status: from}, nil)
			deps.repo.EXPECT().
				Update(gomock.Any(), gomock.Any()).
				Return(nil)

			o, err := svc.UpdateStatus(context.Background(), "o1", order.StatusCancelled)

			assert.NoError(t, err, "from %s", from)
			assert.Equal(t, order.StatusCancelled, o.Status)
		}
	})
}
