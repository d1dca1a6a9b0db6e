package order_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"go-giftstore-api/internal/cart"
	"go-giftstore-api/internal/order"
	ordererrors "go-giftstore-api/internal/order/errors"
)

type fakeOrderService struct {
	checkoutFn     func(ctx context.Context, sess cart.Session, req order.CheckoutRequest) (order.CheckoutResponse, error)
	historyFn      func(ctx context.Context, userID string) ([]order.Order, error)
	detailFn       func(ctx context.Context, userID, orderID string) (order.Order, error)
	listAdminFn    func(ctx context.Context, q order.ListOrdersQuery) (order.ListOrdersResponse, error)
	updateStatusFn func(ctx context.Context, orderID, next string) (order.Order, error)
}

func (f *fakeOrderService) Checkout(ctx context.Context, sess cart.Session, req order.CheckoutRequest) (order.CheckoutResponse, error) {
	return f.checkoutFn(ctx, sess, req)
}
func (f *fakeOrderService) History(ctx context.Context, userID string) ([]order.Order, error) {
	return f.historyFn(ctx, userID)
}
func (f *fakeOrderService) Detail(ctx context.Context, userID, orderID string) (order.Order, error) {
	return f.detailFn(ctx, userID, orderID)
}
func (f *fakeOrderService) ListAdmin(ctx context.Context, q order.ListOrdersQuery) (order.ListOrdersResponse, error) {
	return f.listAdminFn(ctx, q)
}
func (f *fakeOrderService) UpdateStatus(ctx context.Context, orderID, next string) (order.Order, error) {
	return f.updateStatusFn(ctx, orderID, next)
}

func setupRouter(svc order.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := order.NewHandler(svc)

	// Routes wired directly so the test controls the identity values the
	// middleware chain would normally set.
	identity := func(c *gin.Context) {
		c.Set("session_id", "sess-1")
		c.Set("user_id", "user-1")
		c.Next()
	}

	api := r.Group("/api/v1")
	api.POST("/orders/checkout", identity, h.Checkout)
	api.GET("/orders", identity, h.History)
	api.GET("/orders/:id", identity, h.Detail)
	api.GET("/admin/orders", h.ListAdmin)
	api.PATCH("/admin/orders/:id/status", h.UpdateStatus)
	return r
}

func TestOrderHandler_Checkout(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc := &fakeOrderService{
			checkoutFn: func(_ context.Context, sess cart.Session, req order.CheckoutRequest) (order.CheckoutResponse, error) {
				assert.Equal(t, "sess-1", sess.SessionID)
				assert.Equal(t, "user-1", sess.UserID)
				return order.CheckoutResponse{
					Order:       order.Order{ID: "o1", Status: order.StatusConfirmed},
					WhatsAppURL: "https://wa.me/919876543210?text=hi",
				}, nil
			},
		}
		r := setupRouter(svc)

		body, _ := json.Marshal(map[string]any{
			"customerName": "Priya Sharma",
			"phone":        "9876543210",
		})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/orders/checkout", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), "wa.me")
	})

	t.Run("Failed_EmptyCart", func(t *testing.T) {
		svc := &fakeOrderService{
			checkoutFn: func(_ context.Context, _ cart.Session, _ order.CheckoutRequest) (order.CheckoutResponse, error) {
				return order.CheckoutResponse{}, ordererrors.ErrEmptyCart
			},
		}
		r := setupRouter(svc)

		body, _ := json.Marshal(map[string]any{
			"customerName": "Priya Sharma",
			"phone":        "9876543210",
		})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/orders/checkout", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestOrderHandler_History(t *testing.T) {
	svc := &fakeOrderService{
		historyFn: func(_ context.Context, userID string) ([]order.Order, error) {
			assert.Equal(t, "user-1", userID)
			return []order.Order{{ID: "o1"}, {ID: "o2"}}, nil
		},
	}
	r := setupRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/orders", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestOrderHandler_UpdateStatus(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc := &fakeOrderService{
			updateStatusFn: func(_ context.Context, orderID, next string) (order.Order, error) {
				assert.Equal(t, "o1", orderID)
				assert.Equal(t, order.StatusPacked, next)
				return order.Order{ID: "o1", Status: next}, nil
			},
		}
		r := setupRouter(svc)

		body, _ := json.Marshal(map[string]string{"status": order.StatusPacked})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPatch, "/api/v1/admin/orders/o1/status", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Failed_InvalidTransition", func(t *testing.T) {
		svc := &fakeOrderService{
			updateStatusFn: func(_ context.Context, _, _ string) (order.Order, error) {
				return order.Order{}, ordererrors.ErrInvalidTransition
			},
		}
		r := setupRouter(svc)

		body, _ := json.Marshal(map[string]string{"status": order.StatusDelivered})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPatch, "/api/v1/admin/orders/o1/status", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestOrderHandler_ListAdmin(t *testing.T) {
	svc := &fakeOrderService{
		listAdminFn: func(_ context.Context, q order.ListOrdersQuery) (order.ListOrdersResponse, error) {
			assert.Equal(t, order.StatusShipped, q.Status)
			assert.Equal(t, 2, q.Page)
			return order.ListOrdersResponse{Orders: []order.Order{}, Page: 2, Limit: 20}, nil
		},
	}
	r := setupRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/orders?status=shipped&page=2", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
