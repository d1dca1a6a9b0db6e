package address_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"go-giftstore-api/internal/address"
	addresserrors "go-giftstore-api/internal/address/errors"
)

type fakeAddressService struct {
	listFn       func(ctx context.Context, userID string) ([]address.Address, error)
	getDefaultFn func(ctx context.Context, userID string) (address.Address, error)
	createFn     func(ctx context.Context, userID string, req address.SaveAddressRequest) (address.Address, error)
	updateFn     func(ctx context.Context, userID, id string, req address.SaveAddressRequest) (address.Address, error)
	deleteFn     func(ctx context.Context, userID, id string) error
}

func (f *fakeAddressService) ListByUser(ctx context.Context, userID string) ([]address.Address, error) {
	return f.listFn(ctx, userID)
}
func (f *fakeAddressService) GetDefault(ctx context.Context, userID string) (address.Address, error) {
	return f.getDefaultFn(ctx, userID)
}
func (f *fakeAddressService) Create(ctx context.Context, userID string, req address.SaveAddressRequest) (address.Address, error) {
	return f.createFn(ctx, userID, req)
}
func (f *fakeAddressService) Update(ctx context.Context, userID, id string, req address.SaveAddressRequest) (address.Address, error) {
	return f.updateFn(ctx, userID, id, req)
}
func (f *fakeAddressService) Delete(ctx context.Context, userID, id string) error {
	return f.deleteFn(ctx, userID, id)
}

func setupRouter(svc address.Service, userID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	auth := func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Next()
	}

	api := r.Group("/api/v1")
	address.RegisterRoutes(api, address.NewHandler(svc), auth)
	return r
}

func TestAddressHandler_List(t *testing.T) {
	svc := &fakeAddressService{
		listFn: func(_ context.Context, userID string) ([]address.Address, error) {
			assert.Equal(t, "user-1", userID)
			return []address.Address{{ID: "a1", Area: "Indiranagar"}}, nil
		},
	}
	r := setupRouter(svc, "user-1")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/addresses", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Indiranagar")
}

func TestAddressHandler_Create(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc := &fakeAddressService{
			createFn: func(_ context.Context, userID string, req address.SaveAddressRequest) (address.Address, error) {
				return address.Address{ID: "a1", UserID: userID, Pincode: req.Pincode}, nil
			},
		}
		r := setupRouter(svc, "user-1")

		body, _ := json.Marshal(map[string]any{
			"fullName":    "Priya Sharma",
			"phoneNumber": "9876543210",
			"houseNumber": "12B",
			"street":      "MG Road",
			"pincode":     "560001",
		})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/addresses", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("Failed_NotServiceable", func(t *testing.T) {
		svc := &fakeAddressService{
			createFn: func(_ context.Context, _ string, _ address.SaveAddressRequest) (address.Address, error) {
				return address.Address{}, addresserrors.ErrAreaNotServiceable
			},
		}
		r := setupRouter(svc, "user-1")

		body, _ := json.Marshal(map[string]any{
			"fullName":    "Priya Sharma",
			"phoneNumber": "9876543210",
			"houseNumber": "12B",
			"street":      "MG Road",
			"pincode":     "999999",
		})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/addresses", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "do not deliver")
	})

	t.Run("Failed_BadBody", func(t *testing.T) {
		r := setupRouter(&fakeAddressService{}, "user-1")

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/addresses", bytes.NewReader([]byte("{")))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAddressHandler_Delete(t *testing.T) {
	svc := &fakeAddressService{
		deleteFn: func(_ context.Context, userID, id string) error {
			assert.Equal(t, "user-1", userID)
			assert.Equal(t, "a1", id)
			return nil
		},
	}
	r := setupRouter(svc, "user-1")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/addresses/a1", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
