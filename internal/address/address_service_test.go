package address_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"go-giftstore-api/internal/address"
	addresserrors "go-giftstore-api/internal/address/errors"
	"go-giftstore-api/internal/area"
	mockAddress "go-giftstore-api/internal/mock/address"
	mockArea "go-giftstore-api/internal/mock/area"
)

func newTestService(t *testing.T) (address.Service, *mockAddress.MockRepository, *mockArea.MockService) {
	ctrl := gomock.NewController(t)
	repo := mockAddress.NewMockRepository(ctrl)
	areas := mockArea.NewMockService(ctrl)
	svc := address.NewService(address.Deps{Repo: repo, Areas: areas})
	return svc, repo, areas
}

func validRequest() address.SaveAddressRequest {
	return address.SaveAddressRequest{
		FullName:    "Priya Sharma",
		PhoneNumber: "9876543210",
		HouseNumber: "12B",
		Street:      "MG Road",
		Pincode:     "560001",
	}
}

func TestAddressService_List(t *testing.T) {
	svc, repo, _ := newTestService(t)

	t.Run("Success", func(t *testing.T) {
		repo.EXPECT().
			ListByUser(gomock.Any(), "user-1").
			Return([]address.Address{{ID: "a1", UserID: "user-1", Area: "Indiranagar"}}, nil)

		res, err := svc.ListByUser(context.Background(), "user-1")

		assert.NoError(t, err)
		assert.Len(t, res, 1)
		assert.Equal(t, "Indiranagar", res[0].Area)
	})

	t.Run("Failed", func(t *testing.T) {
		repo.EXPECT().
			ListByUser(gomock.Any(), gomock.Any()).
			Return(nil, errors.New("firestore error"))

		_, err := svc.ListByUser(context.Background(), "user-1")

		assert.Error(t, err)
	})
}

func TestAddressService_Create(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc, repo, areas := newTestService(t)

		areas.EXPECT().
			CheckPincode(gomock.Any(), "560001").
			Return(area.PincodeResponse{Pincode: "560001", Serviceable: true, Area: "Indiranagar"}, nil)
		repo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(nil)

		res, err := svc.Create(context.Background(), "user-1", validRequest())

		assert.NoError(t, err)
		assert.Equal(t, "user-1", res.UserID)
		assert.Equal(t, "Indiranagar", res.Area)
		assert.NotEmpty(t, res.ID)
	})

	t.Run("Failed_NotServiceable", func(t *testing.T) {
		svc, _, areas := newTestService(t)

		areas.EXPECT().
			CheckPincode(gomock.Any(), "560001").
			Return(area.PincodeResponse{Pincode: "560001", Serviceable: false}, nil)

		_, err := svc.Create(context.Background(), "user-1", validRequest())

		assert.ErrorIs(t, err, addresserrors.ErrAreaNotServiceable)
	})

	t.Run("Failed_Validation", func(t *testing.T) {
		svc, _, _ := newTestService(t)

		req := validRequest()
		req.FullName = ""

		_, err := svc.Create(context.Background(), "user-1", req)

		assert.Error(t, err)
	})

	t.Run("Success_DefaultDemotesPrevious", func(t *testing.T) {
		svc, repo, areas := newTestService(t)

		areas.EXPECT().
			CheckPincode(gomock.Any(), "560001").
			Return(area.PincodeResponse{Pincode: "560001", Serviceable: true, Area: "Indiranagar"}, nil)
		repo.EXPECT().
			GetDefault(gomock.Any(), "user-1").
			Return(address.Address{ID: "old", UserID: "user-1", IsDefault: true}, nil)
		repo.EXPECT().
			Update(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, a address.Address) error {
				assert.Equal(t, "old", a.ID)
				assert.False(t, a.IsDefault)
				return nil
			})
		repo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(nil)

		req := validRequest()
		req.IsDefault = true

		res, err := svc.Create(context.Background(), "user-1", req)

		assert.NoError(t, err)
		assert.True(t, res.IsDefault)
	})
}

func TestAddressService_Update(t *testing.T) {
	t.Run("Failed_WrongUser", func(t *testing.T) {
		svc, repo, _ := newTestService(t)

		repo.EXPECT().
			GetByID(gomock.Any(), "a1").
			Return(address.Address{ID: "a1", UserID: "someone-else"}, nil)

		_, err := svc.Update(context.Background(), "user-1", "a1", validRequest())

		assert.ErrorIs(t, err, addresserrors.ErrAddressForbidden)
	})

	t.Run("Success", func(t *testing.T) {
		svc, repo, areas := newTestService(t)

		repo.EXPECT().
			GetByID(gomock.Any(), "a1").
			Return(address.Address{ID: "a1", UserID: "user-1", Area: "Koramangala"}, nil)
		areas.EXPECT().
			CheckPincode(gomock.Any(), "560001").
			Return(area.PincodeResponse{Pincode: "560001", Serviceable: true, Area: "Indiranagar"}, nil)
		repo.EXPECT().
			Update(gomock.Any(), gomock.Any()).
			Return(nil)

		res, err := svc.Update(context.Background(), "user-1", "a1", validRequest())

		assert.NoError(t, err)
		assert.Equal(t, "Indiranagar", res.Area)
	})
}

func TestAddressService_Delete(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc, repo, _ := newTestService(t)

		repo.EXPECT().
			GetByID(gomock.Any(), "a1").
			Return(address.Address{ID: "a1", UserID: "user-1"}, nil)
		repo.EXPECT().
			Delete(gomock.Any(), "a1").
			Return(nil)

		err := svc.Delete(context.Background(), "user-1", "a1")

		assert.NoError(t, err)
	})

	t.Run("Failed_NotFound", func(t *testing.T) {
		svc, repo, _ := newTestService(t)

		repo.EXPECT().
			GetByID(gomock.Any(), "missing").
			Return(address.Address{}, addresserrors.ErrAddressNotFound)

		err := svc.Delete(context.Background(), "user-1", "missing")

		assert.ErrorIs(t, err, addresserrors.ErrAddressNotFound)
	})
}
