package offer_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"go-giftstore-api/internal/offer"
	offererrors "go-giftstore-api/internal/offer/errors"
)

type fakeRepo struct {
	offers []offer.Offer
}

func (f *fakeRepo) ListAll(_ context.Context) ([]offer.Offer, error) { return f.offers, nil }

func (f *fakeRepo) GetByID(_ context.Context, id string) (offer.Offer, error) {
	for _, o := range f.offers {
		if o.ID == id {
			return o, nil
		}
	}
	return offer.Offer{}, offererrors.ErrOfferNotFound
}

func (f *fakeRepo) Create(_ context.Context, o offer.Offer) error {
	f.offers = append(f.offers, o)
	return nil
}

func (f *fakeRepo) Update(_ context.Context, o offer.Offer) error {
	for i := range f.offers {
		if f.offers[i].ID == o.ID {
			f.offers[i] = o
			return nil
		}
	}
	return offererrors.ErrOfferNotFound
}

func (f *fakeRepo) Delete(_ context.Context, id string) error {
	for i := range f.offers {
		if f.offers[i].ID == id {
			f.offers = append(f.offers[:i], f.offers[i+1:]...)
			return nil
		}
	}
	return nil
}

func TestOfferService_Applicable(t *testing.T) {
	repo := &fakeRepo{offers: []offer.Offer{
		{ID: "paytm", Provider: "Paytm", MinTransaction: 799},
		{ID: "amazon", Provider: "Amazon Pay", MinTransaction: 1500},
		{ID: "mobikwik", Provider: "MobiKwik"}, // no floor
	}}
	svc := offer.NewService(repo)

	t.Run("FiltersByMinimum", func(t *testing.T) {
		res, err := svc.Applicable(context.Background(), 1000)

		assert.NoError(t, err)
		assert.Len(t, res.Offers, 2)
		assert.Equal(t, "paytm", res.Offers[0].ID)
		assert.Equal(t, "mobikwik", res.Offers[1].ID)
	})

	t.Run("ExactFloorMatches", func(t *testing.T) {
		res, err := svc.Applicable(context.Background(), 799)

		assert.NoError(t, err)
		assert.Len(t, res.Offers, 2)
	})

	t.Run("ZeroTotal_OnlyFloorless", func(t *testing.T) {
		res, err := svc.Applicable(context.Background(), 0)

		assert.NoError(t, err)
		assert.Len(t, res.Offers, 1)
		assert.Equal(t, "mobikwik", res.Offers[0].ID)
	})
}

func TestOfferService_Create(t *testing.T) {
	repo := &fakeRepo{}
	svc := offer.NewService(repo)

	t.Run("Success", func(t *testing.T) {
		o, err := svc.Create(context.Background(), offer.SaveOfferRequest{
			Provider:       "PhonePe",
			Description:    "Cashback up to Rs.250 on minimum order of Rs.1000",
			Discount:       "Up to ₹250",
			MinTransaction: 1000,
		})

		assert.NoError(t, err)
		assert.NotEmpty(t, o.ID)
		assert.Len(t, repo.offers, 1)
	})

	t.Run("Failed_MissingProvider", func(t *testing.T) {
		_, err := svc.Create(context.Background(), offer.SaveOfferRequest{
			Description: "no provider",
			Discount:    "10%",
		})

		assert.Error(t, err)
	})
}
