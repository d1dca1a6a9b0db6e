package offer

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	offererrors "go-giftstore-api/internal/offer/errors"
)

const offersCollection = "offers"

//go:generate mockgen -source=offer_repo.go -destination=../mock/offer/offer_repo_mock.go -package=mock
type Repository interface {
	ListAll(ctx context.Context) ([]Offer, error)
	GetByID(ctx context.Context, id string) (Offer, error)
	Create(ctx context.Context, o Offer) error
	Update(ctx context.Context, o Offer) error
	Delete(ctx context.Context, id string) error
}

type repository struct {
	client *firestore.Client
}

func NewRepository(client *firestore.Client) Repository {
	return &repository{client: client}
}

func (r *repository) col() *firestore.CollectionRef {
	return r.client.Collection(offersCollection)
}

func (r *repository) ListAll(ctx context.Context) ([]Offer, error) {
	snaps, err := r.col().OrderBy("createdAt", firestore.Asc).Documents(ctx).GetAll()
	if err != nil {
		return nil, err
	}

	offers := make([]Offer, 0, len(snaps))
	for _, snap := range snaps {
		var o Offer
		if err := snap.DataTo(&o); err != nil {
			return nil, err
		}
		o.ID = snap.Ref.ID
		offers = append(offers, o)
	}
	return offers, nil
}

func (r *repository) GetByID(ctx context.Context, id string) (Offer, error) {
	snap, err := r.col().Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return Offer{}, offererrors.ErrOfferNotFound
		}
		return Offer{}, err
	}

	var o Offer
	if err := snap.DataTo(&o); err != nil {
		return Offer{}, err
	}
	o.ID = snap.Ref.ID
	return o, nil
}

func (r *repository) Create(ctx context.Context, o Offer) error {
	_, err := r.col().Doc(o.ID).Set(ctx, o)
	return err
}

func (r *repository) Update(ctx context.Context, o Offer) error {
	_, err := r.col().Doc(o.ID).Set(ctx, o)
	return err
}

func (r *repository) Delete(ctx context.Context, id string) error {
	_, err := r.col().Doc(id).Delete(ctx)
	return err
}
