package address

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	addresserrors "go-giftstore-api/internal/address/errors"
)

const addressesCollection = "addresses"

//go:generate mockgen -source=address_repo.go -destination=../mock/address/address_repo_mock.go -package=mock
type Repository interface {
	ListByUser(ctx context.Context, userID string) ([]Address, error)
	GetByID(ctx context.Context, id string) (Address, error)
	GetDefault(ctx context.Context, userID string) (Address, error)
	Create(ctx context.Context, a Address) error
	Update(ctx context.Context, a Address) error
	Delete(ctx context.Context, id string) error
}

type repository struct {
	client *firestore.Client
}

func NewRepository(client *firestore.Client) Repository {
	return &repository{client: client}
}

func (r *repository) col() *firestore.CollectionRef {
	return r.client.Collection(addressesCollection)
}

func (r *repository) ListByUser(ctx context.Context, userID string) ([]Address, error) {
	snaps, err := r.col().Where("userId", "==", userID).Documents(ctx).GetAll()
	if err != nil {
		return nil, err
	}

	addresses := make([]Address, 0, len(snaps))
	for _, snap := range snaps {
		var a Address
		if err := snap.DataTo(&a); err != nil {
			return nil, err
		}
		a.ID = snap.Ref.ID
		addresses = append(addresses, a)
	}
	return addresses, nil
}

func (r *repository) GetByID(ctx context.Context, id string) (Address, error) {
	snap, err := r.col().Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return Address{}, addresserrors.ErrAddressNotFound
		}
		return Address{}, err
	}

	var a Address
	if err := snap.DataTo(&a); err != nil {
		return Address{}, err
	}
	a.ID = snap.Ref.ID
	return a, nil
}

func (r *repository) GetDefault(ctx context.Context, userID string) (Address, error) {
	snaps, err := r.col().
		Where("userId", "==", userID).
		Where("isDefault", "==", true).
		Limit(1).
		Documents(ctx).GetAll()
	if err != nil {
		return Address{}, err
	}
	if len(snaps) == 0 {
		return Address{}, addresserrors.ErrAddressNotFound
	}

	var a Address
	if err := snaps[0].DataTo(&a); err != nil {
		return Address{}, err
	}
	a.ID = snaps[0].Ref.ID
	return a, nil
}

func (r *repository) Create(ctx context.Context, a Address) error {
	_, err := r.col().Doc(a.ID).Set(ctx, a)
	return err
}

func (r *repository) Update(ctx context.Context, a Address) error {
	_, err := r.col().Doc(a.ID).Set(ctx, a)
	return err
}

func (r *repository) Delete(ctx context.Context, id string) error {
	_, err := r.col().Doc(id).Delete(ctx)
	return err
}
