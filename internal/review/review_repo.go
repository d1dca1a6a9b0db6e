package review

import (
	"context"

	"cloud.google.com/go/firestore"
)

const reviewsCollection = "reviews"

//go:generate mockgen -source=review_repo.go -destination=../mock/review/review_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, r Review) error
	ListByProduct(ctx context.Context, productID string) ([]Review, error)
}

type repository struct {
	client *firestore.Client
}

func NewRepository(client *firestore.Client) Repository {
	return &repository{client: client}
}

func (r *repository) col() *firestore.CollectionRef {
	return r.client.Collection(reviewsCollection)
}

func (r *repository) Create(ctx context.Context, rev Review) error {
	_, err := r.col().Doc(rev.ID).Set(ctx, rev)
	return err
}

func (r *repository) ListByProduct(ctx context.Context, productID string) ([]Review, error) {
	snaps, err := r.col().
		Where("productId", "==", productID).
		OrderBy("createdAt", firestore.Desc).
		Documents(ctx).GetAll()
	if err != nil {
		return nil, err
	}

	reviews := make([]Review, 0, len(snaps))
	for _, snap := range snaps {
		var rev Review
		if err := snap.DataTo(&rev); err != nil {
			return nil, err
		}
		rev.ID = snap.Ref.ID
		reviews = append(reviews, rev)
	}
	return reviews, nil
}
