package cart

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const cartsCollection = "carts"

//go:generate mockgen -source=cart_remote_store.go -destination=../mock/cart/cart_remote_store_mock.go -package=mock
// RemoteStore is the user-scoped cart store backed by the cloud document
// database. Each user has at most one cart document; writes replace the
// whole document (last write wins).
type RemoteStore interface {
	Read(ctx context.Context, userID string) ([]Item, error)
	Write(ctx context.Context, userID string, items []Item) error
}

type firestoreRemoteStore struct {
	client *firestore.Client
}

func NewRemoteStore(client *firestore.Client) RemoteStore {
	return &firestoreRemoteStore{client: client}
}

func (s *firestoreRemoteStore) col() *firestore.CollectionRef {
	return s.client.Collection(cartsCollection)
}

// cartDoc is the carts/{userId} document shape.
type cartDoc struct {
	UserID    string    `firestore:"userId"`
	Items     []Item    `firestore:"items"`
	UpdatedAt time.Time `firestore:"updatedAt"`
}

// Read returns the user's cart. A missing document is an empty cart, not an
// error (first login has no remote cart yet).
func (s *firestoreRemoteStore) Read(ctx context.Context, userID string) ([]Item, error) {
	snap, err := s.col().Doc(userID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return []Item{}, nil
		}
		return nil, err
	}

	var doc cartDoc
	if err := snap.DataTo(&doc); err != nil {
		return nil, err
	}
	if doc.Items == nil {
		doc.Items = []Item{}
	}
	return doc.Items, nil
}

// Write overwrites the user's cart document.
func (s *firestoreRemoteStore) Write(ctx context.Context, userID string, items []Item) error {
	if items == nil {
		items = []Item{}
	}

	_, err := s.col().Doc(userID).Set(ctx, cartDoc{
		UserID:    userID,
		Items:     items,
		UpdatedAt: time.Now(),
	})
	return err
}
