package order

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	ordererrors "go-giftstore-api/internal/order/errors"
)

const ordersCollection = "orders"

//go:generate mockgen -source=order_repo.go -destination=../mock/order/order_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, o Order) error
	GetByID(ctx context.Context, id string) (Order, error)
	ListByUser(ctx context.Context, userID string) ([]Order, error)
	// ListAll pages through every order, newest first, optionally filtered
	// by delivery status.
	ListAll(ctx context.Context, statusFilter string, offset, limit int) ([]Order, error)
	Update(ctx context.Context, o Order) error
}

type repository struct {
	client *firestore.Client
}

func NewRepository(client *firestore.Client) Repository {
	return &repository{client: client}
}

func (r *repository) col() *firestore.CollectionRef {
	return r.client.Collection(ordersCollection)
}

func (r *repository) Create(ctx context.Context, o Order) error {
	_, err := r.col().Doc(o.ID).Set(ctx, o)
	return err
}

func (r *repository) GetByID(ctx context.Context, id string) (Order, error) {
	snap, err := r.col().Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return Order{}, ordererrors.ErrOrderNotFound
		}
		return Order{}, err
	}
	return docToOrder(snap)
}

func (r *repository) ListByUser(ctx context.Context, userID string) ([]Order, error) {
	snaps, err := r.col().
		Where("userId", "==", userID).
		OrderBy("createdAt", firestore.Desc).
		Documents(ctx).GetAll()
	if err != nil {
		return nil, err
	}
	return docsToOrders(snaps)
}

func (r *repository) ListAll(ctx context.Context, statusFilter string, offset, limit int) ([]Order, error) {
	q := r.col().Query
	if statusFilter != "" {
		q = q.Where("status", "==", statusFilter)
	}
	q = q.OrderBy("createdAt", firestore.Desc)
	if offset > 0 {
		q = q.Offset(offset)
	}
	if limit > 0 {
		q = q.Limit(limit)
	}

	snaps, err := q.Documents(ctx).GetAll()
	if err != nil {
		return nil, err
	}
	return docsToOrders(snaps)
}

func (r *repository) Update(ctx context.Context, o Order) error {
	_, err := r.col().Doc(o.ID).Set(ctx, o)
	return err
}

func docToOrder(snap *firestore.DocumentSnapshot) (Order, error) {
	var o Order
	if err := snap.DataTo(&o); err != nil {
		return Order{}, err
	}
	o.ID = snap.Ref.ID
	return o, nil
}

func docsToOrders(snaps []*firestore.DocumentSnapshot) ([]Order, error) {
	orders := make([]Order, 0, len(snaps))
	for _, snap := range snaps {
		o, err := docToOrder(snap)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}
