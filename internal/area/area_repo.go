package area

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	areaerrors "go-giftstore-api/internal/area/errors"
)

const areasCollection = "areas"

//go:generate mockgen -source=area_repo.go -destination=../mock/area/area_repo_mock.go -package=mock
type Repository interface {
	ListAll(ctx context.Context) ([]Area, error)
	GetByID(ctx context.Context, id string) (Area, error)
	FindByPincode(ctx context.Context, pincode string) (Area, error)
	Create(ctx context.Context, a Area) error
	Update(ctx context.Context, a Area) error
	Delete(ctx context.Context, id string) error
}

type repository struct {
	client *firestore.Client
}

func NewRepository(client *firestore.Client) Repository {
	return &repository{client: client}
}

func (r *repository) col() *firestore.CollectionRef {
	return r.client.Collection(areasCollection)
}

func (r *repository) ListAll(ctx context.Context) ([]Area, error) {
	snaps, err := r.col().OrderBy("name", firestore.Asc).Documents(ctx).GetAll()
	if err != nil {
		return nil, err
	}

	areas := make([]Area, 0, len(snaps))
	for _, snap := range snaps {
		var a Area
		if err := snap.DataTo(&a); err != nil {
			return nil, err
		}
		a.ID = snap.Ref.ID
		areas = append(areas, a)
	}
	return areas, nil
}

func (r *repository) GetByID(ctx context.Context, id string) (Area, error) {
	snap, err := r.col().Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return Area{}, areaerrors.ErrAreaNotFound
		}
		return Area{}, err
	}

	var a Area
	if err := snap.DataTo(&a); err != nil {
		return Area{}, err
	}
	a.ID = snap.Ref.ID
	return a, nil
}

func (r *repository) FindByPincode(ctx context.Context, pincode string) (Area, error) {
	snaps, err := r.col().
		Where("pincodes", "array-contains", pincode).
		Limit(1).
		Documents(ctx).GetAll()
	if err != nil {
		return Area{}, err
	}
	if len(snaps) == 0 {
		return Area{}, areaerrors.ErrAreaNotFound
	}

	var a Area
	if err := snaps[0].DataTo(&a); err != nil {
		return Area{}, err
	}
	a.ID = snaps[0].Ref.ID
	return a, nil
}

func (r *repository) Create(ctx context.Context, a Area) error {
	_, err := r.col().Doc(a.ID).Set(ctx, a)
	return err
}

func (r *repository) Update(ctx context.Context, a Area) error {
	_, err := r.col().Doc(a.ID).Set(ctx, a)
	return err
}

func (r *repository) Delete(ctx context.Context, id string) error {
	_, err := r.col().Doc(id).Delete(ctx)
	return err
}
