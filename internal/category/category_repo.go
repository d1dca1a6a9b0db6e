package category

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	categoryerrors "go-giftstore-api/internal/category/errors"
)

const (
	categoriesCollection    = "categories"
	subcategoriesCollection = "subcategories"
)

//go:generate mockgen -source=category_repo.go -destination=../mock/category/category_repo_mock.go -package=mock
type Repository interface {
	ListAll(ctx context.Context) ([]Category, error)
	GetByID(ctx context.Context, id string) (Category, error)
	Create(ctx context.Context, c Category) error
	Update(ctx context.Context, c Category) error
	Delete(ctx context.Context, id string) error

	ListSubcategories(ctx context.Context, categoryID string) ([]Subcategory, error)
	CreateSubcategory(ctx context.Context, sc Subcategory) error
	DeleteSubcategory(ctx context.Context, id string) error
}

type repository struct {
	client *firestore.Client
}

func NewRepository(client *firestore.Client) Repository {
	return &repository{client: client}
}

func (r *repository) ListAll(ctx context.Context) ([]Category, error) {
	snaps, err := r.client.Collection(categoriesCollection).
		OrderBy("order", firestore.Asc).
		Documents(ctx).GetAll()
	if err != nil {
		return nil, err
	}

	categories := make([]Category, 0, len(snaps))
	for _, snap := range snaps {
		var c Category
		if err := snap.DataTo(&c); err != nil {
			return nil, err
		}
		c.ID = snap.Ref.ID
		categories = append(categories, c)
	}
	return categories, nil
}

func (r *repository) GetByID(ctx context.Context, id string) (Category, error) {
	snap, err := r.client.Collection(categoriesCollection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return Category{}, categoryerrors.ErrCategoryNotFound
		}
		return Category{}, err
	}

	var c Category
	if err := snap.DataTo(&c); err != nil {
		return Category{}, err
	}
	c.ID = snap.Ref.ID
	return c, nil
}

func (r *repository) Create(ctx context.Context, c Category) error {
	_, err := r.client.Collection(categoriesCollection).Doc(c.ID).Set(ctx, c)
	return err
}

func (r *repository) Update(ctx context.Context, c Category) error {
	_, err := r.client.Collection(categoriesCollection).Doc(c.ID).Set(ctx, c)
	if err != nil && status.Code(err) == codes.NotFound {
		return categoryerrors.ErrCategoryNotFound
	}
	return err
}

func (r *repository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection(categoriesCollection).Doc(id).Delete(ctx)
	return err
}

func (r *repository) ListSubcategories(ctx context.Context, categoryID string) ([]Subcategory, error) {
	snaps, err := r.client.Collection(subcategoriesCollection).
		Where("categoryId", "==", categoryID).
		Documents(ctx).GetAll()
	if err != nil {
		return nil, err
	}

	subcategories := make([]Subcategory, 0, len(snaps))
	for _, snap := range snaps {
		var sc Subcategory
		if err := snap.DataTo(&sc); err != nil {
			return nil, err
		}
		sc.ID = snap.Ref.ID
		subcategories = append(subcategories, sc)
	}
	return subcategories, nil
}

func (r *repository) CreateSubcategory(ctx context.Context, sc Subcategory) error {
	_, err := r.client.Collection(subcategoriesCollection).Doc(sc.ID).Set(ctx, sc)
	return err
}

func (r *repository) DeleteSubcategory(ctx context.Context, id string) error {
	_, err := r.client.Collection(subcategoriesCollection).Doc(id).Delete(ctx)
	return err
}
