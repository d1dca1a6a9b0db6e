package product

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	producterrors "go-giftstore-api/internal/product/errors"
)

const productsCollection = "products"

//go:generate mockgen -source=product_repo.go -destination=../mock/product/product_repo_mock.go -package=mock
type Repository interface {
	ListAll(ctx context.Context) ([]Product, error)
	ListByCategory(ctx context.Context, category string) ([]Product, error)
	GetByID(ctx context.Context, id string) (Product, error)
	Create(ctx context.Context, p Product) (string, error)
	Update(ctx context.Context, p Product) error
	SetRating(ctx context.Context, id string, average float64, count int) error
	Delete(ctx context.Context, id string) error
}

type repository struct {
	client *firestore.Client
}

func NewRepository(client *firestore.Client) Repository {
	return &repository{client: client}
}

func (r *repository) col() *firestore.CollectionRef {
	return r.client.Collection(productsCollection)
}

// productDoc is the raw Firestore shape. Older documents carry a single
// imageUrl instead of the images array; toProduct folds it in.
type productDoc struct {
	Name                   string                  `firestore:"name"`
	Description            string                  `firestore:"description"`
	Instructions           string                  `firestore:"instructions"`
	DeliveryInfo           string                  `firestore:"deliveryInfo"`
	Price                  float64                 `firestore:"price"`
	Category               string                  `firestore:"category"`
	Subcategory            string                  `firestore:"subcategory"`
	Images                 []string                `firestore:"images"`
	ImageURL               string                  `firestore:"imageUrl"`
	Tags                   []string                `firestore:"tags"`
	IsPersonalizable       bool                    `firestore:"isPersonalizable"`
	PersonalizationOptions *PersonalizationOptions `firestore:"personalizationOptions"`
	AverageRating          float64                 `firestore:"averageRating"`
	ReviewCount            int                     `firestore:"reviewCount"`
	CreatedAt              time.Time               `firestore:"createdAt"`
	UpdatedAt              time.Time               `firestore:"updatedAt"`
}

func (d productDoc) toProduct(id string) Product {
	images := d.Images
	if len(images) == 0 && d.ImageURL != "" {
		images = []string{d.ImageURL}
	}

	return Product{
		ID:                     id,
		Name:                   d.Name,
		Description:            d.Description,
		Instructions:           d.Instructions,
		DeliveryInfo:           d.DeliveryInfo,
		Price:                  d.Price,
		Category:               d.Category,
		Subcategory:            d.Subcategory,
		Images:                 images,
		Tags:                   d.Tags,
		IsPersonalizable:       d.IsPersonalizable,
		PersonalizationOptions: d.PersonalizationOptions,
		AverageRating:          d.AverageRating,
		ReviewCount:            d.ReviewCount,
		CreatedAt:              d.CreatedAt,
		UpdatedAt:              d.UpdatedAt,
	}
}

func docFromProduct(p Product) productDoc {
	return productDoc{
		Name:                   p.Name,
		Description:            p.Description,
		Instructions:           p.Instructions,
		DeliveryInfo:           p.DeliveryInfo,
		Price:                  p.Price,
		Category:               p.Category,
		Subcategory:            p.Subcategory,
		Images:                 p.Images,
		Tags:                   p.Tags,
		IsPersonalizable:       p.IsPersonalizable,
		PersonalizationOptions: p.PersonalizationOptions,
		AverageRating:          p.AverageRating,
		ReviewCount:            p.ReviewCount,
		CreatedAt:              p.CreatedAt,
		UpdatedAt:              p.UpdatedAt,
	}
}

func (r *repository) ListAll(ctx context.Context) ([]Product, error) {
	snaps, err := r.col().OrderBy("createdAt", firestore.Desc).Documents(ctx).GetAll()
	if err != nil {
		return nil, err
	}

	products := make([]Product, 0, len(snaps))
	for _, snap := range snaps {
		var doc productDoc
		if err := snap.DataTo(&doc); err != nil {
			return nil, err
		}
		products = append(products, doc.toProduct(snap.Ref.ID))
	}
	return products, nil
}

func (r *repository) ListByCategory(ctx context.Context, category string) ([]Product, error) {
	snaps, err := r.col().Where("category", "==", category).Documents(ctx).GetAll()
	if err != nil {
		return nil, err
	}

	products := make([]Product, 0, len(snaps))
	for _, snap := range snaps {
		var doc productDoc
		if err := snap.DataTo(&doc); err != nil {
			return nil, err
		}
		products = append(products, doc.toProduct(snap.Ref.ID))
	}
	return products, nil
}

func (r *repository) GetByID(ctx context.Context, id string) (Product, error) {
	snap, err := r.col().Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return Product{}, producterrors.ErrProductNotFound
		}
		return Product{}, err
	}

	var doc productDoc
	if err := snap.DataTo(&doc); err != nil {
		return Product{}, err
	}
	return doc.toProduct(snap.Ref.ID), nil
}

func (r *repository) Create(ctx context.Context, p Product) (string, error) {
	ref := r.col().Doc(p.ID)
	if _, err := ref.Set(ctx, docFromProduct(p)); err != nil {
		return "", err
	}
	return ref.ID, nil
}

func (r *repository) Update(ctx context.Context, p Product) error {
	_, err := r.col().Doc(p.ID).Set(ctx, docFromProduct(p))
	if err != nil && status.Code(err) == codes.NotFound {
		return producterrors.ErrProductNotFound
	}
	return err
}

func (r *repository) SetRating(ctx context.Context, id string, average float64, count int) error {
	_, err := r.col().Doc(id).Update(ctx, []firestore.Update{
		{Path: "averageRating", Value: average},
		{Path: "reviewCount", Value: count},
		{Path: "updatedAt", Value: time.Now()},
	})
	if err != nil && status.Code(err) == codes.NotFound {
		return producterrors.ErrProductNotFound
	}
	return err
}

func (r *repository) Delete(ctx context.Context, id string) error {
	_, err := r.col().Doc(id).Delete(ctx)
	return err
}
