package product_test

import (
	"context"
	"errors"
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"go-giftstore-api/internal/catalog"
	mockProduct "go-giftstore-api/internal/mock/product"
	"go-giftstore-api/internal/product"
	producterrors "go-giftstore-api/internal/product/errors"
)

func newTestService(t *testing.T) (product.Service, *mockProduct.MockRepository) {
	ctrl := gomock.NewController(t)
	repo := mockProduct.NewMockRepository(ctrl)
	svc := product.NewService(product.Deps{
		Repo:   repo,
		Filter: catalog.FilterQuery,
	})
	return svc, repo
}

func catalogFixture() []product.Product {
	return []product.Product{
		{ID: "1", Name: "Baby Shower Hamper", Category: "Baby Shower", Price: 1200},
		{ID: "2", Name: "Corporate Box", Category: "Corporate", Price: 2500},
		{ID: "3", Name: "Photo Mug", Category: "Personalized", Price: 499},
	}
}

func TestProductService_List(t *testing.T) {
	t.Run("Unfiltered", func(t *testing.T) {
		svc, repo := newTestService(t)

		repo.EXPECT().ListAll(gomock.Any()).Return(catalogFixture(), nil)

		res, err := svc.List(context.Background(), product.ListQuery{})

		assert.NoError(t, err)
		assert.Equal(t, 3, res.Matched)
		assert.Equal(t, 3, res.TotalCatalog)
	})

	t.Run("FilterApplied_CountsDiverge", func(t *testing.T) {
		svc, repo := newTestService(t)

		repo.EXPECT().ListAll(gomock.Any()).Return(catalogFixture(), nil)

		res, err := svc.List(context.Background(), product.ListQuery{Search: "baby"})

		assert.NoError(t, err)
		assert.Equal(t, 1, res.Matched)
		assert.Equal(t, 3, res.TotalCatalog)
		assert.Equal(t, "1", res.Products[0].ID)
	})

	t.Run("Failed_RepoError", func(t *testing.T) {
		svc, repo := newTestService(t)

		repo.EXPECT().ListAll(gomock.Any()).Return(nil, errors.New("firestore error"))

		_, err := svc.List(context.Background(), product.ListQuery{})

		assert.Error(t, err)
	})
}

func TestProductService_Detail(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc, repo := newTestService(t)

		repo.EXPECT().
			GetByID(gomock.Any(), "p1").
			Return(product.Product{ID: "p1", Name: "Photo Mug"}, nil)

		p, err := svc.Detail(context.Background(), "p1")

		assert.NoError(t, err)
		assert.Equal(t, "Photo Mug", p.Name)
	})

	t.Run("Failed_EmptyID", func(t *testing.T) {
		svc, _ := newTestService(t)

		_, err := svc.Detail(context.Background(), "")

		assert.ErrorIs(t, err, producterrors.ErrInvalidProductID)
	})
}

func TestProductService_Create(t *testing.T) {
	req := product.CreateProductRequest{
		Name:        "Name Necklace",
		Description: "Engraved pendant",
		Price:       1299,
		Category:    "Personalized",
	}

	t.Run("Success", func(t *testing.T) {
		svc, repo := newTestService(t)

		repo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, p product.Product) (string, error) {
				assert.NotEmpty(t, p.ID)
				assert.Equal(t, "Name Necklace", p.Name)
				return p.ID, nil
			})

		p, err := svc.Create(context.Background(), req)

		assert.NoError(t, err)
		assert.NotEmpty(t, p.ID)
	})

	t.Run("Failed_Validation", func(t *testing.T) {
		svc, _ := newTestService(t)

		bad := req
		bad.Name = ""

		_, err := svc.Create(context.Background(), bad)

		assert.Error(t, err)
	})

	t.Run("Failed_NegativePrice", func(t *testing.T) {
		svc, _ := newTestService(t)

		bad := req
		bad.Price = -1

		_, err := svc.Create(context.Background(), bad)

		assert.Error(t, err)
	})
}

func TestProductService_Update(t *testing.T) {
	t.Run("KeepsRatingAggregates", func(t *testing.T) {
		svc, repo := newTestService(t)

		repo.EXPECT().
			GetByID(gomock.Any(), "p1").
			Return(product.Product{ID: "p1", AverageRating: 4.5, ReviewCount: 12}, nil)
		repo.EXPECT().
			Update(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, p product.Product) error {
				assert.Equal(t, 4.5, p.AverageRating)
				assert.Equal(t, 12, p.ReviewCount)
				return nil
			})

		_, err := svc.Update(context.Background(), "p1", product.UpdateProductRequest{
			Name:        "Photo Mug XL",
			Description: "Bigger mug",
			Price:       599,
			Category:    "Personalized",
		})

		assert.NoError(t, err)
	})
}

func TestProductService_Delete(t *testing.T) {
	svc, repo := newTestService(t)

	repo.EXPECT().GetByID(gomock.Any(), "p1").Return(product.Product{ID: "p1"}, nil)
	repo.EXPECT().Delete(gomock.Any(), "p1").Return(nil)

	assert.NoError(t, svc.Delete(context.Background(), "p1"))
	assert.ErrorIs(t, svc.Delete(context.Background(), ""), producterrors.ErrInvalidProductID)
}

func TestProductService_Delete_CleansUpImages(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mockProduct.NewMockRepository(ctrl)

	deleted := make([]string, 0, 1)
	svc := product.NewService(product.Deps{
		Repo: repo,
		Cloudinary: &fakeCloudinary{deleteFunc: func(_ context.Context, publicID string) error {
			deleted = append(deleted, publicID)
			return nil
		}},
		Filter: catalog.FilterQuery,
	})

	repo.EXPECT().GetByID(gomock.Any(), "p1").Return(product.Product{
		ID:     "p1",
		Images: []string{"https://res.cloudinary.com/demo/image/upload/v1712345678/giftstore/mug-abc.jpg"},
	}, nil)
	repo.EXPECT().Delete(gomock.Any(), "p1").Return(nil)

	assert.NoError(t, svc.Delete(context.Background(), "p1"))
	assert.Equal(t, []string{"giftstore/mug-abc"}, deleted)
}

type fakeCloudinary struct {
	uploadFunc func(ctx context.Context, file multipart.File, filename string) (string, error)
	deleteFunc func(ctx context.Context, publicID string) error
}

func (f *fakeCloudinary) UploadImage(ctx context.Context, file multipart.File, filename string) (string, error) {
	if f.uploadFunc == nil {
		return "", nil
	}
	return f.uploadFunc(ctx, file, filename)
}

func (f *fakeCloudinary) DeleteImage(ctx context.Context, publicID string) error {
	if f.deleteFunc == nil {
		return nil
	}
	return f.deleteFunc(ctx, publicID)
}

func TestProductService_UploadImage(t *testing.T) {
	newSvc := func(t *testing.T, cld *fakeCloudinary) product.Service {
		ctrl := gomock.NewController(t)
		return product.NewService(product.Deps{
			Repo:       mockProduct.NewMockRepository(ctrl),
			Cloudinary: cld,
			Filter:     catalog.FilterQuery,
		})
	}

	t.Run("Success", func(t *testing.T) {
		svc := newSvc(t, &fakeCloudinary{
			uploadFunc: func(_ context.Context, _ multipart.File, filename string) (string, error) {
				assert.Equal(t, "mug.jpg", filename)
				return "https://res.cloudinary.com/demo/mug.jpg", nil
			},
		})

		url, err := svc.UploadImage(context.Background(), nil, "mug.jpg")

		assert.NoError(t, err)
		assert.Equal(t, "https://res.cloudinary.com/demo/mug.jpg", url)
	})

	t.Run("Failed_UploadError", func(t *testing.T) {
		svc := newSvc(t, &fakeCloudinary{
			uploadFunc: func(_ context.Context, _ multipart.File, _ string) (string, error) {
				return "", errors.New("cloudinary unavailable")
			},
		})

		_, err := svc.UploadImage(context.Background(), nil, "mug.jpg")

		assert.ErrorIs(t, err, producterrors.ErrImageUploadFailed)
	})
}
