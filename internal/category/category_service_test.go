package category_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"go-giftstore-api/internal/category"
	categoryerrors "go-giftstore-api/internal/category/errors"
)

type fakeRepo struct {
	categories    map[string]category.Category
	subcategories map[string]category.Subcategory
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		categories:    make(map[string]category.Category),
		subcategories: make(map[string]category.Subcategory),
	}
}

func (f *fakeRepo) ListAll(_ context.Context) ([]category.Category, error) {
	out := make([]category.Category, 0, len(f.categories))
	for _, c := range f.categories {
		out = append(out, c)
	}
	return out, nil
}

func (f *fakeRepo) GetByID(_ context.Context, id string) (category.Category, error) {
	c, ok := f.categories[id]
	if !ok {
		return category.Category{}, categoryerrors.ErrCategoryNotFound
	}
	return c, nil
}

func (f *fakeRepo) Create(_ context.Context, c category.Category) error {
	f.categories[c.ID] = c
	return nil
}

func (f *fakeRepo) Update(_ context.Context, c category.Category) error {
	f.categories[c.ID] = c
	return nil
}

func (f *fakeRepo) Delete(_ context.Context, id string) error {
	delete(f.categories, id)
	return nil
}

func (f *fakeRepo) ListSubcategories(_ context.Context, categoryID string) ([]category.Subcategory, error) {
	var out []category.Subcategory
	for _, sc := range f.subcategories {
		if sc.CategoryID == categoryID {
			out = append(out, sc)
		}
	}
	return out, nil
}

func (f *fakeRepo) CreateSubcategory(_ context.Context, sc category.Subcategory) error {
	f.subcategories[sc.ID] = sc
	return nil
}

func (f *fakeRepo) DeleteSubcategory(_ context.Context, id string) error {
	delete(f.subcategories, id)
	return nil
}

func TestCategoryService_Create(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc := category.NewService(newFakeRepo())

		c, err := svc.Create(context.Background(), category.CreateCategoryRequest{
			Name: "Baby Shower",
			Slug: "baby-shower",
		})

		assert.NoError(t, err)
		assert.NotEmpty(t, c.ID)
		assert.Equal(t, "Baby Shower", c.Name)
	})

	t.Run("Failed_MissingSlug", func(t *testing.T) {
		svc := category.NewService(newFakeRepo())

		_, err := svc.Create(context.Background(), category.CreateCategoryRequest{Name: "Hampers"})

		assert.ErrorIs(t, err, categoryerrors.ErrInvalidCategory)
	})
}

func TestCategoryService_Update(t *testing.T) {
	repo := newFakeRepo()
	svc := category.NewService(repo)

	created, err := svc.Create(context.Background(), category.CreateCategoryRequest{
		Name: "Corporate",
		Slug: "corporate",
	})
	assert.NoError(t, err)

	updated, err := svc.Update(context.Background(), created.ID, category.UpdateCategoryRequest{
		Name:  "Corporate Gifting",
		Slug:  "corporate",
		Order: 2,
	})

	assert.NoError(t, err)
	assert.Equal(t, "Corporate Gifting", updated.Name)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)

	_, err = svc.Update(context.Background(), "missing", category.UpdateCategoryRequest{Name: "X", Slug: "x"})
	assert.ErrorIs(t, err, categoryerrors.ErrCategoryNotFound)
}

func TestCategoryService_Subcategories(t *testing.T) {
	repo := newFakeRepo()
	svc := category.NewService(repo)

	parent, err := svc.Create(context.Background(), category.CreateCategoryRequest{
		Name: "Personalized",
		Slug: "personalized",
	})
	assert.NoError(t, err)

	t.Run("Success", func(t *testing.T) {
		sc, err := svc.CreateSubcategory(context.Background(), category.CreateSubcategoryRequest{
			Name:       "Mugs",
			Slug:       "mugs",
			CategoryID: parent.ID,
		})

		assert.NoError(t, err)

		listed, err := svc.ListSubcategories(context.Background(), parent.ID)
		assert.NoError(t, err)
		assert.Len(t, listed, 1)
		assert.Equal(t, sc.ID, listed[0].ID)
	})

	t.Run("Failed_UnknownParent", func(t *testing.T) {
		_, err := svc.CreateSubcategory(context.Background(), category.CreateSubcategoryRequest{
			Name:       "Frames",
			Slug:       "frames",
			CategoryID: "missing",
		})

		assert.ErrorIs(t, err, categoryerrors.ErrCategoryNotFound)
	})
}
