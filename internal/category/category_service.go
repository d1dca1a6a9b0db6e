package category

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	categoryerrors "go-giftstore-api/internal/category/errors"
)

//go:generate mockgen -source=category_service.go -destination=../mock/category/category_service_mock.go -package=mock
type Service interface {
	List(ctx context.Context) ([]Category, error)
	ListSubcategories(ctx context.Context, categoryID string) ([]Subcategory, error)

	Create(ctx context.Context, req CreateCategoryRequest) (Category, error)
	Update(ctx context.Context, id string, req UpdateCategoryRequest) (Category, error)
	Delete(ctx context.Context, id string) error

	CreateSubcategory(ctx context.Context, req CreateSubcategoryRequest) (Subcategory, error)
	DeleteSubcategory(ctx context.Context, id string) error
}

type service struct {
	repo     Repository
	validate *validator.Validate
}

func NewService(repo Repository) Service {
	return &service{
		repo:     repo,
		validate: validator.New(),
	}
}

func (s *service) List(ctx context.Context) ([]Category, error) {
	return s.repo.ListAll(ctx)
}

func (s *service) ListSubcategories(ctx context.Context, categoryID string) ([]Subcategory, error) {
	return s.repo.ListSubcategories(ctx, categoryID)
}

func (s *service) Create(ctx context.Context, req CreateCategoryRequest) (Category, error) {
	if err := s.validate.Struct(req); err != nil {
		return Category{}, categoryerrors.ErrInvalidCategory
	}

	now := time.Now()
	c := Category{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Slug:        req.Slug,
		ImageURL:    req.ImageURL,
		Description: req.Description,
		Order:       req.Order,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, c); err != nil {
		return Category{}, err
	}
	return c, nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateCategoryRequest) (Category, error) {
	if err := s.validate.Struct(req); err != nil {
		return Category{}, categoryerrors.ErrInvalidCategory
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Category{}, err
	}

	existing.Name = req.Name
	existing.Slug = req.Slug
	existing.ImageURL = req.ImageURL
	existing.Description = req.Description
	existing.Order = req.Order
	existing.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, existing); err != nil {
		return Category{}, err
	}
	return existing, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *service) CreateSubcategory(ctx context.Context, req CreateSubcategoryRequest) (Subcategory, error) {
	if err := s.validate.Struct(req); err != nil {
		return Subcategory{}, categoryerrors.ErrInvalidCategory
	}

	// parent must exist
	if _, err := s.repo.GetByID(ctx, req.CategoryID); err != nil {
		return Subcategory{}, err
	}

	sc := Subcategory{
		ID:         uuid.NewString(),
		Name:       req.Name,
		Slug:       req.Slug,
		CategoryID: req.CategoryID,
		Order:      req.Order,
		CreatedAt:  time.Now(),
	}

	if err := s.repo.CreateSubcategory(ctx, sc); err != nil {
		return Subcategory{}, err
	}
	return sc, nil
}

func (s *service) DeleteSubcategory(ctx context.Context, id string) error {
	return s.repo.DeleteSubcategory(ctx, id)
}
