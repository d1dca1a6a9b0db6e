package product

import (
	"context"
	"mime/multipart"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"go-giftstore-api/internal/cloudinary"
	producterrors "go-giftstore-api/internal/product/errors"
)

//go:generate mockgen -source=product_service.go -destination=../mock/product/product_service_mock.go -package=mock
type Service interface {
	// List returns the catalog filtered by the query, preserving catalog
	// order, plus counts for the "showing X of Y" header.
	List(ctx context.Context, q ListQuery) (ListResponse, error)
	Detail(ctx context.Context, id string) (Product, error)

	// Admin actions
	Create(ctx context.Context, req CreateProductRequest) (Product, error)
	Update(ctx context.Context, id string, req UpdateProductRequest) (Product, error)
	Delete(ctx context.Context, id string) error
	UploadImage(ctx context.Context, file multipart.File, filename string) (string, error)
}

// Filterer is satisfied by the catalog filter engine; it is injected so the
// engine stays a pure function with no service dependencies.
type Filterer func(products []Product, q ListQuery) []Product

type service struct {
	repo       Repository
	cloudinary cloudinary.Service
	filter     Filterer
	validate   *validator.Validate
	logger     *zap.Logger
}

type Deps struct {
	Repo       Repository
	Cloudinary cloudinary.Service
	Filter     Filterer
	Logger     *zap.Logger
}

func NewService(deps Deps) Service {
	if deps.Repo == nil {
		panic("product repository cannot be nil")
	}
	if deps.Filter == nil {
		panic("catalog filter cannot be nil")
	}
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}

	return &service{
		repo:       deps.Repo,
		cloudinary: deps.Cloudinary,
		filter:     deps.Filter,
		validate:   validator.New(),
		logger:     deps.Logger,
	}
}

func (s *service) List(ctx context.Context, q ListQuery) (ListResponse, error) {
	products, err := s.repo.ListAll(ctx)
	if err != nil {
		return ListResponse{}, err
	}

	matched := s.filter(products, q)

	return ListResponse{
		Products:     matched,
		Matched:      len(matched),
		TotalCatalog: len(products),
	}, nil
}

func (s *service) Detail(ctx context.Context, id string) (Product, error) {
	if id == "" {
		return Product{}, producterrors.ErrInvalidProductID
	}
	return s.repo.GetByID(ctx, id)
}

func (s *service) Create(ctx context.Context, req CreateProductRequest) (Product, error) {
	if err := s.validate.Struct(req); err != nil {
		return Product{}, producterrors.MapValidationError(err)
	}

	now := time.Now()
	p := Product{
		ID:                     uuid.NewString(),
		Name:                   req.Name,
		Description:            req.Description,
		Instructions:           req.Instructions,
		DeliveryInfo:           req.DeliveryInfo,
		Price:                  req.Price,
		Category:               req.Category,
		Subcategory:            req.Subcategory,
		Images:                 req.Images,
		Tags:                   req.Tags,
		IsPersonalizable:       req.IsPersonalizable,
		PersonalizationOptions: req.PersonalizationOptions,
		CreatedAt:              now,
		UpdatedAt:              now,
	}

	if _, err := s.repo.Create(ctx, p); err != nil {
		return Product{}, err
	}

	s.logger.Info("product created", zap.String("product_id", p.ID), zap.String("name", p.Name))
	return p, nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateProductRequest) (Product, error) {
	if id == "" {
		return Product{}, producterrors.ErrInvalidProductID
	}
	if err := s.validate.Struct(req); err != nil {
		return Product{}, producterrors.MapValidationError(err)
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Product{}, err
	}

	// Rating aggregates are owned by the review service; keep them.
	updated := Product{
		ID:                     existing.ID,
		Name:                   req.Name,
		Description:            req.Description,
		Instructions:           req.Instructions,
		DeliveryInfo:           req.DeliveryInfo,
		Price:                  req.Price,
		Category:               req.Category,
		Subcategory:            req.Subcategory,
		Images:                 req.Images,
		Tags:                   req.Tags,
		IsPersonalizable:       req.IsPersonalizable,
		PersonalizationOptions: req.PersonalizationOptions,
		AverageRating:          existing.AverageRating,
		ReviewCount:            existing.ReviewCount,
		CreatedAt:              existing.CreatedAt,
		UpdatedAt:              time.Now(),
	}

	if err := s.repo.Update(ctx, updated); err != nil {
		return Product{}, err
	}
	return updated, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if id == "" {
		return producterrors.ErrInvalidProductID
	}

	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	// Orphaned images are a cosmetic leak, not a data problem; clean them up
	// but never fail the delete over it.
	if s.cloudinary != nil {
		for _, img := range p.Images {
			publicID := cloudinary.ExtractPublicID(img)
			if publicID == "" {
				continue
			}
			if err := s.cloudinary.DeleteImage(ctx, publicID); err != nil {
				s.logger.Warn("image cleanup failed", zap.String("product_id", id), zap.String("public_id", publicID), zap.Error(err))
			}
		}
	}

	return nil
}

func (s *service) UploadImage(ctx context.Context, file multipart.File, filename string) (string, error) {
	url, err := s.cloudinary.UploadImage(ctx, file, filename)
	if err != nil {
		s.logger.Error("image upload failed", zap.String("filename", filename), zap.Error(err))
		return "", producterrors.ErrImageUploadFailed
	}
	return url, nil
}
