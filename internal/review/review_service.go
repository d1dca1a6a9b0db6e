package review

import (
	"context"
	"math"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"go-giftstore-api/internal/product"
	reviewerrors "go-giftstore-api/internal/review/errors"
)

//go:generate mockgen -source=review_service.go -destination=../mock/review/review_service_mock.go -package=mock
type Service interface {
	// Add stores the review and folds it into the product's rating
	// aggregate so listings never have to scan the reviews collection.
	Add(ctx context.Context, productID, userID string, req AddReviewRequest) (Review, error)
	ListByProduct(ctx context.Context, productID string) (ListReviewsResponse, error)
}

type service struct {
	repo     Repository
	products product.Repository
	validate *validator.Validate
	logger   *zap.Logger
}

type Deps struct {
	Repo     Repository
	Products product.Repository
	Logger   *zap.Logger
}

func NewService(deps Deps) Service {
	if deps.Repo == nil {
		panic("review repository cannot be nil")
	}
	if deps.Products == nil {
		panic("product repository cannot be nil")
	}
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}

	return &service{
		repo:     deps.Repo,
		products: deps.Products,
		validate: validator.New(),
		logger:   deps.Logger,
	}
}

func (s *service) Add(ctx context.Context, productID, userID string, req AddReviewRequest) (Review, error) {
	if err := s.validate.Struct(req); err != nil {
		return Review{}, reviewerrors.MapValidationError(err)
	}

	p, err := s.products.GetByID(ctx, productID)
	if err != nil {
		return Review{}, err
	}

	rev := Review{
		ID:           uuid.NewString(),
		ProductID:    productID,
		UserID:       userID,
		CustomerName: req.CustomerName,
		Rating:       req.Rating,
		Comment:      req.Comment,
		CreatedAt:    time.Now(),
	}

	if err := s.repo.Create(ctx, rev); err != nil {
		return Review{}, err
	}

	// Incremental aggregate update; rounded to two decimals like the
	// storefront displays it.
	count := p.ReviewCount + 1
	average := (p.AverageRating*float64(p.ReviewCount) + float64(req.Rating)) / float64(count)
	average = math.Round(average*100) / 100

	if err := s.products.SetRating(ctx, productID, average, count); err != nil {
		// The review itself is saved; a stale aggregate self-corrects on
		// the next review.
		s.logger.Error("rating aggregate update failed",
			zap.String("product_id", productID),
			zap.Error(err),
		)
	}

	return rev, nil
}

func (s *service) ListByProduct(ctx context.Context, productID string) (ListReviewsResponse, error) {
	p, err := s.products.GetByID(ctx, productID)
	if err != nil {
		return ListReviewsResponse{}, err
	}

	reviews, err := s.repo.ListByProduct(ctx, productID)
	if err != nil {
		return ListReviewsResponse{}, err
	}

	return ListReviewsResponse{
		Reviews:       reviews,
		AverageRating: p.AverageRating,
		Count:         p.ReviewCount,
	}, nil
}
