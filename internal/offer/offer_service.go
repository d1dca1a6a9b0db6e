package offer

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	offererrors "go-giftstore-api/internal/offer/errors"
)

//go:generate mockgen -source=offer_service.go -destination=../mock/offer/offer_service_mock.go -package=mock
type Service interface {
	List(ctx context.Context) ([]Offer, error)
	// Applicable filters the offer list down to those usable at the given
	// cart total.
	Applicable(ctx context.Context, total float64) (ApplicableOffersResponse, error)

	Create(ctx context.Context, req SaveOfferRequest) (Offer, error)
	Update(ctx context.Context, id string, req SaveOfferRequest) (Offer, error)
	Delete(ctx context.Context, id string) error
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

func (s *service) List(ctx context.Context) ([]Offer, error) {
	return s.repo.ListAll(ctx)
}

func (s *service) Applicable(ctx context.Context, total float64) (ApplicableOffersResponse, error) {
	offers, err := s.repo.ListAll(ctx)
	if err != nil {
		return ApplicableOffersResponse{}, err
	}

	applicable := make([]Offer, 0, len(offers))
	for _, o := range offers {
		if o.AppliesTo(total) {
			applicable = append(applicable, o)
		}
	}

	return ApplicableOffersResponse{Total: total, Offers: applicable}, nil
}

func (s *service) Create(ctx context.Context, req SaveOfferRequest) (Offer, error) {
	if err := s.validate.Struct(req); err != nil {
		return Offer{}, offererrors.MapValidationError(err)
	}

	now := time.Now()
	o := Offer{
		ID:             uuid.NewString(),
		Provider:       req.Provider,
		Logo:           req.Logo,
		Description:    req.Description,
		Discount:       req.Discount,
		MinTransaction: req.MinTransaction,
		Code:           req.Code,
		Link:           req.Link,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.repo.Create(ctx, o); err != nil {
		return Offer{}, err
	}
	return o, nil
}

func (s *service) Update(ctx context.Context, id string, req SaveOfferRequest) (Offer, error) {
	if err := s.validate.Struct(req); err != nil {
		return Offer{}, offererrors.MapValidationError(err)
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Offer{}, err
	}

	existing.Provider = req.Provider
	existing.Logo = req.Logo
	existing.Description = req.Description
	existing.Discount = req.Discount
	existing.MinTransaction = req.MinTransaction
	existing.Code = req.Code
	existing.Link = req.Link
	existing.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, existing); err != nil {
		return Offer{}, err
	}
	return existing, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
