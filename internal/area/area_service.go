package area

import (
	"context"
	"errors"
	"regexp"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	areaerrors "go-giftstore-api/internal/area/errors"
)

var pincodeRe = regexp.MustCompile(`^[1-9][0-9]{5}$`)

//go:generate mockgen -source=area_service.go -destination=../mock/area/area_service_mock.go -package=mock
type Service interface {
	List(ctx context.Context) ([]Area, error)
	// CheckPincode reports whether a pincode is serviceable, and by which
	// area. An unknown pincode is a negative answer, not an error.
	CheckPincode(ctx context.Context, pincode string) (PincodeResponse, error)

	Create(ctx context.Context, req AreaRequest) (Area, error)
	Update(ctx context.Context, id string, req AreaRequest) (Area, error)
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

func (s *service) List(ctx context.Context) ([]Area, error) {
	return s.repo.ListAll(ctx)
}

func (s *service) CheckPincode(ctx context.Context, pincode string) (PincodeResponse, error) {
	if !pincodeRe.MatchString(pincode) {
		return PincodeResponse{}, areaerrors.ErrInvalidPincode
	}

	a, err := s.repo.FindByPincode(ctx, pincode)
	if err != nil {
		if errors.Is(err, areaerrors.ErrAreaNotFound) {
			return PincodeResponse{Pincode: pincode, Serviceable: false}, nil
		}
		return PincodeResponse{}, err
	}

	return PincodeResponse{
		Pincode:     pincode,
		Serviceable: true,
		Area:        a.Name,
		Zone:        a.Zone,
	}, nil
}

func (s *service) Create(ctx context.Context, req AreaRequest) (Area, error) {
	if err := s.validate.Struct(req); err != nil {
		return Area{}, areaerrors.ErrInvalidPincode
	}
	for _, pc := range req.Pincodes {
		if !pincodeRe.MatchString(pc) {
			return Area{}, areaerrors.ErrInvalidPincode
		}
	}

	now := time.Now()
	a := Area{
		ID:        uuid.NewString(),
		Name:      req.Name,
		Pincodes:  req.Pincodes,
		Zone:      req.Zone,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, a); err != nil {
		return Area{}, err
	}
	return a, nil
}

func (s *service) Update(ctx context.Context, id string, req AreaRequest) (Area, error) {
	if err := s.validate.Struct(req); err != nil {
		return Area{}, areaerrors.ErrInvalidPincode
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Area{}, err
	}

	existing.Name = req.Name
	existing.Pincodes = req.Pincodes
	existing.Zone = req.Zone
	existing.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, existing); err != nil {
		return Area{}, err
	}
	return existing, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
