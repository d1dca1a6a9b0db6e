package address

import (
	"context"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	addresserrors "go-giftstore-api/internal/address/errors"
	"go-giftstore-api/internal/area"
)

//go:generate mockgen -source=address_service.go -destination=../mock/address/address_service_mock.go -package=mock
type Service interface {
	ListByUser(ctx context.Context, userID string) ([]Address, error)
	GetDefault(ctx context.Context, userID string) (Address, error)

	// Create and Update verify the pincode is serviceable before saving, so
	// checkout never has to reject an address it already accepted.
	Create(ctx context.Context, userID string, req SaveAddressRequest) (Address, error)
	Update(ctx context.Context, userID, id string, req SaveAddressRequest) (Address, error)
	Delete(ctx context.Context, userID, id string) error
}

type service struct {
	repo     Repository
	areas    area.Service
	validate *validator.Validate
}

type Deps struct {
	Repo  Repository
	Areas area.Service
}

func NewService(deps Deps) Service {
	if deps.Repo == nil {
		panic("address repository cannot be nil")
	}
	if deps.Areas == nil {
		panic("area service cannot be nil")
	}

	return &service{
		repo:     deps.Repo,
		areas:    deps.Areas,
		validate: validator.New(),
	}
}

func (s *service) ListByUser(ctx context.Context, userID string) ([]Address, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *service) GetDefault(ctx context.Context, userID string) (Address, error) {
	return s.repo.GetDefault(ctx, userID)
}

func (s *service) Create(ctx context.Context, userID string, req SaveAddressRequest) (Address, error) {
	if err := s.validate.Struct(req); err != nil {
		return Address{}, addresserrors.MapValidationError(err)
	}

	areaName, err := s.serviceableArea(ctx, req.Pincode)
	if err != nil {
		return Address{}, err
	}

	now := time.Now()
	a := Address{
		ID:           uuid.NewString(),
		UserID:       userID,
		FullName:     req.FullName,
		PhoneNumber:  req.PhoneNumber,
		HouseNumber:  req.HouseNumber,
		BuildingName: req.BuildingName,
		Street:       req.Street,
		Landmark:     req.Landmark,
		Area:         areaName,
		Pincode:      req.Pincode,
		AddressType:  req.AddressType,
		IsDefault:    req.IsDefault,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if a.IsDefault {
		if err := s.clearDefault(ctx, userID); err != nil {
			return Address{}, err
		}
	}

	if err := s.repo.Create(ctx, a); err != nil {
		return Address{}, err
	}
	return a, nil
}

func (s *service) Update(ctx context.Context, userID, id string, req SaveAddressRequest) (Address, error) {
	if err := s.validate.Struct(req); err != nil {
		return Address{}, addresserrors.MapValidationError(err)
	}

	existing, err := s.owned(ctx, userID, id)
	if err != nil {
		return Address{}, err
	}

	areaName, err := s.serviceableArea(ctx, req.Pincode)
	if err != nil {
		return Address{}, err
	}

	existing.FullName = req.FullName
	existing.PhoneNumber = req.PhoneNumber
	existing.HouseNumber = req.HouseNumber
	existing.BuildingName = req.BuildingName
	existing.Street = req.Street
	existing.Landmark = req.Landmark
	existing.Area = areaName
	existing.Pincode = req.Pincode
	existing.AddressType = req.AddressType
	existing.UpdatedAt = time.Now()

	if req.IsDefault && !existing.IsDefault {
		if err := s.clearDefault(ctx, userID); err != nil {
			return Address{}, err
		}
	}
	existing.IsDefault = req.IsDefault

	if err := s.repo.Update(ctx, existing); err != nil {
		return Address{}, err
	}
	return existing, nil
}

func (s *service) Delete(ctx context.Context, userID, id string) error {
	if _, err := s.owned(ctx, userID, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// owned fetches an address and verifies it belongs to the caller.
func (s *service) owned(ctx context.Context, userID, id string) (Address, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Address{}, err
	}
	if a.UserID != userID {
		return Address{}, addresserrors.ErrAddressForbidden
	}
	return a, nil
}

func (s *service) serviceableArea(ctx context.Context, pincode string) (string, error) {
	res, err := s.areas.CheckPincode(ctx, pincode)
	if err != nil {
		return "", err
	}
	if !res.Serviceable {
		return "", addresserrors.ErrAreaNotServiceable
	}
	return res.Area, nil
}

// clearDefault unsets the previous default so at most one address per user
// carries the flag.
func (s *service) clearDefault(ctx context.Context, userID string) error {
	prev, err := s.repo.GetDefault(ctx, userID)
	if err != nil {
		if errors.Is(err, addresserrors.ErrAddressNotFound) {
			return nil
		}
		return err
	}

	prev.IsDefault = false
	prev.UpdatedAt = time.Now()
	return s.repo.Update(ctx, prev)
}
