package order

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"go-giftstore-api/internal/address"
	"go-giftstore-api/internal/cart"
	"go-giftstore-api/internal/email"
	ordererrors "go-giftstore-api/internal/order/errors"
	"go-giftstore-api/internal/outbox"
	"go-giftstore-api/internal/whatsapp"
)

const (
	EventOrderCreated = "ORDER_CREATED"
	aggregateOrder    = "order"

	defaultPageLimit = 20
	maxPageLimit     = 100
)

//go:generate mockgen -source=order_service.go -destination=../mock/order/order_service_mock.go -package=mock
type Service interface {
	// Checkout freezes the current cart into an order and returns the
	// wa.me link the storefront opens. The order is saved before the
	// hand-off; clearing the cart happens downstream off the outbox event.
	Checkout(ctx context.Context, sess cart.Session, req CheckoutRequest) (CheckoutResponse, error)

	// Customer order history.
	History(ctx context.Context, userID string) ([]Order, error)
	Detail(ctx context.Context, userID, orderID string) (Order, error)

	// Admin actions.
	ListAdmin(ctx context.Context, q ListOrdersQuery) (ListOrdersResponse, error)
	UpdateStatus(ctx context.Context, orderID, next string) (Order, error)
}

type service struct {
	repo      Repository
	cart      cart.Service
	addresses address.Service
	whatsapp  whatsapp.Service
	outbox    outbox.Repository
	email     email.Service
	validate  *validator.Validate
	logger    *zap.Logger
}

type Deps struct {
	Repo      Repository
	Cart      cart.Service
	Addresses address.Service
	WhatsApp  whatsapp.Service
	Outbox    outbox.Repository
	Email     email.Service
	Logger    *zap.Logger
}

func NewService(deps Deps) Service {
	if deps.Repo == nil {
		panic("order repository cannot be nil")
	}
	if deps.Cart == nil {
		panic("cart service cannot be nil")
	}
	if deps.WhatsApp == nil {
		panic("whatsapp service cannot be nil")
	}
	if deps.Outbox == nil {
		panic("outbox repository cannot be nil")
	}
	if deps.Email == nil {
		deps.Email = email.NewNoopService()
	}
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}

	return &service{
		repo:      deps.Repo,
		cart:      deps.Cart,
		addresses: deps.Addresses,
		whatsapp:  deps.WhatsApp,
		outbox:    deps.Outbox,
		email:     deps.Email,
		validate:  validator.New(),
		logger:    deps.Logger,
	}
}

func (s *service) Checkout(ctx context.Context, sess cart.Session, req CheckoutRequest) (CheckoutResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return CheckoutResponse{}, ordererrors.MapValidationError(err)
	}

	items, err := s.cart.Items(ctx, sess)
	if err != nil {
		return CheckoutResponse{}, err
	}
	if len(items) == 0 {
		return CheckoutResponse{}, ordererrors.ErrEmptyCart
	}

	now := time.Now()
	o := Order{
		ID:           uuid.NewString(),
		UserID:       sess.UserID,
		CustomerName: req.CustomerName,
		Phone:        req.Phone,
		Items:        items,
		ItemCount:    cart.Count(items),
		Total:        cart.Total(items),
		Status:       StatusConfirmed,
		Note:         req.Note,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	// Guests checkout without a saved address; signed-in customers may
	// attach one, which snapshots it onto the order.
	if req.AddressID != "" && sess.UserID != "" && s.addresses != nil {
		addr, err := s.addresses.ListByUser(ctx, sess.UserID)
		if err != nil {
			return CheckoutResponse{}, err
		}
		for i := range addr {
			if addr[i].ID == req.AddressID {
				o.Address = &addr[i]
				break
			}
		}
	}

	if err := s.repo.Create(ctx, o); err != nil {
		return CheckoutResponse{}, err
	}

	s.enqueueOrderCreated(ctx, o, sess)
	go s.notifyStore(o)

	return CheckoutResponse{
		Order:       o,
		WhatsAppURL: s.whatsapp.OrderURL(items),
	}, nil
}

// enqueueOrderCreated writes the outbox event. The order itself is already
// durable, so a failure here is logged and swallowed rather than failing
// the checkout.
func (s *service) enqueueOrderCreated(ctx context.Context, o Order, sess cart.Session) {
	payload, err := json.Marshal(OrderCreatedPayload{
		OrderID:   o.ID,
		UserID:    o.UserID,
		SessionID: sess.SessionID,
		Total:     o.Total,
	})
	if err != nil {
		s.logger.Error("order event payload marshal failed", zap.String("order_id", o.ID), zap.Error(err))
		return
	}

	if _, err := s.outbox.Add(ctx, EventOrderCreated, aggregateOrder, o.ID, payload); err != nil {
		s.logger.Error("order event enqueue failed", zap.String("order_id", o.ID), zap.Error(err))
	}
}

// notifyStore mails the store owner off the request path. The customer is
// already holding the WhatsApp link, so a failed mail only gets a log line.
func (s *service) notifyStore(o Order) {
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel()

	if err := s.email.SendOrderNotification(ctx, o.ID, o.CustomerName, o.ItemCount, o.Total); err != nil {
		s.logger.Warn("order notification mail failed", zap.String("order_id", o.ID), zap.Error(err))
	}
}

func (s *service) History(ctx context.Context, userID string) ([]Order, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *service) Detail(ctx context.Context, userID, orderID string) (Order, error) {
	o, err := s.repo.GetByID(ctx, orderID)
	if err != nil {
		return Order{}, err
	}
	if o.UserID != userID {
		return Order{}, ordererrors.ErrOrderForbidden
	}
	return o, nil
}

func (s *service) ListAdmin(ctx context.Context, q ListOrdersQuery) (ListOrdersResponse, error) {
	if q.Status != "" && !ValidStatus(q.Status) {
		return ListOrdersResponse{}, ordererrors.ErrInvalidStatus
	}

	page := q.Page
	if page < 1 {
		page = 1
	}
	limit := q.Limit
	if limit < 1 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}

	orders, err := s.repo.ListAll(ctx, q.Status, (page-1)*limit, limit)
	if err != nil {
		return ListOrdersResponse{}, err
	}

	return ListOrdersResponse{
		Orders: orders,
		Page:   page,
		Limit:  limit,
	}, nil
}

func (s *service) UpdateStatus(ctx context.Context, orderID, next string) (Order, error) {
	if !ValidStatus(next) {
		return Order{}, ordererrors.ErrInvalidStatus
	}

	o, err := s.repo.GetByID(ctx, orderID)
	if err != nil {
		return Order{}, err
	}

	if !CanTransition(o.Status, next) {
		return Order{}, ordererrors.ErrInvalidTransition
	}

	o.Status = next
	o.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, o); err != nil {
		return Order{}, err
	}

	s.logger.Info("order status updated",
		zap.String("order_id", o.ID),
		zap.String("status", next),
	)

	return o, nil
}
