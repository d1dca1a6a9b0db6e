package cart

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	carterrors "go-giftstore-api/internal/cart/errors"
	"go-giftstore-api/internal/product"
)

// State tracks where a session sits in the guest/authenticated lifecycle.
type State int

const (
	// StateGuest: only the local store is authoritative.
	StateGuest State = iota
	// StateAuthenticatedUnsynced: an identity arrived but the local and
	// remote carts have not been reconciled yet.
	StateAuthenticatedUnsynced
	// StateAuthenticatedSynced: local and remote hold the same items.
	StateAuthenticatedSynced
)

// Session identifies one storefront session: the device-scoped session id is
// always present, the user id only after sign-in.
type Session struct {
	SessionID string
	UserID    string
}

func (s Session) authenticated() bool {
	return strings.TrimSpace(s.UserID) != ""
}

// remoteWriteTimeout bounds the background remote sync that follows a local
// mutation.
const remoteWriteTimeout = 10 * time.Second

//go:generate mockgen -source=cart_service.go -destination=../mock/cart/cart_service_mock.go -package=mock
type Service interface {
	Items(ctx context.Context, sess Session) ([]Item, error)
	AddItem(ctx context.Context, sess Session, req AddItemRequest) ([]Item, error)
	RemoveItem(ctx context.Context, sess Session, index int) ([]Item, error)
	Clear(ctx context.Context, sess Session) error

	// SignIn runs the one-time merge after the identity provider reports a
	// user id, converging both stores on the merged cart.
	SignIn(ctx context.Context, sess Session) ([]Item, error)
	// SignOut flushes the current cart to the remote store, then reverts the
	// session to guest. The local cart is kept.
	SignOut(ctx context.Context, sess Session) error

	SessionState(sessionID string) State
}

type service struct {
	local    LocalStore
	remote   RemoteStore
	products product.Repository
	validate *validator.Validate
	logger   *zap.Logger

	mu     sync.Mutex
	states map[string]State
}

type Deps struct {
	Local    LocalStore
	Remote   RemoteStore
	Products product.Repository
	Logger   *zap.Logger
}

func NewService(deps Deps) Service {
	if deps.Local == nil {
		panic("local cart store cannot be nil")
	}
	if deps.Remote == nil {
		panic("remote cart store cannot be nil")
	}
	if deps.Products == nil {
		panic("product repository cannot be nil")
	}
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}

	return &service{
		local:    deps.Local,
		remote:   deps.Remote,
		products: deps.Products,
		validate: validator.New(),
		logger:   deps.Logger,
		states:   make(map[string]State),
	}
}

func (s *service) SessionState(sessionID string) State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.states[sessionID]
}

func (s *service) setState(sessionID string, st State) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if st == StateGuest {
		delete(s.states, sessionID)
		return
	}
	s.states[sessionID] = st
}

func (s *service) Items(ctx context.Context, sess Session) ([]Item, error) {
	if strings.TrimSpace(sess.SessionID) == "" {
		return nil, carterrors.ErrSessionRequired
	}
	return s.local.Read(ctx, sess.SessionID)
}

func (s *service) AddItem(ctx context.Context, sess Session, req AddItemRequest) ([]Item, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, carterrors.MapValidationError(err)
	}
	if strings.TrimSpace(sess.SessionID) == "" {
		return nil, carterrors.ErrSessionRequired
	}

	// Value copy at add time: later product edits must not touch this line.
	p, err := s.products.GetByID(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}

	items, err := s.local.Read(ctx, sess.SessionID)
	if err != nil {
		return nil, err
	}

	items = Add(items, p, req.Quantity, req.Personalization)

	if err := s.local.Write(ctx, sess.SessionID, items); err != nil {
		return nil, err
	}

	s.syncRemoteAsync(sess, items)
	return items, nil
}

func (s *service) RemoveItem(ctx context.Context, sess Session, index int) ([]Item, error) {
	if strings.TrimSpace(sess.SessionID) == "" {
		return nil, carterrors.ErrSessionRequired
	}

	items, err := s.local.Read(ctx, sess.SessionID)
	if err != nil {
		return nil, err
	}

	items = Remove(items, index)

	if err := s.local.Write(ctx, sess.SessionID, items); err != nil {
		return nil, err
	}

	s.syncRemoteAsync(sess, items)
	return items, nil
}

func (s *service) Clear(ctx context.Context, sess Session) error {
	if strings.TrimSpace(sess.SessionID) == "" {
		return carterrors.ErrSessionRequired
	}

	if err := s.local.Clear(ctx, sess.SessionID); err != nil {
		return err
	}

	s.syncRemoteAsync(sess, []Item{})
	return nil
}

func (s *service) SignIn(ctx context.Context, sess Session) ([]Item, error) {
	if strings.TrimSpace(sess.SessionID) == "" {
		return nil, carterrors.ErrSessionRequired
	}
	if !sess.authenticated() {
		return nil, carterrors.ErrUserRequired
	}

	s.setState(sess.SessionID, StateAuthenticatedUnsynced)

	local, err := s.local.Read(ctx, sess.SessionID)
	if err != nil {
		return nil, err
	}

	// A user with no prior cart document reads as an empty remote cart.
	remote, err := s.remote.Read(ctx, sess.UserID)
	if err != nil {
		return nil, err
	}

	merged := Merge(local, remote)

	// Both stores converge on the merged cart; the remote write is part of
	// the merge itself, so its failure keeps the session unsynced.
	if err := s.remote.Write(ctx, sess.UserID, merged); err != nil {
		return nil, err
	}
	if err := s.local.Write(ctx, sess.SessionID, merged); err != nil {
		return nil, err
	}

	s.setState(sess.SessionID, StateAuthenticatedSynced)
	return merged, nil
}

func (s *service) SignOut(ctx context.Context, sess Session) error {
	if strings.TrimSpace(sess.SessionID) == "" {
		return carterrors.ErrSessionRequired
	}
	if !sess.authenticated() {
		return carterrors.ErrUserRequired
	}

	items, err := s.local.Read(ctx, sess.SessionID)
	if err != nil {
		return err
	}

	// Flush before the identity goes away. The local cart stays: guest mode
	// continues with the same items.
	if err := s.remote.Write(ctx, sess.UserID, items); err != nil {
		return err
	}

	s.setState(sess.SessionID, StateGuest)
	return nil
}

// syncRemoteAsync pushes the cart to the remote store without blocking the
// caller. Failures are logged and swallowed; the local cart stays
// authoritative and the stores stay divergent until the next successful
// write or the next sign-in merge.
func (s *service) syncRemoteAsync(sess Session, items []Item) {
	if !sess.authenticated() {
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), remoteWriteTimeout)
		defer cancel()

		if err := s.remote.Write(ctx, sess.UserID, items); err != nil {
			s.logger.Warn("remote cart sync failed",
				zap.String("user_id", sess.UserID),
				zap.Error(err),
			)
		}
	}()
}
