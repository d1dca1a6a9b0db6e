package auth

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	autherrors "go-giftstore-api/internal/auth/errors"
)

const sessionTTL = 24 * time.Hour

// AdminSession is the explicit session value handed to admin handlers.
// It is created by Login and reconstructed per request from the verified
// token claims; nothing holds it globally.
type AdminSession struct {
	Email     string
	ExpiresAt time.Time
}

// SessionFromContext rebuilds the session from the claims the admin
// middleware verified. The bool reports whether an admin is logged in.
func SessionFromContext(ctx *gin.Context) (AdminSession, bool) {
	email := ctx.GetString("admin_email")
	if email == "" {
		return AdminSession{}, false
	}
	return AdminSession{Email: email}, true
}

//go:generate mockgen -source=auth_service.go -destination=../mock/auth/auth_service_mock.go -package=mock
type Service interface {
	// Login verifies admin credentials and returns a signed session token
	// together with the session it encodes.
	Login(ctx context.Context, req LoginRequest) (string, AdminSession, error)
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

func (s *service) Login(ctx context.Context, req LoginRequest) (string, AdminSession, error) {
	if err := s.validate.Struct(req); err != nil {
		return "", AdminSession{}, autherrors.ErrInvalidCredentials
	}

	admin, err := s.repo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, autherrors.ErrAdminNotFound) {
			// don't reveal which part was wrong
			return "", AdminSession{}, autherrors.ErrInvalidCredentials
		}
		return "", AdminSession{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(req.Password)); err != nil {
		return "", AdminSession{}, autherrors.ErrInvalidCredentials
	}

	session := AdminSession{
		Email:     admin.Email,
		ExpiresAt: time.Now().Add(sessionTTL),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"email": session.Email,
		"exp":   session.ExpiresAt.Unix(),
		"iat":   time.Now().Unix(),
	})

	signed, err := token.SignedString([]byte(os.Getenv("ADMIN_JWT_SECRET")))
	if err != nil {
		return "", AdminSession{}, autherrors.ErrTokenGenerationFailed
	}

	return signed, session, nil
}
