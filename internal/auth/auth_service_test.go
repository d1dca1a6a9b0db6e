package auth_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"go-giftstore-api/internal/auth"
	autherrors "go-giftstore-api/internal/auth/errors"
	mockAuth "go-giftstore-api/internal/mock/auth"
)

const testSecret = "test-admin-secret"

func newTestService(t *testing.T) (auth.Service, *mockAuth.MockRepository) {
	t.Setenv("ADMIN_JWT_SECRET", testSecret)
	ctrl := gomock.NewController(t)
	repo := mockAuth.NewMockRepository(ctrl)
	return auth.NewService(repo), repo
}

func adminFixture(t *testing.T, password string) auth.Admin {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)
	return auth.Admin{
		Email:        "admin@martini.example",
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}
}

func TestAuthService_Login(t *testing.T) {
	req := auth.LoginRequest{Email: "admin@martini.example", Password: "correct-horse"}

	t.Run("Success", func(t *testing.T) {
		svc, repo := newTestService(t)

		repo.EXPECT().
			GetByEmail(gomock.Any(), req.Email).
			Return(adminFixture(t, req.Password), nil)

		token, session, err := svc.Login(context.Background(), req)

		assert.NoError(t, err)
		assert.Equal(t, req.Email, session.Email)
		assert.WithinDuration(t, time.Now().Add(24*time.Hour), session.ExpiresAt, time.Minute)

		parsed, err := jwt.Parse(token, func(*jwt.Token) (any, error) {
			return []byte(testSecret), nil
		})
		assert.NoError(t, err)
		claims := parsed.Claims.(jwt.MapClaims)
		assert.Equal(t, req.Email, claims["email"])
	})

	t.Run("Failed_WrongPassword", func(t *testing.T) {
		svc, repo := newTestService(t)

		repo.EXPECT().
			GetByEmail(gomock.Any(), req.Email).
			Return(adminFixture(t, "something-else"), nil)

		_, _, err := svc.Login(context.Background(), req)

		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	})

	t.Run("Failed_UnknownAdmin", func(t *testing.T) {
		svc, repo := newTestService(t)

		repo.EXPECT().
			GetByEmail(gomock.Any(), req.Email).
			Return(auth.Admin{}, autherrors.ErrAdminNotFound)

		_, _, err := svc.Login(context.Background(), req)

		// unknown email is reported the same as a bad password
		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	})

	t.Run("Failed_RepoError", func(t *testing.T) {
		svc, repo := newTestService(t)

		repoErr := errors.New("firestore unavailable")
		repo.EXPECT().
			GetByEmail(gomock.Any(), req.Email).
			Return(auth.Admin{}, repoErr)

		_, _, err := svc.Login(context.Background(), req)

		assert.ErrorIs(t, err, repoErr)
	})

	t.Run("Failed_Validation", func(t *testing.T) {
		svc, _ := newTestService(t)

		_, _, err := svc.Login(context.Background(), auth.LoginRequest{
			Email:    "not-an-email",
			Password: "short",
		})

		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	})
}
