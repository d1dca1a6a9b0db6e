package auth

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	autherrors "go-giftstore-api/internal/auth/errors"
)

const adminsCollection = "admins"

// Admin is an admin-panel account document (doc id = email).
type Admin struct {
	Email        string    `firestore:"email"`
	PasswordHash string    `firestore:"passwordHash"`
	CreatedAt    time.Time `firestore:"createdAt"`
}

//go:generate mockgen -source=auth_repo.go -destination=../mock/auth/auth_repo_mock.go -package=mock
type Repository interface {
	GetByEmail(ctx context.Context, email string) (Admin, error)
}

type repository struct {
	client *firestore.Client
}

func NewRepository(client *firestore.Client) Repository {
	return &repository{client: client}
}

func (r *repository) GetByEmail(ctx context.Context, email string) (Admin, error) {
	snap, err := r.client.Collection(adminsCollection).Doc(email).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return Admin{}, autherrors.ErrAdminNotFound
		}
		return Admin{}, err
	}

	var admin Admin
	if err := snap.DataTo(&admin); err != nil {
		return Admin{}, err
	}
	admin.Email = snap.Ref.ID
	return admin, nil
}
