package ports

import (
	"context"

	"github.com/camburiu/acessoria-api/internal/core/domain"
)

// CreateUserInput carries the fields accepted when creating a user.
// Status and AccessLevel are honoured only for administrator callers.
type CreateUserInput struct {
	Name        string
	Email       string
	Password    string
	Status      int
	AccessLevel string
}

// UpdateUserInput carries the mutable profile fields. Status is applied only
// when the caller is an administrator.
type UpdateUserInput struct {
	Name   string
	Email  string
	Status *int
}

// UserService implements user CRUD guarded by the authorization policy.
// The caller is the identity resolved by the request authenticator; it is nil
// only on the unauthenticated bootstrap path of Create.
type UserService interface {
	List(ctx context.Context, caller *domain.User) ([]domain.User, error)
	Get(ctx context.Context, caller *domain.User, id int64) (*domain.User, error)
	Create(ctx context.Context, caller *domain.User, in CreateUserInput) (*domain.User, error)
	Update(ctx context.Context, caller *domain.User, id int64, in UpdateUserInput) (*domain.User, error)
	Delete(ctx context.Context, caller *domain.User, id int64) error
	// ChangePassword requires the current password from the target user
	// itself; administrators bypass that check.
	ChangePassword(ctx context.Context, caller *domain.User, id int64, currentPassword, newPassword string) error

	// Administrator views over the same table (status = 1 records).
	ListAdmins(ctx context.Context, caller *domain.User) ([]domain.User, error)
	GetAdmin(ctx context.Context, caller *domain.User, id int64) (*domain.User, error)
	CreateAdmin(ctx context.Context, caller *domain.User, in CreateUserInput) (*domain.User, error)
}
