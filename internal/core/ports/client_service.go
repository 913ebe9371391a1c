package ports

import (
	"context"

	"github.com/camburiu/acessoria-api/internal/core/domain"
)

// CreateClientInput carries the fields accepted when creating or updating a
// client record.
type CreateClientInput struct {
	Name   string
	TaxID  string
	Phone  string
	UserID *int64
}

// ClientService implements client CRUD guarded by the authorization policy:
// list and delete are administrator-only, the rest requires authentication.
type ClientService interface {
	List(ctx context.Context, caller *domain.User) ([]domain.Client, error)
	Get(ctx context.Context, caller *domain.User, id int64) (*domain.Client, error)
	Create(ctx context.Context, caller *domain.User, in CreateClientInput) (*domain.Client, error)
	Update(ctx context.Context, caller *domain.User, id int64, in CreateClientInput) (*domain.Client, error)
	Delete(ctx context.Context, caller *domain.User, id int64) error
}
