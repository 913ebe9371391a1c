package ports

import (
	"context"

	"github.com/camburiu/acessoria-api/internal/core/domain"
)

// ClientRepository defines the persistence operations for client records.
// Finders load each client's vehicles ordered by id; Delete cascades to the
// owned vehicles at the store level.
type ClientRepository interface {
	Create(ctx context.Context, client *domain.Client) (*domain.Client, error)
	FindByID(ctx context.Context, id int64) (*domain.Client, error)
	FindAll(ctx context.Context) ([]domain.Client, error)
	Update(ctx context.Context, client *domain.Client) (*domain.Client, error)
	Delete(ctx context.Context, id int64) error
}
