package ports

import (
	"context"

	"github.com/camburiu/acessoria-api/internal/core/domain"
)

// CreateVehicleInput carries the fields accepted when creating or updating a
// vehicle. The due date is never part of the input; it is derived from the
// plate on every write.
type CreateVehicleInput struct {
	Plate    string
	Renavam  string
	ClientID int64
}

// VehicleService implements vehicle CRUD guarded by the authorization policy:
// list and delete are administrator-only, the rest requires authentication.
type VehicleService interface {
	List(ctx context.Context, caller *domain.User) ([]domain.Vehicle, error)
	Get(ctx context.Context, caller *domain.User, id int64) (*domain.Vehicle, error)
	Create(ctx context.Context, caller *domain.User, in CreateVehicleInput) (*domain.Vehicle, error)
	Update(ctx context.Context, caller *domain.User, id int64, in CreateVehicleInput) (*domain.Vehicle, error)
	Delete(ctx context.Context, caller *domain.User, id int64) error
}
