package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/camburiu/acessoria-api/internal/core/domain"
	"github.com/camburiu/acessoria-api/internal/core/ports"
)

// VehicleService implements vehicle CRUD. The registration due date is
// derived from the plate on every write; callers never supply it.
type VehicleService struct {
	vehicles ports.VehicleRepository
	clients  ports.ClientRepository
	now      func() time.Time
	logger   zerolog.Logger
}

func NewVehicleService(vehicles ports.VehicleRepository, clients ports.ClientRepository, logger zerolog.Logger) *VehicleService {
	return &VehicleService{vehicles: vehicles, clients: clients, now: time.Now, logger: logger}
}

func (s *VehicleService) List(ctx context.Context, caller *domain.User) ([]domain.Vehicle, error) {
	if !caller.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	return s.vehicles.FindAll(ctx)
}

func (s *VehicleService) Get(ctx context.Context, caller *domain.User, id int64) (*domain.Vehicle, error) {
	if caller == nil {
		return nil, domain.ErrForbidden
	}
	return s.vehicles.FindByID(ctx, id)
}

func (s *VehicleService) Create(ctx context.Context, caller *domain.User, in ports.CreateVehicleInput) (*domain.Vehicle, error) {
	if caller == nil {
		return nil, domain.ErrForbidden
	}

	// The owning client is mandatory.
	if _, err := s.clients.FindByID(ctx, in.ClientID); err != nil {
		return nil, err
	}

	due, err := domain.ComputeDueDate(in.Plate, s.now())
	if err != nil {
		return nil, err
	}

	created, err := s.vehicles.Create(ctx, &domain.Vehicle{
		Plate:    in.Plate,
		Renavam:  in.Renavam,
		DueDate:  due,
		ClientID: in.ClientID,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("id", created.ID).Str("placa", created.Plate).Msg("vehicle created")
	return created, nil
}

func (s *VehicleService) Update(ctx context.Context, caller *domain.User, id int64, in ports.CreateVehicleInput) (*domain.Vehicle, error) {
	if caller == nil {
		return nil, domain.ErrForbidden
	}

	vehicle, err := s.vehicles.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.ClientID != 0 && in.ClientID != vehicle.ClientID {
		if _, err := s.clients.FindByID(ctx, in.ClientID); err != nil {
			return nil, err
		}
		vehicle.ClientID = in.ClientID
	}
	if in.Renavam != "" {
		vehicle.Renavam = in.Renavam
	}
	if in.Plate != "" && in.Plate != vehicle.Plate {
		due, err := domain.ComputeDueDate(in.Plate, s.now())
		if err != nil {
			return nil, err
		}
		vehicle.Plate = in.Plate
		vehicle.DueDate = due
	}

	return s.vehicles.Update(ctx, vehicle)
}

// Delete removes a single vehicle and never touches its client.
func (s *VehicleService) Delete(ctx context.Context, caller *domain.User, id int64) error {
	if !caller.IsAdmin() {
		return domain.ErrForbidden
	}
	return s.vehicles.Delete(ctx, id)
}
