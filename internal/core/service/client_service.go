package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/camburiu/acessoria-api/internal/core/domain"
	"github.com/camburiu/acessoria-api/internal/core/ports"
)

// ClientService implements customer CRUD. Any authenticated user may create,
// read and update clients; listing and deletion are administrator-only.
type ClientService struct {
	clients ports.ClientRepository
	logger  zerolog.Logger
}

func NewClientService(clients ports.ClientRepository, logger zerolog.Logger) *ClientService {
	return &ClientService{clients: clients, logger: logger}
}

func (s *ClientService) List(ctx context.Context, caller *domain.User) ([]domain.Client, error) {
	if !caller.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	return s.clients.FindAll(ctx)
}

func (s *ClientService) Get(ctx context.Context, caller *domain.User, id int64) (*domain.Client, error) {
	if caller == nil {
		return nil, domain.ErrForbidden
	}
	return s.clients.FindByID(ctx, id)
}

func (s *ClientService) Create(ctx context.Context, caller *domain.User, in ports.CreateClientInput) (*domain.Client, error) {
	if caller == nil {
		return nil, domain.ErrForbidden
	}

	created, err := s.clients.Create(ctx, &domain.Client{
		Name:   in.Name,
		TaxID:  in.TaxID,
		Phone:  in.Phone,
		UserID: in.UserID,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("id", created.ID).Msg("client created")
	return created, nil
}

func (s *ClientService) Update(ctx context.Context, caller *domain.User, id int64, in ports.CreateClientInput) (*domain.Client, error) {
	if caller == nil {
		return nil, domain.ErrForbidden
	}

	client, err := s.clients.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	client.Name = in.Name
	client.TaxID = in.TaxID
	client.Phone = in.Phone
	if in.UserID != nil {
		client.UserID = in.UserID
	}

	return s.clients.Update(ctx, client)
}

// Delete removes the client and, through the store's cascade, every vehicle
// it owns. Administrator only.
func (s *ClientService) Delete(ctx context.Context, caller *domain.User, id int64) error {
	if !caller.IsAdmin() {
		return domain.ErrForbidden
	}
	if err := s.clients.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Int64("id", id).Msg("client deleted with owned vehicles")
	return nil
}
