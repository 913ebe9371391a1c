package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/camburiu/acessoria-api/internal/core/domain"
	"github.com/camburiu/acessoria-api/internal/core/ports"
)

// MinPasswordLength is the minimum accepted password length.
const MinPasswordLength = 6

// UserService implements user CRUD plus the role/ownership policy. The
// caller identity is passed explicitly into every operation; there is no
// ambient security context.
type UserService struct {
	users  ports.UserRepository
	hasher *PasswordHasher
	logger zerolog.Logger
}

func NewUserService(users ports.UserRepository, hasher *PasswordHasher, logger zerolog.Logger) *UserService {
	return &UserService{users: users, hasher: hasher, logger: logger}
}

// List returns every user. Administrator only.
func (s *UserService) List(ctx context.Context, caller *domain.User) ([]domain.User, error) {
	if !caller.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	return s.users.FindAll(ctx)
}

// Get returns one user record, allowed for the record's owner or an
// administrator.
func (s *UserService) Get(ctx context.Context, caller *domain.User, id int64) (*domain.User, error) {
	if !caller.CanAccessUser(id) {
		return nil, domain.ErrForbidden
	}
	return s.users.FindByID(ctx, id)
}

// Create stores a new user. The first user ever created becomes an
// administrator regardless of the requested status; after that only an
// authenticated administrator may create users. Status defaults to regular.
func (s *UserService) Create(ctx context.Context, caller *domain.User, in ports.CreateUserInput) (*domain.User, error) {
	total, err := s.users.Count(ctx)
	if err != nil {
		return nil, err
	}

	status := in.Status
	accessLevel := ""
	switch {
	case total == 0:
		// Bootstrap: the empty system's first user is the administrator.
		status = domain.StatusAdmin
		accessLevel = in.AccessLevel
	case !caller.IsAdmin():
		return nil, domain.ErrForbidden
	default:
		if status != domain.StatusAdmin && status != domain.StatusRegular {
			status = domain.StatusRegular
		}
		if status == domain.StatusAdmin {
			accessLevel = in.AccessLevel
		}
	}

	if len(in.Password) < MinPasswordLength {
		return nil, domain.ErrPasswordTooShort
	}
	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	created, err := s.users.Create(ctx, &domain.User{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: hash,
		Status:       status,
		AccessLevel:  accessLevel,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("id", created.ID).Int("status", created.Status).Msg("user created")
	return created, nil
}

// Update mutates name and email; only an administrator may change status.
func (s *UserService) Update(ctx context.Context, caller *domain.User, id int64, in ports.UpdateUserInput) (*domain.User, error) {
	if !caller.CanAccessUser(id) {
		return nil, domain.ErrForbidden
	}

	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Name != "" {
		user.Name = in.Name
	}
	if in.Email != "" {
		user.Email = in.Email
	}
	if in.Status != nil && caller.IsAdmin() {
		if *in.Status == domain.StatusAdmin || *in.Status == domain.StatusRegular {
			user.Status = *in.Status
		}
	}

	return s.users.Update(ctx, user)
}

// Delete removes a user. Administrator only.
func (s *UserService) Delete(ctx context.Context, caller *domain.User, id int64) error {
	if !caller.IsAdmin() {
		return domain.ErrForbidden
	}
	return s.users.Delete(ctx, id)
}

// ChangePassword sets a new password for the target user. The owner must
// present the current password; administrators bypass that check. The new
// password must satisfy the minimum length policy.
func (s *UserService) ChangePassword(ctx context.Context, caller *domain.User, id int64, currentPassword, newPassword string) error {
	if !caller.CanAccessUser(id) {
		return domain.ErrForbidden
	}
	if len(newPassword) < MinPasswordLength {
		return domain.ErrPasswordTooShort
	}

	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if !caller.IsAdmin() {
		if !s.hasher.Verify(user.PasswordHash, currentPassword) {
			return domain.ErrInvalidCredentials
		}
	}

	hash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return err
	}

	if err := s.users.UpdatePassword(ctx, id, hash); err != nil {
		return err
	}
	s.logger.Info().Int64("id", id).Msg("password changed")
	return nil
}

// ListAdmins returns every administrator record. Administrator only.
func (s *UserService) ListAdmins(ctx context.Context, caller *domain.User) ([]domain.User, error) {
	if !caller.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	return s.users.FindAdmins(ctx)
}

// GetAdmin returns one administrator record. Administrator only; a regular
// user id yields not-found rather than leaking its existence.
func (s *UserService) GetAdmin(ctx context.Context, caller *domain.User, id int64) (*domain.User, error) {
	if !caller.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user.Status != domain.StatusAdmin {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}

// CreateAdmin stores a new administrator. Administrator only.
func (s *UserService) CreateAdmin(ctx context.Context, caller *domain.User, in ports.CreateUserInput) (*domain.User, error) {
	if !caller.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	in.Status = domain.StatusAdmin
	return s.Create(ctx, caller, in)
}
