package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/camburiu/acessoria-api/internal/core/domain"
)

const userColumns = "id, nome, email, senha_hash, status, COALESCE(nivel_acesso, '')"

// UserRepository persists user records in the usuarios table.
type UserRepository struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	if err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Status, &u.AccessLevel); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `
		INSERT INTO usuarios (nome, email, senha_hash, status, nivel_acesso)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''))
		RETURNING ` + userColumns
	created, err := scanUser(r.db.QueryRow(ctx, query, user.Name, user.Email, user.PasswordHash, user.Status, user.AccessLevel))
	if err != nil {
		return nil, mapError(err)
	}
	return created, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	return scanUser(r.db.QueryRow(ctx, "SELECT "+userColumns+" FROM usuarios WHERE id = $1", id))
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return scanUser(r.db.QueryRow(ctx, "SELECT "+userColumns+" FROM usuarios WHERE email = $1", email))
}

func (r *UserRepository) FindAll(ctx context.Context) ([]domain.User, error) {
	return r.findMany(ctx, "SELECT "+userColumns+" FROM usuarios ORDER BY id")
}

func (r *UserRepository) FindAdmins(ctx context.Context) ([]domain.User, error) {
	return r.findMany(ctx, "SELECT "+userColumns+" FROM usuarios WHERE status = $1 ORDER BY id", domain.StatusAdmin)
}

func (r *UserRepository) findMany(ctx context.Context, query string, args ...any) ([]domain.User, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query users: %w", err)
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Status, &u.AccessLevel); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *UserRepository) Update(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `
		UPDATE usuarios
		SET nome = $1, email = $2, status = $3, nivel_acesso = NULLIF($4, '')
		WHERE id = $5
		RETURNING ` + userColumns
	updated, err := scanUser(r.db.QueryRow(ctx, query, user.Name, user.Email, user.Status, user.AccessLevel, user.ID))
	if err != nil {
		return nil, mapError(err)
	}
	return updated, nil
}

func (r *UserRepository) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	tag, err := r.db.Exec(ctx, "UPDATE usuarios SET senha_hash = $1 WHERE id = $2", passwordHash, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, "DELETE FROM usuarios WHERE id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM usuarios").Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}
