package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/camburiu/acessoria-api/internal/core/domain"
)

// ClientRepository persists customer records in the clientes table. Vehicle
// removal on client deletion is handled by the ON DELETE CASCADE constraint
// on veiculos.cliente_id.
type ClientRepository struct {
	db *pgxpool.Pool
}

func NewClientRepository(db *pgxpool.Pool) *ClientRepository {
	return &ClientRepository{db: db}
}

func scanClient(row pgx.Row) (*domain.Client, error) {
	var c domain.Client
	if err := row.Scan(&c.ID, &c.Name, &c.TaxID, &c.Phone, &c.UserID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrClientNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *ClientRepository) Create(ctx context.Context, client *domain.Client) (*domain.Client, error) {
	query := `
		INSERT INTO clientes (nome, cpf_ou_cnpj, telefone, usuario_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, nome, cpf_ou_cnpj, telefone, usuario_id`
	created, err := scanClient(r.db.QueryRow(ctx, query, client.Name, client.TaxID, client.Phone, client.UserID))
	if err != nil {
		return nil, mapError(err)
	}
	created.Vehicles = []domain.Vehicle{}
	return created, nil
}

func (r *ClientRepository) FindByID(ctx context.Context, id int64) (*domain.Client, error) {
	client, err := scanClient(r.db.QueryRow(ctx,
		"SELECT id, nome, cpf_ou_cnpj, telefone, usuario_id FROM clientes WHERE id = $1", id))
	if err != nil {
		return nil, err
	}
	if err := r.loadVehicles(ctx, client); err != nil {
		return nil, err
	}
	return client, nil
}

func (r *ClientRepository) FindAll(ctx context.Context) ([]domain.Client, error) {
	rows, err := r.db.Query(ctx, "SELECT id, nome, cpf_ou_cnpj, telefone, usuario_id FROM clientes ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("query clients: %w", err)
	}
	defer rows.Close()

	var clients []domain.Client
	for rows.Next() {
		var c domain.Client
		if err := rows.Scan(&c.ID, &c.Name, &c.TaxID, &c.Phone, &c.UserID); err != nil {
			return nil, err
		}
		c.Vehicles = []domain.Vehicle{}
		clients = append(clients, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range clients {
		if err := r.loadVehicles(ctx, &clients[i]); err != nil {
			return nil, err
		}
	}
	return clients, nil
}

func (r *ClientRepository) Update(ctx context.Context, client *domain.Client) (*domain.Client, error) {
	query := `
		UPDATE clientes
		SET nome = $1, cpf_ou_cnpj = $2, telefone = $3, usuario_id = $4
		WHERE id = $5
		RETURNING id, nome, cpf_ou_cnpj, telefone, usuario_id`
	updated, err := scanClient(r.db.QueryRow(ctx, query, client.Name, client.TaxID, client.Phone, client.UserID, client.ID))
	if err != nil {
		return nil, mapError(err)
	}
	if err := r.loadVehicles(ctx, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

func (r *ClientRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, "DELETE FROM clientes WHERE id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrClientNotFound
	}
	return nil
}

func (r *ClientRepository) loadVehicles(ctx context.Context, client *domain.Client) error {
	rows, err := r.db.Query(ctx,
		"SELECT id, placa, renavam, vencimento, cliente_id FROM veiculos WHERE cliente_id = $1 ORDER BY id", client.ID)
	if err != nil {
		return fmt.Errorf("query client vehicles: %w", err)
	}
	defer rows.Close()

	client.Vehicles = []domain.Vehicle{}
	for rows.Next() {
		var v domain.Vehicle
		if err := rows.Scan(&v.ID, &v.Plate, &v.Renavam, &v.DueDate.Time, &v.ClientID); err != nil {
			return err
		}
		client.Vehicles = append(client.Vehicles, v)
	}
	return rows.Err()
}
