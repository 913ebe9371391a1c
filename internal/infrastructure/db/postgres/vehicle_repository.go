package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/camburiu/acessoria-api/internal/core/domain"
)

// VehicleRepository persists vehicle records in the veiculos table.
type VehicleRepository struct {
	db *pgxpool.Pool
}

func NewVehicleRepository(db *pgxpool.Pool) *VehicleRepository {
	return &VehicleRepository{db: db}
}

func scanVehicle(row pgx.Row) (*domain.Vehicle, error) {
	var v domain.Vehicle
	if err := row.Scan(&v.ID, &v.Plate, &v.Renavam, &v.DueDate.Time, &v.ClientID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrVehicleNotFound
		}
		return nil, err
	}
	return &v, nil
}

func (r *VehicleRepository) Create(ctx context.Context, vehicle *domain.Vehicle) (*domain.Vehicle, error) {
	query := `
		INSERT INTO veiculos (placa, renavam, vencimento, cliente_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, placa, renavam, vencimento, cliente_id`
	created, err := scanVehicle(r.db.QueryRow(ctx, query, vehicle.Plate, vehicle.Renavam, vehicle.DueDate.Time, vehicle.ClientID))
	if err != nil {
		return nil, mapError(err)
	}
	return created, nil
}

func (r *VehicleRepository) FindByID(ctx context.Context, id int64) (*domain.Vehicle, error) {
	return scanVehicle(r.db.QueryRow(ctx,
		"SELECT id, placa, renavam, vencimento, cliente_id FROM veiculos WHERE id = $1", id))
}

func (r *VehicleRepository) FindAll(ctx context.Context) ([]domain.Vehicle, error) {
	rows, err := r.db.Query(ctx, "SELECT id, placa, renavam, vencimento, cliente_id FROM veiculos ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("query vehicles: %w", err)
	}
	defer rows.Close()

	var vehicles []domain.Vehicle
	for rows.Next() {
		var v domain.Vehicle
		if err := rows.Scan(&v.ID, &v.Plate, &v.Renavam, &v.DueDate.Time, &v.ClientID); err != nil {
			return nil, err
		}
		vehicles = append(vehicles, v)
	}
	return vehicles, rows.Err()
}

func (r *VehicleRepository) Update(ctx context.Context, vehicle *domain.Vehicle) (*domain.Vehicle, error) {
	query := `
		UPDATE veiculos
		SET placa = $1, renavam = $2, vencimento = $3, cliente_id = $4
		WHERE id = $5
		RETURNING id, placa, renavam, vencimento, cliente_id`
	updated, err := scanVehicle(r.db.QueryRow(ctx, query, vehicle.Plate, vehicle.Renavam, vehicle.DueDate.Time, vehicle.ClientID, vehicle.ID))
	if err != nil {
		return nil, mapError(err)
	}
	return updated, nil
}

func (r *VehicleRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, "DELETE FROM veiculos WHERE id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrVehicleNotFound
	}
	return nil
}
