package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/hitoshi/vehiclehub/internal/model"
)

// PostgresVehicleRepo はPostgreSQLを使用した車両リポジトリ。
type PostgresVehicleRepo struct {
	db *sql.DB
}

// NewPostgresVehicleRepo はPostgresVehicleRepoを生成する。
func NewPostgresVehicleRepo(db *sql.DB) *PostgresVehicleRepo {
	return &PostgresVehicleRepo{db: db}
}

// FindByID は指定IDの車両を取得する。見つからない場合はnilを返す。
func (r *PostgresVehicleRepo) FindByID(ctx context.Context, id int64) (*model.Vehicle, error) {
	v := &model.Vehicle{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, brand, year FROM vehicles WHERE id = $1`,
		id,
	).Scan(&v.ID, &v.Name, &v.Brand, &v.Year)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find vehicle by ID: %w", err)
	}
	return v, nil
}

// List は条件に一致する車両の指定ページをID昇順で返す。
// strpos はワイルドカードを解釈しない大文字小文字区別の部分一致。
func (r *PostgresVehicleRepo) List(ctx context.Context, filter model.VehicleFilter) ([]*model.Vehicle, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, brand, year FROM vehicles
		 WHERE ($1::text = '' OR strpos(name, $1::text) > 0)
		   AND ($2::text = '' OR strpos(brand, $2::text) > 0)
		 ORDER BY id
		 LIMIT $3 OFFSET $4`,
		filter.Name, filter.Brand, model.PageSize, model.PageOffset(filter.Page),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list vehicles: %w", err)
	}
	return scanVehicles(rows)
}

// Create は車両を作成し、採番されたIDを設定する。
func (r *PostgresVehicleRepo) Create(ctx context.Context, vehicle *model.Vehicle) error {
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO vehicles (name, brand, year) VALUES ($1, $2, $3) RETURNING id`,
		vehicle.Name, vehicle.Brand, vehicle.Year,
	).Scan(&vehicle.ID)
	if err != nil {
		return fmt.Errorf("failed to insert vehicle: %w", err)
	}
	return nil
}

// Update は車両の名前・ブランド・製造年を置き換える。
func (r *PostgresVehicleRepo) Update(ctx context.Context, vehicle *model.Vehicle) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE vehicles SET name = $1, brand = $2, year = $3 WHERE id = $4`,
		vehicle.Name, vehicle.Brand, vehicle.Year, vehicle.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update vehicle: %w", err)
	}
	return checkAffected(result)
}

// Delete は指定IDの車両を削除する。
func (r *PostgresVehicleRepo) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM vehicles WHERE id = $1`,
		id,
	)
	if err != nil {
		return fmt.Errorf("failed to delete vehicle: %w", err)
	}
	return checkAffected(result)
}

// compile-time interface check
var _ VehicleRepository = (*PostgresVehicleRepo)(nil)
