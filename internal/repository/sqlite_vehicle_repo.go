package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/hitoshi/vehiclehub/internal/model"
)

// SQLiteVehicleRepo はSQLiteを使用した車両リポジトリ。
type SQLiteVehicleRepo struct {
	db *sql.DB
}

// NewSQLiteVehicleRepo はSQLiteVehicleRepoを生成する。
func NewSQLiteVehicleRepo(db *sql.DB) *SQLiteVehicleRepo {
	return &SQLiteVehicleRepo{db: db}
}

// FindByID は指定IDの車両を取得する。見つからない場合はnilを返す。
func (r *SQLiteVehicleRepo) FindByID(ctx context.Context, id int64) (*model.Vehicle, error) {
	v := &model.Vehicle{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, brand, year FROM vehicles WHERE id = ?`,
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
// instr は大文字小文字を区別する部分一致（LIKEはASCIIを区別しないため使わない）。
func (r *SQLiteVehicleRepo) List(ctx context.Context, filter model.VehicleFilter) ([]*model.Vehicle, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, brand, year FROM vehicles
		 WHERE (? = '' OR instr(name, ?) > 0)
		   AND (? = '' OR instr(brand, ?) > 0)
		 ORDER BY id
		 LIMIT ? OFFSET ?`,
		filter.Name, filter.Name, filter.Brand, filter.Brand,
		model.PageSize, model.PageOffset(filter.Page),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list vehicles: %w", err)
	}
	return scanVehicles(rows)
}

// Create は車両を作成し、採番されたIDを設定する。
func (r *SQLiteVehicleRepo) Create(ctx context.Context, vehicle *model.Vehicle) error {
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO vehicles (name, brand, year) VALUES (?, ?, ?)`,
		vehicle.Name, vehicle.Brand, vehicle.Year,
	)
	if err != nil {
		return fmt.Errorf("failed to insert vehicle: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get vehicle ID: %w", err)
	}
	vehicle.ID = id
	return nil
}

// Update は車両の名前・ブランド・製造年を置き換える。
func (r *SQLiteVehicleRepo) Update(ctx context.Context, vehicle *model.Vehicle) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE vehicles SET name = ?, brand = ?, year = ? WHERE id = ?`,
		vehicle.Name, vehicle.Brand, vehicle.Year, vehicle.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update vehicle: %w", err)
	}
	return checkAffected(result)
}

// Delete は指定IDの車両を削除する。
func (r *SQLiteVehicleRepo) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM vehicles WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete vehicle: %w", err)
	}
	return checkAffected(result)
}

var _ VehicleRepository = (*SQLiteVehicleRepo)(nil)
