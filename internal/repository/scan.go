package repository

import (
	"database/sql"
	"fmt"

	"github.com/hitoshi/vehiclehub/internal/model"
)

// scanAdministrators は id, email, secret, role の順の行を読み取る。
func scanAdministrators(rows *sql.Rows) ([]*model.Administrator, error) {
	defer rows.Close()

	admins := []*model.Administrator{}
	for rows.Next() {
		a := &model.Administrator{}
		var role string
		if err := rows.Scan(&a.ID, &a.Email, &a.Secret, &role); err != nil {
			return nil, fmt.Errorf("failed to scan administrator: %w", err)
		}
		a.Role = model.Role(role)
		admins = append(admins, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate administrators: %w", err)
	}
	return admins, nil
}

// scanVehicles は id, name, brand, year の順の行を読み取る。
func scanVehicles(rows *sql.Rows) ([]*model.Vehicle, error) {
	defer rows.Close()

	vehicles := []*model.Vehicle{}
	for rows.Next() {
		v := &model.Vehicle{}
		if err := rows.Scan(&v.ID, &v.Name, &v.Brand, &v.Year); err != nil {
			return nil, fmt.Errorf("failed to scan vehicle: %w", err)
		}
		vehicles = append(vehicles, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate vehicles: %w", err)
	}
	return vehicles, nil
}

// checkAffected は RowsAffected が0の場合に ErrNotFound を返す。
func checkAffected(result sql.Result) error {
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
