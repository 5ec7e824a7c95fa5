package repository

import (
	"database/sql"
	"fmt"
)

// Store はアプリケーションが使用するリポジトリ一式。
type Store struct {
	Administrators AdministratorRepository
	Vehicles       VehicleRepository
}

// NewStore はドライバ名に対応するリポジトリ一式を生成する。
// driverには database.Driver が返す "postgres" または "sqlite3" を指定する。
func NewStore(db *sql.DB, driver string) (*Store, error) {
	switch driver {
	case "postgres":
		return &Store{
			Administrators: NewPostgresAdministratorRepo(db),
			Vehicles:       NewPostgresVehicleRepo(db),
		}, nil
	case "sqlite3":
		return &Store{
			Administrators: NewSQLiteAdministratorRepo(db),
			Vehicles:       NewSQLiteVehicleRepo(db),
		}, nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %q", driver)
	}
}
