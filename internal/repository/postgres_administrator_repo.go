package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/hitoshi/vehiclehub/internal/model"
)

// PostgresAdministratorRepo はPostgreSQLを使用した管理者リポジトリ。
type PostgresAdministratorRepo struct {
	db *sql.DB
}

// NewPostgresAdministratorRepo はPostgresAdministratorRepoを生成する。
func NewPostgresAdministratorRepo(db *sql.DB) *PostgresAdministratorRepo {
	return &PostgresAdministratorRepo{db: db}
}

// FindByID は指定IDの管理者を取得する。見つからない場合はnilを返す。
func (r *PostgresAdministratorRepo) FindByID(ctx context.Context, id int64) (*model.Administrator, error) {
	a := &model.Administrator{}
	var role string
	err := r.db.QueryRowContext(ctx,
		`SELECT id, email, secret, role FROM administrators WHERE id = $1`,
		id,
	).Scan(&a.ID, &a.Email, &a.Secret, &role)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find administrator by ID: %w", err)
	}

	a.Role = model.Role(role)
	return a, nil
}

// ListByEmail はメールアドレスが完全一致する管理者をID昇順で返す。
func (r *PostgresAdministratorRepo) ListByEmail(ctx context.Context, email string) ([]*model.Administrator, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, email, secret, role FROM administrators WHERE email = $1 ORDER BY id`,
		email,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list administrators by email: %w", err)
	}
	return scanAdministrators(rows)
}

// List は指定ページの管理者をID昇順で返す。
func (r *PostgresAdministratorRepo) List(ctx context.Context, page int) ([]*model.Administrator, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, email, secret, role FROM administrators ORDER BY id LIMIT $1 OFFSET $2`,
		model.PageSize, model.PageOffset(page),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list administrators: %w", err)
	}
	return scanAdministrators(rows)
}

// Create は管理者を作成し、採番されたIDを設定する。
func (r *PostgresAdministratorRepo) Create(ctx context.Context, admin *model.Administrator) error {
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO administrators (email, secret, role) VALUES ($1, $2, $3) RETURNING id`,
		admin.Email, admin.Secret, string(admin.Role),
	).Scan(&admin.ID)
	if err != nil {
		return fmt.Errorf("failed to insert administrator: %w", err)
	}
	return nil
}

// Update は管理者のロールとシークレットを置き換える。
func (r *PostgresAdministratorRepo) Update(ctx context.Context, admin *model.Administrator) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE administrators SET secret = $1, role = $2 WHERE id = $3`,
		admin.Secret, string(admin.Role), admin.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update administrator: %w", err)
	}
	return checkAffected(result)
}

// Delete は指定IDの管理者を削除する。
func (r *PostgresAdministratorRepo) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM administrators WHERE id = $1`,
		id,
	)
	if err != nil {
		return fmt.Errorf("failed to delete administrator: %w", err)
	}
	return checkAffected(result)
}

// compile-time interface check
var _ AdministratorRepository = (*PostgresAdministratorRepo)(nil)
