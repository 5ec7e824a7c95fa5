package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/hitoshi/vehiclehub/internal/model"
)

// SQLiteAdministratorRepo はSQLiteを使用した管理者リポジトリ。
// ローカル実行とテスト用のストア。
type SQLiteAdministratorRepo struct {
	db *sql.DB
}

// NewSQLiteAdministratorRepo はSQLiteAdministratorRepoを生成する。
func NewSQLiteAdministratorRepo(db *sql.DB) *SQLiteAdministratorRepo {
	return &SQLiteAdministratorRepo{db: db}
}

// FindByID は指定IDの管理者を取得する。見つからない場合はnilを返す。
func (r *SQLiteAdministratorRepo) FindByID(ctx context.Context, id int64) (*model.Administrator, error) {
	a := &model.Administrator{}
	var role string
	err := r.db.QueryRowContext(ctx,
		`SELECT id, email, secret, role FROM administrators WHERE id = ?`,
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
// SQLiteの = はBINARY照合のため大文字小文字を区別する。
func (r *SQLiteAdministratorRepo) ListByEmail(ctx context.Context, email string) ([]*model.Administrator, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, email, secret, role FROM administrators WHERE email = ? ORDER BY id`,
		email,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list administrators by email: %w", err)
	}
	return scanAdministrators(rows)
}

// List は指定ページの管理者をID昇順で返す。
func (r *SQLiteAdministratorRepo) List(ctx context.Context, page int) ([]*model.Administrator, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, email, secret, role FROM administrators ORDER BY id LIMIT ? OFFSET ?`,
		model.PageSize, model.PageOffset(page),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list administrators: %w", err)
	}
	return scanAdministrators(rows)
}

// Create は管理者を作成し、採番されたIDを設定する。
func (r *SQLiteAdministratorRepo) Create(ctx context.Context, admin *model.Administrator) error {
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO administrators (email, secret, role) VALUES (?, ?, ?)`,
		admin.Email, admin.Secret, string(admin.Role),
	)
	if err != nil {
		return fmt.Errorf("failed to insert administrator: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get administrator ID: %w", err)
	}
	admin.ID = id
	return nil
}

// Update は管理者のロールとシークレットを置き換える。
func (r *SQLiteAdministratorRepo) Update(ctx context.Context, admin *model.Administrator) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE administrators SET secret = ?, role = ? WHERE id = ?`,
		admin.Secret, string(admin.Role), admin.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update administrator: %w", err)
	}
	return checkAffected(result)
}

// Delete は指定IDの管理者を削除する。
func (r *SQLiteAdministratorRepo) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM administrators WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete administrator: %w", err)
	}
	return checkAffected(result)
}

var _ AdministratorRepository = (*SQLiteAdministratorRepo)(nil)
