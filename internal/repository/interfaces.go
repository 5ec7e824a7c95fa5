// Package repository はデータ永続化のインターフェースと実装を定義する。
package repository

import (
	"context"
	"errors"

	"github.com/hitoshi/vehiclehub/internal/model"
)

// ErrNotFound は更新・削除の対象レコードが存在しない場合に返される。
// 取得系メソッドは ErrNotFound を返さず、nil を返す。
var ErrNotFound = errors.New("record not found")

// AdministratorRepository は管理者データの永続化インターフェース。
type AdministratorRepository interface {
	// FindByID は指定IDの管理者を取得する。見つからない場合はnilを返す。
	FindByID(ctx context.Context, id int64) (*model.Administrator, error)

	// ListByEmail はメールアドレスが完全一致（大文字小文字を区別）する管理者をID昇順で返す。
	ListByEmail(ctx context.Context, email string) ([]*model.Administrator, error)

	// List は指定ページの管理者をID昇順で返す。範囲外のページは空スライスを返す。
	List(ctx context.Context, page int) ([]*model.Administrator, error)

	// Create は管理者を作成し、採番されたIDを admin.ID に設定する。
	Create(ctx context.Context, admin *model.Administrator) error

	// Update は管理者のロールとシークレットを置き換える。
	Update(ctx context.Context, admin *model.Administrator) error

	// Delete は指定IDの管理者を削除する。
	Delete(ctx context.Context, id int64) error
}

// VehicleRepository は車両データの永続化インターフェース。
type VehicleRepository interface {
	// FindByID は指定IDの車両を取得する。見つからない場合はnilを返す。
	FindByID(ctx context.Context, id int64) (*model.Vehicle, error)

	// List は条件に一致する車両の指定ページをID昇順で返す。
	List(ctx context.Context, filter model.VehicleFilter) ([]*model.Vehicle, error)

	// Create は車両を作成し、採番されたIDを vehicle.ID に設定する。
	Create(ctx context.Context, vehicle *model.Vehicle) error

	// Update は車両の名前・ブランド・製造年を置き換える。
	Update(ctx context.Context, vehicle *model.Vehicle) error

	// Delete は指定IDの車両を削除する。
	Delete(ctx context.Context, id int64) error
}
