// Package administrator は管理者の登録・参照・更新・削除のドメインロジックを提供する。
package administrator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/hitoshi/vehiclehub/internal/auth"
	"github.com/hitoshi/vehiclehub/internal/model"
	"github.com/hitoshi/vehiclehub/internal/repository"
	"github.com/hitoshi/vehiclehub/internal/validation"
)

// RegisterInput は管理者登録の入力値。
type RegisterInput = validation.AdministratorInput

// UpdateInput は管理者更新の入力値。
type UpdateInput = validation.AdministratorUpdateInput

// ValidationRecorder は検証失敗の記録先。メトリクス層が実装する。
type ValidationRecorder interface {
	RecordValidationFailure(resource string)
}

// Service は管理者管理のサービス層。
type Service struct {
	repo     repository.AdministratorRepository
	hasher   auth.SecretHasher
	recorder ValidationRecorder
}

// NewService はServiceの新しいインスタンスを生成する。
// hasherがnilの場合は平文で保存する。recorderはnilでもよい。
func NewService(repo repository.AdministratorRepository, hasher auth.SecretHasher, recorder ValidationRecorder) *Service {
	if hasher == nil {
		hasher = auth.PlaintextHasher{}
	}
	return &Service{
		repo:     repo,
		hasher:   hasher,
		recorder: recorder,
	}
}

// Register は入力を検証し、管理者を登録する。
// 違反がある場合は *model.ValidationError を返し、何も保存しない。
func (s *Service) Register(ctx context.Context, in RegisterInput) (*model.Administrator, error) {
	if err := validation.ValidateAdministrator(in).Err(); err != nil {
		s.recordValidationFailure()
		return nil, err
	}

	secret, err := s.hashSecret(in.Secret)
	if err != nil {
		return nil, err
	}

	admin := &model.Administrator{
		Email:  in.Email,
		Secret: secret,
		Role:   roleOrDefault(in.Role),
	}
	if err := s.repo.Create(ctx, admin); err != nil {
		return nil, fmt.Errorf("管理者の登録に失敗しました: %w", err)
	}

	slog.Info("管理者を登録しました",
		slog.Int64("administrator_id", admin.ID),
		slog.String("role", string(admin.Role)),
	)
	return admin, nil
}

// Get は指定IDの管理者を返す。
func (s *Service) Get(ctx context.Context, id int64) (*model.Administrator, error) {
	admin, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("管理者の取得に失敗しました: %w", err)
	}
	if admin == nil {
		return nil, model.NewAdministratorNotFoundError(id)
	}
	return admin, nil
}

// List は指定ページの管理者を返す。1未満のページは1として扱う。
func (s *Service) List(ctx context.Context, page int) ([]*model.Administrator, error) {
	admins, err := s.repo.List(ctx, model.NormalizePage(page))
	if err != nil {
		return nil, fmt.Errorf("管理者一覧の取得に失敗しました: %w", err)
	}
	return admins, nil
}

// Update は管理者のロールとパスワードを置き換える。
func (s *Service) Update(ctx context.Context, id int64, in UpdateInput) (*model.Administrator, error) {
	if err := validation.ValidateAdministratorUpdate(in).Err(); err != nil {
		s.recordValidationFailure()
		return nil, err
	}

	secret, err := s.hashSecret(in.Secret)
	if err != nil {
		return nil, err
	}

	admin := &model.Administrator{
		ID:     id,
		Secret: secret,
		Role:   roleOrDefault(in.Role),
	}
	if err := s.repo.Update(ctx, admin); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, model.NewAdministratorNotFoundError(id)
		}
		return nil, fmt.Errorf("管理者の更新に失敗しました: %w", err)
	}

	// メールアドレスは更新対象外のため、保存後の状態を読み直す
	return s.Get(ctx, id)
}

// Delete は指定IDの管理者を削除する。
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.NewAdministratorNotFoundError(id)
		}
		return fmt.Errorf("管理者の削除に失敗しました: %w", err)
	}

	slog.Info("管理者を削除しました", slog.Int64("administrator_id", id))
	return nil
}

// hashSecret は保存用のシークレットを生成する。
// 保存方式の長さ制限を超える場合は検証エラーとして返す。
func (s *Service) hashSecret(secret string) (string, error) {
	hashed, err := s.hasher.Hash(secret)
	if errors.Is(err, auth.ErrSecretTooLong) {
		s.recordValidationFailure()
		return "", &model.ValidationError{Messages: []string{validation.MsgSecretTooLong}}
	}
	if err != nil {
		return "", fmt.Errorf("パスワードのハッシュ化に失敗しました: %w", err)
	}
	return hashed, nil
}

func (s *Service) recordValidationFailure() {
	if s.recorder != nil {
		s.recorder.RecordValidationFailure("administrator")
	}
}

// roleOrDefault は空のロールを既定ロールに置き換える。
// 未知のロールは警告ログを出したうえでそのまま保存する。
func roleOrDefault(r model.Role) model.Role {
	if r == "" {
		return model.DefaultRole
	}
	if !r.IsKnown() {
		slog.Warn("未知のロールをそのまま保存します", slog.String("role", string(r)))
	}
	return r
}
