// Package auth は管理者のログイン認証（資格情報の照合）を提供する。
package auth

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hitoshi/vehiclehub/internal/model"
)

// AdministratorFinder は認証に必要な管理者検索インターフェース。
type AdministratorFinder interface {
	// ListByEmail はメールアドレスが完全一致する管理者をID昇順で返す。
	ListByEmail(ctx context.Context, email string) ([]*model.Administrator, error)
}

// AttemptRecorder はログイン試行結果の記録先。メトリクス層が実装する。
type AttemptRecorder interface {
	RecordLoginAttempt(success bool)
}

// Service はログイン認証のビジネスロジックを提供する。
// ロックアウトや試行回数制限は行わない。
type Service struct {
	finder   AdministratorFinder
	hasher   SecretHasher
	recorder AttemptRecorder
}

// NewService はServiceを生成する。hasherがnilの場合は平文照合を使用する。
// recorderはnilでもよい。
func NewService(finder AdministratorFinder, hasher SecretHasher, recorder AttemptRecorder) *Service {
	if hasher == nil {
		hasher = PlaintextHasher{}
	}
	return &Service{
		finder:   finder,
		hasher:   hasher,
		recorder: recorder,
	}
}

// Authenticate はメールアドレスとシークレットが一致する管理者を返す。
// 一致する管理者がいない場合は (nil, nil) を返す。これはエラーではない。
// メールアドレスは大文字小文字を区別する完全一致で、同一メールが複数ある場合はID順で最初に一致したものを返す。
func (s *Service) Authenticate(ctx context.Context, email, secret string) (*model.Administrator, error) {
	candidates, err := s.finder.ListByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("管理者の検索に失敗しました: %w", err)
	}

	for _, admin := range candidates {
		if s.hasher.Matches(admin.Secret, secret) {
			s.record(true)
			slog.Info("管理者がログインしました", slog.Int64("administrator_id", admin.ID))
			return admin, nil
		}
	}

	s.record(false)
	return nil, nil
}

func (s *Service) record(success bool) {
	if s.recorder != nil {
		s.recorder.RecordLoginAttempt(success)
	}
}
