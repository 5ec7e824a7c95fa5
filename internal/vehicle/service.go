// Package vehicle は車両の登録・検索・更新・削除のドメインロジックを提供する。
package vehicle

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/hitoshi/vehiclehub/internal/model"
	"github.com/hitoshi/vehiclehub/internal/repository"
	"github.com/hitoshi/vehiclehub/internal/validation"
)

// Input は車両の登録・更新の入力値。
type Input = validation.VehicleInput

// ValidationRecorder は検証失敗の記録先。
type ValidationRecorder interface {
	RecordValidationFailure(resource string)
}

// Service は車両管理のサービス層。
type Service struct {
	repo     repository.VehicleRepository
	recorder ValidationRecorder
}

// NewService はServiceの新しいインスタンスを生成する。recorderはnilでもよい。
func NewService(repo repository.VehicleRepository, recorder ValidationRecorder) *Service {
	return &Service{
		repo:     repo,
		recorder: recorder,
	}
}

// Create は入力を検証し、車両を登録する。
func (s *Service) Create(ctx context.Context, in Input) (*model.Vehicle, error) {
	if err := s.validate(in); err != nil {
		return nil, err
	}

	v := &model.Vehicle{
		Name:  in.Model,
		Brand: in.Brand,
		Year:  in.Year,
	}
	if err := s.repo.Create(ctx, v); err != nil {
		return nil, fmt.Errorf("車両の登録に失敗しました: %w", err)
	}

	slog.Info("車両を登録しました", slog.Int64("vehicle_id", v.ID))
	return v, nil
}

// Get は指定IDの車両を返す。
func (s *Service) Get(ctx context.Context, id int64) (*model.Vehicle, error) {
	v, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("車両の取得に失敗しました: %w", err)
	}
	if v == nil {
		return nil, model.NewVehicleNotFoundError(id)
	}
	return v, nil
}

// List は名前・ブランドで絞り込んだ車両の指定ページを返す。
func (s *Service) List(ctx context.Context, filter model.VehicleFilter) ([]*model.Vehicle, error) {
	filter.Page = model.NormalizePage(filter.Page)
	vehicles, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("車両一覧の取得に失敗しました: %w", err)
	}
	return vehicles, nil
}

// Update は車両の名前・ブランド・製造年を置き換える。
// 違反がある場合は一切変更しない。
func (s *Service) Update(ctx context.Context, id int64, in Input) (*model.Vehicle, error) {
	if err := s.validate(in); err != nil {
		return nil, err
	}

	v := &model.Vehicle{
		ID:    id,
		Name:  in.Model,
		Brand: in.Brand,
		Year:  in.Year,
	}
	if err := s.repo.Update(ctx, v); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, model.NewVehicleNotFoundError(id)
		}
		return nil, fmt.Errorf("車両の更新に失敗しました: %w", err)
	}
	return v, nil
}

// Delete は指定IDの車両を削除する。
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.NewVehicleNotFoundError(id)
		}
		return fmt.Errorf("車両の削除に失敗しました: %w", err)
	}

	slog.Info("車両を削除しました", slog.Int64("vehicle_id", id))
	return nil
}

func (s *Service) validate(in Input) error {
	err := validation.ValidateVehicle(in).Err()
	if err != nil && s.recorder != nil {
		s.recorder.RecordValidationFailure("vehicle")
	}
	return err
}
