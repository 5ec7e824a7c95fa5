package handler

import (
	"context"

	"github.com/hitoshi/vehiclehub/internal/model"
	"github.com/hitoshi/vehiclehub/internal/validation"
)

// --- モック定義 ---

// mockAdministratorService はAdministratorServiceInterfaceのモック実装。
type mockAdministratorService struct {
	registerFn func(ctx context.Context, in validation.AdministratorInput) (*model.Administrator, error)
	getFn      func(ctx context.Context, id int64) (*model.Administrator, error)
	listFn     func(ctx context.Context, page int) ([]*model.Administrator, error)
	updateFn   func(ctx context.Context, id int64, in validation.AdministratorUpdateInput) (*model.Administrator, error)
	deleteFn   func(ctx context.Context, id int64) error
}

func (m *mockAdministratorService) Register(ctx context.Context, in validation.AdministratorInput) (*model.Administrator, error) {
	if m.registerFn != nil {
		return m.registerFn(ctx, in)
	}
	return &model.Administrator{ID: 1, Email: in.Email, Secret: in.Secret, Role: in.Role}, nil
}

func (m *mockAdministratorService) Get(ctx context.Context, id int64) (*model.Administrator, error) {
	if m.getFn != nil {
		return m.getFn(ctx, id)
	}
	return nil, model.NewAdministratorNotFoundError(id)
}

func (m *mockAdministratorService) List(ctx context.Context, page int) ([]*model.Administrator, error) {
	if m.listFn != nil {
		return m.listFn(ctx, page)
	}
	return nil, nil
}

func (m *mockAdministratorService) Update(ctx context.Context, id int64, in validation.AdministratorUpdateInput) (*model.Administrator, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, id, in)
	}
	return nil, model.NewAdministratorNotFoundError(id)
}

func (m *mockAdministratorService) Delete(ctx context.Context, id int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

// mockAuthService はAuthServiceInterfaceのモック実装。
type mockAuthService struct {
	authenticateFn func(ctx context.Context, email, secret string) (*model.Administrator, error)
}

func (m *mockAuthService) Authenticate(ctx context.Context, email, secret string) (*model.Administrator, error) {
	if m.authenticateFn != nil {
		return m.authenticateFn(ctx, email, secret)
	}
	return nil, nil
}

// mockVehicleService はVehicleServiceInterfaceのモック実装。
type mockVehicleService struct {
	createFn func(ctx context.Context, in validation.VehicleInput) (*model.Vehicle, error)
	getFn    func(ctx context.Context, id int64) (*model.Vehicle, error)
	listFn   func(ctx context.Context, filter model.VehicleFilter) ([]*model.Vehicle, error)
	updateFn func(ctx context.Context, id int64, in validation.VehicleInput) (*model.Vehicle, error)
	deleteFn func(ctx context.Context, id int64) error
}

func (m *mockVehicleService) Create(ctx context.Context, in validation.VehicleInput) (*model.Vehicle, error) {
	if m.createFn != nil {
		return m.createFn(ctx, in)
	}
	return &model.Vehicle{ID: 1, Name: in.Model, Brand: in.Brand, Year: in.Year}, nil
}

func (m *mockVehicleService) Get(ctx context.Context, id int64) (*model.Vehicle, error) {
	if m.getFn != nil {
		return m.getFn(ctx, id)
	}
	return nil, model.NewVehicleNotFoundError(id)
}

func (m *mockVehicleService) List(ctx context.Context, filter model.VehicleFilter) ([]*model.Vehicle, error) {
	if m.listFn != nil {
		return m.listFn(ctx, filter)
	}
	return nil, nil
}

func (m *mockVehicleService) Update(ctx context.Context, id int64, in validation.VehicleInput) (*model.Vehicle, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, id, in)
	}
	return nil, model.NewVehicleNotFoundError(id)
}

func (m *mockVehicleService) Delete(ctx context.Context, id int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

// newTestRouter はモックサービスでルーターを構築するヘルパー。
func newTestRouter(admins AdministratorServiceInterface, auth AuthServiceInterface, vehicles VehicleServiceInterface) *RouterDeps {
	if admins == nil {
		admins = &mockAdministratorService{}
	}
	if auth == nil {
		auth = &mockAuthService{}
	}
	if vehicles == nil {
		vehicles = &mockVehicleService{}
	}
	return &RouterDeps{
		CORSAllowedOrigin:    "http://localhost:3000",
		AdministratorService: admins,
		AuthService:          auth,
		VehicleService:       vehicles,
	}
}
