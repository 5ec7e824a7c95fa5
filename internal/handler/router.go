package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/hitoshi/vehiclehub/internal/metrics"
	"github.com/hitoshi/vehiclehub/internal/middleware"
	"github.com/prometheus/client_golang/prometheus"
)

// RouterDeps はNewRouterに必要な依存関係をまとめた構造体。
type RouterDeps struct {
	// ミドルウェア依存
	HealthChecker     HealthChecker
	CORSAllowedOrigin string
	Logger            *slog.Logger

	// メトリクス（nilの場合は計測しない）
	Metrics         middleware.HTTPRecorder
	MetricsGatherer prometheus.Gatherer

	// 管理者
	AdministratorService AdministratorServiceInterface
	AuthService          AuthServiceInterface

	// 車両
	VehicleService VehicleServiceInterface
}

// NewRouter は全APIエンドポイントのルーティングとミドルウェアチェーンを構成したchi.Routerを返す。
//
// ミドルウェアスタックの実行順序:
//
//	RequestID → Metrics → Logging → Recovery → SecurityHeaders → CORS
func NewRouter(deps *RouterDeps) http.Handler {
	r := chi.NewRouter()

	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	r.Use(middleware.NewRequestIDMiddleware())
	if deps.Metrics != nil {
		r.Use(middleware.NewMetricsMiddleware(deps.Metrics))
	}
	r.Use(middleware.NewLoggingMiddleware(logger))
	r.Use(middleware.NewRecoveryMiddleware())
	r.Use(middleware.NewSecurityHeadersMiddleware())
	r.Use(middleware.NewCORSMiddleware(deps.CORSAllowedOrigin))

	adminHandler := NewAdministratorHandler(deps.AdministratorService, deps.AuthService)
	vehicleHandler := NewVehicleHandler(deps.VehicleService)

	// --- 運用系 ---
	r.Get("/", Root)
	r.Get("/health", NewHealthHandler(deps.HealthChecker))
	if deps.MetricsGatherer != nil {
		r.Handle("/metrics", metrics.Handler(deps.MetricsGatherer))
	}

	// --- 管理者 ---
	// 既存クライアント互換のため大文字始まりのパスと小文字のパスの両方を受け付ける
	adminRoutes := func(r chi.Router) {
		r.Post("/login", adminHandler.Login)
		r.Post("/", adminHandler.Register)
		r.Get("/", adminHandler.List)

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", adminHandler.Get)
			r.Put("/", adminHandler.Update)
			r.Delete("/", adminHandler.Delete)
		})
	}
	r.Route("/Administrators", adminRoutes)
	r.Route("/administrators", adminRoutes)

	// --- 車両 ---
	r.Route("/vehicles", func(r chi.Router) {
		r.Post("/", vehicleHandler.Create)
		r.Get("/", vehicleHandler.List)

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", vehicleHandler.Get)
			r.Put("/", vehicleHandler.Update)
			r.Delete("/", vehicleHandler.Delete)
		})
	})

	return r
}
