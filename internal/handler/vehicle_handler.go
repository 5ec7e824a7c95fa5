package handler

import (
	"context"
	"fmt"
	"net/http"

	"github.com/hitoshi/vehiclehub/internal/model"
	"github.com/hitoshi/vehiclehub/internal/validation"
)

// VehicleServiceInterface は車両ハンドラーが必要とするサービスインターフェース。
type VehicleServiceInterface interface {
	Create(ctx context.Context, in validation.VehicleInput) (*model.Vehicle, error)
	Get(ctx context.Context, id int64) (*model.Vehicle, error)
	List(ctx context.Context, filter model.VehicleFilter) ([]*model.Vehicle, error)
	Update(ctx context.Context, id int64, in validation.VehicleInput) (*model.Vehicle, error)
	Delete(ctx context.Context, id int64) error
}

// VehicleHandler は車両管理のHTTPハンドラー。
type VehicleHandler struct {
	service VehicleServiceInterface
}

// NewVehicleHandler はVehicleHandlerを生成する。
func NewVehicleHandler(service VehicleServiceInterface) *VehicleHandler {
	return &VehicleHandler{service: service}
}

// vehicleRequest は車両の登録・更新リクエストのボディ。
// model が省略された場合は name を車両名として使用する。
type vehicleRequest struct {
	Model *string `json:"model"`
	Name  *string `json:"name"`
	Brand string  `json:"brand"`
	Year  int     `json:"year"`
}

func (req vehicleRequest) toInput() validation.VehicleInput {
	var name string
	switch {
	case req.Model != nil:
		name = *req.Model
	case req.Name != nil:
		name = *req.Name
	}
	return validation.VehicleInput{
		Model: name,
		Brand: req.Brand,
		Year:  req.Year,
	}
}

// Create は車両を登録する。
// POST /vehicles
func (h *VehicleHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req vehicleRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}

	v, err := h.service.Create(r.Context(), req.toInput())
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/vehicles/%d", v.ID))
	writeJSON(w, http.StatusCreated, v)
}

// List は車両一覧を返す。
// GET /vehicles?page=N&name=&brand=
func (h *VehicleHandler) List(w http.ResponseWriter, r *http.Request) {
	page, apiErr := parsePageParam(r)
	if apiErr != nil {
		writeAPIErrorResponse(w, http.StatusBadRequest, apiErr)
		return
	}

	q := r.URL.Query()
	vehicles, err := h.service.List(r.Context(), model.VehicleFilter{
		Page:  page,
		Name:  q.Get("name"),
		Brand: q.Get("brand"),
	})
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	if vehicles == nil {
		vehicles = []*model.Vehicle{}
	}
	writeJSON(w, http.StatusOK, vehicles)
}

// Get は車両を返す。
// GET /vehicles/{id}
func (h *VehicleHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r)
	if !ok {
		writeAPIErrorResponse(w, http.StatusNotFound, model.NewVehicleNotFoundError(0))
		return
	}

	v, err := h.service.Get(r.Context(), id)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, v)
}

// Update は車両を置き換える。
// PUT /vehicles/{id}
func (h *VehicleHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r)
	if !ok {
		writeAPIErrorResponse(w, http.StatusNotFound, model.NewVehicleNotFoundError(0))
		return
	}

	var req vehicleRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}

	v, err := h.service.Update(r.Context(), id, req.toInput())
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, v)
}

// Delete は車両を削除する。
// DELETE /vehicles/{id}
func (h *VehicleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r)
	if !ok {
		writeAPIErrorResponse(w, http.StatusNotFound, model.NewVehicleNotFoundError(0))
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		handleServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
