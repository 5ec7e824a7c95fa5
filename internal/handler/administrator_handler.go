package handler

import (
	"context"
	"fmt"
	"net/http"

	"github.com/hitoshi/vehiclehub/internal/model"
	"github.com/hitoshi/vehiclehub/internal/validation"
)

// AdministratorServiceInterface は管理者ハンドラーが必要とするサービスインターフェース。
type AdministratorServiceInterface interface {
	Register(ctx context.Context, in validation.AdministratorInput) (*model.Administrator, error)
	Get(ctx context.Context, id int64) (*model.Administrator, error)
	List(ctx context.Context, page int) ([]*model.Administrator, error)
	Update(ctx context.Context, id int64, in validation.AdministratorUpdateInput) (*model.Administrator, error)
	Delete(ctx context.Context, id int64) error
}

// AuthServiceInterface はログイン処理が必要とする認証サービスインターフェース。
type AuthServiceInterface interface {
	// Authenticate は一致する管理者を返す。一致しない場合は (nil, nil)。
	Authenticate(ctx context.Context, email, secret string) (*model.Administrator, error)
}

// AdministratorHandler は管理者管理のHTTPハンドラー。
type AdministratorHandler struct {
	service AdministratorServiceInterface
	auth    AuthServiceInterface
}

// NewAdministratorHandler はAdministratorHandlerを生成する。
func NewAdministratorHandler(service AdministratorServiceInterface, auth AuthServiceInterface) *AdministratorHandler {
	return &AdministratorHandler{
		service: service,
		auth:    auth,
	}
}

// loginRequest はログインリクエストのボディ。
type loginRequest struct {
	Email  string `json:"email"`
	Secret string `json:"secret"`
}

// registerAdministratorRequest は管理者登録リクエストのボディ。
// email と secret は省略と空文字で検証結果が変わるためポインタで受ける。
type registerAdministratorRequest struct {
	Name   string  `json:"name"`
	Email  *string `json:"email"`
	Secret *string `json:"secret"`
	Role   string  `json:"role"`
}

func (req registerAdministratorRequest) toInput() validation.AdministratorInput {
	return validation.AdministratorInput{
		Name:          req.Name,
		Email:         deref(req.Email),
		Secret:        deref(req.Secret),
		Role:          model.Role(req.Role),
		EmailOmitted:  req.Email == nil,
		SecretOmitted: req.Secret == nil,
	}
}

// updateAdministratorRequest は管理者更新リクエストのボディ。
type updateAdministratorRequest struct {
	Secret *string `json:"secret"`
	Role   string  `json:"role"`
}

func (req updateAdministratorRequest) toInput() validation.AdministratorUpdateInput {
	return validation.AdministratorUpdateInput{
		Secret:        deref(req.Secret),
		Role:          model.Role(req.Role),
		SecretOmitted: req.Secret == nil,
	}
}

func deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

// Login は資格情報を照合する。
// POST /Administrators/login
func (h *AdministratorHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}

	admin, err := h.auth.Authenticate(r.Context(), req.Email, req.Secret)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}
	if admin == nil {
		writeAPIErrorResponse(w, http.StatusUnauthorized, model.NewUnauthorizedError())
		return
	}

	writeJSON(w, http.StatusOK, model.ToAdministratorView(admin))
}

// Register は管理者を登録する。
// POST /Administrators
func (h *AdministratorHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerAdministratorRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}

	admin, err := h.service.Register(r.Context(), req.toInput())
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/Administrators/%d", admin.ID))
	writeJSON(w, http.StatusCreated, model.ToAdministratorView(admin))
}

// List は管理者一覧を返す。
// GET /Administrators?page=N
func (h *AdministratorHandler) List(w http.ResponseWriter, r *http.Request) {
	page, apiErr := parsePageParam(r)
	if apiErr != nil {
		writeAPIErrorResponse(w, http.StatusBadRequest, apiErr)
		return
	}

	admins, err := h.service.List(r.Context(), page)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, model.ToAdministratorViews(admins))
}

// Get は管理者を返す。
// GET /Administrators/{id}
func (h *AdministratorHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r)
	if !ok {
		writeAPIErrorResponse(w, http.StatusNotFound, model.NewAdministratorNotFoundError(0))
		return
	}

	admin, err := h.service.Get(r.Context(), id)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, model.ToAdministratorView(admin))
}

// Update は管理者のロールとパスワードを置き換える。
// PUT /Administrators/{id}
func (h *AdministratorHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r)
	if !ok {
		writeAPIErrorResponse(w, http.StatusNotFound, model.NewAdministratorNotFoundError(0))
		return
	}

	var req updateAdministratorRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}

	admin, err := h.service.Update(r.Context(), id, req.toInput())
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, model.ToAdministratorView(admin))
}

// Delete は管理者を削除する。
// DELETE /Administrators/{id}
func (h *AdministratorHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r)
	if !ok {
		writeAPIErrorResponse(w, http.StatusNotFound, model.NewAdministratorNotFoundError(0))
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		handleServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
