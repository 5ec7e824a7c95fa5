package model

import (
	"fmt"
	"strings"
)

// APIError は統一エラーフォーマットを表す。
// UIに表示する原因カテゴリと対処方法を含む。
type APIError struct {
	Code     string // エラーコード
	Message  string // エラーメッセージ
	Category string // カテゴリ: auth, validation, resource, system
	Action   string // 利用者向け対処方法
}

// Error はerrorインターフェースを実装する。
func (e *APIError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// 定義済みエラーコード
const (
	ErrCodeInvalidRequest        = "INVALID_REQUEST"
	ErrCodeInvalidPage           = "INVALID_PAGE"
	ErrCodeUnauthorized          = "UNAUTHORIZED"
	ErrCodeAdministratorNotFound = "ADMINISTRATOR_NOT_FOUND"
	ErrCodeVehicleNotFound       = "VEHICLE_NOT_FOUND"
	ErrCodeInternal              = "INTERNAL_ERROR"
)

// NewInvalidRequestError はリクエストボディを解析できない場合のエラーを生成する。
func NewInvalidRequestError() *APIError {
	return &APIError{
		Code:     ErrCodeInvalidRequest,
		Message:  "The request body could not be parsed.",
		Category: "validation",
		Action:   "Send a well-formed JSON body.",
	}
}

// NewInvalidPageError はページ番号が整数でない場合のエラーを生成する。
func NewInvalidPageError(raw string) *APIError {
	return &APIError{
		Code:     ErrCodeInvalidPage,
		Message:  fmt.Sprintf("Invalid page number: %s", raw),
		Category: "validation",
		Action:   "Specify page as a positive integer.",
	}
}

// NewUnauthorizedError はログイン失敗時のエラーを生成する。
// どのフィールドが誤っていたかは含めない。
func NewUnauthorizedError() *APIError {
	return &APIError{
		Code:     ErrCodeUnauthorized,
		Message:  "Invalid credentials.",
		Category: "auth",
		Action:   "Check your email and password.",
	}
}

// NewAdministratorNotFoundError は管理者が存在しない場合のエラーを生成する。
func NewAdministratorNotFoundError(id int64) *APIError {
	return &APIError{
		Code:     ErrCodeAdministratorNotFound,
		Message:  fmt.Sprintf("Administrator not found: %d", id),
		Category: "resource",
		Action:   "Check the administrator ID.",
	}
}

// NewVehicleNotFoundError は車両が存在しない場合のエラーを生成する。
func NewVehicleNotFoundError(id int64) *APIError {
	return &APIError{
		Code:     ErrCodeVehicleNotFound,
		Message:  fmt.Sprintf("Vehicle not found: %d", id),
		Category: "resource",
		Action:   "Check the vehicle ID.",
	}
}

// NewInternalError は内部エラーを生成する。詳細はログにのみ記録する。
func NewInternalError() *APIError {
	return &APIError{
		Code:     ErrCodeInternal,
		Message:  "An internal error occurred.",
		Category: "system",
		Action:   "Please wait a moment and try again.",
	}
}

// ValidationError は入力検証の違反メッセージ一覧を表す。
// 違反がある場合のみサービス層から返され、HTTP 400 に対応する。
type ValidationError struct {
	Messages []string `json:"messages"`
}

// Error はerrorインターフェースを実装する。
func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Messages, "; ")
}
