// Package validation は登録・更新リクエストの入力検証ルールを提供する。
// 検証はすべて純粋関数で、違反は error ではなくメッセージ一覧として返す。
package validation

import (
	"strings"
	"unicode/utf8"

	"github.com/hitoshi/vehiclehub/internal/model"
)

// MinSecretLength はパスワードの最小文字数。
const MinSecretLength = 6

// 違反メッセージ（クライアントにそのまま返す）
const (
	MsgNameEmpty       = "Name cannot be empty"
	MsgEmailEmpty      = "Email cannot be empty"
	MsgSecretEmpty     = "Password cannot be empty"
	MsgSecretTooShort  = "Password must be at least 6 characters"
	MsgEmailFormat     = "Email must be a valid format"
	MsgSecretTooLong   = "Password must be at most 72 bytes"
	MsgModelEmpty      = "Model cannot be empty"
	MsgBrandBlank      = "Brand cannot be blank"
	MsgYearBeforeFloor = "Year cannot be less than 1900"
)

// Result は検証結果。Messages が空であれば検証成功。
type Result struct {
	Messages []string
}

// Valid は違反がないかどうかを返す。
func (r Result) Valid() bool {
	return len(r.Messages) == 0
}

// Err は違反がある場合に *model.ValidationError を返す。違反がなければ nil。
func (r Result) Err() error {
	if r.Valid() {
		return nil
	}
	return &model.ValidationError{Messages: r.Messages}
}

func (r *Result) add(msg string) {
	r.Messages = append(r.Messages, msg)
}

// AdministratorInput は管理者登録の入力値。
// Name は検証のみに使用し、永続化はしない。
// EmailOmitted / SecretOmitted はリクエストで項目が省略（またはnull）されたことを示す。
// 省略された項目には長さ・形式のルールを適用しない。空文字は送信済みとして扱う。
type AdministratorInput struct {
	Name          string
	Email         string
	Secret        string
	Role          model.Role
	EmailOmitted  bool
	SecretOmitted bool
}

// AdministratorUpdateInput は管理者更新（ロール・パスワードの置き換え）の入力値。
type AdministratorUpdateInput struct {
	Secret        string
	Role          model.Role
	SecretOmitted bool
}

// VehicleInput は車両の登録・更新の入力値。
type VehicleInput struct {
	Model string
	Brand string
	Year  int
}

// ValidateAdministrator は管理者登録の入力を検証する。
// 各ルールは独立に評価され、違反ごとに固定順でメッセージを追加する。
func ValidateAdministrator(in AdministratorInput) Result {
	var r Result

	if in.Name == "" {
		r.add(MsgNameEmpty)
	}
	if in.Email == "" {
		r.add(MsgEmailEmpty)
	}
	checkSecret(&r, in.Secret, in.SecretOmitted)
	if !in.EmailOmitted && !strings.Contains(in.Email, "@") {
		r.add(MsgEmailFormat)
	}

	return r
}

// ValidateAdministratorUpdate は管理者更新の入力を検証する。
// ロールは自由入力のため、パスワードのルールのみを適用する。
func ValidateAdministratorUpdate(in AdministratorUpdateInput) Result {
	var r Result
	checkSecret(&r, in.Secret, in.SecretOmitted)
	return r
}

// ValidateVehicle は車両の登録・更新の入力を検証する。
func ValidateVehicle(in VehicleInput) Result {
	var r Result

	if in.Model == "" {
		r.add(MsgModelEmpty)
	}
	if in.Brand == "" {
		r.add(MsgBrandBlank)
	}
	if in.Year < model.MinVehicleYear {
		r.add(MsgYearBeforeFloor)
	}

	return r
}

// checkSecret は空チェックと長さチェックを行う。長さは文字数（rune）で数える。
// 空文字は両方のルールに違反する。省略時は長さチェックを行わない。
func checkSecret(r *Result, secret string, omitted bool) {
	if secret == "" {
		r.add(MsgSecretEmpty)
	}
	if !omitted && utf8.RuneCountInString(secret) < MinSecretLength {
		r.add(MsgSecretTooShort)
	}
}
