// Package model はドメインモデルを定義する。
package model

// Role は管理者の権限区分（プロファイル）を表す。
// 既知の値以外のラベルもそのまま保持する。
type Role string

const (
	// RoleAdm はフル権限の管理者。シードデータが使用する値。
	RoleAdm Role = "Adm"
	// RoleEditor は編集権限のみを持つ管理者。登録時の既定値。
	RoleEditor Role = "Editor"
	// RoleAdmin は旧データで使われていた管理者ラベル。
	RoleAdmin Role = "Admin"
)

// DefaultRole は登録時にロールが未指定だった場合に割り当てるロール。
const DefaultRole = RoleEditor

// IsKnown は既知のロールラベルかどうかを返す。
func (r Role) IsKnown() bool {
	switch r {
	case RoleAdm, RoleEditor, RoleAdmin:
		return true
	default:
		return false
	}
}

// Administrator は管理者アカウントを表す。
// Secret は平文またはハッシュ値のいずれか（auth.SecretHasher の設定に従う）。
type Administrator struct {
	ID     int64
	Email  string
	Secret string
	Role   Role
}

// AdministratorView は管理者の公開用ビュー。Secret を含まない。
type AdministratorView struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// ToAdministratorView は管理者エンティティを公開用ビューに変換する。
func ToAdministratorView(a *Administrator) AdministratorView {
	return AdministratorView{
		ID:    a.ID,
		Email: a.Email,
		Role:  a.Role,
	}
}

// ToAdministratorViews は管理者の一覧を入力順のままビューに変換する。
// 入力が空の場合も nil ではなく空スライスを返す（JSONで [] になる）。
func ToAdministratorViews(admins []*Administrator) []AdministratorView {
	views := make([]AdministratorView, len(admins))
	for i, a := range admins {
		views[i] = ToAdministratorView(a)
	}
	return views
}
