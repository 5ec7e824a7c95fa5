package model

// MinVehicleYear は登録・更新可能な製造年の下限。
const MinVehicleYear = 1900

// Vehicle は車両を表す。Name はモデル名（表示名）。
type Vehicle struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Brand string `json:"brand"`
	Year  int    `json:"year"`
}

// VehicleFilter は車両一覧取得の条件。
// Name、Brand が空でない場合は部分一致（大文字小文字を区別）で絞り込む。
type VehicleFilter struct {
	Page  int
	Name  string
	Brand string
}
