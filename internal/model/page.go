package model

import "math"

// PageSize は一覧取得1ページあたりの件数。
const PageSize = 10

// MaxPage はオフセットがintに収まる最大のページ番号。
// これを超える値はMaxPageに丸められ、常に空のページになる。
const MaxPage = math.MaxInt/PageSize + 1

// NormalizePage は1始まりのページ番号を正規化する。1未満は1として扱う。
func NormalizePage(page int) int {
	if page < 1 {
		return 1
	}
	if page > MaxPage {
		return MaxPage
	}
	return page
}

// PageOffset は指定ページの先頭オフセットを返す。
func PageOffset(page int) int {
	return (NormalizePage(page) - 1) * PageSize
}
