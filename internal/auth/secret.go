package auth

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// シークレット保存方式
const (
	HashingPlaintext = "plaintext"
	HashingBcrypt    = "bcrypt"
)

// MaxBcryptSecretBytes はbcryptが扱える入力の最大バイト数。
const MaxBcryptSecretBytes = 72

// ErrSecretTooLong は保存方式が受け付けられない長さのシークレットを示す。
var ErrSecretTooLong = errors.New("secret exceeds the hashing limit")

// SecretHasher は管理者シークレットの保存形式と照合方法を抽象化する。
type SecretHasher interface {
	// Hash は保存用の値を返す。
	Hash(secret string) (string, error)
	// Matches は保存値と入力値が一致するかを返す。
	Matches(stored, supplied string) bool
}

// PlaintextHasher は平文のまま保存し、完全一致で照合する。
// 既存データ（シード含む）との互換のための既定方式。
type PlaintextHasher struct{}

// Hash は入力をそのまま返す。
func (PlaintextHasher) Hash(secret string) (string, error) {
	return secret, nil
}

// Matches は大文字小文字を区別する完全一致で照合する。
func (PlaintextHasher) Matches(stored, supplied string) bool {
	return stored == supplied
}

// BcryptHasher はbcryptハッシュで保存・照合する。
// 平文で保存された既存行とは一致しない。
type BcryptHasher struct {
	Cost int
}

// Hash はbcryptハッシュを生成する。
func (h BcryptHasher) Hash(secret string) (string, error) {
	cost := h.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	if len(secret) > MaxBcryptSecretBytes {
		return "", ErrSecretTooLong
	}
	b, err := bcrypt.GenerateFromPassword([]byte(secret), cost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return "", ErrSecretTooLong
	}
	if err != nil {
		return "", fmt.Errorf("failed to hash secret: %w", err)
	}
	return string(b), nil
}

// Matches はbcryptで照合する。
func (BcryptHasher) Matches(stored, supplied string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(supplied)) == nil
}

// NewSecretHasher は設定値から SecretHasher を生成する。
// modeは "plaintext"（既定）または "bcrypt"。
func NewSecretHasher(mode string, bcryptCost int) (SecretHasher, error) {
	switch mode {
	case "", HashingPlaintext:
		return PlaintextHasher{}, nil
	case HashingBcrypt:
		if bcryptCost != 0 && (bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost) {
			return nil, fmt.Errorf("bcrypt cost must be between %d and %d: %d", bcrypt.MinCost, bcrypt.MaxCost, bcryptCost)
		}
		return BcryptHasher{Cost: bcryptCost}, nil
	default:
		return nil, errors.New("unknown secret hashing mode: " + mode)
	}
}
