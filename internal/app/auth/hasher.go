package auth

import (
	"crypto/sha256"
	"encoding/hex"

	"golang.org/x/crypto/bcrypt"
)

// PasswordHasher — стратегия хеширования паролей.
// Контракт хендлера от алгоритма не зависит.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, passwordHash string) bool
}

// SHA256Hasher — legacy-схема: один проход sha256 без соли.
// Оставлена только ради совместимости с уже сохраненными хешами,
// для новых установок использовать BcryptHasher.
type SHA256Hasher struct{}

func NewSHA256Hasher() *SHA256Hasher { return &SHA256Hasher{} }

func (h *SHA256Hasher) Hash(password string) (string, error) {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:]), nil
}

func (h *SHA256Hasher) Verify(password, passwordHash string) bool {
	hashed, _ := h.Hash(password)
	return hashed == passwordHash
}

// BcryptHasher — соленая итеративная схема на замену legacy
type BcryptHasher struct {
	cost int
}

func NewBcryptHasher() *BcryptHasher {
	return &BcryptHasher{cost: bcrypt.DefaultCost}
}

func (h *BcryptHasher) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func (h *BcryptHasher) Verify(password, passwordHash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password)) == nil
}

// NewHasher — выбор стратегии по конфигу (sha256 | bcrypt)
func NewHasher(scheme string) PasswordHasher {
	if scheme == "bcrypt" {
		return NewBcryptHasher()
	}
	return NewSHA256Hasher()
}
