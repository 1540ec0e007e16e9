package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/pr-poehali-dev/fleet-management-system/internal/app/ds"
)

// Claims - полезная нагрузка JWT токена FleetPro
type Claims struct {
	UserID   int    `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// JWTIssuer — проверяемый подписанный токен за тем же контрактом
// TokenIssuer. Включение меняет семантику verify: вместо заглушки
// проверяются подпись и срок действия.
type JWTIssuer struct {
	secret []byte
	expire time.Duration
	now    func() time.Time
}

func NewJWTIssuer(secret string, expire time.Duration) *JWTIssuer {
	return &JWTIssuer{
		secret: []byte(secret),
		expire: expire,
		now:    time.Now,
	}
}

func (i *JWTIssuer) Issue(user *ds.User) (string, error) {
	now := i.now()
	claims := &Claims{
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.expire)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(i.secret)
}

func (i *JWTIssuer) Verify(tokenString string) (bool, error) {
	_, err := i.ValidateToken(tokenString)
	if err != nil {
		return false, nil
	}
	return true, nil
}

// ValidateToken - разбор и проверка токена, возврат claims
func (i *JWTIssuer) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return i.secret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}

// NewIssuer — выбор схемы токенов по конфигу (digest | jwt)
func NewIssuer(scheme, secret string, expire time.Duration) TokenIssuer {
	if scheme == "jwt" {
		return NewJWTIssuer(secret, expire)
	}
	return NewDigestIssuer()
}
