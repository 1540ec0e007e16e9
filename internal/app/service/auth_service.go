package service

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/pr-poehali-dev/fleet-management-system/internal/app/auth"
	"github.com/pr-poehali-dev/fleet-management-system/internal/app/repository"
)

// Ошибки авторизации; хендлер переводит их в HTTP статусы
var (
	ErrCredentialsRequired = errors.New("username and password required")
	ErrTokenRequired       = errors.New("token required")
	// Единая ошибка для "нет пользователя" и "неверный пароль",
	// чтобы логины нельзя было перебирать по ответам.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// AuthService - сервис аутентификации пользователей FleetPro
type AuthService struct {
	repo   *repository.Repository
	hasher auth.PasswordHasher
	issuer auth.TokenIssuer
}

func NewAuthService(repo *repository.Repository, hasher auth.PasswordHasher, issuer auth.TokenIssuer) *AuthService {
	return &AuthService{
		repo:   repo,
		hasher: hasher,
		issuer: issuer,
	}
}

// LoginResult - токен и публичная проекция пользователя
type LoginResult struct {
	Token string                 `json:"token"`
	User  map[string]interface{} `json:"user"`
}

// Login - проверка логина/пароля и выдача токена сессии
func (s *AuthService) Login(username, password string) (*LoginResult, error) {
	if username == "" || password == "" {
		return nil, ErrCredentialsRequired
	}

	user, err := s.repo.GetUserByUsername(username)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("lookup user: %w", err)
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	token, err := s.issuer.Issue(user)
	if err != nil {
		logrus.Errorf("issue token for %q: %v", username, err)
		return nil, fmt.Errorf("issue token: %w", err)
	}

	return &LoginResult{
		Token: token,
		User:  user.Public(),
	}, nil
}

// VerifyToken - проверка "живости" токена для действия verify.
// Под legacy digest-схемой любой непустой токен валиден.
func (s *AuthService) VerifyToken(token string) (bool, error) {
	if token == "" {
		return false, ErrTokenRequired
	}
	return s.issuer.Verify(token)
}
