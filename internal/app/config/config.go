package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config - конфигурация сервиса FleetPro
type Config struct {
	ServiceHost string
	ServicePort int

	// Схема хеширования паролей: sha256 (legacy) | bcrypt
	PasswordScheme string
	// Схема токенов: digest (legacy, verify-заглушка) | jwt
	TokenScheme    string
	JWTSecret      string
	JWTTokenExpire time.Duration
}

// NewConfig — значения из config/config.toml (если есть) поверх
// переменных окружения; дефолты повторяют поведение исходной системы
func NewConfig() (*Config, error) {
	v := viper.New()

	v.SetDefault("service_host", "0.0.0.0")
	v.SetDefault("service_port", 8080)
	v.SetDefault("password_scheme", "sha256")
	v.SetDefault("token_scheme", "digest")
	v.SetDefault("jwt_secret", "")
	v.SetDefault("jwt_token_expire", "15m")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath("config")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		// Файл конфига опционален, окружения достаточно
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	return &Config{
		ServiceHost:    v.GetString("service_host"),
		ServicePort:    v.GetInt("service_port"),
		PasswordScheme: v.GetString("password_scheme"),
		TokenScheme:    v.GetString("token_scheme"),
		JWTSecret:      v.GetString("jwt_secret"),
		JWTTokenExpire: v.GetDuration("jwt_token_expire"),
	}, nil
}
