package dsn

import (
	"fmt"
	"os"
)

// FromEnv — строка подключения к Postgres. Приоритет у DATABASE_URL
// (так сконфигурировано прод-окружение), иначе собираем из DB_*.
func FromEnv() string {
	if url := os.Getenv("DATABASE_URL"); url != "" {
		return url
	}

	host := envOr("DB_HOST", "localhost")
	port := envOr("DB_PORT", "5432")
	user := envOr("DB_USER", "postgres")
	pass := os.Getenv("DB_PASSWORD")
	name := envOr("DB_NAME", "fleetpro")

	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		host, port, user, pass, name)
}

func envOr(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
