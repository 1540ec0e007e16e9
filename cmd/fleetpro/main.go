package main

import (
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/pr-poehali-dev/fleet-management-system/internal/api"
)

func main() {
	// .env для локальной разработки; в проде переменные заданы окружением
	if err := godotenv.Load(); err != nil {
		logrus.Debug("no .env file, using environment")
	}

	api.StartServer()
}
