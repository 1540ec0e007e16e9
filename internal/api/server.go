package api

import (
	"fmt"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/pr-poehali-dev/fleet-management-system/internal/app/auth"
	"github.com/pr-poehali-dev/fleet-management-system/internal/app/config"
	"github.com/pr-poehali-dev/fleet-management-system/internal/app/dsn"
	"github.com/pr-poehali-dev/fleet-management-system/internal/app/handler"
	"github.com/pr-poehali-dev/fleet-management-system/internal/app/middleware"
	"github.com/pr-poehali-dev/fleet-management-system/internal/app/repository"
	"github.com/pr-poehali-dev/fleet-management-system/internal/app/service"
)

func StartServer() {
	logrus.Info("FleetPro backend start up")

	conf, err := config.NewConfig()
	if err != nil {
		logrus.Fatalf("error loading config: %v", err)
	}

	repo, err := repository.New(dsn.FromEnv())
	if err != nil {
		logrus.Fatalf("error initializing repository: %v", err)
	}

	if err := repo.Migrate(); err != nil {
		logrus.Fatalf("error migrating schema: %v", err)
	}

	hasher := auth.NewHasher(conf.PasswordScheme)
	issuer := auth.NewIssuer(conf.TokenScheme, conf.JWTSecret, conf.JWTTokenExpire)

	authService := service.NewAuthService(repo, hasher, issuer)
	waybillService := service.NewWaybillService(repo)
	authMiddleware := middleware.NewAuthMiddleware(issuer)

	h := handler.NewHandler(repo, authService, waybillService)

	r := gin.Default()
	r.Use(middleware.RequestID())

	registerRoutes(r, h, authMiddleware)

	serverAddress := fmt.Sprintf("%s:%d", conf.ServiceHost, conf.ServicePort)
	logrus.Infof("Starting HTTP server on %s", serverAddress)
	if err := r.Run(serverAddress); err != nil {
		logrus.Fatal(err)
	}
	logrus.Info("Server down")
}

// corsFor — CORS-конфиг конкретного семейства эндпоинтов; у каждого
// хендлера свой набор методов и заголовков, поэтому middleware вешается
// на группу, а не глобально
func corsFor(methods, headers []string) gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowOrigins:              []string{"*"},
		AllowMethods:              methods,
		AllowHeaders:              headers,
		MaxAge:                    24 * time.Hour,
		OptionsResponseStatusCode: 200,
	})
}

// registerRoutes — три семейства эндпоинтов; метод разбирается внутри
// хендлера, поэтому Any (так же диспетчеризовал исходный шлюз)
func registerRoutes(r *gin.Engine, h *handler.Handler, am *middleware.AuthMiddleware) {
	authGroup := r.Group("/api/auth")
	authGroup.Use(corsFor(
		[]string{"GET", "POST", "OPTIONS"},
		[]string{"Origin", "Content-Type", "X-Auth-Token"},
	))
	authGroup.Any("", h.Auth)

	fleet := r.Group("/api/fleet")
	fleet.Use(corsFor(
		[]string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		[]string{"Origin", "Content-Type", "X-User-Id"},
	))
	fleet.Use(am.OptionalAuth())
	fleet.Any("", h.Fleet)

	waybills := r.Group("/api/waybills")
	waybills.Use(corsFor(
		[]string{"GET", "POST", "PUT", "OPTIONS"},
		[]string{"Origin", "Content-Type", "X-Auth-Token"},
	))
	waybills.Use(am.OptionalAuth())
	waybills.Any("", h.Waybills)
}
