package routes

import (
	"context"
	"log"
	"strconv"

	_ "consultoria_xpto/docs" // swag registration
	"consultoria_xpto/internal/adapter/http/handlers"
	"consultoria_xpto/internal/domain/policy"
	"consultoria_xpto/internal/infrastructure/config"
	"consultoria_xpto/internal/infrastructure/logger"
	"consultoria_xpto/internal/infrastructure/metrics"
	"consultoria_xpto/internal/usecase"
	"consultoria_xpto/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// Run will start the server
func Run() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zl, err := logger.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	repo, err := newRepository(context.Background(), cfg, zl)
	if err != nil {
		zl.Fatal("[app][routes] failed to build repository", zap.Error(err))
	}

	router, err := NewRouter(cfg, repo, metrics.NewRecorder(), zl)
	if err != nil {
		zl.Fatal("[app][routes] failed to build router", zap.Error(err))
	}

	zl.Info("[app][routes] listening",
		zap.Int("port", cfg.HTTPPort),
		zap.String("data_source", string(cfg.DataSource)),
		zap.Bool("fixture_fallback", cfg.FixtureFallback),
	)
	if err := router.Run(":" + strconv.Itoa(cfg.HTTPPort)); err != nil {
		zl.Fatal("[app][routes] failed to startup the application", zap.Error(err))
	}
}

// NewRouter wires use cases and handlers over repo and registers every route.
func NewRouter(cfg config.Config, repo interfaces.IEngagementRepository, rec *metrics.Recorder, zl *zap.Logger) (*gin.Engine, error) {
	deadline, err := policy.NewDeadlinePolicy(policy.DefaultTierMaxDays(), cfg.DeadlineDefaultMaxDays)
	if err != nil {
		return nil, err
	}

	engagementUseCase := usecase.NewEngagementUseCase(repo, deadline,
		usecase.WithMetrics(rec),
		usecase.WithLogger(zl),
	)
	dashboardUseCase := usecase.NewDashboardUseCase(repo, zl)

	engagementHandler := handlers.NewEngagementHandler(engagementUseCase, zl)
	dashboardHandler := handlers.NewDashboardHandler(dashboardUseCase, zl)

	router := gin.New()
	setMiddlewares(router, rec, zl)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(rec.Handler()))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addEngagementRoutes(v1, engagementHandler)
	addDashboardRoutes(v1, dashboardHandler)

	return router, nil
}

func setMiddlewares(router *gin.Engine, rec *metrics.Recorder, zl *zap.Logger) {
	router.Use(requestLogger(zl))
	router.Use(rec.GinMiddleware())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		zl.Error("[app][routes] recovered from panic", zap.Any("panic", recovered))
		c.AbortWithStatus(500)
	}))
}

