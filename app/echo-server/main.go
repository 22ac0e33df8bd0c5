package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"streamPulse/app/echo-server/router"
	"streamPulse/business/campaign"
	"streamPulse/business/correlation"
	"streamPulse/business/forecast"
	"streamPulse/business/pareto"
	"streamPulse/business/rootcause"
	"streamPulse/domain"
	"streamPulse/internal/middleware"
	"streamPulse/internal/repository/memory"
	psqlRepo "streamPulse/internal/repository/postgres"
	redisRepo "streamPulse/internal/repository/redis"
	"streamPulse/internal/rest"
	"streamPulse/pkg/config"
	"streamPulse/pkg/database"
	redisdb "streamPulse/pkg/database/redis"
	"streamPulse/pkg/logger"
	"streamPulse/pkg/metrics"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	goredis "github.com/redis/go-redis/v9"
)

// Per-entity store contracts covering both the postgres repositories and the
// in-memory snapshot views, so data mode stays a wiring decision.
type (
	cohortStore interface {
		Create(ctx context.Context, cohort *domain.Cohort) error
		FindAll(ctx context.Context) ([]domain.Cohort, error)
		FindByID(ctx context.Context, id string) (domain.Cohort, error)
	}

	themeStore interface {
		Create(ctx context.Context, theme *domain.ComplaintTheme) error
		FindAll(ctx context.Context) ([]domain.ComplaintTheme, error)
	}

	issueStore interface {
		Create(ctx context.Context, issue *domain.ProductionIssue) error
		FindAll(ctx context.Context) ([]domain.ProductionIssue, error)
	}

	showStore interface {
		Create(ctx context.Context, show *domain.ContentShow) error
		FindAll(ctx context.Context) ([]domain.ContentShow, error)
	}

	efficiencyStore interface {
		GetOperationalEfficiencyScore(ctx context.Context) (float64, error)
	}
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.App.Environment)
	logger.Info("Starting StreamPulse", "version", cfg.App.Version, "data_mode", cfg.Analytics.DataMode)

	metrics.Init()

	// Init stores per data mode
	var (
		cohortRepo     cohortStore
		themeRepo      themeStore
		issueRepo      issueStore
		showRepo       showStore
		efficiencyRepo efficiencyStore
	)

	switch cfg.Analytics.DataMode {
	case config.DataModePostgres:
		db, err := database.InitPostgres(cfg)
		if err != nil {
			logger.Fatal("Failed to connect to database", "error", err)
		}
		logger.Info("Database connected successfully")

		cohortRepo = psqlRepo.NewCohortRepository(db)
		themeRepo = psqlRepo.NewComplaintThemeRepository(db)
		issueRepo = psqlRepo.NewProductionIssueRepository(db)
		showRepo = psqlRepo.NewContentShowRepository(db)
		efficiencyRepo = psqlRepo.NewOperationalMetricRepository(db)
	default:
		store := memory.NewSnapshotStore(memory.DemoSnapshot())
		logger.Info("Serving in-memory demo snapshot")

		cohortRepo = store.Cohorts()
		themeRepo = store.Themes()
		issueRepo = store.Issues()
		showRepo = store.Shows()
		efficiencyRepo = store
	}

	// Init report cache when redis is enabled
	var (
		redisClient *goredis.Client
		reportCache rootcause.ReportCache
	)
	if cfg.Redis.Enabled {
		redisClient, err = redisdb.NewRedisClient(cfg)
		if err != nil {
			logger.Fatal("Failed to connect to redis", "error", err)
		}
		logger.Info("Redis connected successfully")

		ttl := time.Duration(cfg.Analytics.ReportCacheTTLSeconds) * time.Second
		reportCache = redisRepo.NewReportCache(redisClient, ttl)
	}

	// Init engines
	paretoCfg := pareto.DefaultConfig()
	paretoCfg.ValidityThreshold = cfg.Analytics.ParetoValidityThreshold
	paretoService := pareto.NewParetoService(paretoCfg)

	correlationService := correlation.NewCorrelationService(correlation.DefaultConfig())

	rootCauseCfg := rootcause.DefaultConfig()
	rootCauseCfg.InvestmentPerMember = cfg.Analytics.InvestmentPerMember
	analyzerService := rootcause.NewAnalyzerService(
		cohortRepo,
		themeRepo,
		issueRepo,
		showRepo,
		paretoService,
		correlationService,
		reportCache,
		rootCauseCfg,
	)

	forecastService := forecast.NewForecastService(analyzerService, efficiencyRepo, forecast.DefaultConfig())

	campaignCfg := campaign.DefaultConfig()
	campaignCfg.BudgetPct = cfg.Analytics.CampaignBudgetPct
	campaignCfg.HighRiskThreshold = cfg.Analytics.HighRiskThreshold
	campaignCfg.HighImpactThreshold = cfg.Analytics.HighImpactThreshold
	campaignService := campaign.NewCampaignService(cohortRepo, campaignCfg)

	// Init handlers
	analyticsHandler := rest.NewAnalyticsHandler(paretoService, analyzerService, forecastService, campaignService)
	snapshotHandler := rest.NewSnapshotHandler(cohortRepo, themeRepo, issueRepo, showRepo)

	// Init echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// HTTP error handler
	e.HTTPErrorHandler = middleware.ErrorHandler

	// Global middleware
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{"http://localhost:3000", "http://localhost:8080"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
	}))

	// Setup routes
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "ok",
			"service": cfg.App.Name,
			"version": cfg.App.Version,
		})
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api/v1")
	router.SetupAnalyticsRoutes(api, analyticsHandler)
	router.SetupCampaignRoutes(api, analyticsHandler)
	router.SetupSnapshotRoutes(api, snapshotHandler)

	// Goroutine server
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server starting", "address", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", "error", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}

	if redisClient != nil {
		if err := redisdb.CloseRedisClient(redisClient); err != nil {
			logger.Error("Redis shutdown error", "error", err)
		}
	}

	logger.Info("Server stopped")
}
