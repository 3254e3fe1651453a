// Package dependency provides dependency injection for the application.
package dependency

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/luccavalentin/vanderleideploy-sub000/config"
	"github.com/luccavalentin/vanderleideploy-sub000/internal/application/adapter"
	"github.com/luccavalentin/vanderleideploy-sub000/internal/application/usecase/record"
	"github.com/luccavalentin/vanderleideploy-sub000/internal/application/usecase/report"
	"github.com/luccavalentin/vanderleideploy-sub000/internal/infra/server/router"
	"github.com/luccavalentin/vanderleideploy-sub000/internal/integration/cache"
	"github.com/luccavalentin/vanderleideploy-sub000/internal/integration/entrypoint/controller"
	"github.com/luccavalentin/vanderleideploy-sub000/internal/integration/entrypoint/middleware"
	"github.com/luccavalentin/vanderleideploy-sub000/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config      *config.Config
	DB          *gorm.DB
	Redis       *redis.Client
	Router      *router.Router
	RateLimiter *middleware.RateLimiter
}

// NewInjector creates a new dependency injector with all dependencies wired.
// redisClient may be nil, which disables the report cache.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *Injector {
	// Create repositories
	recordRepo := persistence.NewFinancialRecordRepository(db)

	// Report cache stays a nil interface when disabled so use cases skip it
	var reportCache adapter.ReportCache
	if redisClient != nil && cfg.Report.CacheEnabled {
		reportCache = cache.NewReportCache(redisClient, cfg.Report.CacheTTL)
	}

	// Create report use cases
	getSummaryUseCase := report.NewGetSummaryUseCase(recordRepo, reportCache)
	getCumulativeTotalUseCase := report.NewGetCumulativeTotalUseCase(recordRepo, reportCache)
	getOverviewUseCase := report.NewGetOverviewUseCase(recordRepo, reportCache)
	comparePeriodsUseCase := report.NewComparePeriodsUseCase(recordRepo, reportCache)
	computeReportUseCase := report.NewComputeReportUseCase()

	// Create record use cases
	createRecordUseCase := record.NewCreateRecordUseCase(recordRepo, reportCache)
	listRecordsUseCase := record.NewListRecordsUseCase(recordRepo)
	deleteRecordUseCase := record.NewDeleteRecordUseCase(recordRepo, reportCache)

	// Create controllers
	var cacheHealthChecker controller.HealthChecker
	if reportCache != nil {
		cacheHealthChecker = func() bool {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			return redisClient.Ping(ctx).Err() == nil
		}
	}

	healthController := controller.NewHealthController(func() bool {
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		return sqlDB.Ping() == nil
	}, cacheHealthChecker)

	reportController := controller.NewReportController(
		getSummaryUseCase,
		getCumulativeTotalUseCase,
		getOverviewUseCase,
		comparePeriodsUseCase,
		computeReportUseCase,
	)

	recordController := controller.NewRecordController(
		createRecordUseCase,
		listRecordsUseCase,
		deleteRecordUseCase,
	)

	// Create middleware
	var computeRateLimiter *middleware.RateLimiter
	if cfg.RateLimit.Enabled {
		computeRateLimiter = middleware.NewRateLimiter(cfg.RateLimit.MaxRequests, cfg.RateLimit.Window)
	}

	// Create router
	r := router.NewRouter(healthController, reportController, recordController, computeRateLimiter)

	return &Injector{
		Config:      cfg,
		DB:          db,
		Redis:       redisClient,
		Router:      r,
		RateLimiter: computeRateLimiter,
	}
}
