package db

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/luccavalentin/vanderleideploy-sub000/config"
	"github.com/luccavalentin/vanderleideploy-sub000/internal/integration/persistence/model"
)

const (
	connectTimeout = 5 * time.Second

	// kindDateIndex serves the contributing-records query, which filters by
	// kind and compares the text date column.
	kindDateIndex = "idx_financial_records_kind_date"
)

// Database is the records store connection.
type Database struct {
	db *gorm.DB
}

// Open connects through dialector and sizes the pool from cfg. SQL statements
// are logged only when logLevel is "debug".
func Open(dialector gorm.Dialector, cfg *config.DatabaseConfig, logLevel string) (*Database, error) {
	gormLogger := logger.Default.LogMode(logger.Silent)
	if logLevel == "debug" {
		gormLogger = logger.Default.LogMode(logger.Info)
	}

	db, err := gorm.Open(dialector, &gorm.Config{Logger: gormLogger})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to records store: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to reach records store: %w", err)
	}

	slog.Info("Records store connected",
		"dialect", dialector.Name(),
		"max_open_conns", cfg.MaxOpenConns,
	)

	return &Database{db: db}, nil
}

// DB returns the underlying GORM database instance.
func (d *Database) DB() *gorm.DB {
	return d.db
}

// Close releases the pool.
func (d *Database) Close() error {
	sqlDB, err := d.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB for closing: %w", err)
	}
	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("failed to close records store: %w", err)
	}
	return nil
}

// Migrate creates or updates the financial_records table and its kind/date
// index, then logs how many live records each kind holds. It is idempotent.
func (d *Database) Migrate() error {
	if err := d.db.AutoMigrate(&model.FinancialRecordModel{}); err != nil {
		return fmt.Errorf("failed to migrate financial_records: %w", err)
	}

	if err := d.db.Exec(
		"CREATE INDEX IF NOT EXISTS " + kindDateIndex + " ON financial_records (kind, date)",
	).Error; err != nil {
		return fmt.Errorf("failed to create %s: %w", kindDateIndex, err)
	}

	counts, err := d.CountByKind(context.Background())
	if err != nil {
		return err
	}
	slog.Info("Financial records schema ready",
		"revenue", counts["revenue"],
		"expense", counts["expense"],
	)

	return nil
}

// CountByKind returns the number of live (not soft-deleted) records per kind.
func (d *Database) CountByKind(ctx context.Context) (map[string]int64, error) {
	var rows []struct {
		Kind  string
		Total int64
	}
	err := d.db.WithContext(ctx).
		Model(&model.FinancialRecordModel{}).
		Select("kind, COUNT(*) AS total").
		Group("kind").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count financial records: %w", err)
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Kind] = row.Total
	}
	return counts, nil
}
