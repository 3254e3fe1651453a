// Package db opens the financial records store and keeps its schema current.
package db

import (
	"gorm.io/driver/postgres"

	"github.com/luccavalentin/vanderleideploy-sub000/config"
)

// NewPostgresConnection opens the records store on PostgreSQL.
func NewPostgresConnection(cfg *config.DatabaseConfig, logLevel string) (*Database, error) {
	return Open(postgres.Open(cfg.URL), cfg, logLevel)
}
