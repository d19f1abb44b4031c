package database

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/helixsec/engage/database/models"
)

// getDSN builds a PostgreSQL connection string from parameters
func getDSN(host, user, password, dbname, port string) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", user, password, host, port, dbname)
}

func NewPgxConnPool(cfg PoolConfig) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(getDSN(cfg.Host, cfg.User, cfg.Password, cfg.DBName, cfg.Port))
	if err != nil {
		return nil, fmt.Errorf("could not parse pgx pool config: %w", err)
	}
	config.MaxConnIdleTime = cfg.ConnMaxIdleTime
	config.MaxConnLifetime = cfg.ConnMaxLifetime
	config.MaxConns = cfg.MaxOpenConns
	config.MinConns = cfg.MinConns

	pool, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		return nil, fmt.Errorf("could not create pgx pool: %w", err)
	}

	slog.Info("database connection pool configured",
		"maxOpenConns", cfg.MaxOpenConns,
		"connMaxLifetime", cfg.ConnMaxLifetime,
		"connMaxIdleTime", cfg.ConnMaxIdleTime,
	)

	return pool, nil
}

// NewGormDB creates a GORM instance on top of an existing *pgxpool.Pool, so
// both share a single set of connections.
func NewGormDB(pool *pgxpool.Pool) (*gorm.DB, error) {
	db := stdlib.OpenDBFromPool(pool)
	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn: db,
	}), &gorm.Config{
		Logger: logger.Default,
	})
	if err != nil {
		return nil, err
	}

	return gormDB, nil
}

// RunMigrations creates or updates the schema for all models. Deletion
// policies live in the gorm constraint tags, so the FK behavior (cascade,
// set null, restrict) ends up in the database, not just in application code.
func RunMigrations(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.ClientAddress{},
		&models.Client{},
		&models.ClientContact{},
		&models.AssessmentType{},
		&models.ComplianceType{},
		&models.Vulnerability{},
		&models.ClientAssessment{},
		&models.URLAssignment{},
		&models.Finding{},
		&models.Team{},
		&models.User{},
	)
}
