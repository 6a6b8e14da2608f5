// Package sqlstore persists executions, the propagation graph, credential
// roots, dispatch jobs and action definitions in a relational database.
package sqlstore

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type (
	Metrics interface {
		Observe(operation string, err error, started time.Time)
	}
)

const sqliteConnOpts = "_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(ON)"

type Repository struct {
	db      *gorm.DB
	metrics Metrics
	now     func() time.Time
}

// NewRepository opens the database named by dsn and migrates the schema.
// postgres:// and postgresql:// DSNs select PostgreSQL, anything else is
// treated as a SQLite file path.
func NewRepository(dsn string, metrics Metrics) (*Repository, error) {
	if dsn == "" {
		return nil, errors.New("database dsn is required")
	}
	if metrics == nil {
		return nil, errors.New("repository metrics is required")
	}

	config := &gorm.Config{
		Logger:                 gormlogger.Discard,
		SkipDefaultTransaction: true,
	}

	var (
		db  *gorm.DB
		err error
	)
	switch {
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		db, err = gorm.Open(postgres.Open(dsn), config)
		if err != nil {
			return nil, fmt.Errorf("open postgres: %w", err)
		}
	default:
		path := strings.TrimPrefix(strings.TrimPrefix(dsn, "sqlite://"), "file:")
		db, err = gorm.Open(sqlite.Open(fmt.Sprintf("file:%s?%s", path, sqliteConnOpts)), config)
		if err != nil {
			return nil, fmt.Errorf("open sqlite: %w", err)
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("sqlite handle: %w", err)
		}
		// SQLite allows a single writer.
		sqlDB.SetMaxOpenConns(1)
	}

	if err := db.AutoMigrate(migrateModels...); err != nil {
		return nil, fmt.Errorf("migrate schema: %w", err)
	}

	return &Repository{db: db, metrics: metrics, now: time.Now}, nil
}

func (r *Repository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
