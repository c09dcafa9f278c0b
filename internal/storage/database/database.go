// Package database implements storage.Store on a relational database
// with gorm. SQLite and PostgreSQL are supported.
package database

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/fi-rise/backend/internal/models"
	"github.com/fi-rise/backend/internal/storage"
	go_sqlite "github.com/glebarez/go-sqlite"
	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Store is a storage.Store backed by gorm.
type Store struct {
	db *gorm.DB

	// upsertMu serializes budget upserts within the process
	upsertMu sync.Mutex
}

var _ storage.Store = (*Store)(nil)

// PostgresConfig holds the connection parameters for PostgreSQL.
type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// DSN returns the connection string for the configuration.
func (c PostgresConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s", c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

func config() *gorm.Config {
	return &gorm.Config{
		NowFunc: func() time.Time {
			return time.Now().In(time.UTC)
		},
		Logger: &logger{
			Logger: log.Logger,
		},
	}
}

// OpenSQLite opens the SQLite database at path and migrates the schema.
func OpenSQLite(path string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(fmt.Sprintf("%s?_pragma=foreign_keys(1)", path)), config())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database object: %w", err)
	}

	// A single connection prevents SQLITE_BUSY errors
	sqlDB.SetConnMaxLifetime(time.Hour)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetMaxOpenConns(1)

	log.Debug().Str("path", path).Msg("using sqlite database")
	return open(db)
}

// OpenPostgres connects to PostgreSQL and migrates the schema.
func OpenPostgres(c PostgresConfig) (*Store, error) {
	db, err := gorm.Open(postgres.Open(c.DSN()), config())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	log.Debug().Str("host", c.Host).Str("database", c.Name).Msg("using postgresql database")
	return open(db)
}

func open(db *gorm.DB) (*Store, error) {
	err := db.AutoMigrate(models.User{}, models.Category{}, models.Expense{}, models.Goal{}, models.Budget{}, models.Resource{}, models.Article{})
	if err != nil {
		return nil, fmt.Errorf("error during DB migration: %w", err)
	}

	callbacks := []struct {
		register func(name string, fn func(*gorm.DB)) error
		name     string
		fn       func(*gorm.DB)
	}{
		{db.Callback().Query().After("*").Register, "fi_rise:after_query", queryCallback},
		{db.Callback().Query().After("*").Register, "fi_rise:after_query_general", generalCallback},
		{db.Callback().Create().After("*").Register, "fi_rise:after_create", createCallback},
		{db.Callback().Create().After("*").Register, "fi_rise:after_create_general", generalCallback},
		{db.Callback().Update().After("*").Register, "fi_rise:after_update_general", generalCallback},
		{db.Callback().Delete().After("*").Register, "fi_rise:after_delete_general", generalCallback},
		{db.Callback().Raw().After("*").Register, "fi_rise:after_raw_general", generalCallback},
	}

	for _, c := range callbacks {
		if err := c.register(c.name, c.fn); err != nil {
			return nil, err
		}
	}

	return &Store{db: db}, nil
}

// queryCallback replaces the generic "no record" error with a more user
// friendly one
func queryCallback(db *gorm.DB) {
	if errors.Is(db.Error, gorm.ErrRecordNotFound) {
		name := strings.ReplaceAll(db.Statement.Table, "_", " ")

		// Singular resource name
		name = regexp.MustCompile("ies$").ReplaceAllString(name, "y")
		name = strings.TrimSuffix(name, "s")

		db.Error = models.NotFound(name)
	}
}

// createCallback replaces constraint errors with user friendly ones.
func createCallback(db *gorm.DB) {
	if db.Error == nil {
		return
	}

	msg := db.Error.Error()
	if strings.Contains(msg, "UNIQUE constraint failed: users.username") || strings.Contains(msg, "idx_users_username") {
		db.Error = models.ErrUsernameNotUnique
	}
}

// generalCallback handles unspecified errors.
//
// The error is logged and replaced with a general message for users.
func generalCallback(db *gorm.DB) {
	if db.Error == nil {
		return
	}

	// "sql: database is closed" is hard-coded in database/sql
	if db.Error.Error() == "sql: database is closed" || reflect.TypeOf(db.Error) == reflect.TypeOf(&go_sqlite.Error{}) {
		log.Error().Msgf("%T: %v", db.Error, db.Error.Error())
		db.Error = models.ErrGeneral
	}
}

func (s *Store) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		log.Error().Err(err).Msg("database ping failed")
		return models.ErrGeneral
	}
	return nil
}

func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// deleted returns the result of a delete.
func deleted(tx *gorm.DB) (bool, error) {
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}
