package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fi-rise/backend/internal/storage"
	"github.com/fi-rise/backend/internal/storage/database"
	"github.com/fi-rise/backend/internal/storage/memory"
	"github.com/rs/zerolog/log"
)

// OpenStore opens the configured storage backend.
func (c Config) OpenStore() (storage.Store, error) {
	switch c.Storage {
	case BackendSQLite:
		if err := os.MkdirAll(filepath.Dir(c.SQLitePath), os.ModePerm); err != nil {
			return nil, fmt.Errorf("creating the data directory: %w", err)
		}

		log.Info().Str("path", c.SQLitePath).Msg("using sqlite storage")
		s, err := database.OpenSQLite(c.SQLitePath)
		if err != nil {
			return nil, err
		}
		return s, nil
	case BackendPostgres:
		log.Info().Str("host", c.Postgres.Host).Str("database", c.Postgres.Name).Msg("using postgres storage")
		s, err := database.OpenPostgres(c.Postgres)
		if err != nil {
			return nil, err
		}
		return s, nil
	}

	log.Info().Msg("using in-memory storage, data is lost on restart")
	return memory.New(), nil
}
