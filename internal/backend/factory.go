package backend

import (
	"fmt"
	"log/slog"

	"pft/internal/kv/memory"
	"pft/internal/kv/rediskv"
	"pft/internal/kv/sqlitekv"
)

// Factory creates stores based on configuration.
type Factory struct {
	logger *slog.Logger
}

func NewFactory(logger *slog.Logger) *Factory {
	if logger == nil {
		logger = slog.Default()
	}
	return &Factory{logger: logger}
}

// CreateStore constructs the store described by config.
func (f *Factory) CreateStore(config Config) (*Result, error) {
	if !config.Type.IsValid() {
		return nil, fmt.Errorf("invalid backend type: %s", config.Type)
	}

	switch config.Type {
	case SQLite:
		store, err := sqlitekv.Open(config.SQLiteDBPath)
		if err != nil {
			return nil, fmt.Errorf("initialize sqlite store: %w", err)
		}
		f.logger.Info("Initialized SQLite store", "db_path", config.SQLiteDBPath)
		return &Result{Store: store, Cleanup: store.Close}, nil

	case Redis:
		store, err := rediskv.Open(config.RedisAddr, config.RedisPassword, config.RedisDB)
		if err != nil {
			return nil, fmt.Errorf("initialize redis store: %w", err)
		}
		f.logger.Info("Initialized Redis store", "addr", config.RedisAddr, "db", config.RedisDB)
		return &Result{Store: store, Cleanup: store.Close}, nil

	default:
		f.logger.Info("Initialized memory store")
		return &Result{Store: memory.New(), Cleanup: nil}, nil
	}
}
