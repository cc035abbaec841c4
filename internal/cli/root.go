// Package cli wires the pft commands: a serve command running the JSON
// API and local commands that operate on the same store directly.
package cli

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"pft/internal/accounts"
	"pft/internal/backend"
	"pft/internal/config"
	"pft/internal/kv"
	"pft/internal/ledger"
	applog "pft/internal/log"
	"pft/internal/session"
)

var rootCmd = &cobra.Command{
	Use:   "pft",
	Short: "Personal finance tracker",
	Long:  "Record expenses per account and report totals, category rankings and pie-chart geometry.",
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(registerCmd)
	rootCmd.AddCommand(signInCmd)
	rootCmd.AddCommand(signOutCmd)
	rootCmd.AddCommand(whoamiCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(removeCmd)
	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(seedCmd)
}

// app bundles the constructed components every command needs.
type app struct {
	cfg       *config.Config
	logger    *applog.Logger
	store     kv.Store
	cleanup   backend.CleanupFunc
	directory *accounts.Directory
	sessions  *session.Manager
	ledger    *ledger.Ledger
}

// newApp loads .env and config, sets up logging and constructs the
// configured store with the components on top of it.
func newApp() (*app, error) {
	_ = godotenv.Load()

	logger := applog.New(slog.LevelInfo, applog.ComponentApp)
	applog.SetDefault(logger)

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	factory := backend.NewFactory(logger.Logger)
	result, err := factory.CreateStore(backend.Config{
		Type:          backend.Type(cfg.DataBackend),
		SQLiteDBPath:  cfg.SQLiteDBPath,
		RedisAddr:     cfg.RedisAddr,
		RedisPassword: cfg.RedisPassword,
		RedisDB:       cfg.RedisDB,
	})
	if err != nil {
		return nil, err
	}

	directory := accounts.NewDirectory(result.Store)
	return &app{
		cfg:       cfg,
		logger:    logger,
		store:     result.Store,
		cleanup:   result.Cleanup,
		directory: directory,
		sessions:  session.NewManager(result.Store, directory),
		ledger:    ledger.New(result.Store),
	}, nil
}

// close releases the store, if it needs releasing.
func (a *app) close() {
	if a.cleanup != nil {
		if err := a.cleanup(); err != nil {
			a.logger.Error("Failed to close store", "error", err)
		}
	}
}
