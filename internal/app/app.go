// Package app boots Gradekeeper: it opens the database, applies migrations,
// ensures the well-known secretariat credential, wires the services and runs
// the console frontend until the user exits or the process is signalled.
package app

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/jackc/pgx/v5/stdlib"
	"golang.org/x/crypto/bcrypt"

	"github.com/dmarques2003/gradekeeper/internal/cli"
	"github.com/dmarques2003/gradekeeper/internal/config"
	"github.com/dmarques2003/gradekeeper/internal/logging"
	"github.com/dmarques2003/gradekeeper/internal/models"
	"github.com/dmarques2003/gradekeeper/internal/repositories/repomanager"
	"github.com/dmarques2003/gradekeeper/internal/services"
)

type App struct {
	config  *config.Config
	logger  logging.Logger
	db      *sql.DB
	console *cli.App
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	sl := slog.New(slog.NewJSONHandler(os.Stderr, nil))
	logger := logging.NewSlogLogger(sl)

	db, err := sql.Open("pgx", cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, cfg.DBPingTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("db ping error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrations error: %w", err)
	}

	if err := ensureSeedCredential(ctx, cfg, rm, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("seed error: %w", err)
	}

	auth := services.NewAuthService(db, rm, logger)
	codes := services.NewCodeService(rm)
	registrar := services.NewRegistrationService(db, rm, codes, logger, cfg.BcryptCost)
	ledger := services.NewLedgerService(db, rm, logger)
	reporting := services.NewReportingService(db, rm)

	console := cli.NewApp(auth, registrar, ledger, reporting, logger)

	return &App{config: cfg, logger: logger, db: db, console: console}, nil
}

// ensureSeedCredential makes sure the configured secretariat login exists.
// Repeated startups neither fail nor duplicate it.
func ensureSeedCredential(ctx context.Context, cfg *config.Config, rm repomanager.RepositoryManager, db *sql.DB) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.SeedPassword), cfg.BcryptCost)
	if err != nil {
		return err
	}
	return rm.Credentials(db).EnsureSeed(ctx, &models.Credential{
		Username:     cfg.SeedUsername,
		PasswordHash: hash,
		Role:         models.RoleSecretariat,
		DisplayName:  "Secretariat",
	})
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	if err := app.console.Run(ctx); err != nil {
		app.logger.Error(ctx, "console error", "error", err)
	}

	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, "db close error", "error", err)
	}
}
