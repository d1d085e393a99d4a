// Package app wires stores and services for the binaries under cmd/.
package app

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"

	"github.com/MrJamesThe3rd/midas/internal/auth"
	"github.com/MrJamesThe3rd/midas/internal/catalog"
	catalogStore "github.com/MrJamesThe3rd/midas/internal/catalog/store"
	"github.com/MrJamesThe3rd/midas/internal/config"
	"github.com/MrJamesThe3rd/midas/internal/database"
	"github.com/MrJamesThe3rd/midas/internal/ledger"
	ledgerStore "github.com/MrJamesThe3rd/midas/internal/ledger/store"
	"github.com/MrJamesThe3rd/midas/internal/report"
	reportStore "github.com/MrJamesThe3rd/midas/internal/report/store"
	"github.com/MrJamesThe3rd/midas/internal/setting"
	settingStore "github.com/MrJamesThe3rd/midas/internal/setting/store"
	"github.com/MrJamesThe3rd/midas/internal/user"
	userStore "github.com/MrJamesThe3rd/midas/internal/user/store"
	"github.com/MrJamesThe3rd/midas/internal/wishlist"
	wishlistStore "github.com/MrJamesThe3rd/midas/internal/wishlist/store"
)

type App struct {
	Config *config.Config
	DB     *sql.DB

	Ledger   *ledger.Service
	Reports  *report.Service
	Catalog  *catalog.Service
	Wishlist *wishlist.Service
	Settings *setting.Service
	Users    *user.Service
	Issuer   *auth.Issuer
}

// New connects to the database and builds every service from cfg.
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}

	db, err := database.New(ctx, cfg.ConnectionString())
	if err != nil {
		return nil, err
	}

	settingService := setting.NewService(settingStore.New(db))

	return &App{
		Config:   cfg,
		DB:       db,
		Settings: settingService,
		Ledger: ledger.NewService(ledgerStore.New(db),
			ledger.WithLocation(loc),
			ledger.WithSettings(settingService),
			ledger.WithCalendar(ledger.Calendar{SaturdayIsBusinessDay: cfg.Finance.SaturdayIsBusinessDay}),
			ledger.WithSalaryDefaults(cfg.Finance.FallbackSalary, cfg.Finance.SalaryBusinessDay),
		),
		Reports:  report.NewService(reportStore.New(db), report.WithLocation(loc)),
		Catalog:  catalog.NewService(catalogStore.New(db)),
		Wishlist: wishlist.NewService(wishlistStore.New(db)),
		Users:    user.NewService(userStore.New(db)),
		Issuer:   auth.NewIssuer(cfg.Auth.Secret, cfg.Auth.Audience, cfg.Auth.AccessTTL, cfg.Auth.RefreshTTL),
	}, nil
}

func (a *App) Close() error {
	return a.DB.Close()
}

// Logger builds the process-wide JSON logger at the configured level.
func Logger(cfg *config.Config) *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel()})).
		With("app", cfg.App.Name)
}

// Migrate applies pending migrations and logs the resulting version.
func (a *App) Migrate() error {
	version, err := database.Migrate(a.DB)
	if err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	slog.Info("database migrated", "version", version)

	return nil
}
