package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/MrJamesThe3rd/midas/internal/app"
	"github.com/MrJamesThe3rd/midas/internal/config"
	midasHttp "github.com/MrJamesThe3rd/midas/internal/http"
	"github.com/MrJamesThe3rd/midas/internal/http/admin"
	authHandler "github.com/MrJamesThe3rd/midas/internal/http/auth"
	catalogHandler "github.com/MrJamesThe3rd/midas/internal/http/catalog"
	exportHandler "github.com/MrJamesThe3rd/midas/internal/http/export"
	importHandler "github.com/MrJamesThe3rd/midas/internal/http/importcsv"
	inflowHandler "github.com/MrJamesThe3rd/midas/internal/http/inflow"
	outflowHandler "github.com/MrJamesThe3rd/midas/internal/http/outflow"
	reportHandler "github.com/MrJamesThe3rd/midas/internal/http/report"
	settingHandler "github.com/MrJamesThe3rd/midas/internal/http/setting"
	userHandler "github.com/MrJamesThe3rd/midas/internal/http/user"
	wishlistHandler "github.com/MrJamesThe3rd/midas/internal/http/wishlist"
)

const shutdownTimeout = 10 * time.Second

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	slog.SetDefault(app.Logger(cfg))

	if err := run(cfg); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := app.New(ctx, cfg)
	if err != nil {
		return err
	}
	defer a.Close()

	if err := a.Migrate(); err != nil {
		return err
	}

	router := midasHttp.New(a.Issuer, cfg.CORS.AllowedOrigins, midasHttp.Handlers{
		Token:     authHandler.NewHandler(a.Users, a.Issuer),
		Users:     userHandler.NewHandler(a.Users),
		Inflows:   inflowHandler.NewHandler(a.Ledger),
		Outflows:  outflowHandler.NewHandler(a.Ledger),
		Reports:   reportHandler.NewHandler(a.Reports),
		Catalog:   catalogHandler.NewHandler(a.Catalog),
		Wishlist:  wishlistHandler.NewHandler(a.Wishlist),
		Settings:  settingHandler.NewHandler(a.Settings),
		Admin:     admin.NewHandler(a.Ledger),
		ImportCSV: importHandler.NewHandler(a.Catalog, a.Wishlist),
		Export:    exportHandler.NewHandler(a.Catalog, a.Wishlist),
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		slog.Info("starting server", "port", srv.Addr)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}

		return nil
	})

	g.Go(func() error {
		<-gctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		slog.Info("shutting down server")

		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
