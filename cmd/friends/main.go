package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"friends-directory/internal/adapters/cache"
	pg "friends-directory/internal/adapters/storage/postgres"
	"friends-directory/internal/config"
	"friends-directory/internal/platform/logger"
	"friends-directory/internal/router"
	"friends-directory/internal/seed"

	"github.com/spf13/cobra"
)

var (
	cfg config.Config
	log logger.Logger

	envFile string
	addr    string
	dsn     string
)

var rootCmd = &cobra.Command{
	Use:   "friends",
	Short: "Directorio de friends con páginas HTML y API JSON",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if envFile != "" {
			cfg, err = config.Load(envFile)
		} else {
			cfg, err = config.Load()
		}
		if err != nil {
			return err
		}
		if addr != "" {
			cfg.Addr = addr
		}
		if dsn != "" {
			cfg.DatabaseDSN = dsn
		}

		log = logger.New(logger.Options{
			Level:  logger.ParseLevel(cfg.LogLevel),
			Format: logger.ParseFormat(cfg.LogFormat),
			App:    cfg.AppName,
		})
		return nil
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Levanta el servidor HTTP",
	RunE:  runServe,
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Aplica el esquema de Postgres (requiere DB_DSN)",
	RunE:  runMigrate,
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Carga los datos demo en Postgres (requiere DB_DSN)",
	RunE:  runSeed,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", "", "Archivo .env (default: .env si existe)")
	rootCmd.PersistentFlags().StringVar(&dsn, "dsn", "", "DSN de Postgres (pisa DB_DSN)")
	serveCmd.Flags().StringVar(&addr, "addr", "", "Dirección de escucha (pisa PORT), ej. :8080")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(seedCmd)
}

// @title Friends Directory API
// @version 1.0
// @description Friends, direcciones, mascotas y quotes.
// @BasePath /
func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	opts := router.Options{
		Logger:  log,
		AppName: cfg.AppName,
		Seed:    cfg.SeedOnStart,
	}

	if cfg.DatabaseDSN != "" {
		db, err := pg.Open(cfg.DatabaseDSN)
		if err != nil {
			return err
		}
		defer db.Close()
		if err := pg.Migrate(ctx, db); err != nil {
			return err
		}
		opts.DB = db
		log.Info("using postgres storage", nil)
	} else {
		log.Info("using in-memory storage", nil)
	}

	if cfg.RedisAddr != "" {
		c, err := cache.Connect(ctx, cache.Options{
			Addr: cfg.RedisAddr,
			DB:   cfg.RedisDB,
			TTL:  cfg.OverviewCacheTTL,
		})
		if err != nil {
			// Sin cache la app funciona igual.
			log.Warn("overview cache disabled", map[string]any{"error": err.Error()})
		} else {
			defer c.Close()
			opts.Cache = c
			log.Info("overview cache enabled", map[string]any{"redis": cfg.RedisAddr, "ttl": cfg.OverviewCacheTTL.String()})
		}
	}

	h, err := router.NewRouter(opts)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      h,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", map[string]any{"addr": cfg.Addr})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down", nil)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func runMigrate(cmd *cobra.Command, args []string) error {
	if cfg.DatabaseDSN == "" {
		return errors.New("migrate: DB_DSN (o --dsn) es obligatorio")
	}
	db, err := pg.Open(cfg.DatabaseDSN)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := pg.Migrate(cmd.Context(), db); err != nil {
		return err
	}
	log.Info("schema applied", nil)
	return nil
}

func runSeed(cmd *cobra.Command, args []string) error {
	if cfg.DatabaseDSN == "" {
		return errors.New("seed: DB_DSN (o --dsn) es obligatorio; en memoria usar SEED_ON_START")
	}
	db, err := pg.Open(cfg.DatabaseDSN)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := pg.Migrate(cmd.Context(), db); err != nil {
		return err
	}

	file, err := seed.Default()
	if err != nil {
		return err
	}

	// Sin cache: el serve que esté corriendo la verá expirar por TTL.
	svcs := router.NewServices(db, nil, log)
	sum, err := svcs.SeedLoader(log).Load(cmd.Context(), file)
	if err != nil {
		return err
	}
	if sum.Skipped {
		fmt.Fprintln(cmd.OutOrStdout(), "seed data already present")
		return nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "seeded %d friends, %d addresses, %d pets, %d quotes\n", sum.Friends, sum.Addresses, sum.Pets, sum.Quotes)
	return nil
}
