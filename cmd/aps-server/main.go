package main

import (
	"context"
	crypto_rand "crypto/rand"
	"database/sql"
	"encoding/hex"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/Alssex/Proyecto-salud/internal/config"
	"github.com/Alssex/Proyecto-salud/internal/domain/bitacora"
	"github.com/Alssex/Proyecto-salud/internal/domain/caracterizacion"
	"github.com/Alssex/Proyecto-salud/internal/domain/demanda"
	"github.com/Alssex/Proyecto-salud/internal/domain/familia"
	"github.com/Alssex/Proyecto-salud/internal/domain/historia"
	"github.com/Alssex/Proyecto-salud/internal/domain/paciente"
	"github.com/Alssex/Proyecto-salud/internal/domain/plancuidado"
	"github.com/Alssex/Proyecto-salud/internal/domain/reporte"
	"github.com/Alssex/Proyecto-salud/internal/domain/usuario"
	"github.com/Alssex/Proyecto-salud/internal/platform/apperr"
	"github.com/Alssex/Proyecto-salud/internal/platform/auth"
	"github.com/Alssex/Proyecto-salud/internal/platform/db"
	"github.com/Alssex/Proyecto-salud/internal/platform/jsontext"
	"github.com/Alssex/Proyecto-salud/internal/platform/middleware"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "aps-server",
		Short: "Salud Digital APS API server",
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the APS API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, _ := cmd.Flags().GetString("migrations")
			return runServer(dir)
		},
	}
	cmd.Flags().String("migrations", "./migrations", "Path to migrations directory")
	return cmd
}

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
	}

	upCmd := &cobra.Command{
		Use:   "up",
		Short: "Apply pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, _ := cmd.Flags().GetString("dir")

			cfg, err := config.Load()
			if err != nil {
				return err
			}

			ctx := context.Background()
			conn, err := db.Open(ctx, cfg.DatabasePath)
			if err != nil {
				return err
			}
			defer conn.Close()

			migrator := db.NewMigrator(conn, dir)
			count, err := migrator.Up(ctx)
			if err != nil {
				return fmt.Errorf("migration failed: %w", err)
			}

			fmt.Printf("Applied %d migration(s) successfully.\n", count)
			return nil
		},
	}
	upCmd.Flags().String("dir", "./migrations", "Path to migrations directory")
	cmd.AddCommand(upCmd)

	statusCmd := &cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, _ := cmd.Flags().GetString("dir")

			cfg, err := config.Load()
			if err != nil {
				return err
			}

			ctx := context.Background()
			conn, err := db.Open(ctx, cfg.DatabasePath)
			if err != nil {
				return err
			}
			defer conn.Close()

			migrator := db.NewMigrator(conn, dir)
			statuses, err := migrator.Status(ctx)
			if err != nil {
				return fmt.Errorf("failed to get migration status: %w", err)
			}

			fmt.Printf("%-10s %-40s %-10s %s\n", "VERSION", "NAME", "STATUS", "APPLIED AT")
			fmt.Println("---------- ---------------------------------------- ---------- --------------------")
			for _, s := range statuses {
				status := "pending"
				appliedAt := ""
				if s.Applied {
					status = "applied"
					if s.AppliedAt != nil {
						appliedAt = s.AppliedAt.Format("2006-01-02 15:04:05")
					}
				}
				fmt.Printf("%-10d %-40s %-10s %s\n", s.Version, s.Name, status, appliedAt)
			}
			return nil
		},
	}
	statusCmd.Flags().String("dir", "./migrations", "Path to migrations directory")
	cmd.AddCommand(statusCmd)

	return cmd
}

func runServer(migrationsDir string) error {
	// Logger
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if os.Getenv("ENV") == "development" || os.Getenv("ENV") == "" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	}

	// Config
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}
	if err := cfg.Validate(); err != nil {
		logger.Fatal().Err(err).Msg("invalid configuration")
	}

	// Database
	ctx := context.Background()
	conn, err := db.Open(ctx, cfg.DatabasePath)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to open database")
	}
	defer conn.Close()
	logger.Info().Str("path", cfg.DatabasePath).Msg("database opened")

	// Pending migrations apply at boot so a fresh database file is usable
	// without a separate migrate step.
	applied, err := db.NewMigrator(conn, migrationsDir).Up(ctx)
	if err != nil {
		logger.Fatal().Err(err).Msg("migrations failed")
	}
	if applied > 0 {
		logger.Info().Int("applied", applied).Msg("migrations applied")
	}

	e, err := newServer(cfg, conn, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to build server")
	}

	// Graceful shutdown
	go func() {
		addr := ":" + cfg.Port
		logger.Info().Str("addr", addr).Msg("starting server")
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Fatal().Err(err).Msg("server shutdown failed")
	}
	logger.Info().Msg("server stopped")
	return nil
}

// newServer builds the echo instance with all middleware and routes mounted.
func newServer(cfg *config.Config, conn *sql.DB, logger zerolog.Logger) (*echo.Echo, error) {
	secret, generated, err := resolveSigningSecret(cfg.JWTSecret)
	if err != nil {
		return nil, err
	}
	if generated {
		logger.Warn().Msg("JWT_SECRET not set; generated a random signing key, tokens will not survive restarts")
	}
	issuer, err := auth.NewTokenIssuer(secret, time.Duration(cfg.TokenTTLHours)*time.Hour)
	if err != nil {
		return nil, err
	}

	// Echo server
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = apperr.HTTPErrorHandler(logger)

	// Global middleware
	e.Use(middleware.Recovery(logger))
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger(logger))
	e.Use(middleware.SecurityHeaders())
	e.Use(middleware.BodyLimit("1M"))
	e.Use(middleware.RequestTimeout(30 * time.Second))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete},
		AllowHeaders: []string{"Authorization", "Content-Type", "X-Request-ID"},
	}))

	// API groups. /api keeps the open contract the existing frontend uses;
	// /api/v1 serves the same routes behind bearer-token auth.
	api := e.Group("/api")
	apiV1 := e.Group("/api/v1")
	apiV1.Use(auth.Middleware(issuer))

	rateLimitCfg := middleware.RateLimitConfig{
		RequestsPerSecond: cfg.RateLimitRPS,
		BurstSize:         cfg.RateLimitBurst,
	}
	if rateLimitCfg.RequestsPerSecond <= 0 {
		rateLimitCfg = middleware.DefaultRateLimitConfig()
	}
	api.Use(middleware.RateLimit(rateLimitCfg))
	apiV1.Use(middleware.RateLimit(rateLimitCfg))

	// Health check. The existing frontend polls /api/health, so the endpoint
	// is mounted on both paths.
	e.GET("/health", db.HealthHandler(conn))
	api.GET("/health", db.HealthHandler(conn))

	codec := jsontext.NewCodec(logger)

	// -- Register domain handlers --

	usuarioRepo := usuario.NewRepoSQLite(conn)
	usuarioSvc := usuario.NewService(usuarioRepo, issuer)
	usuarioHandler := usuario.NewHandler(usuarioSvc)
	usuarioHandler.RegisterRoutes(auth.Middleware(issuer), api, apiV1)

	familiaRepo := familia.NewRepoSQLite(conn, codec)
	familiaSvc := familia.NewService(familiaRepo)
	familiaHandler := familia.NewHandler(familiaSvc)
	familiaHandler.RegisterRoutes(api, apiV1)

	pacienteRepo := paciente.NewRepoSQLite(conn)
	pacienteSvc := paciente.NewService(pacienteRepo)
	pacienteHandler := paciente.NewHandler(pacienteSvc)
	pacienteHandler.RegisterRoutes(api, apiV1)

	caractRepo := caracterizacion.NewRepoSQLite(conn, codec)
	caractSvc := caracterizacion.NewService(caractRepo)
	caractHandler := caracterizacion.NewHandler(caractSvc)
	caractHandler.RegisterRoutes(api, apiV1)

	planRepo := plancuidado.NewRepoSQLite(conn, codec)
	planSvc := plancuidado.NewService(planRepo)
	planHandler := plancuidado.NewHandler(planSvc)
	planHandler.RegisterRoutes(api, apiV1)

	demandaRepo := demanda.NewRepoSQLite(conn, codec)
	demandaSvc := demanda.NewService(demandaRepo)
	demandaHandler := demanda.NewHandler(demandaSvc)
	demandaHandler.RegisterRoutes(api, apiV1)

	historiaRepo := historia.NewRepoSQLite(conn, codec)
	historiaSvc := historia.NewService(historiaRepo)
	historiaHandler := historia.NewHandler(historiaSvc)
	historiaHandler.RegisterRoutes(api, apiV1)

	bitacoraRepo := bitacora.NewRepoSQLite(conn)
	bitacoraSvc := bitacora.NewService(bitacoraRepo)
	bitacoraHandler := bitacora.NewHandler(bitacoraSvc)
	bitacoraHandler.RegisterRoutes(api, apiV1)

	reporteRepo := reporte.NewRepoSQLite(conn)
	reporteHandler := reporte.NewHandler(reporteRepo)
	reporteHandler.RegisterRoutes(api, apiV1)

	return e, nil
}

// resolveSigningSecret returns the JWT signing secret from configuration or
// generates a random one. The second return value is true when a random
// secret was generated.
func resolveSigningSecret(configured string) (string, bool, error) {
	if configured != "" {
		return configured, false, nil
	}
	key := make([]byte, 32)
	if _, err := crypto_rand.Read(key); err != nil {
		return "", false, fmt.Errorf("failed to generate random signing secret: %w", err)
	}
	return hex.EncodeToString(key), true, nil
}
