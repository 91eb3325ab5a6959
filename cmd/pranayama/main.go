package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pranayama-studio/pranayama-api/internal/app"
	"github.com/pranayama-studio/pranayama-api/internal/classes"
	"github.com/pranayama-studio/pranayama-api/internal/enrollments"
	"github.com/pranayama-studio/pranayama-api/internal/gate"
	"github.com/pranayama-studio/pranayama-api/internal/token"
	"github.com/pranayama-studio/pranayama-api/internal/users"
)

func main() {
	if app.InTestMode() {
		slog.Default().Info("test mode detected, skipping runtime startup")
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := app.LoadConfig()
	if err != nil {
		slog.Default().Error("load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := app.NewLogger(cfg)

	if cfg.MigrateOnStart {
		if err := app.RunMigrations(cfg, logger); err != nil {
			logger.Error("run migrations", slog.Any("error", err))
			os.Exit(1)
		}
	}

	dbpool, err := pgxpool.New(ctx, cfg.PGDSN)
	if err != nil {
		logger.Error("connect postgres", slog.Any("error", err))
		os.Exit(1)
	}
	defer dbpool.Close()

	codec := token.NewCodec([]byte(cfg.TokenSecret), cfg.TokenTTL)
	tokenHandler := token.NewHandler(logger, codec)

	usersRepo := users.NewRepository(dbpool)
	usersService := users.NewService(usersRepo)

	authenticator := gate.NewAuthenticator(logger, codec)
	roleGate := gate.NewRoleGate(logger, authenticator, usersRepo)

	usersHandler := users.NewHandler(logger, usersService, authenticator, roleGate)

	classesRepo := classes.NewRepository(dbpool)
	classesService := classes.NewService(classesRepo)
	classesHandler := classes.NewHandler(logger, classesService, roleGate)

	enrollmentsRepo := enrollments.NewRepository(dbpool)
	enrollmentsService := enrollments.NewService(enrollmentsRepo)
	enrollmentsHandler := enrollments.NewHandler(logger, enrollmentsService, roleGate)

	router := app.NewRouter(app.RouterParams{
		Logger:             logger,
		Config:             cfg,
		TokenHandler:       tokenHandler,
		UsersHandler:       usersHandler,
		ClassesHandler:     classesHandler,
		EnrollmentsHandler: enrollmentsHandler,
	})

	server := &http.Server{
		Addr:         cfg.AppAddr,
		Handler:      router,
		ReadTimeout:  cfg.AppReadTimeout,
		WriteTimeout: cfg.AppWriteTimeout,
	}

	go func() {
		logger.Info("starting http server", slog.String("addr", cfg.AppAddr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("http server", slog.Any("error", err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown", slog.Any("error", err))
	}
}
