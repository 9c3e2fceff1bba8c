package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/kbukum/inventario/api"
	"github.com/kbukum/inventario/auth"
	"github.com/kbukum/inventario/auth/jwt"
	"github.com/kbukum/inventario/auth/password"
	"github.com/kbukum/inventario/config"
	"github.com/kbukum/inventario/inventory"
	"github.com/kbukum/inventario/logger"
	"github.com/kbukum/inventario/server"
	"github.com/kbukum/inventario/store"
	"github.com/kbukum/inventario/version"
)

func main() {
	configFile := flag.String("config", "", "path to config.yml (default: search standard locations)")
	envFile := flag.String("env", "", "path to .env file (default: search standard locations)")
	flag.Parse()

	var opts []config.LoaderOption
	if *configFile != "" {
		opts = append(opts, config.WithConfigFile(*configFile))
	}
	if *envFile != "" {
		opts = append(opts, config.WithEnvFile(*envFile))
	}

	// Configuration errors, including a missing signing secret, abort
	// startup here before any listener is bound.
	cfg, err := config.Load(opts...)
	if err != nil {
		logger.NewDefault("inventario").Fatal("invalid configuration", logger.Fields(logger.FieldError, err.Error()))
	}

	log := logger.New(&cfg.Logging, cfg.Name)
	logger.SetGlobalLogger(log)
	log.Info("starting", logger.Fields("version", version.Short(), "environment", cfg.Environment))

	if err := run(cfg, log); err != nil {
		log.Fatal("server exited with error", logger.Fields(logger.FieldError, err.Error()))
	}
}

func run(cfg *config.Config, log *logger.Logger) error {
	st, err := store.New(cfg.Store)
	if err != nil {
		return err
	}
	log.Info("store ready", logger.Fields("driver", string(cfg.Store.Driver)))

	tokens, err := jwt.NewService(&cfg.Auth.JWT, func() *auth.Claims { return &auth.Claims{} })
	if err != nil {
		return err
	}

	hasher := password.NewHasher(cfg.Auth.Password)
	authSvc := auth.NewService(st, hasher, tokens, log)
	inventorySvc := inventory.NewService(st, log)

	srv := server.New(cfg.Server, log)
	srv.ApplyMiddleware()
	api.New(authSvc, inventorySvc, auth.NewValidator(tokens.ValidatorFunc()), log).Register(srv.GinEngine())

	ctx := context.Background()
	if err := srv.Start(ctx); err != nil {
		return err
	}
	log.Info("inventario API listening", logger.Fields("addr", srv.Addr()))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	log.Info("shutdown signal received", logger.Fields("signal", sig.String()))

	return srv.Stop(ctx)
}
