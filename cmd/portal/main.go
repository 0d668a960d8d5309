package main

import (
	"log"
	"os"

	"github.com/go-playground/validator/v10"

	"github.com/noah-isme/lms-portal/internal/console"
	"github.com/noah-isme/lms-portal/internal/repository"
	"github.com/noah-isme/lms-portal/internal/service"
	"github.com/noah-isme/lms-portal/internal/view"
	"github.com/noah-isme/lms-portal/pkg/config"
	"github.com/noah-isme/lms-portal/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	repo, err := repository.NewAccountRepository(cfg.Store.Dir, cfg.Store.Filename, logr)
	if err != nil {
		logr.Sugar().Fatalw("failed to open account store", "error", err)
	}

	sessions := service.NewSessionService(repo, validator.New(), logr)
	catalog := service.NewCatalogService(nil, logr)
	renderer := view.NewRenderer(catalog)
	notifier := console.NewTerminalNotifier(os.Stdout)

	logr.Sugar().Infow("portal starting", "store", repo.Path(), "env", cfg.Env)

	c := console.New(sessions, renderer, notifier, logr, os.Stdin, os.Stdout)
	c.Run()
}
