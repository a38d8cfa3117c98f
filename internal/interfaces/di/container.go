// Package di wires configuration, infrastructure adapters, application
// services and the CLI together.
package di

import (
	"fmt"
	"io"
	"log"
	"os"

	"sling.app/cli/internal/application/services"
	"sling.app/cli/internal/core/desktop"
	"sling.app/cli/internal/infrastructure/config"
	"sling.app/cli/internal/infrastructure/icons"
	"sling.app/cli/internal/infrastructure/launch"
	"sling.app/cli/internal/infrastructure/scanner"
	"sling.app/cli/internal/interfaces/cli"
)

// Container holds all application dependencies.
type Container struct {
	Config     *config.Config
	ConfigRepo *config.Repository

	Catalog *services.CatalogService
	Icons   *services.IconService

	CLI *cli.CLIContainer

	Logger *log.Logger
}

// NewContainer creates and configures the dependency container.
func NewContainer() (*Container, error) {
	repo := config.NewRepository()
	cfg, err := repo.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger := log.New(os.Stderr, "[sling] ", log.LstdFlags)

	// The catalog's skip-count chatter is debug-only.
	catalogLogger := logger
	if !cfg.Debug {
		catalogLogger = log.New(io.Discard, "", 0)
	}

	locales := cfg.Locales
	if len(locales) == 0 {
		locales = desktop.LocalesFromEnv()
	}

	source := scanner.NewFilesystemScanner(cfg.ApplicationDirs, locales)
	catalog := services.NewCatalogService(source, catalogLogger)

	locator := icons.NewHicolorLocator(cfg.IconDirs)
	decoder := icons.NewFileDecoder(cfg.IconSize)
	iconSvc := services.NewIconService(locator, decoder, cfg.IconSize)

	c := &Container{
		Config:     cfg,
		ConfigRepo: repo,
		Catalog:    catalog,
		Icons:      iconSvc,
		Logger:     logger,
	}
	c.CLI = &cli.CLIContainer{
		Config:     cfg,
		ConfigPath: repo.Path(),
		Catalog:    catalog,
		Icons:      iconSvc,
		Launcher:   launch.NewSpawner(),
		Logger:     logger,
	}
	return c, nil
}
