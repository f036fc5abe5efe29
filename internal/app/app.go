package app

import (
	"textkit/internal/config"
	"textkit/internal/domain"
	"textkit/internal/extract"
)

// App bundles the configuration and shared services for the CLI.
type App struct {
	Config  *config.Config
	Extract domain.TextExtractor
}

// New constructs the dependency graph from cfg.
func New(cfg *config.Config) *App {
	return &App{
		Config:  cfg,
		Extract: extract.New(),
	}
}
