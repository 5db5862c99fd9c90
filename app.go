package main

import (
	"fmt"
	"log/slog"
)

// App bundles what every front end needs: configuration, the catalog and the
// optional insights generator. It holds no per-session state; each session
// creates its own ParameterStore.
type App struct {
	Config   *Config
	Catalog  *Catalog
	Insights *InsightsGenerator
}

// NewApp loads the catalog named in the config (or the built-in one)
func NewApp(config *Config) (*App, error) {
	if config == nil {
		var err error
		if config, err = LoadDefaultConfig(); err != nil {
			return nil, fmt.Errorf("load default config: %w", err)
		}
	}

	var catalog *Catalog
	var err error
	if config.Catalog != "" {
		catalog, err = LoadCatalog(config.Catalog)
	} else {
		catalog, err = LoadDefaultCatalog()
	}
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	SetCurrencySymbol(config.CurrencySymbol())
	app := &App{
		Config:   config,
		Catalog:  catalog,
		Insights: NewInsightsGenerator(config.Insights),
	}
	slog.Debug("app ready",
		"initiatives", len(catalog.List()),
		"strict", config.Validation.Strict,
		"insights", app.Insights.Available())
	return app, nil
}

// NewStore creates an empty parameter store using the configured validation
func (a *App) NewStore() *ParameterStore {
	return NewParameterStore(a.Catalog, a.Config.StoreOptions()...)
}

// Capabilities reports which optional features are usable
func (a *App) Capabilities() Capabilities {
	return DetectCapabilities(a.Insights)
}
