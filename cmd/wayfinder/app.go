package main

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/wayfinder/builder"
	"github.com/katalvlaran/wayfinder/config"
	"github.com/katalvlaran/wayfinder/core"
	"github.com/katalvlaran/wayfinder/route"
	"github.com/katalvlaran/wayfinder/sqlstore"
)

var errNoHistory = errors.New("scan history needs the sqlite backend (directory.backend: sqlite)")

// app is everything a command needs, wired from configuration.
type app struct {
	cfg    *config.Config
	log    *zap.Logger
	dir    core.Catalog
	store  *sqlstore.Store // nil for the memory backend
	engine *route.Engine
}

func loadConfig(cfgPath string) (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, nil, err
	}
	log, err := config.NewLogger(cfg.Log)
	if err != nil {
		return nil, nil, err
	}
	return cfg, log, nil
}

func loadApp(cfgPath string) (*app, error) {
	cfg, log, err := loadConfig(cfgPath)
	if err != nil {
		return nil, err
	}
	return newApp(cfg, log)
}

// newApp wires the directory and engine for an already validated cfg.
// On error, anything it opened is closed again.
func newApp(cfg *config.Config, log *zap.Logger) (*app, error) {
	var err error
	a := &app{cfg: cfg, log: log}

	switch cfg.Directory.Backend {
	case config.BackendSQLite:
		if a.store, err = openStore(cfg, log); err != nil {
			return nil, err
		}
		a.dir = a.store
	default:
		g, err := builder.Load(cfg.Directory.Dataset)
		if err != nil {
			return nil, err
		}
		a.dir = g
	}

	phrases, ok := route.PhrasebookFor(cfg.Route.Locale)
	if !ok {
		a.close()
		return nil, fmt.Errorf("no phrasebook for locale %q", cfg.Route.Locale)
	}
	a.engine, err = route.NewEngine(a.dir, route.WithLogger(log), route.WithPhrasebook(phrases))
	if err != nil {
		a.close()
		return nil, err
	}
	log.Debug("directory ready",
		zap.String("backend", cfg.Directory.Backend), zap.String("locale", cfg.Route.Locale))
	return a, nil
}

func openStore(cfg *config.Config, log *zap.Logger) (*sqlstore.Store, error) {
	return sqlstore.Open(cfg.Directory.DBPath,
		sqlstore.WithLogger(log),
		sqlstore.WithCacheSize(cfg.Directory.CacheSize),
		sqlstore.WithQueryTimeout(cfg.Directory.QueryTimeout),
	)
}

func (a *app) close() {
	if a.store != nil {
		if err := a.store.Close(); err != nil {
			a.log.Warn("close directory", zap.Error(err))
		}
	}
	_ = a.log.Sync()
}
