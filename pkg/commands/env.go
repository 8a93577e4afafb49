package commands

import (
	"go.uber.org/zap"

	"tableflip.dev/moodcal/pkg/app"
	"tableflip.dev/moodcal/pkg/logging"
	"tableflip.dev/moodcal/pkg/session"
	"tableflip.dev/moodcal/pkg/store"
)

// env is what every command needs: config, a logger and the open store.
type env struct {
	cfg   store.Config
	log   *zap.Logger
	store *store.Store
}

func loadEnv() (*env, error) {
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, err
	}
	level := logs.Level
	if level == "" {
		level = cfg.LogLevel()
	}
	log, err := logging.New(level, logs.Dev)
	if err != nil {
		return nil, err
	}
	st, err := store.Open(cfg, log)
	if err != nil {
		_ = log.Sync()
		return nil, err
	}
	log.Debug("store opened",
		zap.String("backend", cfg.Backend()),
		zap.String("path", cfg.BasePath()),
		zap.Int("days", st.Len()))
	return &env{cfg: cfg, log: log, store: st}, nil
}

// options returns calendar options from config with n as the notifier.
func (e *env) options(n session.Notifier) app.Options {
	return app.Options{
		Store:     e.store,
		Notifier:  n,
		WeekStart: e.cfg.WeekStart(),
		Locale:    e.cfg.Locale(),
		Logger:    e.log,
	}
}

func (e *env) calendar(n session.Notifier) (*app.Calendar, error) {
	return app.New(e.options(n))
}

func (e *env) Close() {
	if err := e.store.Close(); err != nil {
		e.log.Warn("close store", zap.Error(err))
	}
	_ = e.log.Sync()
}
