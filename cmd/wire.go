package cmd

import (
	"fmt"
	"log/slog"
	"time"

	windowsadapter "github.com/strugee/profanity/internal/adapters/render/windows"
	"github.com/strugee/profanity/internal/application"
	"github.com/strugee/profanity/internal/config"
	"github.com/strugee/profanity/internal/logger"
	"github.com/spf13/viper"
)

type app struct {
	cfg            config.Config
	logger         *slog.Logger
	windowRenderer func([]application.WindowSnapshot, windowsadapter.RenderOptions) (string, error)
	now            func() time.Time
}

func wireApp(opts *rootOptions) (*app, error) {
	cfg, err := config.Load(viper.New(), opts.configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	level := cfg.Log.Level
	if opts.debug {
		level = slog.LevelDebug
	}
	if err := logger.Init(cfg.Log.File, level); err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	return &app{
		cfg:            cfg,
		logger:         logger.Get(),
		windowRenderer: windowsadapter.Render,
		now:            time.Now,
	}, nil
}

func (a *app) serviceOptions(component string) []application.Option {
	return []application.Option{
		application.WithEvictionPolicy(a.cfg.Windows.OnFull),
		application.WithLogger(a.logger.With(slog.String("component", component))),
	}
}
