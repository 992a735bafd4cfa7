package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
	"github.com/strugee/profanity/internal/application"
)

const (
	configName = "config"
	configType = "toml"
	configDir  = ".profanity"
	envPrefix  = "PROFANITY"

	titleKey           = "ui.title"
	timestampFormatKey = "ui.timestamp_format"
	tickKey            = "ui.tick"
	onFullKey          = "windows.on_full"
	logFileKey         = "log.file"
	logLevelKey        = "log.level"

	DefaultTitle           = "Profanity. Type /help for help information."
	DefaultTimestampFormat = "15:04:05"
	DefaultTick            = time.Second
	logFileName            = "profanity.log"
)

var (
	ErrInvalidTick     = errors.New("tick must be positive")
	ErrInvalidLogLevel = errors.New("unknown log level")
)

type Config struct {
	UI      UIConfig
	Windows WindowsConfig
	Log     LogConfig
}

type UIConfig struct {
	Title           string
	TimestampFormat string
	Tick            time.Duration
}

type WindowsConfig struct {
	OnFull application.EvictionPolicy
}

type LogConfig struct {
	File  string
	Level slog.Level
}

// Default is the configuration used when no file or environment overrides
// are present.
func Default() Config {
	return Config{
		UI: UIConfig{
			Title:           DefaultTitle,
			TimestampFormat: DefaultTimestampFormat,
			Tick:            DefaultTick,
		},
		Windows: WindowsConfig{OnFull: application.EvictionReject},
		Log:     LogConfig{File: defaultLogFile(), Level: slog.LevelInfo},
	}
}

// Load reads path, or $HOME/.profanity/config.toml when path is empty, and
// applies PROFANITY_* environment overrides. A missing default file is not
// an error.
func Load(v *viper.Viper, path string) (Config, error) {
	if v == nil {
		v = viper.New()
	}

	defaults := Default()
	v.SetDefault(titleKey, defaults.UI.Title)
	v.SetDefault(timestampFormatKey, defaults.UI.TimestampFormat)
	v.SetDefault(tickKey, defaults.UI.Tick.String())
	v.SetDefault(onFullKey, string(defaults.Windows.OnFull))
	v.SetDefault(logFileKey, defaults.Log.File)
	v.SetDefault(logLevelKey, "info")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(configName)
		v.SetConfigType(configType)
		if homeDir, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(homeDir, configDir))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &configNotFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	return fromViper(v)
}

func fromViper(v *viper.Viper) (Config, error) {
	tick, err := time.ParseDuration(v.GetString(tickKey))
	if err != nil {
		return Config{}, fmt.Errorf("parse %s: %w", tickKey, err)
	}
	if tick <= 0 {
		return Config{}, fmt.Errorf("parse %s: %w", tickKey, ErrInvalidTick)
	}

	policy := application.EvictionPolicy(strings.ToLower(strings.TrimSpace(v.GetString(onFullKey))))
	if !policy.Valid() {
		return Config{}, fmt.Errorf("parse %s: %w: %q", onFullKey, application.ErrUnsupportedEvictionPolicy, policy)
	}

	level, err := parseLevel(v.GetString(logLevelKey))
	if err != nil {
		return Config{}, fmt.Errorf("parse %s: %w", logLevelKey, err)
	}

	cfg := Config{
		UI: UIConfig{
			Title:           v.GetString(titleKey),
			TimestampFormat: v.GetString(timestampFormatKey),
			Tick:            tick,
		},
		Windows: WindowsConfig{OnFull: policy},
		Log:     LogConfig{File: v.GetString(logFileKey), Level: level},
	}
	if cfg.UI.TimestampFormat == "" {
		cfg.UI.TimestampFormat = DefaultTimestampFormat
	}
	if cfg.Log.File == "" {
		cfg.Log.File = defaultLogFile()
	}

	return cfg, nil
}

func parseLevel(raw string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidLogLevel, raw)
	}
}

func defaultLogFile() string {
	return filepath.Join(os.TempDir(), logFileName)
}
