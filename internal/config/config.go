// Package config loads application settings and board scenarios.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"

	"github.com/Garsondee/Hazard-Board/internal/board"
	"github.com/Garsondee/Hazard-Board/internal/logs"
)

// EnvPrefix is the prefix for environment overrides, e.g. HAZARD_BOARD_ROWS.
const EnvPrefix = "HAZARD"

// ErrInvalidConfig is returned when settings fail validation.
var ErrInvalidConfig = errors.New("config: invalid settings")

// Config is the application configuration.
type Config struct {
	Window   WindowConfig `mapstructure:"window"`
	Board    BoardConfig  `mapstructure:"board"`
	Scenario string       `mapstructure:"scenario"` // empty uses the standard lineup
	Watch    bool         `mapstructure:"watch"`    // reload the scenario when it changes
	Log      logs.Config  `mapstructure:"log"`
}

// WindowConfig controls the desktop window.
type WindowConfig struct {
	Title string  `mapstructure:"title"`
	Scale float64 `mapstructure:"scale"` // window size multiplier over the logical layout
}

// BoardConfig controls grid size and pixel layout.
type BoardConfig struct {
	Rows         int `mapstructure:"rows"`
	Cols         int `mapstructure:"cols"`
	CellSize     int `mapstructure:"cell_size"`
	Margin       int `mapstructure:"margin"`
	LeftSpace    int `mapstructure:"left_space"`
	DefaultLevel int `mapstructure:"default_level"` // level used for hazards added from the keyboard
}

// Geometry converts the pixel layout to board geometry.
func (b BoardConfig) Geometry() board.Geometry {
	return board.Geometry{CellSize: b.CellSize, Margin: b.Margin, LeftSpace: b.LeftSpace}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("window.title", "Hazard Board")
	v.SetDefault("window.scale", 2.0)
	v.SetDefault("board.rows", board.DefaultRows)
	v.SetDefault("board.cols", board.DefaultCols)
	v.SetDefault("board.cell_size", board.DefaultGeometry.CellSize)
	v.SetDefault("board.margin", board.DefaultGeometry.Margin)
	v.SetDefault("board.left_space", board.DefaultGeometry.LeftSpace)
	v.SetDefault("board.default_level", 1)
	v.SetDefault("scenario", "")
	v.SetDefault("watch", true)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")
	v.SetDefault("log.max_size", 10)
	v.SetDefault("log.max_backups", 3)
	v.SetDefault("log.max_age", 7)
	v.SetDefault("log.compress", false)
	v.SetDefault("log.dev", false)
}

// Load reads defaults, then the optional config file at path, then
// HAZARD_* environment overrides.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks ranges that would make the board unusable.
func (c *Config) Validate() error {
	b := c.Board
	switch {
	case b.Rows < 1 || b.Cols < 1:
		return fmt.Errorf("%w: board must have at least one row and column (got %dx%d)", ErrInvalidConfig, b.Rows, b.Cols)
	case b.CellSize < 4:
		return fmt.Errorf("%w: cell_size %d too small", ErrInvalidConfig, b.CellSize)
	case b.Margin < 0 || b.LeftSpace < 0:
		return fmt.Errorf("%w: negative margin", ErrInvalidConfig)
	case !board.LevelSupported(b.DefaultLevel):
		return fmt.Errorf("%w: default_level %d: %w", ErrInvalidConfig, b.DefaultLevel, board.ErrUnknownLevel)
	case c.Window.Scale <= 0:
		return fmt.Errorf("%w: window scale must be positive", ErrInvalidConfig)
	}
	if c.Log.Level != "" {
		if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
			return fmt.Errorf("%w: log level: %w", ErrInvalidConfig, err)
		}
	}
	return nil
}
