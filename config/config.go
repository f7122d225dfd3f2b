package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/andareed/siftly-modal/logging"
	"github.com/andareed/siftly-modal/modal"
)

// Config holds application configuration.
type Config struct {
	Modal ModalConfig `mapstructure:"modal"`
	Log   LogConfig   `mapstructure:"log"`
}

// ModalConfig holds the defaults every modal of the program starts from.
type ModalConfig struct {
	Direction             string `mapstructure:"direction"`
	DurationMs            int    `mapstructure:"duration_ms"`
	MaskColor             string `mapstructure:"mask_color"`
	CloseIcon             string `mapstructure:"close_icon"`
	Closable              bool   `mapstructure:"closable"`
	CloseOnLocationChange bool   `mapstructure:"close_on_location_change"`
}

// LogConfig holds debug log settings.
type LogConfig struct {
	File string `mapstructure:"file"`
}

// Load reads configuration from defaults, then the TOML file at path (or
// $SIFTLY_MODAL_CONFIG, or ~/.config/siftly-modal/config.toml when
// present), then env var overrides with prefix SIFTLY_MODAL_.
//
// An explicitly named file must exist; the default location is optional.
func Load(path string) (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("modal.direction", string(modal.FromBottom))
	v.SetDefault("modal.duration_ms", int(modal.DefaultTransitionDuration/time.Millisecond))
	v.SetDefault("modal.mask_color", modal.DefaultMaskColor)
	v.SetDefault("modal.close_icon", "✕")
	v.SetDefault("modal.closable", true)
	v.SetDefault("modal.close_on_location_change", false)
	v.SetDefault("log.file", "")

	v.SetConfigType("toml")

	if path == "" {
		path = os.Getenv("SIFTLY_MODAL_CONFIG")
	}
	explicit := path != ""
	if explicit {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "siftly-modal"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("SIFTLY_MODAL")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	} else {
		logging.Debugf("config: loaded %s", v.ConfigFileUsed())
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if c.Modal.DurationMs < 0 {
		return Config{}, fmt.Errorf("modal.duration_ms must not be negative, got %d", c.Modal.DurationMs)
	}
	return c, nil
}

// Options converts the modal defaults to modal options.
func (c ModalConfig) Options() []modal.Option {
	dir := modal.Direction(c.Direction)
	switch dir {
	case modal.FromTop, modal.FromBottom, modal.FromLeft, modal.FromRight:
	default:
		logging.Warnf("config: unknown modal.direction %q, panels will not slide", c.Direction)
	}
	return []modal.Option{
		modal.WithDirection(dir),
		modal.WithTransitionDuration(time.Duration(c.DurationMs) * time.Millisecond),
		modal.WithMaskColor(c.MaskColor),
		modal.WithCloseIcon(c.CloseIcon),
		modal.WithClosable(c.Closable),
		modal.WithCloseOnLocationChange(c.CloseOnLocationChange),
	}
}
