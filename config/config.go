// Package config loads harness configuration from an optional YAML file,
// environment variables and defaults, then validates the result. Fields are
// pointers so "unset" is distinguishable from zero and defaults apply
// cleanly.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type Config struct {
	Harness  Harness  `mapstructure:"harness" validate:"required"`
	Playback Playback `mapstructure:"playback" validate:"required"`
	Overlay  Overlay  `mapstructure:"overlay" validate:"required"`
	Scenario Scenario `mapstructure:"scenario"`
	Logging  Logging  `mapstructure:"logging" validate:"required"`
}

// Harness configures the stage the scenarios render into.
type Harness struct {
	Width      *int    `mapstructure:"width" validate:"required,min=64,max=3840"`
	Height     *int    `mapstructure:"height" validate:"required,min=64,max=2160"`
	Background *string `mapstructure:"background" validate:"required,hexcolor"`
}

// Playback configures the transport. Controls toggles the on-screen control
// surface; the core sampling path ignores it.
type Playback struct {
	FrameRate        *float64 `mapstructure:"frameRate" validate:"required,gt=0,lte=240"`
	DurationInFrames *int     `mapstructure:"durationInFrames" validate:"required,min=1"`
	Autoplay         *bool    `mapstructure:"autoplay" validate:"required"`
	Loop             *bool    `mapstructure:"loop" validate:"required"`
	Controls         *bool    `mapstructure:"controls" validate:"required"`
}

// Overlay configures the in-frame performance panel.
type Overlay struct {
	Enabled  *bool   `mapstructure:"enabled" validate:"required"`
	Position *string `mapstructure:"position" validate:"oneof=top-left top-right bottom-left bottom-right"`
	Label    *string `mapstructure:"label"`
}

// Scenario points at the optional catalog manifest.
type Scenario struct {
	Manifest *string `mapstructure:"manifest"`
}

type Logging struct {
	Level *string `mapstructure:"level" validate:"oneof=debug info warn error"`
	Debug *bool   `mapstructure:"debug"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("harness.width", 960)
	v.SetDefault("harness.height", 540)
	v.SetDefault("harness.background", "#101418")

	v.SetDefault("playback.frameRate", 30)
	v.SetDefault("playback.durationInFrames", 300)
	v.SetDefault("playback.autoplay", true)
	v.SetDefault("playback.loop", true)
	v.SetDefault("playback.controls", true)

	v.SetDefault("overlay.enabled", true)
	v.SetDefault("overlay.position", "top-right")
	v.SetDefault("overlay.label", "")

	v.SetDefault("scenario.manifest", "scenarios.yaml")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.debug", false)
}

// Read loads the configuration. path may name a YAML file; an empty path
// falls back to ./framepulse.yaml, and a missing file yields pure defaults.
func Read(path string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("FRAMEPULSE")
	v.AutomaticEnv()
	setDefaults(v)

	v.SetConfigType("yaml")
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("framepulse")
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		// Absent config is fine (defaults apply); a present-but-broken file
		// is not.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return &cfg, nil
}
