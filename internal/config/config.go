package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// FileName is looked up in the directory given to Load.
const FileName = "island.json"

type WindowConfig struct {
	Width  int    `json:"width" mapstructure:"width"`
	Height int    `json:"height" mapstructure:"height"`
	Title  string `json:"title" mapstructure:"title"`
	VSync  bool   `json:"vsync" mapstructure:"vsync"`
}

type AudioConfig struct {
	Enabled bool    `json:"enabled" mapstructure:"enabled"`
	Volume  float64 `json:"volume" mapstructure:"volume"`
}

type InputConfig struct {
	// ScrollScale converts one wheel notch into scroll units for the
	// spotlight orbit.
	ScrollScale float64 `json:"scrollScale" mapstructure:"scrollScale"`
}

type DebugConfig struct {
	Footprints bool `json:"footprints" mapstructure:"footprints"`
}

// Config holds the runtime settings. Simulation constants are not part of it.
type Config struct {
	LogLevel  string       `json:"logLevel" mapstructure:"logLevel"`
	LogFormat string       `json:"logFormat" mapstructure:"logFormat"`
	Window    WindowConfig `json:"window" mapstructure:"window"`
	Audio     AudioConfig  `json:"audio" mapstructure:"audio"`
	Input     InputConfig  `json:"input" mapstructure:"input"`
	Debug     DebugConfig  `json:"debug" mapstructure:"debug"`
}

func setDefaults() {
	viper.SetDefault("logLevel", "info")
	viper.SetDefault("logFormat", "console")

	viper.SetDefault("window.width", 1280)
	viper.SetDefault("window.height", 720)
	viper.SetDefault("window.title", "Floating Island")
	viper.SetDefault("window.vsync", true)

	viper.SetDefault("audio.enabled", true)
	viper.SetDefault("audio.volume", 0.5)

	viper.SetDefault("input.scrollScale", 100.0)

	viper.SetDefault("debug.footprints", false)
}

// BindFlags registers the command line flags and binds them to their keys.
// Flags left at their defaults do not override the file or environment.
func BindFlags(fs *pflag.FlagSet) error {
	fs.String("config", ".", "directory containing "+FileName)
	fs.String("log-level", "info", "log level (trace, debug, info, warn, error)")
	fs.Bool("debug-footprints", false, "draw collision footprints")

	if err := viper.BindPFlag("configDir", fs.Lookup("config")); err != nil {
		return fmt.Errorf("bind config flag: %w", err)
	}
	if err := viper.BindPFlag("logLevel", fs.Lookup("log-level")); err != nil {
		return fmt.Errorf("bind log-level flag: %w", err)
	}
	if err := viper.BindPFlag("debug.footprints", fs.Lookup("debug-footprints")); err != nil {
		return fmt.Errorf("bind debug-footprints flag: %w", err)
	}
	return nil
}

// Dir returns the config directory chosen on the command line.
func Dir() string {
	if d := viper.GetString("configDir"); d != "" {
		return d
	}
	return "."
}

// Load reads island.json from configDir on top of the defaults and applies
// ISLAND_* environment overrides. A missing file is not an error.
func Load(configDir string) (Config, error) {
	setDefaults()

	viper.SetEnvPrefix("ISLAND")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetConfigName(FileName)
	viper.SetConfigType("json")
	viper.AddConfigPath(configDir)

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("error decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("audio volume %v out of range [0,1]", c.Audio.Volume)
	}
	return nil
}
