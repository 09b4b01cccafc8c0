// Package config holds the application configuration for the humanpath CLI:
// logging setup and the generator knobs a user may override. The statistical
// weight tables of the trajectory core are deliberately not configurable;
// they are documented, load-tested distributions.
package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/xkilldash9x/humanpath/pkg/easing"
)

// Config is the full application configuration.
type Config struct {
	Logger    LoggerConfig    `mapstructure:"logger" yaml:"logger"`
	Generator GeneratorConfig `mapstructure:"generator" yaml:"generator"`
}

// LoggerConfig controls the zap logger and its file rotation.
type LoggerConfig struct {
	Level       string      `mapstructure:"level" yaml:"level"`
	Format      string      `mapstructure:"format" yaml:"format"`
	AddSource   bool        `mapstructure:"add_source" yaml:"add_source"`
	ServiceName string      `mapstructure:"service_name" yaml:"service_name"`
	LogFile     string      `mapstructure:"log_file" yaml:"log_file"`
	MaxSize     int         `mapstructure:"max_size" yaml:"max_size"`
	MaxBackups  int         `mapstructure:"max_backups" yaml:"max_backups"`
	MaxAge      int         `mapstructure:"max_age" yaml:"max_age"`
	Compress    bool        `mapstructure:"compress" yaml:"compress"`
	Colors      ColorConfig `mapstructure:"colors" yaml:"colors"`
}

// ColorConfig defines the color codes for different log levels.
type ColorConfig struct {
	Debug  string `mapstructure:"debug" yaml:"debug"`
	Info   string `mapstructure:"info" yaml:"info"`
	Warn   string `mapstructure:"warn" yaml:"warn"`
	Error  string `mapstructure:"error" yaml:"error"`
	DPanic string `mapstructure:"dpanic" yaml:"dpanic"`
	Panic  string `mapstructure:"panic" yaml:"panic"`
	Fatal  string `mapstructure:"fatal" yaml:"fatal"`
}

// GeneratorConfig carries the user-facing trajectory knobs.
type GeneratorConfig struct {
	// Seed for the random source. 0 means time-based.
	Seed int64 `mapstructure:"seed" yaml:"seed"`
	// Easing forces a named profile instead of a uniform random pick.
	// Empty keeps the random selection.
	Easing string `mapstructure:"easing" yaml:"easing"`
	// TargetPoints overrides the sampled output point count. 0 keeps the
	// weighted draw.
	TargetPoints int `mapstructure:"target_points" yaml:"target_points"`
	// Speed is the pacing factor in pixels per second used when scheduling
	// timestamps.
	Speed float64 `mapstructure:"speed" yaml:"speed"`
	// Count is the number of trajectories to generate per invocation.
	Count int `mapstructure:"count" yaml:"count"`
	// Concurrency bounds the parallel workers for batch generation.
	Concurrency int `mapstructure:"concurrency" yaml:"concurrency"`
}

// SetDefaults initializes default values for all configuration parameters.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.add_source", false)
	v.SetDefault("logger.service_name", "humanpath")
	v.SetDefault("logger.log_file", "")
	v.SetDefault("logger.max_size", 100)
	v.SetDefault("logger.max_backups", 5)
	v.SetDefault("logger.max_age", 30)
	v.SetDefault("logger.compress", true)
	v.SetDefault("logger.colors.debug", "cyan")
	v.SetDefault("logger.colors.info", "green")
	v.SetDefault("logger.colors.warn", "yellow")
	v.SetDefault("logger.colors.error", "red")
	v.SetDefault("logger.colors.dpanic", "magenta")
	v.SetDefault("logger.colors.panic", "magenta")
	v.SetDefault("logger.colors.fatal", "red")

	v.SetDefault("generator.seed", 0)
	v.SetDefault("generator.easing", "")
	v.SetDefault("generator.target_points", 0)
	v.SetDefault("generator.speed", 900.0)
	v.SetDefault("generator.count", 1)
	v.SetDefault("generator.concurrency", 4)
}

// Validate rejects configurations the generator cannot honor.
func (c *Config) Validate() error {
	g := c.Generator
	if g.Easing != "" {
		if _, ok := easing.ByName(g.Easing); !ok {
			return fmt.Errorf("config: unknown easing %q", g.Easing)
		}
	}
	if g.TargetPoints != 0 && g.TargetPoints < 2 {
		return fmt.Errorf("config: target_points must be 0 or >= 2, got %d", g.TargetPoints)
	}
	if g.Speed < 0 {
		return fmt.Errorf("config: speed must be >= 0, got %v", g.Speed)
	}
	if g.Count < 1 {
		return fmt.Errorf("config: count must be >= 1, got %d", g.Count)
	}
	if g.Concurrency < 1 {
		return fmt.Errorf("config: concurrency must be >= 1, got %d", g.Concurrency)
	}
	return nil
}
