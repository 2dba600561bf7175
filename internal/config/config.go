// Package config loads the dosecurve settings from defaults, an optional
// config file, DOSECURVE_* environment variables and command-line flags.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/arloliu/dosecurve/chart"
	"github.com/arloliu/dosecurve/errs"
	"github.com/arloliu/dosecurve/formula"
	"github.com/arloliu/dosecurve/results"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment overrides, e.g. DOSECURVE_RESULTS_DIR.
const EnvPrefix = "DOSECURVE"

// Config is the resolved application configuration.
type Config struct {
	Results ResultsConfig `mapstructure:"results"`
	Sweep   SweepConfig   `mapstructure:"sweep"`
	Chart   ChartConfig   `mapstructure:"chart"`
	Log     LogConfig     `mapstructure:"log"`
}

// ResultsConfig locates the precomputed results files.
type ResultsConfig struct {
	Dir  string `mapstructure:"dir"`
	Date string `mapstructure:"date"`
}

// SweepConfig bounds the TDD sweep.
type SweepConfig struct {
	Max int `mapstructure:"max"`
}

// ChartConfig selects the figure renderer and canvas.
type ChartConfig struct {
	Renderer string `mapstructure:"renderer"`
	Format   string `mapstructure:"format"`
	Width    int    `mapstructure:"width"`
	Height   int    `mapstructure:"height"`
}

// LogConfig configures the zap logger.
type LogConfig struct {
	Level       string `mapstructure:"level"`
	Development bool   `mapstructure:"development"`
}

// flagKeys maps command-line flags to configuration keys.
var flagKeys = map[string]string{
	"results-dir":  "results.dir",
	"results-date": "results.date",
	"sweep-max":    "sweep.max",
	"renderer":     "chart.renderer",
	"format":       "chart.format",
	"width":        "chart.width",
	"height":       "chart.height",
	"log-level":    "log.level",
	"log-dev":      "log.development",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("results.dir", results.DefaultDir)
	v.SetDefault("results.date", results.DefaultDate)
	v.SetDefault("sweep.max", formula.DefaultSweepMax)
	v.SetDefault("chart.renderer", chart.RendererPlot)
	v.SetDefault("chart.format", "png")
	v.SetDefault("chart.width", chart.DefaultWidth)
	v.SetDefault("chart.height", chart.DefaultHeight)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.development", false)
}

// BindFlags registers the configuration flags shared by every subcommand.
func BindFlags(fs *pflag.FlagSet) {
	fs.String("config", "", "path to a YAML, JSON or TOML config file")
	fs.String("results-dir", results.DefaultDir, "directory holding the test_eval results files")
	fs.String("results-date", results.DefaultDate, "date stamp of the results files")
	fs.Int("sweep-max", formula.DefaultSweepMax, "last total daily dose of the sweep")
	fs.String("renderer", chart.RendererPlot, "figure renderer: plot, gochart or json")
	fs.String("format", "png", "image format of the plot renderer: png or svg")
	fs.Int("width", chart.DefaultWidth, "figure width in pixels")
	fs.Int("height", chart.DefaultHeight, "figure height in pixels")
	fs.String("log-level", "info", "log level: debug, info, warn or error")
	fs.Bool("log-dev", false, "use the human-readable development logger")
}

// Load resolves the configuration. fs may be nil; otherwise flags registered
// with BindFlags override every other source when set.
func Load(fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if fs != nil {
		for name, key := range flagKeys {
			if f := fs.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}

		if f := fs.Lookup("config"); f != nil && f.Value.String() != "" {
			v.SetConfigFile(f.Value.String())
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("read config %s: %w", f.Value.String(), err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate rejects settings no command can run with.
func (c *Config) Validate() error {
	var problems []error
	if c.Results.Dir == "" {
		problems = append(problems, errors.New("results.dir must not be empty"))
	}
	if c.Results.Date == "" {
		problems = append(problems, errors.New("results.date must not be empty"))
	}
	if c.Sweep.Max < 1 {
		problems = append(problems, fmt.Errorf("sweep.max must be >= 1, got %d", c.Sweep.Max))
	}
	if c.Chart.Width <= 0 || c.Chart.Height <= 0 {
		problems = append(problems, fmt.Errorf("chart size must be positive, got %dx%d", c.Chart.Width, c.Chart.Height))
	}
	switch c.Chart.Renderer {
	case chart.RendererPlot, chart.RendererGoChart, chart.RendererJSON:
	default:
		problems = append(problems, fmt.Errorf("%w: %q", errs.ErrUnknownRenderer, c.Chart.Renderer))
	}

	return errors.Join(problems...)
}

// RendererOptions returns the chart options described by the configuration.
func (c *Config) RendererOptions() []chart.Option {
	opts := []chart.Option{chart.WithSize(c.Chart.Width, c.Chart.Height)}
	if c.Chart.Renderer == chart.RendererPlot {
		opts = append(opts, chart.WithFormat(c.Chart.Format))
	}

	return opts
}

// LoaderOptions returns the results loader options described by the configuration.
func (c *Config) LoaderOptions() []results.LoaderOption {
	return []results.LoaderOption{
		results.WithDir(c.Results.Dir),
		results.WithDate(c.Results.Date),
	}
}
