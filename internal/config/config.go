package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/riemann/internal/animation"
	"github.com/san-kum/riemann/internal/render"
	"github.com/san-kum/riemann/internal/riemann"
)

const (
	DefaultFunction         = "x*(x-2)*(x-1)+1"
	DefaultPlotInterval     = "(0.0,2.0)"
	DefaultIntegralInterval = "(0.5,1.5)"
	DefaultStepCount        = 45
	DefaultMode             = "left"
	DefaultDelay            = 20
	DefaultWidth            = 640
	DefaultHeight           = 480
	DefaultTheme            = "light"
)

type Config struct {
	Function         string       `yaml:"function"`
	PlotInterval     string       `yaml:"plot_interval"`
	IntegralInterval string       `yaml:"integral_interval"`
	StepCount        int          `yaml:"step_count"`
	Mode             string       `yaml:"mode"`
	Delay            int          `yaml:"delay"`
	Render           RenderConfig `yaml:"render"`
}

type RenderConfig struct {
	Width  int     `yaml:"width"`
	Height int     `yaml:"height"`
	Theme  string  `yaml:"theme"`
	Format string  `yaml:"format"`
	Alpha  float64 `yaml:"alpha"`
	Dither bool    `yaml:"dither"`
}

func DefaultConfig() *Config {
	return &Config{
		Function:         DefaultFunction,
		PlotInterval:     DefaultPlotInterval,
		IntegralInterval: DefaultIntegralInterval,
		StepCount:        DefaultStepCount,
		Mode:             DefaultMode,
		Delay:            DefaultDelay,
		Render: RenderConfig{
			Width:  DefaultWidth,
			Height: DefaultHeight,
			Theme:  DefaultTheme,
			Alpha:  0.5,
		},
	}
}

func Load(path string) (*Config, error) {
	return LoadOver(path, DefaultConfig())
}

// LoadOver reads path on top of base: fields missing from the file keep
// their base values. base is not modified.
func LoadOver(path string, base *Config) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := *base
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Params is a validated configuration, ready for frame generation.
type Params struct {
	Function  string
	Plot      riemann.Interval
	Integral  riemann.Interval
	StepCount int
	Mode      riemann.Mode
	Delay     int
	Width     int
	Height    int
	Theme     render.Theme
	Format    string
	Alpha     float64
	Dither    bool
}

// Validate checks every field and returns the parsed parameters. Failures
// are *riemann.ArgumentError values naming the offending option.
func (c *Config) Validate() (*Params, error) {
	plot, err := riemann.ParseInterval(c.PlotInterval)
	if err != nil {
		return nil, named("plot-interval", err)
	}
	integral, err := riemann.ParseBounds(c.IntegralInterval)
	if err != nil {
		return nil, named("integral-interval", err)
	}
	if c.StepCount <= 0 {
		return nil, positive("step-count", c.StepCount)
	}
	if c.Delay <= 0 {
		return nil, positive("delay", c.Delay)
	}
	mode, err := riemann.ParseMode(c.Mode)
	if err != nil {
		return nil, err
	}
	size := fmt.Sprintf("%dx%d", c.Render.Width, c.Render.Height)
	if c.Render.Width < 2*render.MarginLeft || c.Render.Height < 2*render.MarginTop {
		return nil, &riemann.ArgumentError{Name: "size", Value: size, Reason: "is too small to hold a plot"}
	}
	if c.Render.Width > render.MaxSize || c.Render.Height > render.MaxSize {
		return nil, &riemann.ArgumentError{
			Name:   "size",
			Value:  size,
			Reason: fmt.Sprintf("exceeds %d pixels", render.MaxSize),
		}
	}
	theme, err := render.GetTheme(c.Render.Theme)
	if err != nil {
		return nil, &riemann.ArgumentError{Name: "theme", Value: c.Render.Theme, Reason: err.Error()}
	}
	if c.Render.Format != "" {
		if _, err := animation.ForPath("", c.Render.Format); err != nil {
			return nil, err
		}
	}
	if c.Render.Alpha <= 0 || c.Render.Alpha > 1 {
		return nil, &riemann.ArgumentError{
			Name:   "alpha",
			Value:  strconv.FormatFloat(c.Render.Alpha, 'g', -1, 64),
			Reason: "must be in (0, 1]",
		}
	}

	return &Params{
		Function:  c.Function,
		Plot:      plot,
		Integral:  integral,
		StepCount: c.StepCount,
		Mode:      mode,
		Delay:     c.Delay,
		Width:     c.Render.Width,
		Height:    c.Render.Height,
		Theme:     theme,
		Format:    c.Render.Format,
		Alpha:     c.Render.Alpha,
		Dither:    c.Render.Dither,
	}, nil
}

func named(name string, err error) error {
	if ae, ok := err.(*riemann.ArgumentError); ok {
		return &riemann.ArgumentError{Name: name, Value: ae.Value, Reason: ae.Reason}
	}
	return err
}

func positive(name string, v int) error {
	return &riemann.ArgumentError{Name: name, Value: strconv.Itoa(v), Reason: "is not a valid positive integer"}
}
