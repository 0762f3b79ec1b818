package main

import (
	"fmt"
	"image"
	"os"
	"strings"

	"github.com/kpango/glg"
	"github.com/spf13/cobra"

	"github.com/san-kum/riemann/internal/animation"
	"github.com/san-kum/riemann/internal/config"
	"github.com/san-kum/riemann/internal/function"
	"github.com/san-kum/riemann/internal/render"
	"github.com/san-kum/riemann/internal/report"
	"github.com/san-kum/riemann/internal/riemann"
)

type options struct {
	flags      *config.Config
	configFile string
	preset     string
	chart      bool
	export     string
	verbose    bool
}

// main runs the root command and exits with status 1 when it fails.
func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{flags: config.DefaultConfig()}

	cmd := &cobra.Command{
		Use:   "generate_riemann_animation <output_file>",
		Short: "render an animated Riemann sum approximation of a definite integral",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, args[0])
		},
		SilenceUsage: true,
	}

	f := opts.flags
	cmd.Flags().StringVar(&f.Function, "function", f.Function,
		fmt.Sprintf("function to integrate; built-ins: %s", strings.Join(function.Builtins(), " ")))
	cmd.Flags().Var(&intervalValue{raw: &f.PlotInterval, parse: riemann.ParseInterval}, "plot-interval", "x range of the plot")
	cmd.Flags().Var(&intervalValue{raw: &f.IntegralInterval, parse: riemann.ParseBounds}, "integral-interval", "integration bounds, optionally (var,lo,hi)")
	cmd.Flags().Var(&positiveValue{n: &f.StepCount}, "step-count", "maximum number of rectangles")
	cmd.Flags().Var(&modeValue{raw: &f.Mode}, "mode", "sample point: left, right or center")
	cmd.Flags().Var(&positiveValue{n: &f.Delay}, "delay", "frame delay in 1/100 s")
	cmd.Flags().IntVar(&f.Render.Width, "width", f.Render.Width, "image width in pixels")
	cmd.Flags().IntVar(&f.Render.Height, "height", f.Render.Height, "image height in pixels")
	cmd.Flags().StringVar(&f.Render.Theme, "theme", f.Render.Theme, fmt.Sprintf("color theme %v", render.ListThemes()))
	cmd.Flags().StringVar(&f.Render.Format, "format", f.Render.Format, fmt.Sprintf("output format %v (default: by extension)", animation.Formats()))
	cmd.Flags().BoolVar(&f.Render.Dither, "dither", f.Render.Dither, "dither gif frames")

	cmd.Flags().StringVar(&opts.configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&opts.preset, "preset", "", fmt.Sprintf("use preset configuration %v", config.ListPresets()))
	cmd.Flags().BoolVar(&opts.chart, "chart", false, "print a convergence chart")
	cmd.Flags().StringVar(&opts.export, "export", "", "export convergence data (.json or .csv)")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "debug logging")

	return cmd
}

// resolve layers defaults, preset, config file and explicitly set flags,
// in that order.
func resolve(cmd *cobra.Command, opts *options) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if opts.preset != "" {
		cfg = config.GetPreset(opts.preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", opts.preset, config.ListPresets())
		}
	}

	if opts.configFile != "" {
		loaded, err := config.LoadOver(opts.configFile, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	f := opts.flags
	overrides := map[string]func(){
		"function":          func() { cfg.Function = f.Function },
		"plot-interval":     func() { cfg.PlotInterval = f.PlotInterval },
		"integral-interval": func() { cfg.IntegralInterval = f.IntegralInterval },
		"step-count":        func() { cfg.StepCount = f.StepCount },
		"mode":              func() { cfg.Mode = f.Mode },
		"delay":             func() { cfg.Delay = f.Delay },
		"width":             func() { cfg.Render.Width = f.Render.Width },
		"height":            func() { cfg.Render.Height = f.Render.Height },
		"theme":             func() { cfg.Render.Theme = f.Render.Theme },
		"format":            func() { cfg.Render.Format = f.Render.Format },
		"dither":            func() { cfg.Render.Dither = f.Render.Dither },
	}
	for name, apply := range overrides {
		if cmd.Flags().Changed(name) {
			apply()
		}
	}
	return cfg, nil
}

func run(cmd *cobra.Command, opts *options, output string) error {
	level := glg.NONE
	if opts.verbose {
		level = glg.STD
	}
	glg.Get().SetLevelMode(glg.DEBG, level)

	cfg, err := resolve(cmd, opts)
	if err != nil {
		return err
	}
	params, err := cfg.Validate()
	if err != nil {
		return err
	}
	if opts.export != "" {
		if err := report.CheckExportPath(opts.export); err != nil {
			return err
		}
	}

	fn, err := function.Parse(params.Function)
	if err != nil {
		return err
	}

	writer, err := animation.ForPath(output, params.Format)
	if err != nil {
		return err
	}
	if g, ok := writer.(*animation.GIF); ok {
		g.Dither = params.Dither
	}

	anim, err := riemann.Generate(fn, params.Plot, params.Integral, params.StepCount, params.Mode,
		riemann.WithAlpha(params.Alpha), riemann.WithCurveSamples(params.Width))
	if err != nil {
		return err
	}
	glg.Debugf("integrating over %s, actual area %s", anim.Variable, anim.ActualText())

	vp := render.NewViewport(params.Width, params.Height, anim.Bounds)
	frames := make([]image.Image, len(anim.Frames))
	for i, frame := range anim.Frames {
		frames[i] = render.Render(vp, params.Theme, frame.Layers...)
		glg.Debugf("frame %d/%d: approx %.6f", frame.Step, len(frames), frame.Approx)
	}

	glg.Debugf("encoding %d frames as %s", len(frames), writer.Name())
	if err := writer.Write(output, frames, params.Delay); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}
	glg.Infof("wrote %s", output)

	fmt.Fprintln(cmd.OutOrStdout(), report.Summary(anim, output))

	if opts.chart {
		fmt.Fprintln(cmd.OutOrStdout(), report.Chart(report.Convergence(anim), report.TerminalWidth()))
	}

	if opts.export != "" {
		if err := report.Export(opts.export, anim); err != nil {
			return err
		}
		glg.Infof("exported convergence data to %s", opts.export)
	}

	return nil
}
