package config

import "sort"

var Presets = map[string]*Config{
	"cubic": {
		Function: DefaultFunction, PlotInterval: "(0,2)", IntegralInterval: "(0.5,1.5)",
		StepCount: 45, Mode: "left",
	},
	"parabola": {
		Function: "x^2", PlotInterval: "(-0.2,1.2)", IntegralInterval: "(0,1)",
		StepCount: 30, Mode: "right",
	},
	"sine": {
		Function: "sin(x)", PlotInterval: "(0,3.2)", IntegralInterval: "(0,3.14159265358979)",
		StepCount: 40, Mode: "center",
	},
	"exponential": {
		Function: "exp(t)", PlotInterval: "(-1,2)", IntegralInterval: "(t,0,1.5)",
		StepCount: 35, Mode: "left",
	},
	"constant": {
		Function: "2", PlotInterval: "(0,3)", IntegralInterval: "(x,0.5,2.5)",
		StepCount: 10, Mode: "center",
	},
}

// GetPreset returns a copy of the named preset merged over the defaults,
// or nil when there is no such preset.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	cfg.Function = p.Function
	cfg.PlotInterval = p.PlotInterval
	cfg.IntegralInterval = p.IntegralInterval
	cfg.StepCount = p.StepCount
	cfg.Mode = p.Mode
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
