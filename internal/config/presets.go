package config

import (
	"sort"

	"github.com/san-kum/thermsim/internal/control"
)

var Presets = map[string]control.Gains{
	"default":    {Prop: DefaultKp, Integ: DefaultKi, Deriv: DefaultKd},
	"aggressive": {Prop: 8, Integ: 4, Deriv: 0.5},
	"gentle":     {Prop: 0.5, Integ: 0.2, Deriv: 0},
}

// GetPreset returns the named gain triple and whether it exists.
func GetPreset(name string) (control.Gains, bool) {
	g, ok := Presets[name]
	return g, ok
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
