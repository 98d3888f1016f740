package config

import "sort"

// Presets are ready-made systems covering the classification space: a
// plain ODE, a regular DAE with an algebraic constraint, a singular
// pencil, a non-square system, and a MIMO plant.
var Presets = map[string]*Config{
	"lowpass": {
		Label: "first-order lag",
		A:     [][]float64{{-1}},
		B:     [][]float64{{1}},
		C:     [][]float64{{1}},
		D:     [][]float64{{0}},
		Sweep: SweepConfig{StartExp: -2, EndExp: 2, Points: 200},
	},
	"rlc": {
		Label: "series RLC, capacitor voltage out",
		// states: inductor current, capacitor voltage; L di/dt = -R i - v + u
		E:     [][]float64{{0.1, 0}, {0, 0.001}},
		A:     [][]float64{{-1, -1}, {1, 0}},
		B:     [][]float64{{1}, {0}},
		C:     [][]float64{{0, 1}},
		D:     [][]float64{{0}},
		Sweep: SweepConfig{StartExp: 0, EndExp: 4, Points: 300},
	},
	"constrained": {
		Label: "index-1 DAE with algebraic constraint",
		E:     [][]float64{{1, 0}, {0, 0}},
		A:     [][]float64{{-1, 1}, {0, 1}},
		B:     [][]float64{{1}, {0}},
		C:     [][]float64{{1, 0}},
		D:     [][]float64{{0}},
		Sweep: SweepConfig{StartExp: -2, EndExp: 2, Points: 200},
	},
	"singular": {
		Label: "singular pencil (not regular)",
		E:     [][]float64{{1, 0}, {0, 0}},
		A:     [][]float64{{1, 0}, {0, 0}},
		B:     [][]float64{{1}, {1}},
		C:     [][]float64{{1, 0}},
		D:     [][]float64{{0}},
		Sweep: DefaultSweep(),
	},
	"nonsquare": {
		Label: "two equations, three states (never regular)",
		E:     [][]float64{{1, 0, 0}, {0, 1, 0}},
		A:     [][]float64{{-1, 0, 1}, {0, -2, 0}},
		B:     [][]float64{{1}, {0}},
		C:     [][]float64{{1, 0, 0}},
		D:     [][]float64{{0}},
		Sweep: DefaultSweep(),
	},
	"mimo": {
		Label: "two-input two-output oscillator",
		A:     [][]float64{{0, 1}, {-2, -3}},
		B:     [][]float64{{0, 1}, {1, 0}},
		C:     [][]float64{{1, 0}, {0, 1}},
		D:     [][]float64{{0, 0}, {0, 0}},
		Sweep: SweepConfig{StartExp: -1, EndExp: 2, Points: 250},
	},
}

func GetPreset(name string) *Config {
	return Presets[name]
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
