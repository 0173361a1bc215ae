package config

var Presets = map[string]*Config{
	"circular": {
		GM: FourPiSquared, Dt: 0.001, Tmax: 2.0, Workers: 1,
		Bodies: []BodyConfig{
			{Mass: 0.1, Circular: true, Radius: 1.0},
		},
	},
	"ellipse": {
		// Sub-circular tangential speed at 1 AU gives an ellipse with
		// aphelion at the starting point.
		GM: FourPiSquared, Dt: 0.0005, Tmax: 3.0, Workers: 1,
		Bodies: []BodyConfig{
			{Mass: 0.1, Pos: [2]float64{1.0, 0.0}, Vel: [2]float64{0.0, 5.0}},
		},
	},
	"mini-solar": {
		GM: FourPiSquared, Dt: 0.0005, Tmax: 5.0, Workers: 4,
		Bodies: []BodyConfig{
			{Mass: 0.05, Circular: true, Radius: 0.4},
			{Mass: 0.08, Circular: true, Radius: 0.7, Phase: 1.5},
			{Mass: 0.10, Circular: true, Radius: 1.0, Phase: 3.0},
			{Mass: 0.12, Circular: true, Radius: 1.6, Phase: 4.5},
		},
	},
	"fast-close": {
		// Tight orbit stressing the timestep: period 0.1 year at 0.215 AU.
		GM: FourPiSquared, Dt: 0.0001, Tmax: 0.5, Workers: 1,
		Bodies: []BodyConfig{
			{Mass: 0.02, Circular: true, Radius: 0.215},
		},
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
	return names
}
