package config

// Presets are named ready-to-run configurations selectable from the CLI.
var Presets = map[string]*Config{
	"smooth": {
		FPS: 60, Scheme: "rainbow",
		Luminosity: DefaultLuminosity, Dither: true, Colorize: true,
	},
	"cinematic": {
		FPS: 24, Scheme: "fire",
		Luminosity: DefaultLuminosity, Dither: true, Colorize: true,
	},
	"retro": {
		FPS: 15, Scheme: "mono",
		Luminosity: 0.5, Dither: false, Colorize: false,
	},
	"print": {
		FPS: DefaultFPS, Scheme: "mono",
		Luminosity: DefaultLuminosity, Dither: true, Inverted: true, Colorize: false,
	},
}

// GetPreset returns a copy of the named preset, or nil when unknown.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	c := *cfg
	return &c
}

// ListPresets returns the preset names, sorted.
func ListPresets() []string {
	return []string{"cinematic", "print", "retro", "smooth"}
}
