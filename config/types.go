package config

// Config is the complete configuration for tracing, rendering and playing a level
type Config struct {
	Metadata Metadata `yaml:"metadata"`
	Level    Level    `yaml:"level"`
	Trace    Trace    `yaml:"trace"`
	Rotation Rotation `yaml:"rotation"`
	Render   Render   `yaml:"render"`
	Log      Log      `yaml:"log"`
}

type Metadata struct {
	Timestamp string `yaml:"timestamp,omitempty"` // YYYY-MM-DD HH:MM:SS in UTC
	GitCommit string `yaml:"git_commit,omitempty"`
}

type Level struct {
	// Level file used when a command is not given one
	Path string `yaml:"path,omitempty"`
}

type Trace struct {
	MaxBounces  int     `yaml:"max_bounces"`
	MaxDistance float64 `yaml:"max_distance"`
}

type Rotation struct {
	Mode string `yaml:"mode"` // single or propagating
}

type Render struct {
	CellSize  float64             `yaml:"cell_size"`         // pixels
	Margin    float64             `yaml:"margin"`            // pixels
	BeamWidth float64             `yaml:"beam_width"`        // pixels
	Falloff   map[float64]float64 `yaml:"falloff,omitempty"` // distance in cells -> brightness
	Palette   Palette             `yaml:"palette"`
}

// Palette overrides the built-in colors of individual elements
type Palette struct {
	Inline   map[string]string `yaml:"inline,omitempty"` // element -> #rrggbb
	FromFile string            `yaml:"from_file,omitempty"`
}

type Log struct {
	Level string `yaml:"level"`
}

// PaletteKeys are the elements a palette may color
var PaletteKeys = []string{"background", "grid", "block", "mirror", "beam", "start", "finish"}

// Default returns the configuration used when no file is given. Falloff and palette are left empty
// so the renderer's own defaults apply.
func Default() *Config {
	return &Config{
		Trace: Trace{
			MaxBounces:  64,
			MaxDistance: 1000,
		},
		Rotation: Rotation{Mode: "single"},
		Render: Render{
			CellSize:  48,
			Margin:    24,
			BeamWidth: 4,
		},
		Log: Log{Level: "info"},
	}
}
