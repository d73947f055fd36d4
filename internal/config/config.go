// Package config handles sketch tool configuration loading and management.
package config

// Config holds all tool settings.
type Config struct {
	Sketch  SketchConfig  `yaml:"sketch"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

// SketchConfig holds drawing settings.
type SketchConfig struct {
	Width          float64 `yaml:"width"`
	Height         float64 `yaml:"height"`
	HighlightColor string  `yaml:"highlight_color"` // Fill for walls facing the viewer
	WallColor      string  `yaml:"wall_color"`      // Fill for the remaining walls
	View           string  `yaml:"view"`            // Default view direction
}

// OutputConfig holds output location settings.
type OutputConfig struct {
	Dir    string `yaml:"dir"`
	Format string `yaml:"format"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Sketch: SketchConfig{
			Width:          800,
			Height:         600,
			HighlightColor: "#61A5D8",
			WallColor:      "#000000",
			View:           "back",
		},
		Output: OutputConfig{
			Dir:    "output",
			Format: "svg",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
