package config

import "flag"

var (
	flagConfig = flag.String("config", "", "Path to config file")
	flagDebug  = flag.Bool("debug", false, "Enable debug logging")
	flagView   = flag.String("view", "", "View direction (back, front, left, right)")
	flagFormat = flag.String("format", "", "Output format (svg, png, normals-svg)")
	flagOut    = flag.String("out", "", "Output directory")
	flagWidth  = flag.Float64("width", 0, "Sketch width in pixels")
	flagHeight = flag.Float64("height", 0, "Sketch height in pixels")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// ViewOverride returns the view direction passed via --view flag, or an
// empty string when the flag was not given.
func ViewOverride() string {
	return *flagView
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagView != "" {
		cfg.Sketch.View = *flagView
	}
	if *flagFormat != "" {
		cfg.Output.Format = *flagFormat
	}
	if *flagOut != "" {
		cfg.Output.Dir = *flagOut
	}
	if *flagWidth > 0 {
		cfg.Sketch.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Sketch.Height = *flagHeight
	}
}
