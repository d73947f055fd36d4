// sketchtool is a CLI utility for classifying and sketching floor plan walls.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/propdocs/floorsketch/internal/config"
	"github.com/propdocs/floorsketch/internal/logger"
	"github.com/propdocs/floorsketch/internal/render"
	"github.com/propdocs/floorsketch/pkg/floorplan"
	"github.com/propdocs/floorsketch/pkg/walldata"
)

func main() {
	// Parse CLI flags first
	flag.Usage = printUsage
	config.ParseFlags()

	if flag.NArg() < 1 {
		printUsage()
		os.Exit(1)
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	command := flag.Arg(0)
	args := flag.Args()[1:]

	switch command {
	case "info":
		cmdInfo(args)
	case "classify":
		cmdClassify(cfg, args)
	case "render":
		cmdRender(cfg, args)
	case "init":
		cmdInit(cfg)
	case "help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`sketchtool - floor plan wall visibility and sketch utility

Usage:
  sketchtool [options] <command> [args]

Commands:
  info <walls.json>       Show floor plan summary (walls, bounds, outline)
  classify <walls.json>   Print visible wall indices as JSON
  render <walls.json>     Render sketch files into the output directory
  init                    Write a starter config file
  help                    Show this help

Options:
  -config string   Path to config file
  -view string     View direction: back, front, left, right
  -format string   Output format: svg, png, normals-svg
  -out string      Output directory
  -width float     Sketch width in pixels
  -height float    Sketch height in pixels
  -debug           Enable debug logging

Examples:
  sketchtool info floorplan.json
  sketchtool -view front classify floorplan.json
  sketchtool -format png -out sketches render floorplan.json
  sketchtool -view left render floorplan.json`)
}

func cmdInfo(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: sketchtool info <walls.json>")
		os.Exit(1)
	}

	walls, err := walldata.ParseFile(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("File:  %s\n", args[0])
	fmt.Printf("Walls: %d\n", len(walls))

	if min, max, ok := floorplan.BoundingBox(walls); ok {
		fmt.Printf("Bounds: (%.1f, %.1f) - (%.1f, %.1f)\n", min.X, min.Y, max.X, max.Y)
	}

	for i, w := range walls {
		center := w.Center()
		seg, _ := w.Centerline()
		logger.Debug("wall",
			zap.Int("index", i),
			zap.Float64("center_x", center.X),
			zap.Float64("center_y", center.Y),
			zap.Float64("length", seg.Length()))
	}

	outline, err := floorplan.BuildOutline(walls)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Outline:   %d vertices\n", len(outline.Vertices))
	fmt.Printf("Fallbacks: %d\n", outline.Fallbacks)

	fmt.Println()
	fmt.Println("Visible walls by view:")
	for _, dir := range floorplan.Directions() {
		visible, err := floorplan.VisibleIndices(walls, dir)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("  %-6s %d\n", dir, len(visible))
	}
}

func cmdClassify(cfg *config.Config, args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: sketchtool classify <walls.json>")
		os.Exit(1)
	}

	dir, err := floorplan.ParseViewDirection(cfg.Sketch.View)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	walls, err := walldata.ParseFile(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	visible, err := floorplan.VisibleIndices(walls, dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	indices := make([]int, 0, len(visible))
	for i := range visible {
		indices = append(indices, i)
	}
	sort.Ints(indices)

	logger.Debug("classified walls",
		zap.String("view", dir.String()),
		zap.Int("total", len(walls)),
		zap.Int("visible", len(indices)))

	// Log output goes to stderr, so stdout stays machine-readable.
	out, err := json.Marshal(struct {
		View    string `json:"view"`
		Visible []int  `json:"visible"`
	}{View: dir.String(), Visible: indices})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(out))
}

func cmdRender(cfg *config.Config, args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: sketchtool render <walls.json>")
		os.Exit(1)
	}

	format, err := render.ParseFormat(cfg.Output.Format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	walls, err := walldata.ParseFile(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Without an explicit -view, render every direction.
	dirs := floorplan.Directions()
	if config.ViewOverride() != "" {
		dir, err := floorplan.ParseViewDirection(cfg.Sketch.View)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		dirs = []floorplan.ViewDirection{dir}
	}

	r, err := render.New(format, render.Options{
		Width:          cfg.Sketch.Width,
		Height:         cfg.Sketch.Height,
		HighlightColor: cfg.Sketch.HighlightColor,
		WallColor:      cfg.Sketch.WallColor,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := os.MkdirAll(cfg.Output.Dir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating directory: %v\n", err)
		os.Exit(1)
	}

	base := strings.TrimSuffix(filepath.Base(args[0]), filepath.Ext(args[0]))
	for _, dir := range dirs {
		data, err := r.Render(walls, dir)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error rendering %s view: %v\n", dir, err)
			os.Exit(1)
		}

		outputPath := filepath.Join(cfg.Output.Dir, fmt.Sprintf("%s_%s.%s", base, dir, r.Extension()))
		if err := os.WriteFile(outputPath, data, 0644); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing file: %v\n", err)
			os.Exit(1)
		}

		logger.Debug("sketch written",
			zap.String("path", outputPath),
			zap.Int("bytes", len(data)))
		fmt.Printf("Rendered: %s (%d bytes)\n", outputPath, len(data))
	}
}

func cmdInit(cfg *config.Config) {
	path := config.ConfigPath()
	explicit := path != ""
	if !explicit {
		path = filepath.Join(config.ConfigDir(), "config.yaml")
	}

	if _, err := os.Stat(path); err == nil {
		fmt.Fprintf(os.Stderr, "Config file already exists: %s\n", path)
		os.Exit(1)
	}

	var err error
	if explicit {
		err = cfg.SaveTo(path)
	} else {
		err = cfg.Save()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Wrote config: %s\n", path)
}
