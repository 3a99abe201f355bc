// stability-packer — cargo placement CLI
//
// Runs the 3D container-packing engine against a load plan or a cargo
// manifest and reports the resulting layout.
//
// Usage:
//
//	stability-packer --plan van.yaml
//	stability-packer --manifest cargo.csv --width 180 --height 150 --depth 300
//	stability-packer --plan van.yaml --json > layout.json
//
// Build:
//
//	go build -o stability-packer ./cmd/stability-packer
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"github.com/srinath-46/stability-model/internal/config"
	"github.com/srinath-46/stability-model/internal/engine"
	"github.com/srinath-46/stability-model/internal/importer"
	"github.com/srinath-46/stability-model/internal/logging"
	"github.com/srinath-46/stability-model/internal/model"
	"github.com/srinath-46/stability-model/internal/plan"
)

type options struct {
	planPath     string
	manifestPath string
	container    model.Container
	gap          float64
	gapSet       bool
	step         float64
	workers      int
	jsonOut      bool
}

// jsonReport is the machine-readable output shape.
type jsonReport struct {
	Name      string               `json:"name,omitempty"`
	Container model.Container      `json:"container"`
	Result    model.PackResult     `json:"result"`
	Stats     model.LoadStatistics `json:"stats"`
}

func main() {
	var (
		planPath     = pflag.String("plan", "", "load plan YAML file")
		manifestPath = pflag.String("manifest", "", "cargo manifest (CSV or Excel)")
		width        = pflag.Float64("width", 0, "container width (x), required with --manifest")
		height       = pflag.Float64("height", 0, "container height (y), required with --manifest")
		depth        = pflag.Float64("depth", 0, "container depth (z), required with --manifest")
		gap          = pflag.Float64("gap", 0, "spacing between placed items")
		step         = pflag.Float64("step", 0, "fallback grid step")
		workers      = pflag.Int("workers", 0, "fallback scan workers")
		jsonOut      = pflag.Bool("json", false, "print the layout as JSON")
		logLevel     = pflag.String("log-level", "", "log level (debug, info, warn, error)")
		configDir    = pflag.String("config-dir", ".", "directory containing "+config.ConfigName+".yaml")
	)
	pflag.Parse()

	if err := config.Load(*configDir); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}

	level := config.GetString("logLevel")
	if *logLevel != "" {
		level = *logLevel
	}
	log := logging.New(os.Stderr, level)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := options{
		planPath:     *planPath,
		manifestPath: *manifestPath,
		container:    model.Container{Width: *width, Height: *height, Depth: *depth},
		gap:          *gap,
		gapSet:       pflag.CommandLine.Changed("gap"),
		step:         *step,
		workers:      *workers,
		jsonOut:      *jsonOut || config.GetString("output") == "json",
	}

	if err := run(ctx, opts, log); err != nil {
		log.Error().Err(err).Msg("packing failed")
		os.Exit(1)
	}
}

func run(ctx context.Context, opts options, log zerolog.Logger) error {
	name, container, settings, items, err := resolveJob(opts, log)
	if err != nil {
		return err
	}

	packer, err := engine.New(container, settings)
	if err != nil {
		return err
	}

	log.Info().
		Int("items", len(items)).
		Float64("width", container.Width).
		Float64("height", container.Height).
		Float64("depth", container.Depth).
		Msg("packing cargo")

	result, err := packer.Pack(ctx, items, logging.Progress(log))
	if err != nil {
		return err
	}

	if !result.FullyPlaced() {
		log.Warn().
			Int("unplaced", len(result.Unplaced)).
			Msg("some items did not fit")
	}

	if opts.jsonOut {
		report := jsonReport{
			Name:      name,
			Container: container,
			Result:    result,
			Stats:     model.CalculateLoadStatistics(result, container),
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}

	fmt.Print(plan.Summary(name, result, container))
	return nil
}

// resolveJob builds the packing job from a plan file or from a manifest
// plus container flags, then applies flag overrides on the settings.
func resolveJob(opts options, log zerolog.Logger) (string, model.Container, model.PackSettings, []model.Item, error) {
	var (
		name      string
		container model.Container
		settings  = config.PackSettings()
		items     []model.Item
	)

	switch {
	case opts.planPath != "":
		p, err := plan.Load(opts.planPath)
		if err != nil {
			return "", container, settings, nil, err
		}
		name = p.Name
		container = p.Container
		if p.Settings != nil {
			settings = p.PackSettings()
		}

		planItems, warnings, err := p.BuildItems(filepath.Dir(opts.planPath))
		if err != nil {
			return "", container, settings, nil, err
		}
		for _, w := range warnings {
			log.Warn().Msg(w)
		}
		items = planItems

	case opts.manifestPath != "":
		container = opts.container
		name = filepath.Base(opts.manifestPath)

		var result importer.ImportResult
		switch strings.ToLower(filepath.Ext(opts.manifestPath)) {
		case ".xlsx", ".xls":
			result = importer.ImportExcel(opts.manifestPath)
		default:
			result = importer.ImportCSV(opts.manifestPath)
		}
		for _, w := range result.Warnings {
			log.Warn().Msg(w)
		}
		if len(result.Errors) > 0 {
			return "", container, settings, nil, fmt.Errorf("manifest %s: %s",
				opts.manifestPath, strings.Join(result.Errors, "; "))
		}
		items = result.Items

	default:
		return "", container, settings, nil, fmt.Errorf("either --plan or --manifest is required")
	}

	if opts.gapSet {
		settings.Gap = opts.gap
	}
	if opts.step > 0 {
		settings.FallbackStep = opts.step
	}
	if opts.workers > 0 {
		settings.FallbackWorkers = opts.workers
	}

	return name, container, settings, items, nil
}
