// Package plan reads and writes declarative load plans: a container, the
// engine tunables, and the cargo to place, either inline or referenced
// from a manifest file.
package plan

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/srinath-46/stability-model/internal/importer"
	"github.com/srinath-46/stability-model/internal/model"
)

// Plan describes one packing job.
type Plan struct {
	Name      string              `yaml:"name,omitempty"`
	Container model.Container     `yaml:"container"`
	Settings  *model.PackSettings `yaml:"settings,omitempty"`

	// Manifest optionally points at a CSV or Excel cargo manifest,
	// resolved relative to the plan file. Inline items are appended
	// after manifest items.
	Manifest string `yaml:"manifest,omitempty"`
	Items    []Item `yaml:"items,omitempty"`
}

// Item is one cargo line in a plan. Quantity expands into that many
// individual items.
type Item struct {
	Label    string  `yaml:"label"`
	Length   float64 `yaml:"length"`
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	Weight   float64 `yaml:"weight"`
	Quantity int     `yaml:"quantity,omitempty"`
	Fragile  bool    `yaml:"fragile,omitempty"`
	Category string  `yaml:"category,omitempty"`
	Color    string  `yaml:"color,omitempty"`
}

// Load reads a plan from a YAML file.
func Load(path string) (Plan, error) {
	var p Plan
	data, err := os.ReadFile(path)
	if err != nil {
		return p, err
	}
	if err := yaml.Unmarshal(data, &p); err != nil {
		return p, fmt.Errorf("parse plan %s: %w", path, err)
	}
	if err := p.Validate(); err != nil {
		return p, err
	}
	return p, nil
}

// Save writes a plan to a YAML file, creating parent directories.
func Save(path string, p Plan) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := yaml.Marshal(p)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks the plan's own structure. Item-level contract
// violations are left to the engine, which rejects the batch.
func (p Plan) Validate() error {
	if err := p.Container.Validate(); err != nil {
		return err
	}
	if p.Manifest == "" && len(p.Items) == 0 {
		return fmt.Errorf("plan has no manifest and no inline items")
	}
	return nil
}

// PackSettings returns the plan's settings normalized, or the defaults
// when the plan does not override them.
func (p Plan) PackSettings() model.PackSettings {
	if p.Settings == nil {
		return model.DefaultPackSettings()
	}
	return p.Settings.Normalize()
}

// BuildItems resolves the plan into the item list for the engine:
// manifest items first (if any), then inline items with quantities
// expanded. baseDir anchors a relative manifest path, normally the
// directory of the plan file.
func (p Plan) BuildItems(baseDir string) ([]model.Item, []string, error) {
	var items []model.Item
	var warnings []string

	if p.Manifest != "" {
		path := p.Manifest
		if !filepath.IsAbs(path) {
			path = filepath.Join(baseDir, path)
		}

		var result importer.ImportResult
		switch strings.ToLower(filepath.Ext(path)) {
		case ".xlsx", ".xls":
			result = importer.ImportExcel(path)
		default:
			result = importer.ImportCSV(path)
		}
		if len(result.Errors) > 0 {
			return nil, result.Warnings, fmt.Errorf("manifest %s: %s", p.Manifest, strings.Join(result.Errors, "; "))
		}
		items = append(items, result.Items...)
		warnings = append(warnings, result.Warnings...)
	}

	for _, line := range p.Items {
		qty := line.Quantity
		if qty < 1 {
			qty = 1
		}
		for n := 0; n < qty; n++ {
			item := model.NewItem(line.Label, line.Length, line.Width, line.Height, line.Weight)
			item.Fragile = line.Fragile
			item.Category = model.Category(line.Category)
			item.Color = line.Color
			if item.Category == model.CategoryFragile {
				item.Fragile = true
			}
			items = append(items, item)
		}
	}

	return items, warnings, nil
}
