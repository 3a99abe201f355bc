package plan

import (
	"fmt"
	"strings"

	"github.com/srinath-46/stability-model/internal/model"
)

// Summary renders a plain-text load report for terminal output: the
// "N/M items loaded" line the caller-facing messaging is built from,
// followed by the placement table and any cargo left behind.
func Summary(name string, result model.PackResult, container model.Container) string {
	stats := model.CalculateLoadStatistics(result, container)

	var b strings.Builder
	if name == "" {
		name = "load plan"
	}
	fmt.Fprintf(&b, "%s: %d/%d items loaded, %.1f%% of container volume used\n",
		name, stats.ItemsPlaced, stats.ItemsRequested, stats.Utilization)
	fmt.Fprintf(&b, "container %.0fx%.0fx%.0f, total cargo weight %.1f kg\n",
		container.Width, container.Height, container.Depth, stats.TotalWeight)

	if len(result.Placed) > 0 {
		b.WriteString("\nplaced:\n")
		for i, p := range result.Placed {
			fmt.Fprintf(&b, "  %2d. %-20s at (%.1f, %.1f, %.1f) as %.0fx%.0fx%.0f stability %.2f\n",
				i+1, p.Item.Label, p.Position.X, p.Position.Y, p.Position.Z,
				p.Length, p.Height, p.Width, p.Stability)
		}
	}

	if len(result.Unplaced) > 0 {
		b.WriteString("\nnot placed:\n")
		for _, item := range result.Unplaced {
			fmt.Fprintf(&b, "  - %s (%.0fx%.0fx%.0f, %.1f kg)\n",
				item.Label, item.Dimensions.Length, item.Dimensions.Width, item.Dimensions.Height, item.Weight)
		}
	}

	return b.String()
}
