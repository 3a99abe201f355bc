package model

// LoadStatistics summarizes a packing run for reporting: totals the
// dashboard layer used to derive from the raw placement list.
type LoadStatistics struct {
	ItemsRequested  int              `json:"items_requested"`
	ItemsPlaced     int              `json:"items_placed"`
	ItemsUnplaced   int              `json:"items_unplaced"`
	TotalWeight     float64          `json:"total_weight"`     // kg, placed items only
	UsedVolume      float64          `json:"used_volume"`      // cubic cm
	ContainerVolume float64          `json:"container_volume"` // cubic cm
	Utilization     float64          `json:"utilization"`      // percent of container volume
	FloorItems      int              `json:"floor_items"`      // placed directly on the floor
	ByCategory      map[Category]int `json:"by_category,omitempty"`
}

// CalculateLoadStatistics computes summary statistics for a result.
func CalculateLoadStatistics(result PackResult, container Container) LoadStatistics {
	stats := LoadStatistics{
		ItemsRequested:  len(result.Placed) + len(result.Unplaced),
		ItemsPlaced:     len(result.Placed),
		ItemsUnplaced:   len(result.Unplaced),
		UsedVolume:      result.UsedVolume,
		ContainerVolume: container.Volume(),
		Utilization:     result.Utilization(container),
		ByCategory:      make(map[Category]int),
	}

	for _, p := range result.Placed {
		stats.TotalWeight += p.Item.Weight
		if p.Position.Y == 0 {
			stats.FloorItems++
		}
		if p.Item.Category != CategoryNone {
			stats.ByCategory[p.Item.Category]++
		}
	}

	if len(stats.ByCategory) == 0 {
		stats.ByCategory = nil
	}
	return stats
}
