package engine

import (
	"math"
	"sort"

	"github.com/srinath-46/stability-model/internal/model"
)

// orderItems returns the processing order for a load: non-fragile cargo
// first, then volume descending, then weight descending. Volumes within
// volTolerance of each other count as ties so that weight decides.
// Heavy bulky items go in first and settle low, giving later (lighter,
// fragile) items a solid base. The sort is stable, so equal-key items
// keep their input order.
func orderItems(items []model.Item, volTolerance float64) []model.Item {
	ordered := make([]model.Item, len(items))
	copy(ordered, items)

	sort.SliceStable(ordered, func(i, j int) bool {
		a, b := ordered[i], ordered[j]
		if a.Fragile != b.Fragile {
			return !a.Fragile
		}
		va, vb := a.Volume(), b.Volume()
		if math.Abs(va-vb) > volTolerance {
			return va > vb
		}
		return a.Weight > b.Weight
	})

	return ordered
}
