package slide

import (
	"sort"

	"github.com/vvka-141/bifslide/pkg/bifslide"
)

// SortLevels orders levels by width, widest first, and returns their
// directory indices. Levels of equal width keep their encounter order.
func SortLevels(levels []bifslide.PyramidLevel) []int {
	sorted := append([]bifslide.PyramidLevel(nil), levels...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Width > sorted[j].Width
	})

	order := make([]int, len(sorted))
	for i, l := range sorted {
		order[i] = l.Directory
	}
	return order
}
