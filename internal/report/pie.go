package report

import (
	"math"

	"pft/internal/core"
)

// Palette is the fixed ordered color cycle for pie slices. Slice i gets
// Palette[i % len(Palette)].
var Palette = []string{
	"#ef4444", "#f97316", "#f59e0b", "#eab308", "#84cc16",
	"#10b981", "#06b6d4", "#3b82f6", "#6366f1", "#8b5cf6",
}

// startReference puts the first slice boundary at 12 o'clock.
const startReference = -math.Pi / 2

// Slice is the geometry assigned to one category's proportional share.
// Angles are radians; slices are contiguous, starting at -π/2 and
// spanning Fraction·2π each.
type Slice struct {
	Category   string  `json:"category"`
	Cents      int64   `json:"amountCents"`
	Fraction   float64 `json:"fraction"`
	StartAngle float64 `json:"startAngle"`
	EndAngle   float64 `json:"endAngle"`
	ColorIndex int     `json:"colorIndex"`
}

// Color returns the palette color for the slice.
func (s Slice) Color() string {
	return Palette[s.ColorIndex]
}

// PieSlices turns category totals into contiguous pie geometry, largest
// slice first. An empty or all-zero input returns nil: the caller shows
// a "no data" state instead of a degenerate pie.
func PieSlices(totals []core.CategoryAmount) []Slice {
	var sum int64
	for _, t := range totals {
		sum += t.Amount.Cents
	}
	if sum <= 0 {
		return nil
	}

	ranked := Rank(totals)
	slices := make([]Slice, 0, len(ranked))
	start := startReference
	for i, t := range ranked {
		fraction := float64(t.Amount.Cents) / float64(sum)
		end := start + fraction*2*math.Pi
		slices = append(slices, Slice{
			Category:   t.Category,
			Cents:      t.Amount.Cents,
			Fraction:   fraction,
			StartAngle: start,
			EndAngle:   end,
			ColorIndex: i % len(Palette),
		})
		start = end
	}
	// Pin the last boundary to exactly one full turn so accumulated
	// rounding never leaves a gap or an overlap.
	slices[len(slices)-1].EndAngle = startReference + 2*math.Pi
	return slices
}
