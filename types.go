package main

import "fmt"

// Color of a seed. The garden grows exactly three kinds.
type Color int

const (
	ColorNone Color = iota
	ColorPurple
	ColorBlue
	ColorYellow
)

func parseColor(s string) Color {
	switch s {
	case "purple", "紫":
		return ColorPurple
	case "blue", "蓝":
		return ColorBlue
	case "yellow", "黄":
		return ColorYellow
	}
	return ColorNone
}

func (c Color) String() string {
	switch c {
	case ColorPurple:
		return "紫"
	case ColorBlue:
		return "蓝"
	case ColorYellow:
		return "黄"
	}
	return "?"
}

// Side of a field. Every field has a left and a right plot slot.
type Side int

const (
	SideNone Side = iota
	SideLeft
	SideRight
)

func parseSide(s string) Side {
	switch s {
	case "left", "左":
		return SideLeft
	case "right", "右":
		return SideRight
	}
	return SideNone
}

func sideKey(s Side) string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	}
	return "?"
}

// PlotID identifies a plot by its field and side.
type PlotID struct {
	Field string
	Side  Side
}

func (id PlotID) String() string {
	return id.Field + "/" + sideKey(id.Side)
}

// Plot is one harvestable seed: identity plus its color and received
// growth-trigger count.
type Plot struct {
	PlotID
	Color Color
	Level int
}

// desc is the one-line harvest step shown in the plan output.
func (p Plot) desc() string {
	return fmt.Sprintf("收获 %s %s种子 Lv%d", p.PlotID, p.Color, p.Level)
}

// Params are the game constants a search runs under. Immutable for the
// duration of one solve; cached results depend on them.
type Params struct {
	// SurviveProb is the chance a harvested plot's field partner stays
	// active instead of withering.
	SurviveProb float64
	// TierUp[i] advances a seed from tier i+1 to tier i+2 per trigger.
	// Tier 4 is absorbing.
	TierUp [3]float64
	// TierValue[i] is the sale value of a seed harvested at tier i+1.
	TierValue [4]float64
	// Reference quantities per color; the scarcest color weighs the most.
	RefPurple float64
	RefBlue   float64
	RefYellow float64
}

func (p *Params) refQty(c Color) float64 {
	switch c {
	case ColorPurple:
		return p.RefPurple
	case ColorBlue:
		return p.RefBlue
	case ColorYellow:
		return p.RefYellow
	}
	return 0
}

// Garden is one parsed configuration: parameters plus the active plots.
type Garden struct {
	Params Params
	Plots  []Plot
}

// SearchResult is the outcome of one solve: the maximum expected value,
// the suggested harvest sequence (root to leaf, always following the
// wither branch), and the plot to pick first. BestMove is meaningless
// when HasMove is false (empty garden).
type SearchResult struct {
	MaxEV    float64
	Path     []string
	BestMove PlotID
	HasMove  bool
}

func clonePlots(plots []Plot) []Plot {
	out := make([]Plot, len(plots))
	copy(out, plots)
	return out
}

func fieldCount(plots []Plot) int {
	seen := make(map[string]bool, len(plots))
	for _, p := range plots {
		seen[p.Field] = true
	}
	return len(seen)
}
