package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/tidwall/gjson"
)

// LoadGarden reads and validates a garden document from disk.
func LoadGarden(path string) (*Garden, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read garden: %w", err)
	}
	return ParseGarden(string(data))
}

// ParseGarden validates and decodes one garden JSON document. The core
// assumes well-formed input, so everything the search would choke on is
// rejected here: unknown colors, negative levels, duplicate plots, and
// field IDs containing state-key delimiters.
func ParseGarden(doc string) (*Garden, error) {
	if !gjson.Valid(doc) {
		return nil, fmt.Errorf("garden: invalid JSON")
	}
	root := gjson.Parse(doc)

	g := &Garden{Params: DefaultParams()}
	if p := root.Get("params"); p.Exists() {
		if err := parseParams(p, &g.Params); err != nil {
			return nil, err
		}
	}

	seen := make(map[PlotID]bool)
	var ferr error
	root.Get("fields").ForEach(func(_, field gjson.Result) bool {
		id := field.Get("id").String()
		if id == "" {
			ferr = fmt.Errorf("garden: field missing id")
			return false
		}
		if strings.ContainsAny(id, "|;") {
			ferr = fmt.Errorf("garden: field %q: id must not contain '|' or ';'", id)
			return false
		}
		for _, side := range []Side{SideLeft, SideRight} {
			node := field.Get(sideKey(side))
			if !node.Exists() {
				continue // plot already harvested or never planted
			}
			plot, err := parsePlot(id, side, node)
			if err != nil {
				ferr = err
				return false
			}
			if seen[plot.PlotID] {
				ferr = fmt.Errorf("garden: duplicate plot %s", plot.PlotID)
				return false
			}
			seen[plot.PlotID] = true
			g.Plots = append(g.Plots, plot)
		}
		return true
	})
	if ferr != nil {
		return nil, ferr
	}
	return g, nil
}

func parsePlot(fieldID string, side Side, node gjson.Result) (Plot, error) {
	plot := Plot{PlotID: PlotID{Field: fieldID, Side: side}}
	plot.Color = parseColor(node.Get("color").String())
	if plot.Color == ColorNone {
		return plot, fmt.Errorf("garden: plot %s: unknown color %q", plot.PlotID, node.Get("color").String())
	}
	plot.Level = int(node.Get("level").Int())
	if plot.Level < 0 {
		return plot, fmt.Errorf("garden: plot %s: negative level %d", plot.PlotID, plot.Level)
	}
	return plot, nil
}

func parseParams(node gjson.Result, p *Params) error {
	if v := node.Get("surviveProb"); v.Exists() {
		p.SurviveProb = v.Float()
		if p.SurviveProb < 0 || p.SurviveProb > 1 {
			return fmt.Errorf("params: surviveProb %v outside [0,1]", p.SurviveProb)
		}
	}
	if v := node.Get("tierUp"); v.Exists() {
		arr := v.Array()
		if len(arr) != 3 {
			return fmt.Errorf("params: tierUp needs 3 probabilities, got %d", len(arr))
		}
		for i, e := range arr {
			p.TierUp[i] = e.Float()
			if p.TierUp[i] < 0 || p.TierUp[i] > 1 {
				return fmt.Errorf("params: tierUp[%d] %v outside [0,1]", i, p.TierUp[i])
			}
		}
	}
	if v := node.Get("tierValue"); v.Exists() {
		arr := v.Array()
		if len(arr) != 4 {
			return fmt.Errorf("params: tierValue needs 4 values, got %d", len(arr))
		}
		for i, e := range arr {
			p.TierValue[i] = e.Float()
		}
	}
	if v := node.Get("refQty"); v.Exists() {
		// Non-positive quantities are allowed: that color simply
		// contributes nothing.
		if q := v.Get("purple"); q.Exists() {
			p.RefPurple = q.Float()
		}
		if q := v.Get("blue"); q.Exists() {
			p.RefBlue = q.Float()
		}
		if q := v.Get("yellow"); q.Exists() {
			p.RefYellow = q.Float()
		}
	}
	return nil
}
