package main

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
)

// ── Solver ──────────────────────────────────────────────────────────

// Solver owns the parameters and the memo cache for one garden
// configuration. Cached results are parameter-dependent while the state
// key is not, so a Solver must not be reused across different Params:
// call ClearCache (or build a fresh Solver) whenever they change.
// Concurrent Solve calls on one Solver are safe; the cache serializes
// access and duplicate computation of a key is idempotent.
type Solver struct {
	params Params
	cache  *resultCache
}

// NewSolver creates a solver with an empty cache.
func NewSolver(params Params) *Solver {
	return &Solver{params: params, cache: newResultCache()}
}

// ClearCache drops every memoized result.
func (s *Solver) ClearCache() { s.cache.clear() }

// CachedStates reports how many distinct states have been solved.
func (s *Solver) CachedStates() int { return s.cache.size() }

// ── Canonical state key ─────────────────────────────────────────────

// encodeState produces the order-independent identity of a plot set:
// plots sorted by (field, side), tuples joined with '|' and ';'. Field
// IDs must not contain either delimiter (parse.go rejects them), which
// keeps the encoding exactly injective up to permutation.
func encodeState(plots []Plot) string {
	sorted := clonePlots(plots)
	slices.SortFunc(sorted, func(a, b Plot) int {
		if c := cmp.Compare(a.Field, b.Field); c != 0 {
			return c
		}
		return cmp.Compare(a.Side, b.Side)
	})
	var b strings.Builder
	for i, p := range sorted {
		if i > 0 {
			b.WriteByte(';')
		}
		fmt.Fprintf(&b, "%s|%d|%d|%d", p.Field, p.Side, p.Color, p.Level)
	}
	return b.String()
}

// ── State transitions ───────────────────────────────────────────────

// crossColorBoost returns a copy of plots where every seed of a color
// different from the harvested one gains inc growth triggers. Same-color
// seeds are unaffected.
func crossColorBoost(plots []Plot, harvested Color, inc int) []Plot {
	out := make([]Plot, len(plots))
	for i, p := range plots {
		if p.Color != harvested {
			p.Level += inc
		}
		out[i] = p
	}
	return out
}

// splitField partitions plots around index idx: the at-most-one partner
// sharing its field, and every plot from other fields.
func splitField(plots []Plot, idx int) (neighbor *Plot, others []Plot) {
	others = make([]Plot, 0, len(plots)-1)
	for i := range plots {
		if i == idx {
			continue
		}
		if plots[i].Field == plots[idx].Field {
			nb := plots[i]
			neighbor = &nb
			continue
		}
		others = append(others, plots[i])
	}
	return neighbor, others
}

// ── Search ──────────────────────────────────────────────────────────

// Solve returns the optimal harvest plan for the given plots. The input
// is never mutated; every recursive step builds smaller plot lists. For
// each candidate pick the expected value is
//
//	gain + (1-B)·EV(neighbor withers) + B·EV(neighbor survives)
//
// where gain is the color-weighted expected seed value, the wither
// branch drops the field partner and bumps every cross-color plot by
// one trigger, and the survive branch keeps the partner with a double
// trigger instead. A plot without a partner transitions
// deterministically. Ties resolve to the first plot in input order
// (strict > comparison). The returned result may come from the memo
// cache and must be treated as read-only.
func (s *Solver) Solve(plots []Plot) *SearchResult {
	if len(plots) == 0 {
		return &SearchResult{}
	}
	key := encodeState(plots)
	if r, ok := s.cache.get(key); ok {
		return r
	}

	var best *SearchResult
	for i := range plots {
		pick := plots[i]
		gain := colorMultiplier(pick.Color, &s.params) * expectedSeedValue(pick.Level, &s.params)

		neighbor, others := splitField(plots, i)

		// Wither branch: the partner (if any) is gone.
		resA := s.Solve(crossColorBoost(others, pick.Color, 1))

		total := gain
		if neighbor == nil {
			total += resA.MaxEV
		} else {
			nb := *neighbor
			if nb.Color != pick.Color {
				nb.Level += 2
			}
			stateB := append(crossColorBoost(others, pick.Color, 1), nb)
			resB := s.Solve(stateB)
			b := s.params.SurviveProb
			total += (1-b)*resA.MaxEV + b*resB.MaxEV
		}

		if best == nil || total > best.MaxEV {
			// The displayed continuation always follows the wither
			// branch; the real outcome is fed back in by the player.
			path := make([]string, 0, len(resA.Path)+1)
			path = append(path, pick.desc())
			path = append(path, resA.Path...)
			best = &SearchResult{
				MaxEV:    total,
				Path:     path,
				BestMove: pick.PlotID,
				HasMove:  true,
			}
		}
	}

	s.cache.put(key, best)
	return best
}
