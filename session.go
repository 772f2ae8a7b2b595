package main

import "fmt"

// Session drives one garden through successive harvests the way the
// calculator page does: suggest, harvest in game, report the outcome,
// repeat. The memo cache survives across harvests within one
// parameterization because the state key covers the full plot multiset;
// SetParams and Reset start over with a fresh cache.
type Session struct {
	params Params
	plots  []Plot
	solver *Solver
}

// NewSession starts a session on a parsed garden. The garden is copied;
// later harvests do not touch it.
func NewSession(g *Garden) *Session {
	return &Session{
		params: g.Params,
		plots:  clonePlots(g.Plots),
		solver: NewSolver(g.Params),
	}
}

// Plots returns a copy of the currently active plots.
func (s *Session) Plots() []Plot { return clonePlots(s.plots) }

// Params returns the session's current parameters.
func (s *Session) Params() Params { return s.params }

// Suggest solves the current state.
func (s *Session) Suggest() *SearchResult {
	return s.solver.Solve(s.plots)
}

// Harvest removes the picked plot and applies the growth triggers of the
// observed outcome: the field partner either withered (removed) or
// survived with a double cross-color trigger, and every other-field plot
// of a different color gains one trigger. neighborSurvived reports what
// actually happened in the game; it must be false when the plot has no
// partner.
func (s *Session) Harvest(id PlotID, neighborSurvived bool) error {
	idx := -1
	for i := range s.plots {
		if s.plots[i].PlotID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("harvest: no active plot %s", id)
	}

	pick := s.plots[idx]
	neighbor, others := splitField(s.plots, idx)
	if neighborSurvived && neighbor == nil {
		return fmt.Errorf("harvest: plot %s has no neighbor to survive", id)
	}

	next := crossColorBoost(others, pick.Color, 1)
	if neighborSurvived {
		nb := *neighbor
		if nb.Color != pick.Color {
			nb.Level += 2
		}
		next = append(next, nb)
	}
	s.plots = next
	return nil
}

// SetParams replaces the search parameters. Cached results depend on
// them, so the cache is dropped with the old solver.
func (s *Session) SetParams(p Params) {
	s.params = p
	s.solver = NewSolver(p)
}

// Reset replaces the plot set with a new garden layout and drops the
// cache: results for unrelated configurations have no reason to linger.
func (s *Session) Reset(plots []Plot) {
	s.plots = clonePlots(plots)
	s.solver = NewSolver(s.params)
}
