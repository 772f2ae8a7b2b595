package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fullGarden = `{
  "params": {
    "surviveProb": 0.5,
    "tierUp": [0.4, 0.3, 0.2],
    "tierValue": [10, 25, 60, 150],
    "refQty": {"purple": 120, "blue": 90, "yellow": 60}
  },
  "fields": [
    {"id": "f1",
     "left":  {"color": "purple", "level": 0},
     "right": {"color": "blue",   "level": 0}},
    {"id": "f2",
     "left":  {"color": "yellow", "level": 1},
     "right": {"color": "purple", "level": 0}},
    {"id": "f3",
     "left":  {"color": "blue",   "level": 2}}
  ]
}`

// verifySuggestion runs the sanity checklist against one solve result.
func verifySuggestion(t *testing.T, plots []Plot, res *SearchResult) {
	t.Helper()

	require.True(t, res.HasMove, "non-empty garden must yield a move")
	found := false
	for _, p := range plots {
		if p.PlotID == res.BestMove {
			found = true
			break
		}
	}
	assert.True(t, found, "best move %s must be an active plot", res.BestMove)

	assert.Equal(t, res.Path[0], mustFind(plots, res.BestMove).desc(),
		"first path step describes the best move at its current level")
	assert.LessOrEqual(t, len(res.Path), len(plots),
		"the wither-branch continuation cannot harvest more plots than exist")
	assert.GreaterOrEqual(t, res.MaxEV, 0.0, "non-negative tier values give non-negative EV")
}

func mustFind(plots []Plot, id PlotID) Plot {
	for _, p := range plots {
		if p.PlotID == id {
			return p
		}
	}
	return Plot{}
}

func TestFullGarden_PlayToExhaustion(t *testing.T) {
	g, err := ParseGarden(fullGarden)
	require.NoError(t, err)
	require.Len(t, g.Plots, 5)

	sess := NewSession(g)

	// Optimistic playthrough: every partner survives.
	steps := 0
	for len(sess.Plots()) > 0 {
		plots := sess.Plots()
		res := sess.Suggest()
		verifySuggestion(t, plots, res)

		picked := mustFind(plots, res.BestMove)
		hasNeighbor := false
		for _, p := range plots {
			if p.PlotID != picked.PlotID && p.Field == picked.Field {
				hasNeighbor = true
				break
			}
		}
		require.NoError(t, sess.Harvest(res.BestMove, hasNeighbor))

		steps++
		require.LessOrEqual(t, steps, 5, "session must terminate")
	}
	assert.Equal(t, 5, steps, "with every partner surviving, all plots get harvested")
}

func TestFullGarden_DeterministicAcrossSessions(t *testing.T) {
	g, err := ParseGarden(fullGarden)
	require.NoError(t, err)

	a := NewSession(g).Suggest()
	b := NewSession(g).Suggest()
	assert.Equal(t, a, b, "independent caches must reach identical results")
}

func TestFullGarden_CacheCollapsesStates(t *testing.T) {
	g, err := ParseGarden(fullGarden)
	require.NoError(t, err)

	s := NewSolver(g.Params)
	res := s.Solve(g.Plots)
	require.True(t, res.HasMove)

	// 5 plots generate far more orderings (5! per branch pattern) than
	// distinct states; memoization keeps the table small.
	states := s.CachedStates()
	assert.Greater(t, states, 5)
	assert.Less(t, states, 2000)
}
