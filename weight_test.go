package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColorMultiplier_EqualQuantities(t *testing.T) {
	p := DefaultParams()
	p.RefPurple, p.RefBlue, p.RefYellow = 100, 100, 100

	for _, c := range []Color{ColorPurple, ColorBlue, ColorYellow} {
		assert.Equal(t, 1.0, colorMultiplier(c, &p), "color %v", c)
	}
}

func TestColorMultiplier_ScarcestWeighsMost(t *testing.T) {
	p := DefaultParams() // purple 120, blue 90, yellow 60
	mp := colorMultiplier(ColorPurple, &p)
	mb := colorMultiplier(ColorBlue, &p)
	my := colorMultiplier(ColorYellow, &p)

	assert.Equal(t, 1.0, mp, "most plentiful color is the baseline")
	assert.Greater(t, mb, mp)
	assert.Greater(t, my, mb)
	assert.Equal(t, 2.0, my)
}

func TestColorMultiplier_ScaleInvariant(t *testing.T) {
	p := DefaultParams()
	scaled := p
	scaled.RefPurple *= 2.5
	scaled.RefBlue *= 2.5
	scaled.RefYellow *= 2.5

	for _, c := range []Color{ColorPurple, ColorBlue, ColorYellow} {
		assert.Equal(t, colorMultiplier(c, &p), colorMultiplier(c, &scaled), "color %v", c)
	}
}

func TestColorMultiplier_NonPositiveQuantity(t *testing.T) {
	p := DefaultParams()
	p.RefBlue = 0
	assert.Equal(t, 0.0, colorMultiplier(ColorBlue, &p))

	p.RefBlue = -3
	assert.Equal(t, 0.0, colorMultiplier(ColorBlue, &p))

	// The other colors are unaffected.
	assert.Equal(t, 1.0, colorMultiplier(ColorPurple, &p))
}
