package main

// colorMultiplier converts a plot color into a relative value weight:
// max reference quantity over the color's own. A non-positive reference
// quantity means the color contributes nothing, never a division error.
func colorMultiplier(c Color, p *Params) float64 {
	ref := p.refQty(c)
	if ref <= 0 {
		return 0
	}
	maxRef := p.RefPurple
	if p.RefBlue > maxRef {
		maxRef = p.RefBlue
	}
	if p.RefYellow > maxRef {
		maxRef = p.RefYellow
	}
	return maxRef / ref
}
