package main

// expectedSeedValue returns the expected sale value of a seed that has
// received k growth triggers. The seed walks a 4-tier chain: each trigger
// advances tier i to i+1 with probability TierUp[i-1] or leaves it where
// it is; tier 4 never moves. k=0 is exactly the tier-1 value.
func expectedSeedValue(k int, p *Params) float64 {
	probs := [4]float64{1, 0, 0, 0}
	for i := 0; i < k; i++ {
		var next [4]float64
		next[0] = probs[0] * (1 - p.TierUp[0])
		next[1] = probs[0]*p.TierUp[0] + probs[1]*(1-p.TierUp[1])
		next[2] = probs[1]*p.TierUp[1] + probs[2]*(1-p.TierUp[2])
		next[3] = probs[2]*p.TierUp[2] + probs[3]
		probs = next
	}
	ev := 0.0
	for t := 0; t < 4; t++ {
		ev += probs[t] * p.TierValue[t]
	}
	return ev
}
