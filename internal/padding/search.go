package padding

// searchSeed is the first upper-bound probe when the filler ratio gives
// no useful prediction.
const searchSeed = 64

// maxFillerCount caps the search space so a saturating estimator cannot
// drive probe candidates to unbounded size.
const maxFillerCount = 1 << 22

// FindFillerCount finds the filler-unit count whose even distribution
// into text brings the estimated token count to targetTokens. Returns 0
// when the unpadded text already meets or exceeds the target. Each probe
// builds the real candidate via Distribute so the estimate reflects how
// the filler actually tokenizes in place.
//
// The upper bound grows exponentially from a ratio-seeded guess until a
// probe reaches the target, then the interval is binary searched until
// the estimate lands within one token of the target or the interval
// collapses. If even maxFillerCount cannot reach the target the best
// count found is returned and the caller accepts the under-fill.
func FindFillerCount(text string, est *Estimator, targetTokens int) int {
	base := est.Estimate(text)
	if targetTokens <= base {
		return 0
	}

	probes := map[int]int{0: base}
	probe := func(n int) int {
		if tokens, ok := probes[n]; ok {
			return tokens
		}
		tokens := est.Estimate(Distribute(text, n))
		probes[n] = tokens
		return tokens
	}

	// Seed the upper bound from the measured per-unit cost, then grow
	// until a probe meets the target.
	needed := targetTokens - base
	hi := int(float64(needed) / est.FillerRatio())
	if hi < searchSeed {
		hi = searchSeed
	}
	if hi > maxFillerCount {
		hi = maxFillerCount
	}
	for probe(hi) < targetTokens {
		if hi >= maxFillerCount {
			break
		}
		hi *= 2
		if hi > maxFillerCount {
			hi = maxFillerCount
		}
	}

	lo := 0
	best := 0
	bestErr := absDiff(base, targetTokens)
	for lo <= hi {
		mid := lo + (hi-lo)/2
		got := probe(mid)
		if err := absDiff(got, targetTokens); err < bestErr {
			best, bestErr = mid, err
		}
		if bestErr <= 1 {
			return best
		}
		if got < targetTokens {
			lo = mid + 1
		} else {
			hi = mid - 1
		}
	}
	return best
}

func absDiff(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}
