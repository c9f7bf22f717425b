package padding

import (
	"sync"
	"unicode"

	tiktoken "github.com/pkoukk/tiktoken-go"
)

// Method selects how token costs are estimated.
type Method string

const (
	// MethodPrecise uses the cl100k_base tiktoken encoding.
	MethodPrecise Method = "precise"
	// MethodHeuristic uses a closed-form rune-count approximation.
	MethodHeuristic Method = "heuristic"
)

// ratioSampleSize bounds the filler sequence encoded when measuring the
// per-unit token cost of filler runes.
const ratioSampleSize = 2048

// Estimator converts text into an estimated token count. It is safe for
// concurrent use; Estimate is a pure function of its input.
type Estimator struct {
	method Method
	enc    *tiktoken.Tiktoken

	ratioOnce sync.Once
	ratio     float64
}

// NewEstimator builds an Estimator for the given method. If the precise
// encoding cannot be loaded the estimator silently degrades to heuristic
// mode; construction never fails.
func NewEstimator(method Method) *Estimator {
	e := &Estimator{method: method}
	if method == MethodPrecise {
		if enc, err := tiktoken.GetEncoding("cl100k_base"); err == nil {
			e.enc = enc
		}
	}
	return e
}

// Method returns the estimation method actually in effect, which may be
// heuristic even when precise was requested.
func (e *Estimator) Method() Method {
	if e.enc != nil {
		return MethodPrecise
	}
	return MethodHeuristic
}

// Estimate returns the estimated token count of text. Never negative;
// empty text estimates to zero.
func (e *Estimator) Estimate(text string) int {
	if text == "" {
		return 0
	}
	if e.enc != nil {
		return len(e.enc.Encode(text, nil, nil))
	}
	return heuristicEstimate(text)
}

// heuristicEstimate approximates token cost from rune counts: CJK scripts
// tokenize near one token per two runes, everything else near one per
// four. Monotonic non-decreasing in text length.
func heuristicEstimate(text string) int {
	cjk, other := 0, 0
	for _, r := range text {
		if isCJK(r) {
			cjk++
		} else {
			other++
		}
	}
	return cjk/2 + other/4 + 1
}

func isCJK(r rune) bool {
	return unicode.In(r, unicode.Han, unicode.Hiragana, unicode.Katakana, unicode.Hangul)
}

// FillerRatio returns the measured token cost per filler unit, sampled
// once per estimator by encoding a bounded filler sequence. The search
// uses it to size its initial upper bound.
func (e *Estimator) FillerRatio() float64 {
	e.ratioOnce.Do(func() {
		sample := fillerSequence(ratioSampleSize)
		tokens := e.Estimate(sample)
		if tokens < 1 {
			tokens = 1
		}
		e.ratio = float64(tokens) / float64(ratioSampleSize)
	})
	return e.ratio
}
