package polarity

import "math"

// DefaultAlpha is the saturation constant used by Normalize. It approximates
// the maximum expected aggregate score; larger values flatten the curve near
// zero and slow saturation toward the bounds.
const DefaultAlpha = 15

// Normalize maps an unbounded aggregate score into [-1, 1] using DefaultAlpha.
func Normalize(score float64) float64 {
	return NormalizeAlpha(score, DefaultAlpha)
}

// NormalizeAlpha maps score into [-1, 1] via score / sqrt(score² + alpha),
// clamped to the closed interval. Small scores map near-linearly while
// large-magnitude scores saturate smoothly toward ±1.
//
// alpha must be positive; violating that is a programming error and panics.
func NormalizeAlpha(score, alpha float64) float64 {
	if alpha <= 0 {
		panic("polarity: normalization alpha must be positive")
	}

	normalized := score / math.Sqrt(score*score+alpha)
	if normalized < -1.0 {
		return -1.0
	}
	if normalized > 1.0 {
		return 1.0
	}
	return normalized
}
