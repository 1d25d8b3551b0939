package domain

import "math"

// Clamp limits v to [-1, 1].
func Clamp(v float64) float64 { return ClampRange(v, -1.0, 1.0) }

func ClampRange(v, lo, hi float64) float64 { return math.Max(lo, math.Min(hi, v)) }

// ScoreToTen maps a raw -1..+1 score onto 0..10 (-1 → 0, 0 → 5, +1 → 10).
func ScoreToTen(raw float64) float64 { return Clamp(raw)*5.0 + 5.0 }

// RescaleDisplay stretches the engine's compressed 0-10 output across the
// display range with a piecewise-linear map. Values past the last segment
// read as 10.
func RescaleDisplay(rawTen float64, segments []RescaleSegment) float64 {
	for _, s := range segments {
		if rawTen <= s.RawHigh {
			if s.RawHigh == s.RawLow {
				return s.DisplayLow
			}
			t := (rawTen - s.RawLow) / (s.RawHigh - s.RawLow)
			return s.DisplayLow + t*(s.DisplayHigh-s.DisplayLow)
		}
	}
	return 10.0
}

// VerdictLabel buckets a display score: 8.0 and above is this_is_it,
// 5.0 and above smart_pick, anything lower not_this_one.
func VerdictLabel(overall float64) string {
	switch {
	case overall >= 8.0:
		return LabelThisIsIt
	case overall >= 5.0:
		return LabelSmartPick
	default:
		return LabelNotThisOne
	}
}

// Round rounds v half away from zero to the given number of decimals.
func Round(v float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	return math.Round(v*p) / p
}
