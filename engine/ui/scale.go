package ui

import "math"

// ScrollbarScale maps an integer option onto a scrollbar position in [0, 1].
type ScrollbarScale interface {
	ToRelative(abs, min, max int) float32
	ToAbsolute(rel float32, min, max int) int
}

// LinearScale spaces values evenly.
type LinearScale struct{}

func (LinearScale) ToRelative(abs, min, max int) float32 {
	if max <= min {
		return 0
	}
	return float32(abs-min) / float32(max-min)
}

func (LinearScale) ToAbsolute(rel float32, min, max int) int {
	return int(math.Round(float64(rel*float32(max-min) + float32(min) + 0.1)))
}

// LogarithmicScale gives small values more travel. Ranges starting below
// MinAdjustment are shifted up by it so the logarithm stays defined.
type LogarithmicScale struct {
	MinAdjustment int
}

// DefaultLogScale is the stock logarithmic scale.
var DefaultLogScale = LogarithmicScale{MinAdjustment: 25}

func (s LogarithmicScale) adjustment() int { return max(s.MinAdjustment, 1) }

func (s LogarithmicScale) ToRelative(abs, min, max int) float32 {
	if adj := s.adjustment(); min < adj {
		abs += adj
		min += adj
		max += adj
	}
	lmin := math.Log(float64(min))
	return float32((math.Log(float64(abs)) - lmin) / (math.Log(float64(max)) - lmin))
}

func (s LogarithmicScale) ToAbsolute(rel float32, min, max int) int {
	shift := 0
	if adj := s.adjustment(); min < adj {
		min += adj
		max += adj
		shift = -adj
	}
	lmin := math.Log(float64(min))
	v := math.Exp(float64(rel)*(math.Log(float64(max))-lmin) + lmin)
	return int(math.Round(v)) + shift
}
