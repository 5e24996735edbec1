package services

import (
	"github.com/matteoruffino/progress-engine/internal/core/domain"
)

// smoothRadius gives the 7-wide centered window used for the smoothed
// weight curve.
const smoothRadius = 3

// SmoothCentered returns a same-length series where each point is the mean
// of the window [i-radius, i+radius], truncated at the boundaries rather
// than padded. Pure and deterministic; a single-point series comes back
// unchanged.
func SmoothCentered(points []domain.WeightPoint, radius int) []domain.WeightPoint {
	if len(points) == 0 {
		return nil
	}

	smoothed := make([]domain.WeightPoint, len(points))
	for i := range points {
		lo := i - radius
		if lo < 0 {
			lo = 0
		}
		hi := i + radius
		if hi > len(points)-1 {
			hi = len(points) - 1
		}

		sum := 0.0
		for j := lo; j <= hi; j++ {
			sum += points[j].Kg
		}

		smoothed[i] = domain.WeightPoint{
			Day: points[i].Day,
			Kg:  sum / float64(hi-lo+1),
		}
	}

	return smoothed
}
