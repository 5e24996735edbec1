package services

import (
	"math"

	"github.com/matteoruffino/progress-engine/internal/core/domain"
)

// FitTrend fits an ordinary least squares line over (index, kg) pairs and
// returns the fitted same-length series plus the slope in kg per logged
// day. Fewer than 2 points cannot define a line and yield
// domain.ErrInsufficientData instead of a NaN slope.
func FitTrend(points []domain.WeightPoint) ([]domain.WeightPoint, float64, error) {
	n := len(points)
	if n < 2 {
		return nil, 0, domain.ErrInsufficientData
	}

	var sumX, sumY float64
	for i, p := range points {
		sumX += float64(i)
		sumY += p.Kg
	}
	meanX := sumX / float64(n)
	meanY := sumY / float64(n)

	var num, den float64
	for i, p := range points {
		dx := float64(i) - meanX
		num += dx * (p.Kg - meanY)
		den += dx * dx
	}

	slope := num / den
	intercept := meanY - slope*meanX

	fitted := make([]domain.WeightPoint, n)
	for i, p := range points {
		fitted[i] = domain.WeightPoint{
			Day: p.Day,
			Kg:  slope*float64(i) + intercept,
		}
	}

	return fitted, slope, nil
}

// GoalETA estimates the days remaining until goalKg at the fitted trend.
// Returns nil when the trend is flat or moves away from the goal: there is
// no honest numeric answer in that case, only "unreachable at the current
// trend". A goal already reached reports 0 days.
func GoalETA(currentKg, goalKg, slopeKgPerDay float64) *int {
	if currentKg == goalKg {
		zero := 0
		return &zero
	}
	if slopeKgPerDay == 0 {
		return nil
	}
	if (goalKg < currentKg && slopeKgPerDay > 0) || (goalKg > currentKg && slopeKgPerDay < 0) {
		return nil
	}

	days := int(math.Ceil(math.Abs(currentKg-goalKg) / math.Abs(slopeKgPerDay)))
	return &days
}
