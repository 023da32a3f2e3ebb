// Package balance computes the imbalance score for a set of teams.
//
// The score is a weighted sum of population variances across per-team
// means and per-team sizes. Zero means every team has identical mean
// attributes and identical size; lower is strictly better.
package balance

import (
	"github.com/matchday/teamdraft/internal/domain/model"
)

// Weights for the combined score. Overall skill balance dominates,
// attribute-level and size balance still register.
const (
	overallWeight   = 2.0
	attributeWeight = 1.0
	sizeWeight      = 1.5
)

// Score returns a non-negative imbalance measure over teams.
// Pure and deterministic; an empty team set scores 0.
func Score(teams []*model.Team) float64 {
	if len(teams) == 0 {
		return 0
	}

	n := len(teams)
	overall := make([]float64, n)
	speed := make([]float64, n)
	technical := make([]float64, n)
	stamina := make([]float64, n)
	sizes := make([]float64, n)
	for i, t := range teams {
		overall[i] = t.MeanOverall()
		speed[i] = t.MeanSpeed()
		technical[i] = t.MeanTechnical()
		stamina[i] = t.MeanStamina()
		sizes[i] = float64(t.Size())
	}

	return overallWeight*variance(overall) +
		attributeWeight*variance(speed) +
		attributeWeight*variance(technical) +
		attributeWeight*variance(stamina) +
		sizeWeight*variance(sizes)
}

// variance is the population variance: mean squared deviation from the
// mean with divisor len(values), not len(values)-1.
func variance(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	mean := sum / float64(len(values))

	var sq float64
	for _, v := range values {
		d := v - mean
		sq += d * d
	}
	return sq / float64(len(values))
}
