// Package errormodel wraps a Gaussian forecast-error distribution calibrated
// from historical validation residuals and computes exceedance probabilities
// against operational thresholds.
package errormodel

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

var ErrNonPositiveSigma = errors.New("error model sigma must be positive")

// Params holds the calibrated mean and standard deviation of the forecast
// error for one aggregation mode, e.g. 24h-max or 8h-mean residuals.
type Params struct {
	Mu    float64 `json:"mu"`
	Sigma float64 `json:"sigma"`
}

// Model computes tail probabilities for a point forecast under a Gaussian
// error distribution. The true observation is modeled as predicted + eps with
// eps ~ N(mu, sigma).
type Model struct {
	params Params
	dist   distuv.Normal
}

// New validates the calibration parameters and returns a Model. A non-positive
// sigma is a configuration error surfaced here rather than at call time.
func New(params Params) (*Model, error) {
	if params.Sigma <= 0.0 {
		return nil, fmt.Errorf("got sigma of %f, %w", params.Sigma, ErrNonPositiveSigma)
	}
	return &Model{
		params: params,
		dist: distuv.Normal{
			Mu:    params.Mu,
			Sigma: params.Sigma,
		},
	}, nil
}

// Params returns the calibration parameters the model was constructed with.
func (m *Model) Params() Params {
	return m.params
}

// ExceedanceProbability returns P(y > threshold) given the point forecast,
// computed as 1 - CDF((threshold - predicted - mu)/sigma). The result is
// clamped to [0, 1] to absorb floating point overshoot in the far tails.
func (m *Model) ExceedanceProbability(predicted, threshold float64) float64 {
	p := m.dist.Survival(threshold - predicted)
	return math.Max(0.0, math.Min(1.0, p))
}
