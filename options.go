package aqindicator

import (
	"fmt"
	"io"

	"github.com/goccy/go-json"
	"github.com/grupo-ioa/aqindicator/classification"
	"github.com/grupo-ioa/aqindicator/errormodel"
)

const (
	// DefaultWindow is the sustained-exposure averaging window in hours.
	DefaultWindow = 8

	// Default severity cut points for the probability dials.
	DefaultLowProbability  = 0.20
	DefaultHighProbability = 0.50
)

// Threshold pairs an operational concentration threshold in ppb with its
// display label.
type Threshold struct {
	Value float64 `json:"value"`
	Label string  `json:"label"`
}

// Options carries the full calibration of an indicator engine: the error model
// parameters per aggregation mode, the operational thresholds, the severity
// cut points, and an optional classification band table. All constants are
// explicit data so alternate calibrations can be tested deterministically.
type Options struct {
	// PointModel is calibrated on 24h-max forecast residuals and backs the
	// instantaneous peak thresholds.
	PointModel errormodel.Params `json:"point_model"`

	// WindowModel is calibrated on 8h-mean forecast residuals and backs the
	// sustained-exposure threshold.
	WindowModel errormodel.Params `json:"window_model"`

	Window          int         `json:"window"`
	WindowThreshold Threshold   `json:"window_threshold"`
	PointThresholds []Threshold `json:"point_thresholds"`

	// Probabilities below LowProbability are low severity, above
	// HighProbability high severity, medium in between inclusive.
	LowProbability  float64 `json:"low_probability"`
	HighProbability float64 `json:"high_probability"`

	// Bands overrides the default ozone classification table when non-empty.
	Bands []classification.Band `json:"bands,omitempty"`
}

// NewDefaultOptions returns the operational ozone calibration: error models
// fit on historical validation residuals, the four official thresholds, and
// the dial severity cut points.
func NewDefaultOptions() *Options {
	return &Options{
		PointModel:  errormodel.Params{Mu: 5.08, Sigma: 18.03},
		WindowModel: errormodel.Params{Mu: -0.43, Sigma: 6.11},
		Window:      DefaultWindow,
		WindowThreshold: Threshold{
			Value: 50,
			Label: "Media de más de 50 ppb en 8hrs",
		},
		PointThresholds: []Threshold{
			{Value: 90, Label: "Umbral de 90 ppb"},
			{Value: 120, Label: "Umbral de 120 ppb"},
			{Value: 150, Label: "Umbral de 150 ppb"},
		},
		LowProbability:  DefaultLowProbability,
		HighProbability: DefaultHighProbability,
	}
}

// LoadOptions parses a JSON options document, e.g. a calibration file shipped
// alongside the forecast model.
func LoadOptions(r io.Reader) (*Options, error) {
	var opt Options
	if err := json.NewDecoder(r).Decode(&opt); err != nil {
		return nil, fmt.Errorf("unable to decode options, %w", err)
	}
	return &opt, nil
}
