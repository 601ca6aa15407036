// Package aqindicator turns a 24-hour pollutant forecast for a station into
// calibrated threshold-exceedance probabilities and an air-quality category
// for map coloring. All computation is pure and synchronous; independent
// stations can be processed concurrently with no coordination.
package aqindicator

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/grupo-ioa/aqindicator/classification"
	"github.com/grupo-ioa/aqindicator/errormodel"
	"github.com/grupo-ioa/aqindicator/forecastseries"
)

var (
	ErrNoPointThresholds   = errors.New("no point thresholds configured")
	ErrInvalidSeverityCuts = errors.New("severity cut points must satisfy 0 <= low <= high <= 1")
)

// Engine computes the station indicator set and the map classification from a
// forecast series. Construction validates the calibration once; a built
// Engine is read-only and safe for concurrent use.
type Engine struct {
	opt *Options

	pointModel  *errormodel.Model
	windowModel *errormodel.Model
	bands       *classification.Table
}

// New creates an Engine from the provided options. If no options are provided
// the default ozone calibration is used.
func New(opt *Options) (*Engine, error) {
	if opt == nil {
		opt = NewDefaultOptions()
	}
	if len(opt.PointThresholds) == 0 {
		return nil, ErrNoPointThresholds
	}
	if opt.LowProbability < 0.0 || opt.LowProbability > opt.HighProbability || opt.HighProbability > 1.0 {
		return nil, fmt.Errorf(
			"got low %f and high %f, %w",
			opt.LowProbability, opt.HighProbability, ErrInvalidSeverityCuts,
		)
	}

	pointModel, err := errormodel.New(opt.PointModel)
	if err != nil {
		return nil, fmt.Errorf("unable to initialize point error model, %w", err)
	}
	windowModel, err := errormodel.New(opt.WindowModel)
	if err != nil {
		return nil, fmt.Errorf("unable to initialize window error model, %w", err)
	}

	bands := classification.NewDefaultOzoneTable()
	if len(opt.Bands) > 0 {
		bands, err = classification.NewTable(opt.Bands)
		if err != nil {
			return nil, fmt.Errorf("unable to initialize classification table, %w", err)
		}
	}

	return &Engine{
		opt:         opt,
		pointModel:  pointModel,
		windowModel: windowModel,
		bands:       bands,
	}, nil
}

// ComputeIndicators returns the station indicator set in fixed order: the
// sustained-exposure moving-average indicator first, then the point
// thresholds in configured order.
func (e *Engine) ComputeIndicators(series *forecastseries.Series) ([]IndicatorResult, error) {
	windowProbs, err := e.WindowProbabilities(series)
	if err != nil {
		return nil, err
	}

	// worst case sustained exposure: the indicator flags the day if any
	// complete window is likely to exceed, regardless of which one
	var windowProb float64
	for _, wp := range windowProbs {
		if wp.Probability > windowProb {
			windowProb = wp.Probability
		}
	}

	results := make([]IndicatorResult, 0, len(e.opt.PointThresholds)+1)
	results = append(results, IndicatorResult{
		Label:       e.opt.WindowThreshold.Label,
		Threshold:   e.opt.WindowThreshold.Value,
		Probability: windowProb,
		Severity:    e.severity(windowProb),
	})

	level := series.Max()
	for _, threshold := range e.opt.PointThresholds {
		prob := e.pointModel.ExceedanceProbability(level, threshold.Value)
		results = append(results, IndicatorResult{
			Label:       threshold.Label,
			Threshold:   threshold.Value,
			Probability: prob,
			Severity:    e.severity(prob),
		})
	}
	return results, nil
}

// WindowProbabilities returns the exceedance probability of every valid
// moving-average window against the sustained-exposure threshold, in center
// hour order.
func (e *Engine) WindowProbabilities(series *forecastseries.Series) ([]WindowProbability, error) {
	windowed, err := series.MovingAverage(e.opt.Window)
	if err != nil {
		return nil, fmt.Errorf("unable to aggregate forecast series, %w", err)
	}

	probs := make([]WindowProbability, 0, len(windowed))
	for _, w := range windowed {
		probs = append(probs, WindowProbability{
			CenterHour:  w.CenterHour,
			Avg:         w.Avg,
			Probability: e.windowModel.ExceedanceProbability(w.Avg, e.opt.WindowThreshold.Value),
		})
	}
	return probs, nil
}

// ClassifyMax classifies the highest predicted concentration within the
// horizon, keying the station's map marker color.
func (e *Engine) ClassifyMax(series *forecastseries.Series) (classification.Result, error) {
	return e.bands.Classify(series.Max())
}

// Bands returns the classification table the engine was built with.
func (e *Engine) Bands() *classification.Table {
	return e.bands
}

func (e *Engine) severity(prob float64) Severity {
	switch {
	case prob < e.opt.LowProbability:
		return SeverityLow
	case prob <= e.opt.HighProbability:
		return SeverityMedium
	default:
		return SeverityHigh
	}
}

// PlotIndicators uses the Apache Echarts library to generate an html file with
// one probability dial per indicator and a line chart of the hourly forecast
// with its valid moving-average windows.
func (e *Engine) PlotIndicators(path string, series *forecastseries.Series) error {
	results, err := e.ComputeIndicators(series)
	if err != nil {
		return err
	}
	windowed, err := series.MovingAverage(e.opt.Window)
	if err != nil {
		return err
	}

	page := components.NewPage()
	for _, res := range results {
		page.AddCharts(GaugeIndicator(res))
	}
	page.AddCharts(LineForecast(series, windowed, e.opt))

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	return page.Render(io.MultiWriter(file))
}
