// Package forecastseries holds the 24-hour pollutant forecast for one station
// along with the windowed aggregations derived from it.
package forecastseries

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// HorizonHours is the fixed forecast horizon. Every series covers hours 1
// through 24 ahead of the forecast issue time.
const HorizonHours = 24

var (
	ErrSeriesLength   = errors.New("forecast series must have exactly one point per horizon hour")
	ErrNonHourlySteps = errors.New("forecast series hour offsets must start at 1 and increase by 1")
	ErrInvalidWindow  = errors.New("window must cover at least one hour")
)

// Series is an immutable hourly forecast covering hours 1..24 ahead. Hours and
// Values are parallel slices of the same length.
type Series struct {
	Hours  []int
	Values []float64
}

// New validates the hour offsets and predicted values and returns a Series
// holding copies of both. Gaps and reordered hours are rejected rather than
// repaired since they indicate an upstream data fault.
func New(hours []int, values []float64) (*Series, error) {
	if len(values) != HorizonHours || len(hours) != HorizonHours {
		return nil, fmt.Errorf(
			"got %d hour offsets and %d values, want %d of each, %w",
			len(hours), len(values), HorizonHours, ErrSeriesLength,
		)
	}
	for i, hour := range hours {
		if hour != i+1 {
			return nil, fmt.Errorf("hour offset %d at index %d, %w", hour, i, ErrNonHourlySteps)
		}
	}

	hourSeries := make([]int, HorizonHours)
	valueSeries := make([]float64, HorizonHours)
	copy(hourSeries, hours)
	copy(valueSeries, values)
	return &Series{
		Hours:  hourSeries,
		Values: valueSeries,
	}, nil
}

// FromValues builds a Series from predicted values alone, assigning hour
// offsets 1..24 in order.
func FromValues(values []float64) (*Series, error) {
	hours := make([]int, len(values))
	for i := range hours {
		hours[i] = i + 1
	}
	return New(hours, values)
}

func (s *Series) Copy() *Series {
	hourSeries := make([]int, len(s.Hours))
	valueSeries := make([]float64, len(s.Values))
	copy(hourSeries, s.Hours)
	copy(valueSeries, s.Values)
	return &Series{
		Hours:  hourSeries,
		Values: valueSeries,
	}
}

// Max returns the highest predicted concentration within the horizon.
func (s *Series) Max() float64 {
	return floats.Max(s.Values)
}

// WindowedValue is one centered moving-average point labeled with the hour
// offset of its window center.
type WindowedValue struct {
	CenterHour int
	Avg        float64
}

// MovingAverage computes the centered moving average of the series for the
// given window width. An even window places the extra point after the center,
// so a width of 8 spans 3 hours before through 4 hours after. Only centers
// whose full window fits inside the horizon produce a value; partial windows
// at the edges are excluded, never clipped or padded, since the error model
// is calibrated on complete windows only. For a width of 8 over 24 hours this
// yields 17 windows centered on hours 4 through 20.
func (s *Series) MovingAverage(window int) ([]WindowedValue, error) {
	if window < 1 {
		return nil, fmt.Errorf("got window of %d, %w", window, ErrInvalidWindow)
	}
	if window > len(s.Values) {
		return nil, nil
	}

	before := (window - 1) / 2
	after := window / 2

	windowed := make([]WindowedValue, 0, len(s.Values)-window+1)
	for i := before; i+after < len(s.Values); i++ {
		sum := floats.Sum(s.Values[i-before : i+after+1])
		windowed = append(windowed, WindowedValue{
			CenterHour: s.Hours[i],
			Avg:        sum / float64(window),
		})
	}
	return windowed, nil
}
