package aqindicator

import (
	"testing"

	"github.com/grupo-ioa/aqindicator/forecastseries"
	"github.com/pkg/profile"
)

var benchIndicatorRes []IndicatorResult

func BenchmarkComputeIndicators(b *testing.B) {
	engine, err := New(nil)
	if err != nil {
		panic(err)
	}

	values := make([]float64, forecastseries.HorizonHours)
	for i := range values {
		values[i] = 40.0 + float64(i%7)*10.0
	}
	series, err := forecastseries.FromValues(values)
	if err != nil {
		panic(err)
	}

	b.ResetTimer()
	defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	for i := 0; i < b.N; i++ {
		benchIndicatorRes, err = engine.ComputeIndicators(series)
		if err != nil {
			panic(err)
		}
	}
}
