package aqindicator

import (
	"fmt"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/grupo-ioa/aqindicator/forecastseries"
)

// GaugeIndicator generates an echart probability dial for one indicator
// result, colored by its severity bucket.
func GaugeIndicator(res IndicatorResult) *charts.Gauge {
	gauge := charts.NewGauge()
	gauge.SetGlobalOptions(
		charts.WithTitleOpts(
			opts.Title{
				Title: res.Label,
			},
		),
	)

	gauge.AddSeries(
		res.Label,
		[]opts.GaugeData{
			{
				Name:  fmt.Sprintf("P > %.0f ppb", res.Threshold),
				Value: res.Probability * 100.0,
			},
		},
		charts.WithItemStyleOpts(
			opts.ItemStyle{
				Color: res.Severity.Color(),
			},
		),
	)
	return gauge
}

// LineForecast generates an echart line chart of the hourly forecast along
// with its valid moving-average windows. Hours outside any complete window
// carry no moving-average point.
func LineForecast(series *forecastseries.Series, windowed []forecastseries.WindowedValue, opt *Options) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(
			opts.Title{
				Title: fmt.Sprintf("Forecast vs %dh Average", opt.Window),
			},
		),
	)

	avgByHour := make(map[int]float64, len(windowed))
	for _, w := range windowed {
		avgByHour[w.CenterHour] = w.Avg
	}

	lineDataForecast := make([]opts.LineData, 0, len(series.Values))
	lineDataAvg := make([]opts.LineData, 0, len(series.Values))
	for i, hour := range series.Hours {
		lineDataForecast = append(lineDataForecast, opts.LineData{Value: series.Values[i]})
		if avg, exists := avgByHour[hour]; exists {
			lineDataAvg = append(lineDataAvg, opts.LineData{Value: avg})
		} else {
			// echarts renders "-" as a gap, keeping the x axes aligned
			lineDataAvg = append(lineDataAvg, opts.LineData{Value: "-"})
		}
	}

	line.SetXAxis(series.Hours).
		AddSeries("Forecast", lineDataForecast).
		AddSeries(fmt.Sprintf("%dh Average", opt.Window), lineDataAvg)
	return line
}
