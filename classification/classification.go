// Package classification maps a pollutant concentration to its air-quality
// category and color band, used for map-marker coloring.
package classification

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrEmptyTable            = errors.New("band table must have at least one band")
	ErrTableStart            = errors.New("first band must start at zero")
	ErrBandOrder             = errors.New("band lower bounds must be strictly increasing")
	ErrBandOverlap           = errors.New("band upper bound reaches into the next band")
	ErrBoundedTop            = errors.New("top band must be open ended")
	ErrNegativeConcentration = errors.New("concentration must be non-negative")
)

// Band is one air-quality category covering concentrations from Min upward.
// Max is the published inclusive upper bound used for display; the top band
// carries +Inf. Classification itself goes by lower bounds so that values
// between two published integer bounds still land in the lower band.
type Band struct {
	Category string  `json:"category"`
	Color    string  `json:"color"`
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
}

// Result is the category and semantic color assigned to one concentration.
type Result struct {
	Category string `json:"category"`
	Color    string `json:"color"`
}

// Table is an ordered, validated set of bands covering [0, +Inf).
type Table struct {
	bands []Band
}

// NewTable validates band ordering and coverage and returns a Table holding a
// copy of the bands. Malformed tables are a configuration error surfaced at
// startup, never at classification time.
func NewTable(bands []Band) (*Table, error) {
	if len(bands) == 0 {
		return nil, ErrEmptyTable
	}
	if bands[0].Min != 0.0 {
		return nil, fmt.Errorf("first band %q starts at %f, %w", bands[0].Category, bands[0].Min, ErrTableStart)
	}
	for i, band := range bands {
		if i > 0 && band.Min <= bands[i-1].Min {
			return nil, fmt.Errorf("band %q, %w", band.Category, ErrBandOrder)
		}
		if i < len(bands)-1 && band.Max >= bands[i+1].Min {
			return nil, fmt.Errorf("band %q, %w", band.Category, ErrBandOverlap)
		}
	}
	if !math.IsInf(bands[len(bands)-1].Max, 1) {
		return nil, fmt.Errorf("band %q, %w", bands[len(bands)-1].Category, ErrBoundedTop)
	}

	tableBands := make([]Band, len(bands))
	copy(tableBands, bands)
	return &Table{bands: tableBands}, nil
}

// NewDefaultOzoneTable returns the official ozone band table in ppb.
func NewDefaultOzoneTable() *Table {
	table, err := NewTable([]Band{
		{Category: "Buena", Color: "#00E400", Min: 0, Max: 57},
		{Category: "Aceptable", Color: "#FFFF00", Min: 58, Max: 89},
		{Category: "Mala", Color: "#FF7E00", Min: 90, Max: 134},
		{Category: "Muy Mala", Color: "#FF0000", Min: 135, Max: 174},
		{Category: "Extremadamente Mala", Color: "#8F3F97", Min: 175, Max: math.Inf(1)},
	})
	if err != nil {
		panic(err)
	}
	return table
}

// Bands returns a copy of the table's bands in ascending order.
func (t *Table) Bands() []Band {
	bands := make([]Band, len(t.bands))
	copy(bands, t.bands)
	return bands
}

// Classify returns the category and color of the highest band whose lower
// bound does not exceed the concentration. Negative concentrations indicate an
// upstream data fault and are rejected rather than clamped. Arbitrarily large
// values fall into the open-ended top band.
func (t *Table) Classify(concentration float64) (Result, error) {
	if concentration < 0.0 {
		return Result{}, fmt.Errorf("got %f, %w", concentration, ErrNegativeConcentration)
	}

	match := t.bands[0]
	for _, band := range t.bands[1:] {
		if concentration < band.Min {
			break
		}
		match = band
	}
	return Result{
		Category: match.Category,
		Color:    match.Color,
	}, nil
}
