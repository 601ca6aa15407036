package forecastseries

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rampValues() []float64 {
	values := make([]float64, HorizonHours)
	for i := range values {
		values[i] = float64(i + 1)
	}
	return values
}

func TestNew(t *testing.T) {
	validHours := make([]int, HorizonHours)
	for i := range validHours {
		validHours[i] = i + 1
	}

	gapHours := make([]int, HorizonHours)
	copy(gapHours, validHours)
	gapHours[11] = 14

	reversedHours := make([]int, HorizonHours)
	for i := range reversedHours {
		reversedHours[i] = HorizonHours - i
	}

	testData := map[string]struct {
		hours  []int
		values []float64
		err    error
	}{
		"empty": {
			err: ErrSeriesLength,
		},
		"too short": {
			hours:  validHours[:23],
			values: rampValues()[:23],
			err:    ErrSeriesLength,
		},
		"too long": {
			hours:  append(append([]int{}, validHours...), 25),
			values: append(rampValues(), 25),
			err:    ErrSeriesLength,
		},
		"gap in hours": {
			hours:  gapHours,
			values: rampValues(),
			err:    ErrNonHourlySteps,
		},
		"non increasing hours": {
			hours:  reversedHours,
			values: rampValues(),
			err:    ErrNonHourlySteps,
		},
		"valid": {
			hours:  validHours,
			values: rampValues(),
		},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			s, err := New(td.hours, td.values)
			if td.err != nil {
				assert.ErrorIs(t, err, td.err)
				return
			}
			require.Nil(t, err)
			assert.Equal(t, td.hours, s.Hours)
			assert.Equal(t, td.values, s.Values)
		})
	}
}

func TestFromValues(t *testing.T) {
	s, err := FromValues(rampValues())
	require.Nil(t, err)
	assert.Equal(t, 1, s.Hours[0])
	assert.Equal(t, HorizonHours, s.Hours[HorizonHours-1])

	_, err = FromValues(rampValues()[:10])
	assert.ErrorIs(t, err, ErrSeriesLength)
}

func TestCopy(t *testing.T) {
	s, err := FromValues(rampValues())
	require.Nil(t, err)

	next := s.Copy()
	require.Equal(t, s, next)

	s.Values[0] = 999.0
	assert.NotEqual(t, next, s)
}

func TestMax(t *testing.T) {
	values := rampValues()
	values[6] = 168.0
	s, err := FromValues(values)
	require.Nil(t, err)
	assert.Equal(t, 168.0, s.Max())
}

func TestMovingAverage(t *testing.T) {
	constant := make([]float64, HorizonHours)
	for i := range constant {
		constant[i] = 42.0
	}

	testData := map[string]struct {
		values      []float64
		window      int
		err         error
		expectedCnt int
		firstCenter int
		lastCenter  int
		firstAvg    float64
		lastAvg     float64
	}{
		"invalid window": {
			values: rampValues(),
			window: 0,
			err:    ErrInvalidWindow,
		},
		"window wider than horizon": {
			values: rampValues(),
			window: 25,
		},
		"full horizon window": {
			values:      rampValues(),
			window:      24,
			expectedCnt: 1,
			firstCenter: 12,
			lastCenter:  12,
			firstAvg:    12.5,
			lastAvg:     12.5,
		},
		"eight hour windows on constant series": {
			values:      constant,
			window:      8,
			expectedCnt: 17,
			firstCenter: 4,
			lastCenter:  20,
			firstAvg:    42.0,
			lastAvg:     42.0,
		},
		"eight hour windows on ramp": {
			// window at center t averages hours t-3..t+4 so the mean is t+0.5
			values:      rampValues(),
			window:      8,
			expectedCnt: 17,
			firstCenter: 4,
			lastCenter:  20,
			firstAvg:    4.5,
			lastAvg:     20.5,
		},
		"odd window on ramp": {
			values:      rampValues(),
			window:      5,
			expectedCnt: 20,
			firstCenter: 3,
			lastCenter:  22,
			firstAvg:    3.0,
			lastAvg:     22.0,
		},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			s, err := FromValues(td.values)
			require.Nil(t, err)

			windowed, err := s.MovingAverage(td.window)
			if td.err != nil {
				assert.ErrorIs(t, err, td.err)
				return
			}
			require.Nil(t, err)
			require.Len(t, windowed, td.expectedCnt)
			if td.expectedCnt == 0 {
				return
			}
			assert.Equal(t, td.firstCenter, windowed[0].CenterHour)
			assert.Equal(t, td.lastCenter, windowed[len(windowed)-1].CenterHour)
			assert.InDelta(t, td.firstAvg, windowed[0].Avg, 1e-12)
			assert.InDelta(t, td.lastAvg, windowed[len(windowed)-1].Avg, 1e-12)
		})
	}
}
