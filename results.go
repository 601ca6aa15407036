package aqindicator

// Severity buckets an exceedance probability for dial coloring.
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// Color returns the semantic dial color for the severity.
func (s Severity) Color() string {
	switch s {
	case SeverityMedium:
		return "#f1c40f"
	case SeverityHigh:
		return "#e74c3c"
	default:
		return "#2ecc71"
	}
}

// IndicatorResult is one calibrated exceedance probability with its threshold
// label and severity bucket.
type IndicatorResult struct {
	Label       string   `json:"label"`
	Threshold   float64  `json:"threshold"`
	Probability float64  `json:"probability"`
	Severity    Severity `json:"severity"`
}

// WindowProbability is the exceedance probability of one valid moving-average
// window, labeled with its center hour offset.
type WindowProbability struct {
	CenterHour  int     `json:"center_hour"`
	Avg         float64 `json:"avg"`
	Probability float64 `json:"probability"`
}
