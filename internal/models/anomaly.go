package models

// Anomaly severity levels, ordered high < medium < low for output ranking
const (
	SeverityHigh   = "high"
	SeverityMedium = "medium"
	SeverityLow    = "low"
)

// Anomaly is a flagged transaction produced by the anomaly detector.
// It is never persisted; the detector recomputes it per invocation.
type Anomaly struct {
	Date     string  `json:"date"`
	Merchant string  `json:"merchant"`
	Amount   float64 `json:"amount"`
	Category string  `json:"category"`
	Reason   string  `json:"reason"`
	Severity string  `json:"severity"`
}

// SeverityRank maps a severity to its sort priority (high first)
func SeverityRank(severity string) int {
	switch severity {
	case SeverityHigh:
		return 0
	case SeverityMedium:
		return 1
	case SeverityLow:
		return 2
	default:
		return 9
	}
}
