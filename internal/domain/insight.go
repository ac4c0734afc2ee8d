package domain

// InsightLevel grades how an insight should be read.
type InsightLevel string

// Insight level constants.
const (
	InsightGood    InsightLevel = "good"
	InsightWarning InsightLevel = "warning"
	InsightBad     InsightLevel = "bad"
)

// Insight is one structured observation about a simulation result.
type Insight struct {
	Level   InsightLevel `json:"level"`
	Message string       `json:"message"`
}
