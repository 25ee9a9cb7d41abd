package types

// HealthSignals are the five independently capped components.
type HealthSignals struct {
	Attendance float64 `json:"attendance"` // max 30
	Retention  float64 `json:"retention"`  // max 25
	Frequency  float64 `json:"frequency"`  // max 20
	Growth     float64 `json:"growth"`     // max 15
	Engagement float64 `json:"engagement"` // max 10
}

type HealthResult struct {
	GroupID  int64         `json:"group_id"`
	Total    float64       `json:"total"` // 0..100
	Signals  HealthSignals `json:"signals"`
	Previous float64       `json:"previous"`
	Delta    float64       `json:"delta"`
}
