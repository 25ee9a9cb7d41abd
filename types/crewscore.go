package types

// Pillars is the four-way crew score breakdown. Each pillar is clamped to
// its own maximum; Total is their sum capped at 1000.
type Pillars struct {
	Loyalty   float64 `json:"loyalty"`   // max 400
	Spirit    float64 `json:"spirit"`    // max 300
	Adventure float64 `json:"adventure"` // max 150
	Legacy    float64 `json:"legacy"`    // max 150
}

type Tier struct {
	Level int    `json:"level"` // 1..5
	Name  string `json:"name"`
}

type CrewScore struct {
	Pillars Pillars `json:"pillars"`
	Total   float64 `json:"total"`
	Tier    Tier    `json:"tier"`
}
