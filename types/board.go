package types

// BoardEntry is one ranked row of the monthly board. Derived, never stored.
type BoardEntry struct {
	Rank            int     `json:"rank"`
	MemberID        int64   `json:"member_id"`
	Nickname        string  `json:"nickname"`
	Avatar          string  `json:"avatar,omitempty"`
	AttendanceRate  float64 `json:"attendance_rate"`
	EventsAttended  int     `json:"events_attended"`
	EventsAvailable int     `json:"events_available"`
	SpiritMonth     int     `json:"spirit_month"`
	Tier            Tier    `json:"tier"`
}

// ViewerEntry is the requesting member's own standing, returned regardless
// of rank, with the group average alongside for comparison.
type ViewerEntry struct {
	Entry        *BoardEntry `json:"entry"` // nil when the viewer does not qualify this month
	GroupAverage float64     `json:"group_average"`
}

type MonthlyBoard struct {
	Month        string       `json:"month"` // YYYY-MM, UTC
	HasData      bool         `json:"has_data"`
	Entries      []BoardEntry `json:"entries"` // top 10 only
	OthersCount  int          `json:"others_count"`
	Qualifying   int          `json:"qualifying"`
	GroupAverage float64      `json:"group_average"`
	Viewer       ViewerEntry  `json:"viewer"`
}
