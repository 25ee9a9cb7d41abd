package types

// AwardPointsReq awards one spirit action to a member.
type AwardPointsReq struct {
	MemberID int64  `json:"member_id" binding:"required"`
	GroupID  int64  `json:"group_id" binding:"required"`
	Action   string `json:"action" binding:"required"`
	RefID    string `json:"ref_id"`
	Override *int   `json:"override"` // optional point override, admin paths only
}

// AwardResult models the expected "no" outcomes as data, not errors.
type AwardResult struct {
	Awarded       bool   `json:"awarded"`
	Points        int    `json:"points"`
	TotalThisWeek int    `json:"total_this_week"`
	Reason        string `json:"reason,omitempty"` // unknown_action | weekly_cap_reached | insert_failed
}

// MonthBreakdown is "points this month" reconstructed from the ledger.
type MonthBreakdown struct {
	Month  string         `json:"month"`
	Total  int            `json:"total"`
	ByType map[string]int `json:"by_type"`
}
