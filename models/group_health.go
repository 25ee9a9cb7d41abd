package models

import "time"

// GroupHealthScore is upserted on every computation; Previous keeps the last
// total so a sharp drop can be alerted on.
type GroupHealthScore struct {
	ID         int64     `gorm:"primaryKey;column:id" json:"id"`
	GroupID    int64     `gorm:"column:group_id;uniqueIndex" json:"group_id"`
	Total      float64   `gorm:"column:total" json:"total"`
	Attendance float64   `gorm:"column:attendance" json:"attendance"`
	Retention  float64   `gorm:"column:retention" json:"retention"`
	Frequency  float64   `gorm:"column:frequency" json:"frequency"`
	Growth     float64   `gorm:"column:growth" json:"growth"`
	Engagement float64   `gorm:"column:engagement" json:"engagement"`
	Previous   float64   `gorm:"column:previous" json:"previous"`
	ComputedAt time.Time `gorm:"column:computed_at" json:"computed_at"`
}

func (GroupHealthScore) TableName() string {
	return "group_health_scores"
}
