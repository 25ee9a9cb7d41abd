package models

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

type Group struct {
	Id                 int64          `gorm:"column:id;primary_key;AUTO_INCREMENT" json:"id"`
	Name               string         `gorm:"column:name" json:"name"`
	Avatar             string         `gorm:"column:avatar" json:"avatar"`
	OwnerId            int64          `gorm:"column:owner_id" json:"owner_id"`
	Description        string         `gorm:"column:description" json:"description"`
	MemberCount        int            `gorm:"column:member_count" json:"member_count"`
	TierTheme          string         `gorm:"column:tier_theme;size:32" json:"tier_theme"`
	CustomTierNames    datatypes.JSON `gorm:"column:custom_tier_names" json:"custom_tier_names"` // 5 names, lowest first
	BadgeAnnouncements bool           `gorm:"column:badge_announcements;default:true" json:"badge_announcements"`
	AnnounceChannelID  int64          `gorm:"column:announce_channel_id" json:"announce_channel_id"`
	CreatedAt          time.Time      `gorm:"column:created_at" json:"created_at"`
	UpdatedAt          time.Time      `gorm:"column:updated_at" json:"updated_at"`
}

func (Group) TableName() string {
	return "groups"
}

// TierNames returns the group's custom 5-name list, nil when unset.
func (g *Group) TierNames() []string {
	if len(g.CustomTierNames) == 0 {
		return nil
	}
	var names []string
	if err := json.Unmarshal(g.CustomTierNames, &names); err != nil || len(names) != 5 {
		return nil
	}
	return names
}
