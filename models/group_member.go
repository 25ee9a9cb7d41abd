package models

import "time"

const (
	GroupMemberRoleMember = 1
	GroupMemberRoleAdmin  = 2
	GroupMemberRoleOwner  = 3
)

const (
	MemberStatusPending  = "pending"
	MemberStatusApproved = "approved"
	MemberStatusLeft     = "left"
	MemberStatusRemoved  = "removed"
)

type GroupMember struct {
	Id        int64     `gorm:"column:id;primary_key;AUTO_INCREMENT" json:"id"`
	GroupId   int64     `gorm:"column:group_id;index:idx_group_member,priority:1" json:"group_id"`
	MemberId  int64     `gorm:"column:member_id;index:idx_group_member,priority:2" json:"member_id"`
	Role      int       `gorm:"column:role;default:1" json:"role"`
	Status    string    `gorm:"column:status;size:16;default:approved" json:"status"`
	JoinedAt  time.Time `gorm:"column:joined_at" json:"joined_at"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (GroupMember) TableName() string {
	return "group_members"
}
