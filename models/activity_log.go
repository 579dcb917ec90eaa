package models

import "time"

type ActivityAction string

const (
	ActionCreate  ActivityAction = "CREATE"
	ActionUpdate  ActivityAction = "UPDATE"
	ActionDelete  ActivityAction = "DELETE"
	ActionPublish ActivityAction = "PUBLISH"
	ActionApprove ActivityAction = "APPROVE"
	ActionReject  ActivityAction = "REJECT"
	ActionLogin   ActivityAction = "LOGIN"
	ActionLogout  ActivityAction = "LOGOUT"
)

// ActivityLog is a write-only audit trail. UserName and EntityTitle are
// snapshots, not live joins, so renaming a user does not rewrite history.
type ActivityLog struct {
	ID          uint           `json:"id" gorm:"primarykey"`
	UserID      uint           `json:"user_id" gorm:"index"`
	UserName    string         `json:"user_name"`
	Action      ActivityAction `json:"action" gorm:"not null;index"`
	EntityType  string         `json:"entity_type"`
	EntityID    uint           `json:"entity_id"`
	EntityTitle string         `json:"entity_title"`
	Details     string         `json:"details"`
	IPAddress   string         `json:"ip_address"`
	CreatedAt   time.Time      `json:"created_at"`
}
