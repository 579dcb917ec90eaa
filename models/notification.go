package models

import "time"

type NotificationType string

const (
	NotificationArticleApproved  NotificationType = "ARTICLE_APPROVED"
	NotificationArticleRejected  NotificationType = "ARTICLE_REJECTED"
	NotificationArticlePublished NotificationType = "ARTICLE_PUBLISHED"
	NotificationNewPending       NotificationType = "NEW_ARTICLE_PENDING"
	NotificationSystem           NotificationType = "SYSTEM"
)

type Notification struct {
	ID        uint             `json:"id" gorm:"primarykey"`
	UserID    uint             `json:"user_id" gorm:"not null;index"`
	Type      NotificationType `json:"type" gorm:"not null"`
	Title     string           `json:"title" gorm:"not null"`
	Message   string           `json:"message"`
	Link      string           `json:"link"`
	IsRead    bool             `json:"is_read" gorm:"default:false;index"`
	CreatedAt time.Time        `json:"created_at"`
}
