package models

import (
	"time"

	"gorm.io/gorm"
)

type ArticleStatus string

const (
	StatusDraft         ArticleStatus = "DRAFT"
	StatusPendingReview ArticleStatus = "PENDING_REVIEW"
	StatusPublished     ArticleStatus = "PUBLISHED"
	StatusRejected      ArticleStatus = "REJECTED"
	StatusArchived      ArticleStatus = "ARCHIVED"
)

func (s ArticleStatus) Valid() bool {
	switch s {
	case StatusDraft, StatusPendingReview, StatusPublished, StatusRejected, StatusArchived:
		return true
	}
	return false
}

type Article struct {
	ID            uint          `json:"id" gorm:"primarykey"`
	AuthorID      uint          `json:"author_id" gorm:"not null;index"`
	Author        User          `json:"author" gorm:"foreignKey:AuthorID"`
	CategoryID    *uint         `json:"category_id"`
	Category      *Category     `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	Title         string        `json:"title" gorm:"not null"`
	Slug          string        `json:"slug" gorm:"uniqueIndex;not null"`
	Excerpt       string        `json:"excerpt"`
	Content       string        `json:"content" gorm:"type:text"`
	Status        ArticleStatus `json:"status" gorm:"default:'DRAFT';index"`
	FeaturedImage string        `json:"featured_image"`
	ViewCount     int           `json:"view_count" gorm:"default:0"`
	SubmittedAt   *time.Time    `json:"submitted_at"`
	// PublishedAt records the first time the article reached PUBLISHED.
	// Archival does not clear it.
	PublishedAt  *time.Time `json:"published_at"`
	ReviewedAt   *time.Time `json:"reviewed_at"`
	ReviewedByID *uint      `json:"reviewed_by_id"`
	ReviewedBy   *User      `json:"reviewed_by,omitempty" gorm:"foreignKey:ReviewedByID"`
	// Non-null only while status is REJECTED; cleared on resubmission.
	RejectionReason  *string        `json:"rejection_reason"`
	AuthorRevealDate *time.Time     `json:"author_reveal_date"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	DeletedAt        gorm.DeletedAt `json:"-" gorm:"index"`
}
