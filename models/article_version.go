package models

import "time"

// ArticleVersion is an append-only snapshot of an article's content. Rows
// are never updated or deleted; version numbers are strictly increasing per
// article and never reused, including across restores.
type ArticleVersion struct {
	ID            uint      `json:"id" gorm:"primarykey"`
	ArticleID     uint      `json:"article_id" gorm:"not null;index"`
	Article       *Article  `json:"article,omitempty" gorm:"foreignKey:ArticleID"`
	VersionNumber int       `json:"version_number" gorm:"not null"`
	Title         string    `json:"title" gorm:"not null"`
	Excerpt       string    `json:"excerpt"`
	Content       string    `json:"content" gorm:"type:text"`
	ChangedByID   uint      `json:"changed_by_id" gorm:"not null"`
	ChangeNote    string    `json:"change_note"`
	CreatedAt     time.Time `json:"created_at"`
}
