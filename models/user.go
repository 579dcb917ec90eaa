package models

import (
	"time"

	"gorm.io/gorm"
)

type UserRole string

const (
	RoleAdmin  UserRole = "ADMIN"
	RoleWriter UserRole = "WRITER"
	RolePoet   UserRole = "POET"
)

// Valid reports whether r is one of the closed role set. Guards treat
// anything outside the set as not allowed, never as a fallthrough.
func (r UserRole) Valid() bool {
	switch r {
	case RoleAdmin, RoleWriter, RolePoet:
		return true
	}
	return false
}

func (r UserRole) IsAdmin() bool {
	return r == RoleAdmin
}

type User struct {
	ID       uint     `json:"id" gorm:"primarykey"`
	Username string   `json:"username" gorm:"uniqueIndex;not null"`
	Email    string   `json:"email" gorm:"uniqueIndex;not null"`
	Password string   `json:"-" gorm:"not null"`
	Role     UserRole `json:"role" gorm:"default:'WRITER'"`
	// Denormalized count of authored articles, adjusted on create and on
	// single delete. The bulk-delete path leaves it untouched.
	ArticleCount int            `json:"article_count" gorm:"default:0"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `json:"-" gorm:"index"`
}
