package models

import "time"

type RegisterRequest struct {
	Username string   `json:"username" binding:"required,min=3,max=50"`
	Email    string   `json:"email" binding:"required,email"`
	Password string   `json:"password" binding:"required,min=6"`
	Role     UserRole `json:"role,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type CreateArticleRequest struct {
	Title            string        `json:"title" binding:"required,min=1,max=255"`
	Excerpt          string        `json:"excerpt"`
	Content          string        `json:"content" binding:"required"`
	CategoryID       *uint         `json:"category_id"`
	FeaturedImage    string        `json:"featured_image"`
	Status           ArticleStatus `json:"status,omitempty"`
	AuthorRevealDate *time.Time    `json:"author_reveal_date"`
}

type UpdateArticleRequest struct {
	Title            string        `json:"title" binding:"required,min=1,max=255"`
	Excerpt          string        `json:"excerpt"`
	Content          string        `json:"content" binding:"required"`
	CategoryID       *uint         `json:"category_id"`
	FeaturedImage    string        `json:"featured_image"`
	Status           ArticleStatus `json:"status,omitempty"`
	AuthorRevealDate *time.Time    `json:"author_reveal_date"`
	ChangeNote       string        `json:"change_note"`
}

type RejectArticleRequest struct {
	Reason string `json:"reason" validate:"required"`
}

type BulkStatusRequest struct {
	IDs    []uint        `json:"ids" binding:"required,min=1"`
	Status ArticleStatus `json:"status" binding:"required"`
}

type BulkDeleteRequest struct {
	IDs []uint `json:"ids" binding:"required,min=1"`
}

type ArticleListParams struct {
	Status     string `form:"status"`
	AuthorID   uint   `form:"author_id"`
	CategoryID uint   `form:"category_id"`
	Search     string `form:"search"`
	Page       int    `form:"page,default=1"`
	Limit      int    `form:"limit,default=10"`
	SortBy     string `form:"sort_by,default=created_at"`
	SortOrder  string `form:"sort_order,default=desc"`
}

type NotificationListParams struct {
	UnreadOnly bool `form:"unread_only"`
	Limit      int  `form:"limit,default=20"`
}

type ActivityListParams struct {
	Action string `form:"action"`
	UserID uint   `form:"user_id"`
	Page   int    `form:"page,default=1"`
	Limit  int    `form:"limit,default=20"`
}

type CreateCategoryRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=100"`
	Description string `json:"description"`
}

// ArticleVersionResponse is a ledger entry enriched with the display name of
// the user who recorded it.
type ArticleVersionResponse struct {
	ArticleVersion
	ChangedByName string `json:"changed_by_name"`
}

type RateLimitStatus struct {
	Allowed   bool `json:"allowed"`
	Blocked   bool `json:"blocked"`
	Remaining int  `json:"remaining"`
	ResetIn   int  `json:"reset_in"`
}
