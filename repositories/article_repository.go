package repositories

import (
	"fmt"
	"time"

	"literary-cms/models"

	"gorm.io/gorm"
)

type ArticleRepository interface {
	Create(article *models.Article) error
	GetByID(id uint) (*models.Article, error)
	GetBySlug(slug string) (*models.Article, error)
	SlugExists(slug string) (bool, error)
	GetList(params models.ArticleListParams, isPublic bool) ([]models.Article, int64, error)
	Update(article *models.Article) error
	Delete(id uint) error
	DeleteBulk(ids []uint) error
	UpdateStatusBulk(ids []uint, status models.ArticleStatus, publishedAt *time.Time) error
	IncrementViewCount(id uint) error
}

type articleRepository struct {
	db *gorm.DB
}

func NewArticleRepository(db *gorm.DB) ArticleRepository {
	return &articleRepository{db: db}
}

func (r *articleRepository) Create(article *models.Article) error {
	return r.db.Create(article).Error
}

func (r *articleRepository) GetByID(id uint) (*models.Article, error) {
	var article models.Article
	err := r.db.Preload("Author").
		Preload("Category").
		Preload("ReviewedBy").
		First(&article, id).Error
	return &article, err
}

func (r *articleRepository) GetBySlug(slug string) (*models.Article, error) {
	var article models.Article
	err := r.db.Preload("Author").
		Preload("Category").
		Where("slug = ?", slug).
		First(&article).Error
	return &article, err
}

func (r *articleRepository) SlugExists(slug string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Article{}).Where("slug = ?", slug).Count(&count).Error
	return count > 0, err
}

func (r *articleRepository) GetList(params models.ArticleListParams, isPublic bool) ([]models.Article, int64, error) {
	var articles []models.Article
	var total int64

	query := r.db.Model(&models.Article{}).Preload("Author").Preload("Category")

	if isPublic {
		query = query.Where("status = ?", models.StatusPublished)
	} else if params.Status != "" {
		query = query.Where("status = ?", params.Status)
	}

	if params.AuthorID > 0 {
		query = query.Where("author_id = ?", params.AuthorID)
	}

	if params.CategoryID > 0 {
		query = query.Where("category_id = ?", params.CategoryID)
	}

	if params.Search != "" {
		pattern := "%" + params.Search + "%"
		query = query.Where("title ILIKE ? OR excerpt ILIKE ?", pattern, pattern)
	}

	query.Count(&total)

	sortBy := params.SortBy
	if sortBy == "" {
		sortBy = "created_at"
	}
	sortOrder := params.SortOrder
	if sortOrder != "asc" {
		sortOrder = "desc"
	}
	query = query.Order(fmt.Sprintf("%s %s", sortBy, sortOrder))

	offset := (params.Page - 1) * params.Limit
	err := query.Offset(offset).Limit(params.Limit).Find(&articles).Error

	return articles, total, err
}

func (r *articleRepository) Update(article *models.Article) error {
	return r.db.Save(article).Error
}

func (r *articleRepository) Delete(id uint) error {
	return r.db.Delete(&models.Article{}, id).Error
}

func (r *articleRepository) DeleteBulk(ids []uint) error {
	return r.db.Delete(&models.Article{}, ids).Error
}

func (r *articleRepository) UpdateStatusBulk(ids []uint, status models.ArticleStatus, publishedAt *time.Time) error {
	updates := map[string]interface{}{"status": status}
	if publishedAt != nil {
		updates["published_at"] = *publishedAt
	}
	return r.db.Model(&models.Article{}).Where("id IN ?", ids).Updates(updates).Error
}

func (r *articleRepository) IncrementViewCount(id uint) error {
	return r.db.Model(&models.Article{}).
		Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + 1")).Error
}
