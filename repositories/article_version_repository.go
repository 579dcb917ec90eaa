package repositories

import (
	"literary-cms/models"

	"gorm.io/gorm"
)

type ArticleVersionRepository interface {
	Create(version *models.ArticleVersion) error
	GetByArticleID(articleID uint) ([]models.ArticleVersion, error)
	GetByID(versionID uint) (*models.ArticleVersion, error)
	NextVersionNumber(articleID uint) (int, error)
}

type articleVersionRepository struct {
	db *gorm.DB
}

func NewArticleVersionRepository(db *gorm.DB) ArticleVersionRepository {
	return &articleVersionRepository{db: db}
}

func (r *articleVersionRepository) Create(version *models.ArticleVersion) error {
	return r.db.Create(version).Error
}

func (r *articleVersionRepository) GetByArticleID(articleID uint) ([]models.ArticleVersion, error) {
	var versions []models.ArticleVersion
	err := r.db.Where("article_id = ?", articleID).
		Order("version_number desc").
		Find(&versions).Error
	return versions, err
}

func (r *articleVersionRepository) GetByID(versionID uint) (*models.ArticleVersion, error) {
	var version models.ArticleVersion
	err := r.db.First(&version, versionID).Error
	return &version, err
}

// NextVersionNumber returns max(version_number)+1 for the article, starting
// at 1. Numbers are never reused, even after restores.
func (r *articleVersionRepository) NextVersionNumber(articleID uint) (int, error) {
	var max int
	err := r.db.Model(&models.ArticleVersion{}).
		Where("article_id = ?", articleID).
		Select("COALESCE(MAX(version_number), 0)").
		Scan(&max).Error
	return max + 1, err
}
