package repositories

import (
	"literary-cms/models"

	"gorm.io/gorm"
)

type ActivityLogRepository interface {
	Create(entry *models.ActivityLog) error
	GetList(params models.ActivityListParams) ([]models.ActivityLog, int64, error)
	GetAll() ([]models.ActivityLog, error)
}

type activityLogRepository struct {
	db *gorm.DB
}

func NewActivityLogRepository(db *gorm.DB) ActivityLogRepository {
	return &activityLogRepository{db: db}
}

func (r *activityLogRepository) Create(entry *models.ActivityLog) error {
	return r.db.Create(entry).Error
}

func (r *activityLogRepository) GetList(params models.ActivityListParams) ([]models.ActivityLog, int64, error) {
	var entries []models.ActivityLog
	var total int64

	query := r.db.Model(&models.ActivityLog{})

	if params.Action != "" {
		query = query.Where("action = ?", params.Action)
	}
	if params.UserID > 0 {
		query = query.Where("user_id = ?", params.UserID)
	}

	query.Count(&total)

	offset := (params.Page - 1) * params.Limit
	err := query.Order("created_at desc").
		Offset(offset).Limit(params.Limit).
		Find(&entries).Error

	return entries, total, err
}

func (r *activityLogRepository) GetAll() ([]models.ActivityLog, error) {
	var entries []models.ActivityLog
	err := r.db.Order("created_at desc").Find(&entries).Error
	return entries, err
}
