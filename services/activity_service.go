package services

import (
	"encoding/csv"
	"io"
	"strconv"

	"literary-cms/models"
	"literary-cms/repositories"
)

type ActivityService interface {
	ActivityRecorder
	List(params models.ActivityListParams) ([]models.ActivityLog, int64, error)
	ExportCSV(w io.Writer) error
}

type activityService struct {
	activityRepo repositories.ActivityLogRepository
}

func NewActivityService(activityRepo repositories.ActivityLogRepository) ActivityService {
	return &activityService{activityRepo: activityRepo}
}

func (s *activityService) Record(actor models.User, action models.ActivityAction, entityType string, entityID uint, entityTitle, details, ip string) error {
	return s.activityRepo.Create(&models.ActivityLog{
		UserID:      actor.ID,
		UserName:    actor.Username,
		Action:      action,
		EntityType:  entityType,
		EntityID:    entityID,
		EntityTitle: entityTitle,
		Details:     details,
		IPAddress:   ip,
	})
}

func (s *activityService) List(params models.ActivityListParams) ([]models.ActivityLog, int64, error) {
	if params.Page <= 0 {
		params.Page = 1
	}
	if params.Limit <= 0 {
		params.Limit = 20
	}
	return s.activityRepo.GetList(params)
}

func (s *activityService) ExportCSV(w io.Writer) error {
	entries, err := s.activityRepo.GetAll()
	if err != nil {
		return err
	}

	writer := csv.NewWriter(w)
	defer writer.Flush()

	header := []string{"id", "user_id", "user_name", "action", "entity_type", "entity_id", "entity_title", "details", "ip_address", "created_at"}
	if err := writer.Write(header); err != nil {
		return err
	}

	for _, entry := range entries {
		record := []string{
			strconv.FormatUint(uint64(entry.ID), 10),
			strconv.FormatUint(uint64(entry.UserID), 10),
			entry.UserName,
			string(entry.Action),
			entry.EntityType,
			strconv.FormatUint(uint64(entry.EntityID), 10),
			entry.EntityTitle,
			entry.Details,
			entry.IPAddress,
			entry.CreatedAt.Format("2006-01-02 15:04:05"),
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	return writer.Error()
}
