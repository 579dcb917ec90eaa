package services

import (
	"literary-cms/models"
	"literary-cms/repositories"
)

type NotificationService interface {
	NotificationSink
	List(userID uint, params models.NotificationListParams) ([]models.Notification, error)
	UnreadCount(userID uint) (int64, error)
	MarkRead(id, userID uint) error
	MarkAllRead(userID uint) error
}

type notificationService struct {
	notificationRepo repositories.NotificationRepository
	userRepo         repositories.UserRepository
}

func NewNotificationService(notificationRepo repositories.NotificationRepository, userRepo repositories.UserRepository) NotificationService {
	return &notificationService{
		notificationRepo: notificationRepo,
		userRepo:         userRepo,
	}
}

func (s *notificationService) NotifyUser(userID uint, t models.NotificationType, title, message, link string) error {
	return s.notificationRepo.Create(&models.Notification{
		UserID:  userID,
		Type:    t,
		Title:   title,
		Message: message,
		Link:    link,
	})
}

func (s *notificationService) NotifyAdmins(t models.NotificationType, title, message, link string) error {
	admins, err := s.userRepo.GetByRole(models.RoleAdmin)
	if err != nil {
		return err
	}

	for _, admin := range admins {
		if err := s.NotifyUser(admin.ID, t, title, message, link); err != nil {
			return err
		}
	}
	return nil
}

func (s *notificationService) List(userID uint, params models.NotificationListParams) ([]models.Notification, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = 20
	}
	return s.notificationRepo.GetByUserID(userID, params.UnreadOnly, limit)
}

func (s *notificationService) UnreadCount(userID uint) (int64, error) {
	return s.notificationRepo.CountUnread(userID)
}

func (s *notificationService) MarkRead(id, userID uint) error {
	affected, err := s.notificationRepo.MarkRead(id, userID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return models.ErrorNotFound{Message: "notification not found"}
	}
	return nil
}

func (s *notificationService) MarkAllRead(userID uint) error {
	return s.notificationRepo.MarkAllRead(userID)
}
