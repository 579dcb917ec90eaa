package services

import (
	"testing"

	"literary-cms/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestNotifyAdmins_FansOutToEveryAdmin(t *testing.T) {
	notificationRepo := new(MockNotificationRepository)
	userRepo := new(MockUserRepository)
	service := NewNotificationService(notificationRepo, userRepo)

	userRepo.On("GetByRole", models.RoleAdmin).Return([]models.User{
		{ID: 1, Role: models.RoleAdmin},
		{ID: 2, Role: models.RoleAdmin},
	}, nil)
	notificationRepo.On("Create", mock.MatchedBy(func(n *models.Notification) bool {
		return n.Type == models.NotificationNewPending && (n.UserID == 1 || n.UserID == 2)
	})).Return(nil).Twice()

	err := service.NotifyAdmins(models.NotificationNewPending, "New article pending review", "msg", "/admin/articles/1")

	assert.NoError(t, err)
	notificationRepo.AssertNumberOfCalls(t, "Create", 2)
}

func TestMarkRead_OtherUsersNotificationNotFound(t *testing.T) {
	notificationRepo := new(MockNotificationRepository)
	userRepo := new(MockUserRepository)
	service := NewNotificationService(notificationRepo, userRepo)

	// The repository scopes the update by user; zero rows means the
	// notification is missing or belongs to someone else.
	notificationRepo.On("MarkRead", uint(5), uint(7)).Return(int64(0), nil)

	err := service.MarkRead(5, 7)

	assert.IsType(t, models.ErrorNotFound{}, err)
}

func TestMarkRead_Success(t *testing.T) {
	notificationRepo := new(MockNotificationRepository)
	userRepo := new(MockUserRepository)
	service := NewNotificationService(notificationRepo, userRepo)

	notificationRepo.On("MarkRead", uint(5), uint(7)).Return(int64(1), nil)

	assert.NoError(t, service.MarkRead(5, 7))
}

func TestList_DefaultsLimit(t *testing.T) {
	notificationRepo := new(MockNotificationRepository)
	userRepo := new(MockUserRepository)
	service := NewNotificationService(notificationRepo, userRepo)

	notificationRepo.On("GetByUserID", uint(7), true, 20).Return([]models.Notification{}, nil)

	_, err := service.List(7, models.NotificationListParams{UnreadOnly: true})

	assert.NoError(t, err)
	notificationRepo.AssertExpectations(t)
}
