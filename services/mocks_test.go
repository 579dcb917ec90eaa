package services

import (
	"time"

	"literary-cms/models"

	"github.com/stretchr/testify/mock"
)

// MockArticleRepository is a mock type for the ArticleRepository interface
type MockArticleRepository struct {
	mock.Mock
}

func (m *MockArticleRepository) Create(article *models.Article) error {
	args := m.Called(article)
	return args.Error(0)
}

func (m *MockArticleRepository) GetByID(id uint) (*models.Article, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Article), args.Error(1)
}

func (m *MockArticleRepository) GetBySlug(slug string) (*models.Article, error) {
	args := m.Called(slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Article), args.Error(1)
}

func (m *MockArticleRepository) SlugExists(slug string) (bool, error) {
	args := m.Called(slug)
	return args.Bool(0), args.Error(1)
}

func (m *MockArticleRepository) GetList(params models.ArticleListParams, isPublic bool) ([]models.Article, int64, error) {
	args := m.Called(params, isPublic)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]models.Article), args.Get(1).(int64), args.Error(2)
}

func (m *MockArticleRepository) Update(article *models.Article) error {
	args := m.Called(article)
	return args.Error(0)
}

func (m *MockArticleRepository) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockArticleRepository) DeleteBulk(ids []uint) error {
	args := m.Called(ids)
	return args.Error(0)
}

func (m *MockArticleRepository) UpdateStatusBulk(ids []uint, status models.ArticleStatus, publishedAt *time.Time) error {
	args := m.Called(ids, status, publishedAt)
	return args.Error(0)
}

func (m *MockArticleRepository) IncrementViewCount(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockUserRepository is a mock type for the UserRepository interface
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(id uint) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByRole(role models.UserRole) ([]models.User, error) {
	args := m.Called(role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserRepository) AdjustArticleCount(userID uint, delta int) error {
	args := m.Called(userID, delta)
	return args.Error(0)
}

// MockVersionRepository is a mock type for the ArticleVersionRepository interface
type MockVersionRepository struct {
	mock.Mock
}

func (m *MockVersionRepository) Create(version *models.ArticleVersion) error {
	args := m.Called(version)
	return args.Error(0)
}

func (m *MockVersionRepository) GetByArticleID(articleID uint) ([]models.ArticleVersion, error) {
	args := m.Called(articleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ArticleVersion), args.Error(1)
}

func (m *MockVersionRepository) GetByID(versionID uint) (*models.ArticleVersion, error) {
	args := m.Called(versionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ArticleVersion), args.Error(1)
}

func (m *MockVersionRepository) NextVersionNumber(articleID uint) (int, error) {
	args := m.Called(articleID)
	return args.Int(0), args.Error(1)
}

// MockNotificationRepository is a mock type for the NotificationRepository interface
type MockNotificationRepository struct {
	mock.Mock
}

func (m *MockNotificationRepository) Create(notification *models.Notification) error {
	args := m.Called(notification)
	return args.Error(0)
}

func (m *MockNotificationRepository) GetByUserID(userID uint, unreadOnly bool, limit int) ([]models.Notification, error) {
	args := m.Called(userID, unreadOnly, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Notification), args.Error(1)
}

func (m *MockNotificationRepository) CountUnread(userID uint) (int64, error) {
	args := m.Called(userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockNotificationRepository) MarkRead(id, userID uint) (int64, error) {
	args := m.Called(id, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockNotificationRepository) MarkAllRead(userID uint) error {
	args := m.Called(userID)
	return args.Error(0)
}

// MockVersionService is a mock type for the VersionService interface
type MockVersionService struct {
	mock.Mock
}

func (m *MockVersionService) RecordVersion(articleID uint, title, excerpt, content string, changedBy uint, note string) (*models.ArticleVersion, error) {
	args := m.Called(articleID, title, excerpt, content, changedBy, note)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ArticleVersion), args.Error(1)
}

func (m *MockVersionService) ListVersions(articleID uint, actor models.User) ([]models.ArticleVersionResponse, error) {
	args := m.Called(articleID, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ArticleVersionResponse), args.Error(1)
}

func (m *MockVersionService) RestoreVersion(articleID, versionID uint, actor models.User, ip string) (*models.Article, error) {
	args := m.Called(articleID, versionID, actor, ip)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Article), args.Error(1)
}

// Hand-rolled fakes for the side-effect capabilities; transitions must keep
// working no matter what these return.

type sentNotification struct {
	UserID  uint
	Type    models.NotificationType
	Title   string
	Message string
	Link    string
}

type stubSink struct {
	err      error
	toUsers  []sentNotification
	toAdmins []sentNotification
}

func (s *stubSink) NotifyUser(userID uint, t models.NotificationType, title, message, link string) error {
	if s.err != nil {
		return s.err
	}
	s.toUsers = append(s.toUsers, sentNotification{userID, t, title, message, link})
	return nil
}

func (s *stubSink) NotifyAdmins(t models.NotificationType, title, message, link string) error {
	if s.err != nil {
		return s.err
	}
	s.toAdmins = append(s.toAdmins, sentNotification{0, t, title, message, link})
	return nil
}

type recordedActivity struct {
	Actor   models.User
	Action  models.ActivityAction
	Details string
}

type stubRecorder struct {
	err     error
	entries []recordedActivity
}

func (s *stubRecorder) Record(actor models.User, action models.ActivityAction, entityType string, entityID uint, entityTitle, details, ip string) error {
	if s.err != nil {
		return s.err
	}
	s.entries = append(s.entries, recordedActivity{actor, action, details})
	return nil
}

// fakeClock drives the rate limiter deterministically.
type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }
