package services

import (
	"literary-cms/models"

	"github.com/rs/zerolog"
)

// NotificationSink is the inbox capability the workflow engine fans out to
// on lifecycle transitions.
type NotificationSink interface {
	NotifyUser(userID uint, t models.NotificationType, title, message, link string) error
	NotifyAdmins(t models.NotificationType, title, message, link string) error
}

// ActivityRecorder appends audit entries for lifecycle transitions.
type ActivityRecorder interface {
	Record(actor models.User, action models.ActivityAction, entityType string, entityID uint, entityTitle, details, ip string) error
}

// runSideEffect runs fn and logs any failure without returning it. Losing a
// notification or audit row is acceptable; losing the transition that
// triggered it is not, so errors stop here.
func runSideEffect(log zerolog.Logger, op string, fn func() error) {
	if err := fn(); err != nil {
		log.Error().Err(err).Str("side_effect", op).Msg("side effect failed")
	}
}
