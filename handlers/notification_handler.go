package handlers

import (
	"literary-cms/helper"
	"literary-cms/middleware"
	"literary-cms/models"
	"literary-cms/services"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	notificationService services.NotificationService
	Helper              *helper.HTTPHelper
}

func NewNotificationHandler(notificationService services.NotificationService, h *helper.HTTPHelper) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService, Helper: h}
}

func (h *NotificationHandler) List(c *gin.Context) {
	var params models.NotificationListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		h.Helper.SendBadRequest(c, err.Error())
		return
	}

	actor := middleware.CurrentUser(c)
	notifications, err := h.notificationService.List(actor.ID, params)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "notifications loaded", notifications)
}

func (h *NotificationHandler) UnreadCount(c *gin.Context) {
	actor := middleware.CurrentUser(c)
	count, err := h.notificationService.UnreadCount(actor.ID)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "unread count loaded", gin.H{"count": count})
}

func (h *NotificationHandler) MarkRead(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		h.Helper.SendBadRequest(c, "invalid notification ID")
		return
	}

	actor := middleware.CurrentUser(c)
	if err := h.notificationService.MarkRead(id, actor.ID); err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "notification marked read", h.Helper.EmptyJsonMap())
}

func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	actor := middleware.CurrentUser(c)
	if err := h.notificationService.MarkAllRead(actor.ID); err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "all notifications marked read", h.Helper.EmptyJsonMap())
}
