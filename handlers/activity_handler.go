package handlers

import (
	"fmt"
	"time"

	"literary-cms/helper"
	"literary-cms/models"
	"literary-cms/services"

	"github.com/gin-gonic/gin"
)

type ActivityHandler struct {
	activityService services.ActivityService
	Helper          *helper.HTTPHelper
}

func NewActivityHandler(activityService services.ActivityService, h *helper.HTTPHelper) *ActivityHandler {
	return &ActivityHandler{activityService: activityService, Helper: h}
}

func (h *ActivityHandler) List(c *gin.Context) {
	var params models.ActivityListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		h.Helper.SendBadRequest(c, err.Error())
		return
	}

	if params.Page == 0 {
		params.Page = 1
	}
	if params.Limit == 0 {
		params.Limit = 20
	}

	entries, total, err := h.activityService.List(params)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "activity log loaded", gin.H{
		"entries":    entries,
		"pagination": h.Helper.GeneratePaging(c, 0, 0, params.Limit, params.Page, int(total)),
	})
}

func (h *ActivityHandler) ExportCSV(c *gin.Context) {
	filename := fmt.Sprintf("activity-log-%s.csv", time.Now().Format("2006-01-02"))
	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	if err := h.activityService.ExportCSV(c.Writer); err != nil {
		// Headers may already be out; log-and-abort is all that is left.
		c.Status(500)
		_ = c.Error(err)
	}
}
