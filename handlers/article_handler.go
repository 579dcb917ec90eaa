package handlers

import (
	"strconv"

	"literary-cms/helper"
	"literary-cms/middleware"
	"literary-cms/models"
	"literary-cms/services"

	"github.com/gin-gonic/gin"
	"gopkg.in/go-playground/validator.v9"
)

type ArticleHandler struct {
	articleService services.ArticleService
	versionService services.VersionService
	Helper         *helper.HTTPHelper
}

func NewArticleHandler(articleService services.ArticleService, versionService services.VersionService, h *helper.HTTPHelper) *ArticleHandler {
	return &ArticleHandler{
		articleService: articleService,
		versionService: versionService,
		Helper:         h,
	}
}

func parseID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

func (h *ArticleHandler) CreateArticle(c *gin.Context) {
	var req models.CreateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error())
		return
	}

	article, err := h.articleService.CreateArticle(req, middleware.CurrentUser(c), c.ClientIP())
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendCreated(c, "article created", article)
}

func (h *ArticleHandler) UpdateArticle(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		h.Helper.SendBadRequest(c, "invalid article ID")
		return
	}

	var req models.UpdateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error())
		return
	}

	article, err := h.articleService.UpdateArticle(id, req, middleware.CurrentUser(c), c.ClientIP())
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "article updated", article)
}

func (h *ArticleHandler) GetArticles(c *gin.Context) {
	var params models.ArticleListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		h.Helper.SendBadRequest(c, err.Error())
		return
	}

	if params.Page == 0 {
		params.Page = 1
	}
	if params.Limit == 0 {
		params.Limit = 10
	}

	articles, total, err := h.articleService.GetArticles(params, middleware.CurrentUser(c))
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "articles loaded", gin.H{
		"articles":   articles,
		"pagination": h.Helper.GeneratePaging(c, 0, 0, params.Limit, params.Page, int(total)),
	})
}

func (h *ArticleHandler) GetArticle(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		h.Helper.SendBadRequest(c, "invalid article ID")
		return
	}

	article, err := h.articleService.GetArticle(id, middleware.CurrentUser(c))
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "article loaded", article)
}

func (h *ArticleHandler) DeleteArticle(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		h.Helper.SendBadRequest(c, "invalid article ID")
		return
	}

	if err := h.articleService.DeleteArticle(id, middleware.CurrentUser(c), c.ClientIP()); err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "article deleted", h.Helper.EmptyJsonMap())
}

func (h *ArticleHandler) SubmitForReview(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		h.Helper.SendBadRequest(c, "invalid article ID")
		return
	}

	article, err := h.articleService.SubmitForReview(id, middleware.CurrentUser(c), c.ClientIP())
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "article submitted for review", article)
}

func (h *ArticleHandler) Approve(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		h.Helper.SendBadRequest(c, "invalid article ID")
		return
	}

	article, err := h.articleService.Approve(id, middleware.CurrentUser(c), c.ClientIP())
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "article approved", article)
}

func (h *ArticleHandler) Reject(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		h.Helper.SendBadRequest(c, "invalid article ID")
		return
	}

	var req models.RejectArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error())
		return
	}
	if err := h.Helper.Validate.Struct(req); err != nil {
		if validationErrors, ok := err.(validator.ValidationErrors); ok {
			h.Helper.SendValidationError(c, validationErrors)
			return
		}
		h.Helper.SendBadRequest(c, err.Error())
		return
	}

	article, err := h.articleService.Reject(id, req.Reason, middleware.CurrentUser(c), c.ClientIP())
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "article rejected", article)
}

func (h *ArticleHandler) BulkUpdateStatus(c *gin.Context) {
	var req models.BulkStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error())
		return
	}

	if err := h.articleService.BulkUpdateStatus(req.IDs, req.Status, middleware.CurrentUser(c), c.ClientIP()); err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "bulk status update applied", gin.H{"count": len(req.IDs)})
}

func (h *ArticleHandler) BulkDelete(c *gin.Context) {
	var req models.BulkDeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error())
		return
	}

	if err := h.articleService.BulkDelete(req.IDs, middleware.CurrentUser(c), c.ClientIP()); err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "bulk delete applied", gin.H{"count": len(req.IDs)})
}

func (h *ArticleHandler) GetVersions(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		h.Helper.SendBadRequest(c, "invalid article ID")
		return
	}

	versions, err := h.versionService.ListVersions(id, middleware.CurrentUser(c))
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "versions loaded", versions)
}

func (h *ArticleHandler) RestoreVersion(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		h.Helper.SendBadRequest(c, "invalid article ID")
		return
	}
	versionID, ok := parseID(c, "version_id")
	if !ok {
		h.Helper.SendBadRequest(c, "invalid version ID")
		return
	}

	article, err := h.versionService.RestoreVersion(id, versionID, middleware.CurrentUser(c), c.ClientIP())
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "version restored", article)
}

func (h *ArticleHandler) GetPublicArticles(c *gin.Context) {
	var params models.ArticleListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		h.Helper.SendBadRequest(c, err.Error())
		return
	}

	if params.Page == 0 {
		params.Page = 1
	}
	if params.Limit == 0 {
		params.Limit = 10
	}

	articles, total, err := h.articleService.GetPublicArticles(params)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "articles loaded", gin.H{
		"articles":   articles,
		"pagination": h.Helper.GeneratePaging(c, 0, 0, params.Limit, params.Page, int(total)),
	})
}

func (h *ArticleHandler) GetPublicArticle(c *gin.Context) {
	article, err := h.articleService.GetPublicArticleBySlug(c.Param("slug"))
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "article loaded", article)
}
