package handlers

import (
	"literary-cms/helper"
	"literary-cms/middleware"
	"literary-cms/models"
	"literary-cms/services"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService services.AuthService
	Helper      *helper.HTTPHelper
}

func NewAuthHandler(authService services.AuthService, h *helper.HTTPHelper) *AuthHandler {
	return &AuthHandler{authService: authService, Helper: h}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error())
		return
	}

	response, err := h.authService.Register(req)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendCreated(c, "register success", response)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error())
		return
	}

	response, err := h.authService.Login(req, c.ClientIP())
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "login success", response)
}

func (h *AuthHandler) Logout(c *gin.Context) {
	h.authService.Logout(middleware.CurrentUser(c), c.ClientIP())
	h.Helper.SendSuccess(c, "logout success", h.Helper.EmptyJsonMap())
}

func (h *AuthHandler) GetProfile(c *gin.Context) {
	actor := middleware.CurrentUser(c)

	user, err := h.authService.GetUserByID(actor.ID)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "profile loaded", user)
}
