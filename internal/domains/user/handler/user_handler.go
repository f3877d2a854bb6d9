package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"book-library-api/internal/domains/user"
	"book-library-api/internal/shared/middleware"
	"book-library-api/internal/shared/response"
	"book-library-api/pkg/logger"
)

type UserHandler struct {
	service user.Service
}

func NewUserHandler(service user.Service) *UserHandler {
	return &UserHandler{service: service}
}

// ==================== HANDLERS ====================

// Register handles POST /auth/register
func (h *UserHandler) Register(c *gin.Context) {
	var req user.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		h.handleValidationError(c, err)
		return
	}

	token, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Token(c, http.StatusCreated, token)
}

// Login handles POST /auth/login
func (h *UserHandler) Login(c *gin.Context) {
	var req user.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		h.handleValidationError(c, err)
		return
	}

	token, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Token(c, http.StatusOK, token)
}

// Me handles GET /auth/me
func (h *UserHandler) Me(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	u, err := h.service.Me(c.Request.Context(), userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Data(c, http.StatusOK, u.Serialize())
}

// UpdateData handles PUT /auth/update/data
func (h *UserHandler) UpdateData(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	var req user.UpdateDataRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		h.handleValidationError(c, err)
		return
	}

	u, err := h.service.UpdateData(c.Request.Context(), userID, req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Data(c, http.StatusOK, u.Serialize())
}

// UpdatePassword handles PUT /auth/update/password
func (h *UserHandler) UpdatePassword(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	var req user.UpdatePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		h.handleValidationError(c, err)
		return
	}

	if err := h.service.UpdatePassword(c.Request.Context(), userID, req); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// SendResetLink handles POST /auth/reset/password.
// Always 200 so the endpoint does not leak which emails exist.
func (h *UserHandler) SendResetLink(c *gin.Context) {
	var req user.ResetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		h.handleValidationError(c, err)
		return
	}

	if err := h.service.SendResetLink(c.Request.Context(), req.Email); err != nil {
		h.handleError(c, err)
		return
	}

	response.Data(c, http.StatusOK, gin.H{
		"message": "if the email exists, a reset link has been sent",
	})
}

// ResetPassword handles PUT /auth/reset/:hash
func (h *UserHandler) ResetPassword(c *gin.Context) {
	var req user.NewPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		h.handleValidationError(c, err)
		return
	}

	token, err := h.service.ResetPassword(c.Request.Context(), c.Param("hash"), req.Password)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Token(c, http.StatusOK, token)
}

// ==================== HELPERS ====================

func (h *UserHandler) handleValidationError(c *gin.Context, err error) {
	var verrs validation.Errors
	if errors.As(err, &verrs) {
		response.BadRequest(c, verrs)
		return
	}
	response.BadRequest(c, err.Error())
}

func (h *UserHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, user.ErrUserNotFound):
		response.NotFound(c, "user not found")
	case errors.Is(err, user.ErrUsernameTaken):
		response.Conflict(c, "username already in use")
	case errors.Is(err, user.ErrEmailTaken):
		response.Conflict(c, "email already in use")
	case errors.Is(err, user.ErrInvalidCredentials):
		response.Unauthorized(c, "invalid credentials")
	case errors.Is(err, user.ErrInvalidResetCode):
		response.Unauthorized(c, "reset code is invalid or expired")
	case errors.Is(err, user.ErrSamePassword):
		response.Unauthorized(c, "new password must differ from the old one")
	default:
		logger.Error("user handler error", err)
		response.InternalServerError(c, "internal server error")
	}
}
