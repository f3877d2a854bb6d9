package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"book-library-api/internal/domains/vote"
	"book-library-api/internal/shared/middleware"
	"book-library-api/internal/shared/response"
	"book-library-api/pkg/logger"
)

type VoteHandler struct {
	service vote.Service
}

func NewVoteHandler(service vote.Service) *VoteHandler {
	return &VoteHandler{service: service}
}

// ==================== HANDLERS ====================

// List handles GET /votes
func (h *VoteHandler) List(c *gin.Context) {
	records, pagination, err := h.service.List(c.Request.Context(), c.Request.URL.Query(), c.Request.URL.Path)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.List(c, records, len(records), pagination)
}

// ListForBook handles GET /vote/:book_id, the votes cast on one book
func (h *VoteHandler) ListForBook(c *gin.Context) {
	bookID, err := strconv.ParseInt(c.Param("book_id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid book id")
		return
	}

	records, pagination, err := h.service.ListForBook(c.Request.Context(), bookID, c.Request.URL.Query(), c.Request.URL.Path)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.List(c, records, len(records), pagination)
}

// Create handles POST /vote
func (h *VoteHandler) Create(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	var req vote.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		h.handleValidationError(c, err)
		return
	}

	v, err := h.service.Create(c.Request.Context(), userID, req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Data(c, http.StatusCreated, v.Project(nil))
}

// Update handles PUT /vote/:id
func (h *VoteHandler) Update(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	voteID, ok := h.idParam(c)
	if !ok {
		return
	}

	var req vote.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		h.handleValidationError(c, err)
		return
	}

	v, err := h.service.Update(c.Request.Context(), userID, voteID, req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Data(c, http.StatusOK, v.Project(nil))
}

// Delete handles DELETE /vote/:id
func (h *VoteHandler) Delete(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	voteID, ok := h.idParam(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), userID, voteID); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ==================== HELPERS ====================

func (h *VoteHandler) idParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid vote id")
		return 0, false
	}
	return id, true
}

func (h *VoteHandler) handleValidationError(c *gin.Context, err error) {
	var verrs validation.Errors
	if errors.As(err, &verrs) {
		response.BadRequest(c, verrs)
		return
	}
	response.BadRequest(c, err.Error())
}

func (h *VoteHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, vote.ErrVoteNotFound):
		response.NotFound(c, "vote not found")
	case errors.Is(err, vote.ErrBookNotFound):
		response.NotFound(c, "book not found")
	case errors.Is(err, vote.ErrAlreadyVoted):
		response.Conflict(c, "user has already voted for this book")
	case errors.Is(err, vote.ErrNotVoteOwner):
		response.Conflict(c, "vote belongs to another user")
	default:
		logger.Error("vote handler error", err)
		response.InternalServerError(c, "internal server error")
	}
}
