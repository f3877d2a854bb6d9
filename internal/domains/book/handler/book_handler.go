package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"book-library-api/internal/domains/book"
	"book-library-api/internal/shared/response"
	"book-library-api/pkg/logger"
)

type BookHandler struct {
	service book.Service
}

func NewBookHandler(service book.Service) *BookHandler {
	return &BookHandler{service: service}
}

// ==================== HANDLERS ====================

// List handles GET /books
func (h *BookHandler) List(c *gin.Context) {
	records, pagination, err := h.service.List(c.Request.Context(), c.Request.URL.Query(), c.Request.URL.Path)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.List(c, records, len(records), pagination)
}

// ListByAuthor handles GET /authors/:id/books
func (h *BookHandler) ListByAuthor(c *gin.Context) {
	authorID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid author id")
		return
	}

	records, pagination, err := h.service.ListByAuthor(c.Request.Context(), authorID, c.Request.URL.Query(), c.Request.URL.Path)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.List(c, records, len(records), pagination)
}

// Get handles GET /books/:id
func (h *BookHandler) Get(c *gin.Context) {
	id, ok := h.idParam(c)
	if !ok {
		return
	}

	b, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Data(c, http.StatusOK, b.Project(nil))
}

// Create handles POST /books
func (h *BookHandler) Create(c *gin.Context) {
	var req book.UpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		h.handleValidationError(c, err)
		return
	}

	b, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Data(c, http.StatusCreated, b.Project(nil))
}

// Update handles PUT /books/:id
func (h *BookHandler) Update(c *gin.Context) {
	id, ok := h.idParam(c)
	if !ok {
		return
	}

	var req book.UpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		h.handleValidationError(c, err)
		return
	}

	b, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Data(c, http.StatusOK, b.Project(nil))
}

// Delete handles DELETE /books/:id
func (h *BookHandler) Delete(c *gin.Context) {
	id, ok := h.idParam(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ==================== HELPERS ====================

func (h *BookHandler) idParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid book id")
		return 0, false
	}
	return id, true
}

func (h *BookHandler) handleValidationError(c *gin.Context, err error) {
	var verrs validation.Errors
	if errors.As(err, &verrs) {
		response.BadRequest(c, verrs)
		return
	}
	response.BadRequest(c, err.Error())
}

func (h *BookHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, book.ErrBookNotFound):
		response.NotFound(c, "book not found")
	case errors.Is(err, book.ErrAuthorNotFound):
		response.NotFound(c, "author not found")
	case errors.Is(err, book.ErrIsbnTaken):
		response.Conflict(c, "a book with this isbn already exists")
	default:
		logger.Error("book handler error", err)
		response.InternalServerError(c, "internal server error")
	}
}
