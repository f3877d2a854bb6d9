package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"book-library-api/internal/domains/author"
	"book-library-api/internal/shared/response"
	"book-library-api/pkg/logger"
)

type AuthorHandler struct {
	service author.Service
}

func NewAuthorHandler(service author.Service) *AuthorHandler {
	return &AuthorHandler{service: service}
}

// ==================== HANDLERS ====================

// List handles GET /authors
func (h *AuthorHandler) List(c *gin.Context) {
	records, pagination, err := h.service.List(c.Request.Context(), c.Request.URL.Query(), c.Request.URL.Path)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.List(c, records, len(records), pagination)
}

// Get handles GET /authors/:id
func (h *AuthorHandler) Get(c *gin.Context) {
	id, ok := h.idParam(c)
	if !ok {
		return
	}

	a, books, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Data(c, http.StatusOK, detail(a, books))
}

// Create handles POST /authors
func (h *AuthorHandler) Create(c *gin.Context) {
	var req author.UpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		h.handleValidationError(c, err)
		return
	}

	a, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Data(c, http.StatusCreated, a.Project(nil))
}

// Update handles PUT /authors/:id
func (h *AuthorHandler) Update(c *gin.Context) {
	id, ok := h.idParam(c)
	if !ok {
		return
	}

	var req author.UpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		h.handleValidationError(c, err)
		return
	}

	a, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Data(c, http.StatusOK, a.Project(nil))
}

// Delete handles DELETE /authors/:id
func (h *AuthorHandler) Delete(c *gin.Context) {
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

func (h *AuthorHandler) idParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid author id")
		return 0, false
	}
	return id, true
}

func detail(a *author.Author, books []author.BookSummary) map[string]interface{} {
	out := a.Project(nil)

	serialized := make([]map[string]interface{}, 0, len(books))
	for _, b := range books {
		serialized = append(serialized, map[string]interface{}{
			"id":                 b.ID,
			"title":              b.Title,
			"isbn":               b.ISBN,
			"number_of_pages":    b.NumberOfPages,
			"description":        b.Description,
			"number_of_votes":    b.NumberOfVotes,
			"score_sum":          b.ScoreSum,
			"average_book_score": b.AverageBookScore,
		})
	}
	out["books"] = serialized

	return out
}

func (h *AuthorHandler) handleValidationError(c *gin.Context, err error) {
	var verrs validation.Errors
	if errors.As(err, &verrs) {
		response.BadRequest(c, verrs)
		return
	}
	response.BadRequest(c, err.Error())
}

func (h *AuthorHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, author.ErrAuthorNotFound):
		response.NotFound(c, "author not found")
	default:
		logger.Error("author handler error", err)
		response.InternalServerError(c, "internal server error")
	}
}
