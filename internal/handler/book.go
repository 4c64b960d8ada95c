package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pustaka-app/backend/internal/model"
	"github.com/pustaka-app/backend/internal/service"
)

type BookHandler struct {
	svc *service.BookService
}

func NewBookHandler(svc *service.BookService) *BookHandler {
	return &BookHandler{svc: svc}
}

// List godoc
// @Summary List the public book catalog
// @Tags books
// @Produce json
// @Success 200 {object} model.BookListResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /api/books [get]
func (h *BookHandler) List(c *gin.Context) {
	books, err := h.svc.List(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.BookListResponse{Message: "success", Data: books})
}

// Create godoc
// @Summary Add a book to the catalog
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.CreateBookRequest true "Book fields"
// @Success 201 {object} model.BookResponse
// @Failure 400 {object} model.ErrorResponse
// @Failure 401 {object} model.ErrorResponse
// @Failure 403 {object} model.ErrorResponse
// @Failure 409 {object} model.ErrorResponse
// @Router /api/admin/books [post]
func (h *BookHandler) Create(c *gin.Context) {
	var req model.CreateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	book, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, model.BookResponse{Message: "Book created successfully", Data: book})
}
