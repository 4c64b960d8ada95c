package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/pustaka-app/backend/internal/model"
	"github.com/pustaka-app/backend/internal/service"
)

type BorrowHandler struct {
	svc *service.BorrowService
}

func NewBorrowHandler(svc *service.BorrowService) *BorrowHandler {
	return &BorrowHandler{svc: svc}
}

// Create godoc
// @Summary Record a book borrow for a user
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.CreateBorrowRequest true "User ID, book ID and optional due date"
// @Success 201 {object} model.BorrowResponse
// @Failure 400 {object} model.ErrorResponse
// @Failure 401 {object} model.ErrorResponse
// @Failure 403 {object} model.ErrorResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /api/admin/borrows [post]
func (h *BorrowHandler) Create(c *gin.Context) {
	var req model.CreateBorrowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	borrow, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, model.BorrowResponse{Message: "Book borrowed successfully", Data: borrow})
}

// Return godoc
// @Summary Mark a borrow record as returned
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Borrow ID"
// @Success 200 {object} model.BorrowResponse
// @Failure 400 {object} model.ErrorResponse
// @Failure 401 {object} model.ErrorResponse
// @Failure 403 {object} model.ErrorResponse
// @Failure 404 {object} model.ErrorResponse
// @Failure 409 {object} model.ErrorResponse
// @Router /api/admin/borrows/{id}/return [put]
func (h *BorrowHandler) Return(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid borrow id"})
		return
	}

	borrow, err := h.svc.Return(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.BorrowResponse{Message: "Book returned successfully", Data: borrow})
}
