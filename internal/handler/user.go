package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/pustaka-app/backend/internal/model"
	"github.com/pustaka-app/backend/internal/service"
)

type UserHandler struct {
	authSvc *service.AuthService
	bookSvc *service.BookService

	cookieName string
}

func NewUserHandler(authSvc *service.AuthService, bookSvc *service.BookService, cookieName string) *UserHandler {
	return &UserHandler{authSvc: authSvc, bookSvc: bookSvc, cookieName: cookieName}
}

// Profile godoc
// @Summary Get current user's profile with borrow history
// @Tags user
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.Profile
// @Failure 401 {object} model.ErrorResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /api/user/profile [get]
func (h *UserHandler) Profile(c *gin.Context) {
	identity := Identity(c)
	if identity == nil {
		// Guard normally resolves this; re-extract if the route was wired
		// outside the protected prefix table.
		identity = ExtractIdentity(h.authSvc.Codec(), c, h.cookieName)
	}
	if identity == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	profile, err := h.authSvc.Profile(c.Request.Context(), identity.UserID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// Books godoc
// @Summary List books, or fetch one by id
// @Tags user
// @Produce json
// @Security BearerAuth
// @Param id query int false "Book ID"
// @Success 200 {object} model.BookListResponse
// @Failure 401 {object} model.ErrorResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /api/user/books [get]
func (h *UserHandler) Books(c *gin.Context) {
	idParam := c.Query("id")
	if idParam == "" {
		books, err := h.bookSvc.List(c.Request.Context())
		if err != nil {
			writeServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, model.BookListResponse{Message: "success", Data: books})
		return
	}

	id, err := strconv.ParseInt(idParam, 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid book id"})
		return
	}

	book, err := h.bookSvc.Get(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.BookResponse{Message: "success", Data: book})
}
