package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ngchuong/DevHub/internal/auth"
	dom "github.com/ngchuong/DevHub/internal/domain"
	"github.com/ngchuong/DevHub/internal/dto"
	"github.com/ngchuong/DevHub/internal/service"
)

type BookmarkHandler struct {
	svc *service.BookmarkService
}

func NewBookmarkHandler(svc *service.BookmarkService) *BookmarkHandler {
	return &BookmarkHandler{svc: svc}
}

// List godoc
// @Summary      List the caller's bookmarks
// @Tags         bookmarks
// @Produce      json
// @Security     CookieAuth
// @Success      200  {object}  dto.BookmarkListResponse
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /bookmarks [get]
func (h *BookmarkHandler) List(c *gin.Context) {
	userID := auth.UserIDFromContext(c)
	list, err := h.svc.ListByUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, dto.BookmarkListResponse{Items: bookmarksToResponses(list)})
}

func bookmarksToResponses(list []dom.BookmarkWithProject) []dto.BookmarkResponse {
	out := make([]dto.BookmarkResponse, len(list))
	for i := range list {
		out[i] = bookmarkToResponse(list[i])
	}
	return out
}
