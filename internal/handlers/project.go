package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ngchuong/DevHub/internal/auth"
	dom "github.com/ngchuong/DevHub/internal/domain"
	"github.com/ngchuong/DevHub/internal/dto"
	"github.com/ngchuong/DevHub/internal/service"
)

type ProjectHandler struct {
	svc       *service.ProjectService
	bookmarks *service.BookmarkService
}

func NewProjectHandler(svc *service.ProjectService, bookmarks *service.BookmarkService) *ProjectHandler {
	return &ProjectHandler{svc: svc, bookmarks: bookmarks}
}

// Create godoc
// @Summary      Publish a project
// @Tags         projects
// @Accept       json
// @Produce      json
// @Security     CookieAuth
// @Param        body  body      dto.CreateProjectRequest  true  "Project body"
// @Success      201   {object}  dto.ProjectResponse
// @Failure      400   {object}  map[string]string
// @Router       /projects [post]
func (h *ProjectHandler) Create(c *gin.Context) {
	var req dto.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	userID := auth.UserIDFromContext(c)
	p, err := h.svc.Create(c.Request.Context(), userID, service.CreateProjectInput{
		Title:        req.Title,
		Description:  req.Description,
		ThumbnailURL: req.ThumbnailURL,
		GithubURL:    req.GithubURL,
		DemoURL:      req.DemoURL,
		TechStack:    req.TechStack,
	})
	if err != nil {
		h.writeProjectError(c, err)
		return
	}
	// Re-read with author and counts for a uniform response shape.
	full, err := h.svc.GetByID(c.Request.Context(), p.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, dto.ProjectToResponse(full))
}

// List godoc
// @Summary      List projects
// @Tags         projects
// @Produce      json
// @Param        page    query  int     false  "Page (default 1)"
// @Param        limit   query  int     false  "Page size (default 10, max 100)"
// @Param        search  query  string  false  "Match title or description"
// @Success      200  {object}  dto.ProjectListResponse
// @Failure      500  {object}  map[string]string
// @Router       /projects [get]
func (h *ProjectHandler) List(c *gin.Context) {
	page := pageFromQuery(c)
	list, total, err := h.svc.List(c.Request.Context(), page)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, dto.ProjectListResponse{
		Items:      dto.ProjectsToResponses(list),
		Total:      total,
		Page:       page.Page,
		Limit:      page.Limit,
		TotalPages: totalPages(total, page.Limit),
	})
}

// Trending godoc
// @Summary      List trending projects
// @Tags         projects
// @Produce      json
// @Success      200  {object}  dto.TrendingResponse
// @Failure      500  {object}  map[string]string
// @Router       /projects/trending [get]
func (h *ProjectHandler) Trending(c *gin.Context) {
	list, err := h.svc.Trending(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, dto.TrendingResponse{Items: dto.ProjectsToResponses(list)})
}

// GetByID godoc
// @Summary      Get a project by ID
// @Tags         projects
// @Produce      json
// @Param        id   path      int  true  "Project ID"
// @Success      200  {object}  dto.ProjectResponse
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /projects/{id} [get]
func (h *ProjectHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	p, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "project not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, dto.ProjectToResponse(p))
}

// Update godoc
// @Summary      Update a project (author only)
// @Tags         projects
// @Accept       json
// @Produce      json
// @Security     CookieAuth
// @Param        id    path      int                       true  "Project ID"
// @Param        body  body      dto.UpdateProjectRequest  true  "Partial update"
// @Success      200   {object}  dto.ProjectResponse
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /projects/{id} [patch]
func (h *ProjectHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	userID := auth.UserIDFromContext(c)
	_, err := h.svc.Update(c.Request.Context(), userID, id, service.UpdateProjectInput{
		Title:        req.Title,
		Description:  req.Description,
		ThumbnailURL: req.ThumbnailURL,
		GithubURL:    req.GithubURL,
		DemoURL:      req.DemoURL,
		TechStack:    req.TechStack,
	})
	if err != nil {
		h.writeProjectError(c, err)
		return
	}
	full, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, dto.ProjectToResponse(full))
}

// Delete godoc
// @Summary      Delete a project (author only)
// @Tags         projects
// @Security     CookieAuth
// @Param        id   path  int  true  "Project ID"
// @Success      204
// @Failure      400  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /projects/{id} [delete]
func (h *ProjectHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	userID := auth.UserIDFromContext(c)
	if err := h.svc.Delete(c.Request.Context(), userID, id); err != nil {
		h.writeProjectError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ToggleBookmark godoc
// @Summary      Bookmark or unbookmark a project
// @Tags         projects
// @Produce      json
// @Security     CookieAuth
// @Param        id   path      int  true  "Project ID"
// @Success      200  {object}  dto.BookmarkToggleResponse
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /projects/{id}/bookmark [post]
func (h *ProjectHandler) ToggleBookmark(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	userID := auth.UserIDFromContext(c)
	bookmarked, err := h.bookmarks.Toggle(c.Request.Context(), userID, id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "project not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, dto.BookmarkToggleResponse{Bookmarked: bookmarked})
}

func (h *ProjectHandler) writeProjectError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "project not found"})
	case errors.Is(err, service.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "not the project author"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

func bookmarkToResponse(b dom.BookmarkWithProject) dto.BookmarkResponse {
	return dto.BookmarkResponse{
		ID:        b.ID,
		CreatedAt: b.CreatedAt,
		Project:   dto.ProjectToResponse(b.Project),
	}
}
