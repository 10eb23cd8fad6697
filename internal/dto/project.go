package dto

import (
	"time"

	dom "github.com/ngchuong/DevHub/internal/domain"
)

type CreateProjectRequest struct {
	Title        string   `json:"title" binding:"required,min=1,max=120"`
	Description  string   `json:"description" binding:"required,max=5000"`
	ThumbnailURL *string  `json:"thumbnail_url" binding:"omitempty,url"`
	GithubURL    *string  `json:"github_url" binding:"omitempty,url"`
	DemoURL      *string  `json:"demo_url" binding:"omitempty,url"`
	TechStack    []string `json:"tech_stack" binding:"omitempty,max=10,dive,min=1,max=40"`
}

// UpdateProjectRequest is a partial update: nil = leave unchanged.
type UpdateProjectRequest struct {
	Title        *string   `json:"title" binding:"omitempty,min=1,max=120"`
	Description  *string   `json:"description" binding:"omitempty,max=5000"`
	ThumbnailURL *string   `json:"thumbnail_url" binding:"omitempty,url"`
	GithubURL    *string   `json:"github_url" binding:"omitempty,url"`
	DemoURL      *string   `json:"demo_url" binding:"omitempty,url"`
	TechStack    *[]string `json:"tech_stack" binding:"omitempty,max=10,dive,min=1,max=40"`
}

type ProjectResponse struct {
	ID            int64        `json:"id"`
	Title         string       `json:"title"`
	Description   string       `json:"description"`
	ThumbnailURL  *string      `json:"thumbnail_url"`
	GithubURL     *string      `json:"github_url"`
	DemoURL       *string      `json:"demo_url"`
	TechStack     []string     `json:"tech_stack"`
	AuthorID      int64        `json:"author_id"`
	Author        UserResponse `json:"author"`
	CommentCount  int64        `json:"comment_count"`
	BookmarkCount int64        `json:"bookmark_count"`
	CreatedAt     time.Time    `json:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at"`
}

type ProjectListResponse struct {
	Items      []ProjectResponse `json:"items"`
	Total      int64             `json:"total"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
	TotalPages int               `json:"total_pages"`
}

// TrendingResponse is the unpaginated trending feed.
type TrendingResponse struct {
	Items []ProjectResponse `json:"items"`
}

// BookmarkToggleResponse reports the toggle outcome of POST /projects/{id}/bookmark.
type BookmarkToggleResponse struct {
	Bookmarked bool `json:"bookmarked"`
}

type BookmarkResponse struct {
	ID        int64           `json:"id"`
	CreatedAt time.Time       `json:"created_at"`
	Project   ProjectResponse `json:"project"`
}

type BookmarkListResponse struct {
	Items []BookmarkResponse `json:"items"`
}

// ProjectToResponse maps a joined project row to its response shape.
func ProjectToResponse(p dom.ProjectWithMeta) ProjectResponse {
	techStack := p.TechStack
	if techStack == nil {
		techStack = []string{}
	}
	return ProjectResponse{
		ID:            p.ID,
		Title:         p.Title,
		Description:   p.Description,
		ThumbnailURL:  p.ThumbnailURL,
		GithubURL:     p.GithubURL,
		DemoURL:       p.DemoURL,
		TechStack:     techStack,
		AuthorID:      p.AuthorID,
		Author:        UserToResponse(p.Author),
		CommentCount:  p.CommentCount,
		BookmarkCount: p.BookmarkCount,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

// ProjectsToResponses maps a slice of joined project rows.
func ProjectsToResponses(list []dom.ProjectWithMeta) []ProjectResponse {
	out := make([]ProjectResponse, len(list))
	for i := range list {
		out[i] = ProjectToResponse(list[i])
	}
	return out
}
