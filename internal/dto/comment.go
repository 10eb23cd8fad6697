package dto

import (
	"time"

	dom "github.com/ngchuong/DevHub/internal/domain"
)

type CreateCommentRequest struct {
	Content   string `json:"content" binding:"required,min=1,max=2000"`
	ProjectID int64  `json:"project_id" binding:"required"`
}

type CommentResponse struct {
	ID        int64        `json:"id"`
	Content   string       `json:"content"`
	AuthorID  int64        `json:"author_id"`
	ProjectID int64        `json:"project_id"`
	Author    UserResponse `json:"author"`
	CreatedAt time.Time    `json:"created_at"`
}

type CommentListResponse struct {
	Items []CommentResponse `json:"items"`
}

// CommentToResponse maps a joined comment row to its response shape.
func CommentToResponse(c dom.CommentWithAuthor) CommentResponse {
	return CommentResponse{
		ID:        c.ID,
		Content:   c.Content,
		AuthorID:  c.AuthorID,
		ProjectID: c.ProjectID,
		Author:    UserToResponse(c.Author),
		CreatedAt: c.CreatedAt,
	}
}

// CommentsToResponses maps a slice of joined comment rows.
func CommentsToResponses(list []dom.CommentWithAuthor) []CommentResponse {
	out := make([]CommentResponse, len(list))
	for i := range list {
		out[i] = CommentToResponse(list[i])
	}
	return out
}
