package domain

import "time"

// Comment is a user comment on a project.
type Comment struct {
	ID        int64
	AuthorID  int64
	ProjectID int64
	Content   string
	CreatedAt time.Time
}

// CommentWithAuthor is a comment joined with its author's public projection.
type CommentWithAuthor struct {
	Comment
	Author User
}
