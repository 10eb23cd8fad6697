package domain

import "time"

// Bookmark marks a project saved by a user. One per (user, project).
type Bookmark struct {
	ID        int64
	UserID    int64
	ProjectID int64
	CreatedAt time.Time
}

// BookmarkWithProject is a bookmark joined with the bookmarked project and its author.
type BookmarkWithProject struct {
	Bookmark
	Project ProjectWithMeta
}
