package domain

import "time"

// Project is a published developer project.
type Project struct {
	ID           int64
	AuthorID     int64
	Title        string
	Description  string
	ThumbnailURL *string
	GithubURL    *string
	DemoURL      *string
	TechStack    []string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ProjectWithMeta is a project joined with its author and engagement counts.
type ProjectWithMeta struct {
	Project
	Author        User
	CommentCount  int64
	BookmarkCount int64
}
