package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/jackc/pgx/v5"

	"github.com/ngchuong/DevHub/internal/cache"
	dom "github.com/ngchuong/DevHub/internal/domain"
	"github.com/ngchuong/DevHub/internal/repo"
	"github.com/ngchuong/DevHub/internal/utils"
)

// CommentService handles project comments.
type CommentService struct {
	repo     repo.CommentRepo
	users    repo.UserRepo
	projects *cache.ProjectCache
}

// NewCommentService creates a CommentService. If c is nil, the trending
// cache is left alone on writes.
func NewCommentService(r repo.CommentRepo, users repo.UserRepo, c *cache.ProjectCache) *CommentService {
	return &CommentService{repo: r, users: users, projects: c}
}

// Create adds a comment to a project. A missing project maps to ErrNotFound.
func (s *CommentService) Create(ctx context.Context, authorID, projectID int64, content string) (dom.CommentWithAuthor, error) {
	content = strings.TrimSpace(content)
	// Re-checked after trimming so whitespace-only content never lands empty.
	if n := utf8.RuneCountInString(content); n < 1 || n > 2000 {
		return dom.CommentWithAuthor{}, fmt.Errorf("%w: content must be 1-2000 characters", ErrInvalidInput)
	}
	c, err := s.repo.Create(ctx, dom.Comment{
		AuthorID:  authorID,
		ProjectID: projectID,
		Content:   content,
	})
	if err != nil {
		if utils.IsPGForeignKeyViolation(err) {
			return dom.CommentWithAuthor{}, ErrNotFound
		}
		return dom.CommentWithAuthor{}, err
	}
	author, err := s.users.GetByID(ctx, authorID)
	if err != nil {
		return dom.CommentWithAuthor{}, err
	}
	if s.projects != nil {
		_ = s.projects.Invalidate(ctx)
	}
	return dom.CommentWithAuthor{Comment: c, Author: author}, nil
}

// ListByProject returns a project's comments with authors.
func (s *CommentService) ListByProject(ctx context.Context, projectID int64) ([]dom.CommentWithAuthor, error) {
	return s.repo.ListByProject(ctx, projectID)
}

// Delete removes a comment. Only the author may delete it.
func (s *CommentService) Delete(ctx context.Context, userID, id int64) error {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	if c.AuthorID != userID {
		return ErrForbidden
	}
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	if s.projects != nil {
		_ = s.projects.Invalidate(ctx)
	}
	return nil
}
