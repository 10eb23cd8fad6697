package service

import (
	"context"

	"github.com/ngchuong/DevHub/internal/cache"
	dom "github.com/ngchuong/DevHub/internal/domain"
	"github.com/ngchuong/DevHub/internal/repo"
	"github.com/ngchuong/DevHub/internal/utils"
)

// BookmarkService handles saving and unsaving projects.
type BookmarkService struct {
	repo     repo.BookmarkRepo
	projects *cache.ProjectCache
}

// NewBookmarkService creates a BookmarkService. If c is nil, the trending
// cache is left alone on writes.
func NewBookmarkService(r repo.BookmarkRepo, c *cache.ProjectCache) *BookmarkService {
	return &BookmarkService{repo: r, projects: c}
}

// Toggle bookmarks the project if not yet bookmarked, removes the bookmark
// otherwise. Returns whether the project is bookmarked afterwards.
func (s *BookmarkService) Toggle(ctx context.Context, userID, projectID int64) (bool, error) {
	exists, err := s.repo.Exists(ctx, userID, projectID)
	if err != nil {
		return false, err
	}
	if exists {
		if _, err := s.repo.Delete(ctx, userID, projectID); err != nil {
			return false, err
		}
		s.invalidateCache(ctx)
		return false, nil
	}
	if _, err := s.repo.Create(ctx, userID, projectID); err != nil {
		// Lost a race with a concurrent bookmark; it exists either way.
		if utils.IsPGUniqueViolation(err) {
			return true, nil
		}
		if utils.IsPGForeignKeyViolation(err) {
			return false, ErrNotFound
		}
		return false, err
	}
	s.invalidateCache(ctx)
	return true, nil
}

// ListByUser returns the user's bookmarks with their projects.
func (s *BookmarkService) ListByUser(ctx context.Context, userID int64) ([]dom.BookmarkWithProject, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *BookmarkService) invalidateCache(ctx context.Context) {
	if s.projects != nil {
		_ = s.projects.Invalidate(ctx)
	}
}
