package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/jackc/pgx/v5"
	"golang.org/x/sync/singleflight"

	"github.com/ngchuong/DevHub/internal/cache"
	dom "github.com/ngchuong/DevHub/internal/domain"
	"github.com/ngchuong/DevHub/internal/repo"
)

const trendingLimit = 10

// CreateProjectInput carries the fields of a new project.
type CreateProjectInput struct {
	Title        string
	Description  string
	ThumbnailURL *string
	GithubURL    *string
	DemoURL      *string
	TechStack    []string
}

// UpdateProjectInput is a partial update: nil = leave unchanged.
type UpdateProjectInput struct {
	Title        *string
	Description  *string
	ThumbnailURL *string
	GithubURL    *string
	DemoURL      *string
	TechStack    *[]string
}

// ProjectService handles project CRUD and the trending feed.
type ProjectService struct {
	repo  repo.ProjectRepo
	cache *cache.ProjectCache
	sf    singleflight.Group
}

// NewProjectService creates a ProjectService. If c is nil, caching is disabled.
func NewProjectService(r repo.ProjectRepo, c *cache.ProjectCache) *ProjectService {
	return &ProjectService{repo: r, cache: c}
}

func (s *ProjectService) Create(ctx context.Context, authorID int64, in CreateProjectInput) (dom.Project, error) {
	in.Title = strings.TrimSpace(in.Title)
	in.Description = strings.TrimSpace(in.Description)
	if err := checkProjectText(in.Title, in.Description); err != nil {
		return dom.Project{}, err
	}
	p, err := s.repo.Create(ctx, dom.Project{
		AuthorID:     authorID,
		Title:        in.Title,
		Description:  in.Description,
		ThumbnailURL: in.ThumbnailURL,
		GithubURL:    in.GithubURL,
		DemoURL:      in.DemoURL,
		TechStack:    in.TechStack,
	})
	if err != nil {
		return dom.Project{}, err
	}
	s.invalidateCache(ctx)
	return p, nil
}

func (s *ProjectService) GetByID(ctx context.Context, id int64) (dom.ProjectWithMeta, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.ProjectWithMeta{}, ErrNotFound
		}
		return dom.ProjectWithMeta{}, err
	}
	return p, nil
}

func (s *ProjectService) List(ctx context.Context, page repo.Page) ([]dom.ProjectWithMeta, int64, error) {
	page.Search = strings.TrimSpace(page.Search)
	return s.repo.List(ctx, page)
}

// Trending returns the most bookmarked and commented projects, cached in
// Redis. Concurrent misses collapse into one DB query.
func (s *ProjectService) Trending(ctx context.Context) ([]dom.ProjectWithMeta, error) {
	if s.cache == nil {
		return s.repo.Trending(ctx, trendingLimit)
	}
	v, err, _ := s.sf.Do("trending", func() (interface{}, error) {
		if list, err := s.cache.GetTrending(ctx); err == nil && list != nil {
			return list, nil
		}
		list, err := s.repo.Trending(ctx, trendingLimit)
		if err != nil {
			return nil, err
		}
		_ = s.cache.SetTrending(ctx, list)
		return list, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]dom.ProjectWithMeta), nil
}

// Update applies a partial update. Only the author may update a project.
func (s *ProjectService) Update(ctx context.Context, userID, id int64, in UpdateProjectInput) (dom.Project, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Project{}, ErrNotFound
		}
		return dom.Project{}, err
	}
	if existing.AuthorID != userID {
		return dom.Project{}, ErrForbidden
	}
	patch := existing.Project
	if in.Title != nil {
		patch.Title = strings.TrimSpace(*in.Title)
	}
	if in.Description != nil {
		patch.Description = strings.TrimSpace(*in.Description)
	}
	if err := checkProjectText(patch.Title, patch.Description); err != nil {
		return dom.Project{}, err
	}
	if in.ThumbnailURL != nil {
		patch.ThumbnailURL = in.ThumbnailURL
	}
	if in.GithubURL != nil {
		patch.GithubURL = in.GithubURL
	}
	if in.DemoURL != nil {
		patch.DemoURL = in.DemoURL
	}
	if in.TechStack != nil {
		patch.TechStack = *in.TechStack
	}
	p, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Project{}, ErrNotFound
		}
		return dom.Project{}, err
	}
	s.invalidateCache(ctx)
	return p, nil
}

// Delete removes a project. Only the author may delete it; comments and
// bookmarks cascade at the DB.
func (s *ProjectService) Delete(ctx context.Context, userID, id int64) error {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	if existing.AuthorID != userID {
		return ErrForbidden
	}
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	s.invalidateCache(ctx)
	return nil
}

// checkProjectText re-checks the title and description bounds on the
// trimmed values; padded input must not shrink below the minimum once stored.
func checkProjectText(title, description string) error {
	if n := utf8.RuneCountInString(title); n < 1 || n > 120 {
		return fmt.Errorf("%w: title must be 1-120 characters", ErrInvalidInput)
	}
	if n := utf8.RuneCountInString(description); n < 1 || n > 5000 {
		return fmt.Errorf("%w: description must be 1-5000 characters", ErrInvalidInput)
	}
	return nil
}

func (s *ProjectService) invalidateCache(ctx context.Context) {
	if s.cache != nil {
		_ = s.cache.Invalidate(ctx)
	}
}
