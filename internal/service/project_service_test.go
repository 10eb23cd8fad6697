package service

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dom "github.com/ngchuong/DevHub/internal/domain"
	"github.com/ngchuong/DevHub/internal/repo"
)

type fakeProjectRepo struct {
	nextID       int64
	projects     map[int64]dom.Project
	trendingHits int
}

func newFakeProjectRepo() *fakeProjectRepo {
	return &fakeProjectRepo{projects: make(map[int64]dom.Project)}
}

func (r *fakeProjectRepo) Create(_ context.Context, p dom.Project) (dom.Project, error) {
	r.nextID++
	p.ID = r.nextID
	r.projects[p.ID] = p
	return p, nil
}

func (r *fakeProjectRepo) GetByID(_ context.Context, id int64) (dom.ProjectWithMeta, error) {
	p, ok := r.projects[id]
	if !ok {
		return dom.ProjectWithMeta{}, pgx.ErrNoRows
	}
	return dom.ProjectWithMeta{Project: p}, nil
}

func (r *fakeProjectRepo) List(_ context.Context, _ repo.Page) ([]dom.ProjectWithMeta, int64, error) {
	var list []dom.ProjectWithMeta
	for _, p := range r.projects {
		list = append(list, dom.ProjectWithMeta{Project: p})
	}
	return list, int64(len(list)), nil
}

func (r *fakeProjectRepo) Trending(_ context.Context, limit int) ([]dom.ProjectWithMeta, error) {
	r.trendingHits++
	var list []dom.ProjectWithMeta
	for _, p := range r.projects {
		if len(list) == limit {
			break
		}
		list = append(list, dom.ProjectWithMeta{Project: p})
	}
	return list, nil
}

func (r *fakeProjectRepo) Update(_ context.Context, id int64, patch dom.Project) (dom.Project, error) {
	existing, ok := r.projects[id]
	if !ok {
		return dom.Project{}, pgx.ErrNoRows
	}
	patch.ID = id
	patch.AuthorID = existing.AuthorID
	r.projects[id] = patch
	return patch, nil
}

func (r *fakeProjectRepo) Delete(_ context.Context, id int64) (bool, error) {
	if _, ok := r.projects[id]; !ok {
		return false, nil
	}
	delete(r.projects, id)
	return true, nil
}

func TestProjectService_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	svc := NewProjectService(newFakeProjectRepo(), nil)

	p, err := svc.Create(ctx, 1, CreateProjectInput{
		Title:       "  DevHub  ",
		Description: "a social platform for developers",
		TechStack:   []string{"Go", "Postgres"},
	})
	require.NoError(t, err)
	assert.Equal(t, "DevHub", p.Title, "title is trimmed")

	got, err := svc.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.AuthorID)
}

func TestProjectService_CreateRejectsBlankText(t *testing.T) {
	ctx := context.Background()
	svc := NewProjectService(newFakeProjectRepo(), nil)

	// Whitespace-only fields trim to empty and must not be stored.
	_, err := svc.Create(ctx, 1, CreateProjectInput{Title: "   ", Description: "d"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Create(ctx, 1, CreateProjectInput{Title: "t", Description: "   "})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestProjectService_UpdateRejectsBlankTitle(t *testing.T) {
	ctx := context.Background()
	svc := NewProjectService(newFakeProjectRepo(), nil)

	p, err := svc.Create(ctx, 1, CreateProjectInput{Title: "mine", Description: "d"})
	require.NoError(t, err)

	blank := "   "
	_, err = svc.Update(ctx, 1, p.ID, UpdateProjectInput{Title: &blank})
	assert.ErrorIs(t, err, ErrInvalidInput)

	kept, err := svc.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "mine", kept.Title)
}

func TestProjectService_GetNotFound(t *testing.T) {
	svc := NewProjectService(newFakeProjectRepo(), nil)

	_, err := svc.GetByID(context.Background(), 42)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestProjectService_UpdateAuthorOnly(t *testing.T) {
	ctx := context.Background()
	svc := NewProjectService(newFakeProjectRepo(), nil)

	p, err := svc.Create(ctx, 1, CreateProjectInput{Title: "mine", Description: "d"})
	require.NoError(t, err)

	title := "stolen"
	_, err = svc.Update(ctx, 2, p.ID, UpdateProjectInput{Title: &title})
	assert.ErrorIs(t, err, ErrForbidden)

	title = "renamed"
	updated, err := svc.Update(ctx, 1, p.ID, UpdateProjectInput{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "renamed", updated.Title)
	assert.Equal(t, "d", updated.Description, "unset fields keep their value")
}

func TestProjectService_DeleteAuthorOnly(t *testing.T) {
	ctx := context.Background()
	svc := NewProjectService(newFakeProjectRepo(), nil)

	p, err := svc.Create(ctx, 1, CreateProjectInput{Title: "mine", Description: "d"})
	require.NoError(t, err)

	assert.ErrorIs(t, svc.Delete(ctx, 2, p.ID), ErrForbidden)
	require.NoError(t, svc.Delete(ctx, 1, p.ID))
	assert.ErrorIs(t, svc.Delete(ctx, 1, p.ID), ErrNotFound)
}

func TestProjectService_TrendingWithoutCache(t *testing.T) {
	ctx := context.Background()
	pr := newFakeProjectRepo()
	svc := NewProjectService(pr, nil)

	_, err := svc.Create(ctx, 1, CreateProjectInput{Title: "a", Description: "d"})
	require.NoError(t, err)

	list, err := svc.Trending(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
	assert.Equal(t, 1, pr.trendingHits)
}
