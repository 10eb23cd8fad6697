package service

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dom "github.com/ngchuong/DevHub/internal/domain"
)

type fakeCommentRepo struct {
	nextID   int64
	comments map[int64]dom.Comment
	projects map[int64]bool
}

func newFakeCommentRepo(projectIDs ...int64) *fakeCommentRepo {
	projects := make(map[int64]bool)
	for _, id := range projectIDs {
		projects[id] = true
	}
	return &fakeCommentRepo{comments: make(map[int64]dom.Comment), projects: projects}
}

func (r *fakeCommentRepo) Create(_ context.Context, c dom.Comment) (dom.Comment, error) {
	if !r.projects[c.ProjectID] {
		return dom.Comment{}, &pgconn.PgError{Code: "23503"}
	}
	r.nextID++
	c.ID = r.nextID
	r.comments[c.ID] = c
	return c, nil
}

func (r *fakeCommentRepo) GetByID(_ context.Context, id int64) (dom.Comment, error) {
	c, ok := r.comments[id]
	if !ok {
		return dom.Comment{}, pgx.ErrNoRows
	}
	return c, nil
}

func (r *fakeCommentRepo) ListByProject(_ context.Context, projectID int64) ([]dom.CommentWithAuthor, error) {
	var list []dom.CommentWithAuthor
	for _, c := range r.comments {
		if c.ProjectID == projectID {
			list = append(list, dom.CommentWithAuthor{Comment: c})
		}
	}
	return list, nil
}

func (r *fakeCommentRepo) Delete(_ context.Context, id int64) (bool, error) {
	if _, ok := r.comments[id]; !ok {
		return false, nil
	}
	delete(r.comments, id)
	return true, nil
}

func TestCommentService_Create(t *testing.T) {
	ctx := context.Background()
	users := newFakeUserRepo()
	ids := seedUsers(t, users, "alice")
	svc := NewCommentService(newFakeCommentRepo(1), users, nil)

	c, err := svc.Create(ctx, ids[0], 1, "  nice project  ")
	require.NoError(t, err)
	assert.Equal(t, "nice project", c.Content, "content is trimmed")
	assert.Equal(t, "alice", c.Author.Username)
}

func TestCommentService_CreateRejectsBlankContent(t *testing.T) {
	users := newFakeUserRepo()
	ids := seedUsers(t, users, "alice")
	svc := NewCommentService(newFakeCommentRepo(1), users, nil)

	// Whitespace-only content trims to empty and must not be stored.
	_, err := svc.Create(context.Background(), ids[0], 1, "   ")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCommentService_CreateMissingProject(t *testing.T) {
	users := newFakeUserRepo()
	ids := seedUsers(t, users, "alice")
	svc := NewCommentService(newFakeCommentRepo(), users, nil)

	_, err := svc.Create(context.Background(), ids[0], 42, "hello")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCommentService_DeleteAuthorOnly(t *testing.T) {
	ctx := context.Background()
	users := newFakeUserRepo()
	ids := seedUsers(t, users, "alice")
	svc := NewCommentService(newFakeCommentRepo(1), users, nil)

	c, err := svc.Create(ctx, ids[0], 1, "hello")
	require.NoError(t, err)

	assert.ErrorIs(t, svc.Delete(ctx, ids[0]+1, c.ID), ErrForbidden)
	require.NoError(t, svc.Delete(ctx, ids[0], c.ID))
	assert.ErrorIs(t, svc.Delete(ctx, ids[0], c.ID), ErrNotFound)
}
