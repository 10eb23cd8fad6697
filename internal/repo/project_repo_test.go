package repo

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dom "github.com/ngchuong/DevHub/internal/domain"
)

var projectMetaCols = []string{
	"id", "author_id", "title", "description", "thumbnail_url", "github_url", "demo_url",
	"tech_stack", "created_at", "updated_at",
	"u_id", "u_username", "u_email", "u_avatar_url", "u_bio", "u_location",
	"u_github_url", "u_linkedin_url", "u_website_url", "u_created_at", "u_updated_at",
	"comment_count", "bookmark_count",
}

func projectMetaRow(id, authorID int64, title string) *pgxmock.Rows {
	now := time.Now()
	return pgxmock.NewRows(projectMetaCols).AddRow(
		id, authorID, title, "desc", nil, nil, nil, []string{"Go"}, now, now,
		authorID, "alice", "a@x.com", nil, nil, nil, nil, nil, nil, now, now,
		int64(3), int64(2),
	)
}

func TestPGProjectRepo_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	now := time.Now()
	mock.ExpectQuery(`INSERT INTO projects`).
		WithArgs(int64(1), "DevHub", "desc", (*string)(nil), (*string)(nil), (*string)(nil), []string{"Go"}).
		WillReturnRows(pgxmock.NewRows([]string{
			"id", "author_id", "title", "description", "thumbnail_url", "github_url", "demo_url",
			"tech_stack", "created_at", "updated_at",
		}).AddRow(int64(5), int64(1), "DevHub", "desc", nil, nil, nil, []string{"Go"}, now, now))

	repo := NewPGProjectRepo(mock)
	p, err := repo.Create(context.Background(), dom.Project{
		AuthorID: 1, Title: "DevHub", Description: "desc", TechStack: []string{"Go"},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(5), p.ID)
	assert.Equal(t, []string{"Go"}, p.TechStack)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPGProjectRepo_GetByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(`SELECT .+ FROM projects p JOIN users u`).
		WithArgs(int64(5)).
		WillReturnRows(projectMetaRow(5, 1, "DevHub"))

	repo := NewPGProjectRepo(mock)
	p, err := repo.GetByID(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, "DevHub", p.Title)
	assert.Equal(t, "alice", p.Author.Username)
	assert.Equal(t, int64(3), p.CommentCount)
	assert.Equal(t, int64(2), p.BookmarkCount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPGProjectRepo_GetByIDNotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(`SELECT .+ FROM projects p JOIN users u`).
		WithArgs(int64(42)).
		WillReturnError(pgx.ErrNoRows)

	repo := NewPGProjectRepo(mock)
	_, err = repo.GetByID(context.Background(), 42)
	assert.ErrorIs(t, err, pgx.ErrNoRows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPGProjectRepo_Delete(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec(`DELETE FROM projects WHERE id`).
		WithArgs(int64(5)).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	mock.ExpectExec(`DELETE FROM projects WHERE id`).
		WithArgs(int64(5)).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	repo := NewPGProjectRepo(mock)

	deleted, err := repo.Delete(context.Background(), 5)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.Delete(context.Background(), 5)
	require.NoError(t, err)
	assert.False(t, deleted)
	assert.NoError(t, mock.ExpectationsWereMet())
}
