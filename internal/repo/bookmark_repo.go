package repo

import (
	"context"

	dom "github.com/ngchuong/DevHub/internal/domain"
)

type BookmarkRepo interface {
	Create(ctx context.Context, userID, projectID int64) (dom.Bookmark, error)
	Delete(ctx context.Context, userID, projectID int64) (bool, error)
	Exists(ctx context.Context, userID, projectID int64) (bool, error)
	ListByUser(ctx context.Context, userID int64) ([]dom.BookmarkWithProject, error)
}

type PGBookmarkRepo struct {
	db DB
}

func NewPGBookmarkRepo(db DB) *PGBookmarkRepo {
	return &PGBookmarkRepo{db: db}
}

// Create inserts a bookmark. Double-bookmarking surfaces as a unique
// violation, a missing project as a foreign key violation.
func (r *PGBookmarkRepo) Create(ctx context.Context, userID, projectID int64) (dom.Bookmark, error) {
	query := `
		INSERT INTO bookmarks (user_id, project_id)
		VALUES ($1, $2)
		RETURNING id, user_id, project_id, created_at`
	var b dom.Bookmark
	err := r.db.QueryRow(ctx, query, userID, projectID).Scan(
		&b.ID, &b.UserID, &b.ProjectID, &b.CreatedAt,
	)
	return b, err
}

func (r *PGBookmarkRepo) Delete(ctx context.Context, userID, projectID int64) (bool, error) {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM bookmarks WHERE user_id = $1 AND project_id = $2`,
		userID, projectID,
	)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *PGBookmarkRepo) Exists(ctx context.Context, userID, projectID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM bookmarks WHERE user_id = $1 AND project_id = $2)`,
		userID, projectID,
	).Scan(&exists)
	return exists, err
}

// ListByUser returns the user's bookmarks newest first, each with the
// bookmarked project, its author and engagement counts.
func (r *PGBookmarkRepo) ListByUser(ctx context.Context, userID int64) ([]dom.BookmarkWithProject, error) {
	query := `
		SELECT bm.id, bm.user_id, bm.project_id, bm.created_at, ` + projectMetaColumns + `
		FROM bookmarks bm
		JOIN projects p ON p.id = bm.project_id
		JOIN users u ON u.id = p.author_id
		WHERE bm.user_id = $1
		ORDER BY bm.created_at DESC`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []dom.BookmarkWithProject
	for rows.Next() {
		var b dom.BookmarkWithProject
		p := &b.Project
		if err := rows.Scan(
			&b.ID, &b.UserID, &b.ProjectID, &b.CreatedAt,
			&p.ID, &p.AuthorID, &p.Title, &p.Description, &p.ThumbnailURL, &p.GithubURL, &p.DemoURL,
			&p.TechStack, &p.CreatedAt, &p.UpdatedAt,
			&p.Author.ID, &p.Author.Username, &p.Author.Email, &p.Author.AvatarURL, &p.Author.Bio,
			&p.Author.Location, &p.Author.GithubURL, &p.Author.LinkedinURL, &p.Author.WebsiteURL,
			&p.Author.CreatedAt, &p.Author.UpdatedAt,
			&p.CommentCount, &p.BookmarkCount,
		); err != nil {
			return nil, err
		}
		list = append(list, b)
	}
	return list, rows.Err()
}
