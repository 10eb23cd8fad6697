package repo

import (
	"context"

	dom "github.com/ngchuong/DevHub/internal/domain"
)

type CommentRepo interface {
	Create(ctx context.Context, c dom.Comment) (dom.Comment, error)
	GetByID(ctx context.Context, id int64) (dom.Comment, error)
	ListByProject(ctx context.Context, projectID int64) ([]dom.CommentWithAuthor, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type PGCommentRepo struct {
	db DB
}

func NewPGCommentRepo(db DB) *PGCommentRepo {
	return &PGCommentRepo{db: db}
}

// Create inserts a comment. A missing project surfaces as a foreign key
// violation from the DB.
func (r *PGCommentRepo) Create(ctx context.Context, c dom.Comment) (dom.Comment, error) {
	query := `
		INSERT INTO comments (author_id, project_id, content)
		VALUES ($1, $2, $3)
		RETURNING id, author_id, project_id, content, created_at`
	var out dom.Comment
	err := r.db.QueryRow(ctx, query, c.AuthorID, c.ProjectID, c.Content).Scan(
		&out.ID, &out.AuthorID, &out.ProjectID, &out.Content, &out.CreatedAt,
	)
	return out, err
}

func (r *PGCommentRepo) GetByID(ctx context.Context, id int64) (dom.Comment, error) {
	var c dom.Comment
	err := r.db.QueryRow(ctx,
		`SELECT id, author_id, project_id, content, created_at FROM comments WHERE id = $1`,
		id,
	).Scan(&c.ID, &c.AuthorID, &c.ProjectID, &c.Content, &c.CreatedAt)
	return c, err
}

// ListByProject returns a project's comments oldest first, each with its author.
func (r *PGCommentRepo) ListByProject(ctx context.Context, projectID int64) ([]dom.CommentWithAuthor, error) {
	query := `
		SELECT c.id, c.author_id, c.project_id, c.content, c.created_at,
			u.id, u.username, u.email, u.avatar_url, u.bio, u.location,
			u.github_url, u.linkedin_url, u.website_url, u.created_at, u.updated_at
		FROM comments c JOIN users u ON u.id = c.author_id
		WHERE c.project_id = $1
		ORDER BY c.created_at ASC`
	rows, err := r.db.Query(ctx, query, projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []dom.CommentWithAuthor
	for rows.Next() {
		var c dom.CommentWithAuthor
		if err := rows.Scan(
			&c.ID, &c.AuthorID, &c.ProjectID, &c.Content, &c.CreatedAt,
			&c.Author.ID, &c.Author.Username, &c.Author.Email, &c.Author.AvatarURL, &c.Author.Bio,
			&c.Author.Location, &c.Author.GithubURL, &c.Author.LinkedinURL, &c.Author.WebsiteURL,
			&c.Author.CreatedAt, &c.Author.UpdatedAt,
		); err != nil {
			return nil, err
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

func (r *PGCommentRepo) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM comments WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
