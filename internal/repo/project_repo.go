package repo

import (
	"context"

	"github.com/jackc/pgx/v5"

	dom "github.com/ngchuong/DevHub/internal/domain"
)

// projectMetaColumns joins a project with its author and engagement counts.
const projectMetaColumns = `
		p.id, p.author_id, p.title, p.description, p.thumbnail_url, p.github_url, p.demo_url,
		p.tech_stack, p.created_at, p.updated_at,
		u.id, u.username, u.email, u.avatar_url, u.bio, u.location,
		u.github_url, u.linkedin_url, u.website_url, u.created_at, u.updated_at,
		(SELECT COUNT(*) FROM comments c WHERE c.project_id = p.id),
		(SELECT COUNT(*) FROM bookmarks b WHERE b.project_id = p.id)`

type ProjectRepo interface {
	Create(ctx context.Context, p dom.Project) (dom.Project, error)
	GetByID(ctx context.Context, id int64) (dom.ProjectWithMeta, error)
	List(ctx context.Context, page Page) ([]dom.ProjectWithMeta, int64, error)
	Trending(ctx context.Context, limit int) ([]dom.ProjectWithMeta, error)
	Update(ctx context.Context, id int64, patch dom.Project) (dom.Project, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type PGProjectRepo struct {
	db DB
}

func NewPGProjectRepo(db DB) *PGProjectRepo {
	return &PGProjectRepo{db: db}
}

func (r *PGProjectRepo) Create(ctx context.Context, p dom.Project) (dom.Project, error) {
	query := `
		INSERT INTO projects (author_id, title, description, thumbnail_url, github_url, demo_url, tech_stack)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, author_id, title, description, thumbnail_url, github_url, demo_url,
			tech_stack, created_at, updated_at`
	var out dom.Project
	err := r.db.QueryRow(ctx, query,
		p.AuthorID, p.Title, p.Description, p.ThumbnailURL, p.GithubURL, p.DemoURL, p.TechStack,
	).Scan(
		&out.ID, &out.AuthorID, &out.Title, &out.Description, &out.ThumbnailURL,
		&out.GithubURL, &out.DemoURL, &out.TechStack, &out.CreatedAt, &out.UpdatedAt,
	)
	return out, err
}

func (r *PGProjectRepo) GetByID(ctx context.Context, id int64) (dom.ProjectWithMeta, error) {
	query := `
		SELECT ` + projectMetaColumns + `
		FROM projects p JOIN users u ON u.id = p.author_id
		WHERE p.id = $1`
	var p dom.ProjectWithMeta
	err := r.db.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.AuthorID, &p.Title, &p.Description, &p.ThumbnailURL, &p.GithubURL, &p.DemoURL,
		&p.TechStack, &p.CreatedAt, &p.UpdatedAt,
		&p.Author.ID, &p.Author.Username, &p.Author.Email, &p.Author.AvatarURL, &p.Author.Bio,
		&p.Author.Location, &p.Author.GithubURL, &p.Author.LinkedinURL, &p.Author.WebsiteURL,
		&p.Author.CreatedAt, &p.Author.UpdatedAt,
		&p.CommentCount, &p.BookmarkCount,
	)
	return p, err
}

// List returns a page of projects newest first, with the total count. Search
// matches title and description case-insensitively.
func (r *PGProjectRepo) List(ctx context.Context, page Page) ([]dom.ProjectWithMeta, int64, error) {
	pattern := "%" + page.Search + "%"

	var total int64
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM projects p
		WHERE $1 = '%%' OR p.title ILIKE $1 OR p.description ILIKE $1`,
		pattern,
	).Scan(&total)
	if err != nil {
		return nil, 0, err
	}

	query := `
		SELECT ` + projectMetaColumns + `
		FROM projects p JOIN users u ON u.id = p.author_id
		WHERE $1 = '%%' OR p.title ILIKE $1 OR p.description ILIKE $1
		ORDER BY p.created_at DESC
		LIMIT $2 OFFSET $3`
	rows, err := r.db.Query(ctx, query, pattern, page.Limit, page.Offset())
	if err != nil {
		return nil, 0, err
	}
	list, err := scanProjectMetaRows(rows)
	if err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

// Trending returns the projects with the most bookmarks and comments.
func (r *PGProjectRepo) Trending(ctx context.Context, limit int) ([]dom.ProjectWithMeta, error) {
	query := `
		SELECT ` + projectMetaColumns + `
		FROM projects p JOIN users u ON u.id = p.author_id
		ORDER BY (SELECT COUNT(*) FROM bookmarks b WHERE b.project_id = p.id)
			+ (SELECT COUNT(*) FROM comments c WHERE c.project_id = p.id) DESC,
			p.created_at DESC
		LIMIT $1`
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	return scanProjectMetaRows(rows)
}

func (r *PGProjectRepo) Update(ctx context.Context, id int64, patch dom.Project) (dom.Project, error) {
	query := `
		UPDATE projects
		SET title = $2, description = $3, thumbnail_url = $4, github_url = $5,
			demo_url = $6, tech_stack = $7, updated_at = NOW()
		WHERE id = $1
		RETURNING id, author_id, title, description, thumbnail_url, github_url, demo_url,
			tech_stack, created_at, updated_at`
	var out dom.Project
	err := r.db.QueryRow(ctx, query,
		id, patch.Title, patch.Description, patch.ThumbnailURL, patch.GithubURL, patch.DemoURL, patch.TechStack,
	).Scan(
		&out.ID, &out.AuthorID, &out.Title, &out.Description, &out.ThumbnailURL,
		&out.GithubURL, &out.DemoURL, &out.TechStack, &out.CreatedAt, &out.UpdatedAt,
	)
	return out, err
}

// Delete removes a project; comments and bookmarks cascade at the DB.
func (r *PGProjectRepo) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func scanProjectMetaRows(rows pgx.Rows) ([]dom.ProjectWithMeta, error) {
	defer rows.Close()
	var list []dom.ProjectWithMeta
	for rows.Next() {
		var p dom.ProjectWithMeta
		if err := rows.Scan(
			&p.ID, &p.AuthorID, &p.Title, &p.Description, &p.ThumbnailURL, &p.GithubURL, &p.DemoURL,
			&p.TechStack, &p.CreatedAt, &p.UpdatedAt,
			&p.Author.ID, &p.Author.Username, &p.Author.Email, &p.Author.AvatarURL, &p.Author.Bio,
			&p.Author.Location, &p.Author.GithubURL, &p.Author.LinkedinURL, &p.Author.WebsiteURL,
			&p.Author.CreatedAt, &p.Author.UpdatedAt,
			&p.CommentCount, &p.BookmarkCount,
		); err != nil {
			return nil, err
		}
		list = append(list, p)
	}
	return list, rows.Err()
}
