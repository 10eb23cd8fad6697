package repo

import (
	"context"

	dom "github.com/ngchuong/DevHub/internal/domain"
)

const userColumns = `id, username, email, password_hash, avatar_url, bio, location,
		github_url, linkedin_url, website_url, created_at, updated_at`

// UserRepo provides user persistence. Uniqueness of username and email is
// enforced by the users table constraints; Create surfaces violations as-is
// so the service can tell apart which field collided.
type UserRepo interface {
	Create(ctx context.Context, u dom.User) (dom.User, error)
	GetByEmail(ctx context.Context, email string) (dom.User, error)
	GetByID(ctx context.Context, id int64) (dom.User, error)
	List(ctx context.Context, p Page) ([]dom.User, int64, error)
}

// PGUserRepo implements UserRepo with Postgres.
type PGUserRepo struct {
	db DB
}

// NewPGUserRepo returns a new PGUserRepo.
func NewPGUserRepo(db DB) *PGUserRepo {
	return &PGUserRepo{db: db}
}

// Create inserts a new user and returns it. The insert and the uniqueness
// check are one atomic statement.
func (r *PGUserRepo) Create(ctx context.Context, u dom.User) (dom.User, error) {
	query := `
		INSERT INTO users (username, email, password_hash, bio, location)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + userColumns
	var out dom.User
	err := r.db.QueryRow(ctx, query, u.Username, u.Email, u.PasswordHash, u.Bio, u.Location).Scan(
		&out.ID, &out.Username, &out.Email, &out.PasswordHash, &out.AvatarURL, &out.Bio,
		&out.Location, &out.GithubURL, &out.LinkedinURL, &out.WebsiteURL,
		&out.CreatedAt, &out.UpdatedAt,
	)
	return out, err
}

// GetByEmail returns the user by email. Only the auth service calls this;
// email is not a public lookup key.
func (r *PGUserRepo) GetByEmail(ctx context.Context, email string) (dom.User, error) {
	var u dom.User
	err := r.db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = $1`,
		email,
	).Scan(
		&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.AvatarURL, &u.Bio,
		&u.Location, &u.GithubURL, &u.LinkedinURL, &u.WebsiteURL,
		&u.CreatedAt, &u.UpdatedAt,
	)
	return u, err
}

// GetByID returns the user by ID.
func (r *PGUserRepo) GetByID(ctx context.Context, id int64) (dom.User, error) {
	var u dom.User
	err := r.db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`,
		id,
	).Scan(
		&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.AvatarURL, &u.Bio,
		&u.Location, &u.GithubURL, &u.LinkedinURL, &u.WebsiteURL,
		&u.CreatedAt, &u.UpdatedAt,
	)
	return u, err
}

// List returns a page of users newest first, with the total count. Search
// matches username, email and bio case-insensitively.
func (r *PGUserRepo) List(ctx context.Context, p Page) ([]dom.User, int64, error) {
	pattern := "%" + p.Search + "%"

	var total int64
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM users
		WHERE $1 = '%%' OR username ILIKE $1 OR email ILIKE $1 OR bio ILIKE $1`,
		pattern,
	).Scan(&total)
	if err != nil {
		return nil, 0, err
	}

	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE $1 = '%%' OR username ILIKE $1 OR email ILIKE $1 OR bio ILIKE $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`
	rows, err := r.db.Query(ctx, query, pattern, p.Limit, p.Offset())
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var list []dom.User
	for rows.Next() {
		var u dom.User
		if err := rows.Scan(
			&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.AvatarURL, &u.Bio,
			&u.Location, &u.GithubURL, &u.LinkedinURL, &u.WebsiteURL,
			&u.CreatedAt, &u.UpdatedAt,
		); err != nil {
			return nil, 0, err
		}
		list = append(list, u)
	}
	return list, total, rows.Err()
}
