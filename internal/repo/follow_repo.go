package repo

import (
	"context"

	dom "github.com/ngchuong/DevHub/internal/domain"
)

type FollowRepo interface {
	Create(ctx context.Context, followerID, followingID int64) (dom.Follow, error)
	Delete(ctx context.Context, followerID, followingID int64) (bool, error)
	Exists(ctx context.Context, followerID, followingID int64) (bool, error)
	Followers(ctx context.Context, userID int64) ([]dom.User, error)
	Following(ctx context.Context, userID int64) ([]dom.User, error)
}

type PGFollowRepo struct {
	db DB
}

func NewPGFollowRepo(db DB) *PGFollowRepo {
	return &PGFollowRepo{db: db}
}

// Create inserts a follow edge. Duplicate follows surface as a unique
// violation, a missing user as a foreign key violation.
func (r *PGFollowRepo) Create(ctx context.Context, followerID, followingID int64) (dom.Follow, error) {
	query := `
		INSERT INTO follows (follower_id, following_id)
		VALUES ($1, $2)
		RETURNING id, follower_id, following_id, created_at`
	var f dom.Follow
	err := r.db.QueryRow(ctx, query, followerID, followingID).Scan(
		&f.ID, &f.FollowerID, &f.FollowingID, &f.CreatedAt,
	)
	return f, err
}

func (r *PGFollowRepo) Delete(ctx context.Context, followerID, followingID int64) (bool, error) {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM follows WHERE follower_id = $1 AND following_id = $2`,
		followerID, followingID,
	)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *PGFollowRepo) Exists(ctx context.Context, followerID, followingID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM follows WHERE follower_id = $1 AND following_id = $2)`,
		followerID, followingID,
	).Scan(&exists)
	return exists, err
}

// Followers returns the users following userID, newest follow first.
func (r *PGFollowRepo) Followers(ctx context.Context, userID int64) ([]dom.User, error) {
	query := `
		SELECT ` + followUserColumns + `
		FROM follows f JOIN users u ON u.id = f.follower_id
		WHERE f.following_id = $1
		ORDER BY f.created_at DESC`
	return r.queryUsers(ctx, query, userID)
}

// Following returns the users userID follows, newest follow first.
func (r *PGFollowRepo) Following(ctx context.Context, userID int64) ([]dom.User, error) {
	query := `
		SELECT ` + followUserColumns + `
		FROM follows f JOIN users u ON u.id = f.following_id
		WHERE f.follower_id = $1
		ORDER BY f.created_at DESC`
	return r.queryUsers(ctx, query, userID)
}

const followUserColumns = `u.id, u.username, u.email, u.password_hash, u.avatar_url, u.bio, u.location,
		u.github_url, u.linkedin_url, u.website_url, u.created_at, u.updated_at`

func (r *PGFollowRepo) queryUsers(ctx context.Context, query string, userID int64) ([]dom.User, error) {
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
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
			return nil, err
		}
		list = append(list, u)
	}
	return list, rows.Err()
}
