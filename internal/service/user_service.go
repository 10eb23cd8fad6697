package service

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"

	dom "github.com/ngchuong/DevHub/internal/domain"
	"github.com/ngchuong/DevHub/internal/repo"
	"github.com/ngchuong/DevHub/internal/utils"
)

// UserService handles public user browsing and follow relationships.
type UserService struct {
	users   repo.UserRepo
	follows repo.FollowRepo
}

// NewUserService returns a new UserService.
func NewUserService(users repo.UserRepo, follows repo.FollowRepo) *UserService {
	return &UserService{users: users, follows: follows}
}

// List returns a page of users with the total count.
func (s *UserService) List(ctx context.Context, page repo.Page) ([]dom.User, int64, error) {
	page.Search = strings.TrimSpace(page.Search)
	return s.users.List(ctx, page)
}

// Get returns a user by ID.
func (s *UserService) Get(ctx context.Context, id int64) (dom.User, error) {
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.User{}, ErrNotFound
		}
		return dom.User{}, err
	}
	return u, nil
}

// ToggleFollow follows targetID if not yet followed, unfollows otherwise.
// Returns whether the caller follows the target afterwards.
func (s *UserService) ToggleFollow(ctx context.Context, followerID, targetID int64) (bool, error) {
	if followerID == targetID {
		return false, ErrSelfFollow
	}
	exists, err := s.follows.Exists(ctx, followerID, targetID)
	if err != nil {
		return false, err
	}
	if exists {
		if _, err := s.follows.Delete(ctx, followerID, targetID); err != nil {
			return false, err
		}
		return false, nil
	}
	if _, err := s.follows.Create(ctx, followerID, targetID); err != nil {
		// Lost a race with a concurrent follow; the edge exists either way.
		if utils.IsPGUniqueViolation(err) {
			return true, nil
		}
		if utils.IsPGForeignKeyViolation(err) {
			return false, ErrNotFound
		}
		return false, err
	}
	return true, nil
}

// Followers returns the users following userID.
func (s *UserService) Followers(ctx context.Context, userID int64) ([]dom.User, error) {
	if _, err := s.Get(ctx, userID); err != nil {
		return nil, err
	}
	return s.follows.Followers(ctx, userID)
}

// Following returns the users userID follows.
func (s *UserService) Following(ctx context.Context, userID int64) ([]dom.User, error) {
	if _, err := s.Get(ctx, userID); err != nil {
		return nil, err
	}
	return s.follows.Following(ctx, userID)
}
