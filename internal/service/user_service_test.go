package service

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dom "github.com/ngchuong/DevHub/internal/domain"
)

type followKey struct{ follower, following int64 }

type fakeFollowRepo struct {
	nextID int64
	edges  map[followKey]dom.Follow
	users  *fakeUserRepo
}

func newFakeFollowRepo(users *fakeUserRepo) *fakeFollowRepo {
	return &fakeFollowRepo{edges: make(map[followKey]dom.Follow), users: users}
}

func (r *fakeFollowRepo) Create(_ context.Context, followerID, followingID int64) (dom.Follow, error) {
	if _, ok := r.users.users[followingID]; !ok {
		return dom.Follow{}, &pgconn.PgError{Code: "23503"}
	}
	k := followKey{followerID, followingID}
	if _, ok := r.edges[k]; ok {
		return dom.Follow{}, &pgconn.PgError{Code: "23505", ConstraintName: "follows_follower_following_key"}
	}
	r.nextID++
	f := dom.Follow{ID: r.nextID, FollowerID: followerID, FollowingID: followingID}
	r.edges[k] = f
	return f, nil
}

func (r *fakeFollowRepo) Delete(_ context.Context, followerID, followingID int64) (bool, error) {
	k := followKey{followerID, followingID}
	if _, ok := r.edges[k]; !ok {
		return false, nil
	}
	delete(r.edges, k)
	return true, nil
}

func (r *fakeFollowRepo) Exists(_ context.Context, followerID, followingID int64) (bool, error) {
	_, ok := r.edges[followKey{followerID, followingID}]
	return ok, nil
}

func (r *fakeFollowRepo) Followers(_ context.Context, userID int64) ([]dom.User, error) {
	var list []dom.User
	for k := range r.edges {
		if k.following == userID {
			list = append(list, r.users.users[k.follower])
		}
	}
	return list, nil
}

func (r *fakeFollowRepo) Following(_ context.Context, userID int64) ([]dom.User, error) {
	var list []dom.User
	for k := range r.edges {
		if k.follower == userID {
			list = append(list, r.users.users[k.following])
		}
	}
	return list, nil
}

func seedUsers(t *testing.T, users *fakeUserRepo, names ...string) []int64 {
	t.Helper()
	ids := make([]int64, len(names))
	for i, name := range names {
		u, err := users.Create(context.Background(), dom.User{
			Username: name, Email: name + "@x.com", PasswordHash: "hash",
		})
		require.NoError(t, err)
		ids[i] = u.ID
	}
	return ids
}

func TestUserService_ToggleFollow(t *testing.T) {
	ctx := context.Background()
	users := newFakeUserRepo()
	follows := newFakeFollowRepo(users)
	svc := NewUserService(users, follows)
	ids := seedUsers(t, users, "alice", "bob")

	following, err := svc.ToggleFollow(ctx, ids[0], ids[1])
	require.NoError(t, err)
	assert.True(t, following)

	// Second toggle unfollows.
	following, err = svc.ToggleFollow(ctx, ids[0], ids[1])
	require.NoError(t, err)
	assert.False(t, following)
}

func TestUserService_ToggleFollowSelf(t *testing.T) {
	ctx := context.Background()
	users := newFakeUserRepo()
	svc := NewUserService(users, newFakeFollowRepo(users))
	ids := seedUsers(t, users, "alice")

	_, err := svc.ToggleFollow(ctx, ids[0], ids[0])
	assert.ErrorIs(t, err, ErrSelfFollow)
}

func TestUserService_ToggleFollowMissingTarget(t *testing.T) {
	ctx := context.Background()
	users := newFakeUserRepo()
	svc := NewUserService(users, newFakeFollowRepo(users))
	ids := seedUsers(t, users, "alice")

	_, err := svc.ToggleFollow(ctx, ids[0], 9999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUserService_FollowersAndFollowing(t *testing.T) {
	ctx := context.Background()
	users := newFakeUserRepo()
	follows := newFakeFollowRepo(users)
	svc := NewUserService(users, follows)
	ids := seedUsers(t, users, "alice", "bob", "carol")

	_, err := svc.ToggleFollow(ctx, ids[0], ids[2])
	require.NoError(t, err)
	_, err = svc.ToggleFollow(ctx, ids[1], ids[2])
	require.NoError(t, err)

	followers, err := svc.Followers(ctx, ids[2])
	require.NoError(t, err)
	assert.Len(t, followers, 2)

	following, err := svc.Following(ctx, ids[0])
	require.NoError(t, err)
	require.Len(t, following, 1)
	assert.Equal(t, "carol", following[0].Username)
}

func TestUserService_GetNotFound(t *testing.T) {
	users := newFakeUserRepo()
	svc := NewUserService(users, newFakeFollowRepo(users))

	_, err := svc.Get(context.Background(), 42)
	assert.ErrorIs(t, err, ErrNotFound)
}
