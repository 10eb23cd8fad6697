package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dom "github.com/ngchuong/DevHub/internal/domain"
	"github.com/ngchuong/DevHub/internal/dto"
	"github.com/ngchuong/DevHub/internal/service"
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
	r.nextID++
	f := dom.Follow{ID: r.nextID, FollowerID: followerID, FollowingID: followingID}
	r.edges[followKey{followerID, followingID}] = f
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

func TestUser_FollowersResponseShape(t *testing.T) {
	gin.SetMode(gin.TestMode)
	users := newFakeUserRepo()
	alice, err := users.Create(context.Background(), dom.User{Username: "alice", Email: "a@x.com"})
	require.NoError(t, err)
	bob, err := users.Create(context.Background(), dom.User{Username: "bob", Email: "b@x.com"})
	require.NoError(t, err)

	follows := newFakeFollowRepo(users)
	_, err = follows.Create(context.Background(), bob.ID, alice.ID)
	require.NoError(t, err)

	h := NewUserHandler(service.NewUserService(users, follows))
	r := gin.New()
	r.GET("/api/v1/users/:id/followers", h.Followers)
	r.GET("/api/v1/users/:id/following", h.Following)

	// The body is the documented list shape, not an ad-hoc map.
	w := doJSON(r, http.MethodGet, "/api/v1/users/1/followers", "")
	require.Equal(t, http.StatusOK, w.Code)
	var followers dto.FollowListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &followers))
	require.Len(t, followers.Items, 1)
	assert.Equal(t, "bob", followers.Items[0].Username)

	w = doJSON(r, http.MethodGet, "/api/v1/users/2/following", "")
	require.Equal(t, http.StatusOK, w.Code)
	var following dto.FollowListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &following))
	require.Len(t, following.Items, 1)
	assert.Equal(t, "alice", following.Items[0].Username)
}
