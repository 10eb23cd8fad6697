package service

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	dom "github.com/ngchuong/DevHub/internal/domain"
	"github.com/ngchuong/DevHub/internal/repo"
)

// fakeUserRepo is an in-memory UserRepo that enforces the same uniqueness
// the users table does, surfacing violations as pgconn errors.
type fakeUserRepo struct {
	nextID int64
	users  map[int64]dom.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[int64]dom.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, u dom.User) (dom.User, error) {
	for _, existing := range r.users {
		if existing.Username == u.Username {
			return dom.User{}, &pgconn.PgError{Code: "23505", ConstraintName: "users_username_key"}
		}
		if existing.Email == u.Email {
			return dom.User{}, &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"}
		}
	}
	r.nextID++
	u.ID = r.nextID
	r.users[u.ID] = u
	return u, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (dom.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return dom.User{}, pgx.ErrNoRows
}

func (r *fakeUserRepo) GetByID(_ context.Context, id int64) (dom.User, error) {
	u, ok := r.users[id]
	if !ok {
		return dom.User{}, pgx.ErrNoRows
	}
	return u, nil
}

func (r *fakeUserRepo) List(_ context.Context, _ repo.Page) ([]dom.User, int64, error) {
	var list []dom.User
	for _, u := range r.users {
		list = append(list, u)
	}
	return list, int64(len(list)), nil
}

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()
	svc := NewAuthService(newFakeUserRepo())

	u, err := svc.Register(ctx, RegisterInput{
		Username: "alice", Email: "a@x.com", Password: "secret1",
	})
	require.NoError(t, err)
	assert.Equal(t, "alice", u.Username)
	assert.Equal(t, "a@x.com", u.Email)
	assert.NotEqual(t, "secret1", u.PasswordHash, "password must be stored hashed")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("secret1")))
}

func TestAuthService_RegisterDuplicateUsername(t *testing.T) {
	ctx := context.Background()
	svc := NewAuthService(newFakeUserRepo())

	_, err := svc.Register(ctx, RegisterInput{Username: "alice", Email: "a@x.com", Password: "secret1"})
	require.NoError(t, err)

	_, err = svc.Register(ctx, RegisterInput{Username: "alice", Email: "b@x.com", Password: "secret1"})
	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestAuthService_RegisterDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	svc := NewAuthService(newFakeUserRepo())

	_, err := svc.Register(ctx, RegisterInput{Username: "alice", Email: "a@x.com", Password: "secret1"})
	require.NoError(t, err)

	_, err = svc.Register(ctx, RegisterInput{Username: "bob", Email: "a@x.com", Password: "secret1"})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestAuthService_RegisterPaddedUsernameTooShort(t *testing.T) {
	ctx := context.Background()
	users := newFakeUserRepo()
	svc := NewAuthService(users)

	// "  a  " passes a raw min=3 length check but trims to one character;
	// the bound holds on the stored value, not the padded one.
	_, err := svc.Register(ctx, RegisterInput{Username: "  a  ", Email: "a@x.com", Password: "secret1"})
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Empty(t, users.users, "nothing may be stored")

	// Padding around a valid username is fine and trimmed away.
	u, err := svc.Register(ctx, RegisterInput{Username: "  alice  ", Email: "a@x.com", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, "alice", u.Username)
}

func TestAuthService_RegisterNormalizesEmail(t *testing.T) {
	ctx := context.Background()
	svc := NewAuthService(newFakeUserRepo())

	u, err := svc.Register(ctx, RegisterInput{Username: "alice", Email: "  A@X.com ", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", u.Email)
}

func TestAuthService_ValidateCredentials(t *testing.T) {
	ctx := context.Background()
	svc := NewAuthService(newFakeUserRepo())

	_, err := svc.Register(ctx, RegisterInput{Username: "alice", Email: "a@x.com", Password: "secret1"})
	require.NoError(t, err)

	u, err := svc.ValidateCredentials(ctx, "a@x.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "alice", u.Username)
}

func TestAuthService_ValidateCredentialsNonEnumerable(t *testing.T) {
	ctx := context.Background()
	svc := NewAuthService(newFakeUserRepo())

	_, err := svc.Register(ctx, RegisterInput{Username: "alice", Email: "a@x.com", Password: "secret1"})
	require.NoError(t, err)

	// Wrong password and unknown email fail identically.
	_, wrongPass := svc.ValidateCredentials(ctx, "a@x.com", "wrong")
	_, unknownEmail := svc.ValidateCredentials(ctx, "nobody@x.com", "secret1")
	assert.ErrorIs(t, wrongPass, ErrInvalidCredentials)
	assert.ErrorIs(t, unknownEmail, ErrInvalidCredentials)
	assert.Equal(t, wrongPass.Error(), unknownEmail.Error())
}

func TestAuthService_ValidateCredentialsMalformedHash(t *testing.T) {
	ctx := context.Background()
	users := newFakeUserRepo()
	svc := NewAuthService(users)

	users.nextID++
	users.users[users.nextID] = dom.User{
		ID: users.nextID, Username: "broken", Email: "broken@x.com", PasswordHash: "not-a-bcrypt-hash",
	}

	// A malformed stored hash is a credential failure, not a fault.
	_, err := svc.ValidateCredentials(ctx, "broken@x.com", "anything")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_CurrentUser(t *testing.T) {
	ctx := context.Background()
	svc := NewAuthService(newFakeUserRepo())

	u, err := svc.Register(ctx, RegisterInput{Username: "alice", Email: "a@x.com", Password: "secret1"})
	require.NoError(t, err)

	got, err := svc.CurrentUser(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)

	_, err = svc.CurrentUser(ctx, 9999)
	assert.ErrorIs(t, err, ErrNotFound)
}
