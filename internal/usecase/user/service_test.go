package user

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/avezina/inkwell/domain"
)

type mockUserRepo struct {
	users   map[string]domain.User
	inserts []domain.User
	updated *domain.User
}

func newMockUserRepo(users ...domain.User) *mockUserRepo {
	m := &mockUserRepo{users: make(map[string]domain.User)}
	for _, u := range users {
		m.users[u.Email] = u
	}
	return m
}

func (m *mockUserRepo) GetByID(_ context.Context, id int64) (domain.User, error) {
	for _, u := range m.users {
		if u.ID == id {
			return u, nil
		}
	}
	return domain.User{}, domain.ErrNotFound
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (domain.User, error) {
	u, ok := m.users[email]
	if !ok {
		return domain.User{}, domain.ErrNotFound
	}
	return u, nil
}

func (m *mockUserRepo) Insert(_ context.Context, u *domain.User) error {
	u.ID = int64(len(m.users) + 1)
	m.users[u.Email] = *u
	m.inserts = append(m.inserts, *u)
	return nil
}

func (m *mockUserRepo) Update(_ context.Context, u *domain.User) error {
	m.updated = u
	m.users[u.Email] = *u
	return nil
}

func adminUser(t *testing.T, password string) domain.User {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return domain.User{
		ID:       1,
		Name:     "admin",
		Email:    "admin@example.com",
		Password: string(hashed),
	}
}

func TestLoginIssuesToken(t *testing.T) {
	secret := []byte("test-secret")
	repo := newMockUserRepo(adminUser(t, "hunter22pw"))
	svc := NewService(repo, secret, time.Hour)

	token, u, err := svc.Login(context.Background(), "admin@example.com", "hunter22pw")
	require.NoError(t, err)
	assert.Empty(t, u.Password)
	assert.EqualValues(t, 1, u.ID)

	// the token must carry the user ID as subject, signed with our secret
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return secret, nil
	})
	require.NoError(t, err)
	assert.True(t, parsed.Valid)
	assert.Equal(t, strconv.FormatInt(u.ID, 10), claims.Subject)
	assert.True(t, claims.ExpiresAt.After(time.Now()))
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	repo := newMockUserRepo(adminUser(t, "hunter22pw"))
	svc := NewService(repo, []byte("s"), time.Hour)
	ctx := context.Background()

	_, _, err := svc.Login(ctx, "admin@example.com", "wrong")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	// unknown email reads the same as a wrong password
	_, _, err = svc.Login(ctx, "nobody@example.com", "hunter22pw")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestEditPassword(t *testing.T) {
	repo := newMockUserRepo(adminUser(t, "old-password"))
	svc := NewService(repo, []byte("s"), time.Hour)
	ctx := context.Background()

	err := svc.EditPassword(ctx, 1, "wrong", "new-password")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.Nil(t, repo.updated)

	require.NoError(t, svc.EditPassword(ctx, 1, "old-password", "new-password"))
	require.NotNil(t, repo.updated)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(repo.updated.Password), []byte("new-password")))
}

func TestEnsureAdmin(t *testing.T) {
	t.Run("seeds when missing", func(t *testing.T) {
		repo := newMockUserRepo()
		svc := NewService(repo, []byte("s"), time.Hour)

		require.NoError(t, svc.EnsureAdmin(context.Background(), "admin", "admin@example.com", "seed-password"))
		require.Len(t, repo.inserts, 1)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(repo.inserts[0].Password), []byte("seed-password")))
	})

	t.Run("idempotent when present", func(t *testing.T) {
		repo := newMockUserRepo(adminUser(t, "x"))
		svc := NewService(repo, []byte("s"), time.Hour)

		require.NoError(t, svc.EnsureAdmin(context.Background(), "admin", "admin@example.com", "other"))
		assert.Empty(t, repo.inserts)
	})
}
