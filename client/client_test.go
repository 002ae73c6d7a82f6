package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avezina/inkwell/domain"
)

func TestLoginStoresToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/login", r.URL.Path)

		var req map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		if req["password"] != "correct" {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(apiError{Message: "unauthorized"})
			return
		}
		json.NewEncoder(w).Encode(loginResponse{
			Token: "tok-123",
			User:  User{ID: 1, Name: "admin", Email: "admin@example.com"},
		})
	}))
	defer srv.Close()

	store := NewMemStore()
	c := New(srv.URL, WithStore(store))
	assert.False(t, c.Authenticated())

	user, err := c.Login(context.Background(), "admin@example.com", "correct")
	require.NoError(t, err)
	assert.EqualValues(t, 1, user.ID)
	assert.True(t, c.Authenticated())
	assert.Equal(t, "tok-123", c.Token())

	// the token is persisted, a fresh client resumes the session
	resumed := New(srv.URL, WithStore(store))
	assert.True(t, resumed.Authenticated())

	c.Logout()
	assert.False(t, c.Authenticated())
	_, err = store.Load(sessionTokenKey)
	assert.Error(t, err)
}

func TestLoginFailureLeavesSessionEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(apiError{Message: "unauthorized"})
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.Login(context.Background(), "admin@example.com", "wrong")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.False(t, c.Authenticated())
}

func TestUnauthorizedResponseClearsToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer stale", r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(apiError{Message: "token expired"})
	}))
	defer srv.Close()

	store := NewMemStore()
	require.NoError(t, store.Save(sessionTokenKey, "stale"))

	c := New(srv.URL, WithStore(store))
	require.True(t, c.Authenticated())

	err := c.DeletePost(context.Background(), 1)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	// the dead session is gone, locally and in the store
	assert.False(t, c.Authenticated())
	_, err = store.Load(sessionTokenKey)
	assert.Error(t, err)
}

func TestErrorMapping(t *testing.T) {
	cases := []struct {
		status int
		want   error
	}{
		{http.StatusBadRequest, domain.ErrBadParamInput},
		{http.StatusNotFound, domain.ErrNotFound},
		{http.StatusConflict, domain.ErrConflict},
		{http.StatusForbidden, domain.ErrForbidden},
		{http.StatusInternalServerError, domain.ErrInternalServerError},
	}

	for _, tc := range cases {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(tc.status)
			json.NewEncoder(w).Encode(apiError{Message: http.StatusText(tc.status)})
		}))

		c := New(srv.URL)
		_, err := c.GetPost(context.Background(), 1)
		assert.ErrorIs(t, err, tc.want, "status %d", tc.status)

		srv.Close()
	}
}

func TestFetchPostsPagination(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/posts", r.URL.Path)
		assert.Equal(t, "abc", r.URL.Query().Get("cursor"))
		assert.Equal(t, "5", r.URL.Query().Get("num"))

		w.Header().Set("X-Cursor", "next-cursor")
		json.NewEncoder(w).Encode([]Post{{ID: 1, Title: "hello"}})
	}))
	defer srv.Close()

	c := New(srv.URL)
	posts, next, err := c.FetchPosts(context.Background(), "abc", 5)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "hello", posts[0].Title)
	assert.Equal(t, "next-cursor", next)
}

func TestUploadCV(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/admin/about/cv", r.URL.Path)

		f, header, err := r.FormFile("cv")
		require.NoError(t, err)
		defer f.Close()
		assert.Equal(t, "cv.pdf", header.Filename)

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]string{"file_name": "cv-stored.pdf"})
	}))
	defer srv.Close()

	c := New(srv.URL)
	stored, err := c.UploadCV(context.Background(), "cv.pdf", []byte("%PDF-1.4"))
	require.NoError(t, err)
	assert.Equal(t, "cv-stored.pdf", stored)
}
