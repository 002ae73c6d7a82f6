package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func hydrationServer(t *testing.T, likedIDs []int64, likedStatus int) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/posts", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Cursor", "next")
		json.NewEncoder(w).Encode([]Post{
			{ID: 1, Title: "a", TotalLikes: 3},
			{ID: 2, Title: "b"},
			{ID: 3, Title: "c", TotalLikes: 1},
		})
	})
	mux.HandleFunc("/categories", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]Category{
			{ID: 1, Name: "go"},
			{ID: 2, Name: "life"},
		})
	})
	mux.HandleFunc("/likes", func(w http.ResponseWriter, r *http.Request) {
		if likedStatus != 0 {
			w.WriteHeader(likedStatus)
			json.NewEncoder(w).Encode(apiError{Message: "boom"})
			return
		}
		assert.NotEmpty(t, r.URL.Query().Get("visitor"))
		assert.NotEmpty(t, r.URL.Query().Get("type"))
		json.NewEncoder(w).Encode(map[string][]int64{"ids": likedIDs})
	})
	return httptest.NewServer(mux)
}

func TestHydratedPostsMarksLiked(t *testing.T) {
	srv := hydrationServer(t, []int64{1, 3}, 0)
	defer srv.Close()

	c := New(srv.URL)
	posts, next, err := c.HydratedPosts(context.Background(), NewIdentityProvider(NewMemStore()), "", 10)
	require.NoError(t, err)
	require.Len(t, posts, 3)
	assert.Equal(t, "next", next)

	assert.True(t, posts[0].Liked)
	assert.False(t, posts[1].Liked)
	assert.True(t, posts[2].Liked)

	// counts come straight from the list payload, missing means zero
	assert.EqualValues(t, 3, posts[0].TotalLikes)
	assert.EqualValues(t, 0, posts[1].TotalLikes)
}

func TestHydratedPostsDegradesWhenLikedSetFails(t *testing.T) {
	srv := hydrationServer(t, nil, http.StatusInternalServerError)
	defer srv.Close()

	c := New(srv.URL)
	posts, _, err := c.HydratedPosts(context.Background(), NewIdentityProvider(NewMemStore()), "", 10)
	require.NoError(t, err)
	require.Len(t, posts, 3)

	for _, p := range posts {
		assert.False(t, p.Liked)
	}
}

func TestHydratedPostsFailsWhenListFails(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/posts", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(apiError{Message: "db down"})
	})
	mux.HandleFunc("/likes", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string][]int64{"ids": {1}})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := New(srv.URL)
	_, _, err := c.HydratedPosts(context.Background(), NewIdentityProvider(NewMemStore()), "", 10)
	require.Error(t, err)
}

func TestHydratedCategoriesMarksLiked(t *testing.T) {
	srv := hydrationServer(t, []int64{2}, 0)
	defer srv.Close()

	c := New(srv.URL)
	categories, err := c.HydratedCategories(context.Background(), NewIdentityProvider(NewMemStore()))
	require.NoError(t, err)
	require.Len(t, categories, 2)

	assert.False(t, categories[0].Liked)
	assert.True(t, categories[1].Liked)
}
