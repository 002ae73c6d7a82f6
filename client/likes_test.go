package client

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLikeAPI struct {
	likes   int
	unlikes int
	fail    error

	lastVisitor string
	lastTarget  string
	lastID      int64
}

func (f *fakeLikeAPI) Like(_ context.Context, visitorID string, targetID int64, targetType string) error {
	f.likes++
	f.lastVisitor, f.lastID, f.lastTarget = visitorID, targetID, targetType
	return f.fail
}

func (f *fakeLikeAPI) Unlike(_ context.Context, visitorID string, targetID int64, targetType string) error {
	f.unlikes++
	f.lastVisitor, f.lastID, f.lastTarget = visitorID, targetID, targetType
	return f.fail
}

func TestReconcilerToggleLike(t *testing.T) {
	api := &fakeLikeAPI{}
	r := NewReconciler(api, NewIdentityProvider(NewMemStore()))

	post := &Post{ID: 3, TotalLikes: 5}
	require.NoError(t, r.Toggle(context.Background(), post))

	assert.True(t, post.Liked)
	assert.EqualValues(t, 6, post.TotalLikes)
	assert.Equal(t, 1, api.likes)
	assert.Zero(t, api.unlikes)
	assert.Equal(t, TargetPost, api.lastTarget)
	assert.EqualValues(t, 3, api.lastID)
	assert.NotEmpty(t, api.lastVisitor)
}

func TestReconcilerToggleUnlike(t *testing.T) {
	api := &fakeLikeAPI{}
	r := NewReconciler(api, NewIdentityProvider(NewMemStore()))

	category := &Category{ID: 9, TotalLikes: 2, Liked: true}
	require.NoError(t, r.Toggle(context.Background(), category))

	assert.False(t, category.Liked)
	assert.EqualValues(t, 1, category.TotalLikes)
	assert.Equal(t, 1, api.unlikes)
	assert.Equal(t, TargetCategory, api.lastTarget)
}

func TestReconcilerKeepsOptimisticStateOnFailure(t *testing.T) {
	api := &fakeLikeAPI{fail: errors.New("network down")}
	r := NewReconciler(api, NewIdentityProvider(NewMemStore()))

	post := &Post{ID: 3, TotalLikes: 5}
	err := r.Toggle(context.Background(), post)
	require.Error(t, err)

	// no rollback: the flip stays, the server reconciles on next fetch
	assert.True(t, post.Liked)
	assert.EqualValues(t, 6, post.TotalLikes)
}

func TestReconcilerDoubleToggleRoundTrips(t *testing.T) {
	api := &fakeLikeAPI{}
	r := NewReconciler(api, NewIdentityProvider(NewMemStore()))

	post := &Post{ID: 3, TotalLikes: 5}
	require.NoError(t, r.Toggle(context.Background(), post))
	require.NoError(t, r.Toggle(context.Background(), post))

	assert.False(t, post.Liked)
	assert.EqualValues(t, 5, post.TotalLikes)
	assert.Equal(t, 1, api.likes)
	assert.Equal(t, 1, api.unlikes)
}
