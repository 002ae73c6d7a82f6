package client

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seededCollection() *Collection[Post] {
	col := NewCollection(func(p Post) int64 { return p.ID })
	col.Replace([]Post{{ID: 1}, {ID: 2}, {ID: 3}})
	return col
}

func TestDeleterRemovesOnSuccess(t *testing.T) {
	col := seededCollection()
	var calledWith int64
	d := NewDeleter(col, func(_ context.Context, id int64) error {
		calledWith = id
		return nil
	}, func() bool { return true })

	require.NoError(t, d.Delete(context.Background(), 2))
	assert.EqualValues(t, 2, calledWith)
	assert.Equal(t, 2, col.Len())
	_, found := col.Find(2)
	assert.False(t, found)
}

func TestDeleterDeclinedConfirmationSkipsAPI(t *testing.T) {
	col := seededCollection()
	called := false
	d := NewDeleter(col, func(_ context.Context, id int64) error {
		called = true
		return nil
	}, func() bool { return false })

	err := d.Delete(context.Background(), 2)
	assert.ErrorIs(t, err, ErrDeleteDeclined)
	assert.False(t, called)
	assert.Equal(t, 3, col.Len())
}

func TestDeleterKeepsCollectionOnFailure(t *testing.T) {
	col := seededCollection()
	d := NewDeleter(col, func(_ context.Context, id int64) error {
		return errors.New("server error")
	}, func() bool { return true })

	err := d.Delete(context.Background(), 2)
	require.Error(t, err)
	assert.Equal(t, 3, col.Len())
	_, found := col.Find(2)
	assert.True(t, found)
}

func TestCollectionUpsert(t *testing.T) {
	col := seededCollection()

	col.Upsert(Post{ID: 2, Title: "edited"})
	assert.Equal(t, 3, col.Len())
	got, found := col.Find(2)
	require.True(t, found)
	assert.Equal(t, "edited", got.Title)

	col.Upsert(Post{ID: 4, Title: "new"})
	assert.Equal(t, 4, col.Len())
}

func TestCollectionItemsIsACopy(t *testing.T) {
	col := seededCollection()

	items := col.Items()
	items[0].Title = "mutated"

	got, _ := col.Find(1)
	assert.Empty(t, got.Title)
}
