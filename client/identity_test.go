package client

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingStore struct{}

func (failingStore) Load(string) (string, error) { return "", errors.New("disk gone") }
func (failingStore) Save(string, string) error   { return errors.New("disk gone") }
func (failingStore) Delete(string) error         { return errors.New("disk gone") }

func TestVisitorIDIsStable(t *testing.T) {
	p := NewIdentityProvider(NewMemStore())

	first := p.VisitorID()
	_, err := uuid.Parse(first)
	require.NoError(t, err)

	assert.Equal(t, first, p.VisitorID())
}

func TestVisitorIDSurvivesRestartThroughStore(t *testing.T) {
	store := NewFileStore(t.TempDir())

	first := NewIdentityProvider(store).VisitorID()
	second := NewIdentityProvider(store).VisitorID()

	assert.Equal(t, first, second)
}

func TestVisitorIDReplacesCorruptValue(t *testing.T) {
	store := NewMemStore()
	require.NoError(t, store.Save(visitorIDKey, "not-a-uuid"))

	id := NewIdentityProvider(store).VisitorID()
	_, err := uuid.Parse(id)
	require.NoError(t, err)
	assert.NotEqual(t, "not-a-uuid", id)
}

func TestVisitorIDFallsBackToMemory(t *testing.T) {
	p := NewIdentityProvider(failingStore{})

	first := p.VisitorID()
	_, err := uuid.Parse(first)
	require.NoError(t, err)

	// still stable within the process even though nothing persisted
	assert.Equal(t, first, p.VisitorID())
}

func TestFileStoreRoundTrip(t *testing.T) {
	store := NewFileStore(t.TempDir())

	_, err := store.Load("missing")
	require.Error(t, err)

	require.NoError(t, store.Save("k", "v"))
	v, err := store.Load("k")
	require.NoError(t, err)
	assert.Equal(t, "v", v)

	require.NoError(t, store.Delete("k"))
	_, err = store.Load("k")
	require.Error(t, err)

	// deleting a missing key is not an error
	require.NoError(t, store.Delete("k"))
}
