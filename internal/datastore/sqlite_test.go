package datastore

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dcasekit/dcase-go/internal/annotation"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func testCollection() *annotation.Collection {
	return annotation.NewCollection([]annotation.Event{
		{Filename: "audio_001.wav", SceneLabel: "office", EventLabel: "speech", Onset: annotation.Float(1.0), Offset: annotation.Float(10.0)},
		{Filename: "audio_001.wav", SceneLabel: "office", EventLabel: "printer", Onset: annotation.Float(7.0), Offset: annotation.Float(9.0)},
		{Filename: "audio_002.wav", SceneLabel: "meeting", EventLabel: "speech", Onset: annotation.Float(1.0), Offset: annotation.Float(9.0), Tags: []string{"cat", "dog"}},
	})
}

func TestSaveAndLoadCollection(t *testing.T) {
	store := openTestStore(t)

	inserted, err := store.SaveCollection(testCollection())
	require.NoError(t, err)
	assert.Equal(t, 3, inserted)

	loaded, err := store.LoadCollection(Query{})
	require.NoError(t, err)
	require.Equal(t, 3, loaded.Len())

	// Round trip preserves content identity.
	assert.ElementsMatch(t, testCollection().ContentIDs(), loaded.ContentIDs())
}

func TestSaveCollectionIdempotent(t *testing.T) {
	store := openTestStore(t)

	_, err := store.SaveCollection(testCollection())
	require.NoError(t, err)

	inserted, err := store.SaveCollection(testCollection())
	require.NoError(t, err)
	assert.Equal(t, 0, inserted)

	loaded, err := store.LoadCollection(Query{})
	require.NoError(t, err)
	assert.Equal(t, 3, loaded.Len())
}

func TestLoadCollectionQuery(t *testing.T) {
	store := openTestStore(t)
	_, err := store.SaveCollection(testCollection())
	require.NoError(t, err)

	byFile, err := store.LoadCollection(Query{Filename: "audio_001.wav"})
	require.NoError(t, err)
	assert.Equal(t, 2, byFile.Len())

	byEvent, err := store.LoadCollection(Query{EventLabel: "speech"})
	require.NoError(t, err)
	assert.Equal(t, 2, byEvent.Len())

	both, err := store.LoadCollection(Query{Filename: "audio_001.wav", EventLabel: "speech"})
	require.NoError(t, err)
	assert.Equal(t, 1, both.Len())
}

func TestTagsSurviveRoundTrip(t *testing.T) {
	store := openTestStore(t)
	_, err := store.SaveCollection(testCollection())
	require.NoError(t, err)

	loaded, err := store.LoadCollection(Query{Filename: "audio_002.wav"})
	require.NoError(t, err)
	require.Equal(t, 1, loaded.Len())
	assert.Equal(t, []string{"cat", "dog"}, loaded.Events[0].Tags)
}

func TestSaveEmptyCollection(t *testing.T) {
	store := openTestStore(t)

	inserted, err := store.SaveCollection(&annotation.Collection{})
	require.NoError(t, err)
	assert.Zero(t, inserted)
}
