package session

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memStore struct {
	items   map[string][]byte
	failErr error
}

func newMemStore() *memStore {
	return &memStore{items: make(map[string][]byte)}
}

func (m *memStore) LoadItem(key string) ([]byte, error) {
	return m.items[key], nil
}

func (m *memStore) SaveItem(key string, data []byte) error {
	if m.failErr != nil {
		return m.failErr
	}
	m.items[key] = data
	return nil
}

func TestRecordsKeepTheBest(t *testing.T) {
	r := NewRecords(newMemStore())

	best, err := r.Best()
	require.NoError(t, err)
	assert.Nil(t, best)

	saved, err := r.Submit(Record{Score: 500, Rank: "Squire"})
	require.NoError(t, err)
	assert.True(t, saved)

	saved, err = r.Submit(Record{Score: 300})
	require.NoError(t, err)
	assert.False(t, saved)

	saved, err = r.Submit(Record{Score: 500, Survival: 90})
	require.NoError(t, err)
	assert.True(t, saved, "equal score, longer survival")

	best, err = r.Best()
	require.NoError(t, err)
	require.NotNil(t, best)
	assert.Equal(t, Record{Score: 500, Survival: 90}, *best)
}

func TestRecordsCorruptItem(t *testing.T) {
	store := newMemStore()
	store.items[bestRunKey] = []byte("{not json")
	r := NewRecords(store)

	_, err := r.Best()
	assert.ErrorContains(t, err, "parse best run")

	saved, err := r.Submit(Record{Score: 1})
	require.NoError(t, err)
	assert.True(t, saved, "unreadable record is replaced")
}

func TestRecordsSaveError(t *testing.T) {
	store := newMemStore()
	store.failErr = errors.New("disk full")

	_, err := NewRecords(store).Submit(Record{Score: 1})
	assert.ErrorIs(t, err, store.failErr)
}

func TestRecordsNilStore(t *testing.T) {
	r := &Records{}
	best, err := r.Best()
	assert.NoError(t, err)
	assert.Nil(t, best)

	saved, err := r.Submit(Record{Score: 1})
	assert.NoError(t, err)
	assert.False(t, saved)
}

func TestOpenRecordsGdata(t *testing.T) {
	appName := fmt.Sprintf("knightfall_test_%d", time.Now().UnixNano())
	r, err := OpenRecords(appName)
	if err != nil {
		t.Skipf("gdata unavailable: %v", err)
	}
	t.Cleanup(func() {
		if home, err := os.UserHomeDir(); err == nil {
			os.RemoveAll(filepath.Join(home, ".local", "share", appName))
		}
	})

	saved, err := r.Submit(Record{Score: 42, Rank: "Squire"})
	require.NoError(t, err)
	assert.True(t, saved)

	best, err := r.Best()
	require.NoError(t, err)
	require.NotNil(t, best)
	assert.Equal(t, 42, best.Score)
}
