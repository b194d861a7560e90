package storage

import (
	"context"
	"errors"
	"holidaze/internal/structures"
	"holidaze/internal/testutil"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(interval time.Duration) *structures.Config {
	return &structures.Config{
		Store: structures.StoreConfig{
			Driver:       "file",
			SaveInterval: interval,
		},
	}
}

func TestScheduler_PersistObservesDuration(t *testing.T) {
	store := testutil.NewMockStore()
	metrics := &testutil.MockMetrics{}
	s := NewScheduler(testConfig(0), &testutil.MockLogger{}, store, metrics)

	require.NoError(t, s.Persist())
	assert.Equal(t, 1, store.PersistCalls)
	assert.Equal(t, 1, metrics.PersistenceCalls)
}

func TestScheduler_PersistErrorLogged(t *testing.T) {
	store := testutil.NewMockStore()
	store.PersistErr = errors.New("disk full")
	logger := &testutil.MockLogger{}
	s := NewScheduler(testConfig(0), logger, store, &testutil.MockMetrics{})

	assert.Error(t, s.Persist())
	assert.Equal(t, 1, logger.Count("error"))
}

func TestScheduler_InitWithoutIntervalIsNoop(t *testing.T) {
	s := NewScheduler(testConfig(0), &testutil.MockLogger{}, testutil.NewMockStore(), &testutil.MockMetrics{})
	s.Init()
	s.Stop()
}

func TestScheduler_PeriodicPersist(t *testing.T) {
	path := filepath.Join(t.TempDir(), "periodic.dat")
	logger := &testutil.MockLogger{}
	store := NewFileStore(path, 0, NewFileManager(&testutil.MockCompressor{}, logger), logger)
	require.NoError(t, store.Set(context.Background(), KeyApiKey, "k"))

	s := NewScheduler(testConfig(1*time.Second), logger, store, &testutil.MockMetrics{})
	s.Init()
	defer s.Stop()

	assert.Eventually(t, func() bool {
		_, err := os.Stat(path)
		return err == nil
	}, 3*time.Second, 100*time.Millisecond)
}
