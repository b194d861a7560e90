package storage

import (
	"context"
	"holidaze/internal/providers"

	"go.uber.org/atomic"
)

// FileStore serves reads and writes from memory and writes a compressed
// snapshot to disk on Persist.
type FileStore struct {
	*MemoryStore
	path        string
	fileManager *FileManager
	logger      providers.Logger
	dirty       atomic.Bool
}

func NewFileStore(path string, quota int, fileManager *FileManager, logger providers.Logger) *FileStore {
	return &FileStore{
		MemoryStore: NewMemoryStore(quota),
		path:        path,
		fileManager: fileManager,
		logger:      logger,
	}
}

func (f *FileStore) Set(ctx context.Context, key, value string) error {
	if err := f.MemoryStore.Set(ctx, key, value); err != nil {
		return err
	}
	f.dirty.Store(true)
	return nil
}

func (f *FileStore) Remove(ctx context.Context, key string) error {
	if err := f.MemoryStore.Remove(ctx, key); err != nil {
		return err
	}
	f.dirty.Store(true)
	return nil
}

func (f *FileStore) Restore() error {
	entries, err := f.fileManager.LoadFromFile(f.path)
	if err != nil {
		return err
	}
	if entries == nil {
		f.logger.Infof(providers.TypeApp, "No snapshot at %s, starting empty", f.path)
		return nil
	}
	f.MemoryStore.Load(entries)
	f.dirty.Store(false)
	f.logger.Infof(providers.TypeApp, "Restored %d keys from %s", len(entries), f.path)
	return nil
}

// Persist skips the write when nothing changed since the last snapshot.
func (f *FileStore) Persist() error {
	if !f.dirty.Swap(false) {
		return nil
	}
	if err := f.fileManager.SaveToFile(f.path, f.MemoryStore.Snapshot()); err != nil {
		f.dirty.Store(true)
		return err
	}
	return nil
}

func (f *FileStore) Close() {
	f.fileManager.Close()
}
