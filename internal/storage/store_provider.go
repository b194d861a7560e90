package storage

import (
	"fmt"
	"holidaze/internal/providers"
	"holidaze/internal/structures"

	"github.com/redis/go-redis/v9"
)

const (
	DriverMemory = "memory"
	DriverFile   = "file"
	DriverRedis  = "redis"
)

// NewStore builds the backend named by store.driver and restores it, so
// whatever is written afterwards is never replaced by the snapshot.
func NewStore(conf *structures.Config, logger providers.Logger) (StoreInterface, error) {
	store, err := newBackend(conf, logger)
	if err != nil {
		return nil, err
	}
	restore(store, logger)
	return store, nil
}

// restore keeps going on failure: a corrupt snapshot leaves an empty store.
func restore(store StoreInterface, logger providers.Logger) {
	if err := store.Restore(); err != nil {
		logger.Errorf(providers.TypeApp, "Restore error: %s", err)
	}
}

func newBackend(conf *structures.Config, logger providers.Logger) (StoreInterface, error) {
	switch conf.Store.Driver {
	case DriverMemory, "":
		logger.Infof(providers.TypeApp, "Using in-memory store")
		return NewMemoryStore(conf.Store.QuotaBytes), nil
	case DriverFile:
		compressor, err := NewZstdCompressor()
		if err != nil {
			return nil, fmt.Errorf("unable to create compressor: %w", err)
		}
		logger.Infof(providers.TypeApp, "Using file store at %s", conf.Store.FilePath)
		return NewFileStore(conf.Store.FilePath, conf.Store.QuotaBytes, NewFileManager(compressor, logger), logger), nil
	case DriverRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     conf.Store.Redis.Addr,
			Password: conf.Store.Redis.Password,
			DB:       conf.Store.Redis.DB,
		})
		logger.Infof(providers.TypeApp, "Using redis store at %s", conf.Store.Redis.Addr)
		return NewRedisStore(client, conf.Store.Redis.Prefix), nil
	default:
		return nil, fmt.Errorf("unknown store driver %q", conf.Store.Driver)
	}
}
