package storage

import (
	"context"
	"errors"
)

// Keys shared with every consumer of the store. Values are raw strings or JSON.
const (
	KeyApiKey       = "apiKey"
	KeyAccessToken  = "accessToken"
	KeyUser         = "user"
	KeyVenueRatings = "venueRatings"
)

var ErrQuotaExceeded = errors.New("storage quota exceeded")

type KeyValueStore interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}

// StoreInterface is a KeyValueStore with a lifecycle. Restore and Persist are
// no-ops for backends that persist on their own.
type StoreInterface interface {
	KeyValueStore
	Restore() error
	Persist() error
	Close()
}
