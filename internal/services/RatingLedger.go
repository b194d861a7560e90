package services

import (
	"context"
	"holidaze/internal/models"
	"holidaze/internal/providers"
	"holidaze/internal/storage"
	"holidaze/internal/structures"
	"sync"
	"time"

	json "github.com/goccy/go-json"
)

const (
	MinRating = 1
	MaxRating = 5

	ratingCachePrefix = "rating:"
)

type RatingLedgerInterface interface {
	SubmitRating(ctx context.Context, venueID, bookingID string, rating int) (*models.RatingRecord, error)
	GetRating(ctx context.Context, bookingID string) (*models.RatingRecord, bool)
	GetAllRatings(ctx context.Context) []*models.RatingRecord
	HasRated(ctx context.Context, bookingID string) bool
	GetRatingByVenueID(ctx context.Context, venueID string) (*models.RatingRecord, bool)
	HasRatedVenue(ctx context.Context, venueID string) bool
}

// RatingLedger stores ratings under a single key as a JSON array and keeps a
// read-through cache keyed by booking. Every successful write repopulates the
// cache entry of the booking it touched.
type RatingLedger struct {
	store   storage.KeyValueStore
	cache   providers.CacheProviderInterface
	logger  providers.Logger
	metrics providers.MetricsProviderInterface
	delay   time.Duration
	now     func() time.Time
	writeMu sync.Mutex
}

func NewRatingLedger(conf *structures.Config, store storage.StoreInterface, cache providers.CacheProviderInterface, logger providers.Logger, metrics providers.MetricsProviderInterface) RatingLedgerInterface {
	return &RatingLedger{
		store:   store,
		cache:   cache,
		logger:  logger,
		metrics: metrics,
		delay:   conf.Ratings.SubmitDelay,
		now:     time.Now,
	}
}

func (rl *RatingLedger) SubmitRating(ctx context.Context, venueID, bookingID string, rating int) (*models.RatingRecord, error) {
	if verr := validateRating(venueID, bookingID, rating); verr != nil {
		return nil, verr
	}

	record := models.NewRatingRecord(venueID, bookingID, rating, rl.now())

	if err := rl.wait(ctx); err != nil {
		return nil, err
	}

	rl.writeMu.Lock()
	defer rl.writeMu.Unlock()

	ratings, err := rl.load(ctx)
	if err != nil {
		return nil, &models.PersistenceError{Op: "read", Key: storage.KeyVenueRatings, Err: err}
	}

	replaced := false
	for i, r := range ratings {
		if r.BookingID == bookingID {
			ratings[i] = record
			replaced = true
			break
		}
	}
	if !replaced {
		ratings = append(ratings, record)
	}

	data, err := json.Marshal(ratings)
	if err != nil {
		return nil, &models.PersistenceError{Op: "encode", Key: storage.KeyVenueRatings, Err: err}
	}

	start := time.Now()
	err = rl.store.Set(ctx, storage.KeyVenueRatings, string(data))
	rl.metrics.ObservePersistenceDuration(time.Since(start))
	if err != nil {
		rl.cache.Del(ratingCachePrefix + bookingID)
		return nil, &models.PersistenceError{Op: "write", Key: storage.KeyVenueRatings, Err: err}
	}

	rl.remember(record)
	rl.metrics.SetRatingsTotal(len(ratings))
	rl.logger.Infof(providers.TypeApp, "Rating %d stored for booking %s (venue %s)", rating, bookingID, venueID)

	return record, nil
}

func (rl *RatingLedger) GetRating(ctx context.Context, bookingID string) (*models.RatingRecord, bool) {
	if data, ok := rl.cache.Get(ratingCachePrefix + bookingID); ok {
		var record models.RatingRecord
		if err := json.Unmarshal(data, &record); err == nil {
			return &record, true
		}
		rl.cache.Del(ratingCachePrefix + bookingID)
	}

	for _, r := range rl.GetAllRatings(ctx) {
		if r.BookingID == bookingID {
			rl.remember(r)
			return r, true
		}
	}
	return nil, false
}

func (rl *RatingLedger) GetAllRatings(ctx context.Context) []*models.RatingRecord {
	ratings, err := rl.load(ctx)
	if err != nil {
		rl.logger.Warnf(providers.TypeApp, "Unable to read ratings: %s", err)
		return []*models.RatingRecord{}
	}
	return ratings
}

func (rl *RatingLedger) HasRated(ctx context.Context, bookingID string) bool {
	_, ok := rl.GetRating(ctx, bookingID)
	return ok
}

// GetRatingByVenueID returns the first match in storage order, not the newest.
func (rl *RatingLedger) GetRatingByVenueID(ctx context.Context, venueID string) (*models.RatingRecord, bool) {
	for _, r := range rl.GetAllRatings(ctx) {
		if r.VenueID == venueID {
			return r, true
		}
	}
	return nil, false
}

func (rl *RatingLedger) HasRatedVenue(ctx context.Context, venueID string) bool {
	_, ok := rl.GetRatingByVenueID(ctx, venueID)
	return ok
}

// load returns an error only when the store itself fails. Absent or
// unparsable content is an empty ledger.
func (rl *RatingLedger) load(ctx context.Context) ([]*models.RatingRecord, error) {
	raw, ok, err := rl.store.Get(ctx, storage.KeyVenueRatings)
	if err != nil {
		return nil, err
	}
	if !ok || raw == "" {
		return []*models.RatingRecord{}, nil
	}

	var ratings []*models.RatingRecord
	if err := json.Unmarshal([]byte(raw), &ratings); err != nil {
		rl.logger.Warnf(providers.TypeApp, "Ignoring unparsable %s entry: %s", storage.KeyVenueRatings, err)
		return []*models.RatingRecord{}, nil
	}

	out := ratings[:0]
	for _, r := range ratings {
		if r != nil {
			out = append(out, r)
		}
	}
	return out, nil
}

func (rl *RatingLedger) remember(record *models.RatingRecord) {
	data, err := json.Marshal(record)
	if err != nil {
		return
	}
	rl.cache.Set(ratingCachePrefix+record.BookingID, data)
}

func (rl *RatingLedger) wait(ctx context.Context) error {
	if rl.delay <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(rl.delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func validateRating(venueID, bookingID string, rating int) *models.ValidationError {
	verr := &models.ValidationError{}
	if venueID == "" {
		verr.AddError("venueId", "venueId is required")
	}
	if bookingID == "" {
		verr.AddError("bookingId", "bookingId is required")
	}
	if rating < MinRating || rating > MaxRating {
		verr.AddError("rating", "rating must be between 1 and 5")
	}
	if verr.HasErrors() {
		return verr
	}
	return nil
}
