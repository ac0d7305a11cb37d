package cache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
	"go.uber.org/zap"

	"github.com/roamgen/roamgen/internal/app/models"
)

// ItineraryStore holds generated itineraries in memory for the lifetime of a
// UI session. Nothing is persisted: entries expire after the TTL and the
// whole store is gone on restart, which matches the transient lifecycle of a
// generation result.
type ItineraryStore struct {
	cache  *gocache.Cache
	logger *zap.Logger
}

// NewItineraryStore creates a store with the given TTL per itinerary.
func NewItineraryStore(ttl time.Duration, logger *zap.Logger) *ItineraryStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ItineraryStore{
		cache:  gocache.New(ttl, 2*ttl),
		logger: logger,
	}
}

// Put stores an itinerary under its own ID.
func (s *ItineraryStore) Put(it models.Itinerary) {
	s.cache.SetDefault(it.ID, it)
	s.logger.Debug("Itinerary stored",
		zap.String("id", it.ID),
		zap.String("destination", it.Destination),
		zap.Int("days", len(it.Days)))
}

// Get retrieves an itinerary by ID.
func (s *ItineraryStore) Get(id string) (models.Itinerary, bool) {
	v, found := s.cache.Get(id)
	if !found {
		return models.Itinerary{}, false
	}
	it, ok := v.(models.Itinerary)
	return it, ok
}

// Delete removes an itinerary, used by the UI reset action.
func (s *ItineraryStore) Delete(id string) {
	s.cache.Delete(id)
}
