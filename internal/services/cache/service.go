package cache

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	badger "github.com/dgraph-io/badger/v4"
	"github.com/robfig/cron/v3"
	"github.com/ternarybob/arbor"
	"github.com/ternarybob/greentrip/internal/common"
	"github.com/ternarybob/greentrip/internal/models"
)

const (
	itineraryPrefix = "itinerary:"
	latestKey       = "itinerary:latest"
)

// ErrNotFound is returned when no itinerary matches the key
var ErrNotFound = errors.New("itinerary not found")

// Service stores completed itineraries in Badger with a bounded TTL.
// An empty path runs fully in-memory, which is also what tests use.
// A downstream revision flow reads the most recent itinerary back, so
// the latest ID is tracked under a dedicated key.
type Service struct {
	db       *badger.DB
	ttl      time.Duration
	diskMode bool
	cron     *cron.Cron
	logger   arbor.ILogger
}

// NewService opens the cache from configuration
func NewService(config *common.Config) (*Service, error) {
	logger := common.GetLogger()

	var opts badger.Options
	diskMode := config.Cache.Path != ""
	if diskMode {
		opts = badger.DefaultOptions(config.Cache.Path)
	} else {
		opts = badger.DefaultOptions("").WithInMemory(true)
	}
	opts = opts.WithLogger(nil)

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open cache: %w", err)
	}

	ttl := config.Cache.TTL
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}

	s := &Service{
		db:       db,
		ttl:      ttl,
		diskMode: diskMode,
		logger:   logger,
	}

	if diskMode && config.Cache.SweepSchedule != "" {
		s.cron = cron.New()
		if _, err := s.cron.AddFunc(config.Cache.SweepSchedule, s.sweep); err != nil {
			db.Close()
			return nil, fmt.Errorf("invalid sweep schedule %q: %w", config.Cache.SweepSchedule, err)
		}
		s.cron.Start()
	}

	return s, nil
}

// Put stores an itinerary and marks it as the most recent
func (s *Service) Put(result *models.ItineraryResult) error {
	data, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to marshal itinerary: %w", err)
	}

	return s.db.Update(func(txn *badger.Txn) error {
		entry := badger.NewEntry([]byte(itineraryPrefix+result.ID), data).WithTTL(s.ttl)
		if err := txn.SetEntry(entry); err != nil {
			return err
		}
		latest := badger.NewEntry([]byte(latestKey), []byte(result.ID)).WithTTL(s.ttl)
		return txn.SetEntry(latest)
	})
}

// Get returns a stored itinerary by ID
func (s *Service) Get(id string) (*models.ItineraryResult, error) {
	var result models.ItineraryResult
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(itineraryPrefix + id))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &result)
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read itinerary: %w", err)
	}
	return &result, nil
}

// Latest returns the most recently stored itinerary
func (s *Service) Latest() (*models.ItineraryResult, error) {
	var id string
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(latestKey))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			id = string(val)
			return nil
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read latest pointer: %w", err)
	}
	return s.Get(id)
}

// sweep reclaims value-log space on disk-backed caches
func (s *Service) sweep() {
	if err := s.db.RunValueLogGC(0.5); err != nil && !errors.Is(err, badger.ErrNoRewrite) {
		s.logger.Warn().Err(err).Msg("Value log GC failed")
	}
}

// Close stops the sweep schedule and closes the store
func (s *Service) Close() error {
	if s.cron != nil {
		s.cron.Stop()
	}
	return s.db.Close()
}
