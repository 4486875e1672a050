// Package review keeps a learner's spaced-repetition state and decides what
// to study next.
//
// All state lives in one JSON document in a database.Store. Every operation
// loads the whole document, and mutating operations save it back whole. A
// Scheduler serializes its own operations, so one Scheduler per store is the
// supported setup.
package review

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/example/thaivocab/internal/catalog"
	"github.com/example/thaivocab/internal/database"
	srs "github.com/example/thaivocab/internal/spaced_repetition"
	"github.com/example/thaivocab/pkg/models"
)

// DefaultKey is the store key of the review document
const DefaultKey = "@spaced_repetition_data"

var (
	// ErrInvalidQuality is returned for ratings outside 0-5
	ErrInvalidQuality = errors.New("quality must be between 0 and 5")
	// ErrUnknownItem is returned in strict mode for ids missing from the catalog
	ErrUnknownItem = errors.New("unknown vocabulary item")
)

// Scheduler decides which vocabulary items are due and records reviews
type Scheduler struct {
	store   database.Store
	catalog *catalog.Catalog
	algo    *srs.SM2
	log     *zap.Logger
	now     func() time.Time
	loc     *time.Location
	key     string
	strict  bool

	mu sync.Mutex
}

// Option configures a Scheduler
type Option func(*Scheduler)

// WithClock replaces time.Now
func WithClock(now func() time.Time) Option {
	return func(s *Scheduler) { s.now = now }
}

// WithLocation sets the time zone whose calendar days count for streaks
func WithLocation(loc *time.Location) Option {
	return func(s *Scheduler) { s.loc = loc }
}

// WithKey sets the store key of the review document
func WithKey(key string) Option {
	return func(s *Scheduler) { s.key = key }
}

// WithStrictItems makes RecordReview reject ids that are neither in the
// catalog nor already saved
func WithStrictItems(strict bool) Option {
	return func(s *Scheduler) { s.strict = strict }
}

// WithLogger sets the logger
func WithLogger(log *zap.Logger) Option {
	return func(s *Scheduler) { s.log = log }
}

// WithAlgorithm replaces the default SM-2 settings
func WithAlgorithm(algo *srs.SM2) Option {
	return func(s *Scheduler) { s.algo = algo }
}

// NewScheduler creates a scheduler over store and catalog
func NewScheduler(store database.Store, cat *catalog.Catalog, opts ...Option) *Scheduler {
	s := &Scheduler{
		store:   store,
		catalog: cat,
		algo:    srs.NewSM2(),
		log:     zap.NewNop(),
		now:     time.Now,
		loc:     time.Local,
		key:     DefaultKey,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// load reads the review document. Any failure yields the empty state.
func (s *Scheduler) load(ctx context.Context) *models.SchedulerState {
	data, err := s.store.Load(ctx, s.key)
	if err != nil {
		if !errors.Is(err, database.ErrNotFound) {
			s.log.Warn("failed to load review state, using defaults", zap.Error(err))
		}
		return models.NewSchedulerState()
	}

	state := models.NewSchedulerState()
	if err := json.Unmarshal(data, state); err != nil {
		s.log.Warn("corrupt review state, using defaults", zap.Error(err))
		return models.NewSchedulerState()
	}
	if state.Words == nil {
		state.Words = make(map[string]*models.ReviewState)
	}
	for id, rs := range state.Words {
		if rs == nil {
			delete(state.Words, id)
		}
	}
	return state
}

func (s *Scheduler) save(ctx context.Context, state *models.SchedulerState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to encode review state: %w", err)
	}
	if err := s.store.Save(ctx, s.key, data); err != nil {
		s.log.Error("failed to save review state", zap.Error(err))
		return fmt.Errorf("failed to save review state: %w", err)
	}
	return nil
}

// items returns the catalog followed by saved custom items in id order
func (s *Scheduler) items(state *models.SchedulerState) []models.VocabularyItem {
	items := s.catalog.Items()
	if len(state.CustomItems) == 0 {
		return items
	}
	custom := make([]models.VocabularyItem, 0, len(state.CustomItems))
	for id, item := range state.CustomItems {
		if s.catalog.Contains(id) {
			continue
		}
		item.ID = id
		custom = append(custom, item)
	}
	sort.Slice(custom, func(i, j int) bool { return custom[i].ID < custom[j].ID })
	return append(items, custom...)
}

// DueItems returns the items due for review. Never reviewed items come
// first in catalog order, then the rest by ascending next review date.
func (s *Scheduler) DueItems(ctx context.Context) []models.VocabularyItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.dueItems(s.load(ctx), s.now().UTC())
}

func (s *Scheduler) dueItems(state *models.SchedulerState, now time.Time) []models.VocabularyItem {
	var fresh, scheduled []models.VocabularyItem
	for _, item := range s.items(state) {
		rs, ok := state.Words[item.ID]
		switch {
		case !ok:
			fresh = append(fresh, item)
		case rs.IsDue(now):
			scheduled = append(scheduled, item)
		}
	}
	sort.SliceStable(scheduled, func(i, j int) bool {
		return state.Words[scheduled[i].ID].NextReviewDate.Before(state.Words[scheduled[j].ID].NextReviewDate)
	})
	return append(fresh, scheduled...)
}

// NewItems returns up to count catalog items that have never been saved or
// reviewed, easiest first
func (s *Scheduler) NewItems(ctx context.Context, count int) []models.VocabularyItem {
	if count <= 0 {
		return []models.VocabularyItem{}
	}

	s.mu.Lock()
	state := s.load(ctx)
	s.mu.Unlock()

	var items []models.VocabularyItem
	for _, item := range s.catalog.Items() {
		if _, ok := state.Words[item.ID]; !ok {
			items = append(items, item)
		}
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Difficulty.Rank() < items[j].Difficulty.Rank()
	})
	if len(items) > count {
		items = items[:count]
	}
	return items
}

// RecordReview applies a quality rating to the item and updates the
// learner's totals and streak
func (s *Scheduler) RecordReview(ctx context.Context, itemID string, quality srs.QualityResponse) error {
	if !quality.Valid() {
		return fmt.Errorf("%w: got %d", ErrInvalidQuality, quality)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now().UTC()
	state := s.load(ctx)

	rs, ok := state.Words[itemID]
	if !ok {
		// Saved custom items pass strict mode through their existing state
		if s.strict && !s.IsKnownItem(itemID) {
			return fmt.Errorf("%w: %q", ErrUnknownItem, itemID)
		}
		rs = s.algo.NewState(itemID, now)
		state.Words[itemID] = rs
	}
	s.algo.Process(rs, quality, now)

	if rs.TotalReviews == 1 {
		state.TotalWordsLearned++
	}

	state.CurrentStreak = srs.NextStreak(state.LastSessionDate, state.CurrentStreak, now, s.loc)
	session := now
	state.LastSessionDate = &session

	s.log.Debug("review recorded",
		zap.String("item", itemID),
		zap.Int("quality", int(quality)),
		zap.Int("interval", rs.Interval),
		zap.Float64("ease", rs.EaseFactor),
		zap.Int("streak", state.CurrentStreak),
	)

	return s.save(ctx, state)
}

// Stats summarises the learner's progress
func (s *Scheduler) Stats(ctx context.Context) models.Stats {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := s.load(ctx)
	mastered := 0
	for _, rs := range state.Words {
		if srs.IsMastered(rs) {
			mastered++
		}
	}
	return models.Stats{
		TotalWordsLearned: state.TotalWordsLearned,
		WordsForReview:    len(s.dueItems(state, s.now().UTC())),
		MasteredWords:     mastered,
		ReviewStreak:      state.CurrentStreak,
	}
}

// AddItemToReview starts tracking an item without reviewing it, for
// example a word bookmarked while reading. It does nothing if the item is
// already tracked. Metadata is kept for items outside the catalog.
func (s *Scheduler) AddItemToReview(ctx context.Context, itemID string, meta models.VocabularyItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := s.load(ctx)
	if _, ok := state.Words[itemID]; ok {
		return nil
	}

	state.Words[itemID] = s.algo.NewState(itemID, s.now().UTC())
	if !s.catalog.Contains(itemID) && (meta.Text != "" || meta.Translation != "") {
		if state.CustomItems == nil {
			state.CustomItems = make(map[string]models.VocabularyItem)
		}
		meta.ID = itemID
		if !meta.Difficulty.Valid() {
			meta.Difficulty = models.Beginner
		}
		state.CustomItems[itemID] = meta
	}
	return s.save(ctx, state)
}

// IsItemSaved reports whether the item has review state
func (s *Scheduler) IsItemSaved(ctx context.Context, itemID string) bool {
	_, ok := s.ReviewState(ctx, itemID)
	return ok
}

// ReviewState returns a copy of the item's review state
func (s *Scheduler) ReviewState(ctx context.Context, itemID string) (models.ReviewState, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rs, ok := s.load(ctx).Words[itemID]
	if !ok {
		return models.ReviewState{}, false
	}
	return *rs, true
}

// IsKnownItem reports whether itemID is in the catalog
func (s *Scheduler) IsKnownItem(itemID string) bool {
	return s.catalog.Contains(itemID)
}

// Reset deletes all review history
func (s *Scheduler) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.Delete(ctx, s.key); err != nil {
		s.log.Error("failed to reset review state", zap.Error(err))
		return fmt.Errorf("failed to reset review state: %w", err)
	}
	return nil
}
