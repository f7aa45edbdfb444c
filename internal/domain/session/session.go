// Package session owns the lifecycle of one loaded dataset: header
// validation, normalization, currency inference, year filtering and
// view building. A load fully replaces prior derived state; readers
// never observe a dataset mid-replacement.
package session

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/FACorreiaa/order-insights/internal/domain/analytics"
	"github.com/FACorreiaa/order-insights/internal/domain/purchase"
	"github.com/FACorreiaa/order-insights/internal/domain/record"
)

// ErrNoValidRows means the headers validated but no row survived
// normalization. Distinct from a missing-columns failure so callers can
// tell "wrong file" from "right file, unusable rows".
var ErrNoValidRows = errors.New("no rows survived normalization")

// LoadResult summarizes a successful load.
type LoadResult struct {
	LoadID   uuid.UUID
	RowsIn   int
	RowsKept int
	Currency string
}

// Session holds the currently loaded purchase set and its inferred
// display currency. Loads swap the whole state under the lock.
type Session struct {
	mu          sync.RWMutex
	logger      *slog.Logger
	rankingSize int

	loadID    uuid.UUID
	purchases []purchase.Purchase
	currency  string
}

// New creates an empty session.
func New(logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	return &Session{
		logger:      logger,
		rankingSize: analytics.DefaultRankingSize,
		currency:    purchase.DefaultCurrency,
	}
}

// WithRankingSize overrides the top/bottom ranking length.
func (s *Session) WithRankingSize(n int) *Session {
	s.rankingSize = n
	return s
}

// Load validates the export headers, normalizes all rows and infers the
// display currency. On any failure the previous dataset is kept; on
// success it is discarded entirely before the new one becomes visible.
func (s *Session) Load(rows []record.RawRecord, headers []string) (*LoadResult, error) {
	if err := record.ValidateHeaders(headers); err != nil {
		return nil, fmt.Errorf("rejecting load: %w", err)
	}

	ps := purchase.NormalizeAll(rows)
	if len(ps) == 0 {
		return nil, ErrNoValidRows
	}
	currency := purchase.InferDisplayCurrency(ps)
	loadID := uuid.New()

	s.mu.Lock()
	s.loadID = loadID
	s.purchases = ps
	s.currency = currency
	s.mu.Unlock()

	s.logger.Info("dataset loaded",
		"loadID", loadID,
		"rows", len(rows),
		"kept", len(ps),
		"excluded", len(rows)-len(ps),
		"currency", currency,
	)

	return &LoadResult{
		LoadID:   loadID,
		RowsIn:   len(rows),
		RowsKept: len(ps),
		Currency: currency,
	}, nil
}

// Clear discards the loaded dataset and all derived state.
func (s *Session) Clear() {
	s.mu.Lock()
	s.loadID = uuid.Nil
	s.purchases = nil
	s.currency = purchase.DefaultCurrency
	s.mu.Unlock()
}

// LoadID identifies the current dataset, uuid.Nil when nothing is loaded.
func (s *Session) LoadID() uuid.UUID {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loadID
}

// Currency returns the inferred display currency.
func (s *Session) Currency() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.currency
}

// Purchases returns a copy of the loaded purchase set.
func (s *Session) Purchases() []purchase.Purchase {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]purchase.Purchase, len(s.purchases))
	copy(out, s.purchases)
	return out
}

// Years returns the distinct purchase years ascending, for populating
// from/to range selectors.
func (s *Session) Years() []int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[int]struct{}, 8)
	for _, p := range s.purchases {
		seen[p.Year] = struct{}{}
	}
	years := make([]int, 0, len(seen))
	for y := range seen {
		years = append(years, y)
	}
	sort.Ints(years)
	return years
}

// FilterByYearRange returns the purchases whose year falls within the
// inclusive bounds. Any integer bounds are tolerated; a range matching
// nothing, including from > to, returns an empty set.
func (s *Session) FilterByYearRange(from, to int) []purchase.Purchase {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]purchase.Purchase, 0, len(s.purchases))
	for _, p := range s.purchases {
		if p.Year >= from && p.Year <= to {
			out = append(out, p)
		}
	}
	return out
}

// BuildViews derives all aggregate series and rankings for the given
// purchase set, usually Purchases() or a year-filtered subset of it.
func (s *Session) BuildViews(ps []purchase.Purchase) analytics.Views {
	return analytics.BuildViews(ps, s.rankingSize)
}
