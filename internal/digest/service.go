package digest

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/hematwoi/backend/internal/models"
	"github.com/hematwoi/backend/internal/types"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// historyMonths is how far back transactions are fetched for the weekly
// averages.
const historyMonths = 3

// Service computes and caches daily digests. It is constructed once at
// application start and injected into the handlers that need it.
type Service struct {
	db    *gorm.DB
	cache *Cache
	loc   *time.Location
	clock func() time.Time

	// generation disambiguates interleaved refreshes: only the most
	// recently started refresh may commit its result to the cache.
	generation atomic.Uint64
}

// NewService returns a digest Service reading from db, bucketing by
// calendar days in loc.
func NewService(db *gorm.DB, cache *Cache, loc *time.Location) *Service {
	return &Service{
		db:    db,
		cache: cache,
		loc:   loc,
		clock: time.Now,
	}
}

// Get serves the cached digest when it is still fresh and refreshes
// otherwise.
func (s *Service) Get(ctx context.Context, userID uuid.UUID) (Data, error) {
	if data, fresh, ok := s.cache.Get(userID); ok && fresh {
		return data, nil
	}

	return s.Refresh(ctx, userID)
}

// Refresh recomputes the digest from the row store.
//
// On a fetch failure the last cached digest is returned together with
// the error, so the caller can display data and warning at once. Without
// any cached value, a zero digest is returned.
func (s *Service) Refresh(ctx context.Context, userID uuid.UUID) (Data, error) {
	generation := s.generation.Add(1)

	now := s.clock()
	today := types.DateOf(now, s.loc)

	fetched, err := s.fetch(ctx, userID, today)
	if err != nil {
		if data, _, ok := s.cache.Get(userID); ok {
			return data, err
		}

		return zeroData(now), err
	}

	data := reduce(fetched, today, now)

	// A refresh that was overtaken by a newer one discards its commit:
	// last request wins.
	if generation == s.generation.Load() {
		if err := s.cache.Put(userID, data); err != nil {
			log.Debug().Err(err).Str("userID", userID.String()).Msg("digest cache write failed")
		}
	}

	return data, nil
}

// fetch loads all rows one digest needs. The independent queries run
// concurrently and are joined before reducing.
func (s *Service) fetch(ctx context.Context, userID uuid.UUID, today types.Date) (rows, error) {
	var r rows

	historyStart := types.Month(today.StartOfMonth().Time()).AddDate(0, -historyMonths)
	tomorrow := today.AddDays(1)
	dueHorizon := today.AddDays(upcomingWindowDays + 1)
	month := today.Month()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return s.db.WithContext(ctx).
			Where("user_id = ?", userID).
			Find(&r.accounts).Error
	})

	g.Go(func() error {
		return s.db.WithContext(ctx).
			Preload("Category").
			Where("user_id = ? AND date >= ? AND date < ?", userID, time.Time(historyStart), tomorrow.Time()).
			Find(&r.transactions).Error
	})

	g.Go(func() error {
		return s.db.WithContext(ctx).
			Preload("Category").
			Where("user_id = ? AND month = ?", userID, month).
			Find(&r.budgets).Error
	})

	g.Go(func() error {
		return s.db.WithContext(ctx).
			Where("user_id = ? AND status <> ? AND due_date >= ? AND due_date < ?",
				userID, models.ChargeStatusPaid, today.Time(), dueHorizon.Time()).
			Find(&r.charges).Error
	})

	g.Go(func() error {
		return s.db.WithContext(ctx).
			Where("user_id = ? AND status <> ? AND due_date >= ? AND due_date < ?",
				userID, models.DebtStatusPaid, today.Time(), dueHorizon.Time()).
			Find(&r.debts).Error
	})

	if err := g.Wait(); err != nil {
		return rows{}, err
	}

	return r, nil
}

// zeroData is the hard default served when neither a fetch nor any cache
// tier can provide a digest.
func zeroData(now time.Time) Data {
	return Data{
		Direction:      DirectionFlat,
		TopCategories:  []CategorySummary{},
		BudgetWarnings: []BudgetWarning{},
		Upcoming:       []UpcomingItem{},
		Insight:        noWeeklyTransactions,
		GeneratedAt:    now,
	}
}
