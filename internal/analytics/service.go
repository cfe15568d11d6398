package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

const DefaultTopItemsLimit = 5

type Service interface {
	DailyTotals(ctx context.Context) (DailyTotals, error)
	TopItems(ctx context.Context, limit int) ([]ItemCount, error)
	Daily(ctx context.Context) (*DailyReport, error)
}

type service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) Service {
	return NewServiceWithClock(repo, time.Now)
}

func NewServiceWithClock(repo Repository, now func() time.Time) Service {
	return &service{repo: repo, now: now}
}

// StartOfDay returns midnight UTC of the day t falls on in UTC.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DailyTotals sums orders created since the start of the current UTC day.
func (s *service) DailyTotals(ctx context.Context) (DailyTotals, error) {
	since := StartOfDay(s.now())

	totals, err := s.repo.SalesSince(ctx, since)
	if err != nil {
		log.Error().Err(err).Time("since", since).Msg("service: failed to aggregate daily totals")
		return DailyTotals{}, fmt.Errorf("service: failed to aggregate daily totals: %w", err)
	}

	return totals, nil
}

// TopItems ranks items over all orders ever placed, unlike DailyTotals.
func (s *service) TopItems(ctx context.Context, limit int) ([]ItemCount, error) {
	if limit < 1 {
		limit = DefaultTopItemsLimit
	}

	items, err := s.repo.TopItems(ctx, limit)
	if err != nil {
		log.Error().Err(err).Int("limit", limit).Msg("service: failed to aggregate top items")
		return nil, fmt.Errorf("service: failed to aggregate top items: %w", err)
	}
	if items == nil {
		items = []ItemCount{}
	}

	return items, nil
}

func (s *service) Daily(ctx context.Context) (*DailyReport, error) {
	var (
		totals DailyTotals
		top    []ItemCount
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		totals, err = s.DailyTotals(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		top, err = s.TopItems(gctx, DefaultTopItemsLimit)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &DailyReport{
		TotalSales: totals.TotalSales,
		Orders:     totals.Orders,
		TopItems:   top,
	}, nil
}
