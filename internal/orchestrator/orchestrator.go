// Package orchestrator builds the payload of one run: today plus the following week.
package orchestrator

import (
	"context"
	"log/slog"
	"time"

	"go-sofascore-scraper/internal/scraper"

	"golang.org/x/sync/errgroup"
)

// FutureDays is the number of dates after today in every payload.
const FutureDays = 7

// DayResult is the outcome of one date.
type DayResult struct {
	Date  string
	Count int
	Err   error
}

// Report summarizes a run; Days[0] is today.
type Report struct {
	Days     []DayResult
	Duration time.Duration
}

// Failed returns the dates whose page could not be rendered.
func (r Report) Failed() []DayResult {
	var failed []DayResult
	for _, d := range r.Days {
		if d.Err != nil {
			failed = append(failed, d)
		}
	}
	return failed
}

// Total is the number of matches across all dates.
func (r Report) Total() int {
	total := 0
	for _, d := range r.Days {
		total += d.Count
	}
	return total
}

type Orchestrator struct {
	days        scraper.DayScraper
	concurrency int
	loc         *time.Location
	logger      *slog.Logger
}

// New returns an orchestrator running at most concurrency day scrapes at once.
// Calendar dates are computed in loc.
func New(days scraper.DayScraper, concurrency int, loc *time.Location, logger *slog.Logger) *Orchestrator {
	if concurrency < 1 {
		concurrency = 1
	}
	if loc == nil {
		loc = time.Local
	}
	return &Orchestrator{
		days:        days,
		concurrency: concurrency,
		loc:         loc,
		logger:      logger,
	}
}

// BuildPayload scrapes today and the next FutureDays dates. It always returns a
// payload with FutureDays entries; failed dates are empty.
func (o *Orchestrator) BuildPayload(ctx context.Context, now time.Time) scraper.ScrapePayload {
	payload, _ := o.Build(ctx, now)
	return payload
}

// Build is BuildPayload plus a per-date report.
func (o *Orchestrator) Build(ctx context.Context, now time.Time) (scraper.ScrapePayload, Report) {
	start := time.Now()
	local := now.In(o.loc)
	o.logger.Info("🗓️ building payload",
		slog.String("source", o.days.Name()),
		slog.String("today", scraper.FormatDate(local)),
		slog.Int("concurrency", o.concurrency))

	// one slot per date, filled by index so completion order does not matter
	results := make([][]scraper.Match, FutureDays+1)
	errs := make([]error, FutureDays+1)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.concurrency)
	for delta := 0; delta <= FutureDays; delta++ {
		delta := delta
		day := local.AddDate(0, 0, delta)
		g.Go(func() error {
			matches, err := o.days.ScrapeDayResult(gctx, day)
			if matches == nil {
				matches = []scraper.Match{}
			}
			results[delta] = matches
			errs[delta] = err
			return nil
		})
	}
	_ = g.Wait()

	payload := scraper.ScrapePayload{
		ScrapeTimeUTC: now.UTC(),
		Today:         results[0],
		Next7Days:     make([]scraper.DaySlice, 0, FutureDays),
	}
	report := Report{Days: make([]DayResult, 0, FutureDays+1)}

	for delta := 0; delta <= FutureDays; delta++ {
		date := scraper.FormatDate(local.AddDate(0, 0, delta))
		if delta > 0 {
			payload.Next7Days = append(payload.Next7Days, scraper.DaySlice{
				Date:    date,
				Matches: results[delta],
			})
		}
		report.Days = append(report.Days, DayResult{Date: date, Count: len(results[delta]), Err: errs[delta]})

		if errs[delta] != nil {
			o.logger.Warn("⚠️ render failed, day left empty", slog.String("date", date), slog.Any("error", errs[delta]))
			continue
		}
		o.logger.Info("📅 matches", slog.String("date", date), slog.Int("count", len(results[delta])))
	}
	report.Duration = time.Since(start)

	return payload, report
}
