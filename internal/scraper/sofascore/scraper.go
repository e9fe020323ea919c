package sofascore

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"go-sofascore-scraper/internal/browser"
	"go-sofascore-scraper/internal/config"
	"go-sofascore-scraper/internal/scraper"
)

type SofaScoreScraper struct {
	cfg      *config.Config
	renderer browser.Renderer
	logger   *slog.Logger
}

func NewSofaScoreScraper(cfg *config.Config, renderer browser.Renderer, logger *slog.Logger) *SofaScoreScraper {
	return &SofaScoreScraper{
		cfg:      cfg,
		renderer: renderer,
		logger:   logger,
	}
}

func (s *SofaScoreScraper) Name() string {
	return "SofaScore"
}

// DayURL is the listing page of one calendar date.
func (s *SofaScoreScraper) DayURL(day time.Time) string {
	return strings.TrimRight(s.cfg.BaseURL, "/") + "/" + scraper.FormatDate(day)
}

// ScrapeDay returns the matches of day in page order. It never fails:
// a page that cannot be rendered yields an empty slice.
func (s *SofaScoreScraper) ScrapeDay(ctx context.Context, day time.Time) []scraper.Match {
	matches, err := s.ScrapeDayResult(ctx, day)
	if err != nil {
		s.logger.Warn("⚠️ render failed, day left empty",
			slog.String("date", scraper.FormatDate(day)), slog.Any("error", err))
	}
	return matches
}

// ScrapeDayResult is ScrapeDay with the render error reported. The returned slice is
// never nil, so an empty day still serializes as [].
func (s *SofaScoreScraper) ScrapeDayResult(ctx context.Context, day time.Time) ([]scraper.Match, error) {
	date := scraper.FormatDate(day)
	url := s.DayURL(day)

	if s.cfg.DayTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.DayTimeout)
		defer cancel()
	}

	s.logger.Info("🔍 scraping day", slog.String("date", date), slog.String("url", url))

	session, err := s.renderer.Open(ctx, url, rowSelector)
	if err != nil {
		return []scraper.Match{}, fmt.Errorf("render %s: %w", date, err)
	}
	defer func() {
		if err := session.Close(); err != nil {
			s.logger.Debug("browser context close failed", slog.String("date", date), slog.Any("error", err))
		}
	}()

	if err := ctx.Err(); err != nil {
		return []scraper.Match{}, fmt.Errorf("render %s: %w", date, err)
	}
	rows, err := session.Rows(rowSelector)
	if err != nil {
		return []scraper.Match{}, fmt.Errorf("render %s: %w", date, err)
	}

	matches := make([]scraper.Match, 0, len(rows))
	skipped := 0
	for _, row := range rows {
		m, err := Extract(row, date)
		if err != nil {
			skipped++
			continue
		}
		matches = append(matches, m)
	}
	// the browser context is closed once ctx is done, so later rows read as missing
	if err := ctx.Err(); err != nil {
		return []scraper.Match{}, fmt.Errorf("render %s: %w", date, err)
	}

	if skipped > 0 {
		s.logger.Debug("skipped unreadable rows", slog.String("date", date), slog.Int("skipped", skipped))
	}
	s.logger.Info("✅ day scraped", slog.String("date", date), slog.Int("count", len(matches)))
	return matches, nil
}
