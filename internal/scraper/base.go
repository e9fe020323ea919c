// Shared fixture types for every day scraper
// Payload shape consumed by the dump and delivery sinks

package scraper

import (
	"context"
	"time"
)

// DateLayout is the ISO calendar date used in URLs and payload dates.
const DateLayout = "2006-01-02"

// ScorePlaceholder is written when a row has no score node.
const ScorePlaceholder = "-"

// Match is one fixture row as rendered on the listing page.
// Optional fields are nil when the node is missing.
type Match struct {
	Date      string  `json:"date"`
	TimeStart *string `json:"time_start"`
	Home      *string `json:"home"`
	Away      *string `json:"away"`
	Score     string  `json:"score"`
	League    *string `json:"league"`
	Country   *string `json:"country"`
}

// DaySlice groups the matches of one future date.
type DaySlice struct {
	Date    string  `json:"date"`
	Matches []Match `json:"matches"`
}

// ScrapePayload is the result of one run: today flat, the following week grouped by date.
type ScrapePayload struct {
	ScrapeTimeUTC time.Time  `json:"scrape_time_utc"`
	Today         []Match    `json:"today"`
	Next7Days     []DaySlice `json:"next_7_days"`
}

// DayScraper defines what the orchestrator needs from a site scraper.
type DayScraper interface {
	// ScrapeDayResult returns the matches of one calendar date.
	// A non-nil error means the page could not be rendered; matches is then empty.
	ScrapeDayResult(ctx context.Context, day time.Time) ([]Match, error)

	// Name is the site name used in logs.
	Name() string
}

// FormatDate renders day as YYYY-MM-DD in its own location.
func FormatDate(day time.Time) string {
	return day.Format(DateLayout)
}
