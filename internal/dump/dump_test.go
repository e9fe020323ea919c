package dump

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"go-sofascore-scraper/internal/scraper"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func samplePayload() scraper.ScrapePayload {
	home, away, league := "Beşiktaş", "Fenerbahçe", "Brighton & Hove <U21>"
	return scraper.ScrapePayload{
		ScrapeTimeUTC: time.Date(2026, time.October, 19, 8, 0, 0, 0, time.UTC),
		Today: []scraper.Match{
			{Date: "2026-10-19", Home: &home, Away: &away, Score: scraper.ScorePlaceholder, League: &league},
		},
		Next7Days: []scraper.DaySlice{{Date: "2026-10-20", Matches: []scraper.Match{}}},
	}
}

func TestHistoricalName(t *testing.T) {
	rome := time.FixedZone("CEST", 2*60*60)
	ts := time.Date(2026, time.October, 19, 10, 4, 5, 0, rome)
	assert.Equal(t, "sofascore_dump_20261019T080405Z.json", HistoricalName(ts))
}

func TestSave_WritesBothFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "dumps")
	w := NewWriter(dir)
	w.now = func() time.Time { return time.Date(2026, time.October, 19, 8, 0, 1, 0, time.UTC) }

	paths, err := w.Save(samplePayload())
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "sofascore_dump_20261019T080001Z.json"), paths.Historical)
	assert.Equal(t, filepath.Join(dir, LatestName), paths.Latest)

	historical, err := os.ReadFile(paths.Historical)
	require.NoError(t, err)
	latest, err := os.ReadFile(paths.Latest)
	require.NoError(t, err)
	assert.Equal(t, historical, latest)

	text := string(latest)
	assert.Contains(t, text, `"home": "Beşiktaş"`)
	assert.Contains(t, text, `"league": "Brighton & Hove <U21>"`)
	assert.Contains(t, text, "\n  \"today\": [")
	assert.Contains(t, text, `"time_start": null`)
	assert.Contains(t, text, `"matches": []`)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	for _, e := range entries {
		assert.False(t, strings.HasSuffix(e.Name(), ".tmp"), "temp file left behind: %s", e.Name())
	}
}

func TestSave_LatestIsOverwritten(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(dir)
	tick := time.Date(2026, time.October, 19, 8, 0, 0, 0, time.UTC)
	w.now = func() time.Time {
		tick = tick.Add(time.Second)
		return tick
	}

	first := samplePayload()
	_, err := w.Save(first)
	require.NoError(t, err)

	second := samplePayload()
	second.Today = []scraper.Match{}
	paths, err := w.Save(second)
	require.NoError(t, err)

	latest, err := os.ReadFile(paths.Latest)
	require.NoError(t, err)
	assert.Contains(t, string(latest), `"today": []`)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 3)
}

func TestSave_UnwritableDir(t *testing.T) {
	file := filepath.Join(t.TempDir(), "not-a-dir")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0644))

	_, err := NewWriter(file).Save(samplePayload())
	assert.Error(t, err)
}
