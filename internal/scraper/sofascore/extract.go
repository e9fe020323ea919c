package sofascore

import (
	"errors"

	"go-sofascore-scraper/internal/dom"
	"go-sofascore-scraper/internal/scraper"
)

// Selectors of the football listing at www.sofascore.com/football/<date>.
const (
	rowSelector     = "div.js-list-cell-target"
	timeSelector    = "div[title] bdi"
	teamSelector    = "div.ov_hidden bdi"
	scoreSelector   = "span.currentScore bdi"
	leagueSelector  = "bdi.textStyle_display.micro"
	countrySelector = "bdi.textStyle_assistive.default"
)

// fieldCount is the number of lookups Extract makes per row.
const fieldCount = 6

// ErrUnreadableRow is returned when none of the field lookups of a row could run.
var ErrUnreadableRow = errors.New("unreadable match row")

// lookup returns the text of the index-th node matching selector under row.
// ok is false when the node does not exist.
func lookup(row dom.Node, selector string, index int) (text string, ok bool, err error) {
	node, ok, err := dom.Nth(row, selector, index)
	if err != nil || !ok {
		return "", false, err
	}
	text, err = node.Text()
	if err != nil {
		return "", false, err
	}
	return text, true, nil
}

// Extract reads one match row. Missing nodes and failed lookups leave the field nil,
// except the score which falls back to scraper.ScorePlaceholder.
func Extract(row dom.Node, date string) (scraper.Match, error) {
	failed := 0
	field := func(selector string, index int) *string {
		text, ok, err := lookup(row, selector, index)
		if err != nil {
			failed++
			return nil
		}
		if !ok {
			return nil
		}
		return &text
	}

	m := scraper.Match{
		Date:      date,
		TimeStart: field(timeSelector, 0),
		Home:      field(teamSelector, 0),
		Away:      field(teamSelector, 1),
		League:    field(leagueSelector, 0),
		Country:   field(countrySelector, 0),
	}
	score := field(scoreSelector, 0)

	if failed == fieldCount {
		return scraper.Match{}, ErrUnreadableRow
	}

	m.Score = scraper.ScorePlaceholder
	if score != nil {
		m.Score = *score
	}
	return m, nil
}
