package browser

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go-sofascore-scraper/internal/dom"

	"github.com/playwright-community/playwright-go"
)

// WaitStrategy decides how a page is considered rendered.
type WaitStrategy string

const (
	// WaitFixed sleeps SettleDelay after navigation, whatever the page does.
	WaitFixed WaitStrategy = "fixed"
	// WaitSelector polls for the ready selector up to ReadyTimeout.
	// A timeout is not an error: the listing may simply be empty.
	WaitSelector WaitStrategy = "selector"
)

// RenderMode decides what the rows of a session are backed by.
type RenderMode string

const (
	// ModeLive queries live element handles through the driver.
	ModeLive RenderMode = "live"
	// ModeSnapshot parses page.Content() once and queries the static HTML.
	ModeSnapshot RenderMode = "snapshot"
)

func ParseWaitStrategy(s string) (WaitStrategy, error) {
	switch WaitStrategy(s) {
	case WaitFixed, WaitSelector:
		return WaitStrategy(s), nil
	}
	return "", fmt.Errorf("unknown wait strategy %q (want %q or %q)", s, WaitFixed, WaitSelector)
}

func ParseRenderMode(s string) (RenderMode, error) {
	switch RenderMode(s) {
	case ModeLive, ModeSnapshot:
		return RenderMode(s), nil
	}
	return "", fmt.Errorf("unknown render mode %q (want %q or %q)", s, ModeLive, ModeSnapshot)
}

// Session is one rendered page inside its own browsing context.
// Close must be called on every path; it tears the context down.
type Session interface {
	Rows(selector string) ([]dom.Node, error)
	Close() error
}

// Renderer renders a URL into a Session.
// ready is the selector that signals the listing has been rendered.
type Renderer interface {
	Open(ctx context.Context, url, ready string) (Session, error)
}

type Options struct {
	Strategy          WaitStrategy
	Mode              RenderMode
	SettleDelay       time.Duration
	ReadyTimeout      time.Duration
	NavigationTimeout time.Duration
	Screenshots       *ScreenshotDebugger
}

// PageRenderer renders pages with playwright, one fresh BrowserContext per Open.
type PageRenderer struct {
	pm     *PlaywrightManager
	opts   Options
	logger *slog.Logger
}

func NewPageRenderer(pm *PlaywrightManager, opts Options, logger *slog.Logger) *PageRenderer {
	if opts.Strategy == "" {
		opts.Strategy = WaitSelector
	}
	if opts.Mode == "" {
		opts.Mode = ModeLive
	}
	return &PageRenderer{
		pm:     pm,
		opts:   opts,
		logger: logger,
	}
}

func (r *PageRenderer) Open(ctx context.Context, url, ready string) (Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	browserCtx, err := r.pm.NewContext()
	if err != nil {
		return nil, err
	}
	s := &pageSession{browserCtx: browserCtx}
	// a cancelled or timed out ctx closes the context, which fails any pending driver call
	s.stop = context.AfterFunc(ctx, func() {
		browserCtx.Close()
	})

	page, err := browserCtx.NewPage()
	if err != nil {
		s.Close()
		return nil, fmt.Errorf("failed to create new page: %w", err)
	}
	s.page = page

	if _, err := page.Goto(url, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateDomcontentloaded,
		Timeout:   playwright.Float(float64(r.opts.NavigationTimeout.Milliseconds())),
	}); err != nil {
		r.opts.Screenshots.CaptureAndLog(page, "navigation-failed", "🚨 navigation failed for "+url)
		s.Close()
		return nil, fmt.Errorf("failed to navigate to %s: %w", url, err)
	}

	if err := r.waitRendered(ctx, page, ready); err != nil {
		s.Close()
		return nil, err
	}

	if r.opts.Mode == ModeSnapshot {
		html, err := page.Content()
		if err != nil {
			s.Close()
			return nil, fmt.Errorf("failed to read page content: %w", err)
		}
		doc, err := dom.ParseString(html)
		if err != nil {
			s.Close()
			return nil, err
		}
		s.snapshot = doc
	}

	return s, nil
}

func (r *PageRenderer) waitRendered(ctx context.Context, page playwright.Page, ready string) error {
	switch r.opts.Strategy {
	case WaitFixed:
		timer := time.NewTimer(r.opts.SettleDelay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
			return nil
		}
	default:
		_, err := page.WaitForSelector(ready, playwright.PageWaitForSelectorOptions{
			State:   playwright.WaitForSelectorStateAttached,
			Timeout: playwright.Float(float64(r.opts.ReadyTimeout.Milliseconds())),
		})
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err != nil {
			r.logger.Debug("⏳ ready selector not found, treating listing as empty",
				slog.String("selector", ready), slog.Any("error", err))
		}
		return nil
	}
}

// Unavailable is the Renderer used when the browser could not be started.
// Every Open fails with err, so each date is reported as a render failure.
func Unavailable(err error) Renderer {
	return unavailableRenderer{err: err}
}

type unavailableRenderer struct {
	err error
}

func (r unavailableRenderer) Open(context.Context, string, string) (Session, error) {
	return nil, fmt.Errorf("browser unavailable: %w", r.err)
}

type pageSession struct {
	browserCtx playwright.BrowserContext
	page       playwright.Page
	snapshot   *dom.Document
	stop       func() bool
}

func (s *pageSession) Rows(selector string) ([]dom.Node, error) {
	if s.snapshot != nil {
		return s.snapshot.Root().Find(selector)
	}
	handles, err := s.page.QuerySelectorAll(selector)
	if err != nil {
		return nil, fmt.Errorf("failed to query %q: %w", selector, err)
	}
	return wrapHandles(handles), nil
}

func (s *pageSession) Close() error {
	if s.stop != nil {
		s.stop()
	}
	return s.browserCtx.Close()
}
