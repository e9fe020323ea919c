// Package app wires one scraping run: build the payload, persist it, deliver it, report it.
package app

import (
	"context"
	"log/slog"
	"time"

	"go-sofascore-scraper/internal/dump"
	"go-sofascore-scraper/internal/orchestrator"
	"go-sofascore-scraper/internal/reporter"
	"go-sofascore-scraper/internal/scraper"
)

type PayloadBuilder interface {
	Build(ctx context.Context, now time.Time) (scraper.ScrapePayload, orchestrator.Report)
}

type Dumper interface {
	Save(payload any) (dump.Paths, error)
}

type Deliverer interface {
	Post(ctx context.Context, payload any) error
}

type Notifier interface {
	SendSummary(s reporter.Summary) error
}

// Result is everything a run produced. Sink errors are recorded, never returned.
type Result struct {
	Payload     scraper.ScrapePayload
	Report      orchestrator.Report
	Paths       dump.Paths
	DumpErr     error
	DeliveryErr error
}

type App struct {
	builder   PayloadBuilder
	dumper    Dumper
	deliverer Deliverer
	notifier  Notifier
	logger    *slog.Logger
	now       func() time.Time
}

// New builds an App. A nil deliverer skips delivery, a nil notifier skips the summary.
func New(builder PayloadBuilder, dumper Dumper, deliverer Deliverer, notifier Notifier, logger *slog.Logger) *App {
	return &App{
		builder:   builder,
		dumper:    dumper,
		deliverer: deliverer,
		notifier:  notifier,
		logger:    logger,
		now:       time.Now,
	}
}

// Run performs one scrape. Dump and delivery are independent: a failure of one
// does not prevent the other, and neither touches the payload already built.
func (a *App) Run(ctx context.Context) Result {
	a.logger.Info("🚀 starting SofaScore scrape")

	payload, report := a.builder.Build(ctx, a.now())
	res := Result{Payload: payload, Report: report}
	a.logger.Info("📦 payload built",
		slog.Int("today", len(payload.Today)),
		slog.Int("total", report.Total()),
		slog.Int("failed_days", len(report.Failed())),
		slog.Duration("took", report.Duration))

	res.Paths, res.DumpErr = a.dumper.Save(payload)
	if res.DumpErr != nil {
		a.logger.Error("❌ failed to save dump", slog.Any("error", res.DumpErr))
	} else {
		a.logger.Info("💾 historical dump saved", slog.String("path", res.Paths.Historical))
		a.logger.Info("💾 latest dump saved", slog.String("path", res.Paths.Latest))
	}

	if a.deliverer != nil {
		res.DeliveryErr = a.deliverer.Post(ctx, payload)
		if res.DeliveryErr != nil {
			a.logger.Error("❌ failed to deliver payload", slog.Any("error", res.DeliveryErr))
		}
	} else {
		a.logger.Info("ℹ️ delivery skipped")
	}

	if a.notifier != nil {
		err := a.notifier.SendSummary(reporter.Summary{
			Report:          report,
			DumpErr:         res.DumpErr,
			DeliveryErr:     res.DeliveryErr,
			DeliverySkipped: a.deliverer == nil,
		})
		if err != nil {
			a.logger.Warn("⚠️ failed to send summary to Telegram", slog.Any("error", err))
		}
	}

	a.logger.Info("🏁 scrape finished")
	return res
}
