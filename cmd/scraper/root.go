package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-sofascore-scraper/internal/app"
	"go-sofascore-scraper/internal/browser"
	"go-sofascore-scraper/internal/config"
	"go-sofascore-scraper/internal/delivery"
	"go-sofascore-scraper/internal/dump"
	"go-sofascore-scraper/internal/logging"
	"go-sofascore-scraper/internal/orchestrator"
	"go-sofascore-scraper/internal/reporter"
	"go-sofascore-scraper/internal/scraper"
	"go-sofascore-scraper/internal/scraper/sofascore"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	flagConfig       string
	flagSkipDelivery bool
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scraper",
		Short: "Scrape SofaScore football fixtures for today and the next 7 days",
		Long: `Renders the SofaScore football listing for today and each of the next 7 days,
writes the result to a timestamped dump plus sofascore_latest.json and posts it
to the configured receiver.`,
		SilenceUsage: true,
		RunE:         runScrape,
	}

	cmd.PersistentFlags().StringVar(&flagConfig, "config", config.DefaultPath, "Path to the YAML config file")
	cmd.Flags().BoolVar(&flagSkipDelivery, "skip-delivery", false, "Write the dumps but do not POST the payload")

	cmd.AddCommand(newDayCmd(), newConfigCmd())
	return cmd
}

// deps holds what every command needs to render pages.
type deps struct {
	cfg      *config.Config
	logger   *slog.Logger
	pm       *browser.PlaywrightManager
	days     *sofascore.SofaScoreScraper
	closeLog func() error
}

func (r *deps) Close() {
	if r.pm != nil {
		if err := r.pm.Close(); err != nil {
			r.logger.Warn("⚠️ failed to stop browser", slog.Any("error", err))
		}
	}
	r.closeLog()
}

func setup(ctx context.Context) (*deps, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, err
	}

	logger, closeLog, err := logging.Open(cfg.LogFile, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return nil, err
	}
	if cfg.Source == "" {
		logger.Warn("⚠️ config file not found, using env and defaults", slog.String("path", flagConfig))
	}
	logger.Info("🔧 config loaded",
		slog.String("base_url", cfg.BaseURL),
		slog.String("wait_strategy", cfg.WaitStrategy),
		slog.String("render_mode", cfg.RenderMode),
		slog.Int("concurrency", cfg.Concurrency))

	//init playwright manager
	var renderer browser.Renderer
	pm, err := browser.NewPlaywright(ctx, cfg.Headless)
	if err != nil {
		// every date degrades to empty; the run still dumps and delivers
		logger.Error("❌ browser unavailable", slog.Any("error", err))
		renderer = browser.Unavailable(err)
	} else {
		var screenshots *browser.ScreenshotDebugger
		if cfg.DebugScreenshots {
			screenshots = browser.NewScreenshotDebugger(cfg.ScreenshotDir, logger)
		}
		// Validate already checked both enums
		strategy, _ := browser.ParseWaitStrategy(cfg.WaitStrategy)
		mode, _ := browser.ParseRenderMode(cfg.RenderMode)

		renderer = browser.NewPageRenderer(pm, browser.Options{
			Strategy:          strategy,
			Mode:              mode,
			SettleDelay:       cfg.SettleDelay,
			ReadyTimeout:      cfg.ReadyTimeout,
			NavigationTimeout: cfg.NavigationTimeout,
			Screenshots:       screenshots,
		}, logger)
	}

	return &deps{
		cfg:      cfg,
		logger:   logger,
		pm:       pm,
		days:     sofascore.NewSofaScoreScraper(cfg, renderer, logger),
		closeLog: closeLog,
	}, nil
}

func runScrape(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rt, err := setup(ctx)
	if err != nil {
		return err
	}
	defer rt.Close()

	var deliverer app.Deliverer
	if !flagSkipDelivery {
		deliverer = delivery.NewClient(rt.cfg.APIEndpoint, rt.cfg.DeliveryTimeout, rt.logger)
	}

	var notifier app.Notifier
	if rt.cfg.TelegramEnabled() {
		bot, err := reporter.NewTelegramReporter(rt.cfg)
		if err != nil {
			rt.logger.Warn("⚠️ Telegram disabled", slog.Any("error", err))
		} else {
			notifier = bot
		}
	}

	orch := orchestrator.New(rt.days, rt.cfg.Concurrency, rt.cfg.Location, rt.logger)
	a := app.New(orch, dump.NewWriter(rt.cfg.DumpDir), deliverer, notifier, rt.logger)
	a.Run(ctx)
	return nil
}

func newDayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "day [YYYY-MM-DD]",
		Short: "Scrape a single date and print its matches as JSON",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			rt, err := setup(ctx)
			if err != nil {
				return err
			}
			defer rt.Close()

			day := time.Now().In(rt.cfg.Location)
			if len(args) == 1 {
				day, err = time.ParseInLocation(scraper.DateLayout, args[0], rt.cfg.Location)
				if err != nil {
					return fmt.Errorf("invalid date %q: %w", args[0], err)
				}
			}

			matches, err := rt.days.ScrapeDayResult(ctx, day)
			if err != nil {
				return err
			}
			data, err := dump.Encode(matches)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(flagConfig)
			if err != nil {
				return err
			}
			out := *cfg
			if out.TelegramToken != "" {
				out.TelegramToken = "***"
			}
			data, err := yaml.Marshal(out)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}
