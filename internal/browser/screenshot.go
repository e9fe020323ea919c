package browser

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/playwright-community/playwright-go"
)

// ScreenshotDebugger handles debug screenshots of pages that failed to render
type ScreenshotDebugger struct {
	outputDir string
	logger    *slog.Logger
}

func NewScreenshotDebugger(outputDir string, logger *slog.Logger) *ScreenshotDebugger {
	return &ScreenshotDebugger{
		outputDir: outputDir,
		logger:    logger,
	}
}

func (s *ScreenshotDebugger) CaptureAndLog(page playwright.Page, name, message string) error {
	if s == nil || page == nil {
		return nil
	}
	if err := os.MkdirAll(s.outputDir, 0755); err != nil {
		return fmt.Errorf("failed to create screenshot directory: %w", err)
	}

	timestamp := time.Now().UTC().Format("2006-01-02_15-04-05")
	filename := fmt.Sprintf("%s_%s.png", sanitizeName(name), timestamp)
	path := filepath.Join(s.outputDir, filename)
	s.logger.Info("📸 "+message, slog.String("path", path))

	//Take screenshot
	_, err := page.Screenshot(playwright.PageScreenshotOptions{
		Path:     playwright.String(path),
		FullPage: playwright.Bool(true),
	})
	if err != nil {
		s.logger.Warn("⚠️ failed to capture screenshot", slog.Any("error", err))
		return err
	}
	return nil
}

func sanitizeName(name string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		default:
			return '-'
		}
	}, name)
}
