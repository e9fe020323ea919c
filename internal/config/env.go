package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	envBaseURL           = "SOFASCORE_BASE_URL"
	envAPIEndpoint       = "SOFASCORE_API_ENDPOINT"
	envDumpDir           = "SOFASCORE_DUMP_DIR"
	envScreenshotDir     = "SOFASCORE_SCREENSHOT_DIR"
	envLogFile           = "SOFASCORE_LOG_FILE"
	envLogLevel          = "SOFASCORE_LOG_LEVEL"
	envLogFormat         = "SOFASCORE_LOG_FORMAT"
	envTimezone          = "SOFASCORE_TIMEZONE"
	envWaitStrategy      = "SOFASCORE_WAIT_STRATEGY"
	envRenderMode        = "SOFASCORE_RENDER_MODE"
	envHeadless          = "SOFASCORE_HEADLESS"
	envSettleDelay       = "SOFASCORE_SETTLE_DELAY"
	envReadyTimeout      = "SOFASCORE_READY_TIMEOUT"
	envNavigationTimeout = "SOFASCORE_NAVIGATION_TIMEOUT"
	envDayTimeout        = "SOFASCORE_DAY_TIMEOUT"
	envConcurrency       = "SOFASCORE_CONCURRENCY"
	envDebugScreenshots  = "SOFASCORE_DEBUG_SCREENSHOTS"
	envDeliveryTimeout   = "SOFASCORE_DELIVERY_TIMEOUT"
	envTelegramToken     = "TELEGRAM_BOT_TOKEN"
	envTelegramChatID    = "TELEGRAM_CHAT_ID"
)

func applyEnv(cfg *Config) error {
	strs := map[string]*string{
		envBaseURL:       &cfg.BaseURL,
		envAPIEndpoint:   &cfg.APIEndpoint,
		envDumpDir:       &cfg.DumpDir,
		envScreenshotDir: &cfg.ScreenshotDir,
		envLogFile:       &cfg.LogFile,
		envLogLevel:      &cfg.LogLevel,
		envLogFormat:     &cfg.LogFormat,
		envTimezone:      &cfg.Timezone,
		envWaitStrategy:  &cfg.WaitStrategy,
		envRenderMode:    &cfg.RenderMode,
		envTelegramToken: &cfg.TelegramToken,
	}
	for key, dst := range strs {
		if val := os.Getenv(key); val != "" {
			*dst = val
		}
	}

	durations := map[string]*time.Duration{
		envSettleDelay:       &cfg.SettleDelay,
		envReadyTimeout:      &cfg.ReadyTimeout,
		envNavigationTimeout: &cfg.NavigationTimeout,
		envDayTimeout:        &cfg.DayTimeout,
		envDeliveryTimeout:   &cfg.DeliveryTimeout,
	}
	for key, dst := range durations {
		if err := durationEnv(key, dst); err != nil {
			return err
		}
	}

	if err := boolEnv(envHeadless, &cfg.Headless); err != nil {
		return err
	}
	if err := boolEnv(envDebugScreenshots, &cfg.DebugScreenshots); err != nil {
		return err
	}

	if raw := os.Getenv(envConcurrency); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", envConcurrency, err)
		}
		cfg.Concurrency = n
	}

	if raw := os.Getenv(envTelegramChatID); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", envTelegramChatID, err)
		}
		cfg.TelegramChatID = id
	}
	return nil
}

func durationEnv(key string, dst *time.Duration) error {
	raw := os.Getenv(key)
	if raw == "" {
		return nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d < 0 {
		return fmt.Errorf("invalid %s %q: want a duration like 5s", key, raw)
	}
	*dst = d
	return nil
}

func boolEnv(key string, dst *bool) error {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return nil
	}
	switch strings.ToLower(raw) {
	case "1", "true", "yes":
		*dst = true
	case "0", "false", "no":
		*dst = false
	default:
		return fmt.Errorf("invalid %s %q: want true or false", key, raw)
	}
	return nil
}
