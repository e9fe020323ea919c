// Load envs from .env
// Load YAML config
// Override with env vars
// Validate config

package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"go-sofascore-scraper/internal/browser"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	DefaultPath     = "configs/config.yaml"
	MaxConcurrency  = 4
	defaultEndpoint = "https://xklcbytyjyxckuorxxal.supabase.co/functions/v1/receive-matches"
)

type Config struct {
	BaseURL     string `yaml:"base_url"`
	APIEndpoint string `yaml:"api_endpoint"`
	//Output
	DumpDir       string `yaml:"dump_dir"`
	ScreenshotDir string `yaml:"screenshot_dir"`
	LogFile       string `yaml:"log_file"`
	LogLevel      string `yaml:"log_level"`
	LogFormat     string `yaml:"log_format"`
	//Calendar
	Timezone string         `yaml:"timezone"`
	Location *time.Location `yaml:"-"`
	//Rendering
	WaitStrategy      string        `yaml:"wait_strategy"`
	RenderMode        string        `yaml:"render_mode"`
	Headless          bool          `yaml:"headless"`
	SettleDelay       time.Duration `yaml:"settle_delay"`
	ReadyTimeout      time.Duration `yaml:"ready_timeout"`
	NavigationTimeout time.Duration `yaml:"navigation_timeout"`
	DayTimeout        time.Duration `yaml:"day_timeout"`
	Concurrency       int           `yaml:"concurrency"`
	DebugScreenshots  bool          `yaml:"debug_screenshots"`
	//Delivery
	DeliveryTimeout time.Duration `yaml:"delivery_timeout"`
	TelegramToken   string        `yaml:"telegram_token"`
	TelegramChatID  int64         `yaml:"telegram_chat_id"`

	// Source is the YAML file that was read, empty when none was found.
	Source string `yaml:"-"`
}

// Defaults reproduces the behavior of the legacy sofascore_scraper script.
func Defaults() *Config {
	return &Config{
		BaseURL:           "https://www.sofascore.com/football",
		APIEndpoint:       defaultEndpoint,
		DumpDir:           "./dumps",
		ScreenshotDir:     "logs/screenshots",
		LogFile:           "sofascore_scraper.log",
		LogLevel:          "info",
		LogFormat:         "text",
		Timezone:          "Local",
		WaitStrategy:      string(browser.WaitSelector),
		RenderMode:        string(browser.ModeLive),
		Headless:          true,
		SettleDelay:       5 * time.Second,
		ReadyTimeout:      15 * time.Second,
		NavigationTimeout: 30 * time.Second,
		DayTimeout:        90 * time.Second,
		Concurrency:       1,
		DeliveryTimeout:   30 * time.Second,
	}
}

// Load reads path (DefaultPath when empty) on top of Defaults, then applies env overrides.
// A missing file is not an error.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := Defaults()
	if path == "" {
		path = DefaultPath
	}

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("could not read %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("error parsing %s: %w", path, err)
		}
		cfg.Source = path
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks enum and range values and resolves Location.
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return errors.New("base_url is required")
	}
	if _, err := browser.ParseWaitStrategy(c.WaitStrategy); err != nil {
		return err
	}
	if _, err := browser.ParseRenderMode(c.RenderMode); err != nil {
		return err
	}
	if c.Concurrency < 1 || c.Concurrency > MaxConcurrency {
		return fmt.Errorf("concurrency must be between 1 and %d, got %d", MaxConcurrency, c.Concurrency)
	}
	if c.DeliveryTimeout <= 0 {
		return errors.New("delivery_timeout must be positive")
	}
	if c.TelegramToken != "" && c.TelegramChatID == 0 {
		return errors.New("TELEGRAM_CHAT_ID is required when a Telegram token is set")
	}

	loc, err := loadLocation(c.Timezone)
	if err != nil {
		return err
	}
	c.Location = loc
	return nil
}

// TelegramEnabled reports whether a run summary should be sent.
func (c *Config) TelegramEnabled() bool {
	return c.TelegramToken != "" && c.TelegramChatID != 0
}

func loadLocation(name string) (*time.Location, error) {
	if name == "" || name == "Local" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", name, err)
	}
	return loc, nil
}
