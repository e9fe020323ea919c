package reporter

import (
	"fmt"
	"html"
	"net/http"
	"strings"
	"time"

	"go-sofascore-scraper/internal/config"
	"go-sofascore-scraper/internal/orchestrator"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Summary is what a run reports once the sinks have been called.
type Summary struct {
	Report      orchestrator.Report
	DumpErr     error
	DeliveryErr error
	// DeliverySkipped is set when the run was started with delivery disabled.
	DeliverySkipped bool
}

type TelegramReporter struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

func NewTelegramReporter(cfg *config.Config) (*TelegramReporter, error) {
	return NewTelegramReporterWithClient(cfg.TelegramToken, cfg.TelegramChatID, tgbotapi.APIEndpoint, nil)
}

// NewTelegramReporterWithClient talks to apiEndpoint (a "%s/%s" token/method template)
// through client; a nil client gets a 30s timeout.
func NewTelegramReporterWithClient(token string, chatID int64, apiEndpoint string, client tgbotapi.HTTPClient) (*TelegramReporter, error) {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	bot, err := tgbotapi.NewBotAPIWithClient(token, apiEndpoint, client)
	if err != nil {
		return nil, fmt.Errorf("failed to init telegram bot: %w", err)
	}

	//turn this on in case of debug
	//bot.Debug = true

	return &TelegramReporter{
		bot:    bot,
		chatID: chatID,
	}, nil
}

func (t *TelegramReporter) SendMessage(text string) error {
	msg := tgbotapi.NewMessage(t.chatID, text)
	msg.ParseMode = "HTML" //use HTML for bold/italic
	_, err := t.bot.Send(msg)
	return err
}

func (t *TelegramReporter) SendSummary(s Summary) error {
	return t.SendMessage(FormatSummary(s))
}

// FormatSummary renders the HTML message sent at the end of a run.
func FormatSummary(s Summary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "⚽ <b>SofaScore scrape finished</b>\n")
	fmt.Fprintf(&b, "📦 %d matches over %d days (%s)\n", s.Report.Total(), len(s.Report.Days), s.Report.Duration.Round(time.Second))

	for i, d := range s.Report.Days {
		label := d.Date
		if i == 0 {
			label += " (today)"
		}
		if d.Err != nil {
			fmt.Fprintf(&b, "⚠️ %s: render failed\n", label)
			continue
		}
		fmt.Fprintf(&b, "📅 %s: %d\n", label, d.Count)
	}

	if s.DumpErr != nil {
		fmt.Fprintf(&b, "💾 Dump failed: %s\n", html.EscapeString(s.DumpErr.Error()))
	} else {
		fmt.Fprintf(&b, "💾 Dump saved\n")
	}

	switch {
	case s.DeliverySkipped:
		fmt.Fprintf(&b, "📤 Delivery skipped")
	case s.DeliveryErr != nil:
		fmt.Fprintf(&b, "📤 Delivery failed: %s", html.EscapeString(s.DeliveryErr.Error()))
	default:
		fmt.Fprintf(&b, "📤 Delivered")
	}
	return b.String()
}
