package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"smc-analyzer/config"
	"smc-analyzer/internal/pipeline"
)

var supportedPairs = []string{
	"XAU/USD", "EUR/USD", "GBP/USD", "USD/JPY",
	"AUD/USD", "USD/CAD", "USD/CHF", "BTC/USD",
}

func main() {
	cfg := config.Load()

	lvl, _ := zerolog.ParseLevel(cfg.LogLevel)
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(lvl).With().Timestamp().Logger()
	log.Logger = logger

	if cfg.TelegramBotToken == "" {
		logger.Fatal().Msg("TELEGRAM_BOT_TOKEN not set in environment")
	}

	runner, err := pipeline.New(cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to build pipeline")
	}
	defer runner.Close()

	bot, err := tgbotapi.NewBotAPI(cfg.TelegramBotToken)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to initialize Telegram bot")
	}
	logger.Info().Str("username", bot.Self.UserName).Msg("Authorized on Telegram")

	updateConfig := tgbotapi.NewUpdate(0)
	updateConfig.Timeout = 60
	updates := bot.GetUpdatesChan(updateConfig)

	for update := range updates {
		if update.Message == nil || !update.Message.IsCommand() {
			continue
		}

		chatID := update.Message.Chat.ID
		command := update.Message.Command()
		args := strings.TrimSpace(update.Message.CommandArguments())

		var reply string
		switch command {
		case "start", "help":
			reply = helpText()
		case "analyze":
			reply = handleAnalyze(runner, cfg, args, logger)
		case "history":
			reply = handleHistory(runner, cfg, args, logger)
		default:
			reply = "Unknown command. Try /help."
		}

		msg := tgbotapi.NewMessage(chatID, reply)
		if _, err := bot.Send(msg); err != nil {
			logger.Error().Err(err).Int64("chat_id", chatID).Msg("Failed to send message")
		}
	}
}

func helpText() string {
	return "Market structure analyzer.\n\n" +
		"/analyze <pair> - run an analysis (default XAU/USD)\n" +
		"/history <pair> - recent stored analyses\n\n" +
		"Supported pairs: " + strings.Join(supportedPairs, ", ")
}

func handleAnalyze(runner *pipeline.Runner, cfg *config.Config, args string, logger zerolog.Logger) string {
	pair := cfg.Symbol
	if args != "" {
		pair = strings.ToUpper(args)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	report, err := runner.Run(ctx, pair, cfg.Interval)
	if err != nil {
		logger.Error().Err(err).Str("pair", pair).Msg("Analysis run failed")
		return fmt.Sprintf("Analysis of %s failed, try again later.", pair)
	}

	return formatReport(report, cfg.Interval)
}

func handleHistory(runner *pipeline.Runner, cfg *config.Config, args string, logger zerolog.Logger) string {
	pair := cfg.Symbol
	if args != "" {
		pair = strings.ToUpper(args)
	}

	records, err := runner.History(pair, 5)
	if err != nil {
		logger.Error().Err(err).Str("pair", pair).Msg("History lookup failed")
		return "History lookup failed."
	}
	if len(records) == 0 {
		return "No stored analyses for " + pair + "."
	}

	var sb strings.Builder
	sb.WriteString("Recent analyses for " + pair + ":\n")
	for _, rec := range records {
		sb.WriteString(fmt.Sprintf(
			"%s  %s  entry %.4f sl %.4f\n",
			rec.CreatedAt.Format("01-02 15:04"),
			rec.Bias,
			rec.Levels.Entry,
			rec.Levels.SL,
		))
	}
	return sb.String()
}

func formatReport(report *pipeline.Report, interval string) string {
	result := report.Result

	icon := "➡️"
	switch result.Bias {
	case "Bullish":
		icon = "📈"
	case "Bearish":
		icon = "📉"
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s %s (%s): %s\n\n", icon, result.Pair, interval, result.Bias))
	sb.WriteString(fmt.Sprintf(
		"Entry %.4f\nTP1 %.4f\nTP2 %.4f\nSL %.4f\n",
		result.Recommended.Entry,
		result.Recommended.TP1,
		result.Recommended.TP2,
		result.Recommended.SL,
	))

	if len(result.Zones) > 0 {
		sb.WriteString("\nOrder blocks:\n")
		for _, zone := range result.Zones {
			sb.WriteString(fmt.Sprintf("- %s %.4f-%.4f\n", zone.Kind, zone.Low, zone.High))
		}
	}
	if len(result.Gaps) > 0 {
		sb.WriteString("\nFair value gaps:\n")
		for _, gap := range result.Gaps {
			sb.WriteString(fmt.Sprintf("- %s %.4f-%.4f\n", gap.Kind, gap.Bottom, gap.Top))
		}
	}

	sb.WriteString("\n" + report.Narrative)
	return sb.String()
}
