package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"smc-analyzer/config"
	"smc-analyzer/internal/analysis"
	"smc-analyzer/internal/api/news"
	"smc-analyzer/internal/api/openai"
	"smc-analyzer/internal/api/twelvedata"
	"smc-analyzer/internal/database"
	"smc-analyzer/internal/model"
)

// Report is one finished pipeline run. Narrative is the GPT explanation when
// a remote model was available, otherwise the analyzer's own reasoning line.
type Report struct {
	Result    *model.AnalysisResult `json:"analysis"`
	Narrative string                `json:"narrative"`
}

// Runner wires the candle source, the analyzer and the optional
// collaborators (news, GPT narration, history store) behind one entry point.
// All dependencies are constructed here and injected; nothing is global.
type Runner struct {
	cfg      *config.Config
	candles  *twelvedata.Client
	news     *news.Client
	narrator *openai.Client
	store    *database.DB
	analyzer *analysis.Analyzer
	logger   zerolog.Logger
}

// New builds a Runner from config. News, OpenAI and Postgres are optional
// and stay nil when unconfigured; the pipeline degrades accordingly.
func New(cfg *config.Config) (*Runner, error) {
	timeout := time.Duration(cfg.RequestTimeout) * time.Second

	r := &Runner{
		cfg: cfg,
		candles: twelvedata.NewClient(twelvedata.ClientOptions{
			APIKey:         cfg.TwelveAPIKey,
			RequestTimeout: timeout,
		}),
		analyzer: analysis.New(),
		logger:   log.With().Str("component", "pipeline").Logger(),
	}

	if cfg.NewsAPIKey != "" {
		r.news = news.NewClient(news.ClientOptions{
			APIKey:         cfg.NewsAPIKey,
			RequestTimeout: timeout,
		})
	}
	if cfg.OpenAIAPIKey != "" {
		r.narrator = openai.NewClient(cfg.OpenAIAPIKey)
	}
	if cfg.DB.Host != "" {
		store, err := database.New(database.ConnectionParams{
			Host:     cfg.DB.Host,
			Port:     cfg.DB.Port,
			User:     cfg.DB.User,
			Password: cfg.DB.Password,
			DBName:   cfg.DB.Name,
			SSLMode:  cfg.DB.SSLMode,
		})
		if err != nil {
			return nil, fmt.Errorf("connecting to database: %w", err)
		}
		r.store = store
	}

	return r, nil
}

// Run fetches candles for pair, analyzes them and assembles a report. The
// candle client guarantees a non-empty series, so the analyzer's empty-input
// guard never fires from here.
func (r *Runner) Run(ctx context.Context, pair, interval string) (*Report, error) {
	candles, err := r.candles.GetCandles(ctx, pair, interval, r.cfg.CandleCount)
	if err != nil {
		return nil, fmt.Errorf("fetching candles: %w", err)
	}

	result, err := r.analyzer.Analyze(pair, candles)
	if err != nil {
		return nil, fmt.Errorf("analyzing candles: %w", err)
	}

	if r.store != nil {
		if err := r.store.SaveAnalysis(result); err != nil {
			r.logger.Warn().Err(err).Msg("Failed to persist analysis")
		}
	}

	report := &Report{Result: result, Narrative: result.Reasoning}

	if r.narrator != nil {
		var headlines []model.Headline
		if r.news != nil {
			headlines, err = r.news.GetHeadlines(ctx, pair, 5)
			if err != nil {
				r.logger.Warn().Err(err).Msg("Headline fetch failed, narrating without news")
				headlines = nil
			}
		}

		narrative, err := r.narrator.Narrate(ctx, result, candles, headlines)
		if err != nil {
			r.logger.Warn().Err(err).Msg("Narration failed, falling back to local reasoning")
		} else if narrative != "" {
			report.Narrative = narrative
		}
	}

	return report, nil
}

// History returns recent persisted runs for pair. Empty without a store.
func (r *Runner) History(pair string, limit int) ([]database.AnalysisRecord, error) {
	if r.store == nil {
		return nil, nil
	}
	return r.store.RecentAnalyses(pair, limit)
}

// Close releases the database connection if one was opened.
func (r *Runner) Close() {
	if r.store != nil {
		r.store.Close()
	}
}
