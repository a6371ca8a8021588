package database

import (
	"database/sql"
	"fmt"
	"time"

	"smc-analyzer/internal/model"
)

// DB represents a database connection
type DB struct {
	*sql.DB
}

// ConnectionParams holds PostgreSQL connection parameters
type ConnectionParams struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// AnalysisRecord is one persisted analyzer run.
type AnalysisRecord struct {
	ID        int64
	Pair      string
	Bias      model.Bias
	EMA9      *float64
	EMA20     *float64
	Momentum  float64
	Levels    model.Levels
	Reasoning string
	CreatedAt time.Time
}

// New creates a new database connection
func New(params ConnectionParams) (*DB, error) {
	connStr := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		params.Host, params.Port, params.User, params.Password, params.DBName, params.SSLMode,
	)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, err
	}

	// Check connection
	if err := db.Ping(); err != nil {
		return nil, err
	}

	// Create tables if they don't exist
	if err := createTables(db); err != nil {
		return nil, err
	}

	return &DB{db}, nil
}

// createTables creates the necessary tables if they don't exist
func createTables(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS analysis_history (
			id BIGSERIAL PRIMARY KEY,
			pair TEXT NOT NULL,
			bias TEXT NOT NULL,
			ema9 DOUBLE PRECISION,
			ema20 DOUBLE PRECISION,
			momentum DOUBLE PRECISION NOT NULL,
			entry DOUBLE PRECISION NOT NULL,
			tp1 DOUBLE PRECISION NOT NULL,
			tp2 DOUBLE PRECISION NOT NULL,
			sl DOUBLE PRECISION NOT NULL,
			reasoning TEXT,
			created_at TIMESTAMP NOT NULL DEFAULT NOW()
		)
	`)

	return err
}

// SaveAnalysis persists one analyzer run. Nil EMA values are stored as NULL.
func (db *DB) SaveAnalysis(result *model.AnalysisResult) error {
	_, err := db.Exec(`
		INSERT INTO analysis_history (
			pair, bias, ema9, ema20, momentum, entry, tp1, tp2, sl, reasoning
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`,
		result.Pair,
		string(result.Bias),
		result.EMA9,
		result.EMA20,
		result.Momentum,
		result.Recommended.Entry,
		result.Recommended.TP1,
		result.Recommended.TP2,
		result.Recommended.SL,
		result.Reasoning,
	)

	return err
}

// RecentAnalyses returns the latest runs for a pair, newest first.
func (db *DB) RecentAnalyses(pair string, limit int) ([]AnalysisRecord, error) {
	rows, err := db.Query(`
		SELECT id, pair, bias, ema9, ema20, momentum, entry, tp1, tp2, sl, reasoning, created_at
		FROM analysis_history
		WHERE pair = $1
		ORDER BY created_at DESC
		LIMIT $2
	`, pair, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []AnalysisRecord
	for rows.Next() {
		var rec AnalysisRecord
		var bias string
		var ema9, ema20 sql.NullFloat64
		var reasoning sql.NullString

		err := rows.Scan(
			&rec.ID, &rec.Pair, &bias, &ema9, &ema20, &rec.Momentum,
			&rec.Levels.Entry, &rec.Levels.TP1, &rec.Levels.TP2, &rec.Levels.SL,
			&reasoning, &rec.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		rec.Bias = model.Bias(bias)
		if ema9.Valid {
			rec.EMA9 = &ema9.Float64
		}
		if ema20.Valid {
			rec.EMA20 = &ema20.Float64
		}
		if reasoning.Valid {
			rec.Reasoning = reasoning.String
		}

		records = append(records, rec)
	}

	return records, rows.Err()
}
