package feed

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	_ "github.com/marcboeker/go-duckdb"
	"github.com/MantraGGR/nvidiaTradingBotWGUI/internal/logger"
	"github.com/MantraGGR/nvidiaTradingBotWGUI/internal/types"
	"github.com/MantraGGR/nvidiaTradingBotWGUI/pkg/errors"
	"go.uber.org/zap"
)

const feedViewName = "indicator_feed"

// DuckDBSource reads an indicator feed from a CSV dataset through an
// in-memory DuckDB instance. The dataset is exposed as a view so the file is
// never copied; warm-up rows whose indicator columns are still NULL are
// excluded at query time.
type DuckDBSource struct {
	db     *sql.DB
	logger *logger.Logger
	sq     squirrel.StatementBuilderType
}

// NewDuckDBSource opens an in-memory DuckDB instance for feed loading.
func NewDuckDBSource(log *logger.Logger) (*DuckDBSource, error) {
	db, err := sql.Open("duckdb", "")
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFeedUnavailable, "failed to open duckdb", err)
	}

	return &DuckDBSource{
		db:     db,
		logger: log,
		sq:     squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}, nil
}

// Initialize implements Source. It recreates the feed view over the given
// CSV file.
func (s *DuckDBSource) Initialize(path string) error {
	s.logger.Debug("Initializing feed view", zap.String("path", path))

	if _, err := s.db.Exec(fmt.Sprintf(`DROP VIEW IF EXISTS %s;`, feedViewName)); err != nil {
		return errors.Wrap(errors.ErrCodeFeedUnavailable, "failed to drop existing feed view", err)
	}

	// CREATE VIEW is not expressible with squirrel, so raw SQL it is.
	query := fmt.Sprintf(`
		CREATE VIEW %s AS
		SELECT * FROM read_csv_auto('%s', header=true);
	`, feedViewName, path)

	if _, err := s.db.Exec(query); err != nil {
		return errors.Wrapf(errors.ErrCodeFeedUnavailable, err, "failed to create feed view over %s", path)
	}

	return nil
}

// Load implements Source. Rows are returned in chronological order and the
// resulting feed is validated before being handed to the caller.
func (s *DuckDBSource) Load() ([]types.Observation, error) {
	query, args, err := s.sq.
		Select("date", "open", "high", "low", "close", "adjclose", "volume",
			"MA_10", "MA_50", "RSI", "BB_upper", "BB_lower").
		From(feedViewName).
		Where(squirrel.NotEq{"MA_10": nil}).
		Where(squirrel.NotEq{"MA_50": nil}).
		Where(squirrel.NotEq{"RSI": nil}).
		Where(squirrel.NotEq{"BB_upper": nil}).
		Where(squirrel.NotEq{"BB_lower": nil}).
		OrderBy("date ASC").
		ToSql()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFeedQueryFailed, "failed to build feed query", err)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFeedQueryFailed, "failed to query feed", err)
	}
	defer rows.Close()

	observations := make([]types.Observation, 0)

	for rows.Next() {
		var obs types.Observation

		if err := rows.Scan(&obs.Date, &obs.Open, &obs.High, &obs.Low, &obs.Close,
			&obs.AdjClose, &obs.Volume, &obs.MA10, &obs.MA50, &obs.RSI,
			&obs.BBUpper, &obs.BBLower); err != nil {
			return nil, errors.Wrap(errors.ErrCodeFeedQueryFailed, "failed to scan feed row", err)
		}

		observations = append(observations, obs)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeFeedQueryFailed, "failed to read feed rows", err)
	}

	if err := Validate(observations); err != nil {
		return nil, err
	}

	s.logger.Debug("Loaded feed", zap.Int("observations", len(observations)))

	return observations, nil
}

// Close implements Source.
func (s *DuckDBSource) Close() error {
	return s.db.Close()
}
