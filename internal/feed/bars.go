package feed

import (
	"database/sql"
	"fmt"

	_ "github.com/marcboeker/go-duckdb"
	"github.com/MantraGGR/nvidiaTradingBotWGUI/internal/types"
	"github.com/MantraGGR/nvidiaTradingBotWGUI/pkg/errors"
)

// ReadBarsCSV loads raw daily bars from a CSV file in chronological order.
// The file needs the bar columns only; extra columns are ignored.
func ReadBarsCSV(path string) ([]types.Bar, error) {
	db, err := sql.Open("duckdb", "")
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFeedUnavailable, "failed to open duckdb", err)
	}
	defer db.Close()

	query := fmt.Sprintf(`
		SELECT date, open, high, low, close, adjclose, volume
		FROM read_csv_auto('%s', header=true)
		ORDER BY date ASC;
	`, path)

	rows, err := db.Query(query)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrCodeFeedQueryFailed, err, "failed to read bars from %s", path)
	}
	defer rows.Close()

	bars := make([]types.Bar, 0)

	for rows.Next() {
		var bar types.Bar

		if err := rows.Scan(&bar.Date, &bar.Open, &bar.High, &bar.Low, &bar.Close,
			&bar.AdjClose, &bar.Volume); err != nil {
			return nil, errors.Wrap(errors.ErrCodeFeedQueryFailed, "failed to scan bar row", err)
		}

		bars = append(bars, bar)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeFeedQueryFailed, "failed to read bar rows", err)
	}

	return bars, nil
}

// WriteObservationsCSV writes a computed feed to a CSV file with the column
// layout the feed loader expects.
func WriteObservationsCSV(path string, observations []types.Observation) error {
	db, err := sql.Open("duckdb", "")
	if err != nil {
		return errors.Wrap(errors.ErrCodeFeedUnavailable, "failed to open duckdb", err)
	}
	defer db.Close()

	_, err = db.Exec(`
		CREATE TABLE observations (
			date DATE,
			open DOUBLE,
			high DOUBLE,
			low DOUBLE,
			close DOUBLE,
			volume BIGINT,
			adjclose DOUBLE,
			MA_10 DOUBLE,
			MA_50 DOUBLE,
			RSI DOUBLE,
			BB_upper DOUBLE,
			BB_lower DOUBLE
		)
	`)
	if err != nil {
		return errors.Wrap(errors.ErrCodeFeedUnavailable, "failed to create staging table", err)
	}

	stmt, err := db.Prepare(`
		INSERT INTO observations VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return errors.Wrap(errors.ErrCodeFeedUnavailable, "failed to prepare insert", err)
	}
	defer stmt.Close()

	for _, obs := range observations {
		_, err := stmt.Exec(obs.Date, obs.Open, obs.High, obs.Low, obs.Close,
			obs.Volume, obs.AdjClose, obs.MA10, obs.MA50, obs.RSI, obs.BBUpper, obs.BBLower)
		if err != nil {
			return errors.Wrap(errors.ErrCodeFeedUnavailable, "failed to stage observation", err)
		}
	}

	_, err = db.Exec(fmt.Sprintf(
		`COPY (SELECT * FROM observations ORDER BY date) TO '%s' (HEADER, DELIMITER ',')`,
		path))
	if err != nil {
		return errors.Wrapf(errors.ErrCodeFeedUnavailable, err, "failed to export observations to %s", path)
	}

	return nil
}
