package engine

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/MantraGGR/nvidiaTradingBotWGUI/internal/logger"
	"github.com/MantraGGR/nvidiaTradingBotWGUI/internal/types"
	"github.com/MantraGGR/nvidiaTradingBotWGUI/pkg/errors"
	"go.uber.org/zap"
)

// OnProcessData is called for each observation processed. Returning an error
// aborts the run.
type OnProcessData func(current int, total int) error

// Runner executes backtest runs over an indicator feed. A Runner holds only
// configuration and a logger; every run constructs its own portfolio,
// executor, ledger and equity curve, so runs share no mutable state and a
// caller may execute independent runs concurrently against the same feed.
type Runner struct {
	config Config
	log    *logger.Logger
}

// NewRunner creates a runner with the given configuration.
func NewRunner(config Config, log *logger.Logger) *Runner {
	return &Runner{
		config: config,
		log:    log,
	}
}

// Run executes one backtest: one strategy name plus one indicator feed in,
// one equity curve, ledger and metrics summary out.
func (r *Runner) Run(feed []types.Observation, name types.StrategyName) (types.RunResult, error) {
	return r.RunWithProgress(feed, name, nil)
}

// RunWithProgress is Run with a per-observation progress callback.
//
// The loop body per observation, in order: record the equity point from the
// state carried over from the prior day, evaluate the strategy, then attempt
// execution of any trade intent. A trade the executor rejects is simply
// skipped; the run never aborts on an infeasible trade.
func (r *Runner) RunWithProgress(feed []types.Observation, name types.StrategyName, onProgress OnProcessData) (types.RunResult, error) {
	window := r.window(feed)
	if len(window) == 0 {
		return types.RunResult{}, errors.New(errors.ErrCodeBacktestNoFeed, "no observations in backtest window")
	}

	strategy, known := strategyForName(name, r.config)
	if !known {
		r.log.Warn("Unknown strategy name, running as hold-only",
			zap.String("strategy", string(name)),
		)
	}

	portfolio := NewPortfolio(r.config.InitialCapital)
	executor := NewExecutor(portfolio)
	curve := make([]types.EquityPoint, 0, len(window))

	for i, obs := range window {
		curve = append(curve, types.EquityPoint{
			Date:  obs.Date,
			Value: portfolio.Value(obs.Close),
		})

		intent := strategy.Evaluate(obs, portfolio.Snapshot())
		if intent.IsSome() {
			trade := intent.Unwrap()
			executor.Execute(obs.Date, obs.Close, trade.Quantity, trade.Side)
		}

		if onProgress != nil {
			if err := onProgress(i+1, len(window)); err != nil {
				return types.RunResult{}, err
			}
		}
	}

	// The curve must always end on the feed's last date.
	lastObs := window[len(window)-1]
	if !curve[len(curve)-1].Date.Equal(lastObs.Date) {
		curve = append(curve, types.EquityPoint{
			Date:  lastObs.Date,
			Value: portfolio.Value(lastObs.Close),
		})
	}

	return types.RunResult{
		ID:             uuid.New().String(),
		Timestamp:      time.Now(),
		Strategy:       name,
		InitialCapital: r.config.InitialCapital,
		EquityCurve:    curve,
		Trades:         executor.Ledger(),
		Metrics:        ComputeMetrics(curve),
		FinalValue:     portfolio.Value(lastObs.Close),
	}, nil
}

// Compare runs each named strategy independently over the same feed and
// returns the per-strategy curves, metrics and final values, with ledgers
// omitted. The runs own no shared mutable state and execute concurrently;
// the feed is only read.
func (r *Runner) Compare(feed []types.Observation, names []types.StrategyName) (map[types.StrategyName]types.ComparisonEntry, error) {
	if len(names) == 0 {
		return nil, errors.New(errors.ErrCodeBacktestNoStrategies, "no strategies to compare")
	}

	unique := make([]types.StrategyName, 0, len(names))
	seen := make(map[types.StrategyName]struct{}, len(names))

	for _, name := range names {
		if _, ok := seen[name]; ok {
			continue
		}

		seen[name] = struct{}{}
		unique = append(unique, name)
	}

	results := make(map[types.StrategyName]types.ComparisonEntry, len(unique))

	var (
		mu       sync.Mutex
		wg       sync.WaitGroup
		firstErr error
	)

	for _, name := range unique {
		wg.Add(1)

		go func(name types.StrategyName) {
			defer wg.Done()

			result, err := r.Run(feed, name)

			mu.Lock()
			defer mu.Unlock()

			if err != nil {
				if firstErr == nil {
					firstErr = err
				}

				return
			}

			results[name] = types.ComparisonEntry{
				EquityCurve: result.EquityCurve,
				Metrics:     result.Metrics,
				FinalValue:  result.FinalValue,
			}
		}(name)
	}

	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}

	return results, nil
}

// window applies the configured start/end bounds to the feed.
func (r *Runner) window(feed []types.Observation) []types.Observation {
	if r.config.StartTime.IsNone() && r.config.EndTime.IsNone() {
		return feed
	}

	filtered := make([]types.Observation, 0, len(feed))

	for _, obs := range feed {
		if r.config.StartTime.IsSome() && obs.Date.Before(r.config.StartTime.Unwrap()) {
			continue
		}

		if r.config.EndTime.IsSome() && obs.Date.After(r.config.EndTime.Unwrap()) {
			continue
		}

		filtered = append(filtered, obs)
	}

	return filtered
}
