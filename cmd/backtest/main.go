package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/schollz/progressbar/v3"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v2"

	"github.com/MantraGGR/nvidiaTradingBotWGUI/internal/backtest/engine"
	"github.com/MantraGGR/nvidiaTradingBotWGUI/internal/feed"
	"github.com/MantraGGR/nvidiaTradingBotWGUI/internal/logger"
	"github.com/MantraGGR/nvidiaTradingBotWGUI/internal/types"
)

// loadConfig reads the engine configuration from a YAML file, falling back to
// defaults when no path is given.
func loadConfig(path string, capital float64) (engine.Config, error) {
	config := engine.DefaultConfig()

	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return config, fmt.Errorf("failed to read config: %w", err)
		}

		if err := yaml.Unmarshal(raw, &config); err != nil {
			return config, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if capital > 0 {
		config.InitialCapital = capital
	}

	if err := config.Validate(); err != nil {
		return config, err
	}

	return config, nil
}

// parseStrategies splits a comma-separated strategy list and rejects unknown
// names.
func parseStrategies(raw string) ([]types.StrategyName, error) {
	names := make([]types.StrategyName, 0)

	for _, part := range strings.Split(raw, ",") {
		name := types.StrategyName(strings.TrimSpace(part))
		if !types.IsValidStrategy(name) {
			return nil, fmt.Errorf("unknown strategy %q, known strategies: %v", part, types.AllStrategies)
		}

		names = append(names, name)
	}

	return names, nil
}

// runAction loads the feed and runs the named strategies. A single strategy
// gets a full run with a progress bar and optional result file; several
// strategies are compared side by side.
func runAction(ctx context.Context, cmd *cli.Command) error {
	dataPath := cmd.String("data")
	outputPath := cmd.String("output")

	strategies, err := parseStrategies(cmd.String("strategy"))
	if err != nil {
		return err
	}

	config, err := loadConfig(cmd.String("config"), cmd.Float("capital"))
	if err != nil {
		return err
	}

	appLogger, err := logger.NewLogger()
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer appLogger.Sync()

	source, err := feed.NewDuckDBSource(appLogger)
	if err != nil {
		return err
	}
	defer source.Close()

	if err := source.Initialize(dataPath); err != nil {
		return err
	}

	observations, err := source.Load()
	if err != nil {
		return err
	}

	runner := engine.NewRunner(config, appLogger)

	if len(strategies) > 1 {
		return runComparison(runner, observations, strategies)
	}

	strategyName := strategies[0]

	var bar *progressbar.ProgressBar

	onProgress := func(current, total int) error {
		if bar == nil {
			bar = progressbar.NewOptions(total,
				progressbar.OptionSetDescription(fmt.Sprintf("Backtesting %s", strategyName)),
				progressbar.OptionShowCount())
		}

		return bar.Set(current)
	}

	result, err := runner.RunWithProgress(observations, strategyName, onProgress)
	if err != nil {
		return err
	}

	if bar != nil {
		bar.Finish()
		fmt.Println()
	}

	printSummary(result)

	if outputPath != "" {
		if err := types.WriteRunResult(outputPath, result); err != nil {
			return err
		}

		log.Printf("Result written to %s", outputPath)
	}

	return nil
}

// runComparison runs each strategy independently and prints one line per
// strategy.
func runComparison(runner *engine.Runner, observations []types.Observation, strategies []types.StrategyName) error {
	results, err := runner.Compare(observations, strategies)
	if err != nil {
		return err
	}

	fmt.Printf("%-16s %12s %10s %10s %8s\n", "Strategy", "Final value", "Return", "Drawdown", "Sharpe")

	for _, name := range strategies {
		entry, ok := results[name]
		if !ok {
			continue
		}

		sharpe := "n/a"
		if entry.Metrics.IsSharpeDefined() {
			sharpe = fmt.Sprintf("%.2f", entry.Metrics.SharpeRatio)
		}

		fmt.Printf("%-16s %12.2f %9.2f%% %9.2f%% %8s\n",
			name, entry.FinalValue,
			entry.Metrics.TotalReturn*100,
			entry.Metrics.MaxDrawdown*100,
			sharpe)
	}

	return nil
}

func printSummary(result types.RunResult) {
	fmt.Printf("Run ID:            %s\n", result.ID)
	fmt.Printf("Strategy:          %s\n", result.Strategy)
	fmt.Printf("Initial capital:   %.2f\n", result.InitialCapital)
	fmt.Printf("Final value:       %.2f\n", result.FinalValue)
	fmt.Printf("Trades executed:   %d\n", len(result.Trades))
	fmt.Printf("Total return:      %.2f%%\n", result.Metrics.TotalReturn*100)
	fmt.Printf("Annualized return: %.2f%%\n", result.Metrics.AnnualizedReturn*100)
	fmt.Printf("Max drawdown:      %.2f%%\n", result.Metrics.MaxDrawdown*100)

	if result.Metrics.IsSharpeDefined() {
		fmt.Printf("Sharpe ratio:      %.2f\n", result.Metrics.SharpeRatio)
	} else {
		fmt.Printf("Sharpe ratio:      n/a\n")
	}
}

// schemaAction prints the JSON schema of the engine configuration file.
func schemaAction(ctx context.Context, cmd *cli.Command) error {
	config := engine.DefaultConfig()

	schema, err := config.GenerateSchemaJSON()
	if err != nil {
		return err
	}

	fmt.Println(schema)

	return nil
}

func main() {
	cmd := &cli.Command{
		Name:  "backtest",
		Usage: "Run a trading strategy backtest over an indicator feed",
		Commands: []*cli.Command{
			{
				Name:  "run",
				Usage: "Run a single strategy over a feed",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "data",
						Aliases:  []string{"d"},
						Usage:    "Path to the indicator feed CSV",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "strategy",
						Aliases:  []string{"s"},
						Usage:    "Strategy to run, or a comma-separated list to compare (RSI, MovingAverages, BollingerBands, MACD)",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "config",
						Aliases:  []string{"c"},
						Usage:    "Path to the engine config YAML",
						Required: false,
					},
					&cli.FloatFlag{
						Name:     "capital",
						Usage:    "Initial capital override",
						Required: false,
					},
					&cli.StringFlag{
						Name:     "output",
						Aliases:  []string{"o"},
						Usage:    "Path to write the full run result YAML",
						Required: false,
					},
				},
				Action: runAction,
			},
			{
				Name:   "schema",
				Usage:  "Print the JSON schema of the engine config file",
				Action: schemaAction,
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}
