package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/MantraGGR/nvidiaTradingBotWGUI/internal/feed"
	"github.com/MantraGGR/nvidiaTradingBotWGUI/internal/indicator"
)

// featuresAction reads raw daily bars, computes the indicator columns and
// writes the resulting feed.
func featuresAction(ctx context.Context, cmd *cli.Command) error {
	inputPath := cmd.String("input")
	outputPath := cmd.String("output")

	bars, err := feed.ReadBarsCSV(inputPath)
	if err != nil {
		return fmt.Errorf("failed to read bars: %w", err)
	}

	log.Printf("Read %d bars from %s", len(bars), inputPath)

	observations, err := indicator.BuildObservations(bars)
	if err != nil {
		return fmt.Errorf("failed to compute indicators: %w", err)
	}

	if err := feed.WriteObservationsCSV(outputPath, observations); err != nil {
		return fmt.Errorf("failed to write feed: %w", err)
	}

	log.Printf("Wrote %d observations to %s (%d warm-up rows dropped)",
		len(observations), outputPath, len(bars)-len(observations))

	return nil
}

func main() {
	cmd := &cli.Command{
		Name:  "features",
		Usage: "Compute indicator columns from raw daily bars",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "input",
				Aliases:  []string{"i"},
				Usage:    "Path to the raw bars CSV",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "output",
				Aliases:  []string{"o"},
				Usage:    "Path to write the indicator feed CSV",
				Required: true,
			},
		},
		Action: featuresAction,
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}
