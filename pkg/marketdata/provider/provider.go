package provider

import (
	"context"
	"time"

	"github.com/MantraGGR/nvidiaTradingBotWGUI/pkg/errors"
	"github.com/MantraGGR/nvidiaTradingBotWGUI/pkg/marketdata/writer"
)

// ProviderType defines the type of market data provider.
type ProviderType string

const (
	ProviderPolygon ProviderType = "polygon"
	ProviderBinance ProviderType = "binance"
)

type OnDownloadProgress = func(current float64, total float64, message string)

// Provider downloads daily bars for a ticker and hands them to a configured
// writer.
type Provider interface {
	// ConfigWriter configures the writer for the provider.
	// The writer decides where the bars end up: a file, a database, etc.
	ConfigWriter(writer writer.BarWriter)
	// Download downloads the daily bars for the given ticker and date range
	// and returns the path the writer exported them to. The context can be
	// used to cancel the download operation.
	Download(ctx context.Context, ticker string, startDate time.Time, endDate time.Time, onProgress OnDownloadProgress) (path string, err error)
}

// NewProvider creates a market data provider of the given type. The config
// argument carries provider-specific settings, currently only the Polygon
// API key.
func NewProvider(providerType ProviderType, config any) (Provider, error) {
	switch providerType {
	case ProviderBinance:
		return NewBinanceClient()
	case ProviderPolygon:
		apiKey, ok := config.(string)
		if !ok {
			return nil, errors.New(errors.ErrCodeInvalidProvider, "polygon provider requires API key string config")
		}

		return NewPolygonClient(apiKey)
	default:
		return nil, errors.Newf(errors.ErrCodeInvalidProvider, "unsupported market data provider: %s", providerType)
	}
}
