package types

import "time"

// Bar is a single raw end-of-day price bar, before any indicator columns
// have been computed.
type Bar struct {
	Date     time.Time `csv:"date" json:"date" yaml:"date"`
	Open     float64   `csv:"open" json:"open" yaml:"open"`
	High     float64   `csv:"high" json:"high" yaml:"high"`
	Low      float64   `csv:"low" json:"low" yaml:"low"`
	Close    float64   `csv:"close" json:"close" yaml:"close"`
	AdjClose float64   `csv:"adjclose" json:"adjclose" yaml:"adjclose"`
	Volume   int64     `csv:"volume" json:"volume" yaml:"volume"`
}

// Observation is one trading day: the raw bar plus the indicator columns
// computed upstream. Observations are immutable once produced and are
// consumed read-only by the backtest engine; the engine never computes
// indicators itself.
type Observation struct {
	Date     time.Time `csv:"date" json:"date" yaml:"date" validate:"required"`
	Open     float64   `csv:"open" json:"open" yaml:"open" validate:"gte=0"`
	High     float64   `csv:"high" json:"high" yaml:"high" validate:"gte=0"`
	Low      float64   `csv:"low" json:"low" yaml:"low" validate:"gte=0"`
	Close    float64   `csv:"close" json:"close" yaml:"close" validate:"gte=0"`
	AdjClose float64   `csv:"adjclose" json:"adjclose" yaml:"adjclose" validate:"gte=0"`
	Volume   int64     `csv:"volume" json:"volume" yaml:"volume" validate:"gte=0"`

	// MA10 is the 10-day simple moving average of the adjusted close.
	MA10 float64 `csv:"MA_10" json:"ma_10" yaml:"ma_10"`
	// MA50 is the 50-day simple moving average of the adjusted close.
	MA50 float64 `csv:"MA_50" json:"ma_50" yaml:"ma_50"`
	// RSI is the 14-day relative strength index in [0, 100].
	RSI float64 `csv:"RSI" json:"rsi" yaml:"rsi" validate:"gte=0,lte=100"`
	// BBUpper and BBLower are the upper and lower Bollinger bands
	// (20-day moving average plus/minus two standard deviations).
	BBUpper float64 `csv:"BB_upper" json:"bb_upper" yaml:"bb_upper"`
	BBLower float64 `csv:"BB_lower" json:"bb_lower" yaml:"bb_lower"`
}

// Bar returns the raw price bar portion of the observation.
func (o Observation) Bar() Bar {
	return Bar{
		Date:     o.Date,
		Open:     o.Open,
		High:     o.High,
		Low:      o.Low,
		Close:    o.Close,
		AdjClose: o.AdjClose,
		Volume:   o.Volume,
	}
}
