package types

import "time"

// EquityPoint is one point of the equity curve: total portfolio value
// (cash plus position valued at that day's close) on a given date.
// Points are recorded before the day's trade decision is applied, so each
// reflects the state carried in from the previous day.
type EquityPoint struct {
	Date  time.Time `csv:"date" json:"date" yaml:"date"`
	Value float64   `csv:"value" json:"value" yaml:"value"`
}
