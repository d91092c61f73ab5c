package errors

// ErrorCode represents a unique error code for identifying different error types.
type ErrorCode int

const (
	// General errors (1-99)
	ErrCodeUnknown ErrorCode = 1

	// Validation errors (100-199)
	ErrCodeInvalidParameter     ErrorCode = 100
	ErrCodeInvalidConfiguration ErrorCode = 101
	ErrCodeInvalidCapital       ErrorCode = 102
	ErrCodeInvalidQuantity      ErrorCode = 103
	ErrCodeInvalidPrice         ErrorCode = 104
	ErrCodeInvalidRequest       ErrorCode = 105

	// Feed errors (200-299)
	ErrCodeFeedEmpty            ErrorCode = 200
	ErrCodeFeedNotSorted        ErrorCode = 201
	ErrCodeFeedDuplicateDate    ErrorCode = 202
	ErrCodeFeedMissingIndicator ErrorCode = 203
	ErrCodeFeedQueryFailed      ErrorCode = 204
	ErrCodeFeedUnavailable      ErrorCode = 205

	// Strategy errors (300-399)
	ErrCodeUnknownStrategy ErrorCode = 300

	// Backtest errors (400-499)
	ErrCodeBacktestNoFeed       ErrorCode = 400
	ErrCodeBacktestConfigError  ErrorCode = 401
	ErrCodeBacktestWriteFailed  ErrorCode = 402
	ErrCodeBacktestNoStrategies ErrorCode = 403

	// Market data errors (500-599)
	ErrCodeMarketDataFetchFailed ErrorCode = 500
	ErrCodeMarketDataWriteFailed ErrorCode = 501
	ErrCodeInvalidProvider       ErrorCode = 502

	// Server errors (600-699)
	ErrCodeServerStartFailed ErrorCode = 600
)
