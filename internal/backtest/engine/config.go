package engine

import (
	"encoding/json"
	"reflect"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/invopop/jsonschema"
	"github.com/moznion/go-optional"
	"github.com/MantraGGR/nvidiaTradingBotWGUI/pkg/errors"
)

const (
	// DefaultInitialCapital is the starting cash used when a run request
	// does not specify one.
	DefaultInitialCapital = 100000.0
	// DefaultRSIBuyThreshold and DefaultRSISellThreshold are the standard
	// oversold/overbought levels.
	DefaultRSIBuyThreshold  = 30.0
	DefaultRSISellThreshold = 70.0
)

// Config holds the tunable parameters of a backtest run.
type Config struct {
	InitialCapital   float64                    `yaml:"initial_capital" json:"initial_capital" validate:"gt=0" jsonschema:"title=Initial Capital,description=Starting capital for the backtest in USD,minimum=0"`
	RSIBuyThreshold  float64                    `yaml:"rsi_buy_threshold" json:"rsi_buy_threshold" validate:"gte=0,lte=100" jsonschema:"title=RSI Buy Threshold,description=Buy when RSI drops below this level,minimum=0,maximum=100"`
	RSISellThreshold float64                    `yaml:"rsi_sell_threshold" json:"rsi_sell_threshold" validate:"gte=0,lte=100" jsonschema:"title=RSI Sell Threshold,description=Sell when RSI rises above this level,minimum=0,maximum=100"`
	StartTime        optional.Option[time.Time] `yaml:"start_time" json:"start_time" jsonschema:"title=Start Time,description=Optional start date for the backtest window"`
	EndTime          optional.Option[time.Time] `yaml:"end_time" json:"end_time" jsonschema:"title=End Time,description=Optional end date for the backtest window"`
}

// UnmarshalYAML implements custom unmarshaling for Config
func (c *Config) UnmarshalYAML(unmarshal func(interface{}) error) error {
	type config struct {
		InitialCapital   float64    `yaml:"initial_capital"`
		RSIBuyThreshold  float64    `yaml:"rsi_buy_threshold"`
		RSISellThreshold float64    `yaml:"rsi_sell_threshold"`
		StartTime        *time.Time `yaml:"start_time"`
		EndTime          *time.Time `yaml:"end_time"`
	}

	parsed := config{
		InitialCapital:   DefaultInitialCapital,
		RSIBuyThreshold:  DefaultRSIBuyThreshold,
		RSISellThreshold: DefaultRSISellThreshold,
	}
	if err := unmarshal(&parsed); err != nil {
		return err
	}

	c.InitialCapital = parsed.InitialCapital
	c.RSIBuyThreshold = parsed.RSIBuyThreshold
	c.RSISellThreshold = parsed.RSISellThreshold

	if parsed.StartTime != nil {
		c.StartTime = optional.Some(*parsed.StartTime)
	}

	if parsed.EndTime != nil {
		c.EndTime = optional.Some(*parsed.EndTime)
	}

	return nil
}

// Validate checks the configuration values.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return errors.Wrap(errors.ErrCodeBacktestConfigError, "invalid backtest config", err)
	}

	if c.RSIBuyThreshold >= c.RSISellThreshold {
		return errors.Newf(errors.ErrCodeBacktestConfigError,
			"rsi buy threshold %.2f must be below sell threshold %.2f",
			c.RSIBuyThreshold, c.RSISellThreshold)
	}

	return nil
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		InitialCapital:   DefaultInitialCapital,
		RSIBuyThreshold:  DefaultRSIBuyThreshold,
		RSISellThreshold: DefaultRSISellThreshold,
		StartTime:        optional.None[time.Time](),
		EndTime:          optional.None[time.Time](),
	}
}

// GenerateSchema generates a JSON schema for the Config
func (c *Config) GenerateSchema() (*jsonschema.Schema, error) {
	reflector := jsonschema.Reflector{
		RequiredFromJSONSchemaTags: true,
		ExpandedStruct:             true,
		AllowAdditionalProperties:  false,
		Mapper: func(t reflect.Type) *jsonschema.Schema {
			if t.String() == "optional.Option[time.Time]" {
				return &jsonschema.Schema{
					Type:   "string",
					Format: "date-time",
				}
			}

			return nil
		},
	}

	// Generate schema from Config struct
	schema := reflector.Reflect(c)

	// Set schema metadata
	schema.Title = "backtest-config"
	schema.Description = "Configuration schema for the backtest runner"
	schema.Version = "http://json-schema.org/draft-07/schema#"

	return schema, nil
}

// GenerateSchemaJSON generates a JSON schema string for the Config
func (c *Config) GenerateSchemaJSON() (string, error) {
	schema, err := c.GenerateSchema()
	if err != nil {
		return "", err
	}

	schemaBytes, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return "", err
	}

	return string(schemaBytes), nil
}
