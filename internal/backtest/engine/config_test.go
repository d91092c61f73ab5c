package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"gopkg.in/yaml.v2"
)

type ConfigTestSuite struct {
	suite.Suite
}

func TestConfigSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (suite *ConfigTestSuite) TestDefaultConfigIsValid() {
	config := DefaultConfig()

	suite.NoError(config.Validate())
	suite.InDelta(DefaultInitialCapital, config.InitialCapital, 1e-9)
	suite.True(config.StartTime.IsNone())
	suite.True(config.EndTime.IsNone())
}

func (suite *ConfigTestSuite) TestValidate() {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:    "defaults pass",
			mutate:  func(c *Config) {},
			wantErr: false,
		},
		{
			name:    "zero capital",
			mutate:  func(c *Config) { c.InitialCapital = 0 },
			wantErr: true,
		},
		{
			name:    "negative capital",
			mutate:  func(c *Config) { c.InitialCapital = -100 },
			wantErr: true,
		},
		{
			name:    "rsi threshold above range",
			mutate:  func(c *Config) { c.RSISellThreshold = 150 },
			wantErr: true,
		},
		{
			name: "buy threshold above sell threshold",
			mutate: func(c *Config) {
				c.RSIBuyThreshold = 80
				c.RSISellThreshold = 20
			},
			wantErr: true,
		},
		{
			name: "equal thresholds",
			mutate: func(c *Config) {
				c.RSIBuyThreshold = 50
				c.RSISellThreshold = 50
			},
			wantErr: true,
		},
		{
			name: "custom thresholds pass",
			mutate: func(c *Config) {
				c.RSIBuyThreshold = 20
				c.RSISellThreshold = 80
			},
			wantErr: false,
		},
	}

	for _, tc := range tests {
		suite.Run(tc.name, func() {
			config := DefaultConfig()
			tc.mutate(&config)

			err := config.Validate()
			if tc.wantErr {
				suite.Error(err)
			} else {
				suite.NoError(err)
			}
		})
	}
}

func (suite *ConfigTestSuite) TestUnmarshalYAMLAppliesDefaults() {
	var config Config
	err := yaml.Unmarshal([]byte("{}"), &config)

	suite.Require().NoError(err)
	suite.InDelta(DefaultInitialCapital, config.InitialCapital, 1e-9)
	suite.InDelta(DefaultRSIBuyThreshold, config.RSIBuyThreshold, 1e-9)
	suite.InDelta(DefaultRSISellThreshold, config.RSISellThreshold, 1e-9)
	suite.True(config.StartTime.IsNone())
	suite.True(config.EndTime.IsNone())
}

func (suite *ConfigTestSuite) TestUnmarshalYAMLOverrides() {
	raw := `
initial_capital: 5000
rsi_buy_threshold: 25
rsi_sell_threshold: 75
start_time: 2024-01-02T00:00:00Z
end_time: 2024-06-30T00:00:00Z
`

	var config Config
	err := yaml.Unmarshal([]byte(raw), &config)

	suite.Require().NoError(err)
	suite.InDelta(5000, config.InitialCapital, 1e-9)
	suite.InDelta(25, config.RSIBuyThreshold, 1e-9)
	suite.InDelta(75, config.RSISellThreshold, 1e-9)
	suite.Require().True(config.StartTime.IsSome())
	suite.True(config.StartTime.Unwrap().Equal(time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)))
	suite.Require().True(config.EndTime.IsSome())
}

func (suite *ConfigTestSuite) TestGenerateSchema() {
	config := DefaultConfig()

	schemaJSON, err := config.GenerateSchemaJSON()

	suite.Require().NoError(err)
	suite.Contains(schemaJSON, "initial_capital")
	suite.Contains(schemaJSON, "rsi_buy_threshold")
	suite.Contains(schemaJSON, "date-time")
}
