package ecudump

import (
	"io"
	"io/ioutil"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

const (
	defaultWarningTemperature  = 100.0
	defaultCriticalTemperature = 110.0
)

// Config holds the temperature thresholds in °C. A maximum temperature
// strictly above a threshold triggers its line in the summary.
type Config struct {
	WarningTemperature  float64
	CriticalTemperature float64
}

func DefaultConfig() *Config {
	return &Config{
		WarningTemperature:  defaultWarningTemperature,
		CriticalTemperature: defaultCriticalTemperature,
	}
}

func LoadConfig(fileName string) (*Config, error) {
	file, err := os.Open(fileName)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to open file %s", fileName)
	}
	defer file.Close()
	return LoadConfigFromReader(file)
}

func LoadConfigFromReader(configReader io.Reader) (*Config, error) {
	configData, err := ioutil.ReadAll(configReader)
	if err != nil {
		return nil, errors.Wrap(err, "unable to read config reader")
	}
	config := DefaultConfig()
	if _, err := toml.Decode(string(configData), config); err != nil {
		return nil, errors.Wrap(err, "unable to load threshold configuration")
	}
	if err := config.validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func (c *Config) validate() error {
	if c.CriticalTemperature < c.WarningTemperature {
		return errors.Errorf("critical temperature %v is below warning temperature %v",
			c.CriticalTemperature, c.WarningTemperature)
	}
	return nil
}
