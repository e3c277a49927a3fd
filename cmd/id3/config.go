package main

import (
	"fmt"
	"io/ioutil"

	"github.com/pbanos/id3"
	yaml "gopkg.in/yaml.v2"
)

/*
fileConfig holds the defaults that can be given in the file passed with the
config flag. Flags set on the command line take precedence.
*/
type fileConfig struct {
	MinimumGain          *float64 `yaml:"minimum-gain"`
	OutputFormat         string   `yaml:"output-format"`
	Table                string   `yaml:"table"`
	RedisPrefix          string   `yaml:"redis-prefix"`
	ClassificationColumn string   `yaml:"classification-column"`
	MaxDBConns           int      `yaml:"max-db-conns"`
}

const (
	defaultTable       = "dataset"
	defaultRedisPrefix = "id3:tree"
)

func defaultFileConfig() *fileConfig {
	minimumGain := id3.DefaultMinimumGain
	return &fileConfig{
		MinimumGain:  &minimumGain,
		OutputFormat: formatJSON,
		Table:        defaultTable,
		RedisPrefix:  defaultRedisPrefix,
	}
}

/*
parseFileConfig takes the contents of a YML config file and returns the
configuration in it, with defaults for the values it does not set.
*/
func parseFileConfig(data []byte) (*fileConfig, error) {
	fc := &fileConfig{}
	err := yaml.UnmarshalStrict(data, fc)
	if err != nil {
		return nil, fmt.Errorf("parsing yml config: %w", err)
	}
	defaults := defaultFileConfig()
	if fc.MinimumGain == nil {
		fc.MinimumGain = defaults.MinimumGain
	}
	if fc.OutputFormat == "" {
		fc.OutputFormat = defaults.OutputFormat
	}
	if fc.Table == "" {
		fc.Table = defaults.Table
	}
	if fc.RedisPrefix == "" {
		fc.RedisPrefix = defaults.RedisPrefix
	}
	if _, err = treeFormat(fc.OutputFormat); err != nil {
		return nil, err
	}
	return fc, nil
}

// File returns the configuration in the config file, or the defaults if no file was given
func (rcc *rootCmdConfig) File() (*fileConfig, error) {
	if rcc.file != nil {
		return rcc.file, nil
	}
	if rcc.configPath == "" {
		rcc.file = defaultFileConfig()
		return rcc.file, nil
	}
	rcc.Logf("Reading configuration from %s...", rcc.configPath)
	data, err := ioutil.ReadFile(rcc.configPath)
	if err != nil {
		return nil, fmt.Errorf("reading config yml file %s: %w", rcc.configPath, err)
	}
	fc, err := parseFileConfig(data)
	if err != nil {
		return nil, fmt.Errorf("parsing config yml file %s: %w", rcc.configPath, err)
	}
	rcc.file = fc
	return fc, nil
}
