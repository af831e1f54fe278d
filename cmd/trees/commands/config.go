package commands

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// benchConfigName is the config file name without extension.
const benchConfigName = ".trees"

// benchConfigType is the config file format.
const benchConfigType = "yaml"

// benchEnvPrefix is the environment variable prefix for bench settings.
const benchEnvPrefix = "TREES"

// Default benchmark parameters, matching the workload ladder the library
// has always been measured with.
var defaultBenchSizes = []int{10_000, 40_000, 70_000, 100_000, 130_000}

const (
	defaultBenchSeed          = 0
	defaultBenchSampleDivisor = 10
)

// ErrNoBenchSizes is returned when the resolved config has no tree sizes.
var ErrNoBenchSizes = errors.New("bench config needs at least one size")

// ErrBadSampleDivisor is returned for a non-positive sample divisor.
var ErrBadSampleDivisor = errors.New("bench sample divisor must be positive")

// BenchConfig holds the comparative benchmark parameters.
type BenchConfig struct {
	// Sizes is the ladder of tree sizes to measure.
	Sizes []int `mapstructure:"sizes"`
	// Seed feeds the deterministic shuffle of the random workloads.
	Seed int64 `mapstructure:"seed"`
	// SampleDivisor controls how many of the inserted keys the search
	// and delete workloads touch (size / divisor).
	SampleDivisor int `mapstructure:"sample_divisor"`
}

// Validate checks the resolved configuration.
func (c *BenchConfig) Validate() error {
	if len(c.Sizes) == 0 {
		return ErrNoBenchSizes
	}
	for _, size := range c.Sizes {
		if size <= 0 {
			return fmt.Errorf("bench size %d: must be positive", size)
		}
	}
	if c.SampleDivisor <= 0 {
		return ErrBadSampleDivisor
	}

	return nil
}

// LoadBenchConfig resolves benchmark parameters from file, env vars, and
// defaults. If configPath is non-empty it is used as the explicit config
// file path; otherwise the config file is searched in CWD and $HOME.
// A missing config file is not an error.
func LoadBenchConfig(configPath string) (*BenchConfig, error) {
	viperCfg := viper.New()

	viperCfg.SetDefault("sizes", defaultBenchSizes)
	viperCfg.SetDefault("seed", defaultBenchSeed)
	viperCfg.SetDefault("sample_divisor", defaultBenchSampleDivisor)

	viperCfg.SetConfigType(benchConfigType)
	viperCfg.SetEnvPrefix(benchEnvPrefix)
	viperCfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viperCfg.AutomaticEnv()

	if configPath != "" {
		viperCfg.SetConfigFile(configPath)
	} else {
		viperCfg.SetConfigName(benchConfigName)
		viperCfg.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viperCfg.AddConfigPath(home)
		}
	}

	readErr := viperCfg.ReadInConfig()
	if readErr != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(readErr, &notFound) {
			return nil, fmt.Errorf("read config: %w", readErr)
		}
	}

	var cfg BenchConfig

	unmarshalErr := viperCfg.Unmarshal(&cfg)
	if unmarshalErr != nil {
		return nil, fmt.Errorf("unmarshal config: %w", unmarshalErr)
	}

	validateErr := cfg.Validate()
	if validateErr != nil {
		return nil, fmt.Errorf("validate config: %w", validateErr)
	}

	return &cfg, nil
}
