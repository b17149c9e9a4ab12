package config

import (
	"os"
	"strconv"
	"strings"

	"areaprop/internal/errors"
)

// Env variable names for the parameter values themselves. They sit between
// command-line flags and interactive prompts in the resolution order.
const (
	EnvMeanA   = "AREAPROP_MEAN_A"
	EnvStdA    = "AREAPROP_STD_A"
	EnvMeanB   = "AREAPROP_MEAN_B"
	EnvStdB    = "AREAPROP_STD_B"
	EnvSamples = "AREAPROP_SAMPLES"
	EnvSeed    = "AREAPROP_SEED"
)

const (
	DefaultOutputPath = "distributions.png"
	DefaultBins       = 40
	DefaultSamples    = 1000
	DefaultVariables  = 2
	DefaultAddr       = ":8080"
)

// Config represents the complete application configuration
type Config struct {
	Output   OutputConfig
	Sampling SamplingConfig
	Server   ServerConfig
	LogLevel string
}

// OutputConfig holds figure and report settings
type OutputConfig struct {
	FigurePath string
	ReportPath string
	Bins       int
	Show       bool
	// Figure size in inches, one histogram per third of the width.
	WidthIn  float64
	HeightIn float64
	DPI      int
}

// SamplingConfig holds defaults for the sampling run
type SamplingConfig struct {
	Samples   int
	Variables int
}

// ServerConfig holds HTTP settings for `areaprop serve`
type ServerConfig struct {
	Addr    string
	GinMode string
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Output:   loadOutputConfig(),
		Sampling: loadSamplingConfig(),
		Server:   loadServerConfig(),
		LogLevel: getEnvOrDefault("LOG_LEVEL", "WARN"),
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

func loadOutputConfig() OutputConfig {
	return OutputConfig{
		FigurePath: getEnvOrDefault("AREAPROP_OUT", DefaultOutputPath),
		ReportPath: getEnvOrDefault("AREAPROP_REPORT", ""),
		Bins:       getEnvIntOrDefault("AREAPROP_BINS", DefaultBins),
		Show:       getEnvBoolOrDefault("AREAPROP_SHOW", false),
		WidthIn:    getEnvFloatOrDefault("AREAPROP_FIG_WIDTH", 15),
		HeightIn:   getEnvFloatOrDefault("AREAPROP_FIG_HEIGHT", 4),
		DPI:        getEnvIntOrDefault("AREAPROP_DPI", 150),
	}
}

func loadSamplingConfig() SamplingConfig {
	return SamplingConfig{
		Samples:   DefaultSamples,
		Variables: getEnvIntOrDefault("AREAPROP_VARIABLES", DefaultVariables),
	}
}

func loadServerConfig() ServerConfig {
	return ServerConfig{
		Addr:    getEnvOrDefault("AREAPROP_ADDR", DefaultAddr),
		GinMode: getEnvOrDefault("GIN_MODE", "release"),
	}
}

func validateConfig(config *Config) error {
	if config.Output.Bins <= 0 {
		return errors.ConfigInvalid("AREAPROP_BINS must be positive")
	}
	if config.Output.WidthIn <= 0 || config.Output.HeightIn <= 0 {
		return errors.ConfigInvalid("figure dimensions must be positive")
	}
	if config.Output.DPI <= 0 {
		return errors.ConfigInvalid("AREAPROP_DPI must be positive")
	}
	if v := config.Sampling.Variables; v != 1 && v != 2 {
		return errors.ConfigInvalid("AREAPROP_VARIABLES must be 1 or 2")
	}
	if strings.TrimSpace(config.Server.Addr) == "" {
		return errors.ConfigInvalid("server address is required")
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
