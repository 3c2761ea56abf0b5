// Package config loads ovbadecompress settings from flags, environment and an optional config file.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envVarPrefix = "OVBA"

// Config holds all settings of the ovbadecompress tool.
type Config struct {
	// Path of the compressed stream to read.
	Input string `mapstructure:"input"`
	// Path the decompressed bytes are appended to. Blank skips raw output.
	Output string `mapstructure:"output"`
	// Path of the "0xNN " hex text dump. Blank skips hex output.
	HexOutput string `mapstructure:"hex_output"`
	// Minimum level of a log required to be written. Options: debug, info, warn, error
	LogLevel string `mapstructure:"log_level"`
	// Full path to file to which logs will be written. Blank will write to stdout.
	LogFilePath string `mapstructure:"log_file_path"`
	// Reject chunk headers and back-references that break MS-OVBA rules.
	Strict bool `mapstructure:"strict"`
	// Upper bound on decompressed bytes (0 = no limit).
	MaxOutputSize int `mapstructure:"max_output_size"`
	// Upper bound on bytes read from the input file (0 = no limit).
	MaxInputSize int `mapstructure:"max_input_size"`
	// Log one line per decoded chunk at info level.
	ListChunks bool `mapstructure:"list_chunks"`
}

// flag name -> config key.
var flagKeys = map[string]string{
	"input":           "input",
	"output":          "output",
	"hex-output":      "hex_output",
	"log-level":       "log_level",
	"log-file":        "log_file_path",
	"strict":          "strict",
	"max-output-size": "max_output_size",
	"max-input-size":  "max_input_size",
	"list-chunks":     "list_chunks",
}

// NewFlagSet returns the command-line flags understood by Load.
func NewFlagSet(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage of %s:\n", name)
		fmt.Fprint(os.Stderr, fs.FlagUsages())
	}
	fs.StringP("config", "c", ".", "Directory containing an optional ovba.yaml")
	fs.StringP("input", "i", "", "Compressed stream to decompress")
	fs.StringP("output", "o", "", "File the decompressed bytes are appended to")
	fs.String("hex-output", "", "File to write a 0xNN hex dump to")
	fs.String("log-level", "info", "Log level: debug, info, warn, error")
	fs.String("log-file", "", "Log file (default stdout)")
	fs.Bool("strict", false, "Validate chunk headers and back-references")
	fs.Int("max-output-size", 0, "Maximum decompressed size in bytes (0 = unlimited)")
	fs.Int("max-input-size", 0, "Maximum input size in bytes (0 = unlimited)")
	fs.BoolP("list-chunks", "l", false, "Log every decoded chunk")

	return fs
}

// Load merges defaults, ovba.yaml in the --config directory, OVBA_* environment
// variables and parsed flags, in increasing order of precedence.
func Load(fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	v.SetDefault("input", "")
	v.SetDefault("output", "")
	v.SetDefault("hex_output", "")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_file_path", "")
	v.SetDefault("strict", false)
	v.SetDefault("max_output_size", 0)
	v.SetDefault("max_input_size", 0)
	v.SetDefault("list_chunks", false)

	configPath, err := fs.GetString("config")
	if err != nil {
		return nil, err
	}
	v.AddConfigPath(configPath)
	v.SetConfigName("ovba")
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	// input -> OVBA_INPUT, log_file_path -> OVBA_LOG_FILE_PATH.
	v.SetEnvPrefix(envVarPrefix)
	v.AutomaticEnv()

	for name, key := range flagKeys {
		if err := v.BindPFlag(key, fs.Lookup(name)); err != nil {
			return nil, fmt.Errorf("binding flag %s: %w", name, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return cfg, nil
}

// Validate reports settings that make a run impossible.
func (c *Config) Validate() error {
	if c.Input == "" {
		return errors.New("no input file given")
	}
	if c.Output == "" && c.HexOutput == "" && !c.ListChunks {
		return errors.New("nothing to do: set an output, a hex output or list chunks")
	}
	if c.MaxOutputSize < 0 || c.MaxInputSize < 0 {
		return errors.New("size limits must be non-negative")
	}

	return nil
}
