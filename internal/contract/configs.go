package contract

import (
	"fmt"
	"net/url"
	"runtime"
	"slices"
	"strings"
	"time"

	"github.com/huangsam/starchart/schema"
)

// Default values for configuration.
const (
	DefaultSource        = "repo_data"
	DefaultResultLimit   = 25
	MaxResultLimit       = 1000
	DefaultMaxSelections = 5
	MaxSelectionsCeiling = 20
	DefaultTimeout       = 30 * time.Second
	DefaultLogLevel      = "info"
)

// DefaultWorkers is the default number of concurrent workers to use.
var DefaultWorkers = runtime.GOMAXPROCS(0)

// Config holds the runtime configuration for a command.
// This struct remains the "final, validated" config.
type Config struct {
	Source        string // Directory path or http(s) base URL of the snapshot store
	Workers       int
	Output        schema.OutputMode
	OutputFile    string
	Metric        schema.Metric
	ResultLimit   int
	MaxSelections int
	Width         int // Terminal width override (0 = auto-detect)
	Timeout       time.Duration
	Progress      bool
	LogLevel      string

	// Repositories holds the positional repository names, in order.
	Repositories []string

	UseColors bool // Enable colored labels in text output
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// This is set manually from positional args, so no tag
	RepositoryArgs []string

	// --- Fields from rootCmd.PersistentFlags() ---
	Source        string `mapstructure:"source"`
	Workers       int    `mapstructure:"workers"`
	Output        string `mapstructure:"output"`
	OutputFile    string `mapstructure:"output-file"`
	Metric        string `mapstructure:"metric"`
	Limit         int    `mapstructure:"limit"`
	MaxSelections int    `mapstructure:"max-selections"`
	Width         int    `mapstructure:"width"`
	Timeout       string `mapstructure:"timeout"`
	Progress      string `mapstructure:"progress"`
	Color         string `mapstructure:"color"`
	LogLevel      string `mapstructure:"log-level"`

	// --- Fields from the config file only ---
	Repositories string `mapstructure:"repositories"`
}

// Clone returns a deep copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	clone.Repositories = slices.Clone(c.Repositories)
	return &clone
}

// IsRemote reports whether the source is an http(s) base URL.
func (c *Config) IsRemote() bool {
	return IsRemoteSource(c.Source)
}

// IsRemoteSource reports whether a source string names an http(s) base URL.
func IsRemoteSource(source string) bool {
	u, err := url.Parse(source)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and updates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	if err := processSource(cfg, input); err != nil {
		return err
	}
	if err := processRepositories(cfg, input); err != nil {
		return err
	}
	return nil
}

// validateSimpleInputs processes and validates all non-source related fields.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	cfg.OutputFile = input.OutputFile
	cfg.Width = input.Width

	colors, err := ParseBoolString(orDefault(input.Color, "yes"))
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors

	progress, err := ParseBoolString(orDefault(input.Progress, "no"))
	if err != nil {
		return fmt.Errorf("invalid --progress value: %w", err)
	}
	cfg.Progress = progress

	// --- 1. ResultLimit Validation ---
	if input.Limit <= 0 || input.Limit > MaxResultLimit {
		return fmt.Errorf("limit must be greater than 0 and cannot exceed %d (received %d)", MaxResultLimit, input.Limit)
	}
	cfg.ResultLimit = input.Limit

	// --- 2. Workers Validation ---
	if input.Workers <= 0 {
		return fmt.Errorf("workers must be greater than 0 (received %d)", input.Workers)
	}
	cfg.Workers = input.Workers

	// --- 3. Selection ceiling ---
	if input.MaxSelections <= 0 || input.MaxSelections > MaxSelectionsCeiling {
		return fmt.Errorf("max-selections must be between 1 and %d (received %d)", MaxSelectionsCeiling, input.MaxSelections)
	}
	cfg.MaxSelections = input.MaxSelections

	// --- 4. Metric and Output Validation ---
	cfg.Metric = schema.Metric(strings.ToLower(orDefault(input.Metric, string(schema.StarsMetric))))
	if _, ok := schema.ValidMetrics[cfg.Metric]; !ok {
		return fmt.Errorf("invalid metric '%s'. must be stars, forks", input.Metric)
	}

	cfg.Output = schema.OutputMode(strings.ToLower(orDefault(input.Output, string(schema.TextOut))))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, csv, json, parquet, xlsx, html", input.Output)
	}
	if (cfg.Output == schema.ParquetOut || cfg.Output == schema.XLSXOut) && cfg.OutputFile == "" {
		return fmt.Errorf("%s output is binary and requires --output-file", cfg.Output)
	}

	// --- 5. Timeout Validation ---
	cfg.Timeout = DefaultTimeout
	if input.Timeout != "" {
		timeout, err := time.ParseDuration(input.Timeout)
		if err != nil {
			return fmt.Errorf("invalid --timeout value '%s': %w", input.Timeout, err)
		}
		if timeout <= 0 {
			return fmt.Errorf("timeout must be positive (received %s)", input.Timeout)
		}
		cfg.Timeout = timeout
	}

	// --- 6. Log level ---
	cfg.LogLevel = strings.ToLower(orDefault(input.LogLevel, DefaultLogLevel))
	if err := SetLogLevel(cfg.LogLevel); err != nil {
		return err
	}

	return nil
}

// processSource validates the snapshot store location.
func processSource(cfg *Config, input *ConfigRawInput) error {
	return ApplySource(cfg, orDefault(input.Source, DefaultSource))
}

// ApplySource validates source and stores it on cfg.
// Used by the MCP server to revalidate a per-call source.
func ApplySource(cfg *Config, source string) error {
	source = strings.TrimSpace(source)
	if strings.Contains(source, "://") && !IsRemoteSource(source) {
		return fmt.Errorf("unsupported source '%s'. must be a directory or an http(s) URL", source)
	}
	source = strings.TrimRight(source, "/")
	if source == "" {
		source = "/"
	}
	cfg.Source = source
	return nil
}

// processRepositories resolves the repository names a command operates on.
// Positional arguments take precedence over the config file list.
func processRepositories(cfg *Config, input *ConfigRawInput) error {
	names := input.RepositoryArgs
	if len(names) == 0 {
		names = SplitList(input.Repositories)
	}
	repos, err := NormalizeRepositories(names)
	if err != nil {
		return err
	}
	cfg.Repositories = repos
	return nil
}

// NormalizeRepositories trims, validates and dedups repository names, keeping first-seen order.
func NormalizeRepositories(names []string) ([]string, error) {
	var repos []string
	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if !schema.ValidRepoName(name) {
			return nil, fmt.Errorf("invalid repository name '%s'. expected owner/name", name)
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		repos = append(repos, name)
	}
	return repos, nil
}

func orDefault(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}
