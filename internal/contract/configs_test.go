package contract

import (
	"testing"
	"time"

	"github.com/huangsam/starchart/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRawInput() *ConfigRawInput {
	return &ConfigRawInput{
		Source:        "repo_data",
		Workers:       4,
		Output:        "text",
		Metric:        "stars",
		Limit:         10,
		MaxSelections: 5,
		Progress:      "no",
		Color:         "yes",
		LogLevel:      "info",
	}
}

func TestProcessAndValidate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*ConfigRawInput)
		expectError bool
	}{
		{name: "valid minimal config", mutate: func(*ConfigRawInput) {}},
		{name: "invalid metric", mutate: func(in *ConfigRawInput) { in.Metric = "watchers" }, expectError: true},
		{name: "invalid output", mutate: func(in *ConfigRawInput) { in.Output = "yaml" }, expectError: true},
		{name: "zero workers", mutate: func(in *ConfigRawInput) { in.Workers = 0 }, expectError: true},
		{name: "limit too large", mutate: func(in *ConfigRawInput) { in.Limit = MaxResultLimit + 1 }, expectError: true},
		{name: "zero selections", mutate: func(in *ConfigRawInput) { in.MaxSelections = 0 }, expectError: true},
		{name: "bad color", mutate: func(in *ConfigRawInput) { in.Color = "maybe" }, expectError: true},
		{name: "bad timeout", mutate: func(in *ConfigRawInput) { in.Timeout = "soon" }, expectError: true},
		{name: "negative timeout", mutate: func(in *ConfigRawInput) { in.Timeout = "-1s" }, expectError: true},
		{name: "bad log level", mutate: func(in *ConfigRawInput) { in.LogLevel = "chatty" }, expectError: true},
		{name: "parquet without file", mutate: func(in *ConfigRawInput) { in.Output = "parquet" }, expectError: true},
		{name: "xlsx with file", mutate: func(in *ConfigRawInput) { in.Output = "xlsx"; in.OutputFile = "out.xlsx" }},
		{name: "ftp source", mutate: func(in *ConfigRawInput) { in.Source = "ftp://example.com/data" }, expectError: true},
		{name: "https source", mutate: func(in *ConfigRawInput) { in.Source = "https://example.com/data/" }},
		{name: "bad repository arg", mutate: func(in *ConfigRawInput) { in.RepositoryArgs = []string{"nope"} }, expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validRawInput()
			tt.mutate(input)
			cfg := &Config{}
			err := ProcessAndValidate(cfg, input)
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestProcessAndValidateDefaults(t *testing.T) {
	input := validRawInput()
	input.Source = ""
	input.Metric = ""
	input.Output = ""
	input.Timeout = ""
	input.Color = ""
	input.Progress = ""
	input.LogLevel = ""

	cfg := &Config{}
	require.NoError(t, ProcessAndValidate(cfg, input))

	assert.Equal(t, DefaultSource, cfg.Source)
	assert.Equal(t, schema.StarsMetric, cfg.Metric)
	assert.Equal(t, schema.TextOut, cfg.Output)
	assert.Equal(t, DefaultTimeout, cfg.Timeout)
	assert.True(t, cfg.UseColors)
	assert.False(t, cfg.Progress)
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
	assert.False(t, cfg.IsRemote())
}

func TestProcessAndValidateNormalizes(t *testing.T) {
	input := validRawInput()
	input.Source = "https://example.com/data/"
	input.Metric = "FORKS"
	input.Output = "JSON"
	input.Timeout = "5s"

	cfg := &Config{}
	require.NoError(t, ProcessAndValidate(cfg, input))

	assert.Equal(t, "https://example.com/data", cfg.Source)
	assert.True(t, cfg.IsRemote())
	assert.Equal(t, schema.ForksMetric, cfg.Metric)
	assert.Equal(t, schema.JSONOut, cfg.Output)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
}

func TestProcessRepositories(t *testing.T) {
	t.Run("positional args win", func(t *testing.T) {
		input := validRawInput()
		input.RepositoryArgs = []string{"a/x", "b/y", "a/x"}
		input.Repositories = "c/z"

		cfg := &Config{}
		require.NoError(t, ProcessAndValidate(cfg, input))
		assert.Equal(t, []string{"a/x", "b/y"}, cfg.Repositories)
	})

	t.Run("config list fallback", func(t *testing.T) {
		input := validRawInput()
		input.Repositories = " c/z , d/w ,"

		cfg := &Config{}
		require.NoError(t, ProcessAndValidate(cfg, input))
		assert.Equal(t, []string{"c/z", "d/w"}, cfg.Repositories)
	})
}

func TestConfigClone(t *testing.T) {
	cfg := &Config{Source: "repo_data", Repositories: []string{"a/x"}}
	clone := cfg.Clone()
	clone.Repositories[0] = "b/y"
	clone.Source = "other"

	assert.Equal(t, "a/x", cfg.Repositories[0])
	assert.Equal(t, "repo_data", cfg.Source)
}

func TestIsRemoteSource(t *testing.T) {
	assert.True(t, IsRemoteSource("http://localhost:8080"))
	assert.True(t, IsRemoteSource("https://example.com/repo_data"))
	assert.False(t, IsRemoteSource("repo_data"))
	assert.False(t, IsRemoteSource("/var/data"))
	assert.False(t, IsRemoteSource("https://"))
}

func TestApplySource(t *testing.T) {
	cfg := &Config{}
	require.NoError(t, ApplySource(cfg, " https://example.com/data/ "))
	assert.Equal(t, "https://example.com/data", cfg.Source)

	require.NoError(t, ApplySource(cfg, "/"))
	assert.Equal(t, "/", cfg.Source)

	assert.Error(t, ApplySource(cfg, "s3://bucket/data"))
	assert.Equal(t, "/", cfg.Source)
}

func TestNormalizeRepositories(t *testing.T) {
	repos, err := NormalizeRepositories([]string{" a/x", "b/y", "a/x "})
	require.NoError(t, err)
	assert.Equal(t, []string{"a/x", "b/y"}, repos)

	_, err = NormalizeRepositories([]string{"not-a-repo"})
	assert.Error(t, err)
}
