package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spiffcs/repodash/internal/constants"
)

func intPtr(n int) *int       { return &n }
func strPtr(s string) *string { return &s }

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
}

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()

	tests := []struct {
		name string
		got  int
		want int
	}{
		{"TableRows", s.TableRows, constants.DefaultTableRows},
		{"TopLanguages", s.TopLanguages, constants.DefaultTopLanguages},
		{"StarStep", s.StarStep, constants.DefaultStarStep},
		{"IssueLow", s.IssueThresholds.Low, 10},
		{"IssueMedium", s.IssueThresholds.Medium, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}

	assert.Equal(t, "github_dataset.csv", s.DatasetPath)
	assert.Zero(t, s.Delimiter)
}

func TestGetSettings(t *testing.T) {
	t.Run("returns defaults when no overrides", func(t *testing.T) {
		s, err := (&Config{}).GetSettings()
		require.NoError(t, err)
		assert.Equal(t, DefaultSettings(), s)
	})

	t.Run("merges partial overrides", func(t *testing.T) {
		cfg := &Config{
			Dataset: &DatasetOverrides{Delimiter: strPtr("tab")},
			Display: &DisplayOverrides{StarStep: intPtr(25)},
			Issues:  &IssueOverrides{Medium: intPtr(500)},
		}
		s, err := cfg.GetSettings()
		require.NoError(t, err)
		assert.Equal(t, '\t', s.Delimiter)
		assert.Equal(t, 25, s.StarStep)
		assert.Equal(t, constants.DefaultTableRows, s.TableRows)
		assert.Equal(t, 500, s.IssueThresholds.Medium)
		assert.Equal(t, 10, s.IssueThresholds.Low)
	})

	t.Run("ignores non-positive star step", func(t *testing.T) {
		cfg := &Config{Display: &DisplayOverrides{StarStep: intPtr(0)}}
		s, err := cfg.GetSettings()
		require.NoError(t, err)
		assert.Equal(t, constants.DefaultStarStep, s.StarStep)
	})

	t.Run("rejects bad delimiter", func(t *testing.T) {
		cfg := &Config{Dataset: &DatasetOverrides{Delimiter: strPtr("::")}}
		_, err := cfg.GetSettings()
		assert.Error(t, err)
	})
}

func TestResolveDatasetPath(t *testing.T) {
	configured := &Config{Dataset: &DatasetOverrides{Path: strPtr("from-config.csv")}}

	tests := []struct {
		name string
		cfg  *Config
		flag string
		env  string
		want string
	}{
		{"default", &Config{}, "", "", "github_dataset.csv"},
		{"config", configured, "", "", "from-config.csv"},
		{"env beats config", configured, "", "from-env.csv", "from-env.csv"},
		{"flag beats env", configured, "from-flag.csv", "from-env.csv", "from-flag.csv"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(constants.DatasetEnvVar, tt.env)
			assert.Equal(t, tt.want, tt.cfg.ResolveDatasetPath(tt.flag))
		})
	}
}

func TestParseDelimiter(t *testing.T) {
	tests := []struct {
		input   string
		want    rune
		wantErr bool
	}{
		{",", ',', false},
		{"comma", ',', false},
		{"TAB", '\t', false},
		{`\t`, '\t', false},
		{";", ';', false},
		{"pipe", '|', false},
		{"", 0, true},
		{"ab", 0, true},
		{`"`, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseDelimiter(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoadFrom(t *testing.T) {
	dir := t.TempDir()
	global := filepath.Join(dir, "config.yaml")
	local := filepath.Join(dir, ".repodash.yaml")

	t.Run("missing files give defaults", func(t *testing.T) {
		cfg, err := LoadFrom(filepath.Join(dir, "nope.yaml"), filepath.Join(dir, "nope-local.yaml"))
		require.NoError(t, err)
		assert.Equal(t, "table", cfg.DefaultFormat)
	})

	t.Run("local overrides global", func(t *testing.T) {
		writeFile(t, global, `default_format: json
dataset:
  path: global.csv
  delimiter: ";"
display:
  table_rows: 5
filters:
  languages: [Go, Rust]
  min_stars: 10
`)
		writeFile(t, local, `dataset:
  path: local.csv
display:
  star_step: 50
filters:
  max_stars: 500
`)

		cfg, err := LoadFrom(global, local)
		require.NoError(t, err)
		assert.Equal(t, "json", cfg.DefaultFormat, "format comes from global")

		require.NotNil(t, cfg.Dataset)
		assert.Equal(t, "local.csv", *cfg.Dataset.Path)
		assert.Equal(t, ";", *cfg.Dataset.Delimiter, "delimiter comes from global")

		require.NotNil(t, cfg.Display)
		assert.Equal(t, 5, *cfg.Display.TableRows)
		assert.Equal(t, 50, *cfg.Display.StarStep)

		require.NotNil(t, cfg.Filters)
		assert.Equal(t, []string{"Go", "Rust"}, cfg.Filters.Languages)
		assert.Equal(t, 10, *cfg.Filters.MinStars)
		assert.Equal(t, 500, *cfg.Filters.MaxStars)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		writeFile(t, local, "display: [not, a, map\n")
		_, err := LoadFrom(global, local)
		assert.Error(t, err)
	})
}

func TestMergeConfigNilSections(t *testing.T) {
	result := mergeConfig(&Config{DefaultFormat: "table"}, &Config{})
	assert.Nil(t, result.Dataset)
	assert.Nil(t, result.Display)
	assert.Nil(t, result.Filters)
	assert.Nil(t, result.Issues)
}

func TestSet(t *testing.T) {
	cfg := &Config{}

	steps := []struct {
		key   string
		value string
	}{
		{"default_format", "markdown"},
		{"dataset.path", "repos.tsv"},
		{"dataset.delimiter", "tab"},
		{"display.star_step", "25"},
		{"filters.languages", "Go, Rust,,"},
		{"issues.low", "3"},
	}
	for _, s := range steps {
		require.NoError(t, cfg.Set(s.key, s.value), "Set(%q, %q)", s.key, s.value)
	}

	assert.Equal(t, "markdown", cfg.DefaultFormat)
	assert.Equal(t, "repos.tsv", *cfg.Dataset.Path)
	assert.Equal(t, 25, *cfg.Display.StarStep)
	assert.Equal(t, 3, *cfg.Issues.Low)
	assert.Equal(t, []string{"Go", "Rust"}, cfg.Filters.Languages)

	errCases := []struct {
		key   string
		value string
	}{
		{"display.table_rows", "many"},
		{"dataset.delimiter", "::"},
		{"unknown.key", "1"},
	}
	for _, c := range errCases {
		assert.Error(t, cfg.Set(c.key, c.value), "Set(%q, %q)", c.key, c.value)
	}
}

func TestDefaultConfigRoundTrip(t *testing.T) {
	out, err := DefaultConfig().ToYAML()
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "sub", "config.yaml")
	require.NoError(t, SaveTo(path, out))

	cfg, err := LoadFrom(path, filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	s, err := cfg.GetSettings()
	require.NoError(t, err)

	want := DefaultSettings()
	want.Delimiter = ','
	assert.Equal(t, want, s)
}
