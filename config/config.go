package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/spiffcs/repodash/internal/constants"
	"github.com/spiffcs/repodash/internal/format"
)

// Config represents the application configuration
type Config struct {
	DefaultFormat string `yaml:"default_format,omitempty"`

	Dataset *DatasetOverrides `yaml:"dataset,omitempty"`
	Filters *FilterOverrides  `yaml:"filters,omitempty"`
	Display *DisplayOverrides `yaml:"display,omitempty"`
	Issues  *IssueOverrides   `yaml:"issues,omitempty"`
}

// DatasetOverrides configures where and how the dataset is read
type DatasetOverrides struct {
	Path      *string `yaml:"path,omitempty"`
	Delimiter *string `yaml:"delimiter,omitempty"`
}

// FilterOverrides sets the initial sidebar selection. Unset fields fall
// back to the dataset defaults (all languages, full star range).
type FilterOverrides struct {
	Languages []string `yaml:"languages,omitempty"`
	MinStars  *int     `yaml:"min_stars,omitempty"`
	MaxStars  *int     `yaml:"max_stars,omitempty"`
}

// DisplayOverrides - presentation settings
type DisplayOverrides struct {
	TableRows    *int `yaml:"table_rows,omitempty"`
	TopLanguages *int `yaml:"top_languages,omitempty"`
	StarStep     *int `yaml:"star_step,omitempty"`
}

// IssueOverrides - issue count buckets for the scatter glyphs
type IssueOverrides struct {
	None   *int `yaml:"none,omitempty"`
	Low    *int `yaml:"low,omitempty"`
	Medium *int `yaml:"medium,omitempty"`
}

// Settings is the fully resolved configuration
type Settings struct {
	DatasetPath     string
	Delimiter       rune // zero means decide from the file extension
	TableRows       int
	TopLanguages    int
	StarStep        int
	IssueThresholds format.IssueThresholds
}

// DefaultSettings returns the built-in settings
func DefaultSettings() Settings {
	return Settings{
		DatasetPath:     constants.DefaultDatasetPath,
		TableRows:       constants.DefaultTableRows,
		TopLanguages:    constants.DefaultTopLanguages,
		StarStep:        constants.DefaultStarStep,
		IssueThresholds: format.DefaultIssueThresholds,
	}
}

// GetSettings returns settings with user overrides merged with defaults.
// An invalid delimiter is reported as an error.
func (c *Config) GetSettings() (Settings, error) {
	s := DefaultSettings()

	if d := c.Dataset; d != nil {
		if d.Path != nil && *d.Path != "" {
			s.DatasetPath = *d.Path
		}
		if d.Delimiter != nil && *d.Delimiter != "" {
			r, err := ParseDelimiter(*d.Delimiter)
			if err != nil {
				return s, err
			}
			s.Delimiter = r
		}
	}

	if d := c.Display; d != nil {
		if d.TableRows != nil {
			s.TableRows = *d.TableRows
		}
		if d.TopLanguages != nil && *d.TopLanguages > 0 {
			s.TopLanguages = *d.TopLanguages
		}
		if d.StarStep != nil && *d.StarStep > 0 {
			s.StarStep = *d.StarStep
		}
	}

	if i := c.Issues; i != nil {
		if i.None != nil {
			s.IssueThresholds.None = *i.None
		}
		if i.Low != nil {
			s.IssueThresholds.Low = *i.Low
		}
		if i.Medium != nil {
			s.IssueThresholds.Medium = *i.Medium
		}
	}

	return s, nil
}

// ResolveDatasetPath picks the dataset path: the flag value if set, then
// the REPODASH_DATASET environment variable, then the configured path,
// then the default file name.
func (c *Config) ResolveDatasetPath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if env := os.Getenv(constants.DatasetEnvVar); env != "" {
		return env
	}
	if c.Dataset != nil && c.Dataset.Path != nil && *c.Dataset.Path != "" {
		return *c.Dataset.Path
	}
	return constants.DefaultDatasetPath
}

// ParseDelimiter accepts a single character or one of the names "comma",
// "tab", "semicolon" and "pipe".
func ParseDelimiter(s string) (rune, error) {
	switch strings.ToLower(s) {
	case "comma":
		return ',', nil
	case "tab", `\t`:
		return '\t', nil
	case "semicolon":
		return ';', nil
	case "pipe":
		return '|', nil
	}
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("invalid delimiter %q: want a single character", s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	if r == '"' || r == '\r' || r == '\n' || r == utf8.RuneError {
		return 0, fmt.Errorf("invalid delimiter %q", s)
	}
	return r, nil
}

// DefaultConfigDir returns the default config directory
func DefaultConfigDir() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return ".repodash"
	}
	return filepath.Join(configDir, "repodash")
}

// ConfigPath returns the path to the config file
func ConfigPath() string {
	return filepath.Join(DefaultConfigDir(), "config.yaml")
}

// LocalConfigPath returns the path to the local config file in the current directory
func LocalConfigPath() string {
	return ".repodash.yaml"
}

// Load loads the configuration from disk.
// It first loads the global config from the user config directory, then
// merges any local .repodash.yaml on top (local values take precedence).
func Load() (*Config, error) {
	return LoadFrom(ConfigPath(), LocalConfigPath())
}

// LoadFrom loads and merges the config files at the given paths. Missing
// files are skipped.
func LoadFrom(globalPath, localPath string) (*Config, error) {
	cfg := &Config{
		DefaultFormat: "table",
	}

	if _, err := os.Stat(globalPath); err == nil {
		data, err := os.ReadFile(globalPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read global config file: %w", err)
		}

		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse global config file: %w", err)
		}
	}

	if _, err := os.Stat(localPath); err == nil {
		data, err := os.ReadFile(localPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read local config file: %w", err)
		}

		var localCfg Config
		if err := yaml.Unmarshal(data, &localCfg); err != nil {
			return nil, fmt.Errorf("failed to parse local config file: %w", err)
		}

		cfg = mergeConfig(cfg, &localCfg)
	}

	if cfg.DefaultFormat == "" {
		cfg.DefaultFormat = "table"
	}

	return cfg, nil
}

// mergeConfig merges local config on top of global config.
// Local values take precedence; unset local values preserve global values.
func mergeConfig(global, local *Config) *Config {
	result := &Config{DefaultFormat: global.DefaultFormat}
	if local.DefaultFormat != "" {
		result.DefaultFormat = local.DefaultFormat
	}

	result.Dataset = mergeDataset(global.Dataset, local.Dataset)
	result.Filters = mergeFilters(global.Filters, local.Filters)
	result.Display = mergeDisplay(global.Display, local.Display)
	result.Issues = mergeIssues(global.Issues, local.Issues)

	return result
}

// pick returns local when set, else global.
func pick[T any](global, local *T) *T {
	if local != nil {
		return local
	}
	return global
}

func mergeDataset(global, local *DatasetOverrides) *DatasetOverrides {
	if global == nil && local == nil {
		return nil
	}
	if global == nil {
		global = &DatasetOverrides{}
	}
	if local == nil {
		local = &DatasetOverrides{}
	}
	return &DatasetOverrides{
		Path:      pick(global.Path, local.Path),
		Delimiter: pick(global.Delimiter, local.Delimiter),
	}
}

func mergeFilters(global, local *FilterOverrides) *FilterOverrides {
	if global == nil && local == nil {
		return nil
	}
	if global == nil {
		global = &FilterOverrides{}
	}
	if local == nil {
		local = &FilterOverrides{}
	}
	result := &FilterOverrides{
		Languages: global.Languages,
		MinStars:  pick(global.MinStars, local.MinStars),
		MaxStars:  pick(global.MaxStars, local.MaxStars),
	}
	// Arrays: local replaces if non-empty
	if len(local.Languages) > 0 {
		result.Languages = local.Languages
	}
	return result
}

func mergeDisplay(global, local *DisplayOverrides) *DisplayOverrides {
	if global == nil && local == nil {
		return nil
	}
	if global == nil {
		global = &DisplayOverrides{}
	}
	if local == nil {
		local = &DisplayOverrides{}
	}
	return &DisplayOverrides{
		TableRows:    pick(global.TableRows, local.TableRows),
		TopLanguages: pick(global.TopLanguages, local.TopLanguages),
		StarStep:     pick(global.StarStep, local.StarStep),
	}
}

func mergeIssues(global, local *IssueOverrides) *IssueOverrides {
	if global == nil && local == nil {
		return nil
	}
	if global == nil {
		global = &IssueOverrides{}
	}
	if local == nil {
		local = &IssueOverrides{}
	}
	return &IssueOverrides{
		None:   pick(global.None, local.None),
		Low:    pick(global.Low, local.Low),
		Medium: pick(global.Medium, local.Medium),
	}
}

// Keys lists the settings accepted by Set.
var Keys = []string{
	"default_format",
	"dataset.path",
	"dataset.delimiter",
	"display.table_rows",
	"display.top_languages",
	"display.star_step",
	"filters.min_stars",
	"filters.max_stars",
	"filters.languages",
	"issues.none",
	"issues.low",
	"issues.medium",
}

// Set assigns a single setting by its dotted key. filters.languages takes
// a comma separated list.
func (c *Config) Set(key, value string) error {
	atoi := func() (*int, error) {
		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return nil, fmt.Errorf("%s: %q is not an integer", key, value)
		}
		return &n, nil
	}
	ensureDataset := func() *DatasetOverrides {
		if c.Dataset == nil {
			c.Dataset = &DatasetOverrides{}
		}
		return c.Dataset
	}
	ensureDisplay := func() *DisplayOverrides {
		if c.Display == nil {
			c.Display = &DisplayOverrides{}
		}
		return c.Display
	}
	ensureFilters := func() *FilterOverrides {
		if c.Filters == nil {
			c.Filters = &FilterOverrides{}
		}
		return c.Filters
	}
	ensureIssues := func() *IssueOverrides {
		if c.Issues == nil {
			c.Issues = &IssueOverrides{}
		}
		return c.Issues
	}

	var err error
	switch key {
	case "default_format":
		c.DefaultFormat = value
	case "dataset.path":
		ensureDataset().Path = &value
	case "dataset.delimiter":
		if _, err := ParseDelimiter(value); err != nil {
			return err
		}
		ensureDataset().Delimiter = &value
	case "display.table_rows":
		ensureDisplay().TableRows, err = atoi()
	case "display.top_languages":
		ensureDisplay().TopLanguages, err = atoi()
	case "display.star_step":
		ensureDisplay().StarStep, err = atoi()
	case "filters.min_stars":
		ensureFilters().MinStars, err = atoi()
	case "filters.max_stars":
		ensureFilters().MaxStars, err = atoi()
	case "filters.languages":
		var langs []string
		for _, l := range strings.Split(value, ",") {
			if l = strings.TrimSpace(l); l != "" {
				langs = append(langs, l)
			}
		}
		ensureFilters().Languages = langs
	case "issues.none":
		ensureIssues().None, err = atoi()
	case "issues.low":
		ensureIssues().Low, err = atoi()
	case "issues.medium":
		ensureIssues().Medium, err = atoi()
	default:
		return fmt.Errorf("unknown config key %q (valid keys: %s)", key, strings.Join(Keys, ", "))
	}
	return err
}

// Save saves the configuration to the global config file
func (c *Config) Save() error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	return SaveTo(ConfigPath(), string(data))
}

// DefaultConfig returns a fully populated config with all default values.
// This is useful for generating a complete config file template.
func DefaultConfig() *Config {
	s := DefaultSettings()
	delimiter := "comma"

	return &Config{
		DefaultFormat: "table",
		Dataset: &DatasetOverrides{
			Path:      &s.DatasetPath,
			Delimiter: &delimiter,
		},
		Display: &DisplayOverrides{
			TableRows:    &s.TableRows,
			TopLanguages: &s.TopLanguages,
			StarStep:     &s.StarStep,
		},
		Issues: &IssueOverrides{
			None:   &s.IssueThresholds.None,
			Low:    &s.IssueThresholds.Low,
			Medium: &s.IssueThresholds.Medium,
		},
	}
}

// ToYAML returns the config as a YAML string
func (c *Config) ToYAML() (string, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return "", fmt.Errorf("failed to marshal config: %w", err)
	}
	return string(data), nil
}

// ConfigPathInfo contains information about config file paths
type ConfigPathInfo struct {
	GlobalPath   string
	GlobalExists bool
	LocalPath    string
	LocalExists  bool
}

// GetConfigPaths returns path info for both global and local configs
func GetConfigPaths() ConfigPathInfo {
	globalPath := ConfigPath()
	localPath := LocalConfigPath()

	absLocalPath, err := filepath.Abs(localPath)
	if err != nil {
		absLocalPath = localPath
	}

	_, globalErr := os.Stat(globalPath)
	_, localErr := os.Stat(localPath)

	return ConfigPathInfo{
		GlobalPath:   globalPath,
		GlobalExists: globalErr == nil,
		LocalPath:    absLocalPath,
		LocalExists:  localErr == nil,
	}
}

// MinimalConfig returns a minimal config template with comments
func MinimalConfig() string {
	return `# repodash configuration file
# See: repodash config defaults  (for all available options)

# Output format when not running the dashboard: table, json or markdown
default_format: table

# Dataset file (overridden by --data and REPODASH_DATASET)
# dataset:
#   path: github_dataset.csv
#   delimiter: comma

# Initial sidebar selection (optional)
# filters:
#   languages:
#     - Go
#     - Rust
#   min_stars: 0
#   max_stars: 1000

# display:
#   table_rows: 20
#   star_step: 10
`
}

// SaveTo writes content to a specific path, creating directories as needed
func SaveTo(path string, content string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		return fmt.Errorf("failed to write file %s: %w", path, err)
	}

	return nil
}
