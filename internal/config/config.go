package config

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"toplist/internal/rank"
	"toplist/internal/utils"
)

// Columns separates identifier columns from ranking criteria. Descriptive
// columns are carried into every result table; excluded columns (the
// provider) never appear in output. Together they form the non-trait set.
type Columns struct {
	Descriptive []string `mapstructure:"descriptive" yaml:"descriptive"`
	Excluded    []string `mapstructure:"excluded" yaml:"excluded"`
}

// Global is the run configuration. Breeds, Files and Top are parallel lists
// zipped into one BreedSpec per breed; Validate checks them before any
// processing starts.
type Global struct {
	Breeds      []string `mapstructure:"breeds" yaml:"breeds"`
	Files       []string `mapstructure:"files" yaml:"files"`
	Top         []int    `mapstructure:"top" yaml:"top"`
	Traits      []string `mapstructure:"traits" yaml:"traits,omitempty"`
	Delimiter   string   `mapstructure:"delimiter" yaml:"delimiter"`
	Columns     Columns  `mapstructure:"columns" yaml:"columns"`
	MappingFile string   `mapstructure:"mapping_file" yaml:"mapping_file"`
	Output      string   `mapstructure:"output" yaml:"output"`
}

// Load loads configuration from file, env, and defaults.
// Precedence: flags (cfgFile) > env > config file > defaults.
// TOPLIST_* env overrides apply to the defaulted scalar keys (delimiter,
// mapping_file, output); the breed lists come from the config file.
func Load(cfgFile string) (*Global, error) {
	v := viper.New()
	v.SetEnvPrefix("TOPLIST")
	v.AutomaticEnv()

	v.SetDefault("delimiter", ";")
	v.SetDefault("columns.descriptive", []string{"Name", "Lebensnummer"})
	v.SetDefault("columns.excluded", []string{"Anbieter"})
	v.SetDefault("mapping_file", "merkmale.csv")
	v.SetDefault("output", "topliste.xlsx")

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", cfgFile, err)
		}
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("toplist")
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	var c Global
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &c, nil
}

// Validate checks the parallel breed lists and the delimiter before the run
// starts. A mismatch here is a configuration error and aborts before any
// file is touched.
func (c *Global) Validate() error {
	if len(c.Breeds) == 0 {
		return errors.New("no breeds configured")
	}
	if len(c.Files) != len(c.Breeds) || len(c.Top) != len(c.Breeds) {
		return fmt.Errorf("breeds, files and top must have equal length, got %d/%d/%d",
			len(c.Breeds), len(c.Files), len(c.Top))
	}
	seen := make(map[string]struct{}, len(c.Breeds))
	for i, b := range c.Breeds {
		if b == "" {
			return fmt.Errorf("breeds[%d] is empty", i)
		}
		if _, ok := seen[b]; ok {
			return fmt.Errorf("duplicate breed %q", b)
		}
		seen[b] = struct{}{}
	}
	for i, n := range c.Top {
		if n < 1 {
			return fmt.Errorf("top[%d] must be at least 1, got %d", i, n)
		}
	}
	if utf8.RuneCountInString(c.Delimiter) != 1 {
		return fmt.Errorf("delimiter must be a single character, got %q", c.Delimiter)
	}
	return nil
}

// DelimiterRune returns the field delimiter. Call Validate first.
func (c *Global) DelimiterRune() rune {
	r, _ := utf8.DecodeRuneInString(c.Delimiter)
	return r
}

// Specs zips the parallel breed lists into one spec per breed.
func (c *Global) Specs() []rank.BreedSpec {
	specs := make([]rank.BreedSpec, len(c.Breeds))
	for i, b := range c.Breeds {
		specs[i] = rank.BreedSpec{Breed: b, Path: c.Files[i], TopN: c.Top[i]}
	}
	return specs
}

// NonTrait returns every identifier column that must never be treated as a
// ranking criterion.
func (c *Global) NonTrait() []string {
	out := make([]string, 0, len(c.Columns.Descriptive)+len(c.Columns.Excluded))
	out = append(out, c.Columns.Descriptive...)
	out = append(out, c.Columns.Excluded...)
	return out
}

// Save writes the configuration to path as YAML using an atomic write.
func Save(c *Global, path string) error {
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := utils.SafeWriteFile(path, b); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
