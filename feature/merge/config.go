package merge

import (
	"fmt"

	"register-reconciler/core/revision"

	"github.com/spf13/viper"
)

// InputConfig describes one input workbook.
type InputConfig struct {
	// Path is the workbook file path.
	Path string `mapstructure:"path"`
	// RefColumn is the column carrying the drawing reference code.
	RefColumn string `mapstructure:"ref_column"`
	// TitleColumn optionally selects a title column to compare.
	TitleColumn string `mapstructure:"title_column"`
}

// CheckConfig configures the per-column field validators.
type CheckConfig struct {
	StatusColumn   string        `mapstructure:"status_column"`
	StatusValue    string        `mapstructure:"status_value"`
	ProjectColumn  string        `mapstructure:"project_column"`
	ProjectValue   string        `mapstructure:"project_value"`
	CustomChecks   []ColumnCheck `mapstructure:"custom_checks"`
	FilenameColumn string        `mapstructure:"filename_column"`
}

// ColumnCheck is one column-vs-expected-value validation.
type ColumnCheck struct {
	Column   string `mapstructure:"column"`
	Expected string `mapstructure:"expected"`
}

// CustomPatternConfig mirrors revision.CustomPattern for configuration.
type CustomPatternConfig struct {
	Prefix   string `mapstructure:"prefix"`
	CoreExpr string `mapstructure:"core_expr"`
	Padding  int    `mapstructure:"padding"`
	Base     int    `mapstructure:"base"`
	Start    string `mapstructure:"start"`
	Step     int    `mapstructure:"step"`
}

// RevisionConfig configures the revision reconciler for a run.
type RevisionConfig struct {
	Pattern           string               `mapstructure:"pattern"`
	FixedCode         string               `mapstructure:"fixed_code"`
	Custom            *CustomPatternConfig `mapstructure:"custom"`
	DescriptionCheck  bool                 `mapstructure:"description_check"`
	LatestDescription string               `mapstructure:"latest_description"`
	DateCheck         bool                 `mapstructure:"date_check"`
	DateStrict        bool                 `mapstructure:"date_strict"`
	DateFormat        string               `mapstructure:"date_format"`
	LatestDate        string               `mapstructure:"latest_date"`
	SourceAColumns    []string             `mapstructure:"source_a_columns"`
	SourceBColumns    []string             `mapstructure:"source_b_columns"`
	GenerateLatest    bool                 `mapstructure:"generate_latest"`
}

// Settings converts the configuration into the engine's immutable form.
func (rc RevisionConfig) Settings() *revision.Settings {
	s := &revision.Settings{
		Pattern:           revision.PatternChoice(rc.Pattern),
		FixedCode:         rc.FixedCode,
		DescriptionCheck:  rc.DescriptionCheck,
		LatestDescription: rc.LatestDescription,
		DateCheck:         rc.DateCheck,
		DateStrict:        rc.DateStrict,
		DateFormat:        rc.DateFormat,
		LatestDate:        rc.LatestDate,
		SourceAColumns:    rc.SourceAColumns,
		SourceBColumns:    rc.SourceBColumns,
		GenerateLatest:    rc.GenerateLatest,
	}
	if rc.Custom != nil {
		s.Custom = &revision.CustomPattern{
			Prefix:   rc.Custom.Prefix,
			CoreExpr: rc.Custom.CoreExpr,
			Padding:  rc.Custom.Padding,
			Base:     rc.Custom.Base,
			Start:    rc.Custom.Start,
			Step:     rc.Custom.Step,
		}
	}
	return s
}

// RunConfig describes one complete merge job.
type RunConfig struct {
	Inputs   []InputConfig  `mapstructure:"inputs"`
	Output   string         `mapstructure:"output"`
	Checks   CheckConfig    `mapstructure:"checks"`
	Revision RevisionConfig `mapstructure:"revision"`
}

// LoadRunConfig reads a merge job configuration file (YAML) with Viper.
func LoadRunConfig(path string) (*RunConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read run config: %w", err)
	}

	var cfg RunConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse run config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the parts every run needs before any file is opened.
func (cfg *RunConfig) Validate() error {
	if len(cfg.Inputs) < 2 {
		return fmt.Errorf("at least two inputs are required, got %d", len(cfg.Inputs))
	}
	for i, in := range cfg.Inputs {
		if in.Path == "" {
			return fmt.Errorf("input %d has no path", i+1)
		}
		if in.RefColumn == "" {
			return fmt.Errorf("input %d has no ref_column", i+1)
		}
	}
	if cfg.Output == "" {
		return fmt.Errorf("output path is required")
	}
	return nil
}
