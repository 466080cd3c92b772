package contract

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/bmeddeb/gitlens/schema"
)

// Default values for configuration.
const (
	DefaultResultLimit = 25
	MaxResultLimit     = 1000
	DefaultPrecision   = 2
)

// DateTimeFormat is the default date time representation.
var DateTimeFormat = time.RFC3339

// Config holds the runtime configuration for an analysis invocation.
// This struct remains the "final, validated" config.
type Config struct {
	RepoPath  string
	Window    schema.QueryWindow
	Period    schema.TimePeriod
	FilePath  string // evolution target
	BaseRef   string // divergence source ref
	TargetRef string // divergence target ref

	ResultLimit int
	Precision   int
	Output      schema.OutputMode
	OutputFile  string
	ParquetFile string
	UseColors   bool
	Width       int // terminal width override (0 = auto-detect)

	StoreBackend schema.DatabaseBackend
	StoreConnect string // Please use env var as this is plaintext
}

// Clone returns a shallow copy of the config for per-call overrides.
func (c *Config) Clone() *Config {
	dup := *c
	return &dup
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// This is set manually from positional args, so no tag
	RepoPathStr string

	Limit        int    `mapstructure:"limit"`
	Skip         int    `mapstructure:"skip"`
	Merges       string `mapstructure:"merges"`
	Author       string `mapstructure:"author"`
	Filter       string `mapstructure:"filter"`
	Since        string `mapstructure:"since"`
	Until        string `mapstructure:"until"`
	Period       string `mapstructure:"period"`
	Precision    int    `mapstructure:"precision"`
	Output       string `mapstructure:"output"`
	OutputFile   string `mapstructure:"output-file"`
	ParquetFile  string `mapstructure:"parquet-file"`
	Color        string `mapstructure:"color"`
	Width        int    `mapstructure:"width"`
	StoreBackend string `mapstructure:"store-backend"`
	StoreConnect string `mapstructure:"store-db-connect"`
}

// ParseTimeBound parses a time bound given either as a unix timestamp or an
// RFC3339 date, returning unix seconds. Empty input means "unbounded".
func ParseTimeBound(value string) (int64, error) {
	if value == "" {
		return 0, nil
	}
	if ts, err := strconv.ParseInt(value, 10, 64); err == nil {
		if ts < 0 {
			return 0, schema.NewConfigError("time bound must not be negative: %s", value)
		}
		return ts, nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return 0, schema.NewConfigError("invalid time bound %q (expected unix seconds or RFC3339)", value)
	}
	return t.Unix(), nil
}

// ProcessAndValidate converts the raw input into the validated Config.
// Malformed values fail here, before any history query is issued.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	repoPath, err := filepath.Abs(input.RepoPathStr)
	if err != nil {
		return schema.NewConfigError("cannot resolve repository path %q: %v", input.RepoPathStr, err)
	}
	if info, err := os.Stat(repoPath); err != nil || !info.IsDir() {
		return schema.NewConfigError("repository path %q is not a directory", input.RepoPathStr)
	}
	cfg.RepoPath = repoPath

	window := schema.NewQueryWindow()
	window.MaxResults = input.Limit
	window.Skip = input.Skip
	window.AuthorFilter = input.Author
	window.PathFilter = input.Filter
	if input.Merges != "" {
		includeMerges, err := ParseBoolString(input.Merges)
		if err != nil {
			return schema.NewConfigError("invalid merges value: %v", err)
		}
		window.IncludeMerges = includeMerges
	}
	if window.Since, err = ParseTimeBound(input.Since); err != nil {
		return fmt.Errorf("invalid --since: %w", err)
	}
	if window.Until, err = ParseTimeBound(input.Until); err != nil {
		return fmt.Errorf("invalid --until: %w", err)
	}
	if err := window.Validate(); err != nil {
		return err
	}
	cfg.Window = window

	if cfg.Period, err = schema.ParsePeriod(valueOr(input.Period, string(schema.DayPeriod))); err != nil {
		return err
	}
	if cfg.Output, err = schema.ParseOutputMode(input.Output); err != nil {
		return err
	}
	if cfg.StoreBackend, err = schema.ParseDatabaseBackend(input.StoreBackend); err != nil {
		return err
	}
	cfg.StoreConnect = input.StoreConnect

	if input.Precision < 0 || input.Precision > 6 {
		return schema.NewConfigError("precision must be between 0 and 6, got %d", input.Precision)
	}
	cfg.Precision = input.Precision

	limit := input.Limit
	if limit == 0 {
		limit = DefaultResultLimit
	}
	if limit > MaxResultLimit {
		return schema.NewConfigError("limit cannot exceed %d", MaxResultLimit)
	}
	cfg.ResultLimit = limit

	cfg.OutputFile = input.OutputFile
	cfg.ParquetFile = input.ParquetFile
	cfg.Width = input.Width

	cfg.UseColors = true
	if input.Color != "" {
		if cfg.UseColors, err = ParseBoolString(input.Color); err != nil {
			return schema.NewConfigError("invalid color value: %v", err)
		}
	}

	return nil
}

func valueOr(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
