package types

import "errors"

// Config selects where and how snapshots are persisted.
type Config struct {
	Format  string `json:"format" yaml:"format"`
	DataDir string `json:"data_dir" yaml:"data_dir"`
	// Keep is the number of snapshot generations the sqlite format retains.
	// Zero means DefaultKeep.
	Keep int `json:"keep_generations" yaml:"keep_generations"`
}

// Supported snapshot formats.
const (
	FormatJSON   = "json"
	FormatJSONL  = "jsonl"
	FormatYAML   = "yaml"
	FormatSQLite = "sqlite"
)

// DefaultKeep is the number of sqlite generations kept when Config.Keep is 0.
const DefaultKeep = 5

// Config validation errors.
var (
	ErrFormatEmpty   = errors.New("format must not be empty")
	ErrFormatUnknown = errors.New("unknown snapshot format")
	ErrKeepInvalid   = errors.New("keep_generations must not be negative")
)

var knownFormats = map[string]bool{
	FormatJSON:   true,
	FormatJSONL:  true,
	FormatYAML:   true,
	FormatSQLite: true,
}

// Validate checks that the Config is well-formed and returns one of the
// sentinel errors above on failure.
func (c Config) Validate() error {
	if c.Format == "" {
		return ErrFormatEmpty
	}
	if !knownFormats[c.Format] {
		return ErrFormatUnknown
	}
	if c.Keep < 0 {
		return ErrKeepInvalid
	}
	return nil
}

// KeepGenerations returns Keep, substituting DefaultKeep for zero.
func (c Config) KeepGenerations() int {
	if c.Keep == 0 {
		return DefaultKeep
	}
	return c.Keep
}
