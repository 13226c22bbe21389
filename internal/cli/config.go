package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/stockroom/internal/paths"
	"github.com/mesh-intelligence/stockroom/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	cfgKeyFormat   = "format"
	cfgKeyDataDir  = "data_dir"
	cfgKeyLogLevel = "log_level"
	cfgKeyKeep     = "keep_generations"

	// EnvFormat overrides the default snapshot format.
	EnvFormat = "STOCKROOM_FORMAT"

	defaultLogLevel = "warn"
)

// configFile holds the structure written to config.yaml.
type configFile struct {
	Format          string `yaml:"format"`
	DataDir         string `yaml:"data_dir,omitempty"`
	LogLevel        string `yaml:"log_level"`
	KeepGenerations int    `yaml:"keep_generations"`
}

// resolvedConfig is the outcome of merging flags, config.yaml, environment
// and defaults.
type resolvedConfig struct {
	types.Config
	configDir string
	logLevel  string
}

// loadDotEnv loads .env from the working directory into the environment.
// Variables already set are not overridden; a missing file is ignored.
func loadDotEnv() {
	_ = godotenv.Load()
}

// loadConfig resolves the configuration directory, reads config.yaml from it
// with Viper and applies the precedence flag > config.yaml > env > default.
// A missing config.yaml is not an error.
func loadConfig(flags rootFlags) (resolvedConfig, error) {
	configDir, err := paths.ResolveConfigDir(flags.configDir)
	if err != nil {
		return resolvedConfig{}, fmt.Errorf("%w: resolve config dir: %w", types.ErrIO, err)
	}

	v := viper.New()
	v.SetDefault(cfgKeyLogLevel, defaultLogLevel)
	v.SetDefault(cfgKeyKeep, types.DefaultKeep)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return resolvedConfig{}, types.InvalidValue(fmt.Sprintf("Cannot read %s: %s", filepath.Join(configDir, configFileExt), err))
		}
	}

	dataDir, err := paths.ResolveDataDir(flags.dataDir, v.GetString(cfgKeyDataDir))
	if err != nil {
		return resolvedConfig{}, fmt.Errorf("%w: resolve data dir: %w", types.ErrIO, err)
	}

	rc := resolvedConfig{
		Config: types.Config{
			Format:  firstNonEmpty(flags.format, inConfig(v, cfgKeyFormat), os.Getenv(EnvFormat), types.FormatJSON),
			DataDir: dataDir,
			Keep:    v.GetInt(cfgKeyKeep),
		},
		configDir: configDir,
		logLevel:  firstNonEmpty(flags.logLevel, v.GetString(cfgKeyLogLevel)),
	}
	rc.Format = strings.ToLower(rc.Format)
	if err := rc.Validate(); err != nil {
		return resolvedConfig{}, types.InvalidValue(fmt.Sprintf("Invalid configuration: %s (format %q, keep_generations %d).", err, rc.Format, rc.Keep))
	}
	return rc, nil
}

// inConfig returns key's value only when config.yaml sets it, so that the
// environment can still supply it otherwise.
func inConfig(v *viper.Viper, key string) string {
	if !v.InConfig(key) {
		return ""
	}
	return v.GetString(key)
}

func firstNonEmpty(values ...string) string {
	for _, s := range values {
		if s != "" {
			return s
		}
	}
	return ""
}

// writeConfigIfMissing creates config.yaml from cfg if the file does not
// exist. If it already exists, the function returns nil (idempotent).
func writeConfigIfMissing(path string, cfg configFile) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return false, fmt.Errorf("stat config file: %w", err)
	}

	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return false, fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return false, err
	}
	return true, nil
}
