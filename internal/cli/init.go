package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/stockroom/pkg/types"
)

func newInitCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize stockroom storage",
		Long:  "Create the configuration and data directories and write a default config.yaml if none exists.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(cmd, s)
		},
	}
}

func runInit(cmd *cobra.Command, s *session) error {
	if err := os.MkdirAll(s.configDir, 0o755); err != nil {
		return fmt.Errorf("%w: create config directory: %w", types.ErrIO, err)
	}

	configPath := filepath.Join(s.configDir, configFileExt)
	written, err := writeConfigIfMissing(configPath, configFile{
		Format:          s.cfg.Format,
		DataDir:         s.flags.dataDir,
		LogLevel:        firstNonEmpty(s.flags.logLevel, defaultLogLevel),
		KeepGenerations: s.cfg.KeepGenerations(),
	})
	if err != nil {
		return fmt.Errorf("%w: write config: %w", types.ErrIO, err)
	}
	if written {
		s.logger.Info("wrote default config", "path", configPath)
	}

	if err := os.MkdirAll(s.dataDir, 0o755); err != nil {
		return fmt.Errorf("%w: create data directory: %w", types.ErrIO, err)
	}

	if s.flags.jsonMode {
		return printValue(cmd.OutOrStdout(), true, map[string]string{
			"config_dir": s.configDir,
			"data_dir":   s.dataDir,
			"format":     s.cfg.Format,
		})
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Stockroom initialized successfully")
	return nil
}
