// Package cli implements the stockroom command-line interface.
package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/stockroom/pkg/stockroom"
	"github.com/mesh-intelligence/stockroom/pkg/types"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir string
	dataDir   string
	format    string
	logLevel  string
	jsonMode  bool
}

// session is the resolved state shared by the subcommands of one invocation.
type session struct {
	flags rootFlags

	configDir string
	dataDir   string
	cfg       types.Config
	logger    *slog.Logger
}

// NewRootCmd creates the top-level "stockroom" command with global flags
// and all subcommands registered.
func NewRootCmd() *cobra.Command {
	s := &session{}

	root := &cobra.Command{
		Use:     "stockroom",
		Short:   "Keyed inventory repositories with snapshot persistence",
		Long:    "Stockroom keeps electronics, groceries and logged items in keyed\nrepositories and persists each category as a snapshot.",
		Version: stockroom.Version,
		// Do not print usage on errors returned by subcommands.
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "version" {
				s.logger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.Level(math.MaxInt)}))
				return nil
			}
			if err := s.resolve(cmd.ErrOrStderr()); err != nil {
				return err
			}
			s.logger.Info("command started", "command", cmd.CommandPath())
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			s.logger.Info("command finished", "command", cmd.CommandPath())
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&s.flags.configDir, "config-dir", "", "configuration directory (default: platform config dir)")
	pf.StringVar(&s.flags.dataDir, "data-dir", "", "data directory (default: $(CWD)/.stockroom-data)")
	pf.StringVar(&s.flags.format, "format", "", "snapshot format: json, jsonl, yaml or sqlite (default: json)")
	pf.StringVar(&s.flags.logLevel, "log-level", "", "log level: debug, info, warn or error (default: warn)")
	pf.BoolVar(&s.flags.jsonMode, "json", false, "output in JSON format")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newInitCmd(s))
	root.AddCommand(newAddCmd(s))
	root.AddCommand(newGetCmd(s))
	root.AddCommand(newListCmd(s))
	root.AddCommand(newRemoveCmd(s))
	root.AddCommand(newSetQuantityCmd(s))
	root.AddCommand(newFindCmd(s))
	root.AddCommand(newHistoryCmd(s))
	root.AddCommand(newDemoCmd(s))

	return root
}

// resolve loads configuration, resolves directories and builds the logger.
func (s *session) resolve(stderr io.Writer) error {
	loadDotEnv()

	cfg, err := loadConfig(s.flags)
	if err != nil {
		return err
	}
	s.configDir = cfg.configDir
	s.dataDir = cfg.Config.DataDir
	s.cfg = cfg.Config

	level, err := parseLevel(cfg.logLevel)
	if err != nil {
		return err
	}
	s.logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})).
		With("run_id", uuid.NewString())
	return nil
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, types.InvalidValue(fmt.Sprintf("Log level %q is not one of debug, info, warn, error.", s))
	}
	return level, nil
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
	os.Exit(exitSuccess)
}

// exitCode maps an error to the process exit code. Storage failures are
// system errors; everything else was caused by the invocation.
func exitCode(err error) int {
	switch {
	case err == nil:
		return exitSuccess
	case errors.Is(err, types.ErrIO), errors.Is(err, types.ErrDeserialization):
		return exitSysError
	default:
		return exitUserError
	}
}
