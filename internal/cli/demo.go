package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/stockroom/internal/demo"
	"github.com/mesh-intelligence/stockroom/pkg/types"
)

func newDemoCmd(s *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run the sample scenarios",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "warehouse",
		Short: "Seed a warehouse and exercise the rejected operations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := demo.NewWarehouse(cmd.OutOrStdout(), time.Now)
			failures, err := w.Run()
			if err != nil {
				return err
			}
			s.logger.Info("warehouse scenario complete", "reported_failures", len(failures))
			return nil
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "logger",
		Short: "Save sample items, then reload them in a fresh session",
		Long:  "Logger persists the sample items to the items snapshot of the configured data directory and format, then reloads them.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := os.MkdirAll(s.dataDir, 0o755); err != nil {
				return fmt.Errorf("%w: create data directory: %w", types.ErrIO, err)
			}
			store, err := openStore[types.InventoryItem](s.cfg, types.CategoryItems, s.logger)
			if err != nil {
				return err
			}
			items, err := demo.RunSessions(store, cmd.OutOrStdout(), time.Now, s.logger)
			if err != nil {
				return fmt.Errorf("logger scenario: %w", err)
			}
			s.logger.Info("logger scenario complete", "restored", len(items))
			return nil
		},
	})
	return cmd
}
