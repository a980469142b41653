package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/atailhq/atail/internal/config"
	"github.com/atailhq/atail/internal/feed"
	"github.com/atailhq/atail/internal/history"
	"github.com/atailhq/atail/internal/trajectory"
	"github.com/atailhq/atail/internal/ui"
)

var replayRunID int64

var replayCmd = &cobra.Command{
	Use:   "replay [trajectory file]",
	Short: "Replay a saved trajectory file or a recorded run",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			return fmt.Errorf("stdout is not a terminal")
		}

		var items []feed.Item
		switch {
		case replayRunID > 0:
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			store, err := history.Open(cfg.HistoryPath)
			if err != nil {
				return err
			}
			defer store.Close()
			if items, err = store.Items(replayRunID); err != nil {
				return err
			}
		case len(args) == 1:
			var err error
			if items, err = trajectory.LoadFile(args[0]); err != nil {
				return err
			}
		default:
			return fmt.Errorf("pass a trajectory file or --run")
		}

		if len(items) == 0 {
			return fmt.Errorf("nothing to replay")
		}
		return ui.Replay(items)
	},
}

func init() {
	rootCmd.AddCommand(replayCmd)
	replayCmd.Flags().Int64Var(&replayRunID, "run", 0, "recorded run ID to replay (see \"atail runs\")")
}
