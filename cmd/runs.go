package cmd

import (
	"os"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/atailhq/atail/internal/config"
	"github.com/atailhq/atail/internal/history"
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List recorded runs",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		store, err := history.Open(cfg.HistoryPath)
		if err != nil {
			return err
		}
		defer store.Close()

		runs, err := store.Runs()
		if err != nil {
			return err
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.SetHeader([]string{"ID", "Endpoint", "Started", "Items"})
		for _, r := range runs {
			table.Append([]string{
				strconv.FormatInt(r.ID, 10),
				r.Endpoint,
				r.StartedAt.Format(time.RFC3339),
				strconv.Itoa(r.Items),
			})
		}
		table.Render()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(runsCmd)
}
