package cmd

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/atailhq/atail/internal/config"
	"github.com/atailhq/atail/internal/server"
	"github.com/atailhq/atail/internal/transport"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the feed as a web page",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		stream, err := transport.Dial(ctx, cfg.Endpoint, "http://localhost/", transport.Config{
			PingInterval: 30 * time.Second,
			Logger:       log.New(os.Stderr, "[transport] ", log.LstdFlags),
		})
		if err != nil {
			return err
		}

		sink, done, err := recorder(cfg)
		if err != nil {
			return err
		}
		defer done()

		return server.New(stream, sink).Start(cfg.Listen)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("listen", config.DefaultListen, "listen address")
	cobra.CheckErr(viper.BindPFlag("listen", serveCmd.Flags().Lookup("listen")))
}
