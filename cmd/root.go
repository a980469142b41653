package cmd

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/atailhq/atail/internal/config"
	"github.com/atailhq/atail/internal/feed"
	"github.com/atailhq/atail/internal/history"
	"github.com/atailhq/atail/internal/ui"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "atail",
	Short: "Tail a live agent run",
	Long: `atail attaches to an agent runner's websocket feed and renders the run as
a live message feed: the agent's thoughts and actions on one side, the
environment's observations on the other. Run it bare for the terminal UI,
or use "atail serve" to watch the same feed in a browser.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/atail/config.toml)")
	rootCmd.PersistentFlags().String("endpoint", config.DefaultEndpoint, "runner websocket endpoint")
	rootCmd.PersistentFlags().Bool("record", false, "record received items to the history database")
	cobra.CheckErr(viper.BindPFlag("endpoint", rootCmd.PersistentFlags().Lookup("endpoint")))
	cobra.CheckErr(viper.BindPFlag("record", rootCmd.PersistentFlags().Lookup("record")))
}

// initConfig reads in the config file and ATAIL_ environment variables.
func initConfig() {
	viper.SetEnvPrefix("ATAIL")
	viper.AutomaticEnv()

	home, err := os.UserHomeDir()
	cobra.CheckErr(err)
	defaults := config.NewDefaultConfig(filepath.Join(home, ".local", "share", "atail"))
	viper.SetDefault("endpoint", defaults.Endpoint)
	viper.SetDefault("listen", defaults.Listen)
	viper.SetDefault("history_path", defaults.HistoryPath)

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(filepath.Join(home, ".config", "atail"))
		viper.SetConfigName("config")
		viper.SetConfigType("toml")
	}
	_ = viper.ReadInConfig() // a missing config file is fine
}

func runTUI() error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("stdout is not a terminal; use \"atail serve\" for the web feed")
	}
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	sink, done, err := recorder(cfg)
	if err != nil {
		return err
	}
	defer done()
	return ui.Run(cfg.Endpoint, sink)
}

// recorder opens the history store and starts a run when recording is
// enabled; the returned sink is nil otherwise.
func recorder(cfg config.Config) (func(feed.Item), func(), error) {
	if !cfg.Record {
		return nil, func() {}, nil
	}
	store, err := history.Open(cfg.HistoryPath)
	if err != nil {
		return nil, nil, err
	}
	runID, err := store.BeginRun(cfg.Endpoint)
	if err != nil {
		store.Close()
		return nil, nil, err
	}
	logger := log.New(os.Stderr, "[history] ", log.LstdFlags)
	sink := func(it feed.Item) {
		if err := store.Append(runID, it); err != nil {
			logger.Printf("append: %v", err)
		}
	}
	return sink, func() { store.Close() }, nil
}
