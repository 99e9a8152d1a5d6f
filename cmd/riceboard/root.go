package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/arthur-debert/riceboard/store"
)

// CLI wires the cobra command tree to the feature store, with Viper
// layering flags over RICEBOARD_* environment variables over the
// config file
type CLI struct {
	rootCmd   *cobra.Command
	viperInst *viper.Viper
}

// NewCLI creates the fully-wired command tree
func NewCLI() *CLI {
	cli := &CLI{viperInst: viper.New()}
	cli.setupViperConfig()
	cli.createRootCommand()
	cli.addCommands()
	return cli
}

// Execute runs the CLI
func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

// setupViperConfig configures environment variables and config file
// discovery
func (cli *CLI) setupViperConfig() {
	if configFile := os.Getenv("RICEBOARD_CONFIG"); configFile != "" {
		cli.viperInst.SetConfigFile(configFile)
	} else {
		cli.viperInst.SetConfigName("riceboard")
		cli.viperInst.SetConfigType("yaml")
		cli.viperInst.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			cli.viperInst.AddConfigPath(filepath.Join(home, ".config", "riceboard"))
		}
	}

	cli.viperInst.AutomaticEnv()
	cli.viperInst.SetEnvPrefix("RICEBOARD")
	cli.viperInst.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	cli.viperInst.SetDefault("store", defaultStorePath())
	cli.viperInst.SetDefault("log-level", "warn")

	// Missing config file is fine, flags and env still apply
	_ = cli.viperInst.ReadInConfig()
}

func (cli *CLI) createRootCommand() {
	cli.rootCmd = &cobra.Command{
		Use:   "riceboard",
		Short: "Riceboard - RICE feature prioritization",
		Long: `Riceboard keeps a small list of product features scored with the RICE
formula (Reach x Impact x Confidence / Effort) and always shown in
descending priority order.

Configuration sources (in order of precedence):
1. Command line flags
2. Environment variables (RICEBOARD_*)
3. Config file (RICEBOARD_CONFIG, ./riceboard.yaml or
   ~/.config/riceboard/riceboard.yaml)

Examples:
  riceboard add "Dark mode" --reach 400 --impact High --confidence 80% --effort M
  riceboard list
  riceboard import backlog.csv --replace
  riceboard export --format json -o backlog.json`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := cli.viperInst.BindPFlags(cmd.Flags()); err != nil {
				return err
			}
			return initLogging(cli.viperInst.GetString("log-level"), cli.viperInst.GetBool("verbose"))
		},
	}

	pf := cli.rootCmd.PersistentFlags()
	pf.String("store", defaultStorePath(), "Path to the feature state file")
	pf.String("log-level", "warn", "Log level: debug|info|warn|error")
	pf.BoolP("verbose", "v", false, "Also log to stderr")
}

func (cli *CLI) addCommands() {
	cli.rootCmd.AddCommand(
		cli.newAddCommand(),
		cli.newListCommand(),
		cli.newSetCommand(),
		cli.newDeleteCommand(),
		cli.newImportCommand(),
		cli.newExportCommand(),
		cli.newResetCommand(),
	)
}

// openStore opens the configured state file. On a schema version
// mismatch it refuses with a hint towards reset.
func (cli *CLI) openStore() (*store.Store, error) {
	path := cli.viperInst.GetString("store")
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create store directory: %w", err)
		}
	}
	s, err := store.Open(path)
	if errors.Is(err, store.ErrVersionMismatch) {
		return nil, fmt.Errorf("%s was written by an incompatible version; run 'riceboard reset --force' to start over", path)
	}
	return s, err
}

func defaultStorePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "riceboard.json"
	}
	return filepath.Join(home, ".local", "share", "riceboard", "riceboard.json")
}
