package cli

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/happyhackingspace/bow/internal/config"
)

// CLI encapsulates the command-line interface with its dependencies.
type CLI struct {
	version     string
	verbose     bool
	silent      bool
	initialized bool
	cfg         config.Config
	rootCmd     *cobra.Command
}

// New creates a new CLI instance with the given version string.
func New(version string) *CLI {
	c := &CLI{version: version}
	c.setupCommands()
	return c
}

// setupCommands initializes all CLI commands and their configurations.
func (c *CLI) setupCommands() {
	c.rootCmd = &cobra.Command{
		Use:           "bow",
		Short:         "Bag-of-words count vectorizer",
		Version:       c.version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.initApp()
		},
		Run: func(cmd *cobra.Command, args []string) {
			_ = cmd.Help()
		},
	}

	c.rootCmd.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "Enable verbose/debug output")
	c.rootCmd.PersistentFlags().BoolVarP(&c.silent, "silent", "s", false, "Suppress all logging")

	c.rootCmd.AddCommand(c.newFitCommand())
	c.rootCmd.AddCommand(c.newTransformCommand())
	c.rootCmd.AddCommand(c.newFeaturesCommand())
	c.rootCmd.AddCommand(c.newDemoCommand())
	c.rootCmd.AddCommand(c.newUpCommand())
}

// Run executes the CLI and returns any error.
func (c *CLI) Run() error {
	return c.rootCmd.Execute()
}

// initApp loads configuration and initializes logging.
func (c *CLI) initApp() error {
	if c.initialized {
		return nil
	}
	c.initialized = true

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	c.cfg = cfg

	level, _ := cfg.SlogLevel()
	if c.verbose {
		level = slog.LevelDebug
	}
	if c.silent {
		level = slog.Level(100)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})))
	return nil
}

// modelPath returns the --model flag value, falling back to BOW_MODEL.
func (c *CLI) modelPath(flag string) string {
	if flag != "" {
		return flag
	}
	return c.cfg.ModelPath
}
