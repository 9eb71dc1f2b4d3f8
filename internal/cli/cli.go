// Package cli implements the tmtree command-line interface.
//
// The root command carries --verbose and --config; subcommands open the
// interactive treemap (view), print a computed layout (rects) or record a
// snapshot for later viewing (scan).
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/lumipallolabs/tmtree/internal/config"
	"github.com/lumipallolabs/tmtree/internal/logging"
)

var (
	version = "dev"
	commit  string
)

// SetVersion sets the version information displayed by --version
func SetVersion(v, c string) {
	version = v
	commit = c
}

// CLI holds shared state for all commands.
type CLI struct {
	Logger     *log.Logger
	configPath string
	verbose    bool
}

// New creates a CLI logging to w
func New(w io.Writer) *CLI {
	return &CLI{
		Logger:     logging.New(w, log.InfoLevel),
		configPath: config.DefaultPath(),
	}
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "tmtree",
		Short:        "tmtree shows a directory tree as an editable treemap",
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if c.verbose {
				c.Logger.SetLevel(log.DebugLevel)
			}
			cmd.SetContext(logging.WithLogger(cmd.Context(), c.Logger))
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("tmtree %s (%s)\n", version, commit))
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&c.configPath, "config", c.configPath, "config file")

	root.AddCommand(c.viewCommand())
	root.AddCommand(c.rectsCommand())
	root.AddCommand(c.scanCommand())

	return root
}

// Execute runs args against the root command
func (c *CLI) Execute(ctx context.Context, args []string) error {
	root := c.RootCommand()
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}

// loadConfig reads the config file and applies the flags set on cmd
func (c *CLI) loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return cfg, err
	}
	flags := cmd.Flags()
	if flags.Lookup("workers") != nil && flags.Changed("workers") {
		cfg.Workers, _ = flags.GetInt("workers")
	}
	if flags.Lookup("width") != nil && flags.Changed("width") {
		cfg.Width, _ = flags.GetInt("width")
	}
	if flags.Lookup("height") != nil && flags.Changed("height") {
		cfg.Height, _ = flags.GetInt("height")
	}
	if flags.Lookup("expand-all") != nil && flags.Changed("expand-all") {
		cfg.ExpandAll, _ = flags.GetBool("expand-all")
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	logging.FromContext(cmd.Context()).Debug("config loaded", "path", c.configPath, "workers", cfg.Workers)
	return cfg, nil
}

// scanPath returns the path argument, defaulting to the working directory
func scanPath(args []string) string {
	if len(args) == 0 {
		return "."
	}
	return args[0]
}
