package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/lumipallolabs/tmtree/internal/core"
	"github.com/lumipallolabs/tmtree/internal/ui"
)

// viewCommand opens the interactive treemap
func (c *CLI) viewCommand() *cobra.Command {
	var (
		cached  bool
		workers int
	)

	cmd := &cobra.Command{
		Use:   "view [path]",
		Short: "Open the interactive treemap of a directory",
		Long: `Open the interactive treemap of a directory.

Click a block to select it, then expand, collapse, resize or move it with
the keys listed under '?'. With --cached the latest snapshot written by
'scan' is shown instead of walking the directory again.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig(cmd)
			if err != nil {
				return err
			}
			ctrl := core.NewController(scanPath(args), cfg)
			c.Logger.Debug("opening treemap", "path", ctrl.ScanPath(), "cached", cached)

			p := tea.NewProgram(
				ui.NewApp(ctrl, version, cached),
				tea.WithAltScreen(),
				tea.WithMouseAllMotion(),
				tea.WithContext(cmd.Context()),
			)
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("run treemap: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&cached, "cached", false, "show the latest snapshot instead of scanning")
	cmd.Flags().IntVarP(&workers, "workers", "w", 0, "scanner goroutines (default from config)")

	return cmd
}
