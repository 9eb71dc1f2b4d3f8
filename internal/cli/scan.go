package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/lumipallolabs/tmtree/internal/cache"
	"github.com/lumipallolabs/tmtree/internal/config"
	"github.com/lumipallolabs/tmtree/internal/model"
	"github.com/lumipallolabs/tmtree/internal/scanner"
)

// scanCommand walks a directory and stores a snapshot
func (c *CLI) scanCommand() *cobra.Command {
	var workers int

	cmd := &cobra.Command{
		Use:   "scan [path]",
		Short: "Scan a directory and save a snapshot",
		Long: `Scan a directory and save a snapshot to the cache directory.

The snapshot can be opened later with 'view --cached'.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig(cmd)
			if err != nil {
				return err
			}
			path, err := filepath.Abs(scanPath(args))
			if err != nil {
				return err
			}

			start := time.Now()
			tree, root, err := c.scan(cmd.Context(), cfg, path)
			if err != nil {
				return err
			}
			if err := cache.New(cfg.CacheDir).Save(cache.Key(path), tree, root); err != nil {
				return fmt.Errorf("save snapshot: %w", err)
			}

			c.Logger.Infof("Scanned %s: %d nodes, %d bytes (%s)", path, tree.Len(), tree.Size(root),
				time.Since(start).Round(time.Millisecond))
			return nil
		},
	}

	cmd.Flags().IntVarP(&workers, "workers", "w", 0, "scanner goroutines (default from config)")

	return cmd
}

// scan walks path with the configured scanner and logs its progress
func (c *CLI) scan(ctx context.Context, cfg config.Config, path string) (*model.Tree, model.NodeID, error) {
	sc := scanner.NewWalker(cfg.Workers, model.WithColors(model.RandomColors(cfg.Seed)))

	done := make(chan struct{})
	go func() {
		defer close(done)
		for p := range sc.Progress() {
			c.Logger.Debug("scanning", "files", p.FilesScanned, "dirs", p.DirsScanned, "bytes", p.BytesFound)
		}
	}()

	tree, root, err := sc.Scan(ctx, path)
	<-done
	if err != nil {
		return nil, model.NoNode, fmt.Errorf("scan %s: %w", path, err)
	}
	return tree, root, nil
}
