package scanner

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/charlievieth/fastwalk"
	"github.com/lumipallolabs/tmtree/internal/logging"
	"github.com/lumipallolabs/tmtree/internal/model"
)

// progressEvery is how many files pass between progress reports
const progressEvery = 1000

// Walker implements parallel filesystem scanning
type Walker struct {
	workers    int
	opts       []model.Option
	progressCh chan Progress
	progress   Progress
}

// NewWalker creates a new parallel filesystem walker. opts are passed to
// the model.Tree it builds; the FileSystem variant is always set.
func NewWalker(workers int, opts ...model.Option) *Walker {
	if workers < 1 {
		workers = 8
	}
	return &Walker{
		workers:    workers,
		opts:       opts,
		progressCh: make(chan Progress, 100),
	}
}

// Progress returns the progress channel
func (w *Walker) Progress() <-chan Progress {
	return w.progressCh
}

// nodeEntry is a temporary structure for building the tree
type nodeEntry struct {
	path  string
	name  string
	size  int64
	isDir bool
}

// Scan scans the filesystem starting at root using fastwalk
func (w *Walker) Scan(ctx context.Context, root string) (*model.Tree, model.NodeID, error) {
	defer close(w.progressCh)

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, model.NoNode, err
	}
	info, err := os.Stat(absRoot)
	if err != nil {
		return nil, model.NoNode, fmt.Errorf("stat root: %w", err)
	}

	opts := append(append([]model.Option{}, w.opts...), model.WithVariant(FileSystem{}))
	tree := model.New(opts...)
	if !info.IsDir() {
		return tree, tree.NewLeaf(info.Name(), info.Size()), nil
	}

	// Get platform-specific root info for mount point detection
	rootInfo := getPlatformRootInfo(absRoot)

	// Use channels for lock-free entry collection
	entryChan := make(chan nodeEntry, 50000)
	var entries []nodeEntry
	var entriesWg sync.WaitGroup

	entriesWg.Add(1)
	go func() {
		defer entriesWg.Done()
		for e := range entryChan {
			entries = append(entries, e)
		}
	}()

	// Track seen paths/inodes for deduplication
	var seenItems sync.Map

	conf := &fastwalk.Config{
		Follow:     false, // Don't follow symlinks
		NumWorkers: w.workers,
	}

	walkErr := fastwalk.Walk(conf, absRoot, func(path string, d fs.DirEntry, err error) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if err != nil {
			logging.Scanner.Debugf("skip %s: %v", path, err)
			return nil
		}
		if path == absRoot {
			return nil
		}

		if d.IsDir() {
			if shouldSkipDir(path, d, rootInfo, &seenItems) {
				return fs.SkipDir
			}
		}

		var size int64
		if d.IsDir() {
			atomic.AddInt64(&w.progress.DirsScanned, 1)
		} else {
			info, err := d.Info()
			if err != nil {
				return nil
			}

			size = getFileSize(info, &seenItems)
			if size < 0 {
				// Negative means skip (e.g., already counted hard link)
				return nil
			}

			files := atomic.AddInt64(&w.progress.FilesScanned, 1)
			atomic.AddInt64(&w.progress.BytesFound, size)
			if files%progressEvery == 0 {
				w.report()
			}
		}

		entryChan <- nodeEntry{
			path:  path,
			name:  d.Name(),
			size:  size,
			isDir: d.IsDir(),
		}
		return nil
	})

	close(entryChan)
	entriesWg.Wait()

	if walkErr != nil {
		return nil, model.NoNode, fmt.Errorf("walk %s: %w", absRoot, walkErr)
	}

	rootID := buildTree(tree, absRoot, filepath.Base(absRoot), entries)
	w.report()
	logging.Scanner.Debugf("scanned %s: %d files, %d dirs", absRoot,
		atomic.LoadInt64(&w.progress.FilesScanned), atomic.LoadInt64(&w.progress.DirsScanned))
	return tree, rootID, nil
}

// report sends a progress snapshot without blocking the walk
func (w *Walker) report() {
	p := Progress{
		FilesScanned: atomic.LoadInt64(&w.progress.FilesScanned),
		DirsScanned:  atomic.LoadInt64(&w.progress.DirsScanned),
		BytesFound:   atomic.LoadInt64(&w.progress.BytesFound),
	}
	select {
	case w.progressCh <- p:
	default:
	}
}

// buildTree constructs the tree bottom-up from flat entries. Children are
// ordered by name so repeated scans lay out identically.
func buildTree(tree *model.Tree, rootPath, rootName string, entries []nodeEntry) model.NodeID {
	byParent := make(map[string][]*nodeEntry, len(entries)/4+1)
	for i := range entries {
		e := &entries[i]
		parent := filepath.Dir(e.path)
		byParent[parent] = append(byParent[parent], e)
	}
	for _, list := range byParent {
		sort.Slice(list, func(i, j int) bool {
			return list[i].name < list[j].name
		})
	}

	var build func(path, name string) model.NodeID
	build = func(path, name string) model.NodeID {
		list := byParent[path]
		children := make([]model.NodeID, 0, len(list))
		for _, e := range list {
			if e.isDir {
				children = append(children, build(e.path, e.name))
			} else {
				children = append(children, tree.NewLeaf(e.name, e.size))
			}
		}
		return tree.NewInternal(name, children)
	}
	return build(rootPath, rootName)
}

// Ensure Walker implements Scanner
var _ Scanner = (*Walker)(nil)
