package core

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/lumipallolabs/tmtree/internal/cache"
	"github.com/lumipallolabs/tmtree/internal/config"
	"github.com/lumipallolabs/tmtree/internal/logging"
	"github.com/lumipallolabs/tmtree/internal/model"
	"github.com/lumipallolabs/tmtree/internal/scanner"
)

// ErrNoTree is returned by operations that need a loaded tree
var ErrNoTree = errors.New("no tree loaded")

// Controller owns the tree being visualised and the interaction state
// around it, without UI dependencies. The mutex hands the tree over between
// the scan goroutine and the UI; the model itself is single-threaded.
type Controller struct {
	mu sync.RWMutex

	cfg      config.Config
	scanPath string
	tree     *model.Tree
	root     model.NodeID
	selected model.NodeID
	hovered  model.NodeID
	area     model.Rect
	scan     ScanState

	cache      *cache.Cache
	newScanner func() scanner.Scanner
}

// NewController creates a controller for the tree at scanPath
func NewController(scanPath string, cfg config.Config) *Controller {
	abs, err := filepath.Abs(scanPath)
	if err != nil {
		abs = scanPath
	}
	c := &Controller{
		cfg:      cfg,
		scanPath: abs,
		root:     model.NoNode,
		selected: model.NoNode,
		hovered:  model.NoNode,
		cache:    cache.New(cfg.CacheDir),
	}
	c.newScanner = func() scanner.Scanner {
		return scanner.NewWalker(cfg.Workers, model.WithColors(model.RandomColors(cfg.Seed)))
	}
	return c
}

// ScanPath returns the absolute path being visualised
func (c *Controller) ScanPath() string {
	return c.scanPath
}

// ScanState returns the current scan state
func (c *Controller) ScanState() ScanState {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.scan
}

// HasTree reports whether a tree is loaded
func (c *Controller) HasTree() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.tree != nil
}

// StartScan begins scanning the configured path
func (c *Controller) StartScan(ctx context.Context) (<-chan Event, error) {
	c.mu.Lock()
	if c.scan.IsScanning() {
		c.mu.Unlock()
		return nil, fmt.Errorf("scan already running")
	}
	sc := c.newScanner()
	c.scan = ScanState{Phase: PhaseScanning, StartTime: time.Now()}
	c.mu.Unlock()

	eventCh := make(chan Event, 100)
	go c.runScan(ctx, sc, eventCh)
	return eventCh, nil
}

// runScan executes the scan in a goroutine
func (c *Controller) runScan(ctx context.Context, sc scanner.Scanner, eventCh chan Event) {
	defer close(eventCh)

	logging.Debug.Debugf("[Controller] Starting scan of %s", c.scanPath)
	eventCh <- ScanStartedEvent{Path: c.scanPath}

	var progressWg sync.WaitGroup
	progressWg.Add(1)
	go func() {
		defer progressWg.Done()
		for progress := range sc.Progress() {
			c.mu.Lock()
			c.scan.FilesScanned = progress.FilesScanned
			c.scan.BytesFound = progress.BytesFound
			c.mu.Unlock()

			eventCh <- ScanProgressEvent{
				FilesScanned: progress.FilesScanned,
				BytesFound:   progress.BytesFound,
			}
		}
	}()

	tree, root, err := sc.Scan(ctx, c.scanPath)
	progressWg.Wait()

	if err != nil {
		c.mu.Lock()
		c.scan.Phase = PhaseIdle
		c.mu.Unlock()
		eventCh <- ScanCompletedEvent{Err: err}
		return
	}

	if err := c.cache.Save(cache.Key(c.scanPath), tree, root); err != nil {
		logging.Debug.Debugf("[Controller] snapshot not saved: %v", err)
	}

	c.mu.Lock()
	c.scan.Phase = PhaseComplete
	c.setTreeLocked(tree, root)
	c.mu.Unlock()

	eventCh <- ScanCompletedEvent{}
	logging.Debug.Debugf("[Controller] Scan complete")
}

// LoadCached replaces the tree with the latest snapshot of the scan path
// and returns when that snapshot was taken
func (c *Controller) LoadCached() (time.Time, error) {
	key := cache.Key(c.scanPath)
	tree, root, err := c.cache.LoadLatest(key,
		model.WithVariant(scanner.FileSystem{}),
		model.WithColors(model.RandomColors(c.cfg.Seed)))
	if err != nil {
		return time.Time{}, fmt.Errorf("load snapshot: %w", err)
	}
	ts, err := c.cache.Timestamp(key)
	if err != nil {
		return time.Time{}, fmt.Errorf("load snapshot: %w", err)
	}
	c.SetTree(tree, root)
	return ts, nil
}

// SetTree installs tree as the visualised tree
func (c *Controller) SetTree(tree *model.Tree, root model.NodeID) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.scan.Phase = PhaseComplete
	c.setTreeLocked(tree, root)
}

func (c *Controller) setTreeLocked(tree *model.Tree, root model.NodeID) {
	c.tree = tree
	c.root = root
	c.selected = model.NoNode
	c.hovered = model.NoNode
	if c.cfg.ExpandAll {
		tree.ExpandAll(root)
	}
	tree.UpdateRectangles(root, c.area)
}

// Layout recomputes rectangles for a w x h area
func (c *Controller) Layout(w, h int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.area = model.Rect{W: max(w, 0), H: max(h, 0)}
	c.relayoutLocked()
}

func (c *Controller) relayoutLocked() {
	if c.tree != nil {
		c.tree.UpdateRectangles(c.root, c.area)
	}
}

// Blocks returns the displayed-leaf list
func (c *Controller) Blocks() []model.Block {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.tree == nil {
		return nil
	}
	return c.tree.Rectangles(c.root)
}

// Select selects the displayed leaf at (x, y). Selecting the current
// selection again clears it. Returns the new selection.
func (c *Controller) Select(x, y int) (model.NodeID, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.tree == nil {
		return model.NoNode, false
	}

	hit, ok := c.tree.TreeAt(c.root, x, y)
	if !ok || hit == c.selected {
		c.selected = model.NoNode
		return model.NoNode, false
	}
	c.selected = hit
	return hit, true
}

// Hover records the displayed leaf under (x, y) as the move target
func (c *Controller) Hover(x, y int) (model.NodeID, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.tree == nil {
		return model.NoNode, false
	}
	hit, ok := c.tree.TreeAt(c.root, x, y)
	if !ok {
		hit = model.NoNode
	}
	c.hovered = hit
	return hit, ok
}

// Selected returns the selected node
func (c *Controller) Selected() (model.NodeID, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.selected, c.selected != model.NoNode
}

// Deselect clears the selection
func (c *Controller) Deselect() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.selected = model.NoNode
}

// Hovered returns the node under the last hovered position
func (c *Controller) Hovered() (model.NodeID, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.hovered, c.hovered != model.NoNode
}

// ExpandSelected expands the selected node
func (c *Controller) ExpandSelected() {
	c.withSelection(func(t *model.Tree, id model.NodeID) {
		t.Expand(id)
	})
}

// CollapseSelected collapses the selected node's parent and selects it
func (c *Controller) CollapseSelected() {
	c.withSelection(func(t *model.Tree, id model.NodeID) {
		t.Collapse(id)
		if p, ok := t.Parent(id); ok {
			c.selected = p
		}
	})
}

// ExpandAll expands everything below the selection, or the whole tree
func (c *Controller) ExpandAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.tree == nil {
		return
	}
	target := c.root
	if c.selected != model.NoNode {
		target = c.selected
	}
	c.tree.ExpandAll(target)
	c.relayoutLocked()
}

// CollapseAll folds the whole tree and selects the root
func (c *Controller) CollapseAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.tree == nil {
		return
	}
	target := c.root
	if c.selected != model.NoNode {
		target = c.selected
	}
	c.tree.CollapseAll(target)
	c.selected = c.root
	c.relayoutLocked()
}

// MoveSelectedToHovered moves the selected leaf into the hovered node.
// Returns false when the model rejects the move.
func (c *Controller) MoveSelectedToHovered() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.tree == nil || c.selected == model.NoNode || c.hovered == model.NoNode {
		return false
	}
	if !c.tree.Move(c.selected, c.hovered) {
		return false
	}
	c.relayoutLocked()
	return true
}

// ResizeSelected scales the selected leaf by factor
func (c *Controller) ResizeSelected(factor float64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.tree == nil || c.selected == model.NoNode {
		return false
	}
	if !c.tree.ChangeSize(c.selected, factor) {
		return false
	}
	c.relayoutLocked()
	return true
}

// Info describes id
func (c *Controller) Info(id model.NodeID) (NodeInfo, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.tree == nil {
		return NodeInfo{}, ErrNoTree
	}
	if id < 0 || int(id) >= c.tree.Len() {
		return NodeInfo{}, fmt.Errorf("node %d not in tree", id)
	}

	info := NodeInfo{
		Name:     c.tree.Name(id),
		Size:     c.tree.Size(id),
		Leaf:     c.tree.IsLeaf(id),
		Expanded: c.tree.Expanded(id),
		FilePath: c.filePathLocked(id),
	}
	if c.tree.Variant() != nil {
		info.Path = c.tree.PathString(id, true)
	}
	return info, nil
}

// filePathLocked maps the root-to-node name chain onto the disk. The root
// node is named after the last element of the scan path.
func (c *Controller) filePathLocked(id model.NodeID) string {
	parts := append([]string{filepath.Dir(c.scanPath)}, c.tree.Names(id)...)
	return filepath.Join(parts...)
}

// Root returns the root node
func (c *Controller) Root() (model.NodeID, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.root, c.tree != nil
}

// withSelection runs fn on the selection and re-lays out the tree
func (c *Controller) withSelection(fn func(*model.Tree, model.NodeID)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.tree == nil || c.selected == model.NoNode {
		return
	}
	fn(c.tree, c.selected)
	c.relayoutLocked()
}
