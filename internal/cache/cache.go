package cache

import (
	"compress/gzip"
	"crypto/sha256"
	"encoding/hex"
	"encoding/gob"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/lumipallolabs/tmtree/internal/model"
)

const timeLayout = "2006-01-02_150405"

// Cache handles saving and loading tree snapshots
type Cache struct {
	dir string
	now func() time.Time
}

// New creates a new cache in the given directory
func New(dir string) *Cache {
	return &Cache{dir: dir, now: time.Now}
}

// snapshotNode is the on-disk form of a node: structure and sizes only
type snapshotNode struct {
	Name     string
	Size     int64
	Children []snapshotNode
}

// Key turns a scan path into a file-name-safe cache key. The readable part
// is lossy, so a short hash of the cleaned path keeps distinct paths apart.
func Key(path string) string {
	clean := filepath.Clean(path)
	key := strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '_', ' ', '*', '?', '[', ']':
			return '-'
		}
		return r
	}, clean)
	key = strings.Trim(key, "-")
	if key == "" {
		key = "root"
	}
	hash := sha256.Sum256([]byte(clean))
	return key + "-" + hex.EncodeToString(hash[:4])
}

// Save writes the subtree rooted at root under key
func (c *Cache) Save(key string, tree *model.Tree, root model.NodeID) error {
	if err := os.MkdirAll(c.dir, 0755); err != nil {
		return fmt.Errorf("create cache dir: %w", err)
	}

	filename := fmt.Sprintf("%s_%s.gob.gz", key, c.now().Format(timeLayout))
	file, err := os.Create(filepath.Join(c.dir, filename))
	if err != nil {
		return fmt.Errorf("create file: %w", err)
	}
	defer file.Close()

	gzWriter := gzip.NewWriter(file)
	if err := gob.NewEncoder(gzWriter).Encode(toSnapshot(tree, root)); err != nil {
		gzWriter.Close()
		return fmt.Errorf("encode: %w", err)
	}
	if err := gzWriter.Close(); err != nil {
		return fmt.Errorf("flush: %w", err)
	}
	return nil
}

// LoadLatest rebuilds the most recent snapshot for key into a new tree
// created with opts. Nodes come back collapsed with fresh colours.
func (c *Cache) LoadLatest(key string, opts ...model.Option) (*model.Tree, model.NodeID, error) {
	latest, err := c.latest(key)
	if err != nil {
		return nil, model.NoNode, err
	}

	file, err := os.Open(latest)
	if err != nil {
		return nil, model.NoNode, fmt.Errorf("open: %w", err)
	}
	defer file.Close()

	gzReader, err := gzip.NewReader(file)
	if err != nil {
		return nil, model.NoNode, fmt.Errorf("gzip reader: %w", err)
	}
	defer gzReader.Close()

	var snap snapshotNode
	if err := gob.NewDecoder(gzReader).Decode(&snap); err != nil {
		return nil, model.NoNode, fmt.Errorf("decode: %w", err)
	}

	tree := model.New(opts...)
	root := fromSnapshot(tree, snap)
	if err := tree.Check(); err != nil {
		return nil, model.NoNode, fmt.Errorf("corrupt snapshot %s: %w", filepath.Base(latest), err)
	}
	return tree, root, nil
}

// Timestamp returns the timestamp of the latest snapshot for key
func (c *Cache) Timestamp(key string) (time.Time, error) {
	latest, err := c.latest(key)
	if err != nil {
		return time.Time{}, err
	}

	base := strings.TrimSuffix(filepath.Base(latest), ".gob.gz")
	parts := strings.SplitN(base, "_", 2)
	if len(parts) != 2 {
		return time.Time{}, fmt.Errorf("invalid filename %s", base)
	}
	return time.Parse(timeLayout, parts[1])
}

func (c *Cache) latest(key string) (string, error) {
	pattern := filepath.Join(c.dir, fmt.Sprintf("%s_*.gob.gz", key))
	files, err := filepath.Glob(pattern)
	if err != nil {
		return "", fmt.Errorf("glob: %w", err)
	}
	if len(files) == 0 {
		return "", fmt.Errorf("no cache found for %s", key)
	}

	// Filenames sort by timestamp
	sort.Strings(files)
	return files[len(files)-1], nil
}

func toSnapshot(tree *model.Tree, id model.NodeID) snapshotNode {
	s := snapshotNode{Name: tree.Name(id), Size: tree.Size(id)}
	for _, c := range tree.Children(id) {
		s.Children = append(s.Children, toSnapshot(tree, c))
	}
	return s
}

func fromSnapshot(tree *model.Tree, s snapshotNode) model.NodeID {
	if len(s.Children) == 0 {
		return tree.NewLeaf(s.Name, s.Size)
	}
	children := make([]model.NodeID, 0, len(s.Children))
	for _, c := range s.Children {
		children = append(children, fromSnapshot(tree, c))
	}
	return tree.NewInternal(s.Name, children)
}
