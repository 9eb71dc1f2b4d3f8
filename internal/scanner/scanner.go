package scanner

import (
	"context"

	"github.com/lumipallolabs/tmtree/internal/model"
)

// Progress reports scanning progress
type Progress struct {
	FilesScanned int64
	DirsScanned  int64
	BytesFound   int64
}

// Scanner defines the interface for filesystem scanning
type Scanner interface {
	// Scan scans the given root path and returns the tree and its root node
	Scan(ctx context.Context, root string) (*model.Tree, model.NodeID, error)

	// Progress returns a channel that receives progress updates; it is
	// closed when Scan returns
	Progress() <-chan Progress
}
