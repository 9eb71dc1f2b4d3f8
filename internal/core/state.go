package core

import "time"

// ScanPhase represents the current phase of scanning
type ScanPhase int

const (
	PhaseIdle ScanPhase = iota
	PhaseScanning
	PhaseComplete
)

// String returns a human-readable phase name
func (p ScanPhase) String() string {
	switch p {
	case PhaseScanning:
		return "Scanning files"
	case PhaseComplete:
		return "Complete"
	default:
		return ""
	}
}

// ScanState holds the current scan state
type ScanState struct {
	Phase        ScanPhase
	StartTime    time.Time
	FilesScanned int64
	BytesFound   int64
}

// IsScanning returns true while a scan is in progress
func (s ScanState) IsScanning() bool {
	return s.Phase == PhaseScanning
}

// Elapsed returns time since scan started
func (s ScanState) Elapsed() time.Duration {
	if s.StartTime.IsZero() {
		return 0
	}
	return time.Since(s.StartTime).Truncate(time.Second)
}

// NodeInfo describes one node for display
type NodeInfo struct {
	Name     string
	Path     string // variant path string, suffix included
	FilePath string // location on disk
	Size     int64
	Leaf     bool
	Expanded bool
}
