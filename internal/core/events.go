package core

// Event represents a state change from the controller
type Event interface {
	isEvent()
}

// ScanStartedEvent is emitted when a scan begins
type ScanStartedEvent struct {
	Path string
}

func (ScanStartedEvent) isEvent() {}

// ScanProgressEvent is emitted during scanning
type ScanProgressEvent struct {
	FilesScanned int64
	BytesFound   int64
}

func (ScanProgressEvent) isEvent() {}

// ScanCompletedEvent is emitted when scan finishes
type ScanCompletedEvent struct {
	Err error
}

func (ScanCompletedEvent) isEvent() {}
