package ui

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/gabriel-vasile/mimetype"
	"github.com/lumipallolabs/tmtree/internal/core"
	"github.com/lumipallolabs/tmtree/internal/logging"
	"github.com/lumipallolabs/tmtree/internal/model"
)

// Rows taken by the header above the treemap and the bars below it
const (
	headerHeight  = 1
	infoBarHeight = 2
	helpBarHeight = 1
)

// resizeStep is the factor applied by the grow and shrink keys
const resizeStep = 0.01

const moveRejected = "move needs a selected file and a folder under the cursor"

// Message types for Bubble Tea
type (
	scanStartMsg   struct{}
	spinnerTickMsg struct{}
	scanEventMsg   struct{ event core.Event }
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

const spinnerTickInterval = 80 * time.Millisecond

// App is the main TUI application model
type App struct {
	ctrl *core.Controller

	treemap TreemapPanel
	help    HelpOverlay
	keys    KeyMap
	version string

	useCache    bool
	err         error
	status      string
	spinner     int
	scanEventCh <-chan core.Event

	width  int
	height int
}

// NewApp creates a new application instance. With useCache the latest
// snapshot is shown instead of scanning.
func NewApp(ctrl *core.Controller, version string, useCache bool) App {
	keys := DefaultKeyMap()
	return App{
		ctrl:     ctrl,
		treemap:  NewTreemapPanel(),
		help:     NewHelpOverlay(version, keys),
		keys:     keys,
		version:  version,
		useCache: useCache,
	}
}

// Init implements tea.Model
func (a App) Init() tea.Cmd {
	if a.ctrl.HasTree() {
		return nil
	}
	return func() tea.Msg {
		return scanStartMsg{}
	}
}

// Update implements tea.Model
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.updateLayout()
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)

	case tea.MouseMsg:
		return a.handleMouse(msg)

	case scanStartMsg:
		return a.startScan()

	case scanEventMsg:
		return a.handleScanEvent(msg.event)

	case spinnerTickMsg:
		if a.ctrl.ScanState().IsScanning() {
			a.spinner = (a.spinner + 1) % len(spinnerFrames)
			return a, a.tickSpinner()
		}
		return a, nil
	}

	return a, nil
}

// startScan loads the snapshot or begins scanning
func (a App) startScan() (tea.Model, tea.Cmd) {
	if a.useCache {
		a.useCache = false
		ts, err := a.ctrl.LoadCached()
		if err == nil {
			a.status = "snapshot from " + ts.Format("2006-01-02 15:04")
			a.refresh()
			return a, nil
		}
		logging.Debug.Debugf("[TUI] no snapshot, scanning: %v", err)
	}

	eventCh, err := a.ctrl.StartScan(context.Background())
	if err != nil {
		a.err = err
		return a, nil
	}
	a.scanEventCh = eventCh
	a.err = nil
	return a, tea.Batch(a.listenForScanEvents(), a.tickSpinner())
}

func (a App) tickSpinner() tea.Cmd {
	return tea.Tick(spinnerTickInterval, func(time.Time) tea.Msg {
		return spinnerTickMsg{}
	})
}

// listenForScanEvents creates a command that listens for scan events
func (a App) listenForScanEvents() tea.Cmd {
	if a.scanEventCh == nil {
		return nil
	}
	eventCh := a.scanEventCh
	return func() tea.Msg {
		event, ok := <-eventCh
		if !ok {
			return nil
		}
		return scanEventMsg{event: event}
	}
}

// handleScanEvent processes scan events and continues listening
func (a App) handleScanEvent(event core.Event) (tea.Model, tea.Cmd) {
	switch e := event.(type) {
	case core.ScanProgressEvent:
		a.status = fmt.Sprintf("%d files, %s", e.FilesScanned, FormatSize(e.BytesFound))
	case core.ScanCompletedEvent:
		a.scanEventCh = nil
		if e.Err != nil {
			a.err = e.Err
			a.status = ""
			return a, nil
		}
		a.status = fmt.Sprintf("scanned in %s", a.ctrl.ScanState().Elapsed())
		a.refresh()
		return a, nil
	}
	return a, a.listenForScanEvents()
}

// handleKey handles keyboard input
func (a App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.help.IsVisible() {
		a.help.SetVisible(false)
		return a, nil
	}

	switch {
	case key.Matches(msg, a.keys.Quit):
		return a, tea.Quit
	case key.Matches(msg, a.keys.Help):
		a.help.Toggle()
		return a, nil
	case key.Matches(msg, a.keys.Rescan):
		if a.ctrl.ScanState().IsScanning() {
			return a, nil
		}
		return a.startScan()
	case key.Matches(msg, a.keys.Expand):
		a.ctrl.ExpandSelected()
	case key.Matches(msg, a.keys.Collapse):
		a.ctrl.CollapseSelected()
	case key.Matches(msg, a.keys.ExpandAll):
		a.ctrl.ExpandAll()
	case key.Matches(msg, a.keys.CollapseAll):
		a.ctrl.CollapseAll()
	case key.Matches(msg, a.keys.Grow):
		a.report(a.ctrl.ResizeSelected(resizeStep), "only files can be resized")
	case key.Matches(msg, a.keys.Shrink):
		a.report(a.ctrl.ResizeSelected(-resizeStep), "only files can be resized")
	case key.Matches(msg, a.keys.Move):
		a.report(a.ctrl.MoveSelectedToHovered(), moveRejected)
	case key.Matches(msg, a.keys.Deselect):
		a.ctrl.Deselect()
	default:
		return a, nil
	}

	a.refresh()
	return a, nil
}

// report sets the status line after a mutation attempt
func (a *App) report(ok bool, rejected string) {
	if ok {
		a.status = ""
		return
	}
	a.status = rejected
}

// handleMouse maps clicks and motion onto treemap coordinates
func (a App) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	cx, cy := msg.X, msg.Y-headerHeight
	if cx < 0 || cy < 0 || cx >= a.treemap.width || cy >= a.treemap.height {
		return a, nil
	}
	x, y := cellPoint(cx, cy)
	switch {
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		a.ctrl.Select(x, y)
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonRight:
		a.ctrl.Hover(x, y)
		a.report(a.ctrl.MoveSelectedToHovered(), moveRejected)
	case msg.Action == tea.MouseActionMotion:
		a.ctrl.Hover(x, y)
	default:
		return a, nil
	}
	a.refresh()
	return a, nil
}

// cellPoint returns the layout point that hit-tests to the block drawn in
// terminal cell (cx, cy). A block is drawn over cells [X, X+W), and the
// cell's far corner (cx+1, cy+1) lies only in that block's closed rectangle
// or on an edge it wins the tie for.
func cellPoint(cx, cy int) (int, int) {
	return cx + 1, cy + 1
}

// updateLayout resizes the treemap to the terminal
func (a *App) updateLayout() {
	h := a.height - headerHeight - infoBarHeight - helpBarHeight
	if h < 1 {
		h = 1
	}
	a.treemap.SetSize(a.width, h)
	a.ctrl.Layout(a.width, h)
	a.refresh()
}

// refresh pulls the displayed blocks and selection from the controller
func (a *App) refresh() {
	blocks := a.ctrl.Blocks()
	labels := make(map[model.NodeID]string, len(blocks))
	for _, b := range blocks {
		if info, err := a.ctrl.Info(b.Node); err == nil {
			labels[b.Node] = info.Name
		}
	}
	a.treemap.SetBlocks(blocks, labels)

	sel, _ := a.ctrl.Selected()
	a.treemap.SetSelected(sel)
	hov, _ := a.ctrl.Hovered()
	a.treemap.SetHovered(hov)
}

// View implements tea.Model
func (a App) View() string {
	if a.width == 0 || a.height == 0 {
		return "Loading..."
	}
	if a.help.IsVisible() {
		return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, a.help.View())
	}

	sections := []string{a.header()}
	if a.ctrl.HasTree() {
		sections = append(sections, a.treemap.View())
	} else {
		sections = append(sections, lipgloss.Place(a.width, a.treemap.height,
			lipgloss.Center, lipgloss.Center, "Scanning "+a.ctrl.ScanPath()))
	}
	sections = append(sections, a.infoBar(), HelpBar(a.width, a.keys))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// header renders the title, scan path and scan state
func (a App) header() string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render("tmtree"))
	b.WriteString(" " + a.ctrl.ScanPath())
	if a.ctrl.ScanState().IsScanning() {
		b.WriteString(" " + spinnerFrames[a.spinner])
	}
	if a.status != "" {
		b.WriteString("  " + InfoDimStyle.Render(a.status))
	}
	return HeaderStyle.Width(a.width).MaxHeight(headerHeight).Render(b.String())
}

// infoBar shows the selection and the move target
func (a App) infoBar() string {
	var lines []string
	if a.err != nil {
		lines = append(lines, ErrorStyle.Render(fmt.Sprintf("Error: %v", a.err)))
	}

	if id, ok := a.ctrl.Selected(); ok {
		lines = append(lines, a.describe(id))
	} else {
		lines = append(lines, InfoDimStyle.Render("click a block to select it"))
	}
	if id, ok := a.ctrl.Hovered(); ok {
		if info, err := a.ctrl.Info(id); err == nil {
			lines = append(lines, InfoDimStyle.Render("under cursor: "+info.Path))
		}
	}

	for len(lines) < infoBarHeight {
		lines = append(lines, "")
	}
	return InfoStyle.Width(a.width).Height(infoBarHeight).MaxHeight(infoBarHeight).
		Render(strings.Join(lines[:infoBarHeight], "\n"))
}

// describe renders one line about id
func (a App) describe(id model.NodeID) string {
	info, err := a.ctrl.Info(id)
	if err != nil {
		return ""
	}
	line := fmt.Sprintf("%s  %s", info.Path, FormatSize(info.Size))
	if info.Leaf {
		if ft := getFileType(info.FilePath); ft != "" {
			line += "  " + ft
		}
	}
	return line
}

// getFileType detects file type using magic numbers
func getFileType(path string) string {
	if st, err := os.Stat(path); err != nil || st.IsDir() {
		return ""
	}
	mtype, err := mimetype.DetectFile(path)
	if err != nil {
		return ""
	}
	return mtype.String()
}
