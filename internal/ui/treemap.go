package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lumipallolabs/tmtree/internal/model"
)

// TreemapPanel draws the displayed-leaf list as coloured cells
type TreemapPanel struct {
	blocks   []model.Block
	labels   map[model.NodeID]string
	selected model.NodeID
	hovered  model.NodeID
	width    int
	height   int
}

// NewTreemapPanel creates a new treemap panel
func NewTreemapPanel() TreemapPanel {
	return TreemapPanel{selected: model.NoNode, hovered: model.NoNode}
}

// SetSize sets the panel dimensions
func (t *TreemapPanel) SetSize(w, h int) {
	t.width = w
	t.height = h
}

// SetBlocks replaces the blocks to draw and their labels
func (t *TreemapPanel) SetBlocks(blocks []model.Block, labels map[model.NodeID]string) {
	t.blocks = blocks
	t.labels = labels
}

// SetSelected sets the highlighted node
func (t *TreemapPanel) SetSelected(id model.NodeID) {
	t.selected = id
}

// SetHovered sets the node under the mouse
func (t *TreemapPanel) SetHovered(id model.NodeID) {
	t.hovered = id
}

// owners maps every cell to the index of the block covering it, or -1.
// A block covers cells [X, X+W) x [Y, Y+H); later blocks win on overlap.
func owners(blocks []model.Block, w, h int) [][]int {
	grid := make([][]int, h)
	for y := range grid {
		grid[y] = make([]int, w)
		for x := range grid[y] {
			grid[y][x] = -1
		}
	}
	for i, b := range blocks {
		for y := max(b.Rect.Y, 0); y < b.Rect.Y+b.Rect.H && y < h; y++ {
			for x := max(b.Rect.X, 0); x < b.Rect.X+b.Rect.W && x < w; x++ {
				grid[y][x] = i
			}
		}
	}
	return grid
}

// cell is one rendered terminal cell
type cell struct {
	ch    rune
	style int // index into the style table
}

// View renders the treemap
func (t TreemapPanel) View() string {
	if t.width < 1 || t.height < 1 {
		return ""
	}
	if len(t.blocks) == 0 {
		return lipgloss.NewStyle().Width(t.width).Height(t.height).Render("No data")
	}

	// Style 0 is the empty background; each block adds a fill and a border style
	styles := []lipgloss.Style{lipgloss.NewStyle().Background(ColorBackground)}
	grid := make([][]cell, t.height)
	for y := range grid {
		grid[y] = make([]cell, t.width)
		for x := range grid[y] {
			grid[y][x] = cell{ch: ' '}
		}
	}

	own := owners(t.blocks, t.width, t.height)
	for i, b := range t.blocks {
		fill, border := t.blockStyles(b)
		fillIdx := len(styles)
		styles = append(styles, fill, border)
		t.drawBlock(grid, own, i, b, fillIdx)
	}

	lines := make([]string, t.height)
	for y, row := range grid {
		lines[y] = renderRow(row, styles)
	}
	return strings.Join(lines, "\n")
}

// blockStyles returns the fill and border styles for b
func (t TreemapPanel) blockStyles(b model.Block) (lipgloss.Style, lipgloss.Style) {
	bg := lipgloss.Color(b.Color.Hex())
	fill := lipgloss.NewStyle().Background(bg).Foreground(lipgloss.Color("#000000"))
	border := lipgloss.NewStyle().Background(bg).Foreground(lipgloss.Color("#1F1F23"))

	switch b.Node {
	case t.selected:
		fill = fill.Bold(true)
		border = border.Foreground(ColorPrimary).Bold(true)
	case t.hovered:
		border = border.Foreground(ColorHover)
	}
	return fill, border
}

// drawBlock fills the cells owned by block i, outlines it and adds a label
func (t TreemapPanel) drawBlock(grid [][]cell, own [][]int, i int, b model.Block, fillIdx int) {
	r := b.Rect
	set := func(x, y int, ch rune, style int) {
		if y >= 0 && y < len(grid) && x >= 0 && x < len(grid[y]) && own[y][x] == i {
			grid[y][x] = cell{ch: ch, style: style}
		}
	}

	for y := r.Y; y < r.Y+r.H; y++ {
		for x := r.X; x < r.X+r.W; x++ {
			set(x, y, ' ', fillIdx)
		}
	}
	if r.W < 2 || r.H < 2 {
		return
	}

	borderIdx := fillIdx + 1
	right, bottom := r.X+r.W-1, r.Y+r.H-1
	for x := r.X + 1; x < right; x++ {
		set(x, r.Y, '─', borderIdx)
		set(x, bottom, '─', borderIdx)
	}
	for y := r.Y + 1; y < bottom; y++ {
		set(r.X, y, '│', borderIdx)
		set(right, y, '│', borderIdx)
	}
	set(r.X, r.Y, '┌', borderIdx)
	set(right, r.Y, '┐', borderIdx)
	set(r.X, bottom, '└', borderIdx)
	set(right, bottom, '┘', borderIdx)

	label := t.labels[b.Node]
	if label == "" || r.W < 4 || r.H < 3 {
		return
	}
	runes := []rune(label)
	if maxLen := r.W - 2; len(runes) > maxLen {
		runes = runes[:maxLen]
	}
	for k, ch := range runes {
		set(r.X+1+k, r.Y+1, ch, fillIdx)
	}
}

// renderRow renders runs of equally styled cells in one call each
func renderRow(row []cell, styles []lipgloss.Style) string {
	var b strings.Builder
	start := 0
	for x := 1; x <= len(row); x++ {
		if x < len(row) && row[x].style == row[start].style {
			continue
		}
		var run strings.Builder
		for _, c := range row[start:x] {
			run.WriteRune(c.ch)
		}
		b.WriteString(styles[row[start].style].Render(run.String()))
		start = x
	}
	return b.String()
}
