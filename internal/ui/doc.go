// Package ui implements the terminal treemap viewer using Bubbletea.
//
// The treemap fills the screen between a one-line header and the info and
// help bars. Clicking selects the displayed leaf under the cursor; the
// keys in KeyMap expand, collapse, resize and move the selection.
package ui
