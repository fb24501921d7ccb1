package jsontree

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// RenderOptions controls Render.
type RenderOptions struct {
	// Title is printed above the tree when set.
	Title string
	// ShowIndentGuides draws a vertical guide for every nesting level.
	ShowIndentGuides bool
	// Expanded selects the open nodes. Nil expands everything.
	Expanded *ExpandState
}

const (
	controlExpanded  = "▾ "
	controlCollapsed = "▸ "
	controlLeaf      = "  "
	guide            = "│ "
	indent           = "  "
)

// Render writes root as an indented text tree, one row per visible node.
func Render(w io.Writer, root *Node, opts RenderOptions) error {
	state := opts.Expanded
	if state == nil {
		state = DefaultExpanded(root)
	}

	bw := bufio.NewWriter(w)
	if opts.Title != "" {
		bw.WriteString(opts.Title)
		bw.WriteByte('\n')
	}
	for _, row := range state.Visible(root) {
		bw.WriteString(formatRow(row, opts.ShowIndentGuides))
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

func formatRow(row Row, guides bool) string {
	var b strings.Builder
	step := indent
	if guides {
		step = guide
	}
	for range row.Depth {
		b.WriteString(step)
	}

	n := row.Node
	switch {
	case n.IsLeaf():
		b.WriteString(controlLeaf)
		b.WriteString(n.Label)
		b.WriteString(": ")
		b.WriteString(n.Display())
	default:
		if row.Expanded {
			b.WriteString(controlExpanded)
		} else {
			b.WriteString(controlCollapsed)
		}
		b.WriteString(n.Label)
		b.WriteByte(' ')
		b.WriteString(summary(n))
	}
	return b.String()
}

// summary is the bracketed item count shown next to an expandable node.
func summary(n *Node) string {
	lb, rb := "{", "}"
	if n.Meta.Type == TypeArray {
		lb, rb = "[", "]"
	}
	unit := " items"
	if n.Meta.ItemCount == 1 {
		unit = " item"
	}
	return lb + strconv.Itoa(n.Meta.ItemCount) + unit + rb
}
