package jsontree

// ExpandState records which nodes are expanded, keyed by node path. The
// zero value has everything collapsed.
type ExpandState struct {
	expanded map[string]bool
}

// NewExpandState returns a state with the given paths expanded.
func NewExpandState(paths ...string) *ExpandState {
	s := &ExpandState{}
	for _, p := range paths {
		s.Expand(p)
	}
	return s
}

// DefaultExpanded returns a state with every expandable node of root
// expanded.
func DefaultExpanded(root *Node) *ExpandState {
	s := &ExpandState{}
	s.ExpandAll(root)
	return s
}

// IsExpanded reports whether the node at path is expanded.
func (s *ExpandState) IsExpanded(path string) bool {
	return s.expanded[path]
}

// Expand expands the node at path.
func (s *ExpandState) Expand(path string) {
	if s.expanded == nil {
		s.expanded = make(map[string]bool)
	}
	s.expanded[path] = true
}

// Collapse collapses the node at path.
func (s *ExpandState) Collapse(path string) {
	delete(s.expanded, path)
}

// Toggle flips the node at path and returns its new state.
func (s *ExpandState) Toggle(path string) bool {
	if s.IsExpanded(path) {
		s.Collapse(path)
		return false
	}
	s.Expand(path)
	return true
}

// ExpandAll expands every expandable node under root, root included.
func (s *ExpandState) ExpandAll(root *Node) {
	if root == nil {
		return
	}
	root.Walk(func(n *Node) bool {
		if !n.IsLeaf() {
			s.Expand(n.Value)
		}
		return true
	})
}

// CollapseAll collapses every node.
func (s *ExpandState) CollapseAll() {
	clear(s.expanded)
}

// Row is one visible line of a tree.
type Row struct {
	Node     *Node
	Depth    int
	Expanded bool
	// Last reports whether the node is the last child of its parent.
	Last bool
}

// Visible lists the rows shown for root: the root itself, then the
// children of every expanded node, depth first.
func (s *ExpandState) Visible(root *Node) []Row {
	if root == nil {
		return nil
	}
	var rows []Row
	var visit func(n *Node, depth int, last bool)
	visit = func(n *Node, depth int, last bool) {
		open := !n.IsLeaf() && s.IsExpanded(n.Value)
		rows = append(rows, Row{Node: n, Depth: depth, Expanded: open, Last: last})
		if !open {
			return
		}
		for i, c := range n.Children {
			visit(c, depth+1, i == len(n.Children)-1)
		}
	}
	visit(root, 0, true)
	return rows
}
