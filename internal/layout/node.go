package layout

// layoutState is the dirty/HasNewLayout/UpToDate state machine described in
// §3 and §9. A node is created Dirty; calculateLayout transitions it to
// HasNewLayout; the host consumes the result and calls MarkLayoutSeen to
// reach UpToDate; any style mutation from UpToDate or HasNewLayout returns
// to Dirty — except that a mutation while still HasNewLayout is itself a
// protocol violation (the host must consume a layout before invalidating it).
type layoutState uint8

const (
	stateDirty layoutState = iota
	stateHasNewLayout
	stateUpToDate
)

// Node is a single element of the layout tree: it owns its Style, its
// computed Layout, a CachedLayout memo, an ordered list of children, and an
// optional MeasureFunction for leaf content.
type Node struct {
	Style Style

	layout     Layout
	lastLayout CachedLayout

	children []*Node
	parent   *Node

	measureFunc MeasureFunction
	state       layoutState
}

// NewNode creates a detached node with the given style. New nodes start
// Dirty so the first CalculateLayout actually computes them, with both
// layout dimensions undefined until then.
func NewNode(style Style) *Node {
	return &Node{Style: style, layout: Layout{Dimensions: [2]float32{undefined, undefined}}, state: stateDirty}
}

// Parent returns the node's parent, or nil if detached/root.
func (n *Node) Parent() *Node { return n.parent }

// ChildCount returns the number of children.
func (n *Node) ChildCount() int { return len(n.children) }

// Child returns the child at index i.
func (n *Node) Child(i int) *Node { return n.children[i] }

// IndexOf returns the index of child within n's children, or -1.
func (n *Node) IndexOf(child *Node) int {
	for i, c := range n.children {
		if c == child {
			return i
		}
	}
	return -1
}

// InsertChild inserts child at index, shifting [index..) right by one.
// It panics with TreeStructureViolation if child already has a parent — a
// node may only appear in exactly one parent's child list at a time (§3).
func (n *Node) InsertChild(index int, child *Node) {
	if child.parent != nil {
		fail(TreeStructureViolation, "child already has a parent; remove it first")
	}
	n.children = append(n.children, nil)
	copy(n.children[index+1:], n.children[index:])
	n.children[index] = child
	child.parent = n
	n.dirty()
}

// AddChild appends child to the end of n's child list.
func (n *Node) AddChild(child *Node) {
	n.InsertChild(len(n.children), child)
}

// RemoveChildAt removes and returns the child at index, shifting [index+1..)
// left by one.
func (n *Node) RemoveChildAt(index int) *Node {
	child := n.children[index]
	copy(n.children[index:], n.children[index+1:])
	n.children[len(n.children)-1] = nil
	n.children = n.children[:len(n.children)-1]
	child.parent = nil
	n.dirty()
	return child
}

// RemoveSelf detaches n from its parent. It panics with
// TreeStructureViolation if n's recorded parent does not actually list n as
// a child (§6) — this should not happen under normal use of InsertChild/
// RemoveChildAt, but guards against manual field corruption.
func (n *Node) RemoveSelf() {
	if n.parent == nil {
		return
	}
	idx := n.parent.IndexOf(n)
	if idx < 0 {
		fail(TreeStructureViolation, "node's parent does not list it as a child")
	}
	n.parent.RemoveChildAt(idx)
}

// SetMeasureFunc installs (or, with nil, clears) the leaf measurement
// callback and marks the node dirty.
func (n *Node) SetMeasureFunc(fn MeasureFunction) {
	n.measureFunc = fn
	n.dirty()
}

// IsMeasureDefined reports whether a MeasureFunction is installed.
func (n *Node) IsMeasureDefined() bool {
	return n.measureFunc != nil
}

// measure invokes the installed MeasureFunction through ctx's reusable
// scratch buffer and returns the two results by value. It panics with
// MeasureNotDefined if no function is installed (§6, §7).
func (n *Node) measure(ctx *layoutContext, availableWidth float32) (width, height float32) {
	if n.measureFunc == nil {
		fail(MeasureNotDefined, "measure called on node with no MeasureFunction")
	}
	ctx.measureOutput.Width = undefined
	ctx.measureOutput.Height = undefined
	n.measureFunc(n, availableWidth, &ctx.measureOutput)
	return ctx.measureOutput.Width, ctx.measureOutput.Height
}

// dirty marks n and every ancestor up to the root as needing recalculation.
// It is a no-op if n is already Dirty, and panics with ProtocolMisuse if n
// is currently HasNewLayout — the host must call MarkLayoutSeen on a
// computed layout before any further mutation invalidates it (§4.2, §9).
func (n *Node) dirty() {
	if n.state == stateDirty {
		return
	}
	if n.state == stateHasNewLayout {
		fail(ProtocolMisuse, "style mutated before HasNewLayout was consumed via MarkLayoutSeen")
	}
	n.state = stateDirty
	if n.parent != nil {
		n.parent.dirty()
	}
}

// MarkDirty is the host-facing equivalent of dirty — forces recalculation
// of n and its ancestors on the next CalculateLayout.
func (n *Node) MarkDirty() {
	n.dirty()
}

// IsDirty reports whether n needs recalculation.
func (n *Node) IsDirty() bool {
	return n.state == stateDirty
}

// HasNewLayout reports whether n holds a layout result the host has not yet
// consumed via MarkLayoutSeen.
func (n *Node) HasNewLayout() bool {
	return n.state == stateHasNewLayout
}

// MarkLayoutSeen transitions n from HasNewLayout to UpToDate. It panics
// with ProtocolMisuse if n is not currently HasNewLayout (§6).
func (n *Node) MarkLayoutSeen() {
	if n.state != stateHasNewLayout {
		fail(ProtocolMisuse, "MarkLayoutSeen called without a pending HasNewLayout")
	}
	n.state = stateUpToDate
}

// GetLayout returns the last computed Layout.
func (n *Node) GetLayout() Layout { return n.layout }

// LayoutX returns the computed left edge.
func (n *Node) LayoutX() float32 { return n.layout.X() }

// LayoutY returns the computed top edge.
func (n *Node) LayoutY() float32 { return n.layout.Y() }

// LayoutWidth returns the computed width.
func (n *Node) LayoutWidth() float32 { return n.layout.Width() }

// LayoutHeight returns the computed height.
func (n *Node) LayoutHeight() float32 { return n.layout.Height() }

// CalculateLayout runs the solver on the tree rooted at n, treating
// parentWidth as the available width constraint from the host (§1, §4.4).
func (n *Node) CalculateLayout(parentWidth float32) {
	CalculateLayout(n, parentWidth)
}
