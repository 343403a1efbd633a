package layout

// Layout holds the computed position and size after layout calculation, plus
// the scratch fields the solver threads through a single layoutNodeImpl call.
type Layout struct {
	// Position holds top, bottom, left, right — each absolute within the
	// parent's border box. Not every edge is necessarily resolved; a caller
	// reading layout.x/y/width/height uses Left/Top/Dimensions.
	Position [4]float32

	Dimensions [2]float32 // width, height

	// Direction is this node's resolved direction (never Inherit).
	Direction Direction

	// lineIndex records which flex line a relative child landed on, set in
	// Loop A. No later pass reads it: Loop E (align-content) works from each
	// line's range of child indices.
	lineIndex int

	// nextFlexChild/nextAbsoluteChild are singly-linked-list scratch pointers
	// built in Loop A and cleared as Loops B/G walk them. They exist only
	// for the duration of one layoutNodeImpl call on the parent.
	nextFlexChild     *Node
	nextAbsoluteChild *Node

	// preSizedDim marks which of Dimensions[dimWidth]/[dimHeight] the parent
	// has already written into this pass (flex basis, stretch fill, or
	// derived absolute sizing) before recursing into this node. The node's
	// own prologue must leave a pre-sized axis untouched rather than
	// re-deriving it from style or resetting it to undefined.
	preSizedDim [2]bool
}

// X returns the resolved left edge.
func (l Layout) X() float32 { return l.Position[PosLeft] }

// Y returns the resolved top edge.
func (l Layout) Y() float32 { return l.Position[PosTop] }

// Width returns the resolved width.
func (l Layout) Width() float32 { return l.Dimensions[dimWidth] }

// Height returns the resolved height.
func (l Layout) Height() float32 { return l.Dimensions[dimHeight] }
