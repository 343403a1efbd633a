package layout

// Style setters are idempotent on equal values (float-tolerant for numeric
// fields) and otherwise call dirty() (§4.2).

// SetDirection sets the node's direction and marks it dirty if changed.
func (n *Node) SetDirection(d Direction) {
	if n.Style.Direction == d {
		return
	}
	n.Style.Direction = d
	n.dirty()
}

// SetFlexDirection sets the main axis and marks the node dirty if changed.
func (n *Node) SetFlexDirection(d FlexDirection) {
	if n.Style.FlexDirection == d {
		return
	}
	n.Style.FlexDirection = d
	n.dirty()
}

// SetFlexWrap sets wrap behavior and marks the node dirty if changed.
func (n *Node) SetFlexWrap(w FlexWrap) {
	if n.Style.FlexWrap == w {
		return
	}
	n.Style.FlexWrap = w
	n.dirty()
}

// SetJustifyContent sets main-axis distribution and marks the node dirty if changed.
func (n *Node) SetJustifyContent(j Justify) {
	if n.Style.JustifyContent == j {
		return
	}
	n.Style.JustifyContent = j
	n.dirty()
}

// SetAlignItems sets the default cross-axis alignment for children.
func (n *Node) SetAlignItems(a Align) {
	if n.Style.AlignItems == a {
		return
	}
	n.Style.AlignItems = a
	n.dirty()
}

// SetAlignSelf overrides the parent's AlignItems for this node.
func (n *Node) SetAlignSelf(a Align) {
	if n.Style.AlignSelf == a {
		return
	}
	n.Style.AlignSelf = a
	n.dirty()
}

// SetAlignContent sets multi-line distribution on the cross axis.
func (n *Node) SetAlignContent(a Align) {
	if n.Style.AlignContent == a {
		return
	}
	n.Style.AlignContent = a
	n.dirty()
}

// SetPositionType selects relative (flow) or absolute positioning.
func (n *Node) SetPositionType(p PositionType) {
	if n.Style.PositionType == p {
		return
	}
	n.Style.PositionType = p
	n.dirty()
}

// SetFlex sets the flex-grow weight; any value > 0 makes the node flexible.
func (n *Node) SetFlex(v float32) {
	if floatsEqual(n.Style.Flex, v) {
		return
	}
	n.Style.Flex = v
	n.dirty()
}

// SetWidth sets the preferred width (undefined clears it back to auto).
func (n *Node) SetWidth(v float32) { n.setDimension(dimWidth, v) }

// SetHeight sets the preferred height.
func (n *Node) SetHeight(v float32) { n.setDimension(dimHeight, v) }

func (n *Node) setDimension(d dimIndex, v float32) {
	if floatsEqual(n.Style.Dimensions[d], v) {
		return
	}
	n.Style.Dimensions[d] = v
	n.dirty()
}

// SetMinWidth sets the minimum width bound.
func (n *Node) SetMinWidth(v float32) { n.setMinDimension(dimWidth, v) }

// SetMinHeight sets the minimum height bound.
func (n *Node) SetMinHeight(v float32) { n.setMinDimension(dimHeight, v) }

func (n *Node) setMinDimension(d dimIndex, v float32) {
	if floatsEqual(n.Style.MinDimensions[d], v) {
		return
	}
	n.Style.MinDimensions[d] = v
	n.dirty()
}

// SetMaxWidth sets the maximum width bound.
func (n *Node) SetMaxWidth(v float32) { n.setMaxDimension(dimWidth, v) }

// SetMaxHeight sets the maximum height bound.
func (n *Node) SetMaxHeight(v float32) { n.setMaxDimension(dimHeight, v) }

func (n *Node) setMaxDimension(d dimIndex, v float32) {
	if floatsEqual(n.Style.MaxDimensions[d], v) {
		return
	}
	n.Style.MaxDimensions[d] = v
	n.dirty()
}

// SetPositionEdge sets one of the four relative/absolute offsets (top,
// bottom, left, right).
func (n *Node) SetPositionEdge(edge PositionEdge, v float32) {
	if floatsEqual(n.Style.Position[edge], v) {
		return
	}
	n.Style.Position[edge] = v
	n.dirty()
}

// SetMargin sets a margin slot (one of the nine EdgeSlot values).
func (n *Node) SetMargin(slot EdgeSlot, v float32) {
	if floatsEqual(n.Style.Margin.Get(slot), v) {
		return
	}
	n.Style.Margin.Set(slot, v)
	n.dirty()
}

// SetPadding sets a padding slot.
func (n *Node) SetPadding(slot EdgeSlot, v float32) {
	if floatsEqual(n.Style.Padding.Get(slot), v) {
		return
	}
	n.Style.Padding.Set(slot, v)
	n.dirty()
}

// SetBorder sets a border slot.
func (n *Node) SetBorder(slot EdgeSlot, v float32) {
	if floatsEqual(n.Style.Border.Get(slot), v) {
		return
	}
	n.Style.Border.Set(slot, v)
	n.dirty()
}
