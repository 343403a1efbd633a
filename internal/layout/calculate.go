package layout

// CalculateLayout is the host-facing entry point (§1, §4.4). parentWidth is
// the outer constraint supplied by the host (e.g. the terminal width); the
// root's own style dimensions, if set, further constrain it.
func CalculateLayout(root *Node, parentWidth float32) {
	ctx := newLayoutContext()

	// The root has no parent to pre-size it, so CalculateLayout plays that
	// role for width: an unstyled root fills the width the host gives it,
	// the same way a stretched child fills its parent's cross axis. A root
	// with an explicit style width is left to size itself in the usual way.
	// An axis that is not pre-sized starts undefined, so an unchanged tree
	// presents the same cache key on every call.
	if !isStyleDimDefined(root.Style, dimWidth) && isDefined(parentWidth) {
		root.layout.Dimensions[dimWidth] = parentWidth
		root.layout.preSizedDim[dimWidth] = true
	} else {
		root.layout.Dimensions[dimWidth] = undefined
		root.layout.preSizedDim[dimWidth] = false
	}
	root.layout.Dimensions[dimHeight] = undefined
	root.layout.preSizedDim[dimHeight] = false

	layoutNode(ctx, root, parentWidth, DirectionLTR)
}

// layoutNode is the memoizing recursion entry described in §4.4. It decides
// whether node actually needs recomputing, and if so delegates to
// layoutNodeImpl and refreshes the cache; otherwise it reuses the last
// computed Layout wholesale.
func layoutNode(ctx *layoutContext, node *Node, parentMaxWidth float32, parentDirection Direction) {
	requestedWidth := node.layout.Dimensions[dimWidth]
	requestedHeight := node.layout.Dimensions[dimHeight]

	if !node.IsDirty() && node.lastLayout.matches(requestedWidth, requestedHeight, parentMaxWidth) {
		node.layout = node.lastLayout.layout
		return
	}

	node.lastLayout.requestedWidth = requestedWidth
	node.lastLayout.requestedHeight = requestedHeight
	node.lastLayout.parentMaxWidth = parentMaxWidth

	layoutNodeImpl(ctx, node, parentMaxWidth, parentDirection)

	node.lastLayout.layout = node.layout
	node.lastLayout.valid = true
	node.state = stateHasNewLayout
}

// resolveDirection implements §4.5.1: Inherit takes the parent's resolved
// direction, defaulting to LTR at the root.
func resolveDirection(style Style, parentDirection Direction) Direction {
	if style.Direction != DirectionInherit {
		return style.Direction
	}
	if parentDirection != DirectionInherit {
		return parentDirection
	}
	return DirectionLTR
}

// resolveAxis swaps Row <-> RowReverse under RTL; columns are unaffected
// since vertical direction has no logical start/end in CSS.
func resolveAxis(axis FlexDirection, direction Direction) FlexDirection {
	if direction == DirectionRTL {
		switch axis {
		case Row:
			return RowReverse
		case RowReverse:
			return Row
		}
	}
	return axis
}

// crossOf returns the (already direction-resolved) cross axis for a main
// axis: columns cross into a direction-resolved row, rows always cross into
// plain Column (§4.5.1).
func crossOf(mainAxis FlexDirection, direction Direction) FlexDirection {
	if isColumnAxis(mainAxis) {
		return resolveAxis(Row, direction)
	}
	return Column
}

// boundAxis clamps value into [min, max] for the given style dimension slot
// when those bounds are defined and non-negative. Min is applied first and
// max second, so in a degenerate min > max style, max wins (§4.5.14).
func boundAxis(style Style, d dimIndex, value float32) float32 {
	if min := style.MinDimensions[d]; isDefinedAndPositive(min) && value < min {
		value = min
	}
	if max := style.MaxDimensions[d]; isDefinedAndPositive(max) && value > max {
		value = max
	}
	return value
}

// paddingBorderLeading sums the leading padding and border for axis.
func paddingBorderLeading(style Style, axis FlexDirection) float32 {
	return style.Padding.leading(axis) + style.Border.leading(axis)
}

func paddingBorderTrailing(style Style, axis FlexDirection) float32 {
	return style.Padding.trailing(axis) + style.Border.trailing(axis)
}

func paddingBorderTotal(style Style, axis FlexDirection) float32 {
	return paddingBorderLeading(style, axis) + paddingBorderTrailing(style, axis)
}

func marginAxisTotal(style Style, axis FlexDirection) float32 {
	return style.Margin.leading(axis) + style.Margin.trailing(axis)
}

// isStyleDimDefined reports whether the node requested an explicit, usable
// size on axis (§4.5.14: non-NaN and >= 0).
func isStyleDimDefined(style Style, d dimIndex) bool {
	return isDefinedAndPositive(style.Dimensions[d])
}

// effectiveAlign resolves a child's AlignSelf against the parent's
// AlignItems (Auto inherits).
func effectiveAlign(parentAlignItems, childAlignSelf Align) Align {
	if childAlignSelf == AlignAuto {
		return parentAlignItems
	}
	return childAlignSelf
}

// isFlexible reports whether a relative child participates in the flex
// chain: positive flex and a defined parent main dimension (§4.5.4).
func isFlexible(child *Node, parentMainDimDefined bool) bool {
	return child.Style.PositionType == PositionRelative &&
		child.Style.Flex > 0 &&
		parentMainDimDefined
}

// layoutNodeImpl runs the six-pass algorithm once (§4.5). node.layout is
// populated in place; children are recursed into via layoutNode.
func layoutNodeImpl(ctx *layoutContext, node *Node, parentMaxWidth float32, parentDirection Direction) {
	style := node.Style

	direction := resolveDirection(style, parentDirection)
	mainAxis := resolveAxis(style.FlexDirection, direction)
	crossAxis := crossOf(style.FlexDirection, direction)
	rowAxis := resolveAxis(Row, direction)

	node.layout.Direction = direction

	// Prologue (§4.5.2): reset the scratch/position state of direct children,
	// including which dimensions they were pre-sized on (the parent below
	// will re-mark any it pre-sizes again this exact pass, before recursing
	// into that child).
	for _, child := range node.children {
		child.layout.Position = [4]float32{0, 0, 0, 0}
		child.layout.nextFlexChild = nil
		child.layout.nextAbsoluteChild = nil
		child.layout.lineIndex = 0
		child.layout.preSizedDim = [2]bool{false, false}
	}

	// Fill this node's own dimensions: an axis the parent just pre-sized
	// (flex basis, stretch fill, derived absolute sizing) is left exactly as
	// the parent wrote it; otherwise an explicit style dimension wins, and a
	// style-less axis is reset to undefined so intrinsic sizing (§4.5.11)
	// recomputes it fresh instead of trusting a stale prior result.
	for _, axis := range [2]dimIndex{dimWidth, dimHeight} {
		if node.layout.preSizedDim[axis] {
			continue
		}
		if isStyleDimDefined(style, axis) {
			axisDir := mainAxis
			if axis != dim(mainAxis) {
				axisDir = crossAxis
			}
			node.layout.Dimensions[axis] = maxf(style.Dimensions[axis], paddingBorderTotal(style, axisDir))
		} else {
			node.layout.Dimensions[axis] = undefined
		}
	}

	for _, axis := range [2]FlexDirection{Row, Column} {
		leading := style.Margin.leading(axis) + relativePositionDelta(style, axis, true)
		trailing := style.Margin.trailing(axis) + relativePositionDelta(style, axis, false)
		node.layout.Position[leadingPos(axis)] += leading
		node.layout.Position[trailingPos(axis)] += trailing
	}

	// Measured-leaf short circuit (§4.5.3).
	if node.IsMeasureDefined() {
		layoutMeasuredLeaf(ctx, node, style, mainAxis, crossAxis, rowAxis, parentMaxWidth)
		if len(node.children) == 0 {
			finalizeLeafDimensions(style, &node.layout)
			return
		}
	}

	if len(node.children) == 0 {
		finalizeLeafDimensions(style, &node.layout)
		return
	}

	layoutChildren(ctx, node, style, mainAxis, crossAxis, rowAxis, direction, parentMaxWidth)
}

// finalizeLeafDimensions covers the case a childless node's own-dimension
// fill and (if present) measure callback both leave undefined: with nothing
// left to derive a size from, it falls back to padding+border on that axis,
// the same floor every other node's content box has (§4.5.11, §4.5.14).
func finalizeLeafDimensions(style Style, l *Layout) {
	if isUndefined(l.Dimensions[dimWidth]) {
		l.Dimensions[dimWidth] = boundAxis(style, dimWidth, paddingBorderTotal(style, Row))
	}
	if isUndefined(l.Dimensions[dimHeight]) {
		l.Dimensions[dimHeight] = boundAxis(style, dimHeight, paddingBorderTotal(style, Column))
	}
}

// relativePositionDelta returns style.Position[leading] if defined, else
// -style.Position[trailing] if that is defined, else 0 — the "leading minus
// trailing if leading is NaN" rule of §4.5.2, applied independently to
// leading=true/false.
func relativePositionDelta(style Style, axis FlexDirection, leading bool) float32 {
	if style.PositionType != PositionRelative {
		return 0
	}
	edge, other := leadingPos(axis), trailingPos(axis)
	if !leading {
		edge, other = other, edge
	}
	if isDefined(style.Position[edge]) {
		return style.Position[edge]
	}
	if isDefined(style.Position[other]) {
		return -style.Position[other]
	}
	return 0
}

func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
