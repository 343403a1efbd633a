package layout

// layoutMeasuredLeaf implements §4.5.3: a node with an installed
// MeasureFunction gets its content size from that callback rather than from
// children. Styled dimensions, and any axis the parent (or CalculateLayout,
// for an unstyled root) pre-sized, still win outright; the callback only
// fills in whichever axis is still undefined.
func layoutMeasuredLeaf(ctx *layoutContext, node *Node, style Style, mainAxis, crossAxis, rowAxis FlexDirection, parentMaxWidth float32) {
	widthDefined := isDefined(node.layout.Dimensions[dimWidth])
	heightDefined := isDefined(node.layout.Dimensions[dimHeight])
	if widthDefined && heightDefined {
		return
	}

	availableWidth := measuredAvailableWidth(node, style, rowAxis, parentMaxWidth)
	measuredW, measuredH := node.measure(ctx, availableWidth)

	if !widthDefined && isDefined(measuredW) {
		node.layout.Dimensions[dimWidth] = boundAxis(style, dimWidth, measuredW+paddingBorderTotal(style, Row))
	}
	if !heightDefined && isDefined(measuredH) {
		node.layout.Dimensions[dimHeight] = boundAxis(style, dimHeight, measuredH+paddingBorderTotal(style, Column))
	}
}

// measuredAvailableWidth resolves the width a leaf's MeasureFunction should
// be told it has to work with: the node's own styled/already-laid-out width
// if known, falling back to the inherited parentMaxWidth minus this node's
// own row-axis margin. Every branch nets out this node's own padding+border,
// since the callback measures content, not border box (§4.5.3).
func measuredAvailableWidth(node *Node, style Style, rowAxis FlexDirection, parentMaxWidth float32) float32 {
	if isStyleDimDefined(style, dimWidth) {
		return style.Dimensions[dimWidth] - paddingBorderTotal(style, Row)
	}
	if isDefined(node.layout.Dimensions[dimWidth]) {
		return node.layout.Dimensions[dimWidth] - paddingBorderTotal(style, Row)
	}
	if isUndefined(parentMaxWidth) {
		return undefined
	}
	return parentMaxWidth - marginAxisTotal(style, rowAxis) - paddingBorderTotal(style, Row)
}
