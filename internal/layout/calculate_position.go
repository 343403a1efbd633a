package layout

// lineSpan records where one flex line sits once Loop C/D have positioned
// it, so Loop E (align-content) can later shift the whole line by a uniform
// delta without re-walking classification.
type lineSpan struct {
	start, end int
	crossDim   float32
	base       float32
}

// layoutChildren runs Loops A through G over node's children: line-by-line
// classification and flex resolution, main/cross positioning, multi-line
// align-content, intrinsic sizing, and finally absolute children (§4.5).
func layoutChildren(ctx *layoutContext, node *Node, style Style, mainAxis, crossAxis, rowAxis FlexDirection, direction Direction, parentMaxWidth float32) {
	mainDimDefined := isDefined(node.layout.Dimensions[dim(mainAxis)])
	crossDimDefined := isDefined(node.layout.Dimensions[dim(crossAxis)])

	availableInnerMain := undefined
	if mainDimDefined {
		availableInnerMain = node.layout.Dimensions[dim(mainAxis)] - paddingBorderTotal(style, mainAxis)
	}
	availableInnerCross := undefined
	if crossDimDefined {
		availableInnerCross = node.layout.Dimensions[dim(crossAxis)] - paddingBorderTotal(style, crossAxis)
	}

	absChain := &absoluteChain{}

	var lines []lineSpan
	totalLinesCrossDim := float32(0)
	maxLineMainDim := float32(0)
	crossCursor := paddingBorderLeading(style, crossAxis)

	startLine := 0
	lineIndex := 0
	for startLine < len(node.children) {
		line := layoutLineLoopA(ctx, node, style, mainAxis, crossAxis, startLine, lineIndex,
			availableInnerMain, availableInnerCross, mainDimDefined, crossDimDefined, parentMaxWidth, absChain)

		resolveFlexLine(ctx, node, style, mainAxis, crossAxis, &line, availableInnerMain, direction, parentMaxWidth)

		leadingMain, betweenMain := justifyOffsets(style.JustifyContent, availableInnerMain, line.mainContentDim, line.itemCount())
		mainCursor := paddingBorderLeading(style, mainAxis) + leadingMain

		lineCross := positionLine(node, style, mainAxis, crossAxis, line.startLine, line.endLine,
			mainCursor, betweenMain, crossCursor, availableInnerCross, crossDimDefined)

		lines = append(lines, lineSpan{start: line.startLine, end: line.endLine, crossDim: lineCross, base: crossCursor})
		totalLinesCrossDim += lineCross
		crossCursor += lineCross
		if line.mainContentDim > maxLineMainDim {
			maxLineMainDim = line.mainContentDim
		}

		startLine = line.endLine
		lineIndex++
	}

	if style.FlexWrap == Wrap && lineIndex > 1 {
		alignContentLines(node, style, crossAxis, lines, availableInnerCross, crossDimDefined)
	}

	if !mainDimDefined {
		node.layout.Dimensions[dim(mainAxis)] = boundAxis(style, dim(mainAxis), maxLineMainDim+paddingBorderTotal(style, mainAxis))
	}
	if !crossDimDefined {
		node.layout.Dimensions[dim(crossAxis)] = boundAxis(style, dim(crossAxis), totalLinesCrossDim+paddingBorderTotal(style, crossAxis))
	}

	backfillTrailingPositions(node, mainAxis, crossAxis)

	layoutAbsoluteChildren(ctx, node, style, absChain.first, direction, parentMaxWidth)
}

// positionLine implements Loops C and D for one line: walk its relative
// children in order, accumulating the main-axis cursor (justify-spaced) and
// placing each child's cross-axis leading edge according to its effective
// Align. Returns the line's cross extent (the largest child outer cross
// size), which the caller needs for intrinsic sizing and align-content.
func positionLine(node *Node, style Style, mainAxis, crossAxis FlexDirection, start, end int,
	mainCursor, betweenMain, crossBase, availableInnerCross float32, crossDimDefined bool) float32 {

	lineCross := float32(0)
	for i := start; i < end; i++ {
		child := node.children[i]
		if child.Style.PositionType == PositionAbsolute {
			continue
		}

		child.layout.Position[leadingPos(mainAxis)] += mainCursor
		mainCursor += child.layout.Dimensions[dim(mainAxis)] + marginAxisTotal(child.Style, mainAxis) + betweenMain

		childCrossOuter := child.layout.Dimensions[dim(crossAxis)] + marginAxisTotal(child.Style, crossAxis)
		crossPos := float32(0)
		if crossDimDefined {
			switch effectiveAlign(style.AlignItems, child.Style.AlignSelf) {
			case AlignCenter:
				crossPos = (availableInnerCross - childCrossOuter) / 2
			case AlignFlexEnd:
				crossPos = availableInnerCross - childCrossOuter
			}
		}
		child.layout.Position[leadingPos(crossAxis)] += crossBase + crossPos

		if childCrossOuter > lineCross {
			lineCross = childCrossOuter
		}
	}
	return lineCross
}

// alignContentLines implements Loop E: when flexWrap produced more than one
// line, reflow each line's base offset according to AlignContent and shift
// every child already positioned on that line by the resulting delta.
func alignContentLines(node *Node, style Style, crossAxis FlexDirection, lines []lineSpan, availableInnerCross float32, crossDimDefined bool) {
	if !crossDimDefined {
		return
	}
	total := float32(0)
	for _, l := range lines {
		total += l.crossDim
	}
	leading, between := alignContentOffsets(style.AlignContent, availableInnerCross, total, len(lines))

	cursor := paddingBorderLeading(style, crossAxis) + leading
	for _, l := range lines {
		delta := cursor - l.base
		for i := l.start; i < l.end; i++ {
			child := node.children[i]
			if child.Style.PositionType == PositionAbsolute {
				continue
			}
			child.layout.Position[leadingPos(crossAxis)] += delta
		}
		cursor += l.crossDim + between
	}
}

// alignContentOffsets maps AlignContent to a leading offset and an
// inter-line gap, mirroring justifyOffsets but over Align's narrower value
// set (no space-between/space-around): Stretch follows every line, the last
// one included, with an equal share (slack / lineCount) of the slack, since
// the lines' own cross sizes are left alone.
func alignContentOffsets(align Align, available, content float32, lineCount int) (leading, between float32) {
	if isUndefined(available) {
		return 0, 0
	}
	slack := available - content
	if slack < 0 {
		slack = 0
	}
	switch align {
	case AlignCenter:
		return slack / 2, 0
	case AlignFlexEnd:
		return slack, 0
	case AlignStretch:
		if lineCount > 0 {
			return 0, slack / float32(lineCount)
		}
		return 0, 0
	default: // FlexStart, Auto
		return 0, 0
	}
}

// backfillTrailingPositions implements Loop F: once node's own main and
// cross dimensions are final (post intrinsic-sizing), recompute every
// relative child's trailing position from its now-settled leading position
// and size. This is what makes testable property 3 (leading + dim +
// trailing == parent dim) hold on any axis where the parent dimension is
// resolved, and it is direction-correct for *Reverse axes for free since
// leadingPos/trailingPos are already direction-resolved.
func backfillTrailingPositions(node *Node, mainAxis, crossAxis FlexDirection) {
	mainDim := node.layout.Dimensions[dim(mainAxis)]
	crossDim := node.layout.Dimensions[dim(crossAxis)]
	for _, child := range node.children {
		if child.Style.PositionType == PositionAbsolute {
			continue
		}
		if isDefined(mainDim) {
			child.layout.Position[trailingPos(mainAxis)] = mainDim - child.layout.Dimensions[dim(mainAxis)] - child.layout.Position[leadingPos(mainAxis)]
		}
		if isDefined(crossDim) {
			child.layout.Position[trailingPos(crossAxis)] = crossDim - child.layout.Dimensions[dim(crossAxis)] - child.layout.Position[leadingPos(crossAxis)]
		}
	}
}

// absoluteChain is the node-level linked list of absolutely positioned
// children, spanning every line — absolute children never affect flow,
// wrap, or flex distribution.
type absoluteChain struct {
	first, last *Node
}

func (c *absoluteChain) append(child *Node) {
	if c.first == nil {
		c.first = child
	} else {
		c.last.layout.nextAbsoluteChild = child
	}
	c.last = child
}

// layoutAbsoluteChildren implements Loop G: an absolutely positioned child
// is sized first (an explicit style dimension wins; lacking that, opposite
// offsets both being set implies a size; otherwise it sizes itself
// intrinsically like any other node) and then placed against whichever
// offsets its style defines, defaulting to the content box's leading edge.
func layoutAbsoluteChildren(ctx *layoutContext, node *Node, style Style, first *Node, direction Direction, parentMaxWidth float32) {
	for child := first; child != nil; {
		next := child.layout.nextAbsoluteChild
		child.layout.nextAbsoluteChild = nil
		for _, axis := range [2]FlexDirection{Row, Column} {
			d := dim(axis)
			parentDim := node.layout.Dimensions[d]
			leadOff := child.Style.Position[leadingPos(axis)]
			trailOff := child.Style.Position[trailingPos(axis)]
			if !isStyleDimDefined(child.Style, d) && isDefined(leadOff) && isDefined(trailOff) && isDefined(parentDim) {
				content := parentDim - paddingBorderTotal(style, axis)
				size := content - leadOff - trailOff - marginAxisTotal(child.Style, axis)
				child.layout.Dimensions[d] = boundAxis(child.Style, d, maxf(size, paddingBorderTotal(child.Style, axis)))
				child.layout.preSizedDim[d] = true
			}
		}

		childParentMaxWidth := parentMaxWidth
		if isDefined(node.layout.Dimensions[dimWidth]) {
			childParentMaxWidth = node.layout.Dimensions[dimWidth] - paddingBorderTotal(style, Row)
		}
		layoutNode(ctx, child, childParentMaxWidth, direction)

		for _, axis := range [2]FlexDirection{Row, Column} {
			d := dim(axis)
			parentDim := node.layout.Dimensions[d]
			leadOff := child.Style.Position[leadingPos(axis)]
			trailOff := child.Style.Position[trailingPos(axis)]
			switch {
			case isDefined(leadOff):
				child.layout.Position[leadingPos(axis)] = leadOff + style.Border.leading(axis) + child.Style.Margin.leading(axis)
			case isDefined(trailOff) && isDefined(parentDim):
				child.layout.Position[leadingPos(axis)] = parentDim - style.Border.trailing(axis) - trailOff - child.layout.Dimensions[d] - child.Style.Margin.trailing(axis)
			default:
				child.layout.Position[leadingPos(axis)] = paddingBorderLeading(style, axis) + child.Style.Margin.leading(axis)
			}
			if isDefined(parentDim) {
				child.layout.Position[trailingPos(axis)] = parentDim - child.layout.Dimensions[d] - child.layout.Position[leadingPos(axis)]
			}
		}
		child = next
	}
}
