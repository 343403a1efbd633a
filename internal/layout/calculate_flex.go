package layout

// lineResult accumulates what Loops A and B learn about one flex line before
// Loop C positions it.
type lineResult struct {
	startLine, endLine      int
	mainContentDim          float32
	flexibleChildrenCount   int
	nonFlexibleChildrenCount int
	totalFlex               float32
	firstFlexChild          *Node
	lastFlexChild           *Node
}

func (l *lineResult) itemCount() int {
	return l.flexibleChildrenCount + l.nonFlexibleChildrenCount
}

// rowInnerWidth returns the already-resolved inner (content-box) width of
// node along the physical row axis, or undefined if node's width is itself
// unresolved on this pass — the width a child recursion should be told as
// parentMaxWidth (§4.4: parentMaxWidth always means the row/width axis).
func rowInnerWidth(node *Node, style Style, mainAxis, crossAxis FlexDirection) float32 {
	w := node.layout.Dimensions[dimWidth]
	if isUndefined(w) {
		return undefined
	}
	rowAxis := mainAxis
	if !isRowAxis(mainAxis) {
		rowAxis = crossAxis
	}
	return w - paddingBorderTotal(style, rowAxis)
}

// layoutLineLoopA implements §4.5.4: starting at startLine, walk children,
// classifying each as absolute (linked into the node-level absolute chain
// and skipped for flow purposes), flexible (deferred to Loop B), or ordinary
// relative (stretch-prefilled on the cross axis and recursively laid out
// immediately to learn its main-axis size). It stops and opens a new line
// when flexWrap is set and the next child would overflow the available main
// space.
func layoutLineLoopA(
	ctx *layoutContext,
	node *Node,
	style Style,
	mainAxis, crossAxis FlexDirection,
	startLine int,
	lineIndex int,
	availableInnerMain, availableInnerCross float32,
	mainDimDefined, crossDimDefined bool,
	parentMaxWidth float32,
	absChain *absoluteChain,
) lineResult {
	line := lineResult{startLine: startLine, endLine: len(node.children)}

	childParentMaxWidth := rowInnerWidth(node, style, mainAxis, crossAxis)
	if isUndefined(childParentMaxWidth) {
		childParentMaxWidth = parentMaxWidth
	}

	for i := startLine; i < len(node.children); i++ {
		child := node.children[i]

		if child.Style.PositionType == PositionAbsolute {
			absChain.append(child)
			continue
		}

		if isFlexible(child, mainDimDefined) {
			child.layout.lineIndex = lineIndex
			if line.firstFlexChild == nil {
				line.firstFlexChild = child
			} else {
				line.lastFlexChild.layout.nextFlexChild = child
			}
			line.lastFlexChild = child
			line.flexibleChildrenCount++
			line.totalFlex += child.Style.Flex
			continue
		}

		align := effectiveAlign(style.AlignItems, child.Style.AlignSelf)
		if align == AlignStretch && crossDimDefined && !isStyleDimDefined(child.Style, dim(crossAxis)) {
			crossAvailable := availableInnerCross - marginAxisTotal(child.Style, crossAxis)
			floor := paddingBorderTotal(child.Style, crossAxis)
			child.layout.Dimensions[dim(crossAxis)] = boundAxis(child.Style, dim(crossAxis), maxf(crossAvailable, floor))
			child.layout.preSizedDim[dim(crossAxis)] = true
		}

		// A child that opens a wrapped line was already laid out when it broke
		// the previous line, so it is not laid out (or measured) a second time.
		if i != startLine || startLine == 0 {
			layoutNode(ctx, child, childParentMaxWidth, node.layout.Direction)
		}

		childMainOuter := child.layout.Dimensions[dim(mainAxis)] + marginAxisTotal(child.Style, mainAxis)

		if style.FlexWrap == Wrap && mainDimDefined && line.itemCount() > 0 &&
			line.mainContentDim+childMainOuter > availableInnerMain+tolerance {
			line.endLine = i
			return line
		}

		child.layout.lineIndex = lineIndex
		line.mainContentDim += childMainOuter
		line.nonFlexibleChildrenCount++
	}

	return line
}

// resolveFlexLine implements §4.5.5 Loop B: distribute the line's remaining
// main-axis space across its flexible children in proportion to Flex,
// clamping each to its own min/max bound and repeating the distribution until
// no further child freezes, so a child that hits its bound frees its share
// for the rest.
func resolveFlexLine(ctx *layoutContext, node *Node, style Style, mainAxis, crossAxis FlexDirection, line *lineResult, availableInnerMain float32, direction Direction, parentMaxWidth float32) {
	if line.flexibleChildrenCount == 0 {
		return
	}

	remaining := availableInnerMain - line.mainContentDim
	if isUndefined(availableInnerMain) {
		remaining = 0
	}

	type flexItem struct {
		child  *Node
		frozen bool
		size   float32
	}
	items := make([]flexItem, 0, line.flexibleChildrenCount)
	for c := line.firstFlexChild; c != nil; {
		next := c.layout.nextFlexChild
		c.layout.nextFlexChild = nil
		items = append(items, flexItem{child: c})
		c = next
	}

	// Two-phase clamp: repeatedly distribute the remaining space over the
	// still-unfrozen children; any child whose share would violate its own
	// min/max bound freezes at that bound and its share is removed from
	// both the pool and the flex total, then the remainder redistributes.
	for pass := 0; pass < len(items)+1; pass++ {
		anyFrozen := false
		unfrozenFlex := float32(0)
		for _, it := range items {
			if !it.frozen {
				unfrozenFlex += it.child.Style.Flex
			}
		}
		if unfrozenFlex <= 0 {
			break
		}
		pool := remaining
		for i := range items {
			it := &items[i]
			if it.frozen {
				continue
			}
			share := pool * (it.child.Style.Flex / unfrozenFlex)
			// The legacy single-value Flex field has no separate flex-basis
			// slot, so a flexible child's basis is always 0 — its whole main
			// size comes from its share of the line's remaining space.
			proposed := maxf(share, paddingBorderTotal(it.child.Style, mainAxis))
			bounded := boundAxis(it.child.Style, dim(mainAxis), proposed)
			if !floatsEqual(bounded, proposed) {
				it.size = bounded
				it.frozen = true
				remaining -= bounded
				anyFrozen = true
			}
		}
		if !anyFrozen {
			for i := range items {
				if !items[i].frozen {
					items[i].size = remaining * (items[i].child.Style.Flex / unfrozenFlex)
					items[i].frozen = true
				}
			}
			break
		}
	}

	childParentMaxWidth := rowInnerWidth(node, style, mainAxis, crossAxis)
	if isUndefined(childParentMaxWidth) {
		childParentMaxWidth = parentMaxWidth
	}

	for _, it := range items {
		floor := paddingBorderTotal(it.child.Style, mainAxis)
		it.child.layout.Dimensions[dim(mainAxis)] = maxf(it.size, floor)
		it.child.layout.preSizedDim[dim(mainAxis)] = true
		line.mainContentDim += it.child.layout.Dimensions[dim(mainAxis)] + marginAxisTotal(it.child.Style, mainAxis)

		align := effectiveAlign(style.AlignItems, it.child.Style.AlignSelf)
		crossDim := node.layout.Dimensions[dim(crossAxis)]
		if align == AlignStretch && isDefined(crossDim) && !isStyleDimDefined(it.child.Style, dim(crossAxis)) {
			innerCross := crossDim - paddingBorderTotal(style, crossAxis) - marginAxisTotal(it.child.Style, crossAxis)
			it.child.layout.Dimensions[dim(crossAxis)] = boundAxis(it.child.Style, dim(crossAxis), maxf(innerCross, paddingBorderTotal(it.child.Style, crossAxis)))
			it.child.layout.preSizedDim[dim(crossAxis)] = true
		}

		layoutNode(ctx, it.child, childParentMaxWidth, direction)
	}
}

// justifyOffsets implements the §4.5.6 table: the leading offset applied
// before the first item and the extra space inserted between items, given
// how much slack (available - content) the line has and how many items it
// holds.
func justifyOffsets(justify Justify, available, content float32, count int) (leading, between float32) {
	if isUndefined(available) {
		return 0, 0
	}
	slack := available - content
	switch justify {
	case JustifyFlexStart:
		return 0, 0
	case JustifyCenter:
		return slack / 2, 0
	case JustifyFlexEnd:
		return slack, 0
	case JustifySpaceBetween:
		if slack < 0 {
			slack = 0
		}
		if count <= 1 {
			return 0, 0
		}
		return 0, slack / float32(count-1)
	case JustifySpaceAround:
		if count <= 0 {
			return 0, 0
		}
		each := slack / float32(count)
		return each / 2, each
	default:
		return 0, 0
	}
}
