package layout

// Direction is the node's writing/inheritance direction — LTR or RTL — or
// Inherit to take the resolved direction of the parent (LTR at the root).
type Direction uint8

const (
	DirectionInherit Direction = iota
	DirectionLTR
	DirectionRTL
)

// FlexDirection selects the main axis and its polarity.
type FlexDirection uint8

const (
	Column FlexDirection = iota
	ColumnReverse
	Row
	RowReverse
)

// isRowAxis reports whether axis runs horizontally.
func isRowAxis(axis FlexDirection) bool {
	return axis == Row || axis == RowReverse
}

// isColumnAxis reports whether axis runs vertically.
func isColumnAxis(axis FlexDirection) bool {
	return axis == Column || axis == ColumnReverse
}

// dimIndex selects a dimension slot is a [2]float32 (Style.Dimensions,
// MinDimensions, MaxDimensions) or Layout.Dimensions.
type dimIndex int

const (
	dimWidth dimIndex = iota
	dimHeight
)

// dim returns the dimension slot that axis occupies.
func dim(axis FlexDirection) dimIndex {
	if isRowAxis(axis) {
		return dimWidth
	}
	return dimHeight
}

// PositionEdge indexes the four position/offset slots: top, bottom, left, right.
type PositionEdge int

const (
	PosTop PositionEdge = iota
	PosBottom
	PosLeft
	PosRight
)

// leadingPos returns the position index that is "leading" for axis.
func leadingPos(axis FlexDirection) PositionEdge {
	switch axis {
	case Row:
		return PosLeft
	case RowReverse:
		return PosRight
	case Column:
		return PosTop
	default: // ColumnReverse
		return PosBottom
	}
}

// trailingPos returns the position index that is "trailing" for axis.
func trailingPos(axis FlexDirection) PositionEdge {
	switch axis {
	case Row:
		return PosRight
	case RowReverse:
		return PosLeft
	case Column:
		return PosBottom
	default: // ColumnReverse
		return PosTop
	}
}

// Justify specifies how children are distributed along the main axis.
type Justify uint8

const (
	JustifyFlexStart Justify = iota
	JustifyCenter
	JustifyFlexEnd
	JustifySpaceBetween
	JustifySpaceAround
)

// Align specifies cross-axis alignment, used for AlignItems, AlignSelf, and
// AlignContent. Auto is only meaningful for AlignSelf, where it means
// "inherit the parent's AlignItems".
type Align uint8

const (
	AlignAuto Align = iota
	AlignFlexStart
	AlignCenter
	AlignFlexEnd
	AlignStretch
)

// PositionType selects whether a node participates in flex flow (Relative)
// or is positioned by explicit offsets against its parent (Absolute).
type PositionType uint8

const (
	PositionRelative PositionType = iota
	PositionAbsolute
)

// FlexWrap controls whether a line of children wraps onto new lines.
type FlexWrap uint8

const (
	NoWrap FlexWrap = iota
	Wrap
)

// Style holds the per-node input attributes consumed by the solver.
// DefaultStyle sets every dimension, bound, position offset and spacing slot
// to undefined (NaN), matching the "all fields optional" contract of §3; a
// zero-value Style holds 0 in those fields instead.
type Style struct {
	Direction      Direction
	FlexDirection  FlexDirection
	FlexWrap       FlexWrap
	JustifyContent Justify
	AlignItems     Align
	AlignSelf      Align
	AlignContent   Align
	PositionType   PositionType

	Flex float32

	Dimensions    [2]float32 // width, height
	MinDimensions [2]float32
	MaxDimensions [2]float32

	// Position holds the four leading/trailing offsets (top, bottom, left,
	// right) used for both relative nudging and absolute placement.
	Position [4]float32

	Margin  Spacing
	Padding Spacing
	Border  Spacing
}

// DefaultStyle returns a Style with every field at its spec-defined default:
// FlexDirection Column, AlignItems Stretch, AlignContent FlexStart, AlignSelf
// Auto, Flex 0, and every other numeric slot undefined.
func DefaultStyle() Style {
	s := Style{
		FlexDirection: Column,
		AlignItems:    AlignStretch,
		AlignSelf:     AlignAuto,
		AlignContent:  AlignFlexStart,
		Margin:        NewSpacing(),
		Padding:       NewSpacing(),
		Border:        NewSpacing(),
	}
	for i := range s.Dimensions {
		s.Dimensions[i] = undefined
		s.MinDimensions[i] = undefined
		s.MaxDimensions[i] = undefined
	}
	for i := range s.Position {
		s.Position[i] = undefined
	}
	return s
}
