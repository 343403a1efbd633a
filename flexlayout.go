// Package flexlayout re-exports the types and functions of internal/layout.
// Any changes to internal/layout types must be mirrored here.
package flexlayout

import "github.com/flexlayout/flexlayout/internal/layout"

// Direction specifies a node's writing/inheritance direction.
type Direction = layout.Direction

const (
	DirectionInherit = layout.DirectionInherit
	DirectionLTR     = layout.DirectionLTR
	DirectionRTL     = layout.DirectionRTL
)

// FlexDirection selects the main axis and its polarity.
type FlexDirection = layout.FlexDirection

const (
	Column        = layout.Column
	ColumnReverse = layout.ColumnReverse
	Row           = layout.Row
	RowReverse    = layout.RowReverse
)

// Justify specifies how children are distributed along the main axis.
type Justify = layout.Justify

const (
	JustifyFlexStart    = layout.JustifyFlexStart
	JustifyCenter       = layout.JustifyCenter
	JustifyFlexEnd      = layout.JustifyFlexEnd
	JustifySpaceBetween = layout.JustifySpaceBetween
	JustifySpaceAround  = layout.JustifySpaceAround
)

// Align specifies cross-axis alignment for AlignItems, AlignSelf, and
// AlignContent.
type Align = layout.Align

const (
	AlignAuto      = layout.AlignAuto
	AlignFlexStart = layout.AlignFlexStart
	AlignCenter    = layout.AlignCenter
	AlignFlexEnd   = layout.AlignFlexEnd
	AlignStretch   = layout.AlignStretch
)

// PositionType selects relative (flow) or absolute positioning.
type PositionType = layout.PositionType

const (
	PositionRelative = layout.PositionRelative
	PositionAbsolute = layout.PositionAbsolute
)

// FlexWrap controls whether a line of children wraps onto new lines.
type FlexWrap = layout.FlexWrap

const (
	NoWrap = layout.NoWrap
	Wrap   = layout.Wrap
)

// Style holds the per-node input attributes consumed by the solver.
type Style = layout.Style

// DefaultStyle returns a Style with every field at its spec-defined default.
func DefaultStyle() Style { return layout.DefaultStyle() }

// Spacing stores a per-edge numeric vector (margin, padding, or border).
type Spacing = layout.Spacing

// NewSpacing returns a Spacing with every slot unset.
func NewSpacing() Spacing { return layout.NewSpacing() }

// EdgeSlot indexes the nine logical slots of a Spacing.
type EdgeSlot = layout.EdgeSlot

const (
	EdgeLeft       = layout.EdgeLeft
	EdgeTop        = layout.EdgeTop
	EdgeRight      = layout.EdgeRight
	EdgeBottom     = layout.EdgeBottom
	EdgeStart      = layout.EdgeStart
	EdgeEnd        = layout.EdgeEnd
	EdgeHorizontal = layout.EdgeHorizontal
	EdgeVertical   = layout.EdgeVertical
	EdgeAll        = layout.EdgeAll
)

// PositionEdge indexes the four position/offset slots: top, bottom, left,
// right.
type PositionEdge = layout.PositionEdge

const (
	PosTop    = layout.PosTop
	PosBottom = layout.PosBottom
	PosLeft   = layout.PosLeft
	PosRight  = layout.PosRight
)

// Layout holds the computed position and size of a node after layout.
type Layout = layout.Layout

// MeasureOutput is the caller-owned scratch buffer a MeasureFunction writes
// its result into.
type MeasureOutput = layout.MeasureOutput

// MeasureFunction computes the intrinsic size of a leaf node's content.
type MeasureFunction = layout.MeasureFunction

// ErrorKind classifies the caller-bug conditions the engine detects.
type ErrorKind = layout.ErrorKind

const (
	TreeStructureViolation = layout.TreeStructureViolation
	ProtocolMisuse         = layout.ProtocolMisuse
	MeasureNotDefined      = layout.MeasureNotDefined
)

// LayoutError is the panic value the engine raises on caller misuse.
type LayoutError = layout.LayoutError

// Node is a single element of the layout tree.
type Node = layout.Node

// NewNode creates a detached node with the given style.
func NewNode(style Style) *Node { return layout.NewNode(style) }

// CalculateLayout runs the solver on the tree rooted at root, treating
// parentWidth as the available width constraint from the host.
func CalculateLayout(root *Node, parentWidth float32) { layout.CalculateLayout(root, parentWidth) }

// ToString renders an indented textual dump of node and its subtree, using
// "__" as the per-depth indent.
func ToString(node *Node) string { return layout.ToString(node) }
