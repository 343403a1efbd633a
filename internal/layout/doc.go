// Package layout implements a pure-Go flexbox layout engine.
//
// It supports row/column flex directions (and their reverse variants), wrap,
// justify-content, align-items/self/content, absolute and relative
// positioning, LTR/RTL direction inheritance, fixed and flexible sizing,
// min/max bounds, margin/padding/border, and a host-supplied measurement
// callback for leaf content such as text.
//
// The main entry point is [CalculateLayout], which takes a [Node] tree and a
// parent width constraint and computes absolute position and size for every
// node. Types are re-exported through the root flexlayout package for public
// consumption.
package layout
