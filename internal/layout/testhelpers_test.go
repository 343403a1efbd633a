package layout

import "github.com/google/go-cmp/cmp"

// rect is the comparable projection of a Layout used by table-driven tests
// that diff whole results with go-cmp instead of field-by-field assertions.
type rect struct {
	X, Y, W, H float32
}

func layoutRect(n *Node) rect {
	l := n.GetLayout()
	return rect{X: l.X(), Y: l.Y(), W: l.Width(), H: l.Height()}
}

// floatCmp treats two float32s as equal within tolerance, and two NaNs
// (undefined) as equal to each other, matching floatsEqual's semantics.
var floatCmp = cmp.Comparer(func(a, b float32) bool {
	return floatsEqual(a, b)
})

func newTestNode(style Style) *Node {
	return NewNode(style)
}

func leaf(width, height float32) *Node {
	s := DefaultStyle()
	s.Dimensions[dimWidth] = width
	s.Dimensions[dimHeight] = height
	return NewNode(s)
}
