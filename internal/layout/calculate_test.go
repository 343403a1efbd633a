package layout

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// TestCalculate_RowTwoEqualFlexChildren is seed scenario 1.
func TestCalculate_RowTwoEqualFlexChildren(t *testing.T) {
	root := NewNode(DefaultStyle())
	root.Style.Dimensions[dimWidth] = 200
	root.Style.Dimensions[dimHeight] = 50
	root.Style.FlexDirection = Row

	a := NewNode(DefaultStyle())
	a.Style.Flex = 1
	b := NewNode(DefaultStyle())
	b.Style.Flex = 1
	root.AddChild(a)
	root.AddChild(b)

	CalculateLayout(root, 200)

	want := []rect{{X: 0, Y: 0, W: 100, H: 50}, {X: 100, Y: 0, W: 100, H: 50}}
	got := []rect{layoutRect(a), layoutRect(b)}
	if diff := cmp.Diff(want, got, floatCmp); diff != "" {
		t.Errorf("flex children mismatch (-want +got):\n%s", diff)
	}
}

// TestCalculate_PaddingPlusFlex is seed scenario 2.
func TestCalculate_PaddingPlusFlex(t *testing.T) {
	root := NewNode(DefaultStyle())
	root.Style.Dimensions[dimWidth] = 100
	root.Style.Dimensions[dimHeight] = 100
	root.Style.FlexDirection = Column
	root.Style.Padding.Set(EdgeAll, 10)

	child := NewNode(DefaultStyle())
	child.Style.Flex = 1
	root.AddChild(child)

	CalculateLayout(root, 100)

	want := rect{X: 10, Y: 10, W: 80, H: 80}
	if diff := cmp.Diff(want, layoutRect(child), floatCmp); diff != "" {
		t.Errorf("padded flex child mismatch (-want +got):\n%s", diff)
	}
}

func TestCalculate_FixedSizeLeaf(t *testing.T) {
	node := leaf(50, 30)
	CalculateLayout(node, 100)

	if got := node.LayoutWidth(); got != 50 {
		t.Errorf("width = %v, want 50", got)
	}
	if got := node.LayoutHeight(); got != 30 {
		t.Errorf("height = %v, want 30", got)
	}
	if node.IsDirty() {
		t.Error("node should not be dirty after CalculateLayout")
	}
	if !node.HasNewLayout() {
		t.Error("node should have a pending HasNewLayout result")
	}
}

func TestCalculate_UnstyledRootFillsParentWidth(t *testing.T) {
	root := NewNode(DefaultStyle())
	CalculateLayout(root, 120)

	if got := root.LayoutWidth(); got != 120 {
		t.Errorf("root width = %v, want 120", got)
	}
}

func TestCalculate_NestedRowInColumn(t *testing.T) {
	root := NewNode(DefaultStyle())
	root.Style.Dimensions[dimWidth] = 200
	root.Style.Dimensions[dimHeight] = 100
	root.Style.FlexDirection = Row

	column := NewNode(DefaultStyle())
	column.Style.Dimensions[dimWidth] = 100
	column.Style.Dimensions[dimHeight] = 100
	column.Style.FlexDirection = Column

	g1 := leaf(100, 40)
	g2 := leaf(100, 60)
	column.AddChild(g1)
	column.AddChild(g2)
	root.AddChild(column)

	CalculateLayout(root, 300)

	if diff := cmp.Diff(rect{X: 0, Y: 0, W: 100, H: 100}, layoutRect(column), floatCmp); diff != "" {
		t.Errorf("column mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(rect{X: 0, Y: 0, W: 100, H: 40}, layoutRect(g1), floatCmp); diff != "" {
		t.Errorf("g1 mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(rect{X: 0, Y: 40, W: 100, H: 60}, layoutRect(g2), floatCmp); diff != "" {
		t.Errorf("g2 mismatch (-want +got):\n%s", diff)
	}
}

// TestCalculate_Idempotence covers testable property 5: a second
// CalculateLayout with no mutations is a pure cache hit and does not flip
// HasNewLayout back to Dirty.
func TestCalculate_Idempotence(t *testing.T) {
	root := NewNode(DefaultStyle())
	root.Style.Dimensions[dimWidth] = 200
	root.Style.Dimensions[dimHeight] = 50
	root.Style.FlexDirection = Row

	child := NewNode(DefaultStyle())
	child.Style.Flex = 1
	root.AddChild(child)

	CalculateLayout(root, 200)
	first := layoutRect(child)
	root.MarkLayoutSeen()
	child.MarkLayoutSeen()

	CalculateLayout(root, 200)
	second := layoutRect(child)

	if diff := cmp.Diff(first, second, floatCmp); diff != "" {
		t.Errorf("second CalculateLayout changed the result (-first +second):\n%s", diff)
	}
	if root.IsDirty() || child.IsDirty() {
		t.Error("clean re-layout should not mark nodes dirty")
	}
}

// TestCalculate_StyleMutationInvalidatesCache exercises the counterpart of
// idempotence: changing a style value must force a real recompute, not a
// stale cache hit.
func TestCalculate_StyleMutationInvalidatesCache(t *testing.T) {
	root := NewNode(DefaultStyle())
	root.Style.Dimensions[dimWidth] = 200
	root.Style.Dimensions[dimHeight] = 50
	root.Style.FlexDirection = Row

	child := NewNode(DefaultStyle())
	child.SetWidth(50)
	root.AddChild(child)

	CalculateLayout(root, 200)
	if got := child.LayoutWidth(); got != 50 {
		t.Fatalf("width = %v, want 50", got)
	}
	root.MarkLayoutSeen()
	child.MarkLayoutSeen()

	child.SetWidth(80)
	CalculateLayout(root, 200)
	if got := child.LayoutWidth(); got != 80 {
		t.Errorf("width after mutation = %v, want 80", got)
	}
}

// TestCalculate_ClearingStyleWidthFallsBackToAuto guards the staleness fix:
// resetting an explicit width back to auto must not leave the old value
// cached in the computed layout.
func TestCalculate_ClearingStyleWidthFallsBackToAuto(t *testing.T) {
	root := NewNode(DefaultStyle())
	root.Style.Dimensions[dimWidth] = 200
	root.Style.Dimensions[dimHeight] = 50
	root.Style.FlexDirection = Row

	child := NewNode(DefaultStyle())
	child.SetWidth(80)
	root.AddChild(child)

	CalculateLayout(root, 200)
	root.MarkLayoutSeen()
	child.MarkLayoutSeen()

	child.SetWidth(undefined)
	CalculateLayout(root, 200)

	// Childless, unmeasured, unstyled: intrinsic size is padding+border only.
	if got := child.LayoutWidth(); got != 0 {
		t.Errorf("width after clearing to auto = %v, want 0 (no stale 80 retained)", got)
	}
}
