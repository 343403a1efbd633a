package layout

import "testing"

// TestJustify_SpaceBetweenSeedScenario is seed scenario 3.
func TestJustify_SpaceBetweenSeedScenario(t *testing.T) {
	root := NewNode(DefaultStyle())
	root.Style.Dimensions[dimWidth] = 300
	root.Style.Dimensions[dimHeight] = 50
	root.Style.FlexDirection = Row
	root.Style.JustifyContent = JustifySpaceBetween

	c1 := leaf(50, 50)
	c2 := leaf(50, 50)
	c3 := leaf(50, 50)
	root.AddChild(c1)
	root.AddChild(c2)
	root.AddChild(c3)

	CalculateLayout(root, 300)

	wantX := []float32{0, 125, 250}
	for i, c := range []*Node{c1, c2, c3} {
		if got := c.LayoutX(); got != wantX[i] {
			t.Errorf("child %d X = %v, want %v", i, got, wantX[i])
		}
	}
}

func TestJustify_SpaceBetweenSingleChildHasNoGap(t *testing.T) {
	root := NewNode(DefaultStyle())
	root.Style.Dimensions[dimWidth] = 200
	root.Style.Dimensions[dimHeight] = 50
	root.Style.FlexDirection = Row
	root.Style.JustifyContent = JustifySpaceBetween

	child := leaf(50, 50)
	root.AddChild(child)

	CalculateLayout(root, 200)

	if got := child.LayoutX(); got != 0 {
		t.Errorf("single SpaceBetween child X = %v, want 0", got)
	}
}

func TestJustify_SpaceAroundSingleChildIsCentered(t *testing.T) {
	root := NewNode(DefaultStyle())
	root.Style.Dimensions[dimWidth] = 200
	root.Style.Dimensions[dimHeight] = 50
	root.Style.FlexDirection = Row
	root.Style.JustifyContent = JustifySpaceAround

	child := leaf(50, 50)
	root.AddChild(child)

	CalculateLayout(root, 200)

	// Slack 150 split into two equal gaps (each/2 leading): (150/1)/2 = 75.
	if got := child.LayoutX(); got != 75 {
		t.Errorf("single SpaceAround child X = %v, want 75 (centered)", got)
	}
}

func TestJustify_Center(t *testing.T) {
	root := NewNode(DefaultStyle())
	root.Style.Dimensions[dimWidth] = 200
	root.Style.Dimensions[dimHeight] = 50
	root.Style.FlexDirection = Row
	root.Style.JustifyContent = JustifyCenter

	child := leaf(50, 50)
	root.AddChild(child)

	CalculateLayout(root, 200)

	if got := child.LayoutX(); got != 75 {
		t.Errorf("centered child X = %v, want 75", got)
	}
}

func TestAlign_StretchLeavesStyledCrossDimAlone(t *testing.T) {
	root := NewNode(DefaultStyle())
	root.Style.Dimensions[dimWidth] = 100
	root.Style.Dimensions[dimHeight] = 80
	root.Style.FlexDirection = Row
	root.Style.AlignItems = AlignStretch

	child := NewNode(DefaultStyle())
	child.Style.Dimensions[dimWidth] = 30
	child.Style.Dimensions[dimHeight] = 20 // explicitly styled cross dim
	root.AddChild(child)

	CalculateLayout(root, 100)

	if got := child.LayoutHeight(); got != 20 {
		t.Errorf("styled cross dim changed under stretch: got %v, want 20", got)
	}
}

func TestAlign_StretchFillsUnstyledCrossDim(t *testing.T) {
	root := NewNode(DefaultStyle())
	root.Style.Dimensions[dimWidth] = 100
	root.Style.Dimensions[dimHeight] = 80
	root.Style.FlexDirection = Row
	root.Style.AlignItems = AlignStretch

	child := NewNode(DefaultStyle())
	child.Style.Dimensions[dimWidth] = 30
	root.AddChild(child)

	CalculateLayout(root, 100)

	if got := child.LayoutHeight(); got != 80 {
		t.Errorf("unstyled cross dim under stretch = %v, want 80", got)
	}
}

func TestAlign_FlexEndAndCenterOnCrossAxis(t *testing.T) {
	root := NewNode(DefaultStyle())
	root.Style.Dimensions[dimWidth] = 100
	root.Style.Dimensions[dimHeight] = 100
	root.Style.FlexDirection = Row

	end := leaf(20, 20)
	end.Style.AlignSelf = AlignFlexEnd
	center := leaf(20, 20)
	center.Style.AlignSelf = AlignCenter

	root.AddChild(end)
	root.AddChild(center)

	CalculateLayout(root, 100)

	if got := end.LayoutY(); got != 80 {
		t.Errorf("flex-end child Y = %v, want 80", got)
	}
	if got := center.LayoutY(); got != 40 {
		t.Errorf("center child Y = %v, want 40", got)
	}
}

func TestAlignContent_MultiLineStretchSpreadsGapsNotChildSizes(t *testing.T) {
	root := NewNode(DefaultStyle())
	root.Style.Dimensions[dimWidth] = 120
	root.Style.Dimensions[dimHeight] = 200
	root.Style.FlexDirection = Row
	root.Style.FlexWrap = Wrap
	root.Style.AlignContent = AlignStretch

	var children []*Node
	for i := 0; i < 4; i++ {
		c := leaf(60, 20)
		children = append(children, c)
		root.AddChild(c)
	}

	CalculateLayout(root, 120)

	// Each line's own children keep their styled height of 20; the 160px of
	// leftover cross space (200 - 2*20) is spread as inter-line gap, not
	// injected into any child's own dimension.
	for i, c := range children {
		if got := c.LayoutHeight(); got != 20 {
			t.Errorf("child %d height = %v, want 20 (unchanged by AlignContent stretch)", i, got)
		}
	}
	if got := children[2].LayoutY(); got != 100 {
		t.Errorf("second line Y = %v, want 100 (20 + 80 gap)", got)
	}
}
