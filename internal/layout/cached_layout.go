package layout

// CachedLayout memoizes the inputs layoutNode last saw for a node, so a
// second call with unchanged inputs and a clean subtree can skip recompute
// entirely and copy the previous result (§4.4).
type CachedLayout struct {
	requestedWidth  float32
	requestedHeight float32
	parentMaxWidth  float32
	layout          Layout
	valid           bool
}

// matches reports whether requestedWidth/Height and parentMaxWidth are
// unchanged (within tolerance) from what produced the cached layout.
func (c CachedLayout) matches(requestedWidth, requestedHeight, parentMaxWidth float32) bool {
	return c.valid &&
		floatsEqual(c.requestedWidth, requestedWidth) &&
		floatsEqual(c.requestedHeight, requestedHeight) &&
		floatsEqual(c.parentMaxWidth, parentMaxWidth)
}
