package layout

// MeasureOutput is the caller-owned scratch buffer a MeasureFunction writes
// its result into. The engine owns one instance per calculateLayout pass,
// held in layoutContext, and reuses it across every measure call to avoid
// per-call allocation (§4.3, §4.6).
type MeasureOutput struct {
	Width  float32
	Height float32
}

// MeasureFunction computes the intrinsic size of a leaf node's content.
// availableWidth may be undefined (NaN), meaning unconstrained. Either
// returned dimension may be left undefined to signal "no intrinsic size" on
// that axis. A MeasureFunction must not mutate the tree and is invoked at
// most once per layout pass per leaf, always on the layout-owning thread.
type MeasureFunction func(node *Node, availableWidth float32, out *MeasureOutput)
