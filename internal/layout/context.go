package layout

// layoutContext is the per-CalculateLayout scratch area threaded by
// reference through every recursive layoutNode call. It exists solely to
// give MeasureFunction callbacks a caller-owned buffer to write into instead
// of allocating a fresh MeasureOutput per leaf (§4.6). Not safe for use from
// more than one goroutine at a time — the whole engine is single-threaded.
type layoutContext struct {
	measureOutput MeasureOutput
}

func newLayoutContext() *layoutContext {
	return &layoutContext{}
}
