package layout

import (
	"fmt"
	"strings"
)

// ToString renders an indented textual dump of node and its subtree (§6).
// Indentation uses a literal "__" prefix per depth rather than spaces, so
// the structure survives terminals or log pipelines that collapse
// whitespace.
func ToString(node *Node) string {
	var b strings.Builder
	writeNode(&b, node, 0)
	return b.String()
}

func writeNode(b *strings.Builder, node *Node, depth int) {
	b.WriteString(strings.Repeat("__", depth))
	fmt.Fprintf(b, "{x: %s, y: %s, w: %s, h: %s}\n",
		formatFloat(node.layout.X()),
		formatFloat(node.layout.Y()),
		formatFloat(node.layout.Width()),
		formatFloat(node.layout.Height()))
	for _, child := range node.children {
		writeNode(b, child, depth+1)
	}
}

func formatFloat(v float32) string {
	if isUndefined(v) {
		return "undefined"
	}
	return fmt.Sprintf("%g", v)
}
