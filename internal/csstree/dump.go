package csstree

import (
	"fmt"
	"strings"
)

// Dump renders root in the debug tree-serialization form required by spec
// §6: "Kind[index](start+len=end) { … }", recursively, with leaf tokens
// rendered the same way (no trailing " { }" body). index is the child's
// position among its parent's children (0 for the root).
func Dump(root *RedNode) string {
	var b strings.Builder
	dumpNode(&b, root, 0, 0)
	return b.String()
}

func dumpNode(b *strings.Builder, n *RedNode, depth int, index int) {
	indent(b, depth)
	fmt.Fprintf(b, "%s[%d](%d+%d=%d) {\n", n.Kind(), index, n.Offset(), n.Green().TextLen(), n.EndOffset())
	for i, c := range n.Children() {
		if c.Node != nil {
			dumpNode(b, c.Node, depth+1, i)
		} else {
			dumpToken(b, c.Token, depth+1, i)
		}
	}
	indent(b, depth)
	b.WriteString("}\n")
}

func dumpToken(b *strings.Builder, t *RedToken, depth int, index int) {
	indent(b, depth)
	fmt.Fprintf(b, "%s[%d](%d+%d=%d) %q\n", t.Kind(), index, t.Offset(), t.Green().TextLen(), t.EndOffset(), t.Text())
}

func indent(b *strings.Builder, depth int) {
	for i := 0; i < depth; i++ {
		b.WriteString("  ")
	}
}

// DumpErrors renders a Parse's errors in the §6 debug tree-serialization
// form: one "message at [start..end)" line per error, in the order they
// were recorded.
func DumpErrors(errs []SyntaxError) string {
	var b strings.Builder
	for _, e := range errs {
		fmt.Fprintf(&b, "%s at %s\n", e.Message, e.Range.String())
	}
	return b.String()
}
