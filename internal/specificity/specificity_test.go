package specificity

import (
	"testing"

	"github.com/csslsp/csslsp/internal/cssast"
	"github.com/csslsp/csslsp/internal/cssdoc"
	"github.com/csslsp/csslsp/internal/csskind"
	"github.com/csslsp/csslsp/internal/csstree"
	"github.com/stretchr/testify/require"
)

func findFirstSelector(root *csstree.RedNode) *csstree.RedNode {
	var found *csstree.RedNode
	root.Preorder(func(n *csstree.RedNode) bool {
		if found != nil {
			return false
		}
		if n.Kind() == csskind.SELECTOR {
			found = n
			return false
		}
		return true
	})
	return found
}

func TestSpecificityExampleFromSpec(t *testing.T) {
	// spec.md §8 scenario 4: #foo:is(.bar, tag tag) => (1, 1, 0)
	doc := cssdoc.NewDetached("#foo:is(.bar, tag tag) {}")
	root := doc.Root()

	found := findFirstSelector(root)
	require.NotNil(t, found)

	sel, ok := cssast.CastSelector(found)
	require.True(t, ok)

	spec := OfSelector(sel)
	require.Equal(t, Specificity{ID: 1, Attr: 1, Tag: 0}, spec)
}

func TestSpecificityWhereIsZero(t *testing.T) {
	doc := cssdoc.NewDetached(".a:where(#b) {}")
	sel, ok := cssast.CastSelector(findFirstSelector(doc.Root()))
	require.True(t, ok)
	require.Equal(t, Specificity{ID: 0, Attr: 1, Tag: 0}, OfSelector(sel))
}

func TestSpecificityMonotonicity(t *testing.T) {
	base, ok := cssast.CastSelector(findFirstSelector(cssdoc.NewDetached("div {}").Root()))
	require.True(t, ok)
	withClass, ok := cssast.CastSelector(findFirstSelector(cssdoc.NewDetached("div.foo {}").Root()))
	require.True(t, ok)

	require.True(t, OfSelector(base).Less(OfSelector(withClass)))
}

func TestElementTreePreviewRendersTag(t *testing.T) {
	sel, ok := cssast.CastSelector(findFirstSelector(cssdoc.NewDetached("a.btn {}").Root()))
	require.True(t, ok)

	tree := ElementTree(sel)
	out := Preview(tree)
	require.Contains(t, out, "<a")
	require.Contains(t, out, `class="btn"`)
}
