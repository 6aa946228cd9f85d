package cssdata

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLookupPropertyIsCaseInsensitive(t *testing.T) {
	p, ok := LookupProperty("Background-Color")
	require.True(t, ok)
	require.Equal(t, "background-color", p.Name)
	require.Equal(t, StatusStandard, p.Status)
	require.NotEmpty(t, p.References)
}

func TestLookupPropertyMissing(t *testing.T) {
	_, ok := LookupProperty("not-a-real-property")
	require.False(t, ok)
}

func TestLookupAtDirectiveStripsLeadingAt(t *testing.T) {
	withAt, ok := LookupAtDirective("@media")
	require.True(t, ok)

	withoutAt, ok := LookupAtDirective("media")
	require.True(t, ok)

	require.Equal(t, withAt, withoutAt)
}

func TestLookupPseudoClassAndElement(t *testing.T) {
	_, ok := LookupPseudoClass("hover")
	require.True(t, ok)

	_, ok = LookupPseudoClass("before")
	require.False(t, ok, "before is a pseudo-element, not a pseudo-class")

	elem, ok := LookupPseudoElement("before")
	require.True(t, ok)
	require.Equal(t, "before", elem.Name)
}

func TestIsPseudoElementName(t *testing.T) {
	require.True(t, IsPseudoElementName("before"))
	require.True(t, IsPseudoElementName("AFTER"))
	require.False(t, IsPseudoElementName("hover"))
}

func TestEngineString(t *testing.T) {
	require.Equal(t, "Chrome", Chrome.String())
	require.Equal(t, "iOS Safari", IOS.String())
	require.Equal(t, "Unknown", Engine(255).String())
}

func TestObsoleteAndNonStandardStatusesPresent(t *testing.T) {
	zoom, ok := LookupProperty("zoom")
	require.True(t, ok)
	require.Equal(t, StatusNonStandard, zoom.Status)

	webkit, ok := LookupProperty("-webkit-box-orient")
	require.True(t, ok)
	require.Equal(t, StatusObsolete, webkit.Status)
}
