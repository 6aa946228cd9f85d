package cssconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultMatchesSpecDefaults(t *testing.T) {
	cfg := Default()
	require.True(t, cfg.SemanticTokens.Enable)
	require.True(t, cfg.HoverSettings.Documentation)
	require.True(t, cfg.HoverSettings.References)
}

func TestLoadOverridesOnlyGivenFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "csslsp.yaml")
	require.NoError(t, os.WriteFile(path, []byte("semanticTokens:\n  enable: false\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.False(t, cfg.SemanticTokens.Enable)
	require.True(t, cfg.HoverSettings.Documentation)
	require.True(t, cfg.HoverSettings.References)
}

func TestParseEmptyPayloadReturnsDefaults(t *testing.T) {
	cfg, err := Parse(nil)
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

func TestParseJSONPayload(t *testing.T) {
	cfg, err := Parse([]byte(`{"hover": {"documentation": false, "references": true}}`))
	require.NoError(t, err)
	require.False(t, cfg.HoverSettings.Documentation)
	require.True(t, cfg.HoverSettings.References)
}

func TestHoverSettingsForAdapts(t *testing.T) {
	cfg := Config{HoverSettings: Hover{Documentation: true, References: false}}
	hs := cfg.HoverSettingsFor()
	require.True(t, hs.Documentation)
	require.False(t, hs.References)
}
