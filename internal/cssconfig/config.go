// Package cssconfig loads the two recognized option groups spec §6 names:
// `semanticTokens.enable` (drives dynamic registration/unregistration of
// the semantic-tokens capability) and `hover.documentation`/
// `hover.references` (drives hover content composition, internal/hover's
// Settings). The LSP client sends these as a workspace/didChangeConfiguration
// JSON payload, but the same shape is also handed to `cmd/csslsp serve`'s
// `--config` flag as a YAML file for headless/CLI use — `gopkg.in/yaml.v3`
// reads both equally well since its struct tags double as JSON-shaped keys
// once lowercased, which is why it's the library this port standardizes on
// rather than encoding/json plus a separate YAML layer.
package cssconfig

import (
	"os"

	"github.com/csslsp/csslsp/internal/hover"
	"gopkg.in/yaml.v3"
)

// SemanticTokens mirrors the `semanticTokens` configuration section.
type SemanticTokens struct {
	Enable bool `yaml:"enable"`
}

// Hover mirrors the `hover` configuration section.
type Hover struct {
	Documentation bool `yaml:"documentation"`
	References    bool `yaml:"references"`
}

// Config is the full recognized configuration document (spec §6). Its zero
// value turns everything off; Default() gives the service defaults:
// semantic tokens on, hover documentation and references both on (the
// original's CssLanguageSettings
// defaults — see original_source/csslancer/src/services/hover.rs's
// LanguageSettings::default, which always passes documentation/references
// through unless the client explicitly disables them).
type Config struct {
	SemanticTokens SemanticTokens `yaml:"semanticTokens"`
	HoverSettings  Hover          `yaml:"hover"`
}

// Default returns the configuration a server should assume before any
// workspace/didChangeConfiguration notification arrives.
func Default() Config {
	return Config{
		SemanticTokens: SemanticTokens{Enable: true},
		HoverSettings:  Hover{Documentation: true, References: true},
	}
}

// Load reads and parses a YAML configuration file at path, starting from
// Default() so a file that only overrides one field leaves the rest at
// their defaults rather than zeroing them.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Parse decodes a raw JSON/YAML-shaped configuration payload (e.g. the
// `settings` field of an LSP workspace/didChangeConfiguration notification,
// which glsp hands handlers as interface{}/map[string]any) into a Config by
// round-tripping it through yaml.v3, which accepts JSON as a subset of its
// grammar.
func Parse(raw []byte) (Config, error) {
	cfg := Default()
	if len(raw) == 0 {
		return cfg, nil
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// HoverSettingsFor adapts Config's hover section to internal/hover.Settings,
// the shape that package actually consumes.
func (c Config) HoverSettingsFor() hover.Settings {
	return hover.Settings{
		Documentation: c.HoverSettings.Documentation,
		References:    c.HoverSettings.References,
	}
}
