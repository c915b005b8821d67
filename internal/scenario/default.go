package scenario

import (
	_ "embed"
	"fmt"
)

//go:embed default.yaml
var defaultManifest []byte

// Default returns a fresh copy of the built-in scenario.
func Default() (*Manifest, error) {
	m, err := Parse(defaultManifest, FormatYAML)
	if err != nil {
		return nil, fmt.Errorf("built-in scenario: %w", err)
	}
	return m, nil
}

// DefaultSource returns the raw YAML of the built-in scenario, comments
// included, so it can be used as a starting point for custom manifests.
func DefaultSource() []byte {
	out := make([]byte, len(defaultManifest))
	copy(out, defaultManifest)
	return out
}
