package scenario

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/shinji-kodama/fleetload/internal/model"
)

// Format is a manifest encoding.
type Format string

const (
	// FormatYAML is decoded with gopkg.in/yaml.v3.
	FormatYAML Format = "yaml"

	// FormatJSONC is JSON that may contain // and /* */ comments and
	// trailing commas. Plain JSON is a subset.
	FormatJSONC Format = "jsonc"
)

// FormatFromPath picks the manifest format from a file extension.
// .yaml/.yml map to YAML, .json/.jsonc to JSONC.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json", ".jsonc":
		return FormatJSONC, nil
	default:
		return "", fmt.Errorf("unsupported manifest extension %q (valid: .yaml, .yml, .json, .jsonc)", filepath.Ext(path))
	}
}

// Load reads and decodes a manifest file. It does not validate the
// result; call Validate for that.
//
// Returns a CLIError with ExitManifestNotFound if the file does not exist,
// and ExitManifestInvalid if it cannot be decoded.
func Load(path string) (*Manifest, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, model.WrapCLIError(model.ExitManifestInvalid, "cannot load manifest", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, model.WrapCLIError(
				model.ExitManifestNotFound,
				fmt.Sprintf("manifest not found: %s", path),
				err,
			)
		}
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}

	m, err := Parse(data, format)
	if err != nil {
		return nil, model.WrapCLIError(
			model.ExitManifestInvalid,
			fmt.Sprintf("failed to parse manifest at %s", path),
			err,
		)
	}
	return m, nil
}

// Parse decodes manifest bytes in the given format. Unknown fields are
// rejected in both formats so typos in a manifest surface immediately
// instead of silently falling back to zero values.
func Parse(data []byte, format Format) (*Manifest, error) {
	var m Manifest

	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&m); err != nil {
			if errors.Is(err, io.EOF) {
				return nil, errors.New("manifest is empty")
			}
			return nil, fmt.Errorf("invalid YAML: %w", err)
		}

	case FormatJSONC:
		// Strip comments and trailing commas, then decode with the
		// standard library.
		clean := jsonc.ToJSON(data)
		if len(bytes.TrimSpace(clean)) == 0 {
			return nil, errors.New("manifest is empty")
		}
		dec := json.NewDecoder(bytes.NewReader(clean))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&m); err != nil {
			return nil, fmt.Errorf("invalid JSON: %w", err)
		}

	default:
		return nil, fmt.Errorf("unsupported manifest format %q", format)
	}

	return &m, nil
}

// Encode renders a manifest in the given format. JSONC output is plain,
// indented JSON.
func Encode(m *Manifest, format Format) ([]byte, error) {
	switch format {
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(m); err != nil {
			return nil, fmt.Errorf("failed to encode manifest as YAML: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("failed to encode manifest as YAML: %w", err)
		}
		return buf.Bytes(), nil

	case FormatJSONC:
		data, err := json.MarshalIndent(m, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to encode manifest as JSON: %w", err)
		}
		return append(data, '\n'), nil

	default:
		return nil, fmt.Errorf("unsupported manifest format %q", format)
	}
}
