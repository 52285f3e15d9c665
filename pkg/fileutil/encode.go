package fileutil

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/pathpick/internal/errors"
)

// Format is a structured text encoding.
type Format string

// Supported formats.
const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
)

// ErrUnknownFormat indicates an unsupported format name.
var ErrUnknownFormat = errors.New("unknown format")

// ParseFormat parses a format name ("yml" is accepted for YAML).
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yaml", "yml", "":
		return FormatYAML, nil
	case "toml":
		return FormatTOML, nil
	case "json":
		return FormatJSON, nil
	default:
		return "", errors.Wrapf(ErrUnknownFormat, "%q", s)
	}
}

// Marshal encodes v in format f. The output always ends with a newline.
func Marshal(f Format, v any) (data []byte, err error) {
	switch f {
	case FormatYAML:
		// yaml.Marshal panics on unmarshalable types
		defer func() {
			if r := recover(); r != nil {
				data, err = nil, errors.Newf("marshaling YAML: %v", r)
			}
		}()
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return nil, errors.Wrap(err, "marshaling YAML")
		}
		if err := enc.Close(); err != nil {
			return nil, errors.Wrap(err, "marshaling YAML")
		}
		data = buf.Bytes()
	case FormatTOML:
		data, err = toml.Marshal(v)
		if err != nil {
			return nil, errors.Wrap(err, "marshaling TOML")
		}
	case FormatJSON:
		data, err = json.MarshalIndent(v, "", "  ")
		if err != nil {
			return nil, errors.Wrap(err, "marshaling JSON")
		}
	default:
		return nil, errors.Wrapf(ErrUnknownFormat, "%q", f)
	}

	if len(data) == 0 || data[len(data)-1] != '\n' {
		data = append(data, '\n')
	}
	return data, nil
}
