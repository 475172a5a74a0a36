// Package output renders conversion results as text, JSON lines or YAML
// documents.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// Supported formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Formats lists the accepted values for NewEncoder.
var Formats = []string{FormatText, FormatJSON, FormatYAML}

// Record is the outcome of one conversion.
type Record struct {
	Name   string `json:"name,omitempty" yaml:"name,omitempty"`
	Input  string `json:"input" yaml:"input"`
	Value  int64  `json:"value" yaml:"value"`
	Expect *int64 `json:"expect,omitempty" yaml:"expect,omitempty"`
	Error  string `json:"error,omitempty" yaml:"error,omitempty"`
	OK     bool   `json:"ok" yaml:"ok"`
}

// Encoder writes records to an underlying stream.
type Encoder interface {
	Encode(r Record) error
	Close() error
}

// NewEncoder returns an encoder for format writing to w.
func NewEncoder(format string, w io.Writer) (Encoder, error) {
	switch strings.ToLower(format) {
	case FormatText, "":
		return &textEncoder{w: w}, nil
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		return &jsonEncoder{enc: enc}, nil
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		return &yamlEncoder{enc: enc}, nil
	default:
		return nil, fmt.Errorf("unknown output format %q: must be one of %s", format, strings.Join(Formats, ", "))
	}
}

// textEncoder writes one sentence per record.
type textEncoder struct {
	w io.Writer
}

func (e *textEncoder) Encode(r Record) error {
	_, err := fmt.Fprintln(e.w, Sentence(r))
	return err
}

func (e *textEncoder) Close() error { return nil }

// Sentence is the human-readable form of r.
func Sentence(r Record) string {
	var sb strings.Builder
	if r.Name != "" {
		fmt.Fprintf(&sb, "[%s] ", r.Name)
	}
	switch {
	case r.Error != "":
		sb.WriteString(r.Error)
	case r.Expect != nil && *r.Expect != r.Value:
		fmt.Fprintf(&sb, "The decimal value of %q is %d, expected %d.", r.Input, r.Value, *r.Expect)
	default:
		fmt.Fprintf(&sb, "The decimal value of %q is %d.", r.Input, r.Value)
	}
	return sb.String()
}

type jsonEncoder struct {
	enc *json.Encoder
}

func (e *jsonEncoder) Encode(r Record) error { return e.enc.Encode(r) }

func (e *jsonEncoder) Close() error { return nil }

type yamlEncoder struct {
	enc *yaml.Encoder
}

func (e *yamlEncoder) Encode(r Record) error { return e.enc.Encode(r) }

func (e *yamlEncoder) Close() error { return e.enc.Close() }
