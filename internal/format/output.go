package format

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"gopkg.in/yaml.v3"
)

type Format string

const (
	Auto Format = "auto"
	JSON Format = "json"
	YAML Format = "yaml"
	Text Format = "text"
)

func Parse(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", string(Auto):
		return Auto, nil
	case string(JSON):
		return JSON, nil
	case string(YAML), "yml":
		return YAML, nil
	case string(Text), "plain":
		return Text, nil
	default:
		return "", fmt.Errorf("unknown format: %s (expected auto|json|yaml|text)", s)
	}
}

// Texter is implemented by values with a human-readable rendering.
type Texter interface {
	WriteText(w io.Writer) error
}

// Detect picks text for a terminal and json when piped or redirected.
func Detect(w io.Writer) Format {
	f, ok := w.(*os.File)
	if !ok {
		return JSON
	}
	if isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()) {
		return Text
	}
	return JSON
}

// Write writes v in the requested format. Auto is resolved against w.
// Values without a text rendering fall back to YAML for text.
func Write(w io.Writer, v any, f Format, pretty bool) error {
	if f == Auto || f == "" {
		f = Detect(w)
	}
	switch f {
	case JSON:
		return WriteJSON(w, v, pretty)
	case YAML:
		return WriteYAML(w, v)
	case Text:
		if t, ok := v.(Texter); ok {
			return t.WriteText(w)
		}
		return WriteYAML(w, v)
	default:
		return fmt.Errorf("unknown format: %s", f)
	}
}

// WriteJSON writes strict JSON output for CLI commands.
func WriteJSON(w io.Writer, v any, pretty bool) error {
	var b []byte
	var err error
	if pretty {
		b, err = json.MarshalIndent(v, "", "  ")
	} else {
		b, err = json.Marshal(v)
	}
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, string(b))
	return err
}

func WriteYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
