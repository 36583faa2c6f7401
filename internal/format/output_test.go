package format

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"testing"
)

type greeting struct {
	Name string `json:"name" yaml:"name"`
}

func (g greeting) WriteText(w io.Writer) error {
	_, err := fmt.Fprintf(w, "hello %s\n", g.Name)
	return err
}

type plain struct {
	Count int `json:"count" yaml:"count"`
}

func TestWrite_Formats(t *testing.T) {
	cases := []struct {
		name   string
		v      any
		format Format
		want   string
	}{
		{name: "json", v: greeting{Name: "x"}, format: JSON, want: "{\"name\":\"x\"}\n"},
		{name: "yaml", v: greeting{Name: "x"}, format: YAML, want: "name: x\n"},
		{name: "text", v: greeting{Name: "x"}, format: Text, want: "hello x\n"},
		{name: "text falls back to yaml", v: plain{Count: 2}, format: Text, want: "count: 2\n"},
		// A buffer is not a terminal.
		{name: "auto piped", v: plain{Count: 2}, format: Auto, want: "{\"count\":2}\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := Write(&buf, tc.v, tc.format, false); err != nil {
				t.Fatalf("Write: %v", err)
			}
			if got := buf.String(); got != tc.want {
				t.Fatalf("got %q want %q", got, tc.want)
			}
		})
	}
}

func TestWriteJSON_Pretty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, plain{Count: 1}, true); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}
	if !strings.Contains(buf.String(), "\n  \"count\": 1\n") {
		t.Fatalf("expected indented json; got %q", buf.String())
	}
}

func TestParse(t *testing.T) {
	for in, want := range map[string]Format{"": Auto, "JSON": JSON, "yml": YAML, "plain": Text} {
		got, err := Parse(in)
		if err != nil || got != want {
			t.Fatalf("Parse(%q) = %q, %v; want %q", in, got, err, want)
		}
	}
	if _, err := Parse("edn"); err == nil {
		t.Fatalf("expected error for edn")
	}
}
