package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Path addresses a node by child indices from the root sequence.
// It is positional: any insert/remove at an ancestor level invalidates it.
type Path []int

func (p Path) String() string {
	if len(p) == 0 {
		return "/"
	}
	parts := make([]string, len(p))
	for i, x := range p {
		parts[i] = strconv.Itoa(x)
	}
	return strings.Join(parts, "/")
}

func (p Path) Clone() Path {
	if p == nil {
		return Path{}
	}
	out := make(Path, len(p))
	copy(out, p)
	return out
}

// Parent drops the last index. The parent of the empty path is empty.
func (p Path) Parent() Path {
	if len(p) == 0 {
		return Path{}
	}
	return p[:len(p)-1].Clone()
}

// Last returns the final index, or -1 for the empty path.
func (p Path) Last() int {
	if len(p) == 0 {
		return -1
	}
	return p[len(p)-1]
}

func (p Path) Append(i int) Path {
	out := make(Path, 0, len(p)+1)
	out = append(out, p...)
	return append(out, i)
}

func (p Path) Equal(o Path) bool {
	if len(p) != len(o) {
		return false
	}
	for i := range p {
		if p[i] != o[i] {
			return false
		}
	}
	return true
}

// HasPrefix reports whether prefix matches the leading indices of p.
// Every path has the empty prefix; a path is a prefix of itself.
func (p Path) HasPrefix(prefix Path) bool {
	if len(prefix) > len(p) {
		return false
	}
	for i := range prefix {
		if p[i] != prefix[i] {
			return false
		}
	}
	return true
}

// ParsePath accepts "0/2/1", "0.2.1", "[0,2,1]", "/" or "" (root).
func ParsePath(s string) (Path, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "[")
	s = strings.TrimSuffix(s, "]")
	s = strings.Trim(s, "/")
	if s == "" {
		return Path{}, nil
	}
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == '/' || r == '.' || r == ','
	})
	out := make(Path, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, fmt.Errorf("invalid path %q: %w", s, err)
		}
		if n < 0 {
			return nil, fmt.Errorf("invalid path %q: negative index %d", s, n)
		}
		out = append(out, n)
	}
	return out, nil
}

// DragPayload is the text carried across a drag-and-drop transfer.
type DragPayload struct {
	Path Path `json:"path"`
}

var ErrEmptyPayload = errors.New("drag payload has no path")

func EncodeDragPayload(p Path) string {
	b, _ := json.Marshal(DragPayload{Path: p.Clone()})
	return string(b)
}

func DecodeDragPayload(s string) (Path, error) {
	var d DragPayload
	if err := json.Unmarshal([]byte(s), &d); err != nil {
		return nil, fmt.Errorf("decode drag payload: %w", err)
	}
	if len(d.Path) == 0 {
		return nil, ErrEmptyPayload
	}
	for _, x := range d.Path {
		if x < 0 {
			return nil, fmt.Errorf("decode drag payload: negative index %d", x)
		}
	}
	return d.Path, nil
}
