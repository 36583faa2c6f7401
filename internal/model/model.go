package model

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

type Kind string

const (
	KindFolder Kind = "folder"
	KindClip   Kind = "clip"
)

type Color string

const (
	ColorGreen  Color = "green"
	ColorYellow Color = "yellow"
	ColorViolet Color = "violet"
	ColorPink   Color = "pink"
	ColorOrange Color = "orange"
	ColorWhite  Color = "white"
)

// Palette is the fixed set of folder colors, in swatch order.
var Palette = []Color{ColorGreen, ColorYellow, ColorViolet, ColorPink, ColorOrange, ColorWhite}

// ParseColor accepts a palette name (case-insensitive).
func ParseColor(s string) (Color, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, c := range Palette {
		if string(c) == s {
			return c, true
		}
	}
	return "", false
}

// Node is either a folder or a clip, tagged by Type.
//
// The JSON shape matches the persisted document written by earlier versions:
// folders carry "children" (always present, possibly empty) and clips carry
// "description".
type Node struct {
	ID          string  `json:"id" yaml:"id"`
	Type        Kind    `json:"type" yaml:"type"`
	Name        string  `json:"name" yaml:"name"`
	Color       Color   `json:"color,omitempty" yaml:"color,omitempty"`
	Description string  `json:"description,omitempty" yaml:"description,omitempty"`
	Children    []*Node `json:"children,omitempty" yaml:"children,omitempty"`
}

type nodeWire struct {
	ID          string   `json:"id"`
	Type        Kind     `json:"type"`
	Name        string   `json:"name"`
	Color       Color    `json:"color,omitempty"`
	Description *string  `json:"description,omitempty"`
	Children    *[]*Node `json:"children,omitempty"`
}

func (n Node) MarshalJSON() ([]byte, error) {
	w := nodeWire{ID: n.ID, Type: n.Type, Name: n.Name, Color: n.Color}
	switch n.Type {
	case KindFolder:
		children := n.Children
		if children == nil {
			children = []*Node{}
		}
		w.Children = &children
	case KindClip:
		desc := n.Description
		w.Description = &desc
	default:
		if n.Description != "" {
			desc := n.Description
			w.Description = &desc
		}
		if n.Children != nil {
			children := n.Children
			w.Children = &children
		}
	}
	return json.Marshal(w)
}

// Tree is the root-level sequence of the document.
type Tree []*Node

func (n *Node) IsFolder() bool {
	if n == nil {
		return false
	}
	switch n.Type {
	case KindFolder:
		return true
	case KindClip:
		return false
	default:
		return false
	}
}

func (n *Node) IsClip() bool {
	if n == nil {
		return false
	}
	switch n.Type {
	case KindClip:
		return true
	case KindFolder:
		return false
	default:
		return false
	}
}

// EffectiveColor returns the folder color, defaulting to white.
func (n *Node) EffectiveColor() Color {
	if n == nil || n.Color == "" {
		return ColorWhite
	}
	return n.Color
}

func newID(now time.Time) string {
	return strconv.FormatInt(now.UnixMilli(), 10)
}

func NewFolder(name string) *Node {
	return &Node{
		ID:       newID(time.Now()),
		Type:     KindFolder,
		Name:     name,
		Children: []*Node{},
	}
}

func NewClip(name, description string) *Node {
	return &Node{
		ID:          newID(time.Now()),
		Type:        KindClip,
		Name:        name,
		Description: description,
	}
}

// Normalize repairs decoded documents in place: folders get a non-nil
// children slice and nil entries are dropped.
func (t *Tree) Normalize() {
	if t == nil {
		return
	}
	*t = normalizeNodes(*t)
	if *t == nil {
		*t = Tree{}
	}
}

func normalizeNodes(xs []*Node) []*Node {
	out := xs[:0]
	for _, n := range xs {
		if n == nil {
			continue
		}
		switch n.Type {
		case KindFolder:
			n.Children = normalizeNodes(n.Children)
			if n.Children == nil {
				n.Children = []*Node{}
			}
		case KindClip:
			n.Children = nil
		}
		out = append(out, n)
	}
	return out
}

// CountNodes returns the number of nodes in the whole tree.
func (t Tree) CountNodes() int {
	var walk func(xs []*Node) int
	walk = func(xs []*Node) int {
		total := 0
		for _, n := range xs {
			total++
			if n.IsFolder() {
				total += walk(n.Children)
			}
		}
		return total
	}
	return walk(t)
}
