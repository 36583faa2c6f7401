package cli

import (
	"fmt"
	"io"
	"strings"

	"shiftclip/internal/format"
	"shiftclip/internal/model"
	"shiftclip/internal/nav"
	"shiftclip/internal/store"
)

type envelope struct {
	Data any `json:"data" yaml:"data"`
}

func (e envelope) WriteText(w io.Writer) error {
	if t, ok := e.Data.(format.Texter); ok {
		return t.WriteText(w)
	}
	return format.WriteYAML(w, e.Data)
}

type entry struct {
	Path        model.Path  `json:"path" yaml:"path"`
	Type        model.Kind  `json:"type" yaml:"type"`
	Name        string      `json:"name" yaml:"name"`
	Color       model.Color `json:"color,omitempty" yaml:"color,omitempty"`
	Items       *int        `json:"items,omitempty" yaml:"items,omitempty"`
	Description string      `json:"description,omitempty" yaml:"description,omitempty"`
}

func entryFor(n *model.Node, p model.Path) entry {
	e := entry{Path: p.Clone(), Type: n.Type, Name: n.Name}
	switch n.Type {
	case model.KindFolder:
		count := len(n.Children)
		e.Items = &count
		e.Color = n.EffectiveColor()
	case model.KindClip:
		e.Description = n.Description
	}
	return e
}

func (e entry) line() string {
	switch e.Type {
	case model.KindFolder:
		items := 0
		if e.Items != nil {
			items = *e.Items
		}
		return fmt.Sprintf("%-8s ▸ %s (%d) [%s]", e.Path, e.Name, items, e.Color)
	default:
		return fmt.Sprintf("%-8s   %s", e.Path, e.Name)
	}
}

type listing struct {
	Path  model.Path `json:"path" yaml:"path"`
	Count int        `json:"count" yaml:"count"`
	Items []entry    `json:"items" yaml:"items"`
}

func newListing(children []*model.Node, at model.Path) listing {
	l := listing{Path: at.Clone(), Count: len(children), Items: make([]entry, 0, len(children))}
	for i, n := range children {
		l.Items = append(l.Items, entryFor(n, at.Append(i)))
	}
	return l
}

func (l listing) WriteText(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "%s (%s)\n", l.Path, nav.ItemCountLabel(l.Count)); err != nil {
		return err
	}
	for _, e := range l.Items {
		if _, err := fmt.Fprintln(w, "  "+e.line()); err != nil {
			return err
		}
	}
	return nil
}

type nodeView struct {
	Path        model.Path  `json:"path" yaml:"path"`
	Breadcrumbs []nav.Crumb `json:"breadcrumbs" yaml:"breadcrumbs"`
	Node        *model.Node `json:"node" yaml:"node"`
}

func (v nodeView) WriteText(w io.Writer) error {
	labels := make([]string, 0, len(v.Breadcrumbs))
	for _, c := range v.Breadcrumbs {
		labels = append(labels, c.Label)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s  %s\n", v.Path, strings.Join(labels, " › "))
	fmt.Fprintln(&b, entryFor(v.Node, v.Path).line())
	switch v.Node.Type {
	case model.KindFolder:
		for i, n := range v.Node.Children {
			fmt.Fprintln(&b, "  "+entryFor(n, v.Path.Append(i)).line())
		}
	case model.KindClip:
		if v.Node.Description != "" {
			fmt.Fprintln(&b)
			fmt.Fprintln(&b, v.Node.Description)
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}

type mutation struct {
	Changed bool        `json:"changed" yaml:"changed"`
	Path    model.Path  `json:"path,omitempty" yaml:"path,omitempty"`
	Node    *model.Node `json:"node,omitempty" yaml:"node,omitempty"`
	Locked  bool        `json:"locked,omitempty" yaml:"locked,omitempty"`
	Backup  string      `json:"backup,omitempty" yaml:"backup,omitempty"`
}

func (m mutation) WriteText(w io.Writer) error {
	switch {
	case m.Locked && !m.Changed:
		_, err := fmt.Fprintln(w, "no change (locked)")
		return err
	case !m.Changed:
		_, err := fmt.Fprintln(w, "no change")
		return err
	case m.Node != nil:
		_, err := fmt.Fprintln(w, entryFor(m.Node, m.Path).line())
		return err
	default:
		_, err := fmt.Fprintf(w, "changed %s\n", m.Path)
		return err
	}
}

type searchOut struct {
	Query   string  `json:"query" yaml:"query"`
	Total   int     `json:"total" yaml:"total"`
	Results []entry `json:"results" yaml:"results"`
}

func (s searchOut) WriteText(w io.Writer) error {
	if len(s.Results) == 0 {
		_, err := fmt.Fprintf(w, "no results for %q\n", s.Query)
		return err
	}
	for _, e := range s.Results {
		if _, err := fmt.Fprintln(w, e.line()); err != nil {
			return err
		}
	}
	if s.Total > len(s.Results) {
		_, err := fmt.Fprintf(w, "(%d more)\n", s.Total-len(s.Results))
		return err
	}
	return nil
}

type lockOut struct {
	Locked bool `json:"locked" yaml:"locked"`
}

func (l lockOut) WriteText(w io.Writer) error {
	state := "unlocked"
	if l.Locked {
		state = "locked"
	}
	_, err := fmt.Fprintln(w, state)
	return err
}

type copyOut struct {
	From store.Backend `json:"from" yaml:"from"`
	To   store.Backend `json:"to" yaml:"to"`
	Dir  string        `json:"dir" yaml:"dir"`
	Keys int           `json:"keys" yaml:"keys"`
}

func (c copyOut) WriteText(w io.Writer) error {
	_, err := fmt.Fprintf(w, "copied %d keys from %s to %s in %s\n", c.Keys, c.From, c.To, c.Dir)
	return err
}
