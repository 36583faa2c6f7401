// Package search scans the tree for nodes matching a query.
package search

import (
	"strings"

	"shiftclip/internal/model"
)

type Match struct {
	Node *model.Node `json:"node"`
	Path model.Path  `json:"path"`
}

// Search returns every node whose name (or, for clips, description) contains
// query, case-insensitively, in pre-order. A blank query matches nothing.
func Search(t model.Tree, query string) []Match {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}
	var out []Match
	var walk func(xs []*model.Node, at model.Path)
	walk = func(xs []*model.Node, at model.Path) {
		for i, n := range xs {
			if n == nil {
				continue
			}
			p := at.Append(i)
			if matches(n, q) {
				out = append(out, Match{Node: n, Path: p})
			}
			switch n.Type {
			case model.KindFolder:
				walk(n.Children, p)
			case model.KindClip:
			}
		}
	}
	walk(t, model.Path{})
	return out
}

func matches(n *model.Node, q string) bool {
	if strings.Contains(strings.ToLower(n.Name), q) {
		return true
	}
	switch n.Type {
	case model.KindClip:
		return strings.Contains(strings.ToLower(n.Description), q)
	default:
		return false
	}
}

// Top truncates results to at most n entries. n <= 0 keeps everything.
func Top(results []Match, n int) []Match {
	if n <= 0 || len(results) <= n {
		return results
	}
	return results[:n]
}
