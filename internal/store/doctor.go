package store

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"strings"

	"shiftclip/internal/model"
)

type DoctorIssueLevel string

const (
	DoctorIssueLevelError DoctorIssueLevel = "error"
	DoctorIssueLevelWarn  DoctorIssueLevel = "warn"
)

var ErrDoctorIssuesFound = errors.New("doctor found errors")

type DoctorIssue struct {
	Level   DoctorIssueLevel `json:"level" yaml:"level"`
	Code    string           `json:"code" yaml:"code"`
	Message string           `json:"message" yaml:"message"`
	Key     string           `json:"key,omitempty" yaml:"key,omitempty"`
	Path    string           `json:"path,omitempty" yaml:"path,omitempty"`
}

type DoctorStats struct {
	Nodes    int `json:"nodes" yaml:"nodes"`
	Folders  int `json:"folders" yaml:"folders"`
	Clips    int `json:"clips" yaml:"clips"`
	MaxDepth int `json:"max_depth" yaml:"max_depth"`
}

type DoctorReport struct {
	Backend Backend       `json:"backend" yaml:"backend"`
	Dir     string        `json:"dir,omitempty" yaml:"dir,omitempty"`
	Stats   DoctorStats   `json:"stats" yaml:"stats"`
	Issues  []DoctorIssue `json:"issues" yaml:"issues"`
}

func (r DoctorReport) HasErrors() bool {
	for _, it := range r.Issues {
		if it.Level == DoctorIssueLevelError {
			return true
		}
	}
	return false
}

// Doctor inspects the raw stored document and UI keys. Load silently
// repairs or discards what is reported here.
func (s *Store) Doctor(ctx context.Context) DoctorReport {
	r := DoctorReport{Backend: s.Backend, Dir: s.Dir, Issues: []DoctorIssue{}}
	add := func(level DoctorIssueLevel, code, key, path, msg string) {
		r.Issues = append(r.Issues, DoctorIssue{Level: level, Code: code, Key: key, Path: path, Message: msg})
	}

	b, ok, err := s.kv.Get(ctx, DataKey)
	switch {
	case err != nil:
		add(DoctorIssueLevelError, "read_failed", DataKey, "", err.Error())
	case !ok || strings.TrimSpace(string(b)) == "":
		add(DoctorIssueLevelWarn, "no_document", DataKey, "", "no document stored; the tree starts empty")
	default:
		var raw []*model.Node
		if err := json.Unmarshal(b, &raw); err != nil {
			add(DoctorIssueLevelError, "corrupt_document", DataKey, "", "document does not decode and would load as an empty tree: "+err.Error())
			break
		}
		seen := map[string]string{}
		var walk func(xs []*model.Node, at model.Path)
		walk = func(xs []*model.Node, at model.Path) {
			if len(at) > r.Stats.MaxDepth {
				r.Stats.MaxDepth = len(at)
			}
			for i, n := range xs {
				p := at.Append(i)
				ps := p.String()
				if n == nil {
					add(DoctorIssueLevelError, "null_node", DataKey, ps, "null entry is dropped on load")
					continue
				}
				r.Stats.Nodes++
				if strings.TrimSpace(n.Name) == "" {
					add(DoctorIssueLevelWarn, "empty_name", DataKey, ps, "node has no name")
				}
				if n.ID != "" {
					if prev, dup := seen[n.ID]; dup {
						add(DoctorIssueLevelWarn, "duplicate_id", DataKey, ps, "id "+n.ID+" also used at "+prev)
					} else {
						seen[n.ID] = ps
					}
				}
				switch n.Type {
				case model.KindFolder:
					r.Stats.Folders++
					if n.Color != "" {
						if _, ok := model.ParseColor(string(n.Color)); !ok {
							add(DoctorIssueLevelWarn, "unknown_color", DataKey, ps, "color "+strconv.Quote(string(n.Color))+" is not in the palette")
						}
					}
					walk(n.Children, p)
				case model.KindClip:
					r.Stats.Clips++
					if len(n.Children) > 0 {
						add(DoctorIssueLevelError, "clip_children", DataKey, ps, "clip has children; they are dropped on load")
					}
				default:
					add(DoctorIssueLevelError, "unknown_type", DataKey, ps, "type "+strconv.Quote(string(n.Type))+" is neither folder nor clip")
				}
			}
		}
		walk(raw, model.Path{})
	}

	if v, ok := s.getString(ctx, LockedKey); ok {
		if _, err := strconv.ParseBool(v); err != nil {
			add(DoctorIssueLevelWarn, "invalid_value", LockedKey, "", "lock flag "+strconv.Quote(v)+" is ignored")
		}
	}
	if v, ok := s.getString(ctx, ThemeKey); ok && Theme(v) != ThemeDark && Theme(v) != ThemeLight {
		add(DoctorIssueLevelWarn, "invalid_value", ThemeKey, "", "theme "+strconv.Quote(v)+" is ignored")
	}
	if v, ok := s.getString(ctx, SelectionKey); ok {
		if _, err := model.ParsePath(v); err != nil {
			add(DoctorIssueLevelWarn, "invalid_value", SelectionKey, "", "selection "+strconv.Quote(v)+" is ignored")
		}
	}
	return r
}
