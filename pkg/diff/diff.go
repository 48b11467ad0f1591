// Package diff compares two nested records field by field. It is a generic
// two-tree diff: the walk is over the union of keys at each level, so records
// of different shape compare without errors (missing keys count as empty).
package diff

import (
	"fmt"
	"sort"
	"strings"
)

type ChangeType string

const (
	Same     ChangeType = "same"
	Added    ChangeType = "added"
	Removed  ChangeType = "removed"
	Modified ChangeType = "modified"
)

// Row describes one leaf of the compared trees.
type Row struct {
	// dot-delimited path to the leaf, e.g. "suspension.springsF"
	Path string
	// first path segment
	Group string
	// human readable form of the path
	Label string
	// normalized values (trimmed, empty for missing)
	AValue string
	BValue string
	// true iff ChangeType != Same
	Changed    bool
	ChangeType ChangeType
}

type (
	Option func(*config)
	config struct {
		ignorePaths []string
	}
)

// WithIgnorePaths skips the given dot-paths and their subtrees.
func WithIgnorePaths(paths ...string) Option {
	return func(c *config) {
		c.ignorePaths = append(c.ignorePaths, paths...)
	}
}

// Objects walks both trees and emits one row per leaf in the union of keys.
func Objects(a, b map[string]any, opts ...Option) []Row {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}
	rows := make([]Row, 0)
	walk(a, b, "", cfg, &rows)
	return rows
}

func walk(a, b map[string]any, prefix string, cfg *config, rows *[]Row) {
	for _, key := range unionKeys(a, b) {
		path := key
		if prefix != "" {
			path = prefix + "." + key
		}
		if cfg.ignored(path) {
			continue
		}
		av, bv := a[key], b[key]
		am, aIsMap := av.(map[string]any)
		bm, bIsMap := bv.(map[string]any)
		if aIsMap || bIsMap {
			// one-sided subtrees compare against an empty map, so their
			// leaves classify as added/removed
			if !aIsMap {
				am = map[string]any{}
			}
			if !bIsMap {
				bm = map[string]any{}
			}
			walk(am, bm, path, cfg, rows)
			continue
		}
		*rows = append(*rows, makeRow(path, av, bv))
	}
}

func makeRow(path string, av, bv any) Row {
	aVal := normalizeValue(av)
	bVal := normalizeValue(bv)
	ct := classify(aVal, bVal)
	return Row{
		Path:       path,
		Group:      firstSegment(path),
		Label:      LabelFor(path),
		AValue:     aVal,
		BValue:     bVal,
		Changed:    ct != Same,
		ChangeType: ct,
	}
}

func classify(a, b string) ChangeType {
	switch {
	case a == "" && b != "":
		return Added
	case a != "" && b == "":
		return Removed
	case a != "" && b != "" && a != b:
		return Modified
	default:
		return Same
	}
}

func normalizeValue(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(t)
	default:
		return strings.TrimSpace(fmt.Sprintf("%v", t))
	}
}

func unionKeys(a, b map[string]any) []string {
	seen := make(map[string]struct{}, len(a)+len(b))
	keys := make([]string, 0, len(a)+len(b))
	for k := range a {
		seen[k] = struct{}{}
		keys = append(keys, k)
	}
	for k := range b {
		if _, ok := seen[k]; !ok {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}

func firstSegment(path string) string {
	if idx := strings.Index(path, "."); idx >= 0 {
		return path[:idx]
	}
	return path
}

func (c *config) ignored(path string) bool {
	for _, p := range c.ignorePaths {
		if path == p || strings.HasPrefix(path, p+".") {
			return true
		}
	}
	return false
}
