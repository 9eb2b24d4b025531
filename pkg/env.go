package pkg

import (
	"os"
	"path/filepath"
	"strings"
)

// ParsePathList splits an OS path list (PATH style) into trimmed, non-empty entries.
func ParsePathList(list string) []string {
	if strings.TrimSpace(list) == "" {
		return []string{}
	}

	parts := filepath.SplitList(list)
	paths := make([]string, 0, len(parts))

	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			paths = append(paths, p)
		}
	}

	return paths
}

// UniqueNonEmpty drops empty entries and keeps the first occurrence of each path.
func UniqueNonEmpty(paths ...string) []string {
	seen := make(map[string]struct{}, len(paths))
	out := make([]string, 0, len(paths))

	for _, p := range paths {
		if strings.TrimSpace(p) == "" {
			continue
		}

		if _, ok := seen[p]; ok {
			continue
		}

		seen[p] = struct{}{}
		out = append(out, p)
	}

	return out
}

// ExpandPath expands ${VAR}, $VAR and %VAR% references using lookup.
// It reports false when any referenced variable is unset or empty.
func ExpandPath(path string, lookup func(string) (string, bool)) (string, bool) {
	complete := true

	resolve := func(name string) string {
		v, ok := lookup(name)
		if !ok || v == "" {
			complete = false
		}

		return v
	}

	expanded := expandPercent(path, resolve)
	expanded = os.Expand(expanded, resolve)

	return expanded, complete
}

// expandPercent replaces %VAR% references the way cmd.exe does.
func expandPercent(s string, resolve func(string) string) string {
	var b strings.Builder

	for {
		start := strings.IndexByte(s, '%')
		if start < 0 {
			break
		}

		end := strings.IndexByte(s[start+1:], '%')
		if end <= 0 {
			break
		}

		b.WriteString(s[:start])
		b.WriteString(resolve(s[start+1 : start+1+end]))
		s = s[start+end+2:]
	}

	b.WriteString(s)

	return b.String()
}
