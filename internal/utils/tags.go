package utils

import "strings"

// NormalizeTags lowercases and trims tags and drops empties and duplicates,
// preserving first-seen order. Intake is forgiving: a single element
// containing commas is treated as a CSV list.
func NormalizeTags(raw []string) []string {
	if len(raw) == 1 && strings.Contains(raw[0], ",") {
		raw = strings.Split(raw[0], ",")
	}
	seen := make(map[string]struct{}, len(raw))
	out := make([]string, 0, len(raw))
	for _, t := range raw {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" {
			continue
		}
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}
