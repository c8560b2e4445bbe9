package domain

import "strings"

// MaxTags bounds how many tags a project can carry.
const MaxTags = 5

// NormalizeTags trims surrounding whitespace, drops empty entries, and
// truncates to MaxTags, preserving the original order. Oversupplied tags
// are discarded silently rather than rejected.
func NormalizeTags(tags []string) []string {
	out := make([]string, 0, MaxTags)
	for _, tag := range tags {
		name := strings.TrimSpace(tag)
		if name == "" {
			continue
		}
		out = append(out, name)
		if len(out) == MaxTags {
			break
		}
	}
	return out
}
