package routes

import (
	"regexp"
	"strings"
)

// arrayGroupRe matches a group segment holding a comma-separated list
// of alternatives, e.g. "(a,b,c)". Plain groups like "(tabs)" contain
// no comma and are left alone.
var arrayGroupRe = regexp.MustCompile(`\(\s*[^,()/]+(?:\s*,\s*[^,()/]+)+\s*\)`)

// expandGroups expands the first array-group segment of key into one
// path per alternative, recursively, so several array groups in one
// path multiply out. Paths without array groups come back unchanged.
// Identical expansions collapse into a single entry.
func expandGroups(key string) ([]string, error) {
	var out []string
	seen := make(map[string]bool)
	if err := expandGroupsInto(key, seen, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func expandGroupsInto(key string, seen map[string]bool, out *[]string) error {
	match := arrayGroupRe.FindString(key)
	if match == "" {
		if !seen[key] {
			seen[key] = true
			*out = append(*out, key)
		}
		return nil
	}

	names := strings.Split(match[1:len(match)-1], ",")
	for i, name := range names {
		names[i] = strings.TrimSpace(name)
	}

	unique := make(map[string]bool, len(names))
	for _, name := range names {
		if unique[name] {
			return errDuplicateGroupName(key, name)
		}
		unique[name] = true
	}

	// A single-member list is purely organizational.
	if len(names) == 1 {
		if !seen[key] {
			seen[key] = true
			*out = append(*out, key)
		}
		return nil
	}

	for _, name := range names {
		expanded := strings.Replace(key, match, "("+name+")", 1)
		if err := expandGroupsInto(expanded, seen, out); err != nil {
			return err
		}
	}
	return nil
}
