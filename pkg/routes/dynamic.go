package routes

import (
	"regexp"
	"strings"
)

var (
	// deepDynamicRe matches a catch-all segment like "[...rest]".
	deepDynamicRe = regexp.MustCompile(`^\[\.\.\.([^/\[\]]+)\]$`)

	// dynamicRe matches a single dynamic segment like "[id]".
	dynamicRe = regexp.MustCompile(`^\[([^/\[\]]+)\]$`)
)

// parseDynamicSegments returns one entry per dynamic segment of the
// route path, in segment order. Static segments are omitted; a fully
// static route yields nil.
func parseDynamicSegments(route string) []DynamicSegment {
	var out []DynamicSegment
	for _, seg := range strings.Split(route, "/") {
		switch {
		case seg == notFoundSegment:
			out = append(out, DynamicSegment{Name: notFoundSegment, Deep: true, NotFound: true})
		case deepDynamicRe.MatchString(seg):
			out = append(out, DynamicSegment{Name: deepDynamicRe.FindStringSubmatch(seg)[1], Deep: true})
		case dynamicRe.MatchString(seg):
			out = append(out, DynamicSegment{Name: dynamicRe.FindStringSubmatch(seg)[1]})
		}
	}
	return out
}
