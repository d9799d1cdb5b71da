// Package pathutil provides URL-template parsing helpers for path
// placeholder and literal query key extraction.
package pathutil

import (
	"regexp"
	"strings"
)

// PathParamRegex matches path template parameters like {paramName}.
// The capture group extracts the parameter name without braces.
var PathParamRegex = regexp.MustCompile(`\{([^}]+)\}`)

// SplitTemplate splits a URL template into its path portion and its literal
// query string. The query string does not include the leading "?".
func SplitTemplate(template string) (path, query string) {
	if idx := strings.Index(template, "?"); idx >= 0 {
		return template[:idx], template[idx+1:]
	}
	return template, ""
}

// PathParams extracts the ordered placeholder names from the path portion
// of a URL template. Placeholders appearing in the query string are not
// path parameters and are excluded.
func PathParams(template string) []string {
	path, _ := SplitTemplate(template)
	matches := PathParamRegex.FindAllStringSubmatch(path, -1)
	if len(matches) == 0 {
		return nil
	}
	params := make([]string, 0, len(matches))
	for _, m := range matches {
		params = append(params, m[1])
	}
	return params
}

// QueryKeys extracts the ordered literal query key names from a URL
// template. Duplicate keys are reported once, at their first position.
func QueryKeys(template string) []string {
	_, query := SplitTemplate(template)
	if query == "" {
		return nil
	}
	var keys []string
	seen := make(map[string]bool)
	for _, pair := range strings.Split(query, "&") {
		if pair == "" {
			continue
		}
		key := pair
		if idx := strings.Index(pair, "="); idx >= 0 {
			key = pair[:idx]
		}
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		keys = append(keys, key)
	}
	return keys
}
