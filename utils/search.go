package utils

import "strings"

// SimpleSearch reports whether every whitespace-separated term of query
// is present in text, case-insensitively. An empty query matches all.
// "E 1 16" matches text containing E and 1 and 16 independently.
func SimpleSearch(text, query string) bool {
	query = strings.TrimSpace(query)
	if query == "" {
		return true
	}
	if text == "" {
		return false
	}

	textLower := strings.ToLower(text)
	for _, term := range strings.Fields(strings.ToLower(query)) {
		if !strings.Contains(textLower, term) {
			return false
		}
	}
	return true
}

// SearchFields matches query against the concatenation of the given
// field values, so terms may each hit a different field.
func SearchFields(query string, fields ...string) bool {
	return SimpleSearch(strings.Join(fields, " "), query)
}
