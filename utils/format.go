package utils

import "strings"

// DisplayName capitalizes each word of a stored (lowercased) account name,
// e.g. "joe doe" -> "Joe Doe".
func DisplayName(name string) string {
	words := strings.Split(name, " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// PageOffset converts one-based page numbers to a row offset:
// skip = (currentPage-1)*perPage.
func PageOffset(perPage, currentPage int) int {
	return (currentPage - 1) * perPage
}
