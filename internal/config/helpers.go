package config

import "strings"

// authorFromCopyright extracts the author part of a "<year>, <author>" copyright line.
func authorFromCopyright(copyright string) string {
	if idx := strings.Index(copyright, ","); idx >= 0 {
		return strings.TrimSpace(copyright[idx+1:])
	}
	return strings.TrimSpace(copyright)
}

func lowerName(name string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(name), " ", "-"))
}
