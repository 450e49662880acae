package utils

import "strings"

// Slugify derives a URL-safe identifier from a human-readable name:
// lowercase, every run of characters outside [a-z0-9] collapses to a
// single hyphen, leading/trailing hyphens stripped. Uniqueness is not
// checked here; the storage layer enforces it.
func Slugify(name string) string {
	lower := strings.ToLower(name)

	var b strings.Builder
	b.Grow(len(lower))
	lastHyphen := false
	for _, r := range lower {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			lastHyphen = false
			continue
		}
		if !lastHyphen {
			b.WriteByte('-')
			lastHyphen = true
		}
	}

	return strings.Trim(b.String(), "-")
}
