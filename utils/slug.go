// utils/slug.go
package utils

import "strings"

const collectionPrefix = "org_"

// CollectionNameForOrg derives the dedicated collection name for an
// organization: non-alphanumeric runs collapse to "_", lowercased, trimmed,
// prefixed "org_". Deterministic for a given name.
func CollectionNameForOrg(orgName string) string {
	return collectionPrefix + slugify(orgName)
}

func slugify(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	lastUnderscore := false
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastUnderscore = false
		default:
			if !lastUnderscore {
				b.WriteByte('_')
				lastUnderscore = true
			}
		}
	}

	return strings.Trim(b.String(), "_")
}
