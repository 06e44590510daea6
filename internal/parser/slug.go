package parser

import (
	"regexp"
	"strings"
)

var (
	slugDropRe   = regexp.MustCompile(`[^a-z0-9\s-]`)
	slugSpaceRe  = regexp.MustCompile(`\s+`)
	slugHyphenRe = regexp.MustCompile(`-+`)
)

// Slugify derives a URL-safe identifier from a title: lower-case, strip
// everything but letters, digits, whitespace, and hyphens, turn whitespace
// runs into single hyphens, collapse hyphen runs, and trim edge hyphens.
// Applied to its own output it is a fixed point. Distinct titles can still
// collide; no disambiguation is attempted.
func Slugify(title string) string {
	slug := strings.ToLower(title)
	slug = slugDropRe.ReplaceAllString(slug, "")
	slug = slugSpaceRe.ReplaceAllString(slug, "-")
	slug = slugHyphenRe.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}
