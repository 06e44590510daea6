package parser

import (
	"path/filepath"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Metadata is the flat key→value mapping parsed from a frontmatter block.
// Keys are lower-cased and trimmed, values trimmed. The schema is open:
// recognized keys by convention are title, subtitle, date, tags, and
// excerpt, but unrecognized keys are preserved and simply unused.
type Metadata map[string]string

// Title returns the "title" value, or a fallback derived from the draft
// filename when the key is absent or empty.
func (m Metadata) Title(source string) string {
	if t := m["title"]; t != "" {
		return t
	}
	return TitleFromFilename(source)
}

// Tags splits the comma-separated "tags" value into trimmed parts,
// dropping empties.
func (m Metadata) Tags() []string {
	raw := m["tags"]
	if raw == "" {
		return nil
	}
	var tags []string
	for _, part := range strings.Split(raw, ",") {
		if t := strings.TrimSpace(part); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

// TitleFromFilename derives a title from a draft filename: extension
// dropped, hyphens replaced with spaces, words title-cased. So the file
// "my-first-post.md" yields "My First Post".
func TitleFromFilename(name string) string {
	stem := strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))
	words := strings.ReplaceAll(stem, "-", " ")
	return cases.Title(language.English).String(words)
}
