// Package parser extracts frontmatter metadata, dates, slugs, and titles
// from Markdown drafts.
package parser

import (
	"fmt"
	"slices"
	"sort"
	"strings"
)

const delimiter = "---"

// Split separates a leading frontmatter block (between --- delimiter lines)
// from the Markdown body. Each line inside the block is split on its first
// colon; the key is trimmed and lower-cased, the value trimmed, and lines
// without a colon are ignored. Malformed or absent frontmatter degrades to
// an empty Metadata with the whole document as body. The body is returned
// with surrounding whitespace trimmed.
func Split(content string) (Metadata, string) {
	normalized := strings.ReplaceAll(content, "\r\n", "\n")
	lines := strings.Split(normalized, "\n")

	if !isDelimiter(lines[0]) {
		return Metadata{}, strings.TrimSpace(normalized)
	}

	// The closing delimiter must be a full line of its own: at least one
	// line after the opener, and terminated by a newline.
	closer := -1
	for i := 2; i < len(lines)-1; i++ {
		if isDelimiter(lines[i]) {
			closer = i
			break
		}
	}
	if closer < 0 {
		return Metadata{}, strings.TrimSpace(normalized)
	}

	meta := Metadata{}
	for _, line := range lines[1:closer] {
		key, val, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		meta[strings.ToLower(strings.TrimSpace(key))] = strings.TrimSpace(val)
	}

	body := strings.Join(lines[closer+1:], "\n")
	return meta, strings.TrimSpace(body)
}

// isDelimiter reports whether line is a frontmatter delimiter, tolerating
// trailing spaces and tabs.
func isDelimiter(line string) bool {
	return strings.TrimRight(line, " \t") == delimiter
}

// recognizedKeys is the conventional key order used when serializing
// metadata back into a block.
var recognizedKeys = []string{"title", "subtitle", "date", "tags", "excerpt"}

// Serialize renders metadata back into a frontmatter block: recognized keys
// first in conventional order, remaining keys sorted. It is the inverse of
// Split for any mapping Split can produce.
func Serialize(meta Metadata) string {
	var b strings.Builder
	b.WriteString(delimiter + "\n")

	for _, key := range recognizedKeys {
		if val, ok := meta[key]; ok {
			fmt.Fprintf(&b, "%s: %s\n", key, val)
		}
	}

	var extra []string
	for key := range meta {
		if !slices.Contains(recognizedKeys, key) {
			extra = append(extra, key)
		}
	}
	sort.Strings(extra)
	for _, key := range extra {
		fmt.Fprintf(&b, "%s: %s\n", key, meta[key])
	}

	b.WriteString(delimiter + "\n")
	return b.String()
}
