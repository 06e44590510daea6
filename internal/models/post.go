// Package models defines the domain types for Ansuz.
package models

import (
	"time"

	"github.com/starford/ansuz/internal/parser"
)

// Post is one processed draft. Records live for a single build run and are
// discarded at exit; the written HTML is the only thing that persists.
type Post struct {
	Source string          // draft filename the post was built from
	Slug   string          // output name under posts/, derived from the title
	Title  string          // effective title after the filename fallback
	Meta   parser.Metadata // raw frontmatter mapping
	Date   time.Time       // normalized sort key; zero when unparseable
}
