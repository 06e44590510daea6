package markdown

import (
	"fmt"
	"html"
	"regexp"
	"strings"
)

// fragmentSeparator indents joined fragments to align with the content
// container they are embedded in. Cosmetic only.
const fragmentSeparator = "\n          "

type lineKind int

const (
	lineBlank lineKind = iota
	lineFence
	lineQuote
	lineHeading
	lineRule
	lineUnordered
	lineOrdered
	lineParagraph
)

// classified is a body line reduced to its block-level kind, with block
// markers stripped from text.
type classified struct {
	kind  lineKind
	level int // heading level, already shifted for page context
	text  string
}

var (
	headingRe   = regexp.MustCompile(`^(#{1,3})\s+(.+)`)
	ruleRe      = regexp.MustCompile(`^(-{3,}|\*{3,}|_{3,})$`)
	unorderedRe = regexp.MustCompile(`^[-*]\s+`)
	orderedRe   = regexp.MustCompile(`^\d+\.\s+`)
)

// classify inspects one raw body line. Checks run in block precedence
// order; the first match decides the kind.
func classify(raw string) classified {
	stripped := strings.TrimSpace(raw)

	switch {
	case strings.HasPrefix(stripped, "```"):
		// The language tag is accepted but unused.
		return classified{kind: lineFence, text: strings.TrimSpace(stripped[3:])}
	case strings.HasPrefix(stripped, "> "):
		return classified{kind: lineQuote, text: stripped[2:]}
	}

	if m := headingRe.FindStringSubmatch(stripped); m != nil {
		// h1 is the page title rendered elsewhere; body headings start at h2.
		level := len(m[1]) + 1
		if level > 4 {
			level = 4
		}
		return classified{kind: lineHeading, level: level, text: m[2]}
	}

	switch {
	case ruleRe.MatchString(stripped):
		return classified{kind: lineRule}
	case unorderedRe.MatchString(stripped):
		return classified{kind: lineUnordered, text: unorderedRe.ReplaceAllString(stripped, "")}
	case orderedRe.MatchString(stripped):
		return classified{kind: lineOrdered, text: orderedRe.ReplaceAllString(stripped, "")}
	case stripped == "":
		return classified{kind: lineBlank}
	}

	return classified{kind: lineParagraph, text: stripped}
}

// listMode tracks which list element is currently open.
type listMode int

const (
	listNone listMode = iota
	listUnordered
	listOrdered
)

// converter is the block-level state machine. At most one list is open at a
// time; a code fence suspends all other handling; blockquote lines
// accumulate until a non-quote line flushes them as a single fragment.
type converter struct {
	frags []string
	list  listMode
	fence bool
	quote []string
}

func (c *converter) feed(raw string) {
	ln := classify(raw)

	// Fences take precedence over everything, including a pending quote.
	if ln.kind == lineFence {
		if c.fence {
			c.frags = append(c.frags, "</code></pre>")
		} else {
			c.frags = append(c.frags, "<pre><code>")
		}
		c.fence = !c.fence
		return
	}
	if c.fence {
		c.frags = append(c.frags, html.EscapeString(raw))
		return
	}

	if ln.kind == lineQuote {
		c.quote = append(c.quote, ln.text)
		return
	}
	c.flushQuote()

	switch ln.kind {
	case lineHeading:
		c.frags = append(c.frags, fmt.Sprintf("<h%d>%s</h%d>", ln.level, Inline(ln.text), ln.level))
	case lineRule:
		c.frags = append(c.frags, "<hr>")
	case lineUnordered:
		c.closeList(listOrdered)
		if c.list != listUnordered {
			c.frags = append(c.frags, "<ul>")
			c.list = listUnordered
		}
		c.frags = append(c.frags, "<li>"+Inline(ln.text)+"</li>")
	case lineOrdered:
		c.closeList(listUnordered)
		if c.list != listOrdered {
			c.frags = append(c.frags, "<ol>")
			c.list = listOrdered
		}
		c.frags = append(c.frags, "<li>"+Inline(ln.text)+"</li>")
	case lineBlank:
		c.closeList(c.list)
	case lineParagraph:
		c.closeList(c.list)
		c.frags = append(c.frags, "<p>"+Inline(ln.text)+"</p>")
	}
}

// closeList emits the closing fragment for m when it is the open list.
func (c *converter) closeList(m listMode) {
	if m == listNone || c.list != m {
		return
	}
	if m == listUnordered {
		c.frags = append(c.frags, "</ul>")
	} else {
		c.frags = append(c.frags, "</ol>")
	}
	c.list = listNone
}

// flushQuote emits accumulated blockquote lines, joined with single
// spaces, as one fragment.
func (c *converter) flushQuote() {
	if len(c.quote) == 0 {
		return
	}
	joined := Inline(strings.Join(c.quote, " "))
	c.frags = append(c.frags, "<blockquote><p>"+joined+"</p></blockquote>")
	c.quote = nil
}

// finish closes whatever is still open: pending blockquote, then lists,
// then an unterminated code fence.
func (c *converter) finish() {
	c.flushQuote()
	c.closeList(listUnordered)
	c.closeList(listOrdered)
	if c.fence {
		c.frags = append(c.frags, "</code></pre>")
		c.fence = false
	}
}

// Fragments converts body text into HTML fragments, in source order except
// that a blockquote run is flushed as one fragment where it ends.
func Fragments(body string) []string {
	c := &converter{}
	for _, line := range strings.Split(body, "\n") {
		c.feed(line)
	}
	c.finish()
	return c.frags
}

// Convert renders body text as HTML, fragments joined with the standard
// separator.
func Convert(body string) string {
	return strings.Join(Fragments(body), fragmentSeparator)
}
