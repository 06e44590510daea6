// Package markdown converts the Markdown subset used by drafts into HTML.
package markdown

import "regexp"

// Inline substitution passes, applied in order. Each pass operates on the
// output of the previous one, so emphasis and link syntax are still
// rewritten inside already-emitted code spans: code spans protect nothing.
var inlinePasses = []struct {
	re   *regexp.Regexp
	repl string
}{
	{regexp.MustCompile(`\*\*\*(.+?)\*\*\*`), `<strong><em>$1</em></strong>`},
	{regexp.MustCompile(`\*\*(.+?)\*\*`), `<strong>$1</strong>`},
	{regexp.MustCompile(`\*(.+?)\*`), `<em>$1</em>`},
	{regexp.MustCompile("`(.+?)`"), `<code>$1</code>`},
	{regexp.MustCompile(`\[(.+?)\]\((.+?)\)`), `<a href="$2">$1</a>`},
}

// Inline applies span-level formatting to a single line of text: combined
// bold+italic, bold, italic, inline code, then links. Matching is
// non-greedy and anything unmatched passes through verbatim, unescaped.
func Inline(s string) string {
	for _, p := range inlinePasses {
		s = p.re.ReplaceAllString(s, p.repl)
	}
	return s
}
