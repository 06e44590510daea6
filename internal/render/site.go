// Package render assembles complete HTML pages around converted post bodies.
package render

import (
	"fmt"
	"html"
	"strings"
)

// Site carries the publishing identity stamped onto every generated page.
type Site struct {
	Name        string // header brand and title suffix
	Heading     string // index hero heading
	Tagline     string // index hero subtitle; empty omits it
	Description string // index meta description
	Author      string // copyright holder; falls back to Name when empty
	Email       string // footer mailto link; empty omits it
	LinkedIn    string // footer profile link; empty omits it
	Year        int    // copyright year
}

// faviconHref is the inline SVG favicon every page links.
const faviconHref = `data:image/svg+xml,<svg xmlns='http://www.w3.org/2000/svg' viewBox='0 0 100 100'><text y='.9em' font-size='90'>◈</text></svg>`

// siteHeader renders the shared top navigation. active marks the Writing
// link, which points at the index.
func siteHeader(site Site, active bool) string {
	writingClass := ""
	if active {
		writingClass = ` class="active"`
	}
	return fmt.Sprintf(`  <header class="site-header">
    <div class="container">
      <a href="/" class="site-name">%s</a>
      <nav>
        <ul class="site-nav">
          <li><a href="/"%s>Writing</a></li>
          <li><a href="/about.html">About</a></li>
        </ul>
      </nav>
    </div>
  </header>`, html.EscapeString(site.Name), writingClass)
}

// siteFooter renders the shared footer with the copyright line and
// whichever contact links are configured.
func siteFooter(site Site) string {
	owner := site.Author
	if owner == "" {
		owner = site.Name
	}

	var links strings.Builder
	if site.Email != "" {
		fmt.Fprintf(&links, "\n        <li><a href=\"mailto:%s\">Email</a></li>", html.EscapeString(site.Email))
	}
	if site.LinkedIn != "" {
		fmt.Fprintf(&links, "\n        <li><a href=\"%s\" target=\"_blank\" rel=\"noopener\">LinkedIn</a></li>", html.EscapeString(site.LinkedIn))
	}

	return fmt.Sprintf(`  <footer class="site-footer">
    <div class="container">
      <p>&copy; %d %s. All rights reserved.</p>
      <ul class="footer-links">%s
      </ul>
    </div>
  </footer>`, site.Year, html.EscapeString(owner), links.String())
}
