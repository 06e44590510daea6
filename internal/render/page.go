package render

import (
	"fmt"
	"html"
	"strings"

	"github.com/starford/ansuz/internal/models"
)

// PostPage renders a complete post document around converted body HTML.
// Metadata-derived text is escaped; the body HTML is inserted as-is.
func PostPage(site Site, post models.Post, bodyHTML string) string {
	metaLine := post.Meta["date"]
	if tags := post.Meta["tags"]; tags != "" {
		metaLine += " · " + tags
	}

	subtitleHTML := ""
	if s := post.Meta["subtitle"]; s != "" {
		subtitleHTML = fmt.Sprintf("\n          <p class=\"post-subtitle\">%s</p>", html.EscapeString(s))
	}

	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>%s — %s</title>
  <meta name="description" content="%s">
  <link rel="stylesheet" href="../assets/style.css">
  <link rel="icon" href="%s">
</head>
<body>

%s

  <main>
    <article>
      <header class="post-header">
        <div class="container">
          <div class="post-meta">%s</div>
          <h1>%s</h1>%s
        </div>
      </header>

      <div class="post-content">
        <div class="container">
          %s
        </div>
      </div>
    </article>
  </main>

%s

</body>
</html>`,
		html.EscapeString(post.Title), html.EscapeString(site.Name),
		html.EscapeString(post.Meta["excerpt"]),
		faviconHref,
		siteHeader(site, false),
		html.EscapeString(metaLine),
		html.EscapeString(post.Title),
		subtitleHTML,
		bodyHTML,
		siteFooter(site))
}

// IndexPage renders the post listing document. Posts are emitted in the
// order given; sorting is the caller's concern.
func IndexPage(site Site, posts []models.Post) string {
	items := make([]string, 0, len(posts))
	for _, p := range posts {
		items = append(items, indexItem(p))
	}

	tagline := ""
	if site.Tagline != "" {
		tagline = fmt.Sprintf("\n        <p class=\"subtitle\">%s</p>", html.EscapeString(site.Tagline))
	}

	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>%s — %s</title>
  <meta name="description" content="%s">
  <link rel="stylesheet" href="assets/style.css">
  <link rel="icon" href="%s">
</head>
<body>

%s

  <main>
    <section class="index-hero">
      <div class="container">
        <h1>%s</h1>%s
      </div>
    </section>

    <section class="post-list">
      <div class="container">
%s
      </div>
    </section>
  </main>

%s

</body>
</html>`,
		html.EscapeString(site.Name), html.EscapeString(site.Heading),
		html.EscapeString(site.Description),
		faviconHref,
		siteHeader(site, true),
		html.EscapeString(site.Heading),
		tagline,
		strings.Join(items, "\n\n"),
		siteFooter(site))
}

// indexItem renders one post entry for the listing.
func indexItem(post models.Post) string {
	tagsHTML := ""
	if tags := post.Meta.Tags(); len(tags) > 0 {
		spans := make([]string, 0, len(tags))
		for _, tag := range tags {
			spans = append(spans, fmt.Sprintf(`            <span class="post-tag">%s</span>`, html.EscapeString(tag)))
		}
		tagsHTML = fmt.Sprintf("\n          <div class=\"post-tags\">\n%s\n          </div>", strings.Join(spans, "\n"))
	}

	return fmt.Sprintf(`        <article class="post-item">
          <div class="post-meta">%s</div>
          <h2><a href="posts/%s.html">%s</a></h2>
          <p class="post-excerpt">%s</p>%s
        </article>`,
		html.EscapeString(post.Meta["date"]),
		post.Slug,
		html.EscapeString(post.Title),
		html.EscapeString(post.Meta["excerpt"]),
		tagsHTML)
}
