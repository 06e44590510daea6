// Package build turns a directory of Markdown drafts into a static HTML site.
package build

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"github.com/starford/ansuz/internal/markdown"
	"github.com/starford/ansuz/internal/models"
	"github.com/starford/ansuz/internal/parser"
	"github.com/starford/ansuz/internal/render"
	"github.com/starford/ansuz/internal/storage"
)

// postsDir is the output subdirectory for rendered posts, relative to the site root.
const postsDir = "posts"

// Builder renders every Markdown draft into a standalone HTML page and
// regenerates the index page that links them together.
type Builder struct {
	drafts storage.Provider
	site   storage.Provider
	view   render.Site
	logger *slog.Logger
}

// New creates a Builder that reads drafts from drafts and writes HTML to site.
func New(drafts, site storage.Provider, view render.Site, logger *slog.Logger) *Builder {
	return &Builder{drafts: drafts, site: site, view: view, logger: logger}
}

// Result summarizes a completed build.
type Result struct {
	Posts int
}

// Run builds every draft and rewrites the index. Drafts are processed in
// listing order; a read or write failure aborts the build. With no drafts
// present nothing is written, including the index.
func (b *Builder) Run(ctx context.Context) (Result, error) {
	names, err := b.drafts.List("", ".md")
	if err != nil {
		return Result{}, fmt.Errorf("build: list drafts: %w", err)
	}
	if len(names) == 0 {
		b.logger.Info("no drafts found, nothing to build")
		return Result{}, nil
	}

	posts := make([]models.Post, 0, len(names))
	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		post, err := b.buildPost(name)
		if err != nil {
			return Result{}, err
		}
		posts = append(posts, post)
	}

	// Newest first; undated posts have the zero time and sink to the end.
	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].Date.After(posts[j].Date)
	})

	if err := b.site.Write("index.html", []byte(render.IndexPage(b.view, posts))); err != nil {
		return Result{}, fmt.Errorf("build: write index: %w", err)
	}
	b.logger.Info("index updated", slog.Int("posts", len(posts)))
	return Result{Posts: len(posts)}, nil
}

// buildPost renders a single draft and writes posts/<slug>.html.
func (b *Builder) buildPost(name string) (models.Post, error) {
	data, err := b.drafts.Read(name)
	if err != nil {
		return models.Post{}, fmt.Errorf("build: read %s: %w", name, err)
	}

	meta, body := parser.Split(string(data))
	title := meta.Title(name)
	post := models.Post{
		Source: name,
		Slug:   parser.Slugify(title),
		Title:  title,
		Meta:   meta,
		Date:   parser.ParseDate(meta["date"]),
	}

	out := filepath.Join(postsDir, post.Slug+".html")
	page := render.PostPage(b.view, post, markdown.Convert(body))
	if err := b.site.Write(out, []byte(page)); err != nil {
		return models.Post{}, fmt.Errorf("build: write %s: %w", out, err)
	}
	b.logger.Info("built post", slog.String("draft", post.Source), slog.String("output", out))
	return post, nil
}

// Clean removes previously generated post pages. Only .html files directly
// under posts/ are touched; a missing posts directory is not an error.
func (b *Builder) Clean() error {
	names, err := b.site.List(postsDir, ".html")
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("build: list generated posts: %w", err)
	}
	for _, name := range names {
		rel := filepath.Join(postsDir, name)
		if err := b.site.Remove(rel); err != nil {
			return fmt.Errorf("build: remove %s: %w", rel, err)
		}
		b.logger.Info("removed generated post", slog.String("path", rel))
	}
	return nil
}
