package build

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/starford/ansuz/internal/render"
	"github.com/starford/ansuz/internal/testutil"
)

// testEnv sets up empty draft and site directories and a Builder over them.
func testEnv(t *testing.T) (string, string, *Builder) {
	t.Helper()
	draftsDir, drafts := testutil.TestDir(t)
	siteDir, site := testutil.TestDir(t)
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	b := New(drafts, site, render.Site{Name: "Test Blog", Year: 2026}, logger)
	return draftsDir, siteDir, b
}

func writeDraft(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func readSiteFile(t *testing.T, dir, rel string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dir, rel))
	if err != nil {
		t.Fatalf("read %s: %v", rel, err)
	}
	return string(data)
}

func TestRun_BuildsPostsAndIndex(t *testing.T) {
	draftsDir, siteDir, b := testEnv(t)
	writeDraft(t, draftsDir, "older.md", "---\ntitle: Older\ndate: 2025-01-01\n---\nThe first one.")
	writeDraft(t, draftsDir, "newer.md", "---\ntitle: Newer\ndate: January 15, 2026\n---\nThe second one.")

	res, err := b.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.Posts != 2 {
		t.Errorf("Posts = %d, want 2", res.Posts)
	}

	older := readSiteFile(t, siteDir, "posts/older.html")
	if !strings.Contains(older, "The first one.") {
		t.Error("post body missing from older.html")
	}
	if !strings.Contains(older, "Older — Test Blog") {
		t.Error("post title missing from older.html")
	}

	idx := readSiteFile(t, siteDir, "index.html")
	newerAt := strings.Index(idx, "posts/newer.html")
	olderAt := strings.Index(idx, "posts/older.html")
	if newerAt < 0 || olderAt < 0 {
		t.Fatalf("index missing post links:\n%s", idx)
	}
	if newerAt > olderAt {
		t.Error("expected newest post listed first")
	}
}

func TestBuildPost_RecordFields(t *testing.T) {
	draftsDir, _, b := testEnv(t)
	writeDraft(t, draftsDir, "field-notes.md", "---\ntitle: Field Notes\ndate: 2026-03-01\n---\nBody.")

	post, err := b.buildPost("field-notes.md")
	if err != nil {
		t.Fatalf("buildPost: %v", err)
	}
	if post.Source != "field-notes.md" {
		t.Errorf("Source = %q, want %q", post.Source, "field-notes.md")
	}
	if post.Slug != "field-notes" {
		t.Errorf("Slug = %q, want %q", post.Slug, "field-notes")
	}
	if post.Title != "Field Notes" {
		t.Errorf("Title = %q, want %q", post.Title, "Field Notes")
	}
	if post.Date.IsZero() {
		t.Error("Date should be parsed, not zero")
	}
}

func TestRun_NoDraftsWritesNothing(t *testing.T) {
	_, siteDir, b := testEnv(t)

	res, err := b.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.Posts != 0 {
		t.Errorf("Posts = %d, want 0", res.Posts)
	}
	if _, err := os.Stat(filepath.Join(siteDir, "index.html")); !os.IsNotExist(err) {
		t.Error("index.html should not exist when there are no drafts")
	}
}

func TestRun_TitleAndSlugFallBackToFilename(t *testing.T) {
	draftsDir, siteDir, b := testEnv(t)
	writeDraft(t, draftsDir, "my-first-post.md", "No frontmatter here, just a paragraph.")

	if _, err := b.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}

	page := readSiteFile(t, siteDir, "posts/my-first-post.html")
	if !strings.Contains(page, "My First Post") {
		t.Error("expected title derived from filename")
	}
}

func TestRun_UndatedPostsSortLast(t *testing.T) {
	draftsDir, siteDir, b := testEnv(t)
	writeDraft(t, draftsDir, "dated.md", "---\ntitle: Dated\ndate: 2020-06-01\n---\nBody.")
	writeDraft(t, draftsDir, "undated.md", "---\ntitle: Undated\n---\nBody.")

	if _, err := b.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}

	idx := readSiteFile(t, siteDir, "index.html")
	datedAt := strings.Index(idx, "posts/dated.html")
	undatedAt := strings.Index(idx, "posts/undated.html")
	if datedAt < 0 || undatedAt < 0 {
		t.Fatal("index missing post links")
	}
	if datedAt > undatedAt {
		t.Error("expected dated post listed before undated post")
	}
}

func TestRun_SlugCollisionLastWriteWins(t *testing.T) {
	draftsDir, siteDir, b := testEnv(t)
	writeDraft(t, draftsDir, "a.md", "---\ntitle: Same Title\n---\nalpha body")
	writeDraft(t, draftsDir, "b.md", "---\ntitle: Same Title\n---\nbeta body")

	res, err := b.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.Posts != 2 {
		t.Errorf("Posts = %d, want 2", res.Posts)
	}

	page := readSiteFile(t, siteDir, "posts/same-title.html")
	if !strings.Contains(page, "beta body") {
		t.Error("expected later draft to win the shared slug")
	}
}

func TestRun_UnreadableDraftAborts(t *testing.T) {
	draftsDir, _, b := testEnv(t)
	if err := os.Symlink(filepath.Join(draftsDir, "missing"), filepath.Join(draftsDir, "bad.md")); err != nil {
		t.Skipf("symlink: %v", err)
	}

	if _, err := b.Run(context.Background()); err == nil {
		t.Error("expected error for unreadable draft")
	}
}

func TestRun_CancelledContext(t *testing.T) {
	draftsDir, _, b := testEnv(t)
	writeDraft(t, draftsDir, "post.md", "body")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := b.Run(ctx); err == nil {
		t.Error("expected error from cancelled context")
	}
}

func TestClean_RemovesOnlyGeneratedPosts(t *testing.T) {
	draftsDir, siteDir, b := testEnv(t)
	writeDraft(t, draftsDir, "post.md", "---\ntitle: Post\n---\nBody.")
	if _, err := b.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if err := os.WriteFile(filepath.Join(siteDir, "posts", "notes.txt"), []byte("keep"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := b.Clean(); err != nil {
		t.Fatalf("Clean: %v", err)
	}

	if _, err := os.Stat(filepath.Join(siteDir, "posts", "post.html")); !os.IsNotExist(err) {
		t.Error("generated post should be removed")
	}
	if _, err := os.Stat(filepath.Join(siteDir, "posts", "notes.txt")); err != nil {
		t.Error("non-HTML file should survive clean")
	}
	if _, err := os.Stat(filepath.Join(siteDir, "index.html")); err != nil {
		t.Error("index should survive clean")
	}
	if _, err := os.Stat(filepath.Join(draftsDir, "post.md")); err != nil {
		t.Error("draft should survive clean")
	}
}

func TestClean_MissingPostsDirIsNoop(t *testing.T) {
	_, _, b := testEnv(t)
	if err := b.Clean(); err != nil {
		t.Fatalf("Clean: %v", err)
	}
}
