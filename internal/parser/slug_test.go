package parser

import "testing"

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"My First Post", "my-first-post"},
		{"Hello, World!", "hello-world"},
		{"What's in a Name?", "whats-in-a-name"},
		{"Spaces    collapse", "spaces-collapse"},
		{"already-a-slug", "already-a-slug"},
		{"Hyphens -- collapse --- too", "hyphens-collapse-too"},
		{"  trimmed  ", "trimmed"},
		{"---", ""},
		{"Numbers 123 stay", "numbers-123-stay"},
		{"C'est déjà l'été", "cest-dj-lt"},
	}
	for _, c := range cases {
		if got := Slugify(c.in); got != c.want {
			t.Errorf("Slugify(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestSlugify_FixedPointOnOwnOutput(t *testing.T) {
	titles := []string{
		"My First Post",
		"Hello, World!",
		"Hyphens -- collapse",
		"Ünicode Strípped",
	}
	for _, title := range titles {
		once := Slugify(title)
		twice := Slugify(once)
		if once != twice {
			t.Errorf("Slugify(Slugify(%q)): %q != %q", title, twice, once)
		}
	}
}
