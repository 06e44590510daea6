package internal

import (
	"log/slog"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Config represents the application configuration.
type Config struct {
	App   ApplicationConfig `yaml:"app"`
	Site  SiteConfig        `yaml:"site"`
	Paths PathsConfig       `yaml:"paths"`
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := c.Site.Validate(); err != nil {
		return err
	}
	return c.Paths.Validate()
}

// ApplicationConfig holds application-level configuration.
type ApplicationConfig struct {
	LogLevel slog.Level `yaml:"log_level"`
}

// SiteConfig holds the identity rendered into every generated page.
// Heading falls back to Name when empty; Tagline, Author, Email and
// LinkedIn are optional and omitted from the output when unset.
type SiteConfig struct {
	Name        string `yaml:"name"`
	Heading     string `yaml:"heading"`
	Tagline     string `yaml:"tagline"`
	Description string `yaml:"description"`
	Author      string `yaml:"author"`
	Email       string `yaml:"email"`
	LinkedIn    string `yaml:"linkedin"`
}

// Validate validates the site configuration.
func (c *SiteConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Name, validation.Required),
	)
}

// PathsConfig holds the drafts input directory and the site output directory.
type PathsConfig struct {
	Drafts string `yaml:"drafts"`
	Site   string `yaml:"site"`
}

// Validate validates the paths configuration.
func (c *PathsConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Drafts, validation.Required),
		validation.Field(&c.Site, validation.Required),
	)
}

// NewDefaultConfig returns a new Config with sensible default values.
func NewDefaultConfig() *Config {
	return &Config{
		App: ApplicationConfig{
			LogLevel: slog.LevelInfo,
		},
		Site: SiteConfig{
			Name: "My Blog",
		},
		Paths: PathsConfig{
			Drafts: "./drafts",
			Site:   ".",
		},
	}
}
