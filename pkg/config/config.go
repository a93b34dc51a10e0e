package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/go-pkgz/lgr"
	"gopkg.in/yaml.v3"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// FileName is the well-known name of the folder configuration resource,
// looked up inside the scanned root folder
const FileName = "mrss.yml"

// DefaultBaseURL points at the web server assumed to host the scanned folder
const DefaultBaseURL = "http://raspberrypi.local/"

// DefaultExtensions is the built-in recognized set, covering the common
// container, image and audio formats players handle out of the box
var DefaultExtensions = []string{
	".mp4", ".mov", ".avi", ".mkv",
	".jpg", ".jpeg", ".png", ".gif", ".bmp", ".webp",
	".mp3", ".wav", ".flac", ".aac", ".ogg",
}

// Config holds the feed generation settings for one run. It is loaded once
// per root folder and shared read-only by the root feed and all subfolder
// feeds of that run.
type Config struct {
	BaseURL    string   `yaml:"base_url" json:"base_url" jsonschema:"default=http://raspberrypi.local/,description=Base URL of the web server hosting the media files"`
	Extensions []string `yaml:"extensions" json:"extensions" jsonschema:"description=Recognized media file extensions with leading dot"`
}

// Load reads the folder configuration resource from dir. A missing resource
// is normal and yields the built-in defaults; a present but unreadable or
// malformed one is logged as a warning and also yields defaults. Load never
// fails the run.
func Load(dir string) *Config {
	cfg := defaults()

	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path) //nolint:gosec // path is derived from the CLI folder argument
	if err != nil {
		if os.IsNotExist(err) {
			lgr.Printf("[INFO] no %s in %s, using defaults", FileName, dir)
		} else {
			lgr.Printf("[WARN] can't read %s, using defaults: %v", path, err)
		}
		return cfg
	}

	// expand environment variables
	var loaded Config
	if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(data))), &loaded); err != nil {
		lgr.Printf("[WARN] can't parse %s, using defaults: %v", path, err)
		return cfg
	}

	// take each value from the file if present, keep the default otherwise.
	// an explicitly empty extensions list is honored and yields empty feeds.
	if loaded.BaseURL != "" {
		cfg.BaseURL = loaded.BaseURL
	}
	if loaded.Extensions != nil {
		cfg.Extensions = loaded.Extensions
	}

	cfg.normalize()
	return cfg
}

// ExtensionSet returns the recognized extensions as a lookup set
func (c *Config) ExtensionSet() map[string]bool {
	set := make(map[string]bool, len(c.Extensions))
	for _, ext := range c.Extensions {
		if ext == "" {
			continue
		}
		set[ext] = true
	}
	return set
}

// defaults returns a fresh Config carrying the built-in values; the
// extension list is copied so a loaded config never aliases package state
func defaults() *Config {
	return &Config{
		BaseURL:    DefaultBaseURL,
		Extensions: append([]string(nil), DefaultExtensions...),
	}
}

// normalize enforces what the rest of the pipeline assumes: exactly one
// trailing slash on the base URL (media URLs are built by concatenation)
// and lowercased extensions with a leading dot
func (c *Config) normalize() {
	c.BaseURL = strings.TrimRight(c.BaseURL, "/") + "/"

	for i, ext := range c.Extensions {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext != "" && !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		c.Extensions[i] = ext
	}
}
