package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"slices"
)

// Loader loads application configuration from JSON files using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// LoadApp loads and validates app.json
func (l *Loader) LoadApp() (*AppConfig, error) {
	data, err := fs.ReadFile(l.fsys, "app.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read app.json: %w", err)
	}

	var cfg AppConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse app.json: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid app.json: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration can start the game
func (c *AppConfig) Validate() error {
	d := c.Display
	if d.ScreenWidth <= 0 || d.ScreenHeight <= 0 {
		return fmt.Errorf("screen size must be positive, got %dx%d", d.ScreenWidth, d.ScreenHeight)
	}
	if d.Scale <= 0 {
		return fmt.Errorf("scale must be positive, got %d", d.Scale)
	}
	if d.Framerate <= 0 {
		return fmt.Errorf("framerate must be positive, got %d", d.Framerate)
	}
	if len(c.Scenes) == 0 {
		return fmt.Errorf("scene list is empty")
	}
	if !slices.Contains(c.Scenes, c.Startup.Scene) {
		return fmt.Errorf("startup scene %q is not in the scene list", c.Startup.Scene)
	}
	return nil
}
