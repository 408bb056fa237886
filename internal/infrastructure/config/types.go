package config

import "github.com/younwookim/scenekit/internal/application/scene"

// AppConfig is the root config for app.json
type AppConfig struct {
	Display DisplayConfig `json:"display"`
	App     AppInfo       `json:"app"`
	Scenes  []string      `json:"scenes"` // Build list; index is the scene ID
	Startup StartupConfig `json:"startup"`
	Overlay OverlayConfig `json:"overlay"`
}

type DisplayConfig struct {
	ScreenWidth  int `json:"screenWidth"`
	ScreenHeight int `json:"screenHeight"`
	Scale        int `json:"scale"`
	Framerate    int `json:"framerate"`
}

type AppInfo struct {
	Title   string `json:"title"`
	Version string `json:"version"`
}

// StartupConfig describes the first scene load
type StartupConfig struct {
	Scene string         `json:"scene"`
	Mode  scene.LoadMode `json:"mode"`
	Async bool           `json:"async"`
}

type OverlayConfig struct {
	Enabled bool `json:"enabled"`
}
