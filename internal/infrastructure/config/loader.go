package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// AppFile is the config file name inside the loader's filesystem
const AppFile = "app.yaml"

// Loader loads application configuration from YAML files using fs.FS interface
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

// LoadApp loads app.yaml over the defaults and validates the result
func (l *Loader) LoadApp() (*AppConfig, error) {
	data, err := fs.ReadFile(l.fsys, AppFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s/%s: %w", l.basePath, AppFile, err)
	}
	return Parse(data)
}

// Parse decodes YAML data over the defaults and validates the result
func Parse(data []byte) (*AppConfig, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", AppFile, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", AppFile, err)
	}
	return cfg, nil
}

// Validate checks values the program cannot run with
func (c *AppConfig) Validate() error {
	var errs []error
	if c.Display.ScreenWidth <= 0 || c.Display.ScreenHeight <= 0 {
		errs = append(errs, fmt.Errorf("display size must be positive, got %dx%d", c.Display.ScreenWidth, c.Display.ScreenHeight))
	}
	if c.Display.Scale <= 0 {
		errs = append(errs, fmt.Errorf("display scale must be positive, got %d", c.Display.Scale))
	}
	if c.Display.Framerate <= 0 {
		errs = append(errs, fmt.Errorf("framerate must be positive, got %d", c.Display.Framerate))
	}
	if c.Loading.Duration < 0 {
		errs = append(errs, fmt.Errorf("loading duration must not be negative, got %v", c.Loading.Duration))
	}
	if c.Loading.SpinnerSize <= 0 {
		errs = append(errs, fmt.Errorf("spinner size must be positive, got %v", c.Loading.SpinnerSize))
	}
	return errors.Join(errs...)
}

// DT returns the fixed per-frame time step in seconds
func (c *AppConfig) DT() float64 {
	return 1.0 / float64(c.Display.Framerate)
}
