// Package config loads and saves the wayfind.json project
// configuration.
package config

import (
	"encoding/json"
	"net"
	"os"
	"path/filepath"
	"regexp"
	"strconv"

	"github.com/wayfind-dev/wayfind/internal/errors"
	"github.com/wayfind-dev/wayfind/pkg/routes"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "wayfind.json"

	// DefaultPort is the default dev server port.
	DefaultPort = 3100

	// DefaultHost is the default dev server host.
	DefaultHost = "localhost"

	// DefaultRoutesDir is the default routes directory.
	DefaultRoutesDir = "app/routes"

	// DefaultPlatform is the default platform identity.
	DefaultPlatform = "web"
)

// Config represents the complete wayfind.json configuration.
type Config struct {
	// Name is the project name.
	Name string `json:"name,omitempty"`

	// Routes is the path to the routes directory.
	Routes string `json:"routes,omitempty"`

	// Platform is the platform identity used during resolution.
	Platform string `json:"platform,omitempty"`

	// PlatformExtensions enables platform-specific route file
	// variants (index.ios.tsx, ...).
	PlatformExtensions bool `json:"platformExtensions,omitempty"`

	// Ignore holds additional exclusion patterns, as regular
	// expressions matched against raw file keys.
	Ignore []string `json:"ignore,omitempty"`

	// PreserveApiRoutes keeps +api files in the scan.
	PreserveApiRoutes bool `json:"preserveApiRoutes,omitempty"`

	// Sitemap forces the generated _sitemap view even when no real
	// routes exist.
	Sitemap bool `json:"sitemap,omitempty"`

	// ImprovedErrorMessages selects the longer conflict wording.
	ImprovedErrorMessages bool `json:"improvedErrorMessages,omitempty"`

	// Dev contains development server configuration.
	Dev DevConfig `json:"dev,omitempty"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// DevConfig contains development server configuration.
type DevConfig struct {
	// Host is the dev server bind host.
	Host string `json:"host,omitempty"`

	// Port is the dev server port.
	Port int `json:"port,omitempty"`
}

// New returns a configuration with defaults applied.
func New() *Config {
	return &Config{
		Routes:   DefaultRoutesDir,
		Platform: DefaultPlatform,
		Dev: DevConfig{
			Host: DefaultHost,
			Port: DefaultPort,
		},
	}
}

// Load reads configuration from wayfind.json in the given directory.
func Load(dir string) (*Config, error) {
	return LoadFile(filepath.Join(dir, ConfigFileName))
}

// LoadFile reads configuration from the specified file path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New("W020").
				WithDetail("No " + ConfigFileName + " found in " + filepath.Dir(path))
		}
		return nil, errors.New("W021").Wrap(err)
	}

	cfg := New()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.New("W021").
			WithDetail("Failed to parse " + ConfigFileName + ": " + err.Error())
	}

	cfg.configPath = path
	cfg.applyDefaults()
	return cfg, nil
}

// Save writes the configuration to the file it was loaded from.
func (c *Config) Save() error {
	if c.configPath == "" {
		return errors.Newf(errors.CategoryConfig, "no config path set")
	}
	return c.SaveTo(c.configPath)
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.New("W021").Wrap(err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.New("W021").Wrap(err)
	}
	c.configPath = path
	return nil
}

// Path returns the path where the config was loaded from.
func (c *Config) Path() string {
	return c.configPath
}

// Dir returns the directory containing the config file.
func (c *Config) Dir() string {
	if c.configPath == "" {
		return ""
	}
	return filepath.Dir(c.configPath)
}

func (c *Config) applyDefaults() {
	if c.Routes == "" {
		c.Routes = DefaultRoutesDir
	}
	if c.Platform == "" {
		c.Platform = DefaultPlatform
	}
	if c.Dev.Host == "" {
		c.Dev.Host = DefaultHost
	}
	if c.Dev.Port == 0 {
		c.Dev.Port = DefaultPort
	}
}

// RoutesPath returns the absolute path of the routes directory.
func (c *Config) RoutesPath() string {
	if filepath.IsAbs(c.Routes) {
		return c.Routes
	}
	return filepath.Join(c.Dir(), c.Routes)
}

// DevAddress returns the host:port address of the dev server.
func (c *Config) DevAddress() string {
	return net.JoinHostPort(c.Dev.Host, strconv.Itoa(c.Dev.Port))
}

// ResolveOptions translates the configuration into resolver options.
// production selects permissive view-conflict handling.
func (c *Config) ResolveOptions(production bool) (routes.Options, error) {
	opts := routes.Options{
		PreserveAPIRoutes:     c.PreserveApiRoutes,
		PlatformExtensions:    c.PlatformExtensions,
		Platform:              c.Platform,
		AlwaysIncludeSitemap:  c.Sitemap,
		ImprovedErrorMessages: c.ImprovedErrorMessages,
		PermissiveDuplicates:  production,
	}
	for _, pattern := range c.Ignore {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return routes.Options{}, errors.New("W022").
				WithDetail("Pattern " + strconv.Quote(pattern) + " is not a valid regular expression").
				Wrap(err)
		}
		opts.Ignore = append(opts.Ignore, re)
	}
	return opts, nil
}

// Exists reports whether a wayfind.json exists in the directory.
func Exists(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, ConfigFileName))
	return err == nil
}

// FindProjectRoot walks up directories to find the project root.
// Returns the directory containing wayfind.json.
func FindProjectRoot(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	for {
		if Exists(dir) {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.New("W020").
				WithDetail("No " + ConfigFileName + " found in " + startDir + " or any parent directory")
		}
		dir = parent
	}
}

// LoadFromWorkingDir loads configuration from the current working
// directory or the nearest parent holding a wayfind.json.
func LoadFromWorkingDir() (*Config, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	root, err := FindProjectRoot(wd)
	if err != nil {
		return nil, err
	}
	return Load(root)
}
