// Package config loads and persists the placera configuration: catalog
// database location, HTTP listen address, paging defaults and lexicon
// extensions. Configuration lives in a TOML file under the XDG config
// directory.
package config

import (
	_ "embed"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
)

//go:embed config.toml.sample
var configTemplate string

type Config struct {
	// DBPath is the location of the SQLite catalog database.
	DBPath string `toml:"db_path"`

	// Host and Port form the HTTP listen address used by serve.
	Host string `toml:"host"`
	Port string `toml:"port"`

	// PageSize is the default number of results per page.
	PageSize int `toml:"page_size"`

	// RequestTimeout bounds a single API search request.
	RequestTimeout Duration `toml:"request_timeout"`

	// Lexicon extends the built-in vocabulary tables.
	Lexicon LexiconConfig `toml:"lexicon"`
}

// LexiconConfig carries user additions to the built-in lexicon. Entries merge
// into the default tables at load time; the built-ins cannot be removed.
type LexiconConfig struct {
	ExtraCities    []string          `toml:"extra_cities,omitempty"`
	ExtraStopwords []string          `toml:"extra_stopwords,omitempty"`
	Corrections    map[string]string `toml:"corrections,omitempty"`

	// ExtraExpansions maps a filter-level category to additional subtype
	// labels. Subtypes for a known category append to its built-in list;
	// unknown categories become new expansion entries.
	ExtraExpansions map[string][]string `toml:"extra_expansions,omitempty"`
}

type Duration struct {
	time.Duration
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// ListenAddr returns the host:port the HTTP server binds to.
func (c *Config) ListenAddr() string {
	return net.JoinHostPort(c.Host, c.Port)
}

func GetDefaultConfig() (*Config, error) {
	dbPath, err := GetDefaultDBPath()
	if err != nil {
		return nil, fmt.Errorf("getting default database path: %w", err)
	}
	return &Config{
		DBPath:         dbPath,
		Host:           "localhost",
		Port:           "8080",
		PageSize:       10,
		RequestTimeout: Duration{10 * time.Second},
	}, nil
}

func LoadConfig(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return GetDefaultConfig()
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var config Config
	if err := toml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if config.DBPath == "" {
		dbPath, err := GetDefaultDBPath()
		if err != nil {
			return nil, fmt.Errorf("getting default database path: %w", err)
		}
		config.DBPath = dbPath
	}
	if config.Host == "" {
		config.Host = "localhost"
	}
	if config.Port == "" {
		config.Port = "8080"
	}
	if config.PageSize <= 0 {
		config.PageSize = 10
	}
	if config.RequestTimeout.Duration == 0 {
		config.RequestTimeout = Duration{10 * time.Second}
	}

	return &config, nil
}

func (c *Config) SaveConfig(configPath string) error {
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	return os.WriteFile(configPath, data, 0644)
}

func (c *Config) SaveTemplateConfig(configPath string) error {
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	template, err := c.generateConfigTemplate()
	if err != nil {
		return fmt.Errorf("generating config template: %w", err)
	}
	return os.WriteFile(configPath, []byte(template), 0644)
}

func (c *Config) generateConfigTemplate() (string, error) {
	dbPath := c.DBPath
	if dbPath == "" {
		var err error
		dbPath, err = GetDefaultDBPath()
		if err != nil {
			return "", fmt.Errorf("getting default database path: %w", err)
		}
	}

	// Replace the placeholder db_path with the actual path
	template := strings.Replace(configTemplate, "/home/user/.local/share/placera/catalog.db", dbPath, 1)
	return template, nil
}

// GetDefaultDataDir returns the default data directory for the catalog
// database.
func GetDefaultDataDir() (string, error) {
	// Use XDG_DATA_HOME if set, otherwise use ~/.local/share
	dataDir := os.Getenv("XDG_DATA_HOME")
	if dataDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("getting user home directory: %w", err)
		}
		dataDir = filepath.Join(homeDir, ".local", "share")
	}

	placeraDir := filepath.Join(dataDir, "placera")

	if err := os.MkdirAll(placeraDir, 0755); err != nil {
		return "", fmt.Errorf("creating data directory %s: %w", placeraDir, err)
	}

	return placeraDir, nil
}

// GetDefaultDBPath returns the default catalog database path in the user's
// data directory.
func GetDefaultDBPath() (string, error) {
	dataDir, err := GetDefaultDataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dataDir, "catalog.db"), nil
}

// GetConfigDir returns the configuration directory for placera.
func GetConfigDir() (string, error) {
	// Use XDG_CONFIG_HOME if set, otherwise use ~/.config
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("getting user home directory: %w", err)
		}
		configDir = filepath.Join(homeDir, ".config")
	}

	placeraConfigDir := filepath.Join(configDir, "placera")

	if err := os.MkdirAll(placeraConfigDir, 0755); err != nil {
		return "", fmt.Errorf("creating config directory %s: %w", placeraConfigDir, err)
	}

	return placeraConfigDir, nil
}

// GetDefaultConfigPath returns the default configuration file path.
func GetDefaultConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.toml"), nil
}
