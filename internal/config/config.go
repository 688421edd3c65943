package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// Config holds application configuration.
type Config struct {
	// ShortMaxChars is the listing width of a bookmark's short form, in runes.
	ShortMaxChars int `json:"short_max_chars"`

	// DisabledInterpreters removes interpreters from the classification order.
	// The text interpreter cannot be disabled. Unknown names are logged as warnings.
	DisabledInterpreters []string `json:"disabled_interpreters,omitempty"`

	// DisabledTools is a list of MCP tool names to exclude from registration.
	DisabledTools []string `json:"disabled_tools,omitempty"`

	// ClipboardRead, SelectionRead and ClipboardWrite override the platform
	// commands used to access the clipboard, e.g. ["xsel", "-ob"].
	// Empty means auto-detect.
	ClipboardRead  []string `json:"clipboard_read,omitempty"`
	SelectionRead  []string `json:"selection_read,omitempty"`
	ClipboardWrite []string `json:"clipboard_write,omitempty"`

	// DBMaxOpenConns limits the maximum number of open database connections.
	// 0 means use sql.DB default (unlimited).
	DBMaxOpenConns int `json:"db_max_open_conns,omitempty"`

	// DBMaxIdleConns limits the maximum number of idle database connections.
	DBMaxIdleConns int `json:"db_max_idle_conns,omitempty"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `json:"log_level,omitempty"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		ShortMaxChars: 60,
		LogLevel:      "warn",
	}
}

// Load loads configuration from baseDir/config.json.
// Returns default config if the file doesn't exist.
// The baseDir parameter allows tests to use t.TempDir() instead of ~/.bookmark.
func Load(baseDir string) (*Config, error) {
	return loadFile(filepath.Join(baseDir, "config.json"))
}

// loadFileRaw loads configuration from a specific file path.
// Returns zero-valued config if the file doesn't exist (not defaults).
func loadFileRaw(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, err
	}

	cfg := &Config{}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// loadFile loads configuration from a specific file path.
// Returns default config if the file doesn't exist.
func loadFile(configPath string) (*Config, error) {
	cfg, err := loadFileRaw(configPath)
	if err != nil {
		return nil, err
	}
	return Merge(DefaultConfig(), cfg), nil
}

// Merge combines base and overlay configs.
// Overlay values take precedence for scalars and command overrides;
// name lists are merged and deduplicated.
func Merge(base, overlay *Config) *Config {
	result := &Config{}

	// Scalars: overlay wins if non-zero, else base
	result.ShortMaxChars = overlay.ShortMaxChars
	if result.ShortMaxChars == 0 {
		result.ShortMaxChars = base.ShortMaxChars
	}

	result.DBMaxOpenConns = overlay.DBMaxOpenConns
	if result.DBMaxOpenConns == 0 {
		result.DBMaxOpenConns = base.DBMaxOpenConns
	}

	result.DBMaxIdleConns = overlay.DBMaxIdleConns
	if result.DBMaxIdleConns == 0 {
		result.DBMaxIdleConns = base.DBMaxIdleConns
	}

	result.LogLevel = strings.ToLower(strings.TrimSpace(overlay.LogLevel))
	if result.LogLevel == "" {
		result.LogLevel = base.LogLevel
	}

	// Commands replace as a whole; merging argv lists makes no sense
	result.ClipboardRead = pickCommand(base.ClipboardRead, overlay.ClipboardRead)
	result.SelectionRead = pickCommand(base.SelectionRead, overlay.SelectionRead)
	result.ClipboardWrite = pickCommand(base.ClipboardWrite, overlay.ClipboardWrite)

	// Name lists: merge and deduplicate
	result.DisabledInterpreters = mergeStringSlice(base.DisabledInterpreters, overlay.DisabledInterpreters)
	result.DisabledTools = mergeStringSlice(base.DisabledTools, overlay.DisabledTools)

	return result
}

// pickCommand returns overlay if it names a program, else base.
func pickCommand(base, overlay []string) []string {
	if len(overlay) > 0 && strings.TrimSpace(overlay[0]) != "" {
		return overlay
	}
	return base
}

// mergeStringSlice combines two slices, trims whitespace, and removes duplicates.
func mergeStringSlice(a, b []string) []string {
	seen := make(map[string]bool)
	result := make([]string, 0, len(a)+len(b))

	for _, s := range a {
		s = strings.TrimSpace(s)
		if s != "" && !seen[s] {
			seen[s] = true
			result = append(result, s)
		}
	}
	for _, s := range b {
		s = strings.TrimSpace(s)
		if s != "" && !seen[s] {
			seen[s] = true
			result = append(result, s)
		}
	}

	if len(result) == 0 {
		return nil
	}
	return result
}
