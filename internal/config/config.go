// Package config loads bookstall configuration from defaults, a TOML file and
// BOOKSTALL_* environment variables, in that order of increasing precedence.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/ideal-institute/bookstall/internal/colors"
	"github.com/pelletier/go-toml/v2"
)

// File permission constants
const (
	FileModeDir  os.FileMode = 0755
	FileModeFile os.FileMode = 0644

	// FileExtTOML is the extension of the configuration file.
	FileExtTOML = ".toml"

	// EnvPrefix prefixes every environment override.
	EnvPrefix = "BOOKSTALL_"
)

// Defaults for the Catalog API of the campus deployment.
const (
	DefaultAPIBaseURL   = "http://localhost/ideal-bookstore/backend/api"
	DefaultAssetBaseURL = "http://localhost/ideal-bookstore"
)

var (
	config    map[string]string
	defaults  map[string]string
	overrides map[string]string
	mu        sync.RWMutex
)

func init() {
	initValidators()
	reset()
}

func reset() {
	config = make(map[string]string)
	defaults = make(map[string]string)
	overrides = make(map[string]string)
}

// Reset drops all loaded values and explicit overrides.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	reset()
}

// Load initializes configuration.
func Load() {
	mu.Lock()
	defer mu.Unlock()

	config = make(map[string]string)
	defaults = make(map[string]string)

	setDefaults()
	// config_dir may come from the environment, so env is applied before the
	// file is located and again afterwards so env wins.
	loadFromEnv()
	loadFromFile()
	loadFromEnv()
	for k, v := range overrides {
		config[k] = v
	}
	validate()
	createSampleConfig()
}

func setDefaults() {
	home, _ := os.UserHomeDir()
	xdgConfigHome := os.Getenv("XDG_CONFIG_HOME")
	if xdgConfigHome == "" {
		xdgConfigHome = filepath.Join(home, ".config")
	}
	xdgStateHome := os.Getenv("XDG_STATE_HOME")
	if xdgStateHome == "" {
		xdgStateHome = filepath.Join(home, ".local", "state")
	}

	setDefault("config_dir", filepath.Join(xdgConfigHome, "bookstall"))
	setDefault("state_dir", filepath.Join(xdgStateHome, "bookstall"))
	setDefault("api_base_url", DefaultAPIBaseURL)
	setDefault("asset_base_url", DefaultAssetBaseURL)
	setDefault("api_timeout_seconds", "30")
	setDefault("storage_backend", "sqlite")
	setDefault("viewport_cell_width_px", "8")
	setDefault("viewport_cell_height_px", "16")
	setDefault("list_format", "simple")
	setDefault("logging_enabled", "false")
	setDefault("logging_level", "info")
	setDefault("logging_max_files", "10")
	setDefault("debug", "false")
	setDefault("quiet", "false")
}

func setDefault(key, value string) {
	config[key] = value
	defaults[key] = value
}

// Path returns the configuration file that Load reads, whether or not it exists.
func Path() string {
	mu.RLock()
	defer mu.RUnlock()
	return configPath()
}

func configPath() string {
	if p := os.Getenv(EnvPrefix + "CONFIG_PATH"); p != "" {
		return p
	}
	dir := config["config_dir"]
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "config"+FileExtTOML)
}

func loadFromFile() {
	path := configPath()
	if path == "" {
		return
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			colors.Debug(fmt.Sprintf("unable to read config file %s: %v", path, err))
		}
		return
	}
	if strings.ToLower(filepath.Ext(path)) != FileExtTOML {
		colors.Warning(fmt.Sprintf("ignoring config file %s: only %s is supported", path, FileExtTOML))
		return
	}

	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		colors.Warning(fmt.Sprintf("unable to parse config file %s: %v", path, err))
		return
	}
	for k, v := range raw {
		key := strings.ToLower(k)
		converted, ok := coerceConfigValue(v)
		if !ok {
			colors.Warning(fmt.Sprintf("unsupported config value type for %s: %T", key, v))
			continue
		}
		config[key] = converted
	}
}

// coerceConfigValue converts a decoded TOML scalar to its string form.
func coerceConfigValue(value any) (string, bool) {
	switch typed := value.(type) {
	case string:
		return typed, true
	case int:
		return strconv.Itoa(typed), true
	case int64:
		return strconv.FormatInt(typed, 10), true
	case float64:
		return strconv.FormatFloat(typed, 'f', -1, 64), true
	case bool:
		return strconv.FormatBool(typed), true
	default:
		return "", false
	}
}

func loadFromEnv() {
	for _, env := range os.Environ() {
		if !strings.HasPrefix(env, EnvPrefix) {
			continue
		}
		parts := strings.SplitN(env, "=", 2)
		if len(parts) != 2 {
			continue
		}
		key := strings.ToLower(strings.TrimPrefix(parts[0], EnvPrefix))
		if key == "config_path" {
			continue
		}
		config[key] = parts[1]
	}
}

func validate() {
	for key, value := range config {
		validator := getValidator(key)
		if validator == nil {
			continue
		}
		def := defaults[key]
		normalized, err := validator(key, value, def)
		if err != nil {
			colors.Warning(fmt.Sprintf("validation error for %s: %v, using default: %s", key, err, def))
			config[key] = def
			continue
		}
		config[key] = normalized
	}
}

func valueToInterface(val string) any {
	if n, err := strconv.Atoi(val); err == nil {
		return n
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return val
}

// createSampleConfig writes the defaults to config.toml when no file exists yet.
func createSampleConfig() {
	if os.Getenv(EnvPrefix+"CONFIG_PATH") != "" {
		return
	}
	path := configPath()
	if path == "" {
		return
	}
	if _, err := os.Stat(path); err == nil {
		return
	}
	if err := os.MkdirAll(filepath.Dir(path), FileModeDir); err != nil {
		colors.Debug(fmt.Sprintf("unable to create config dir: %v", err))
		return
	}

	typed := make(map[string]any, len(defaults))
	for k, v := range defaults {
		typed[k] = valueToInterface(v)
	}
	data, err := toml.Marshal(typed)
	if err != nil {
		colors.Warning(fmt.Sprintf("unable to marshal sample config: %v", err))
		return
	}
	header := "# bookstall configuration\n# Environment variables BOOKSTALL_<KEY> override these values.\n\n"
	if err := os.WriteFile(path, append([]byte(header), data...), FileModeFile); err != nil {
		colors.Warning(fmt.Sprintf("unable to write sample config to %s: %v", path, err))
	}
}

// Set pins a value above every other source, e.g. from a command-line flag.
// The value is validated on the next Load.
func Set(key, value string) {
	mu.Lock()
	defer mu.Unlock()
	key = strings.ToLower(key)
	overrides[key] = value
	config[key] = value
}

// Get returns a configuration value or default.
func Get(key, defaultValue string) string {
	mu.RLock()
	defer mu.RUnlock()
	if val, ok := config[key]; ok {
		return val
	}
	return defaultValue
}

// GetInt returns a configuration value as integer, or default.
func GetInt(key string, defaultValue int) int {
	mu.RLock()
	defer mu.RUnlock()
	val, ok := config[key]
	if !ok {
		return defaultValue
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return defaultValue
	}
	return n
}

// GetBool returns a configuration value as boolean, or default.
func GetBool(key string, defaultValue bool) bool {
	mu.RLock()
	defer mu.RUnlock()
	val, ok := config[key]
	if !ok {
		return defaultValue
	}
	switch normalizeBool(val) {
	case "true":
		return true
	case "false":
		return false
	default:
		return defaultValue
	}
}
