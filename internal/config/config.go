package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/cmakeproj/cmakeproj/internal/branding"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Recognized configuration keys.
const (
	KeyBuildDir     = "build_dir"
	KeyGenerator    = "generator"
	KeyStandard     = "standard"
	KeyEditorConfig = "editor_config"
	KeyVCSBackend   = "vcs.backend"
	KeyVCSStrict    = "vcs.strict"
	KeyCMake        = "tools.cmake"
	KeyGit          = "tools.git"
)

var defaultValues = map[string]interface{}{
	KeyBuildDir:     "build",
	KeyGenerator:    "Ninja",
	KeyStandard:     "cpp20",
	KeyEditorConfig: true,
	KeyVCSBackend:   "exec",
	KeyVCSStrict:    false,
	KeyCMake:        "cmake",
	KeyGit:          "git",
}

var boolKeys = map[string]bool{
	KeyEditorConfig: true,
	KeyVCSStrict:    true,
}

// Settings is a snapshot of the effective configuration.
type Settings struct {
	BuildDir     string
	Generator    string
	Standard     string
	EditorConfig bool
	VCSBackend   string
	StrictVCS    bool
	CMake        string
	Git          string
}

// Dir returns the path to the config directory (~/.cmakeproj/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.cmakeproj/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the config file and environment.
// Nested keys map to env vars with dots replaced, e.g. vcs.backend →
// CMAKEPROJ_VCS_BACKEND.
func Load() {
	for key, value := range defaultValues {
		viper.SetDefault(key, value)
	}
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Current returns the effective settings after defaults, file and env.
func Current() Settings {
	return Settings{
		BuildDir:     viper.GetString(KeyBuildDir),
		Generator:    viper.GetString(KeyGenerator),
		Standard:     viper.GetString(KeyStandard),
		EditorConfig: viper.GetBool(KeyEditorConfig),
		VCSBackend:   viper.GetString(KeyVCSBackend),
		StrictVCS:    viper.GetBool(KeyVCSStrict),
		CMake:        viper.GetString(KeyCMake),
		Git:          viper.GetString(KeyGit),
	}
}

// Keys returns the recognized configuration keys in sorted order.
func Keys() []string {
	keys := make([]string, 0, len(defaultValues))
	for k := range defaultValues {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// IsKnownKey reports whether key is a recognized configuration key.
func IsKnownKey(key string) bool {
	_, ok := defaultValues[key]
	return ok
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// Set writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	if !IsKnownKey(key) {
		return fmt.Errorf("unknown config key %q (known keys: %s)", key, strings.Join(Keys(), ", "))
	}
	if err := EnsureDir(); err != nil {
		return err
	}

	if boolKeys[key] {
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("config key %q expects true or false, got %q", key, value)
		}
		viper.Set(key, b)
	} else {
		viper.Set(key, value)
	}

	configFile := FilePath()

	// Create the file if it doesn't exist.
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
