package pathing

import (
	"os"
	"path/filepath"
)

// ConfigDirEnv overrides the config directory, mostly for development and tests.
const ConfigDirEnv = "ESM_CONFIG_DIR"

func GetConfigDir() string {
	if dir := os.Getenv(ConfigDirEnv); dir != "" {
		return dir
	}
	return "/etc/european_smart_meter"
}

func GetConfigPath(name string) string {
	return filepath.Join(GetConfigDir(), name)
}

// EnsureDir creates dir and its parents when missing.
func EnsureDir(dir string) error {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return os.MkdirAll(dir, 0755)
	}
	return nil
}
