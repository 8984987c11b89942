package config

import (
	"path/filepath"
)

var (
	// AppName is used in generating file system paths.
	AppName = "avdb"
)

// ConfigDir returns the directory path for configuration files.
// Returns ~/.config/avdb by default.
func ConfigDir(homeDir string) string {
	return filepath.Join(homeDir, ".config", AppName)
}

// CacheDir returns the directory path for cache files and run artifacts.
// Returns ~/.cache/avdb by default.
func CacheDir(homeDir string) string {
	return filepath.Join(homeDir, ".cache", AppName)
}

// LogDir returns the directory path for log files.
// Returns ~/.local/share/avdb/logs by default.
func LogDir(homeDir string) string {
	return filepath.Join(homeDir, ".local", "share", AppName, "logs")
}

// ConfigFilePath returns the full path to the config.yaml file.
// Returns ~/.config/avdb/config.yaml by default.
func ConfigFilePath(homeDir string) string {
	return filepath.Join(ConfigDir(homeDir), "config.yaml")
}

// DatasetsFilePath returns the full path to the datasets.yaml file.
// Returns ~/.config/avdb/datasets.yaml by default.
func DatasetsFilePath(homeDir string) string {
	return filepath.Join(ConfigDir(homeDir), "datasets.yaml")
}

// RegistryFilePath returns the full path to the surrogate-key registry.
// Returns ~/.config/avdb/registry.yaml by default.
func RegistryFilePath(homeDir string) string {
	return filepath.Join(ConfigDir(homeDir), "registry.yaml")
}
