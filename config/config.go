package config

import (
	"os"
	"path/filepath"
	"strconv"
)

const (
	defaultAddress = ":8090"

	// Matches the multipart total limit the original UI advertises (128 MiB)
	defaultMaxUpload = 128 * 1024 * 1024
)

// Config holds application configuration
type Config struct {
	RootDir        string // directory served as the drive
	Address        string // listen address for the HTTP server
	MaxUploadBytes int64  // cap on a whole upload request body
	DataDir        string // home of the activity journal database
}

// globalConfig holds the application configuration instance
var globalConfig *Config

// Initialize sets up the configuration from environment variables
func Initialize() {
	globalConfig = &Config{
		RootDir:        getRootDir(),
		Address:        getAddress(),
		MaxUploadBytes: getMaxUpload(),
		DataDir:        getDataDir(),
	}
}

// Get returns the global configuration instance
func Get() *Config {
	if globalConfig == nil {
		Initialize()
	}
	return globalConfig
}

func getRootDir() string {
	root := os.Getenv("RDRIVE_ROOT")
	if root == "" {
		root = "."
	}
	if abs, err := filepath.Abs(root); err == nil {
		return abs
	}
	return root
}

func getAddress() string {
	if addr := os.Getenv("RDRIVE_ADDRESS"); addr != "" {
		return addr
	}
	return defaultAddress
}

func getMaxUpload() int64 {
	if raw := os.Getenv("RDRIVE_MAX_UPLOAD"); raw != "" {
		if n, err := strconv.ParseInt(raw, 10, 64); err == nil && n > 0 {
			return n
		}
	}
	return defaultMaxUpload
}

func getDataDir() string {
	if dir := os.Getenv("RDRIVE_DATA_DIR"); dir != "" {
		return dir
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".rdrive"
	}
	return filepath.Join(homeDir, ".local", "share", "rdrive")
}
