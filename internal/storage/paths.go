// Package storage persists per-ply position snapshots so that a game's
// history can be replayed, searched by position key and rolled back.
package storage

import (
	"os"
	"path/filepath"
	"runtime"
)

const appName = "bitplanes"

// EnvDataDir overrides the platform data directory when set.
const EnvDataDir = "BITPLANES_DATA"

// GetDataDir returns the platform-specific data directory for the application.
// - $BITPLANES_DATA when set
// - macOS: ~/Library/Application Support/bitplanes/
// - Linux: ~/.local/share/bitplanes/
// - Windows: %APPDATA%/bitplanes/
func GetDataDir() (string, error) {
	if dir := os.Getenv(EnvDataDir); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", err
		}
		return dir, nil
	}

	var baseDir string

	switch runtime.GOOS {
	case "darwin":
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		baseDir = filepath.Join(homeDir, "Library", "Application Support")

	case "windows":
		baseDir = os.Getenv("APPDATA")
		if baseDir == "" {
			homeDir, err := os.UserHomeDir()
			if err != nil {
				return "", err
			}
			baseDir = filepath.Join(homeDir, "AppData", "Roaming")
		}

	default:
		// Check XDG_DATA_HOME first
		baseDir = os.Getenv("XDG_DATA_HOME")
		if baseDir == "" {
			homeDir, err := os.UserHomeDir()
			if err != nil {
				return "", err
			}
			baseDir = filepath.Join(homeDir, ".local", "share")
		}
	}

	dataDir := filepath.Join(baseDir, appName)

	// Create directory if it doesn't exist
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return "", err
	}

	return dataDir, nil
}

// GetDatabaseDir returns the directory for storing the BadgerDB database.
func GetDatabaseDir() (string, error) {
	dataDir, err := GetDataDir()
	if err != nil {
		return "", err
	}

	dbDir := filepath.Join(dataDir, "db")
	if err := os.MkdirAll(dbDir, 0755); err != nil {
		return "", err
	}

	return dbDir, nil
}
