// Package config provides shared configuration utilities.
package config

import (
	"os"
	"path/filepath"
)

const (
	defaultSSHHost     = "::"
	defaultSSHPort     = "2222"
	defaultHostKeyPath = ".ssh/asteriods_host_key"
	defaultAssetDir    = "assets"
	defaultLogLevel    = "info"
)

// GetEnv returns the value of the environment variable named by the key,
// or fallback if the variable is not set.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// SSH holds the settings of the SSH server binary.
type SSH struct {
	Host        string
	Port        string
	HostKeyPath string // Empty disables persisting the host key
	AssetDir    string
	LogLevel    string
}

// LoadSSH reads the SSH server settings from the environment.
func LoadSSH() SSH {
	return SSH{
		Host:        GetEnv("SSH_HOST", defaultSSHHost),
		Port:        GetEnv("SSH_PORT", defaultSSHPort),
		HostKeyPath: GetEnv("SSH_HOST_KEY", defaultHostKeyPath),
		AssetDir:    filepath.Clean(GetEnv("ASTERIODS_ASSETS", defaultAssetDir)),
		LogLevel:    GetEnv("ASTERIODS_LOG_LEVEL", defaultLogLevel),
	}
}
