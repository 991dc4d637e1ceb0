package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

// envConfig holds dialog defaults loaded from the environment. Flags given
// on the command line win over these.
type envConfig struct {
	Title   string
	Icon    string
	Topmost bool
}

func loadEnvConfig() envConfig {
	// Try .env in the working directory first, then next to the executable.
	envPaths := []string{".env"}
	if execPath, err := os.Executable(); err == nil {
		envPaths = append(envPaths, filepath.Join(filepath.Dir(execPath), ".env"))
	}
	for _, envPath := range envPaths {
		if _, err := os.Stat(envPath); err == nil {
			godotenv.Load(envPath)
			break
		}
	}

	return envConfig{
		Title:   os.Getenv("MSGBOX_TITLE"),
		Icon:    getEnvWithDefault("MSGBOX_ICON", "info"),
		Topmost: strings.ToLower(os.Getenv("MSGBOX_TOPMOST")) == "true",
	}
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
