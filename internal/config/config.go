package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// Config represents the Bigsky configuration
type Config struct {
	// Data file locations, relative paths resolve against the working directory
	CountiesFile string `json:"counties_file"`
	CitiesFile   string `json:"cities_file"`

	// Diagnostics
	Debug bool `json:"debug"`
}

// DefaultConfig returns a config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		CountiesFile: "MontanaCounties.csv",
		CitiesFile:   filepath.Join(".bigsky", "cities.txt"),
		Debug:        false,
	}
}

// Manager handles configuration loading and saving
type Manager struct {
	workDir    string
	configPath string
	config     *Config
}

// NewManager creates a new configuration manager
func NewManager(workDir string) *Manager {
	bigskyDir := filepath.Join(workDir, ".bigsky")
	return &Manager{
		workDir:    workDir,
		configPath: filepath.Join(bigskyDir, "config.json"),
		config:     DefaultConfig(),
	}
}

// Load reads the configuration from disk, creating defaults if needed
func (m *Manager) Load() error {
	// Ensure .bigsky directory exists
	bigskyDir := filepath.Dir(m.configPath)
	if err := os.MkdirAll(bigskyDir, 0o755); err != nil {
		return fmt.Errorf("failed to create .bigsky directory: %w", err)
	}

	// Create .gitignore if it doesn't exist
	if err := m.ensureGitignore(); err != nil {
		return fmt.Errorf("failed to create .gitignore: %w", err)
	}

	// Check if config file exists
	if _, err := os.Stat(m.configPath); os.IsNotExist(err) {
		// Create default config, env overrides still apply
		if err := m.Save(); err != nil {
			return err
		}
		m.applyEnv(m.config)
		return nil
	}

	// Read existing config
	data, err := os.ReadFile(m.configPath)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	// Parse JSON
	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return fmt.Errorf("failed to parse config JSON: %w", err)
	}

	// Expand environment variables
	if err := m.expandEnvVars(&config); err != nil {
		return fmt.Errorf("failed to expand environment variables: %w", err)
	}

	m.applyEnv(&config)

	m.config = &config
	return nil
}

// Save writes the current configuration to disk
func (m *Manager) Save() error {
	data, err := json.MarshalIndent(m.config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(m.configPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Get returns the current configuration
func (m *Manager) Get() *Config {
	return m.config
}

// WorkDir returns the directory the manager was created for
func (m *Manager) WorkDir() string {
	return m.workDir
}

// Set updates a configuration value and saves
func (m *Manager) Set(key, value string) error {
	switch key {
	case "counties_file":
		m.config.CountiesFile = value
	case "cities_file":
		m.config.CitiesFile = value
	case "debug":
		m.config.Debug = value == "true"
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}

	return m.Save()
}

// ensureGitignore creates a .gitignore in .bigsky/ with smart defaults
func (m *Manager) ensureGitignore() error {
	gitignorePath := filepath.Join(filepath.Dir(m.configPath), ".gitignore")

	// Check if .gitignore already exists
	if _, err := os.Stat(gitignorePath); !os.IsNotExist(err) {
		return nil // Already exists
	}

	gitignoreContent := `# Bigsky data directory .gitignore
#
# This file controls what gets committed to git from your .bigsky/ directory
# By default, we commit config but ignore logs and temporary files

# Ignore logs and temporary files
*.log
*.tmp
logs/
.DS_Store
Thumbs.db

# Allow these important files
!config.json
!.gitignore

# City entries are up to you - uncomment to ignore:
# cities.txt
`

	return os.WriteFile(gitignorePath, []byte(gitignoreContent), 0o644)
}

// applyEnv lets BIGSKY_* environment variables override file settings
func (m *Manager) applyEnv(config *Config) {
	if v := os.Getenv("BIGSKY_COUNTIES_FILE"); v != "" {
		config.CountiesFile = v
	}
	if v := os.Getenv("BIGSKY_CITIES_FILE"); v != "" {
		config.CitiesFile = v
	}
	if v := os.Getenv("BIGSKY_DEBUG"); v != "" {
		config.Debug = v == "true" || v == "1"
	}
}

// expandEnvVars expands environment variables in config values
func (m *Manager) expandEnvVars(config *Config) error {
	config.CountiesFile = m.expandString(config.CountiesFile)
	config.CitiesFile = m.expandString(config.CitiesFile)
	return nil
}

// expandString expands environment variables in a string
// Supports $VAR and ${VAR} syntax
func (m *Manager) expandString(s string) string {
	// Regular expression to match $VAR or ${VAR}
	re := regexp.MustCompile(`\$\{([^}]+)\}|\$([A-Za-z_][A-Za-z0-9_]*)`)

	return re.ReplaceAllStringFunc(s, func(match string) string {
		var varName string
		if strings.HasPrefix(match, "${") {
			// ${VAR} format
			varName = match[2 : len(match)-1]
		} else {
			// $VAR format
			varName = match[1:]
		}

		if value := os.Getenv(varName); value != "" {
			return value
		}

		// Return original if env var not found
		return match
	})
}
