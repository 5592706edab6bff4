// Package config provides hierarchical configuration management.
// Priority: defaults < system < user < project < env < flags
package config

import (
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"sync"

	"gopkg.in/yaml.v3"
)

// Config holds all LogSift configuration.
type Config struct {
	Version int `yaml:"version"`

	Scan      ScanConfig      `yaml:"scan"`
	Output    OutputConfig    `yaml:"output"`
	Patterns  PatternsConfig  `yaml:"patterns"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

// ScanConfig controls file collection and line scanning.
type ScanConfig struct {
	Extensions []string `yaml:"extensions"`  // recognized log extensions
	Workers    int      `yaml:"workers"`     // concurrent file scans, 0 = default
	BufferSize int      `yaml:"buffer_size"` // read buffer in bytes
}

// OutputConfig controls the emitted report artifacts.
type OutputConfig struct {
	Basename string `yaml:"basename"` // artifact file name prefix
	JSON     bool   `yaml:"json"`     // also emit the JSON summary dump
	XLSX     bool   `yaml:"xlsx"`     // also emit the XLSX summary
}

// PatternsConfig points at a custom signature file.
type PatternsConfig struct {
	File string `yaml:"file"` // YAML signature file, "" = built-in set
}

// TelemetryConfig for optional OTLP trace export.
type TelemetryConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Endpoint string `yaml:"endpoint"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Version: 1,
		Scan: ScanConfig{
			Extensions: []string{".txt", ".log"},
			Workers:    4,
			BufferSize: 64 * 1024,
		},
		Output: OutputConfig{
			Basename: "logs",
		},
		Telemetry: TelemetryConfig{
			Enabled: false,
		},
	}
}

// Manager handles configuration loading and merging.
type Manager struct {
	mu     sync.RWMutex
	config *Config
	paths  []string // paths that were loaded
}

// NewManager creates a new configuration manager.
func NewManager() *Manager {
	return &Manager{config: Default()}
}

// Load loads configuration from all sources in priority order.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.config = Default()

	for _, path := range m.getConfigPaths() {
		if err := m.loadFile(path); err != nil {
			// Missing files are fine; broken existing files are not.
			if !os.IsNotExist(err) {
				return err
			}
		} else {
			m.paths = append(m.paths, path)
		}
	}

	m.loadEnv()
	return nil
}

// getConfigPaths returns config file paths in priority order.
func (m *Manager) getConfigPaths() []string {
	var paths []string

	if runtime.GOOS != "windows" {
		paths = append(paths, "/etc/logsift/config.yaml")
	}

	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".logsift", "config.yaml"))
	}

	if cwd, err := os.Getwd(); err == nil {
		paths = append(paths, filepath.Join(cwd, ".logsift.yaml"))
	}

	return paths
}

// loadFile loads a single config file and merges it.
func (m *Manager) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var partial Config
	if err := yaml.Unmarshal(data, &partial); err != nil {
		return err
	}

	m.merge(&partial)
	return nil
}

// merge merges non-zero values from src into config.
func (m *Manager) merge(src *Config) {
	if len(src.Scan.Extensions) > 0 {
		m.config.Scan.Extensions = src.Scan.Extensions
	}
	if src.Scan.Workers != 0 {
		m.config.Scan.Workers = src.Scan.Workers
	}
	if src.Scan.BufferSize != 0 {
		m.config.Scan.BufferSize = src.Scan.BufferSize
	}

	if src.Output.Basename != "" {
		m.config.Output.Basename = src.Output.Basename
	}
	if src.Output.JSON {
		m.config.Output.JSON = true
	}
	if src.Output.XLSX {
		m.config.Output.XLSX = true
	}

	if src.Patterns.File != "" {
		m.config.Patterns.File = src.Patterns.File
	}

	if src.Telemetry.Enabled {
		m.config.Telemetry.Enabled = true
	}
	if src.Telemetry.Endpoint != "" {
		m.config.Telemetry.Endpoint = src.Telemetry.Endpoint
	}
}

// loadEnv loads configuration from environment variables.
func (m *Manager) loadEnv() {
	if v := os.Getenv("LOGSIFT_WORKERS"); v != "" {
		if workers, err := strconv.Atoi(v); err == nil && workers > 0 {
			m.config.Scan.Workers = workers
		}
	}

	if v := os.Getenv("LOGSIFT_BASENAME"); v != "" {
		m.config.Output.Basename = v
	}

	if v := os.Getenv("LOGSIFT_PATTERNS"); v != "" {
		m.config.Patterns.File = v
	}

	if v := os.Getenv("LOGSIFT_OTLP_ENDPOINT"); v != "" {
		m.config.Telemetry.Enabled = true
		m.config.Telemetry.Endpoint = v
	}
}

// Get returns the current configuration.
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.config
}

// GetPaths returns the paths that were loaded.
func (m *Manager) GetPaths() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.paths
}

// Global instance
var (
	globalManager *Manager
	globalOnce    sync.Once
)

// Global returns the global configuration manager.
func Global() *Manager {
	globalOnce.Do(func() {
		globalManager = NewManager()
		globalManager.Load()
	})
	return globalManager
}
