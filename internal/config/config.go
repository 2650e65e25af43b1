package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	StoreSQLite = "sqlite"
	StoreFile   = "file"
)

type RuntimeConfig struct {
	Store          string `yaml:"store"`
	DBPath         string `yaml:"db_path"`
	StateFilePath  string `yaml:"state_file"`
	ExportDir      string `yaml:"export_dir"`
	LogLevel       string `yaml:"log_level"`
	LogFile        string `yaml:"log_file"`
	DefaultUrgency int    `yaml:"default_urgency"`
}

func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		Store:          StoreSQLite,
		DBPath:         ".vibetask.db",
		StateFilePath:  ".vibetask_state.json",
		ExportDir:      "exports",
		LogLevel:       "info",
		LogFile:        "",
		DefaultUrgency: 50,
	}
}

// Load layers defaults, the optional YAML file named by VIBETASK_CONFIG, and
// VIBETASK_* environment overrides, in that order.
func Load() (RuntimeConfig, error) {
	cfg := DefaultRuntimeConfig()
	if path := strings.TrimSpace(os.Getenv("VIBETASK_CONFIG")); path != "" {
		fromFile, err := LoadFile(path, cfg)
		if err != nil {
			return RuntimeConfig{}, err
		}
		cfg = fromFile
	}
	cfg = RuntimeConfigFromEnv(cfg)
	if err := cfg.Validate(); err != nil {
		return RuntimeConfig{}, err
	}
	return cfg, nil
}

// LoadFile overlays the YAML document at path onto base. Keys missing from
// the file keep their base values.
func LoadFile(path string, base RuntimeConfig) (RuntimeConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return RuntimeConfig{}, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := base
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return RuntimeConfig{}, fmt.Errorf("decode config %s: %w", path, err)
	}
	return cfg, nil
}

func RuntimeConfigFromEnv(base RuntimeConfig) RuntimeConfig {
	cfg := base
	if v, ok := getEnvString("VIBETASK_STORE"); ok {
		cfg.Store = strings.ToLower(v)
	}
	if v, ok := getEnvString("VIBETASK_DB_PATH"); ok {
		cfg.DBPath = v
	}
	if v, ok := getEnvString("VIBETASK_STATE_FILE"); ok {
		cfg.StateFilePath = v
	}
	if v, ok := getEnvString("VIBETASK_EXPORT_DIR"); ok {
		cfg.ExportDir = v
	}
	if v, ok := getEnvString("VIBETASK_LOG_LEVEL"); ok {
		cfg.LogLevel = v
	}
	if v, ok := getEnvString("VIBETASK_LOG_FILE"); ok {
		cfg.LogFile = v
	}
	if v, ok := getEnvInt("VIBETASK_DEFAULT_URGENCY"); ok && v >= 0 && v <= 100 {
		cfg.DefaultUrgency = v
	}
	return cfg
}

func (c RuntimeConfig) Validate() error {
	switch c.Store {
	case StoreSQLite:
		if strings.TrimSpace(c.DBPath) == "" {
			return fmt.Errorf("config: db_path is required for store %q", c.Store)
		}
	case StoreFile:
		if strings.TrimSpace(c.StateFilePath) == "" {
			return fmt.Errorf("config: state_file is required for store %q", c.Store)
		}
	default:
		return fmt.Errorf("config: unknown store %q", c.Store)
	}
	if c.DefaultUrgency < 0 || c.DefaultUrgency > 100 {
		return fmt.Errorf("config: default_urgency %d out of range", c.DefaultUrgency)
	}
	return nil
}

func getEnvString(name string) (string, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return "", false
	}
	return raw, true
}

func getEnvInt(name string) (int, bool) {
	raw, ok := getEnvString(name)
	if !ok {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}
