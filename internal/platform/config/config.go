package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// fileOverrides is the optional config.yaml inside the state directory.
type fileOverrides struct {
	DBFile string `yaml:"db_file"`
	LogDir string `yaml:"log_dir"`
}

type Config struct {
	PlanPath  string
	StatePath string
	DBPath    string
	LogDir    string
}

func New(planPath string) (Config, error) {
	if planPath == "" {
		return Config{}, fmt.Errorf("plan path is required")
	}
	statePath := filepath.Join(planPath, ".studydash")
	cfg := Config{
		PlanPath:  planPath,
		StatePath: statePath,
		DBPath:    filepath.Join(statePath, "studydash.db"),
		LogDir:    filepath.Join(statePath, "log"),
	}

	raw, err := os.ReadFile(filepath.Join(statePath, "config.yaml"))
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	overrides := fileOverrides{}
	if err := yaml.Unmarshal(raw, &overrides); err != nil {
		log.Printf("warning: malformed config.yaml, using defaults: %v", err)
		return cfg, nil
	}
	if overrides.DBFile != "" {
		cfg.DBPath = filepath.Join(statePath, overrides.DBFile)
	}
	if overrides.LogDir != "" {
		cfg.LogDir = filepath.Join(statePath, overrides.LogDir)
	}
	return cfg, nil
}
