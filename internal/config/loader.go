// internal/config/loader.go
//
// Configuration loader.
//
/*
Layers, highest precedence last:

  1. Default().
  2. Optional `.env` in the working directory.
  3. Optional YAML file passed to Load.
  4. Environment variables prefixed `BOOKCHECK_`, where `__` maps to "."
     (e.g., `BOOKCHECK_LOG__LEVEL → log.level`).

The merged tree is unmarshalled over the defaults and validated.
*/
package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	koanf "github.com/knadh/koanf/v2"
	"go.uber.org/zap"
)

const envPrefix = "BOOKCHECK_"

// Load reads .env, the YAML file at path (skipped when empty), and env
// overrides, then validates the result.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	k := koanf.New(".")

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			zap.S().Errorw("config yaml load failed", "file", path, "err", err)
			return nil, fmt.Errorf("load config %s: %w", path, err)
		}
		zap.S().Debugw("config yaml loaded", "file", path)
	}

	if err := k.Load(env.Provider(envPrefix, ".", envKey), nil); err != nil {
		zap.S().Errorw("config env overlay failed", "err", err)
		return nil, fmt.Errorf("load env: %w", err)
	}

	cfg := Default()
	if err := k.Unmarshal("", &cfg); err != nil {
		zap.S().Errorw("config unmarshal failed", "err", err)
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		zap.S().Errorw("config validation failed", "err", err)
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	zap.S().Debugw("config loaded",
		"log_level", cfg.Log.Level,
		"log_dir", cfg.Log.Dir,
		"output", cfg.Output.Format,
	)
	return &cfg, nil
}

// envKey maps BOOKCHECK_LOG__LEVEL to log.level.
func envKey(s string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimPrefix(s, envPrefix), "__", "."))
}
