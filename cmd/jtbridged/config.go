package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/visform/jtbridge/internal/bridge"
)

type fileConfig struct {
	Addr           string   `toml:"addr"`
	AllowedOrigins []string `toml:"allowed_origins"`
	TempDir        string   `toml:"temp_dir"`
	ShutdownGrace  string   `toml:"shutdown_grace"`
}

// loadConfig applies config file keys over runtime defaults. An empty path
// means defaults only; keys absent from the file are left at their defaults.
func loadConfig(path string) (bridge.Config, error) {
	cfg := bridge.DefaultConfig()
	if strings.TrimSpace(path) == "" {
		return cfg, nil
	}

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return bridge.Config{}, fmt.Errorf("load bridge config: %w", err)
	}

	if meta.IsDefined("addr") {
		addr := strings.TrimSpace(raw.Addr)
		if addr == "" {
			return bridge.Config{}, fmt.Errorf("config addr must not be blank")
		}
		cfg.Addr = addr
	}

	if meta.IsDefined("allowed_origins") {
		cfg.AllowedOrigins = normalizeOrigins(raw.AllowedOrigins)
	}

	if meta.IsDefined("temp_dir") {
		cfg.TempDir = strings.TrimSpace(raw.TempDir)
	}

	if meta.IsDefined("shutdown_grace") {
		d, err := time.ParseDuration(strings.TrimSpace(raw.ShutdownGrace))
		if err != nil {
			return bridge.Config{}, fmt.Errorf("parse shutdown_grace: %w", err)
		}
		if d <= 0 {
			return bridge.Config{}, fmt.Errorf("shutdown_grace must be positive")
		}
		cfg.ShutdownGrace = d
	}

	return cfg, nil
}

func normalizeOrigins(in []string) []string {
	out := make([]string, 0, len(in))
	for _, origin := range in {
		v := strings.TrimSpace(origin)
		if v == "" {
			continue
		}
		out = append(out, v)
	}
	return out
}
