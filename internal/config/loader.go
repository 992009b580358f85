package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// load reads a game config. Search order: customPath (errors surface),
// ~/.wingshack/configs/<name>, ./configs/<name> (errors fall through to the
// caller's defaults). Returns true when an override file was applied.
func load(name, customPath string, out any) (bool, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return false, fmt.Errorf("config: read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, out); err != nil {
			return false, fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		return true, nil
	}

	if userPath := userConfigPath(name); userPath != "" {
		if data, err := os.ReadFile(userPath); err == nil {
			if err := yaml.Unmarshal(data, out); err == nil {
				return true, nil
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", name)); err == nil {
		if err := yaml.Unmarshal(data, out); err == nil {
			return true, nil
		}
	}

	return false, nil
}

// userConfigPath returns the path under the user config directory, or empty
// when the home directory is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".wingshack", "configs", filename)
}

// LoadSnake loads snake tuning, falling back to defaults.
func LoadSnake(customPath string) (SnakeConfig, error) {
	cfg := DefaultSnakeConfig()
	if _, err := load("snake.yaml", customPath, &cfg); err != nil {
		return DefaultSnakeConfig(), err
	}
	return cfg, nil
}

// LoadFlyer loads flyer tuning, falling back to defaults.
func LoadFlyer(customPath string) (FlyerConfig, error) {
	cfg := DefaultFlyerConfig()
	if _, err := load("flyer.yaml", customPath, &cfg); err != nil {
		return DefaultFlyerConfig(), err
	}
	return cfg, nil
}

// LoadPong loads pong tuning, falling back to defaults.
func LoadPong(customPath string) (PongConfig, error) {
	cfg := DefaultPongConfig()
	if _, err := load("pong.yaml", customPath, &cfg); err != nil {
		return DefaultPongConfig(), err
	}
	return cfg, nil
}

// LoadMemory loads memory-game tuning, falling back to defaults.
func LoadMemory(customPath string) (MemoryConfig, error) {
	cfg := DefaultMemoryConfig()
	if _, err := load("memory.yaml", customPath, &cfg); err != nil {
		return DefaultMemoryConfig(), err
	}
	return cfg, nil
}

// LoadTapFrenzy loads tap-frenzy tuning, falling back to defaults.
func LoadTapFrenzy(customPath string) (TapFrenzyConfig, error) {
	cfg := DefaultTapFrenzyConfig()
	if _, err := load("tapfrenzy.yaml", customPath, &cfg); err != nil {
		return DefaultTapFrenzyConfig(), err
	}
	return cfg, nil
}

// LoadSpinner loads wheel tuning, falling back to defaults.
func LoadSpinner(customPath string) (SpinnerConfig, error) {
	cfg := DefaultSpinnerConfig()
	if _, err := load("spinner.yaml", customPath, &cfg); err != nil {
		return DefaultSpinnerConfig(), err
	}
	if len(cfg.Segments) == 0 {
		cfg.Segments = DefaultSpinnerConfig().Segments
	}
	return cfg, nil
}

// LoadShells loads shell-game tuning, falling back to defaults.
func LoadShells(customPath string) (ShellsConfig, error) {
	cfg := DefaultShellsConfig()
	if _, err := load("shells.yaml", customPath, &cfg); err != nil {
		return DefaultShellsConfig(), err
	}
	return cfg, nil
}
