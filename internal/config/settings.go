package config

import (
	"fmt"
	"os"

	"github.com/univc/univc/internal/kinds"
	"gopkg.in/yaml.v3"
)

// Settings is the univc.yaml configuration.
type Settings struct {
	// Checking is the use-site checking policy: "eager" (default) or "late".
	Checking string `yaml:"checking,omitempty"`

	// Variance selects the nested-slot comparison strategy for template
	// template parameters: "covariant" (default) or "contravariant".
	Variance string `yaml:"variance,omitempty"`

	// CachePath enables the persistent resolution cache when non-empty.
	CachePath string `yaml:"cache_path,omitempty"`

	// Color controls diagnostic coloring: "auto" (default), "always", "never".
	Color string `yaml:"color,omitempty"`
}

// DefaultSettings returns the settings used when no univc.yaml exists.
func DefaultSettings() *Settings {
	return &Settings{Checking: "eager", Variance: "covariant", Color: "auto"}
}

// LoadSettings reads and validates a univc.yaml file.
func LoadSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read settings: %w", err)
	}
	s := DefaultSettings()
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate rejects unknown enum spellings.
func (s *Settings) Validate() error {
	switch s.Checking {
	case "", "eager", "late":
	default:
		return fmt.Errorf("settings: checking must be \"eager\" or \"late\", got %q", s.Checking)
	}
	switch s.Variance {
	case "", "covariant", "contravariant":
	default:
		return fmt.Errorf("settings: variance must be \"covariant\" or \"contravariant\", got %q", s.Variance)
	}
	switch s.Color {
	case "", "auto", "always", "never":
	default:
		return fmt.Errorf("settings: color must be \"auto\", \"always\" or \"never\", got %q", s.Color)
	}
	return nil
}

// Policy returns the configured checking policy.
func (s *Settings) Policy() CheckPolicy {
	if s != nil && s.Checking == "late" {
		return LateCheck
	}
	return EagerCheck
}

// VarianceStrategy returns the configured nested-slot variance.
func (s *Settings) VarianceStrategy() kinds.Variance {
	if s != nil && s.Variance == "contravariant" {
		return kinds.Contravariant
	}
	return kinds.Covariant
}
