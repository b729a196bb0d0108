package ecs

import (
	"os"

	"gopkg.in/yaml.v3"
)

// RegistryConfig governs initial capacities and the growth/compaction
// thresholds spec §5 and §4.2 name as defaults, not hardcoded magic
// numbers: 1.5x amortised growth on overflow, shrink below 60% occupancy
// to 1.2x the live count. Mirrors the teacher's WorldConfig shape
// (internal/core/ecs/types.go) but scoped to what the registry actually
// needs.
type RegistryConfig struct {
	InitialEntityCapacity  int     `yaml:"initial_entity_capacity"`
	InitialRepoCapacity    int     `yaml:"initial_repo_capacity"`
	GrowthFactor           float64 `yaml:"growth_factor"`
	CompactionShrinkBelow  float64 `yaml:"compaction_shrink_below"`
	CompactionShrinkTarget float64 `yaml:"compaction_shrink_target"`
}

// DefaultRegistryConfig returns the defaults spec.md names explicitly.
func DefaultRegistryConfig() RegistryConfig {
	return RegistryConfig{
		InitialEntityCapacity:  64,
		InitialRepoCapacity:    8,
		GrowthFactor:           1.5,
		CompactionShrinkBelow:  0.6,
		CompactionShrinkTarget: 1.2,
	}
}

func (c RegistryConfig) withDefaults() RegistryConfig {
	d := DefaultRegistryConfig()
	if c.InitialEntityCapacity <= 0 {
		c.InitialEntityCapacity = d.InitialEntityCapacity
	}
	if c.InitialRepoCapacity <= 0 {
		c.InitialRepoCapacity = d.InitialRepoCapacity
	}
	if c.GrowthFactor <= 1 {
		c.GrowthFactor = d.GrowthFactor
	}
	if c.CompactionShrinkBelow <= 0 {
		c.CompactionShrinkBelow = d.CompactionShrinkBelow
	}
	if c.CompactionShrinkTarget <= 0 {
		c.CompactionShrinkTarget = d.CompactionShrinkTarget
	}
	return c
}

// LoadRegistryConfig reads a RegistryConfig from a YAML file at path,
// falling back to DefaultRegistryConfig for any field the file omits.
func LoadRegistryConfig(path string) (RegistryConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return RegistryConfig{}, WrapError(err, ErrInvalidConfig, "reading registry config")
	}
	var cfg RegistryConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return RegistryConfig{}, WrapError(err, ErrInvalidConfig, "parsing registry config")
	}
	return cfg.withDefaults(), nil
}
