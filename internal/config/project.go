// Package config holds compiler-wide constants and the quartz.yaml project
// configuration.
//
// Resolution order for every setting: built-in default, then quartz.yaml,
// then a QUARTZ_* environment variable. Environment wins so CI can override
// a checked-in project file without editing it.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/xyproto/env/v2"
	"gopkg.in/yaml.v3"
)

// Project represents the top-level quartz.yaml configuration.
type Project struct {
	// OutDir is the directory emitted .js files are written to.
	OutDir string `yaml:"out_dir,omitempty"`

	// EmitRuntime prepends the embedded runtime prelude to every emitted
	// module. Disable when the runtime is loaded separately.
	EmitRuntime *bool `yaml:"emit_runtime,omitempty"`

	// Cache enables the on-disk build cache.
	Cache *bool `yaml:"cache,omitempty"`

	// CacheDir is where the build cache database lives.
	CacheDir string `yaml:"cache_dir,omitempty"`
}

// DefaultProject returns the configuration used when no quartz.yaml exists.
func DefaultProject() *Project {
	t := true
	return &Project{
		OutDir:      "out",
		EmitRuntime: &t,
		Cache:       &t,
		CacheDir:    ".quartz",
	}
}

// LoadProject reads quartz.yaml from dir, falling back to defaults when the
// file does not exist, then applies environment overrides.
func LoadProject(dir string) (*Project, error) {
	p := DefaultProject()

	path := filepath.Join(dir, ProjectFileName)
	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, p); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	p.applyEnv()
	if err := p.validate(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Project) applyEnv() {
	p.OutDir = env.Str("QUARTZ_OUT_DIR", p.OutDir)
	p.CacheDir = env.Str("QUARTZ_CACHE_DIR", p.CacheDir)
	if env.Has("QUARTZ_EMIT_RUNTIME") {
		v := env.Bool("QUARTZ_EMIT_RUNTIME")
		p.EmitRuntime = &v
	}
	if env.Has("QUARTZ_CACHE") {
		v := env.Bool("QUARTZ_CACHE")
		p.Cache = &v
	}
}

func (p *Project) validate() error {
	if p.OutDir == "" {
		return fmt.Errorf("%s: out_dir must not be empty", ProjectFileName)
	}
	if p.CacheEnabled() && p.CacheDir == "" {
		return fmt.Errorf("%s: cache_dir must not be empty when cache is enabled", ProjectFileName)
	}
	return nil
}

// RuntimeEnabled reports whether the runtime prelude should be emitted.
func (p *Project) RuntimeEnabled() bool {
	return p.EmitRuntime == nil || *p.EmitRuntime
}

// CacheEnabled reports whether the build cache should be used.
func (p *Project) CacheEnabled() bool {
	return p.Cache == nil || *p.Cache
}
