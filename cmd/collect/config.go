package main

import (
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/hasbyte1/go-collect/collections"
)

// fileConfig is the TOML config file:
//
//	log_level = "debug"
//	format    = "yaml"
//	output    = "table"
//	indent    = 2
//
//	[pipelines]
//	adults = ["where:age:>=:18", "sortBy:name"]
type fileConfig struct {
	LogLevel  string              `toml:"log_level"`
	Format    string              `toml:"format"`
	Output    string              `toml:"output"`
	Indent    int                 `toml:"indent"`
	Pipelines map[string][]string `toml:"pipelines"`
}

func loadConfig(path string, logger *slog.Logger) (fileConfig, error) {
	var cfg fileConfig
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return fileConfig{}, fmt.Errorf("load config %s: %w", path, err)
	}
	for _, key := range md.Undecoded() {
		logger.Warn("unknown config key", "file", path, "key", key.String())
	}
	if cfg.Format != "" && !slices.Contains(inputFormats, cfg.Format) {
		return fileConfig{}, fmt.Errorf("load config %s: format must be one of %s, got %q", path, strings.Join(inputFormats, ", "), cfg.Format)
	}
	if cfg.Output != "" && !slices.Contains(outputFormats, cfg.Output) {
		return fileConfig{}, fmt.Errorf("load config %s: output must be one of %s, got %q", path, strings.Join(outputFormats, ", "), cfg.Output)
	}
	if cfg.Indent < 0 {
		return fileConfig{}, fmt.Errorf("load config %s: indent must not be negative", path)
	}
	logger.Debug("config loaded", "file", path, "pipelines", len(cfg.Pipelines))
	return cfg, nil
}

// pipeline returns the parsed steps of the named pipeline.
func (cfg fileConfig) pipeline(name string) ([]step, error) {
	raw, ok := cfg.Pipelines[name]
	if !ok {
		return nil, fmt.Errorf("unknown pipeline %q", name)
	}
	return parseSteps(raw)
}

// registry returns a registry with every pipeline registered as a macro
// of the same name, so pipelines can call each other.
func (cfg fileConfig) registry(logger *slog.Logger) (*collections.Registry, error) {
	reg := collections.NewRegistry(collections.WithLogger(logger))
	parsed := make(map[string][]step, len(cfg.Pipelines))
	for _, name := range slices.Sorted(maps.Keys(cfg.Pipelines)) {
		if slices.Contains(collections.Methods(), name) {
			return nil, fmt.Errorf("pipeline %q shadows a built-in method", name)
		}
		steps, err := cfg.pipeline(name)
		if err != nil {
			return nil, fmt.Errorf("pipeline %q: %w", name, err)
		}
		parsed[name] = steps
	}
	if err := checkCycles(parsed); err != nil {
		return nil, err
	}
	for name, steps := range parsed {
		reg.Register(name, func(c *collections.Collection, _ ...any) any {
			out, err := apply(c, steps, logger)
			if err != nil {
				return fmt.Errorf("pipeline %q: %w", name, err)
			}
			return out
		})
	}
	return reg, nil
}

func checkCycles(pipelines map[string][]step) error {
	const (
		visiting = 1
		done     = 2
	)
	state := make(map[string]int, len(pipelines))
	var visit func(name string, path []string) error
	visit = func(name string, path []string) error {
		switch state[name] {
		case visiting:
			return fmt.Errorf("pipeline cycle: %s", strings.Join(slices.Concat(path, []string{name}), " -> "))
		case done:
			return nil
		}
		state[name] = visiting
		for _, s := range pipelines[name] {
			if _, ok := pipelines[s.method]; ok {
				if err := visit(s.method, slices.Concat(path, []string{name})); err != nil {
					return err
				}
			}
		}
		state[name] = done
		return nil
	}
	for _, name := range slices.Sorted(maps.Keys(pipelines)) {
		if err := visit(name, nil); err != nil {
			return err
		}
	}
	return nil
}
