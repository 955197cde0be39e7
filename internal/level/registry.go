package level

import (
	"fmt"
	"sort"
	"strconv"
)

// Factory builds a level from flag-style key/value pairs.
type Factory func(cfg map[string]string) (*Level, error)

var builtins = map[string]Factory{}

// Register adds a level factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	builtins[name] = f
}

// Names lists the registered builtin levels in sorted order.
func Names() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Build constructs the builtin level called name.
func Build(name string, cfg map[string]string) (*Level, error) {
	f, ok := builtins[name]
	if !ok {
		return nil, fmt.Errorf("unknown level %q (builtins: %v)", name, Names())
	}
	lvl, err := f(cfg)
	if err != nil {
		return nil, fmt.Errorf("build level %q: %w", name, err)
	}
	return lvl, nil
}

// Resolve treats ref as a builtin name first and as a file path otherwise.
func Resolve(ref string, cfg map[string]string) (*Level, error) {
	if _, ok := builtins[ref]; ok {
		return Build(ref, cfg)
	}
	return Load(ref)
}

func intParam(cfg map[string]string, key string, def, min int) int {
	if v, ok := cfg[key]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= min {
			return parsed
		}
	}
	return def
}

func int64Param(cfg map[string]string, key string, def int64) int64 {
	if v, ok := cfg[key]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			return parsed
		}
	}
	return def
}

func floatParam(cfg map[string]string, key string, def, min, max float64) float64 {
	if v, ok := cfg[key]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= min && parsed <= max {
			return parsed
		}
	}
	return def
}
