// Package config loads project and part configuration: params.yaml with
// numeric parameters and "="-prefixed expressions, and settings.yaml with
// build settings. Part-level values override project-level ones.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/goccy/go-yaml"
)

// Params maps parameter names to raw values: numbers, or strings that are
// either numeric literals or expressions prefixed with "=".
type Params map[string]any

// Settings holds project build settings.
type Settings struct {
	Units   string `yaml:"units"`
	Exports struct {
		Step bool `yaml:"step"`
		STL  bool `yaml:"stl"`
	} `yaml:"exports"`
}

// LoadParams reads a params file. A missing file yields empty params.
func LoadParams(path string) (Params, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Params{}, nil
	}
	if err != nil {
		return nil, err
	}
	var p Params
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	if p == nil {
		p = Params{}
	}
	return p, nil
}

// LoadSettings reads a settings file. A missing file yields defaults.
func LoadSettings(path string) (Settings, error) {
	s := Settings{Units: "in"}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return s, err
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("config: %s: %w", path, err)
	}
	if s.Units == "" {
		s.Units = "in"
	}
	return s, nil
}

// Merge overlays part params on top of project params.
func Merge(project, part Params) Params {
	out := Params{}
	for k, v := range project {
		out[k] = v
	}
	for k, v := range part {
		out[k] = v
	}
	return out
}

// Float resolves a parameter to a number, evaluating "=" expressions.
// Expressions may reference other parameters.
func (p Params) Float(name string) (float64, error) {
	return p.resolve(name, map[string]bool{})
}

// FloatDefault resolves a parameter, falling back to def when absent.
func (p Params) FloatDefault(name string, def float64) (float64, error) {
	if _, ok := p[name]; !ok {
		return def, nil
	}
	return p.Float(name)
}

// Value resolves a raw value the way a parameter would be: numbers pass
// through, strings are parsed as literals or "=" expressions.
func (p Params) Value(raw any) (float64, error) {
	return p.value(raw, map[string]bool{})
}

func (p Params) resolve(name string, seen map[string]bool) (float64, error) {
	if seen[name] {
		return 0, fmt.Errorf("config: parameter cycle through %q", name)
	}
	seen[name] = true
	defer delete(seen, name)

	raw, ok := p[name]
	if !ok {
		return 0, fmt.Errorf("config: unknown parameter %q", name)
	}
	return p.value(raw, seen)
}

func (p Params) value(raw any, seen map[string]bool) (float64, error) {
	switch v := raw.(type) {
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case uint64:
		return float64(v), nil
	case float64:
		return v, nil
	case string:
		s := strings.TrimSpace(v)
		if strings.HasPrefix(s, "=") {
			return p.Eval(s[1:], seen)
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, fmt.Errorf("config: parameter value %q is not numeric", v)
		}
		return f, nil
	}
	return 0, fmt.Errorf("config: unsupported parameter type %T", raw)
}

// Eval evaluates an arithmetic expression over the parameter set.
func (p Params) Eval(src string, seen map[string]bool) (float64, error) {
	if seen == nil {
		seen = map[string]bool{}
	}
	env := map[string]any{}
	for name := range p {
		if seen[name] {
			continue
		}
		v, err := p.resolve(name, seen)
		if err != nil {
			// Only referenced parameters must resolve; leave the
			// broken ones out and let the evaluation report them.
			continue
		}
		env[name] = v
	}
	prog, err := expr.Compile(src, expr.Env(env), expr.AllowUndefinedVariables())
	if err != nil {
		return 0, fmt.Errorf("config: expression %q: %w", src, err)
	}
	out, err := expr.Run(prog, env)
	if err != nil {
		return 0, fmt.Errorf("config: expression %q: %w", src, err)
	}
	switch v := out.(type) {
	case float64:
		return v, nil
	case int:
		return float64(v), nil
	}
	return 0, fmt.Errorf("config: expression %q is not numeric (got %T)", src, out)
}
