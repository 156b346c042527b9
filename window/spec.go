package window

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	rokoko "github.com/OrbitalStation/rokoko"
	"github.com/OrbitalStation/rokoko/i18n"
)

// FieldSpec describes one configuration field: its name, an optional default
// applied when the field is absent at Create time, and the names it
// conflicts with or requires.
type FieldSpec struct {
	Name          string   `yaml:"name"`
	Default       any      `yaml:"default,omitempty"`
	ConflictsWith []string `yaml:"conflicts_with,omitempty"`
	Requires      []string `yaml:"requires,omitempty"`
}

// EventSpec describes one event callback slot. Default names the built-in
// behavior applied when no callback is registered ("close" for on_close).
// Unique callbacks run exactly once, right after construction succeeds and
// before any dispatch.
type EventSpec struct {
	Name    string `yaml:"name"`
	Default string `yaml:"default,omitempty"`
	Unique  bool   `yaml:"unique,omitempty"`
}

// Spec is the declarative field/event specification the aggregation step
// interprets. The built-in spec is embedded from windowspec.yaml; tests may
// load variants through LoadSpec.
type Spec struct {
	Fields []FieldSpec `yaml:"fields"`
	Events []EventSpec `yaml:"events"`
}

//go:embed windowspec.yaml
var rawBuiltinSpec []byte

var builtinSpec = MustLoadSpec(rawBuiltinSpec)

// DefaultSpec returns the embedded built-in spec.
func DefaultSpec() *Spec { return builtinSpec }

// LoadSpec parses and validates a declarative spec. Validation failures are
// definition-time errors: a spec that names unknown fields, declares a
// conflict asymmetrically, or repeats a name is rejected as a whole.
func LoadSpec(raw []byte) (*Spec, error) {
	var s Spec
	if err := yaml.Unmarshal(raw, &s); err != nil {
		return nil, rokoko.Issues{{
			Code:    rokoko.CodeParseError,
			Message: i18n.T(rokoko.CodeParseError, nil),
			Cause:   err,
		}}
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// MustLoadSpec is like LoadSpec but panics on error.
func MustLoadSpec(raw []byte) *Spec {
	s, err := LoadSpec(raw)
	if err != nil {
		panic(err)
	}
	return s
}

func (s *Spec) validate() error {
	var iss rokoko.Issues

	invalid := func(field, hint string) {
		iss = append(iss, rokoko.Issue{
			Field:   field,
			Code:    rokoko.CodeInvalidSpec,
			Message: i18n.T(rokoko.CodeInvalidSpec, nil),
			Hint:    hint,
		})
	}

	seen := map[string]bool{}
	names := map[string]bool{}
	for _, f := range s.Fields {
		names[f.Name] = true
	}
	for _, e := range s.Events {
		names[e.Name] = true
	}

	conflicts := map[string]map[string]bool{}
	for _, f := range s.Fields {
		conflicts[f.Name] = map[string]bool{}
		for _, c := range f.ConflictsWith {
			conflicts[f.Name][c] = true
		}
	}

	check := func(name string) {
		if name == "" {
			invalid(name, "empty name")
			return
		}
		if seen[name] {
			invalid(name, "duplicate name")
		}
		seen[name] = true
		if _, ok := probes[name]; !ok {
			invalid(name, fmt.Sprintf("unsupported name %q", name))
		}
	}

	for _, f := range s.Fields {
		check(f.Name)
		for _, c := range f.ConflictsWith {
			if !names[c] {
				invalid(f.Name, fmt.Sprintf("conflicts_with references unknown name %q", c))
				continue
			}
			if c == f.Name {
				invalid(f.Name, "conflicts with itself")
				continue
			}
			if !conflicts[c][f.Name] {
				invalid(f.Name, fmt.Sprintf("conflict with %q is not declared symmetrically", c))
			}
		}
		for _, r := range f.Requires {
			if !names[r] {
				invalid(f.Name, fmt.Sprintf("requires references unknown name %q", r))
			}
		}
	}
	for _, e := range s.Events {
		check(e.Name)
		if e.Default != "" && e.Default != "close" {
			invalid(e.Name, fmt.Sprintf("unknown default behavior %q", e.Default))
		}
	}

	if len(iss) > 0 {
		return iss
	}
	return nil
}
