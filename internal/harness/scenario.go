package harness

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"gopkg.in/yaml.v3"
)

// Scenario defines a conformance test scenario: an ordered list of primitive
// evaluations with expected outcomes.
type Scenario struct {
	// Name uniquely identifies this scenario and names its golden file.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Eval contains the evaluation steps, executed in order against one
	// shared store so canonicalization effects carry across steps.
	Eval []EvalStep `yaml:"eval"`
}

// EvalStep is a single primitive evaluation with its expectation.
// Exactly one of Want, None, or NotImplemented should be set.
type EvalStep struct {
	// Op is the primitive name, e.g. "+", "pow", "rational".
	Op string `yaml:"op"`

	// Args are operand literals. Rational operands are written "m/n";
	// integer operands are plain integers. The runner infers operand
	// kinds from the registered signatures.
	Args []string `yaml:"args"`

	// Want is the rendered expected result: "m/n" for rationals, a
	// decimal integer for i64, a decimal float for f64, "()" for unit.
	Want string `yaml:"want,omitempty"`

	// None expects the absent outcome (undefined result or overflow).
	None bool `yaml:"none,omitempty"`

	// NotImplemented expects the distinct unsupported-branch condition.
	NotImplemented bool `yaml:"not_implemented,omitempty"`
}

// Validate checks structural scenario invariants before execution.
func (s *Scenario) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("scenario name is required")
	}
	if len(s.Eval) == 0 {
		return fmt.Errorf("scenario %q has no eval steps", s.Name)
	}
	for i, step := range s.Eval {
		if step.Op == "" {
			return fmt.Errorf("scenario %q step %d: op is required", s.Name, i)
		}
		set := 0
		if step.Want != "" {
			set++
		}
		if step.None {
			set++
		}
		if step.NotImplemented {
			set++
		}
		if set != 1 {
			return fmt.Errorf("scenario %q step %d (%s): exactly one of want, none, not_implemented must be set",
				s.Name, i, step.Op)
		}
	}
	return nil
}

// LoadScenario reads and validates a single scenario file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse scenario %s: %w", path, err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// LoadScenarios reads every *.yaml scenario in dir, sorted by filename for
// deterministic test order.
func LoadScenarios(dir string) ([]*Scenario, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no scenario files in %s", dir)
	}
	slices.Sort(paths)

	scenarios := make([]*Scenario, 0, len(paths))
	for _, p := range paths {
		s, err := LoadScenario(p)
		if err != nil {
			return nil, err
		}
		scenarios = append(scenarios, s)
	}
	return scenarios, nil
}
