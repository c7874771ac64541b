package harness

import (
	"fmt"

	"github.com/Jiacheng-WU/egglog-parallel/internal/primitive"
	"github.com/Jiacheng-WU/egglog-parallel/internal/sort"
)

// Trace outcome labels. These appear in golden files; renaming them
// invalidates every fixture.
const (
	OutcomeValue          = "value"
	OutcomeNone           = "none"
	OutcomeNotImplemented = "not_implemented"
)

// TraceEvent records one evaluated step.
type TraceEvent struct {
	Op      string
	Args    []string
	Outcome string
	Result  string // rendered value, only when Outcome == OutcomeValue
}

// TraceSnapshot captures the complete trace for a scenario execution.
type TraceSnapshot struct {
	ScenarioName string
	Trace        []TraceEvent
}

// toCanonicalMap converts the snapshot for canonical JSON serialization.
func (s *TraceSnapshot) toCanonicalMap() map[string]any {
	traceList := make([]any, len(s.Trace))
	for i, event := range s.Trace {
		eventMap := map[string]any{
			"op":      event.Op,
			"args":    event.Args,
			"outcome": event.Outcome,
		}
		if event.Outcome == OutcomeValue {
			eventMap["result"] = event.Result
		}
		traceList[i] = eventMap
	}
	return map[string]any{
		"scenario_name": s.ScenarioName,
		"trace":         traceList,
	}
}

// Result is the outcome of running one scenario.
type Result struct {
	Snapshot *TraceSnapshot

	// Failures lists expectation mismatches, one message per failed step.
	// An empty slice means the scenario passed.
	Failures []string
}

// Run executes a scenario against a fresh store and registry.
//
// Expectation mismatches are collected in Result.Failures; an error is
// returned only for harness-level problems (invalid scenario, unresolvable
// operator, unparsable literal).
func Run(scn *Scenario) (*Result, error) {
	if err := scn.Validate(); err != nil {
		return nil, err
	}

	store := sort.NewStore()
	rs := sort.NewRationalSort(store)
	reg := primitive.NewRegistry()
	if err := rs.Register(reg); err != nil {
		return nil, fmt.Errorf("register sort: %w", err)
	}

	result := &Result{Snapshot: &TraceSnapshot{ScenarioName: scn.Name}}

	for i, step := range scn.Eval {
		p, args, err := InferCall(reg, store, step.Op, step.Args)
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i, err)
		}

		event := TraceEvent{Op: step.Op, Args: step.Args}
		out, err := p.Apply(args)
		switch {
		case primitive.IsNotImplemented(err):
			event.Outcome = OutcomeNotImplemented
		case err != nil:
			return nil, fmt.Errorf("step %d (%s): %w", i, step.Op, err)
		case out.Present():
			v, _ := out.Get()
			event.Outcome = OutcomeValue
			event.Result = RenderValue(store, v)
		default:
			event.Outcome = OutcomeNone
		}
		result.Snapshot.Trace = append(result.Snapshot.Trace, event)

		if msg := checkStep(i, step, event); msg != "" {
			result.Failures = append(result.Failures, msg)
		}
	}
	return result, nil
}

// checkStep compares one event against its step's expectation.
// Returns an empty string when the expectation holds.
func checkStep(i int, step EvalStep, event TraceEvent) string {
	switch {
	case step.NotImplemented:
		if event.Outcome != OutcomeNotImplemented {
			return fmt.Sprintf("step %d (%s): expected not_implemented, got %s", i, step.Op, event.Outcome)
		}
	case step.None:
		if event.Outcome != OutcomeNone {
			return fmt.Sprintf("step %d (%s): expected no result, got %s %q", i, step.Op, event.Outcome, event.Result)
		}
	default:
		if event.Outcome != OutcomeValue {
			return fmt.Sprintf("step %d (%s): expected %q, got %s", i, step.Op, step.Want, event.Outcome)
		}
		if event.Result != step.Want {
			return fmt.Sprintf("step %d (%s): expected %q, got %q", i, step.Op, step.Want, event.Result)
		}
	}
	return ""
}
