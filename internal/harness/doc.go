// Package harness provides scenario-driven conformance testing for the
// rational sort.
//
// Scenarios are YAML files: an ordered list of primitive evaluations with
// expected outcomes (a rendered value, absence, or the not-implemented
// condition). The runner replays each scenario against a fresh store and
// registry, checks expectations step by step, and produces a trace snapshot
// whose canonical JSON form is compared against golden files.
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
package harness
