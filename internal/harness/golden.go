package harness

import (
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/Jiacheng-WU/egglog-parallel/internal/value"
)

// CanonicalJSON serializes the snapshot deterministically: object keys
// sorted, strings NFC normalized, no HTML escaping. Equal traces always
// produce byte-identical output, which golden comparison relies on.
func (s *TraceSnapshot) CanonicalJSON() ([]byte, error) {
	return value.MarshalCanonical(s.toCanonicalMap())
}

// RunWithGolden executes a scenario and compares the trace against a golden
// file stored in testdata/golden/{scenario.Name}.golden.
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
//
// Returns an error if scenario execution or serialization fails; an
// expectation mismatch or golden divergence fails t via goldie/assertions.
func RunWithGolden(t *testing.T, scenario *Scenario) error {
	t.Helper()

	result, err := Run(scenario)
	if err != nil {
		return err
	}
	for _, failure := range result.Failures {
		t.Errorf("scenario %s: %s", scenario.Name, failure)
	}

	traceJSON, err := result.Snapshot.CanonicalJSON()
	if err != nil {
		return err
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, scenario.Name, traceJSON)

	return nil
}
