package harness

import (
	"encoding/json"
	"testing"

	"github.com/sebdah/goldie/v2"
)

// TraceSnapshot is the serialized form of a scenario's decision trace,
// compared against golden files. The strategy is omitted: equivalence is
// asserted before snapshotting, so one trace speaks for both.
type TraceSnapshot struct {
	Scenario   string      `json:"scenario"`
	WindowSize int         `json:"window_size"`
	Steps      []StepTrace `json:"steps"`
	Error      string      `json:"error,omitempty"`
}

// RunWithGolden executes a scenario against every strategy, asserts
// trace equivalence and the scenario's expect clause, and compares the
// decision trace against the golden file
// testdata/golden/{scenario.Name}.golden.
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
func RunWithGolden(t *testing.T, scenario *Scenario) {
	t.Helper()

	result := RunBoth(t, scenario)
	AssertExpect(t, scenario, result)
	AssertOneShotAgrees(t, scenario, result)

	snapshot := TraceSnapshot{
		Scenario:   scenario.Name,
		WindowSize: scenario.WindowSize,
		Steps:      result.Steps,
	}
	if result.Err != nil {
		snapshot.Error = result.Err.Error()
	}

	traceJSON, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		t.Fatalf("failed to marshal trace snapshot: %v", err)
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, scenario.Name, traceJSON)
}
