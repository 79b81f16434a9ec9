package harness

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/blockmine/internal/engine"
)

// RunBoth executes a scenario against every strategy, requires all the
// decision traces to be identical, and returns one representative
// result. This is the mechanical form of the equivalence contract: same
// decisions, same error payloads, same windows, for any input.
func RunBoth(t *testing.T, s *Scenario) *Result {
	t.Helper()

	var reference *Result
	for _, name := range StrategyNames {
		result := Run(s, name, Strategies[name])
		if reference == nil {
			reference = result
			continue
		}
		AssertEquivalent(t, reference, result)
	}
	return reference
}

// AssertEquivalent requires two results to carry the same decision
// trace and the same terminating error.
func AssertEquivalent(t *testing.T, a, b *Result) {
	t.Helper()

	require.Equal(t, a.Steps, b.Steps,
		"scenario %s: %s and %s produced different traces", a.Scenario, a.Strategy, b.Strategy)
	require.Equal(t, a.Err, b.Err,
		"scenario %s: %s and %s produced different errors", a.Scenario, a.Strategy, b.Strategy)
}

// AssertExpect validates a result against the scenario's expect clause
// and optional final window.
func AssertExpect(t *testing.T, s *Scenario, r *Result) {
	t.Helper()

	switch s.Expect.Outcome {
	case OutcomeAccept:
		assert.NoError(t, r.Err, "scenario %s: stream must conform", s.Name)
		assert.Len(t, r.Steps, len(s.Stream)-s.WindowSize)

	case OutcomeReject:
		require.Error(t, r.Err, "scenario %s: stream must be rejected", s.Name)
		assert.Equal(t,
			&engine.InvalidBlockError[uint64]{Value: s.Expect.Value, Position: s.Expect.Position},
			r.Err, "scenario %s: wrong rejection payload", s.Name)

	case OutcomeShort:
		require.Error(t, r.Err)
		assert.Equal(t,
			&engine.InitSizeError{Need: s.WindowSize, Got: len(s.Stream)},
			r.Err, "scenario %s: wrong initialization error", s.Name)
	}

	if s.FinalWindow != nil {
		require.NotEmpty(t, r.Steps, "scenario %s: final_window needs at least one step", s.Name)
		assert.Equal(t, s.FinalWindow, r.Steps[len(r.Steps)-1].Window,
			"scenario %s: unexpected final window", s.Name)
	}
}

// AssertOneShotAgrees cross-checks the stepwise trace against the
// one-shot entry point: TryCreateAndExtend over the same stream must
// terminate with the same error (or none).
func AssertOneShotAgrees(t *testing.T, s *Scenario, r *Result) {
	t.Helper()

	for _, name := range StrategyNames {
		err := engine.TryCreateAndExtend(s.WindowSize, Strategies[name], slices.Values(s.Stream))
		assert.Equal(t, r.Err, err,
			"scenario %s: one-shot %s run disagrees with stepwise trace", s.Name, name)
	}
}
