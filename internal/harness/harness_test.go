package harness

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/blockmine/internal/engine"
)

func TestRun_TraceRecordsEveryDecision(t *testing.T) {
	s := &Scenario{
		Name:        "inline",
		Description: "inline trace shape check",
		WindowSize:  4,
		Stream:      []uint64{4, 4, 2, 2, 8, 4, 2},
	}

	result := Run(s, "pairsum", Strategies["pairsum"])

	require.Len(t, result.Steps, 3, "run stops at the first rejection")
	assert.Equal(t, StepTrace{Value: 8, Accepted: true, Window: []uint64{4, 2, 2, 8}}, result.Steps[0])
	assert.Equal(t, StepTrace{Value: 4, Accepted: true, Window: []uint64{2, 2, 8, 4}}, result.Steps[1])
	assert.Equal(t, StepTrace{Value: 2, Accepted: false, Position: 7, Window: []uint64{2, 2, 8, 4}}, result.Steps[2])
	assert.Equal(t, &engine.InvalidBlockError[uint64]{Value: 2, Position: 7}, result.Err)
}

func TestRun_ConformingStreamHasNoError(t *testing.T) {
	s := &Scenario{
		Name:        "inline_ok",
		Description: "conforming stream",
		WindowSize:  4,
		Stream:      []uint64{2, 2, 2, 2, 4, 6},
	}

	for _, name := range StrategyNames {
		result := Run(s, name, Strategies[name])
		require.NoError(t, result.Err, "strategy %s", name)
		require.Len(t, result.Steps, 2)
		// 6 = 2+4 only after 4 entered the window.
		assert.Equal(t, []uint64{2, 2, 4, 6}, result.Steps[1].Window)
	}
}

func TestRun_ShortStreamFailsInitialization(t *testing.T) {
	s := &Scenario{
		Name:        "inline_short",
		Description: "short stream",
		WindowSize:  5,
		Stream:      []uint64{1, 2, 3},
	}

	result := Run(s, "twopointer", Strategies["twopointer"])
	assert.Empty(t, result.Steps)
	assert.Equal(t, &engine.InitSizeError{Need: 5, Got: 3}, result.Err)
}

func TestRunBoth_FlagsNothingOnAgreement(t *testing.T) {
	s := &Scenario{
		Name:        "inline_both",
		Description: "equivalence over a mixed stream",
		WindowSize:  5,
		Stream:      []uint64{35, 20, 15, 25, 47, 40, 62, 55, 65, 95, 102, 117, 150, 182, 127},
	}

	result := RunBoth(t, s)
	require.Error(t, result.Err)
	AssertOneShotAgrees(t, s, result)
}
