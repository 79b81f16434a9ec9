package harness

import (
	"errors"

	"github.com/roach88/blockmine/internal/engine"
)

// Strategies enumerates the engine strategies under conformance test,
// keyed by the names used in traces and golden files.
var Strategies = map[string]engine.Constructor[uint64]{
	"pairsum":    func(initial []uint64) engine.Engine[uint64] { return engine.NewPairSum(initial) },
	"twopointer": func(initial []uint64) engine.Engine[uint64] { return engine.NewTwoPointer(initial) },
}

// StrategyNames lists the strategies in a fixed order for deterministic
// iteration.
var StrategyNames = []string{"pairsum", "twopointer"}

// StepTrace records the engine's decision for one fed block.
type StepTrace struct {
	// Value is the block that was fed.
	Value uint64 `json:"value"`

	// Accepted reports whether the window advanced.
	Accepted bool `json:"accepted"`

	// Position is the 1-based stream position reported on rejection.
	Position int `json:"position,omitempty"`

	// Window is the validation window after the step, oldest first.
	// Unchanged from before the step when the block was rejected.
	Window []uint64 `json:"window"`
}

// Result is the outcome of running a scenario against one strategy.
type Result struct {
	// Scenario names the scenario that produced this result.
	Scenario string

	// Strategy names the engine strategy that ran it.
	Strategy string

	// Steps is the decision trace, one entry per fed block, ending at
	// the first rejection.
	Steps []StepTrace

	// Err is the error that stopped the run: nil if the whole stream
	// conformed, *engine.InitSizeError or *engine.InvalidBlockError
	// otherwise.
	Err error
}

// Run executes a scenario against one strategy and records the decision
// trace. The stream's first WindowSize values initialize the engine; the
// remainder is fed one block at a time, stopping at the first rejection.
func Run(s *Scenario, strategy string, build engine.Constructor[uint64]) *Result {
	result := &Result{
		Scenario: s.Name,
		Strategy: strategy,
		Steps:    []StepTrace{},
	}

	if len(s.Stream) < s.WindowSize {
		result.Err = &engine.InitSizeError{Need: s.WindowSize, Got: len(s.Stream)}
		return result
	}

	e := build(s.Stream[:s.WindowSize])
	for _, block := range s.Stream[s.WindowSize:] {
		err := e.TryExtendOne(block)

		step := StepTrace{
			Value:    block,
			Accepted: err == nil,
			Window:   e.Window(),
		}
		if err != nil {
			var invalid *engine.InvalidBlockError[uint64]
			if errors.As(err, &invalid) {
				step.Position = invalid.Position
			}
			result.Steps = append(result.Steps, step)
			result.Err = err
			return result
		}
		result.Steps = append(result.Steps, step)
	}

	return result
}
