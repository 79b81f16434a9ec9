package harness

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Expected outcome values for Scenario.Expect.
const (
	// OutcomeAccept means the whole stream conforms.
	OutcomeAccept = "accept"
	// OutcomeReject means validation fails at Expect.Value/Position.
	OutcomeReject = "reject"
	// OutcomeShort means the stream has fewer than window_size values.
	OutcomeShort = "short"
)

// Scenario defines a conformance test scenario for the validation
// engines. Scenarios are run against both strategies and the decision
// traces must agree.
type Scenario struct {
	// Name uniquely identifies this scenario.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// WindowSize is the validation window size W.
	WindowSize int `yaml:"window_size"`

	// Stream is the full input: the first WindowSize values initialize
	// the engine, the remainder is fed one block at a time.
	Stream []uint64 `yaml:"stream"`

	// Expect specifies the expected outcome of the run.
	Expect ExpectClause `yaml:"expect"`

	// FinalWindow optionally asserts the window contents after the last
	// step, in acceptance order.
	FinalWindow []uint64 `yaml:"final_window,omitempty"`
}

// ExpectClause specifies the expected outcome of a scenario run.
type ExpectClause struct {
	// Outcome is one of OutcomeAccept, OutcomeReject, OutcomeShort.
	Outcome string `yaml:"outcome"`

	// Value is the offending block value (reject only).
	Value uint64 `yaml:"value,omitempty"`

	// Position is the 1-based stream position of the offending block
	// (reject only).
	Position int `yaml:"position,omitempty"`
}

// LoadScenario reads and parses a scenario YAML file.
// Returns an error if the file doesn't exist, is malformed, contains
// unknown fields (typos), or is missing required fields.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	// Strict field validation catches typos like "expects:" vs "expect:".
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	return &scenario, nil
}

// validateScenario checks that required fields are present and coherent.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}

	if s.Description == "" {
		return fmt.Errorf("description is required")
	}

	if s.WindowSize < 2 {
		return fmt.Errorf("window_size must be at least 2, got %d", s.WindowSize)
	}

	switch s.Expect.Outcome {
	case OutcomeAccept, OutcomeReject:
		if len(s.Stream) < s.WindowSize {
			return fmt.Errorf("stream has %d values, need at least window_size (%d) for outcome %q",
				len(s.Stream), s.WindowSize, s.Expect.Outcome)
		}
	case OutcomeShort:
		if len(s.Stream) >= s.WindowSize {
			return fmt.Errorf("outcome %q requires fewer than window_size (%d) values, got %d",
				OutcomeShort, s.WindowSize, len(s.Stream))
		}
	case "":
		return fmt.Errorf("expect.outcome is required")
	default:
		return fmt.Errorf("unknown expect.outcome %q", s.Expect.Outcome)
	}

	if s.Expect.Outcome == OutcomeReject && s.Expect.Position == 0 {
		return fmt.Errorf("expect.position is required for outcome %q", OutcomeReject)
	}

	if s.FinalWindow != nil && len(s.FinalWindow) != s.WindowSize {
		return fmt.Errorf("final_window has %d values, want window_size (%d)",
			len(s.FinalWindow), s.WindowSize)
	}

	return nil
}
