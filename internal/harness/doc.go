// Package harness provides conformance testing for the blockmine
// validation engines.
//
// The harness loads YAML scenario files, runs each scenario against both
// engine strategies, and compares the resulting decision traces: the two
// strategies must produce identical accept/reject decisions, identical
// error payloads, and identical window contents at every step.
//
// # Scenario Format
//
// Scenarios are defined in YAML files with the following structure:
//
//	name: scenario_name
//	description: "What this scenario validates"
//	window_size: 5
//	stream: [35, 20, 15, 25, 47, 40, 62]
//	expect:
//	  outcome: reject
//	  value: 127
//	  position: 15
//	final_window: [40, 62, 55, 65, 95]
//
// The stream holds the full input: the first window_size values
// initialize the engine and the remainder is fed one block at a time.
// expect.outcome is "accept" (the whole stream conforms), "reject" (the
// stream breaks at value/position), or "short" (fewer than window_size
// values exist). final_window is optional and asserts the window after
// the last step.
//
// # Deterministic Testing
//
// Engine decisions are pure functions of the input stream, so traces are
// reproducible by construction and compared against golden snapshots
// with goldie. Regenerate goldens with:
//
//	go test ./internal/harness -update
package harness
