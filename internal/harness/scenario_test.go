package harness

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeScenarioFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadScenario(t *testing.T) {
	path := writeScenarioFile(t, `
name: sample
description: "sample scenario"
window_size: 5
stream: [35, 20, 15, 25, 47, 40]
expect:
  outcome: accept
final_window: [20, 15, 25, 47, 40]
`)

	s, err := LoadScenario(path)
	require.NoError(t, err)
	assert.Equal(t, "sample", s.Name)
	assert.Equal(t, 5, s.WindowSize)
	assert.Equal(t, []uint64{35, 20, 15, 25, 47, 40}, s.Stream)
	assert.Equal(t, OutcomeAccept, s.Expect.Outcome)
	assert.Equal(t, []uint64{20, 15, 25, 47, 40}, s.FinalWindow)
}

func TestLoadScenario_MissingFile(t *testing.T) {
	_, err := LoadScenario(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read scenario file")
}

func TestLoadScenario_UnknownFieldsRejected(t *testing.T) {
	path := writeScenarioFile(t, `
name: typo
description: "typo in field name"
window_size: 4
stream: [1, 2, 3, 4]
expects:
  outcome: accept
`)

	_, err := LoadScenario(path)
	require.Error(t, err, "unknown fields must be rejected")
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestLoadScenario_Validation(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name: "missing name",
			content: `
description: "d"
window_size: 4
stream: [1, 2, 3, 4]
expect: {outcome: accept}
`,
			wantErr: "name is required",
		},
		{
			name: "missing description",
			content: `
name: n
window_size: 4
stream: [1, 2, 3, 4]
expect: {outcome: accept}
`,
			wantErr: "description is required",
		},
		{
			name: "window too small",
			content: `
name: n
description: "d"
window_size: 1
stream: [1, 2]
expect: {outcome: accept}
`,
			wantErr: "window_size must be at least 2",
		},
		{
			name: "missing outcome",
			content: `
name: n
description: "d"
window_size: 4
stream: [1, 2, 3, 4]
expect: {}
`,
			wantErr: "expect.outcome is required",
		},
		{
			name: "unknown outcome",
			content: `
name: n
description: "d"
window_size: 4
stream: [1, 2, 3, 4]
expect: {outcome: maybe}
`,
			wantErr: `unknown expect.outcome "maybe"`,
		},
		{
			name: "stream shorter than window for accept",
			content: `
name: n
description: "d"
window_size: 4
stream: [1, 2]
expect: {outcome: accept}
`,
			wantErr: "stream has 2 values",
		},
		{
			name: "short outcome with full stream",
			content: `
name: n
description: "d"
window_size: 2
stream: [1, 2, 3]
expect: {outcome: short}
`,
			wantErr: "requires fewer than window_size",
		},
		{
			name: "reject without position",
			content: `
name: n
description: "d"
window_size: 4
stream: [1, 2, 3, 4, 9]
expect: {outcome: reject, value: 9}
`,
			wantErr: "expect.position is required",
		},
		{
			name: "final window wrong length",
			content: `
name: n
description: "d"
window_size: 4
stream: [1, 2, 3, 4]
expect: {outcome: accept}
final_window: [3, 4]
`,
			wantErr: "final_window has 2 values",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadScenario(writeScenarioFile(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
