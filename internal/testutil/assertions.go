package testutil

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// AssertNodeRan checks the debug log output within a HarnessResult to confirm
// that a specific node evaluated successfully.
func AssertNodeRan(t *testing.T, result *HarnessResult, nodeID string) {
	t.Helper()

	expected := fmt.Sprintf("node_id=%s ", nodeID)
	for _, line := range strings.Split(result.LogOutput, "\n") {
		if strings.Contains(line, "Node evaluation succeeded.") && strings.Contains(line, expected) {
			return
		}
	}
	require.Fail(t, "node did not run", "expected a successful evaluation of %q in the logs", nodeID)
}

// Outputs decodes the JSON document the app writes after a run.
func Outputs(t *testing.T, result *HarnessResult) map[string]map[string]any {
	t.Helper()

	var doc map[string]map[string]any
	require.NoError(t, json.Unmarshal([]byte(result.Output), &doc), "output: %s", result.Output)
	return doc
}
