package cli

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/specialistvlad/wavegrid/internal/app"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		name     string
		args     []string
		want     *app.Config
		wantExit bool
		wantCode int
	}{
		{
			name: "positional path with defaults",
			args: []string{"grid.hcl"},
			want: &app.Config{GridPath: "grid.hcl", LogFormat: "json", LogLevel: "info"},
		},
		{
			name: "every flag",
			args: []string{
				"-g", "grids/", "--log-format", "TEXT", "--log-level", "debug", "--workers", "3",
				"--node-timeout", "2s", "--healthcheck-port", "8080", "--strict", "--plan",
			},
			want: &app.Config{
				GridPath: "grids/", LogFormat: "text", LogLevel: "debug", WorkerCount: 3,
				NodeTimeout: 2 * time.Second, HealthcheckPort: 8080, Strict: true, Plan: true,
			},
		},
		{
			name: "grid flag wins over shorthand",
			args: []string{"--grid", "a.hcl", "-g", "b.hcl"},
			want: &app.Config{GridPath: "a.hcl", LogFormat: "json", LogLevel: "info"},
		},
		{
			name: "list kinds without a grid",
			args: []string{"--list-kinds"},
			want: &app.Config{LogFormat: "json", LogLevel: "info", ListKinds: true},
		},
		{name: "no path prints usage", args: nil, wantExit: true},
		{name: "help", args: []string{"-h"}, wantExit: true},
		{name: "unknown flag", args: []string{"--nope"}, wantCode: 2},
		{name: "invalid level", args: []string{"--log-level", "loud", "g.hcl"}, wantCode: 2},
		{name: "invalid format", args: []string{"--log-format", "xml", "g.hcl"}, wantCode: 2},
		{name: "negative workers", args: []string{"--workers", "-1", "g.hcl"}, wantCode: 2},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// --- Arrange ---
			var out bytes.Buffer

			// --- Act ---
			cfg, exit, err := Parse(tc.args, &out)

			// --- Assert ---
			if tc.wantCode != 0 {
				var exitErr *ExitError
				require.True(t, errors.As(err, &exitErr))
				assert.Equal(t, tc.wantCode, exitErr.Code)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantExit, exit)
			if tc.wantExit {
				assert.Contains(t, out.String(), "Usage:")
				return
			}
			assert.Equal(t, tc.want, cfg)
		})
	}
}
