package app

import (
	"testing"

	"github.com/specialistvlad/pairsum/internal/pairsum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig(t *testing.T) {
	testCases := []struct {
		name      string
		cfg       Config
		expectErr string
	}{
		{
			name: "valid",
			cfg:  Config{FilePath: "input.txt", Sum: 2020, Solvers: []string{"naive", "indexed"}},
		},
		{
			name:      "missing file",
			cfg:       Config{Solvers: []string{"naive"}},
			expectErr: "FilePath is a required configuration field",
		},
		{
			name:      "no solvers",
			cfg:       Config{FilePath: "input.txt"},
			expectErr: "at least one solver",
		},
		{
			name:      "unknown solver",
			cfg:       Config{FilePath: "input.txt", Solvers: []string{"bogo"}},
			expectErr: `unknown solver: "bogo"`,
		},
		{
			name:      "duplicate solver",
			cfg:       Config{FilePath: "input.txt", Solvers: []string{"naive", "naive"}},
			expectErr: `solver "naive" selected more than once`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := NewConfig(tc.cfg)
			if tc.expectErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.expectErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.cfg, *got)
		})
	}
}

func TestNewConfig_UnknownSolverIsSentinel(t *testing.T) {
	_, err := NewConfig(Config{FilePath: "input.txt", Solvers: []string{"bogo"}})
	assert.ErrorIs(t, err, pairsum.ErrUnknownSolver)
}

func TestNewConfig_CopiesSolvers(t *testing.T) {
	solvers := []string{"naive"}
	got, err := NewConfig(Config{FilePath: "input.txt", Solvers: solvers})
	require.NoError(t, err)

	solvers[0] = "indexed"
	assert.Equal(t, []string{"naive"}, got.Solvers)
}
