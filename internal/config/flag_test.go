package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{
			name: "all flags set",
			args: []string{"cmd", "-e", "postgres", "-d", "postgres://localhost/creds", "-f", "other.db", "-m", "5", "-l", "120"},
			expected: &Config{
				DatabaseEngine:   "postgres",
				DatabaseDSN:      "postgres://localhost/creds",
				SQLitePath:       "other.db",
				MaxLoginAttempts: 5,
				LockoutDuration:  120 * time.Second,
			},
		},
		{
			name: "unrecognized args are ignored",
			args: []string{"cmd", "register", "alice", "-m", "5"},
			expected: &Config{
				MaxLoginAttempts: 5,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Args = tt.args

			config := &Config{}

			if !tt.expectPanic {
				require.NotPanics(t, func() { parseFlags(config) })
				assert.Equal(t, tt.expected, config)
			} else {
				require.Panics(t, func() { parseFlags(config) })
			}
		})
	}
}
