package config

import (
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
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
		{name: "all flags", args: []string{"cmd",
			"-a", "127.0.0.1:9090", "-d", "db", "-s", "secret",
			"-t", "1h", "-r", "72h", "-k", "11", "-m", "b2", "-o", "10s",
			"-u", "user", "-p", "password", "-b", "bucket", "-g", "us-west-1", "-e", "http://endpoint",
			"-l", "warn", "-f", "text",
		}, expectPanic: false,
			expected: &Config{
				EndpointAddrGRPC:     "127.0.0.1:9090",
				DatabaseDSN:          "db",
				SecretKey:            "secret",
				SessionTokenValidity: time.Hour,
				ShareTokenValidity:   72 * time.Hour,
				BcryptCost:           11,
				StorageBackend:       StorageB2,
				StorageTimeout:       10 * time.Second,
				S3RootUser:           "user",
				S3RootPassword:       "password",
				S3Bucket:             "bucket",
				S3Region:             "us-west-1",
				S3BaseEndpoint:       "http://endpoint",
				LogLevel:             "warn",
				LogFormat:            "text",
			}},
		{name: "foreign flags ignored", args: []string{"cmd",
			"-config", "cfg.json", "-env-file", ".env.test", "-a", ":1",
		}, expectPanic: false,
			expected: &Config{EndpointAddrGRPC: ":1"}},
		{name: "bad duration", args: []string{"cmd", "-t", "soon"}, expectPanic: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Args = tt.args

			config := &Config{}

			if !tt.expectPanic {
				require.NotPanics(t, func() { parseFlags(config) })
				assert.Empty(t, cmp.Diff(config, tt.expected))
			} else {
				require.Panics(t, func() { parseFlags(config) })
			}
		})
	}
}
