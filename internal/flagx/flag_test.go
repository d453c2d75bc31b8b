package flagx

import (
	"os"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

// serverFlags mirrors the short flags the server's own flag set parses.
var serverFlags = []string{"-a", "-d", "-s", "-t", "-r", "-k", "-m", "-o", "-u", "-p", "-b", "-g", "-e", "-l", "-f"}

// fullCommandLine carries flags for all three loaders at once.
var fullCommandLine = []string{
	"-c", "/etc/timevault/config.json",
	"-env-file", "/etc/timevault/.env",
	"-a", ":50051",
	"-d", "memory",
	"-o", "10s",
}

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name         string
		args         []string
		allowedFlags []string
		want         []string
	}{
		{
			name:         "server flags skip the config and env-file loaders",
			args:         fullCommandLine,
			allowedFlags: serverFlags,
			want:         []string{"-a", ":50051", "-d", "memory", "-o", "10s"},
		},
		{
			name:         "json loader sees only -c",
			args:         fullCommandLine,
			allowedFlags: []string{"-c", "-config"},
			want:         []string{"-c", "/etc/timevault/config.json"},
		},
		{
			name:         "env loader sees only -env-file",
			args:         fullCommandLine,
			allowedFlags: []string{"-env-file"},
			want:         []string{"-env-file", "/etc/timevault/.env"},
		},
		{
			name:         "equals forms",
			args:         []string{"-config=alt.json", "-env-file=local.env", "-s=k3y"},
			allowedFlags: []string{"-c", "-config", "-env-file"},
			want:         []string{"-config=alt.json", "-env-file=local.env"},
		},
		{
			name:         "flag without value at end is kept as-is",
			args:         []string{"-d", "memory", "-env-file"},
			allowedFlags: []string{"-env-file"},
			want:         []string{"-env-file"},
		},
		{
			name:         "next dash-starting token is not a value",
			args:         []string{"-env-file", "-c", "conf.json"},
			allowedFlags: []string{"-env-file", "-c"},
			want:         []string{"-env-file", "-c", "conf.json"},
		},
		{
			name:         "duration value is kept with its flag",
			args:         []string{"-r", "168h", "-x"},
			allowedFlags: serverFlags,
			want:         []string{"-r", "168h"},
		},
		{
			name:         "repeated flag keeps order",
			args:         []string{"-c", "one.json", "-c", "two.json"},
			allowedFlags: []string{"-c"},
			want:         []string{"-c", "one.json", "-c", "two.json"},
		},
		{
			name:         "empty args",
			args:         []string{},
			allowedFlags: serverFlags,
			want:         []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterArgs(tt.args, tt.allowedFlags)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("FilterArgs() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func withArgs(t *testing.T, args ...string) {
	t.Helper()
	orig := os.Args
	t.Cleanup(func() { os.Args = orig })
	os.Args = append([]string{"timevault-server"}, args...)
}

func TestJsonConfigFlags(t *testing.T) {
	t.Run("short -c", func(t *testing.T) {
		withArgs(t, "-c", "/path/short.json")
		assert.Equal(t, "/path/short.json", JsonConfigFlags())
	})

	t.Run("long -config after server flags", func(t *testing.T) {
		withArgs(t, "-a", ":50051", "-config", "/path/long.json")
		assert.Equal(t, "/path/long.json", JsonConfigFlags())
	})

	t.Run("last one wins", func(t *testing.T) {
		withArgs(t, "-c", "/path/1.json", "-config", "/path/2.json")
		assert.Equal(t, "/path/2.json", JsonConfigFlags())
	})

	t.Run("absent", func(t *testing.T) {
		withArgs(t, "-a", ":50051")
		assert.Empty(t, JsonConfigFlags())
	})
}

func TestEnvFileFlag(t *testing.T) {
	t.Run("with a server flag", func(t *testing.T) {
		withArgs(t, "-a", ":50051", "-env-file", "/etc/timevault/.env")
		assert.Equal(t, "/etc/timevault/.env", EnvFileFlag())
	})

	t.Run("equals form", func(t *testing.T) {
		withArgs(t, "-env-file=local.env")
		assert.Equal(t, "local.env", EnvFileFlag())
	})

	t.Run("absent", func(t *testing.T) {
		withArgs(t)
		assert.Empty(t, EnvFileFlag())
	})
}

func TestEnvFileAndJsonConfigTogether(t *testing.T) {
	withArgs(t, fullCommandLine...)

	assert.Equal(t, "/etc/timevault/config.json", JsonConfigFlags())
	assert.Equal(t, "/etc/timevault/.env", EnvFileFlag())

	// order does not matter, and the equals form mixes with the spaced one
	withArgs(t, "-env-file=prod.env", "-d", "memory", "-c", "prod.json")
	assert.Equal(t, "prod.json", JsonConfigFlags())
	assert.Equal(t, "prod.env", EnvFileFlag())
}
