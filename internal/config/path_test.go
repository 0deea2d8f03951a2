package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	t.Setenv("PAISA_TEST_DIR", "/var/data")

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty stays empty", "", ""},
		{"absolute untouched", "/tmp/paisa.db", "/tmp/paisa.db"},
		{"tilde alone", "~", home},
		{"tilde prefix", "~/paisa/paisa.db", filepath.Join(home, "paisa", "paisa.db")},
		{"env var", "$PAISA_TEST_DIR/paisa.db", "/var/data/paisa.db"},
		{"home env var", "$HOME/paisa.db", filepath.Join(home, "paisa.db")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExpandPath(tt.in))
		})
	}
}
