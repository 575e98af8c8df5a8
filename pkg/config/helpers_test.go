package config_test

import (
	"os"
	"testing"
)

// unset removes keys for the duration of the test.
func unset(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		t.Setenv(key, "") // registers the restore
		os.Unsetenv(key)
	}
}
