//go:build !windows

package icon

import (
	"path/filepath"
	"testing"
)

func TestAccountHomeIgnoresHOME(t *testing.T) {
	want := accountHome()
	t.Setenv("HOME", "/nonexistent-home")
	if got := accountHome(); got != want {
		t.Errorf("accountHome() = %q after changing HOME, want %q", got, want)
	}
	if want != "" && !filepath.IsAbs(want) {
		t.Errorf("accountHome() = %q, want an absolute path", want)
	}
}
