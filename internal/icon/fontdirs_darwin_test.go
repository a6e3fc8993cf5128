package icon

import "testing"

func TestFontDirsDarwin(t *testing.T) {
	dirs := fontDirs()
	if len(dirs) < 2 {
		t.Fatalf("fontDirs() = %q, want at least the two system folders", dirs)
	}
	if dirs[0] != "/Library/Fonts" || dirs[1] != "/System/Library/Fonts" {
		t.Errorf("fontDirs()[:2] = %q, want /Library/Fonts, /System/Library/Fonts", dirs[:2])
	}
}
