package icon

import "path/filepath"

func fontDirs() []string {
	dirs := []string{"/Library/Fonts", "/System/Library/Fonts"}
	if home := accountHome(); home != "" {
		dirs = append(dirs, filepath.Join(home, "Library", "Fonts"))
	}
	return dirs
}
