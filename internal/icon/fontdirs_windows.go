package icon

import (
	"path/filepath"

	"golang.org/x/sys/windows"
)

// fontDirs returns the system and per-user font folders from the shell's
// known-folder registry.
func fontDirs() []string {
	var dirs []string
	if p, err := windows.KnownFolderPath(windows.FOLDERID_Fonts, 0); err == nil {
		dirs = append(dirs, p)
	}
	if p, err := windows.KnownFolderPath(windows.FOLDERID_LocalAppData, 0); err == nil {
		dirs = append(dirs, filepath.Join(p, "Microsoft", "Windows", "Fonts"))
	}
	return dirs
}
