//go:build !windows

package icon

import "os/user"

// accountHome returns the current user's home directory from the account
// database. It is only used to locate per-user font folders.
func accountHome() string {
	u, err := user.Current()
	if err != nil {
		return ""
	}
	return u.HomeDir
}
