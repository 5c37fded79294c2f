// Package osutil holds platform constants and exit codes
package osutil

const Windows = "windows"

type exitCode int

const ExitError exitCode = 1

const (
	DirPermission  = 0o755
	FilePermission = 0o644
	// PrivatePermission is used for the preference store.
	PrivatePermission = 0o600
)
