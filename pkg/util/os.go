package util

import "os"

// PathExists reports whether something exists at path. Any stat error,
// including permission errors, counts as missing.
func PathExists(path string) bool {
	if path == "" {
		return false
	}
	_, err := os.Stat(path)
	return err == nil
}
