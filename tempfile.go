package blobstream

import "os"

// createTemp creates the backing file for materialization. Placement is
// resolved in priority order: explicit option, environment config, then
// the operating system temp directory. An unusable configured directory
// falls back to the OS default rather than failing materialization.
func createTemp(opts *Options) (*os.File, error) {
	dir := opts.TempDir
	if dir != "" && !isDirectoryUsable(dir) {
		dir = ""
	}
	pattern := opts.TempPattern
	if pattern == "" {
		pattern = "blobstream-*.tmp"
	}
	return os.CreateTemp(dir, pattern)
}

// isDirectoryUsable checks that a directory exists and is a directory.
// Writability is not probed here; creating the temp file tests it anyway.
func isDirectoryUsable(dir string) bool {
	stat, err := os.Stat(dir)
	if err != nil {
		return false
	}
	return stat.IsDir()
}
