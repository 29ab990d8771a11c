package config

import (
	"os"
	"path/filepath"
)

// PathResolver resolves the level and palette paths of a config file relative to the file itself
type PathResolver struct {
	baseDir string
}

func NewPathResolver(baseDir string) *PathResolver {
	return &PathResolver{baseDir: baseDir}
}

// ResolvePath resolves a potentially relative path to an absolute path
func (pr *PathResolver) ResolvePath(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(pr.baseDir, path)
}

// FileExists reports whether path names a readable regular file
func (pr *PathResolver) FileExists(path string) bool {
	info, err := os.Stat(pr.ResolvePath(path))
	return err == nil && info.Mode().IsRegular()
}

// validateFile reports a missing file. An empty path is not an error, the field is optional.
func (pr *PathResolver) validateFile(field, path string) []ValidationError {
	if path == "" || pr.FileExists(path) {
		return nil
	}
	return []ValidationError{{
		Field:   field,
		Message: "file " + pr.ResolvePath(path) + " does not exist",
	}}
}
