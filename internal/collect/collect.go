// Package collect discovers candidate image files under an input directory.
package collect

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Supported image file extensions (lowercase, with leading dot).
var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

// Supported reports whether a path carries one of the allowed image
// extensions. The check is case-insensitive.
func Supported(path string) bool {
	return imageExtensions[strings.ToLower(filepath.Ext(path))]
}

// Images scans inputDir for files with supported extensions and returns their
// paths sorted lexicographically, so processing order is deterministic for a
// given directory state. When recursive is false only the top level is
// scanned; otherwise the whole tree is walked.
func Images(inputDir string, recursive bool) ([]string, error) {
	if recursive {
		return walkTree(inputDir)
	}
	return listTopLevel(inputDir)
}

func listTopLevel(inputDir string) ([]string, error) {
	entries, err := os.ReadDir(inputDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read input directory: %w", err)
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if Supported(e.Name()) {
			files = append(files, filepath.Join(inputDir, e.Name()))
		}
	}
	sort.Strings(files)
	return files, nil
}

func walkTree(inputDir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(inputDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if Supported(path) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk input directory: %w", err)
	}
	sort.Strings(files)
	return files, nil
}
