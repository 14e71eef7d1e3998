package theme

import (
	"fmt"
	"os"
	"path/filepath"
)

// maxDiscoverDepth bounds recursion below the themes root. Trees deeper
// than this are almost certainly symlink cycles; failing loudly beats
// silently skipping a subtree and deactivating themes that still exist.
const maxDiscoverDepth = 32

// Discover returns the descriptor path of every theme under rootDir. A
// directory that directly contains a descriptor is a theme and is not
// searched further; directories without one are searched recursively.
// Files directly under rootDir are ignored. The order of the returned
// paths is unspecified.
func Discover(rootDir string) ([]string, error) {
	return discover(rootDir, 0)
}

func discover(dir string, depth int) ([]string, error) {
	if depth > maxDiscoverDepth {
		return nil, fmt.Errorf("theme discovery exceeded %d directory levels at %s (symlink cycle?)", maxDiscoverDepth, dir)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	var found []string
	for _, entry := range entries {
		sub := filepath.Join(dir, entry.Name())
		// Stat rather than entry.IsDir so symlinked theme directories
		// are followed. Broken links are skipped.
		info, err := os.Stat(sub)
		if err != nil || !info.IsDir() {
			continue
		}
		descriptor := filepath.Join(sub, DescriptorName)
		if info, err := os.Stat(descriptor); err == nil && !info.IsDir() {
			found = append(found, descriptor)
			continue
		}
		nested, err := discover(sub, depth+1)
		if err != nil {
			return nil, err
		}
		found = append(found, nested...)
	}
	return found, nil
}
