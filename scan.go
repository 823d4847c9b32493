package main

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// findFiles walks the tree rooted at root and returns the paths of files
// whose extension is in extensions. A subtree rooted at a directory whose
// name is in excluded is pruned entirely, at any depth. If extensions
// contains "dockerfile", files literally named Dockerfile match too.
// Returns nil when root is not a directory.
func findFiles(root string, extensions, excluded map[string]bool) []string {
	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return nil
	}

	var matches []string
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Unreadable entries are skipped, not fatal.
			return nil
		}

		if d.IsDir() {
			if path != root && excluded[d.Name()] {
				return fs.SkipDir
			}
			return nil
		}

		name := d.Name()
		if extensions["dockerfile"] && name == "Dockerfile" {
			matches = append(matches, path)
			return nil
		}

		ext := strings.TrimPrefix(filepath.Ext(name), ".")
		if extensions[ext] {
			matches = append(matches, path)
		}
		return nil
	})

	return matches
}

// splitExtensions parses a comma-separated extension list. Entries are
// trimmed but empty entries are kept, so a stray trailing comma surfaces
// as an unsupported extension during validation.
func splitExtensions(s string) []string {
	parts := strings.Split(s, ",")
	exts := make([]string, 0, len(parts))
	for _, part := range parts {
		exts = append(exts, strings.TrimSpace(part))
	}
	return exts
}

// splitDirs parses a comma-separated directory name list, dropping empty
// entries.
func splitDirs(s string) []string {
	var dirs []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			dirs = append(dirs, part)
		}
	}
	return dirs
}

// asSet converts a list of names into a lookup set.
func asSet(names []string) map[string]bool {
	set := make(map[string]bool, len(names))
	for _, name := range names {
		set[name] = true
	}
	return set
}
