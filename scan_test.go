package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildTestTree creates the given files (with empty content) under a fresh
// temp directory and returns its path.
func buildTestTree(t *testing.T, files ...string) string {
	t.Helper()

	root := t.TempDir()
	for _, file := range files {
		path := filepath.Join(root, filepath.FromSlash(file))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0750))
		require.NoError(t, os.WriteFile(path, nil, 0600))
	}
	return root
}

// relative maps absolute paths back to slash-separated paths under root.
func relative(t *testing.T, root string, paths []string) []string {
	t.Helper()

	rels := make([]string, 0, len(paths))
	for _, path := range paths {
		rel, err := filepath.Rel(root, path)
		require.NoError(t, err)
		rels = append(rels, filepath.ToSlash(rel))
	}
	return rels
}

func TestFindFiles(t *testing.T) {
	root := buildTestTree(t,
		"main.go",
		"tool.py",
		"README.md",
		"Dockerfile",
		"sub/deep/util.go",
		"sub/style.scss",
		"vendor/dep.go",
		"sub/vendor/nested.go",
		"build/out.py",
	)

	for name, test := range map[string]struct {
		extensions []string
		excluded   []string
		expected   []string
	}{
		"single extension": {
			extensions: []string{"go"},
			expected:   []string{"main.go", "sub/deep/util.go", "sub/vendor/nested.go", "vendor/dep.go"},
		},
		"multiple extensions": {
			extensions: []string{"go", "py"},
			expected:   []string{"build/out.py", "main.go", "sub/deep/util.go", "sub/vendor/nested.go", "tool.py", "vendor/dep.go"},
		},
		"exclusion applies at every depth": {
			extensions: []string{"go"},
			excluded:   []string{"vendor"},
			expected:   []string{"main.go", "sub/deep/util.go"},
		},
		"multiple exclusions": {
			extensions: []string{"go", "py"},
			excluded:   []string{"vendor", "build"},
			expected:   []string{"main.go", "sub/deep/util.go", "tool.py"},
		},
		"dockerfile keyword": {
			extensions: []string{"dockerfile"},
			expected:   []string{"Dockerfile"},
		},
		"no match": {
			extensions: []string{"rs"},
			expected:   nil,
		},
	} {
		t.Run(name, func(t *testing.T) {
			got := findFiles(root, asSet(test.extensions), asSet(test.excluded))
			assert.ElementsMatch(t, test.expected, relative(t, root, got))
		})
	}
}

func TestFindFilesInvalidRoot(t *testing.T) {
	assert.Nil(t, findFiles(filepath.Join(t.TempDir(), "missing"), asSet([]string{"go"}), nil))

	// A plain file is not a valid root either.
	file := filepath.Join(t.TempDir(), "file.go")
	require.NoError(t, os.WriteFile(file, nil, 0600))
	assert.Nil(t, findFiles(file, asSet([]string{"go"}), nil))
}

func TestFindFilesRootNameNotExcluded(t *testing.T) {
	// Exclusion prunes subtrees strictly inside the root; a root that is
	// itself named like an excluded directory is still scanned.
	parent := t.TempDir()
	root := filepath.Join(parent, "vendor")
	require.NoError(t, os.MkdirAll(root, 0750))
	require.NoError(t, os.WriteFile(filepath.Join(root, "dep.go"), nil, 0600))

	got := findFiles(root, asSet([]string{"go"}), asSet([]string{"vendor"}))
	assert.Len(t, got, 1)
}

func TestSplitExtensions(t *testing.T) {
	assert.Equal(t, []string{"py", "go"}, splitExtensions("py,go"))
	assert.Equal(t, []string{"py", "go"}, splitExtensions(" py , go "))
	assert.Equal(t, []string{"py", ""}, splitExtensions("py,"), "empty entries are kept for validation")
}

func TestSplitDirs(t *testing.T) {
	assert.Equal(t, []string{"venv", ".git", "build"}, splitDirs("venv,.git,build"))
	assert.Equal(t, []string{"venv"}, splitDirs(" venv , "))
	assert.Nil(t, splitDirs(""))
}
