package main

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"
)

// getDefaultEditor returns the user's preferred editor.
func getDefaultEditor(editor string) string {
	if editor != "" {
		return editor
	}

	// Check environment variables in order of preference
	if editor := os.Getenv("VISUAL"); editor != "" {
		return editor
	}
	if editor := os.Getenv("EDITOR"); editor != "" {
		return editor
	}

	// Platform-specific defaults
	switch runtime.GOOS {
	case "windows":
		return "notepad"
	default:
		return "nano"
	}
}

// editNotice opens the notice file in the user's editor, creating it first
// if it does not exist yet.
func editNotice(editor, path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := os.WriteFile(path, nil, 0o644); err != nil {
			return fmt.Errorf("failed to create notice file %q: %w", path, err)
		}
	} else if err != nil {
		return fmt.Errorf("failed to stat notice file %q: %w", path, err)
	}

	return openEditor(editor, path)
}

// openEditor opens the specified file in the user's default editor
func openEditor(editor, filename string) error {
	editor = getDefaultEditor(editor)

	var cmd *exec.Cmd
	if runtime.GOOS == "windows" {
		cmd = exec.Command("cmd", "/c", editor, filename)
	} else {
		cmd = exec.Command(editor, filename)
	}

	// Connect editor to terminal
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	return cmd.Run()
}
