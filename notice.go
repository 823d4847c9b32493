package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// CommentStyle describes how a language writes comments. End is empty for
// languages that only have line comments, in which case Start is prepended
// to every line of the notice instead of opening a block.
type CommentStyle struct {
	Start string
	End   string
}

// commentStyles maps a file extension (without the leading dot) to its
// comment syntax. Note there is no entry for "dockerfile": Dockerfile
// matches always skip with an unknown-style warning.
// TODO: decide whether Dockerfile should get a hash style entry.
var commentStyles = map[string]CommentStyle{
	// C-style block comments (/* ... */)
	"c":    {"/*", " */"},
	"cpp":  {"/*", " */"},
	"h":    {"/*", " */"},
	"hpp":  {"/*", " */"},
	"java": {"/*", " */"},
	"js":   {"/*", " */"},
	"ts":   {"/*", " */"},
	"cs":   {"/*", " */"},
	"go":   {"/*", " */"},
	"rs":   {"/*", " */"},
	"css":  {"/*", " */"},
	"scss": {"/*", " */"},
	"php":  {"/*", " */"},

	// Hash-based line comments (# ...)
	"py":  {"#", ""},
	"sh":  {"#", ""},
	"rb":  {"#", ""},
	"yml": {"#", ""},

	// HTML comments (<!-- ... -->)
	"html": {"<!--", " -->"},
}

// supportedExtensions is the closed set of extensions a user may request.
var supportedExtensions = map[string]bool{
	"py": true, "java": true, "js": true, "ts": true, "c": true,
	"cpp": true, "h": true, "hpp": true, "cs": true, "go": true,
	"rs": true, "html": true, "css": true, "scss": true, "sh": true,
	"rb": true, "php": true, "yml": true,
}

// copyrightMarker is the substring scanned for in the head of a file to
// detect an existing notice. Scanning is a heuristic, not a structural
// check; it only looks at the first noticeScanLines lines.
const (
	copyrightMarker = "Copyright (c)"
	noticeScanLines = 20
)

// Outcome classifies what happened to a single file.
type Outcome int

const (
	OutcomeStamped Outcome = iota
	OutcomeSkipped
	OutcomeFailed
)

// Result is the per-file record of a stamping run.
type Result struct {
	Path    string
	Outcome Outcome
	Reason  string // set for skips
	Err     error  // set for failures
}

// Stamper inserts a copyright notice into source files.
type Stamper struct {
	lines  []string // notice text, outer whitespace trimmed, split by line
	styles map[string]CommentStyle
	dryRun bool
}

// NewStamper reads the notice text from path. A missing or unreadable
// notice file is fatal to the whole run.
func NewStamper(path string, dryRun bool) (*Stamper, error) {
	text, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read notice file %q: %w", path, err)
	}

	return &Stamper{
		lines:  strings.Split(strings.TrimSpace(string(text)), "\n"),
		styles: commentStyles,
		dryRun: dryRun,
	}, nil
}

// fileExtension returns the extension of path without the leading dot.
// A file literally named Dockerfile reports the pseudo-extension
// "dockerfile".
func fileExtension(path string) string {
	if filepath.Base(path) == "Dockerfile" {
		return "dockerfile"
	}
	return strings.TrimPrefix(filepath.Ext(path), ".")
}

// Format renders the notice as a comment block for the given extension.
func (s *Stamper) Format(ext string) (string, error) {
	style, found := s.styles[ext]
	if !found {
		return "", fmt.Errorf("no comment style for %q", ext)
	}

	var b strings.Builder
	if style.End != "" {
		// Block comment style
		b.WriteString(style.Start + "\n")
		for _, line := range s.lines {
			b.WriteString(strings.TrimRight(" * "+line, " \t\r") + "\n")
		}
		b.WriteString(" " + style.End + "\n")
	} else {
		// Line-by-line comment style
		for _, line := range s.lines {
			b.WriteString(strings.TrimRight(style.Start+" "+line, " \t\r") + "\n")
		}
	}
	return b.String(), nil
}

// hasNotice reports whether the copyright marker appears in the first
// noticeScanLines lines of content.
func hasNotice(content string) bool {
	lines := strings.SplitN(content, "\n", noticeScanLines+1)
	if len(lines) > noticeScanLines {
		lines = lines[:noticeScanLines]
	}
	for _, line := range lines {
		if strings.Contains(line, copyrightMarker) {
			return true
		}
	}
	return false
}

// isSpecialFirstLine reports whether line must stay the literal first line
// of the file: a shebang, a PHP open tag, or (for html files) a doctype
// declaration.
func isSpecialFirstLine(line, ext string) bool {
	if strings.HasPrefix(line, "#!") {
		return true
	}
	if strings.HasPrefix(strings.TrimSpace(line), "<?php") {
		return true
	}
	if ext == "html" && strings.HasPrefix(strings.ToLower(line), "<!doctype") {
		return true
	}
	return false
}

// Stamp rewrites the file at path with the formatted notice at (or near)
// the top. Skips and I/O failures are reported through the Result, never
// as a returned error; one bad file must not stop the batch.
func (s *Stamper) Stamp(path string) Result {
	ext := fileExtension(path)

	notice, err := s.Format(ext)
	if err != nil {
		return Result{Path: path, Outcome: OutcomeSkipped, Reason: fmt.Sprintf("no comment style for %q", ext)}
	}

	info, err := os.Stat(path)
	if err != nil {
		return Result{Path: path, Outcome: OutcomeFailed, Err: err}
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return Result{Path: path, Outcome: OutcomeFailed, Err: err}
	}
	content := string(raw)

	if hasNotice(content) {
		return Result{Path: path, Outcome: OutcomeSkipped, Reason: "copyright notice already present"}
	}

	// Preserve a special first line, keeping its original line ending.
	var firstLine string
	rest := content
	if content != "" {
		line := content
		if i := strings.IndexByte(content, '\n'); i >= 0 {
			line = content[:i+1]
		}
		if isSpecialFirstLine(line, ext) {
			firstLine = line
			rest = content[len(line):]
		}
	}

	var b strings.Builder
	b.WriteString(firstLine)
	b.WriteString(notice)
	if rest != "" {
		// One blank line separates the notice from the original content.
		b.WriteString("\n")
		b.WriteString(rest)
	}

	if s.dryRun {
		return Result{Path: path, Outcome: OutcomeStamped}
	}

	if err := os.WriteFile(path, []byte(b.String()), info.Mode().Perm()); err != nil {
		return Result{Path: path, Outcome: OutcomeFailed, Err: err}
	}

	return Result{Path: path, Outcome: OutcomeStamped}
}

// StampAll stamps every path in order, reporting each result through report
// as it happens. The returned slice holds one result per path.
func (s *Stamper) StampAll(paths []string, report func(Result)) []Result {
	results := make([]Result, 0, len(paths))
	for _, path := range paths {
		res := s.Stamp(path)
		if report != nil {
			report(res)
		}
		results = append(results, res)
	}
	return results
}

// validateExtensions checks the requested extensions against the supported
// set. The "dockerfile" keyword is accepted for matching even though the
// style table has no entry for it.
func validateExtensions(exts []string) error {
	var unsupported []string
	for _, ext := range exts {
		if !supportedExtensions[ext] && ext != "dockerfile" {
			unsupported = append(unsupported, ext)
		}
	}
	if len(unsupported) == 0 {
		return nil
	}

	supported := make([]string, 0, len(supportedExtensions))
	for ext := range supportedExtensions {
		supported = append(supported, ext)
	}
	sort.Strings(supported)

	return fmt.Errorf("unsupported file extensions: %s (supported: %s)",
		strings.Join(unsupported, ", "), strings.Join(supported, ", "))
}
