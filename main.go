// Package main implements the command-line interface for stamp.
// It uses the cobra library to define commands and flags.
package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
)

var (
	uiName     string
	config     Config
	configPath string
	ui         UI

	extFlag      string
	excludeFlag  string
	dryRun       bool
	review       bool
	assumeYes    bool
	useClipboard bool
)

func setupRuntime(cmd *cobra.Command, args []string) error {
	var err error

	// Possible custom config path
	if configPath == "" {
		configPath, err = configDirPath()
		if err != nil {
			return err
		}
	}

	// Load configuration
	config, err = loadConfigFromFile(configPath)
	if err != nil {
		return err
	}

	// Override values with flags
	if uiName != "" {
		config.DefaultUI = uiName
	}

	ui, err = newUI(config.DefaultUI)
	if err != nil {
		return err
	}

	return nil
}

var (
	rootCmd = &cobra.Command{
		Use:   "stamp",
		Short: "stamp inserts a copyright notice into source files.",
	}
	applyCmd = &cobra.Command{
		Use:   "apply [root]",
		Short: "Insert the copyright notice into files under a directory",
		Long: `Insert the copyright notice into every matching file under a root
directory, recursively.

The comment syntax is chosen per file from its extension. Files that
already contain a copyright notice in their first lines are skipped, as
are files whose extension has no known comment style. A shebang, PHP open
tag or HTML doctype stays the first line of the file, with the notice
inserted right after it.

The root directory, the extensions and the excluded directory names are
prompted for interactively when not given as an argument or flag. The
notice text is read from the file named in the configuration (by default
copyright.txt in the working directory); a missing notice file aborts the
run before any file is touched.`,
		Example: `  # Fully interactive run
  stamp apply

  # Stamp Go and Python files under ./src, skipping build directories
  stamp apply src --ext go,py --exclude build,dist

  # See what would change without writing anything
  stamp apply src --ext go --dry-run

  # Hand-pick the files to stamp out of the candidates
  stamp apply src --ext go --review`,
		Args:    cobra.MaximumNArgs(1),
		PreRunE: setupRuntime,
	}
	previewCmd = &cobra.Command{
		Use:   "preview <extension>",
		Short: "Render the formatted notice for one extension",
		Long: `Render the copyright notice as it would be inserted into a file with
the given extension, without touching any file.

With --clipboard the rendered block is copied to the clipboard instead of
being printed.`,
		Example: `  # Show the notice as a Go comment block
  stamp preview go

  # Copy the Python version to the clipboard
  stamp preview py --clipboard`,
		Args:    cobra.ExactArgs(1),
		PreRunE: setupRuntime,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPreview(args[0])
		},
	}
	extensionsCmd = &cobra.Command{
		Use:   "extensions",
		Short: "List the supported extensions and their comment markers",
		RunE: func(cmd *cobra.Command, args []string) error {
			runExtensions()
			return nil
		},
	}
	noticeCmd = &cobra.Command{
		Use:   "notice",
		Short: "Manage the copyright notice text.",
	}
	noticeEditCmd = &cobra.Command{
		Use:   "edit",
		Short: "Edit the copyright notice text",
		Long: `Open the notice file in your editor, creating it if it does not exist.

The editor priority is: config file > VISUAL env var > EDITOR env var >
system default.`,
		Args:    cobra.NoArgs,
		PreRunE: setupRuntime,
		RunE: func(cmd *cobra.Command, args []string) error {
			return editNotice(config.Editor, config.NoticePath)
		},
	}
)

// RunE is assigned here rather than in the var literal above because the
// closure refers to runApply, which reads applyCmd's flags; keeping it in
// the literal would make applyCmd's initialization cyclic.
func init() {
	applyCmd.RunE = func(cmd *cobra.Command, args []string) error {
		var root string
		if len(args) == 1 {
			root = args[0]
		}
		return runApply(root)
	}
}

func main() {
	// Flags
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Overrides default configuration path.")
	applyCmd.Flags().StringVar(&uiName, "ui", "", "Specify UI: 'terminal' or 'fuzzy'. Overrides config.")
	applyCmd.Flags().StringVar(&extFlag, "ext", "", "Comma-separated extensions to stamp (no leading dots).")
	applyCmd.Flags().StringVar(&excludeFlag, "exclude", "", "Comma-separated directory names to skip.")
	applyCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Report the files that would be stamped, without making changes.")
	applyCmd.Flags().BoolVar(&review, "review", false, "Pick the files to stamp out of the candidates.")
	applyCmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "Do not ask for confirmation before writing.")
	previewCmd.Flags().BoolVar(&useClipboard, "clipboard", false, "Copy the rendered notice to the clipboard.")

	noticeCmd.AddCommand(noticeEditCmd)
	rootCmd.AddCommand(
		applyCmd,
		previewCmd,
		extensionsCmd,
		noticeCmd,
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// runApply handles the logic for the "apply" command. It gathers the root
// directory, extensions and exclusions (prompting for whatever was not
// given on the command line), validates the extensions, loads the notice
// text, and stamps every candidate file, printing a status line per file
// and a final summary.
func runApply(root string) error {
	var err error

	if root == "" {
		root, err = ui.Prompt("Directory to search")
		if err != nil {
			return fmt.Errorf("failed to read directory: %w", err)
		}
	}

	extList := extFlag
	if extList == "" {
		extList, err = ui.Prompt("Extensions to stamp (comma-separated, no dots)")
		if err != nil {
			return fmt.Errorf("failed to read extensions: %w", err)
		}
	}

	excludeList := excludeFlag
	if !applyCmd.Flags().Changed("exclude") {
		excludeList, err = ui.Prompt("Directories to exclude (comma-separated, e.g. venv,.git,build)")
		if err != nil {
			return fmt.Errorf("failed to read exclusions: %w", err)
		}
	}

	// Fail fast on unsupported extensions, before any file is touched.
	exts := splitExtensions(extList)
	if err := validateExtensions(exts); err != nil {
		return err
	}

	// A missing or unreadable notice file aborts the whole run.
	stamper, err := NewStamper(config.NoticePath, dryRun)
	if err != nil {
		return err
	}

	excluded := asSet(append(splitDirs(excludeList), config.Exclude...))

	files := findFiles(root, asSet(exts), excluded)
	if len(files) == 0 {
		fmt.Printf("No files with extensions %q found in %q, or the directory is invalid.\n", extList, root)
		return nil
	}

	if review {
		files, err = ui.PickFiles(files)
		if err != nil {
			return fmt.Errorf("failed to pick files: %w", err)
		}
		if len(files) == 0 {
			fmt.Println("Nothing selected.")
			return nil
		}
	}

	if !assumeYes && !dryRun {
		ok, err := ui.Confirm(fmt.Sprintf("Add the copyright notice to %d files?", len(files)))
		if err != nil {
			return fmt.Errorf("failed to confirm: %w", err)
		}
		if !ok {
			fmt.Println("Aborted.")
			return nil
		}
	}

	if dryRun {
		fmt.Printf("Found %d files. Dry run, nothing will be written.\n", len(files))
	} else {
		fmt.Printf("Found %d files. Adding copyright notice...\n", len(files))
	}

	results := stamper.StampAll(files, printResult)
	printSummary(results)

	return nil
}

// runPreview handles the logic for the "preview" command.
func runPreview(ext string) error {
	if err := validateExtensions([]string{ext}); err != nil {
		return err
	}

	stamper, err := NewStamper(config.NoticePath, true)
	if err != nil {
		return err
	}

	notice, err := stamper.Format(ext)
	if err != nil {
		return err
	}

	if useClipboard {
		if err := clipboard.WriteAll(notice); err != nil {
			return fmt.Errorf("failed to copy to clipboard: %w", err)
		}
		fmt.Printf("Notice for %q copied to clipboard.\n", ext)
		return nil
	}

	fmt.Print(notice)
	return nil
}

// runExtensions prints the supported extensions with their comment markers.
func runExtensions() {
	exts := make([]string, 0, len(supportedExtensions))
	for ext := range supportedExtensions {
		exts = append(exts, ext)
	}
	sort.Strings(exts)

	for _, ext := range exts {
		style, found := commentStyles[ext]
		if !found {
			fmt.Printf("%-6s (no comment style)\n", ext)
			continue
		}
		if style.End != "" {
			fmt.Printf("%-6s %s ... %s\n", ext, style.Start, strings.TrimSpace(style.End))
		} else {
			fmt.Printf("%-6s %s\n", ext, style.Start)
		}
	}
}
