package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/timetoact/docai/parser"
)

var testCmd = &cobra.Command{
	Use:   "test [dir]",
	Short: "Batch-parse sample documents in a directory",
	Long: `Parses every matching file in a directory and reports a pass/fail
summary. The directory and file pattern default to the test section of the
configuration.

Exit codes:
  0 - all files parsed
  1 - directory not found, or at least one file failed
  3 - unexpected error`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		dir := ""
		if len(args) > 0 {
			dir = args[0]
		}
		if code := runTest(dir); code != exitOK {
			os.Exit(code)
		}
	},
}

func init() {
	rootCmd.AddCommand(testCmd)
}

func runTest(dir string) int {
	cfg, err := loadConfig()
	if err != nil {
		printError("Unexpected error: %v", err)
		return exitUnexpected
	}
	colorEnabled = cfg.Output.Color
	logger := newLogger(cfg)

	if dir == "" {
		dir = cfg.Test.Dir
	}
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		printError("Error: Directory '%s' not found", dir)
		return exitFileError
	}

	files, err := filepath.Glob(filepath.Join(dir, cfg.Test.Pattern))
	if err != nil {
		printError("Unexpected error: %v", err)
		return exitUnexpected
	}
	if len(files) == 0 {
		printWarn("No test files found in %s", dir)
		return exitOK
	}

	p, err := parser.New(parser.Options{Logger: logger})
	if err != nil {
		printError("Unexpected error: %v", err)
		return exitUnexpected
	}

	passed, failed := 0, 0
	for _, file := range files {
		data, err := os.ReadFile(file)
		if err != nil {
			failed++
			printFailure("❌ %s: %v", filepath.Base(file), err)
			continue
		}
		if _, err := p.Parse(string(data)); err != nil {
			failed++
			printFailure("❌ %s: %v", filepath.Base(file), err)
			continue
		}
		passed++
		if verbose {
			printSuccess("✅ %s", filepath.Base(file))
		}
	}

	fmt.Printf("\nResults: %d passed, %d failed\n", passed, failed)
	if failed > 0 {
		return exitFileError
	}
	return exitOK
}
