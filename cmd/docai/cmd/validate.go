package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/timetoact/docai/document"
	"github.com/timetoact/docai/parser"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Check that a DocumentAI file parses",
	Long: `Parses a TimeToAct DocumentAI document and reports whether it is
well-formed, together with element counts and the document title.

Exit codes:
  0 - valid document
  1 - input file not found
  2 - parse error
  3 - unexpected error`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if code := runValidate(args[0]); code != exitOK {
			os.Exit(code)
		}
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(inputFile string) int {
	cfg, err := loadConfig()
	if err != nil {
		printError("Unexpected error: %v", err)
		return exitUnexpected
	}
	colorEnabled = cfg.Output.Color
	logger := newLogger(cfg)

	text, code := readInputFile(inputFile, logger)
	if code != exitOK {
		return code
	}

	p, err := parser.New(parser.Options{Logger: logger})
	if err != nil {
		printError("Unexpected error: %v", err)
		return exitUnexpected
	}

	root, err := p.Parse(text)
	if err != nil {
		printError("❌ Invalid document: %v", err)
		return exitParseError
	}

	stats := document.Collect(root)
	printSuccess("✅ Valid TimeToAct document")
	fmt.Printf("   Total elements: %d\n", stats.Total())
	fmt.Printf("   Blocks: %d, dictionaries: %d, lists: %d\n",
		stats.Blocks, stats.Dictionaries, stats.Lists)
	if head := root.HeadText(); head != "" {
		fmt.Printf("   Document title: %s\n", head)
	}
	return exitOK
}
