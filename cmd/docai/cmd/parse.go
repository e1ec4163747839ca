package cmd

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/timetoact/docai/document"
	"github.com/timetoact/docai/internal/log"
	"github.com/timetoact/docai/parser"
)

var (
	parseOutput  string
	parseCompact bool
)

var parseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "Parse a DocumentAI file and output JSON",
	Long: `Parses a TimeToAct DocumentAI document and writes the resulting
tree as JSON to stdout or a file.

Exit codes:
  0 - success
  1 - input file not found
  2 - parse error
  3 - unexpected error`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if code := runParse(args[0]); code != exitOK {
			os.Exit(code)
		}
	},
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().StringVarP(&parseOutput, "output", "o", "", "Output file (default: stdout)")
	parseCmd.Flags().BoolVar(&parseCompact, "compact", false, "Compact JSON instead of pretty-printed")
}

func runParse(inputFile string) int {
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
		printError("❌ Parse error: %v", err)
		return exitParseError
	}

	pretty := cfg.Output.Pretty && !parseCompact
	out, err := document.EncodeJSON(root, pretty)
	if err != nil {
		printError("Unexpected error: %v", err)
		return exitUnexpected
	}
	out = append(out, '\n')

	if parseOutput == "" {
		os.Stdout.Write(out)
		return exitOK
	}

	if err := os.WriteFile(parseOutput, out, 0o644); err != nil {
		printError("Unexpected error: %v", err)
		return exitUnexpected
	}
	printSuccess("✅ Output written to %s", parseOutput)
	return exitOK
}

// readInputFile reads a document, mapping a missing file to exit code 1
func readInputFile(path string, logger *log.Logger) (string, int) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			printError("Error: File '%s' not found", path)
			return "", exitFileError
		}
		printError("Unexpected error: %v", err)
		return "", exitUnexpected
	}
	logger.Debug("read input file", log.Fields{"file": path, "bytes": len(data)})
	return string(data), exitOK
}
