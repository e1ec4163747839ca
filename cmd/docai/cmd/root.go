package cmd

import (
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/timetoact/docai/internal/config"
	"github.com/timetoact/docai/internal/log"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "docai",
	Short: "TimeToAct DocumentAI parser",
	Long: `docai converts TimeToAct DocumentAI plain-text documents into
structured JSON.

Commands:
  parse     - Parse a document and output JSON
  validate  - Parse a document and report element counts
  test      - Batch-parse a directory of sample documents`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default: ./docai.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
}

// Exit codes shared by the parse, validate, and test commands
const (
	exitOK         = 0
	exitFileError  = 1
	exitParseError = 2
	exitUnexpected = 3
)

// loadConfig loads the CLI configuration, honoring --config
func loadConfig() (*config.Config, error) {
	if cfgFile != "" {
		return config.Load(cfgFile)
	}
	return config.LoadDefault()
}

// newLogger builds the CLI logger with a per-invocation request ID.
// Verbose mode forces debug level regardless of configuration.
func newLogger(cfg *config.Config) *log.Logger {
	level, err := log.ParseLevel(cfg.General.LogLevel)
	if err != nil {
		level = log.DefaultLevel()
	}
	if verbose {
		level = log.LevelDebug
	}

	logger := log.NewWithConfig(log.Config{
		Level: level,
		Name:  "docai",
		JSON:  cfg.General.LogFormat == "json",
	})
	return logger.WithRequestID(uuid.NewString())
}
