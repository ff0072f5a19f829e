package cmd

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/jywlabs/ralph/internal/debug"
	"github.com/jywlabs/ralph/internal/template"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "ralph",
	Short: "Ralph - Brainstorm a task into an agent prompt and design doc",
	Long: `Ralph walks you through a short questionnaire about the task you want
an AI coding agent to do, then writes a task prompt for the Ralph loop and a
design document into your project.

Workflow:
  ralph init                      Create .ralph/config.yaml
  ralph brainstorm                Answer questions, write prompt and design doc
  ralph render --answers a.yaml   Render the prompt from an answers file

Commands:
  init        Initialize .ralph/ directory
  questions   List the questionnaire
  brainstorm  Run the interactive questionnaire
  render      Render a prompt from an answers file
  config      Show current configuration
  version     Show version info`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return loadEnv(template.EnvFile)
	},
}

// loadEnv loads a .env file if present. Variables already set in the
// environment win.
func loadEnv(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		debug.Init()
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return err
	}
	debug.Init()
	debug.Log("loaded %s", path)
	return nil
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
