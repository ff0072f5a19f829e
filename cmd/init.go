package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/jywlabs/ralph/internal/template"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize .ralph/ directory",
	Long: `Initialize the .ralph/ directory in the current project.

Creates:
  .ralph/
    config.yaml    # Project name, prompt file, preset answers

After init, run 'ralph brainstorm' to describe your task.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInit(".", cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(projectDir string, out io.Writer) error {
	configDir := filepath.Join(projectDir, template.RalphDir)

	// Check if already initialized
	if _, err := os.Stat(configDir); err == nil {
		return fmt.Errorf("%s/ already exists", template.RalphDir)
	}

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create directories: %w", err)
	}

	// Create default files from templates
	for filename, content := range template.DefaultFiles() {
		filePath := filepath.Join(configDir, filename)
		if err := os.WriteFile(filePath, []byte(content), 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", filename, err)
		}
	}

	fmt.Fprintf(out, "Initialized %s/\n", template.RalphDir)
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Created:")
	fmt.Fprintf(out, "  %s/%s   - Project name, prompt file, preset answers\n", template.RalphDir, template.ConfigFile)
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Next steps:")
	fmt.Fprintln(out, "  1. Run: ralph brainstorm")
	return nil
}
