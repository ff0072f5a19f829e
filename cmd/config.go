package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/jywlabs/ralph/internal/config"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	Long: `Show the effective Ralph configuration.

Reads .ralph/config.yaml if present, otherwise shows default values.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConfig(".", cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}

// effectiveConfig is the YAML view printed by 'ralph config'.
type effectiveConfig struct {
	ProjectName string `yaml:"projectName"`
	PromptFile  string `yaml:"promptFile"`
	Answers     any    `yaml:"answers,omitempty"`
}

func runConfig(projectDir string, out io.Writer) error {
	cfg, err := config.Load(projectDir)
	if err != nil {
		return err
	}

	if _, err := os.Stat(config.Path(projectDir)); os.IsNotExist(err) {
		fmt.Fprintln(out, "No .ralph/config.yaml found (using defaults)")
		fmt.Fprintln(out, "Run 'ralph init' to create a configuration file.")
	} else {
		fmt.Fprintf(out, "Current configuration (%s):\n", config.Path(projectDir))
	}
	fmt.Fprintln(out)

	view := effectiveConfig{
		ProjectName: cfg.ProjectName,
		PromptFile:  cfg.PromptFile,
	}
	if cfg.Answers.Len() > 0 {
		view.Answers = cfg.Answers
	}

	data, err := yaml.Marshal(view)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	fmt.Fprint(out, string(data))
	return nil
}
