package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jywlabs/ralph/internal/brainstorm"
	"github.com/jywlabs/ralph/internal/output"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var questionsFormatFlag string

var questionsCmd = &cobra.Command{
	Use:   "questions",
	Short: "List the questionnaire",
	Long: `List every question asked by 'ralph brainstorm', in order, with its
options and the condition that makes it appear.

Use --format yaml or --format json to drive another UI from the catalog.

Examples:
  ralph questions
  ralph questions -f json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runQuestions(questionsFormatFlag, cmd.OutOrStdout())
	},
}

func init() {
	questionsCmd.Flags().StringVarP(&questionsFormatFlag, "format", "f", "text", "Output format: text, yaml, json")
	rootCmd.AddCommand(questionsCmd)
}

func runQuestions(format string, out io.Writer) error {
	flow := brainstorm.Flow()

	switch format {
	case "yaml":
		data, err := yaml.Marshal(flow)
		if err != nil {
			return fmt.Errorf("failed to encode questions: %w", err)
		}
		_, err = out.Write(data)
		return err
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(flow)
	case "text":
		output.New(out).Questions(flow)
		return nil
	default:
		return fmt.Errorf("unknown format %q (want text, yaml or json)", format)
	}
}
