package cmd

import (
	"fmt"
	"io"

	"github.com/jywlabs/ralph/internal/brainstorm"
	"github.com/jywlabs/ralph/internal/config"
	"github.com/jywlabs/ralph/internal/output"
	"github.com/jywlabs/ralph/internal/plan"
	"github.com/jywlabs/ralph/internal/prompt"
	"github.com/spf13/cobra"
)

var (
	renderProjectFlag string
	renderNameFlag    string
	renderAnswersFlag string
	renderDocFlag     bool
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a prompt from an answers file",
	Long: `Render the task prompt from a YAML or JSON answers file and print it.

Keys are question ids (see 'ralph questions'). Lists are read as
multi-select answers. Preset answers from .ralph/config.yaml apply first.

With --doc the design document is also written to docs/plans/.

Examples:
  ralph render --answers answers.yaml
  ralph render -a answers.json --doc`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := renderOptions{
			ProjectDir:  renderProjectFlag,
			ProjectName: renderNameFlag,
			AnswersFile: renderAnswersFlag,
			WriteDoc:    renderDocFlag,
		}
		return runRender(opts, cmd.OutOrStdout(), cmd.ErrOrStderr())
	},
}

func init() {
	renderCmd.Flags().StringVarP(&renderProjectFlag, "project", "p", ".", "Project directory")
	renderCmd.Flags().StringVarP(&renderNameFlag, "name", "n", "", "Project name (default: from config or directory name)")
	renderCmd.Flags().StringVarP(&renderAnswersFlag, "answers", "a", "", "YAML or JSON answers file (required)")
	renderCmd.Flags().BoolVar(&renderDocFlag, "doc", false, "Also write the design document")
	renderCmd.MarkFlagRequired("answers")
	rootCmd.AddCommand(renderCmd)
}

type renderOptions struct {
	ProjectDir  string
	ProjectName string
	AnswersFile string
	WriteDoc    bool
}

func runRender(opts renderOptions, out, errOut io.Writer) error {
	cfg, err := config.Load(opts.ProjectDir)
	if err != nil {
		return err
	}
	answers, err := presetAnswers(cfg, opts.AnswersFile)
	if err != nil {
		return err
	}

	status := output.New(errOut)
	status.Missing(brainstorm.DefaultResolver().Missing(answers))

	rendered := prompt.Render(answers)
	fmt.Fprint(out, rendered)

	if !opts.WriteDoc {
		return nil
	}
	name := cfg.ProjectName
	if opts.ProjectName != "" {
		name = opts.ProjectName
	}
	path, err := plan.GenerateDesignDoc(name, opts.ProjectDir, answers, rendered)
	if err != nil {
		return err
	}
	status.DocWritten(path)
	return nil
}
