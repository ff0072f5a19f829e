package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/jywlabs/ralph/internal/brainstorm"
	"github.com/jywlabs/ralph/internal/config"
	"github.com/jywlabs/ralph/internal/debug"
	"github.com/jywlabs/ralph/internal/display"
	"github.com/jywlabs/ralph/internal/interview"
	"github.com/jywlabs/ralph/internal/plan"
	"github.com/spf13/cobra"
)

var (
	brainstormProjectFlag string
	brainstormNameFlag    string
	brainstormAnswersFlag string
)

var brainstormCmd = &cobra.Command{
	Use:   "brainstorm",
	Short: "Run the interactive questionnaire",
	Long: `Ask a short series of questions about the task, then write:

  docs/plans/<date>-<task-type>-design.md   Design document
  .ralph/prompt.md                          Prompt for the Ralph loop

Questions already answered in .ralph/config.yaml or in --answers are
skipped. A design document generated on the same day for the same task
type is overwritten.

Examples:
  ralph brainstorm
  ralph brainstorm --project ../shop --name shop
  ralph brainstorm --answers answers.yaml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := brainstormOptions{
			ProjectDir:  brainstormProjectFlag,
			ProjectName: brainstormNameFlag,
			AnswersFile: brainstormAnswersFlag,
		}
		return runBrainstorm(opts, cmd.InOrStdin(), cmd.OutOrStdout())
	},
}

func init() {
	brainstormCmd.Flags().StringVarP(&brainstormProjectFlag, "project", "p", ".", "Project directory")
	brainstormCmd.Flags().StringVarP(&brainstormNameFlag, "name", "n", "", "Project name (default: from config or directory name)")
	brainstormCmd.Flags().StringVarP(&brainstormAnswersFlag, "answers", "a", "", "YAML or JSON file with preset answers")
	rootCmd.AddCommand(brainstormCmd)
}

type brainstormOptions struct {
	ProjectDir  string
	ProjectName string
	AnswersFile string
}

func runBrainstorm(opts brainstormOptions, in io.Reader, out io.Writer) error {
	cfg, err := config.Load(opts.ProjectDir)
	if err != nil {
		return err
	}

	preset, err := presetAnswers(cfg, opts.AnswersFile)
	if err != nil {
		return err
	}

	name := cfg.ProjectName
	if opts.ProjectName != "" {
		name = opts.ProjectName
	}

	d := display.NewDisplay(out)
	d.ShowCommandHeader("Brainstorm", name)
	if preset.Len() > 0 {
		d.ShowInfo("已载入 %d 个预设答案", preset.Len())
	}

	answers, err := interview.New(brainstorm.DefaultResolver(), in, d).Run(preset)
	if err != nil {
		d.ShowError(err.Error())
		return err
	}
	debug.Log("collected %d answers", answers.Len())

	art, err := plan.Generate(name, opts.ProjectDir, answers)
	if err != nil {
		d.ShowError(err.Error())
		return err
	}

	promptPath := filepath.Join(opts.ProjectDir, cfg.PromptFile)
	if err := writePromptFile(promptPath, art.Prompt); err != nil {
		d.ShowError(err.Error())
		return err
	}

	d.ShowCommandSuccess("设计文档已生成",
		fmt.Sprintf("设计文档: %s", art.DocPath),
		fmt.Sprintf("Prompt: %s", promptPath),
	)
	d.ShowNextSteps([]string{
		fmt.Sprintf("$EDITOR %s    # 检查设计文档", art.DocPath),
	})
	return nil
}

// presetAnswers merges config presets with an answers file; the file wins.
func presetAnswers(cfg *config.Config, answersFile string) (*brainstorm.Answers, error) {
	preset := cfg.Answers.Clone()
	if answersFile == "" {
		return preset, nil
	}
	fromFile, err := brainstorm.LoadAnswersFile(answersFile)
	if err != nil {
		return nil, err
	}
	if err := brainstorm.ValidateAnswers(fromFile); err != nil {
		return nil, fmt.Errorf("invalid answers in %s: %w", answersFile, err)
	}
	preset.Merge(fromFile)
	return preset, nil
}

func writePromptFile(path, content string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create prompt directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write prompt: %w", err)
	}
	return nil
}
