package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jywlabs/ralph/internal/brainstorm"
	"github.com/jywlabs/ralph/internal/prompt"
)

func TestRunRender(t *testing.T) {
	tests := []struct {
		name        string
		answers     string
		writeDoc    bool
		wantOut     []string
		wantErrOut  []string
		wantMissing []string
	}{
		{
			name:       "greenfield with tech stack",
			answers:    "task_type: greenfield\nproject_description: todo app\ntech_stack: react\ntest_requirement: basic\n",
			wantOut:    []string{"## 技术栈\n\nreact\n", "从零构建一个新项目"},
			wantErrOut: nil,
		},
		{
			name:        "json answers",
			answers:     `{"task_type": "refactor", "project_description": "split", "test_requirement": "none"}`,
			wantOut:     []string{"重构和优化现有代码", "不需要测试"},
			wantMissing: []string{"## 技术栈"},
		},
		{
			name:       "warns about missing required answers",
			answers:    "task_type: greenfield\n",
			wantErrOut: []string{"unanswered required questions: project_description, tech_stack, test_requirement"},
		},
		{
			name:       "writes doc",
			answers:    "task_type: feature\nproject_description: search\ntest_requirement: full\n",
			writeDoc:   true,
			wantErrOut: []string{"Design: ", "-feature-design.md"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeFile(t, dir, "answers.yaml", tt.answers)

			var out, errOut bytes.Buffer
			opts := renderOptions{
				ProjectDir:  dir,
				AnswersFile: filepath.Join(dir, "answers.yaml"),
				WriteDoc:    tt.writeDoc,
			}
			if err := runRender(opts, &out, &errOut); err != nil {
				t.Fatalf("runRender() error: %v", err)
			}

			for _, want := range tt.wantOut {
				if !strings.Contains(out.String(), want) {
					t.Errorf("output missing %q", want)
				}
			}
			for _, missing := range tt.wantMissing {
				if strings.Contains(out.String(), missing) {
					t.Errorf("output unexpectedly contains %q", missing)
				}
			}
			for _, want := range tt.wantErrOut {
				if !strings.Contains(errOut.String(), want) {
					t.Errorf("stderr %q missing %q", errOut.String(), want)
				}
			}
			if !strings.Contains(out.String(), prompt.CompletionMarker) {
				t.Error("prompt missing completion marker")
			}

			_, statErr := os.Stat(filepath.Join(dir, "docs", "plans"))
			if tt.writeDoc && statErr != nil {
				t.Errorf("plans directory not created: %v", statErr)
			}
			if !tt.writeDoc && !os.IsNotExist(statErr) {
				t.Error("plans directory created without --doc")
			}
		})
	}
}

func TestRunRender_MatchesRenderer(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "answers.yaml", "task_type: bugfix\nproject_description: fix X\n")

	var out bytes.Buffer
	opts := renderOptions{ProjectDir: dir, AnswersFile: filepath.Join(dir, "answers.yaml")}
	if err := runRender(opts, &out, &bytes.Buffer{}); err != nil {
		t.Fatalf("runRender() error: %v", err)
	}

	answers := brainstorm.NewAnswers()
	answers.Set("task_type", brainstorm.Text("bugfix"))
	answers.Set("project_description", brainstorm.Text("fix X"))
	if out.String() != prompt.Render(answers) {
		t.Error("render output differs from prompt.Render")
	}
}

func TestRunRender_MissingAnswersFile(t *testing.T) {
	dir := t.TempDir()
	opts := renderOptions{ProjectDir: dir, AnswersFile: filepath.Join(dir, "nope.yaml")}
	err := runRender(opts, &bytes.Buffer{}, &bytes.Buffer{})
	if err == nil || !strings.Contains(err.Error(), "failed to read answers") {
		t.Errorf("error = %v, want read failure", err)
	}
}

func TestRunRender_RejectsWrongShapedAnswers(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "answers.yaml", "task_type: 42\nproject_description: fix X\n")

	var out bytes.Buffer
	opts := renderOptions{ProjectDir: dir, AnswersFile: filepath.Join(dir, "answers.yaml")}
	err := runRender(opts, &out, &bytes.Buffer{})
	if err == nil || !strings.Contains(err.Error(), "invalid answers") {
		t.Errorf("runRender() error = %v, want invalid answers", err)
	}
	if out.Len() != 0 {
		t.Error("prompt rendered from invalid answers")
	}
}
