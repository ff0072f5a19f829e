package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/jywlabs/ralph/internal/prompt"
)

func TestRunBrainstorm(t *testing.T) {
	dir := t.TempDir()
	// bugfix, description, existing code, full tests, extra requirement
	input := "4\n登录失败\n使用 chi 路由\n1\n补充回归测试\n"

	var out bytes.Buffer
	opts := brainstormOptions{ProjectDir: dir, ProjectName: "demo"}
	if err := runBrainstorm(opts, strings.NewReader(input), &out); err != nil {
		t.Fatalf("runBrainstorm() error: %v\n%s", err, out.String())
	}

	today := time.Now().UTC().Format("2006-01-02")
	docPath := filepath.Join(dir, "docs", "plans", today+"-bugfix-design.md")
	doc, err := os.ReadFile(docPath)
	if err != nil {
		t.Fatalf("design doc not written: %v", err)
	}
	for _, want := range []string{"# demo 设计文档", "登录失败", "| existing_code_info | 使用 chi 路由 |", "- 其他要求: 补充回归测试"} {
		if !strings.Contains(string(doc), want) {
			t.Errorf("design doc missing %q", want)
		}
	}

	promptData, err := os.ReadFile(filepath.Join(dir, ".ralph", "prompt.md"))
	if err != nil {
		t.Fatalf("prompt file not written: %v", err)
	}
	if !strings.Contains(string(promptData), prompt.CompletionMarker) {
		t.Error("prompt file missing completion marker")
	}
	if !strings.Contains(out.String(), "设计文档已生成") {
		t.Errorf("output missing success message:\n%s", out.String())
	}
}

func TestRunBrainstorm_UsesPresets(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, ".ralph"), "config.yaml",
		"projectName: shop\npromptFile: PROMPT.md\nanswers:\n  test_requirement: none\n")
	answersFile := filepath.Join(dir, "answers.yaml")
	writeFile(t, dir, "answers.yaml", "task_type: greenfield\ntech_stack: go\n")

	// description, then skip additional requirements
	input := "做一个短链服务\n\n"
	var out bytes.Buffer
	opts := brainstormOptions{ProjectDir: dir, AnswersFile: answersFile}
	if err := runBrainstorm(opts, strings.NewReader(input), &out); err != nil {
		t.Fatalf("runBrainstorm() error: %v\n%s", err, out.String())
	}

	data, err := os.ReadFile(filepath.Join(dir, "PROMPT.md"))
	if err != nil {
		t.Fatalf("prompt file not written: %v", err)
	}
	got := string(data)
	for _, want := range []string{"做一个短链服务", "## 技术栈\n\ngo\n", "## 测试要求\n\n不需要测试\n"} {
		if !strings.Contains(got, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
	if !strings.Contains(out.String(), "shop") {
		t.Error("header does not show configured project name")
	}
	if !strings.Contains(out.String(), "已载入 3 个预设答案") {
		t.Error("preset count not shown")
	}
}

func TestRunBrainstorm_InputClosed(t *testing.T) {
	dir := t.TempDir()
	var out bytes.Buffer
	err := runBrainstorm(brainstormOptions{ProjectDir: dir}, strings.NewReader(""), &out)
	if err == nil {
		t.Fatal("expected error when input ends early")
	}
	if !strings.Contains(out.String(), "出错了") {
		t.Errorf("error box not shown:\n%s", out.String())
	}
	if _, statErr := os.Stat(filepath.Join(dir, "docs")); !os.IsNotExist(statErr) {
		t.Error("design doc written despite incomplete answers")
	}
}

func TestRunBrainstorm_RejectsWrongShapedAnswersFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "answers.yaml", "task_type: 42\n")

	opts := brainstormOptions{ProjectDir: dir, AnswersFile: filepath.Join(dir, "answers.yaml")}
	err := runBrainstorm(opts, strings.NewReader("fix X\n3\n\n"), &bytes.Buffer{})
	if err == nil || !strings.Contains(err.Error(), `question "task_type" expects a single value`) {
		t.Errorf("runBrainstorm() error = %v, want shape error", err)
	}
}
