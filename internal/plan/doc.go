package plan

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jywlabs/ralph/internal/brainstorm"
	"github.com/jywlabs/ralph/internal/prompt"
	"github.com/jywlabs/ralph/internal/template"
)

// Artifact is the output of one brainstorm: the prompt handed to the agent
// and the design document written into the project.
type Artifact struct {
	Prompt  string
	Doc     string
	DocPath string
}

// Generate renders the prompt for answers and writes the design document
// under projectPath.
func Generate(projectName, projectPath string, answers *brainstorm.Answers) (*Artifact, error) {
	return generate(projectName, projectPath, answers, time.Now().UTC())
}

func generate(projectName, projectPath string, answers *brainstorm.Answers, now time.Time) (*Artifact, error) {
	rendered := prompt.Render(answers)
	doc := RenderDesignDoc(projectName, answers, rendered, now)
	path, err := writeDesignDoc(DesignDocPath(projectPath, answers, now), doc)
	if err != nil {
		return nil, err
	}
	return &Artifact{Prompt: rendered, Doc: doc, DocPath: path}, nil
}

// GenerateDesignDoc writes the design document for answers and returns its
// path. An existing document with the same name is overwritten.
func GenerateDesignDoc(projectName, projectPath string, answers *brainstorm.Answers, renderedPrompt string) (string, error) {
	now := time.Now().UTC()
	doc := RenderDesignDoc(projectName, answers, renderedPrompt, now)
	return writeDesignDoc(DesignDocPath(projectPath, answers, now), doc)
}

func writeDesignDoc(path, doc string) (string, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", fmt.Errorf("failed to create plans directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		return "", fmt.Errorf("failed to write design doc: %w", err)
	}
	return path, nil
}

// DesignDocPath returns <projectPath>/docs/plans/<date>-<taskType>-design.md.
func DesignDocPath(projectPath string, answers *brainstorm.Answers, now time.Time) string {
	name := fmt.Sprintf("%s-%s-design.md", now.UTC().Format("2006-01-02"), fileTaskType(answers))
	return filepath.Join(projectPath, template.PlansDir, name)
}

// fileTaskType keeps a free-form task type from escaping the plans directory.
func fileTaskType(answers *brainstorm.Answers) string {
	taskType := answers.TextOr(brainstorm.QuestionTaskType, "task")
	taskType = strings.NewReplacer("/", "-", `\`, "-").Replace(taskType)
	if strings.Trim(taskType, ".-") == "" {
		return "task"
	}
	return taskType
}

// Completion criteria listed in every design document.
var completionCriteria = []string{
	"实现所有描述的功能",
	"代码能够正常运行",
	"满足测试要求",
	"输出完成信号 `" + prompt.CompletionMarker + "`",
}

// RenderDesignDoc builds the markdown design document.
func RenderDesignDoc(projectName string, answers *brainstorm.Answers, renderedPrompt string, now time.Time) string {
	techStack := answers.TextOr(brainstorm.QuestionTechStack, "")
	if techStack == "" {
		techStack = "未指定"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# %s 设计文档\n\n", projectName)
	fmt.Fprintf(&b, "> 生成时间: %s\n", now.UTC().Format("2006-01-02 15:04:05 UTC"))
	b.WriteString("> 由 Ralph Brainstorm 生成\n\n")

	b.WriteString("## 概述\n\n")
	fmt.Fprintf(&b, "%s\n\n", answers.TextOr(brainstorm.QuestionProjectDescription, ""))

	b.WriteString("## 需求分析\n\n")
	b.WriteString("### 用户回答摘要\n\n")
	b.WriteString("| 问题 | 回答 |\n")
	b.WriteString("|------|------|\n")
	for _, id := range answers.Keys() {
		answer, _ := answers.Get(id)
		fmt.Fprintf(&b, "| %s | %s |\n", tableCell(id), tableCell(FormatAnswer(answer)))
	}
	b.WriteString("\n")

	b.WriteString("### 功能需求\n\n")
	fmt.Fprintf(&b, "- 任务类型: %s\n", answers.TextOr(brainstorm.QuestionTaskType, "task"))
	fmt.Fprintf(&b, "- 技术栈: %s\n", techStack)
	fmt.Fprintf(&b, "- 测试要求: %s\n", answers.TextOr(brainstorm.QuestionTestRequirement, "basic"))
	if additional := answers.TextOr(brainstorm.QuestionAdditionalRequirements, ""); additional != "" {
		fmt.Fprintf(&b, "- 其他要求: %s\n", additional)
	}
	b.WriteString("\n")

	b.WriteString("## 完成标准\n\n")
	b.WriteString("任务完成的标准：\n")
	for _, c := range completionCriteria {
		fmt.Fprintf(&b, "- [ ] %s\n", c)
	}
	b.WriteString("\n")

	b.WriteString("## 生成的 Prompt\n\n")
	fmt.Fprintf(&b, "```\n%s\n```\n\n", renderedPrompt)
	b.WriteString("---\n\n")
	b.WriteString("*此文档由 Ralph 自动生成，可手动编辑。*\n")

	return b.String()
}

// FormatAnswer renders an answer for the summary table: text as is,
// choices comma-joined in order, the string items of any other list
// comma-joined, anything else as JSON.
func FormatAnswer(a brainstorm.Answer) string {
	switch a.Kind() {
	case brainstorm.KindText:
		s, _ := a.Text()
		return s
	case brainstorm.KindChoices:
		c, _ := a.Choices()
		return strings.Join(c, ", ")
	default:
		v, _ := a.Other()
		if items, ok := v.([]any); ok {
			var strs []string
			for _, item := range items {
				if s, ok := item.(string); ok {
					strs = append(strs, s)
				}
			}
			return strings.Join(strs, ", ")
		}
		data, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprint(v)
		}
		return string(data)
	}
}

// tableCell keeps a value on a single markdown table row.
func tableCell(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	s = strings.ReplaceAll(s, "\r\n", "<br>")
	return strings.ReplaceAll(s, "\n", "<br>")
}
