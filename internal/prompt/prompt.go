package prompt

import (
	"strings"

	"github.com/jywlabs/ralph/internal/brainstorm"
)

// CompletionMarker is the literal the executing agent prints when done.
const CompletionMarker = "<done>COMPLETE</done>"

const preamble = "你正在进行一个 Ralph Loop 任务。请仔细阅读以下要求，然后开始工作。\n"

const closing = "\n开始工作吧！\n"

// Section is one "## Title" block of the rendered prompt.
type Section struct {
	Title string
	Body  string
}

// String renders the section with its surrounding blank lines.
func (s Section) String() string {
	return "\n## " + s.Title + "\n\n" + s.Body + "\n"
}

// sectionBuilder returns a section, or false when it should be omitted.
type sectionBuilder func(answers *brainstorm.Answers) (Section, bool)

// builders are applied in this order.
var builders = []sectionBuilder{
	taskDescriptionSection,
	taskTypeSection,
	optionalTextSection("技术栈", brainstorm.QuestionTechStack),
	optionalTextSection("现有代码信息", brainstorm.QuestionExistingCodeInfo),
	testRequirementSection,
	optionalTextSection("其他要求", brainstorm.QuestionAdditionalRequirements),
	completionSection,
	workflowSection,
}

var taskTypeLabels = map[string]string{
	"greenfield": "从零构建一个新项目",
	"feature":    "给现有项目添加新功能",
	"refactor":   "重构和优化现有代码",
	"bugfix":     "修复 Bug 或让测试通过",
}

var testRequirementLabels = map[string]string{
	"full":  "完整测试覆盖（单元测试 + 集成测试，覆盖率 > 80%）",
	"basic": "基础测试（核心功能有测试即可）",
	"none":  "不需要测试",
}

// TaskTypeLabel maps a task type to its description. Unknown values are
// returned unchanged.
func TaskTypeLabel(taskType string) string {
	if label, ok := taskTypeLabels[taskType]; ok {
		return label
	}
	return taskType
}

// TestRequirementLabel maps a test requirement to its description.
// Unknown values are returned unchanged.
func TestRequirementLabel(req string) string {
	if label, ok := testRequirementLabels[req]; ok {
		return label
	}
	return req
}

// Sections returns the sections Render would emit, in order.
func Sections(answers *brainstorm.Answers) []Section {
	var out []Section
	for _, build := range builders {
		if s, ok := build(answers); ok {
			out = append(out, s)
		}
	}
	return out
}

// Render builds the task prompt for the answers. The output depends only
// on the answers, so equal inputs give byte-identical prompts.
func Render(answers *brainstorm.Answers) string {
	var b strings.Builder
	b.WriteString(preamble)
	for _, s := range Sections(answers) {
		b.WriteString(s.String())
	}
	b.WriteString(closing)
	return b.String()
}

func taskDescriptionSection(answers *brainstorm.Answers) (Section, bool) {
	return Section{
		Title: "任务描述",
		Body:  answers.TextOr(brainstorm.QuestionProjectDescription, ""),
	}, true
}

func taskTypeSection(answers *brainstorm.Answers) (Section, bool) {
	return Section{
		Title: "任务类型",
		Body:  TaskTypeLabel(answers.TextOr(brainstorm.QuestionTaskType, "unknown")),
	}, true
}

func testRequirementSection(answers *brainstorm.Answers) (Section, bool) {
	return Section{
		Title: "测试要求",
		Body:  TestRequirementLabel(answers.TextOr(brainstorm.QuestionTestRequirement, "basic")),
	}, true
}

func optionalTextSection(title, id string) sectionBuilder {
	return func(answers *brainstorm.Answers) (Section, bool) {
		text := answers.TextOr(id, "")
		if text == "" {
			return Section{}, false
		}
		return Section{Title: title, Body: text}, true
	}
}

func completionSection(*brainstorm.Answers) (Section, bool) {
	return Section{
		Title: "完成标准",
		Body:  "当你完成所有上述要求后，请输出以下内容表示任务完成：\n\n" + CompletionMarker,
	}, true
}

func workflowSection(*brainstorm.Answers) (Section, bool) {
	return Section{
		Title: "工作方式",
		Body: `1. 先分析当前代码状态（如果有）
2. 制定实施计划
3. 逐步实现，每完成一步就运行测试（如果有）
4. 遇到错误时，分析原因并修复
5. 全部完成后，输出完成信号`,
	}, true
}
