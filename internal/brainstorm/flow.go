package brainstorm

// Question ids of the built-in catalog.
const (
	QuestionTaskType               = "task_type"
	QuestionProjectDescription     = "project_description"
	QuestionTechStack              = "tech_stack"
	QuestionExistingCodeInfo       = "existing_code_info"
	QuestionTestRequirement        = "test_requirement"
	QuestionAdditionalRequirements = "additional_requirements"
)

// Flow returns the ordered question catalog. Each call returns a fresh
// copy, so callers may not affect one another.
func Flow() []Question {
	return []Question{
		// Quick assessment
		{
			ID:     QuestionTaskType,
			Phase:  PhaseAssessment,
			Prompt: "你想做什么类型的任务？",
			Type:   TypeSingle,
			Options: []Option{
				{Value: "greenfield", Label: "从零构建新项目", Description: "项目目录是空的，从头开始"},
				{Value: "feature", Label: "给现有项目加功能", Description: "已有代码，添加新功能"},
				{Value: "refactor", Label: "重构/优化代码", Description: "改进现有代码的质量或性能"},
				{Value: "bugfix", Label: "修复 Bug / 让测试通过", Description: "有失败的测试或已知 Bug"},
			},
			AllowOther: true,
			Required:   true,
		},
		// Requirements
		{
			ID:          QuestionProjectDescription,
			Phase:       PhaseRequirements,
			Prompt:      "用一句话描述你想做的事情",
			Description: "不需要太详细，先说个大概",
			Type:        TypeText,
			Required:    true,
		},
		{
			ID:     QuestionTechStack,
			Phase:  PhaseTechnical,
			Prompt: "你想用什么技术栈？",
			Type:   TypeSingle,
			Options: []Option{
				{Value: "node", Label: "Node.js + Express/Fastify"},
				{Value: "python", Label: "Python + FastAPI/Flask"},
				{Value: "go", Label: "Go + Gin/Echo"},
				{Value: "rust", Label: "Rust + Axum/Actix"},
				{Value: "react", Label: "React + TypeScript"},
				{Value: "svelte", Label: "Svelte + TypeScript"},
			},
			AllowOther: true,
			Required:   true,
			Condition: &Condition{
				QuestionID: QuestionTaskType,
				Values:     []string{"greenfield"},
			},
		},
		{
			ID:          QuestionExistingCodeInfo,
			Phase:       PhaseRequirements,
			Prompt:      "项目里有什么需要我了解的？",
			Description: "比如使用了什么框架、有什么特殊约定",
			Type:        TypeText,
			Condition: &Condition{
				QuestionID: QuestionTaskType,
				Values:     []string{"feature", "refactor", "bugfix"},
			},
		},
		// Acceptance criteria
		{
			ID:     QuestionTestRequirement,
			Phase:  PhaseCriteria,
			Prompt: "需要写测试吗？",
			Type:   TypeSingle,
			Options: []Option{
				{Value: "full", Label: "完整测试", Description: "单元测试 + 集成测试，覆盖率 > 80%"},
				{Value: "basic", Label: "基础测试", Description: "核心功能有测试即可"},
				{Value: "none", Label: "不需要测试", Description: "只要代码能跑就行"},
			},
			Required: true,
		},
		{
			ID:          QuestionAdditionalRequirements,
			Phase:       PhaseCriteria,
			Prompt:      "还有其他要求吗？",
			Description: "比如代码风格、文档、特定的库等",
			Type:        TypeText,
		},
	}
}

// QuestionByID returns the catalog question with the given id.
func QuestionByID(id string) (Question, bool) {
	for _, q := range Flow() {
		if q.ID == id {
			return q, true
		}
	}
	return Question{}, false
}

// ValidateFlow checks that ids are unique and non-empty and that every
// condition refers to a question appearing earlier in the flow.
func ValidateFlow(flow []Question) error {
	seen := make(map[string]bool, len(flow))
	all := make(map[string]bool, len(flow))
	for _, q := range flow {
		all[q.ID] = true
	}

	for _, q := range flow {
		if q.ID == "" {
			return &FlowError{Err: ErrEmptyID}
		}
		if seen[q.ID] {
			return &FlowError{QuestionID: q.ID, Err: ErrDuplicateQuestion}
		}
		if q.Condition != nil {
			dep := q.Condition.QuestionID
			switch {
			case !all[dep]:
				return &FlowError{QuestionID: q.ID, DependsOn: dep, Err: ErrUnknownDependency}
			case !seen[dep]:
				return &FlowError{QuestionID: q.ID, DependsOn: dep, Err: ErrForwardDependency}
			}
		}
		seen[q.ID] = true
	}
	return nil
}
