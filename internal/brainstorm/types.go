package brainstorm

import (
	"errors"
	"fmt"
)

// QuestionType identifies how a question is answered.
type QuestionType string

const (
	TypeSingle   QuestionType = "single"
	TypeMultiple QuestionType = "multiple"
	TypeText     QuestionType = "text"
)

// Phase labels group questions for display. They are never evaluated.
const (
	PhaseAssessment   = "assessment"
	PhaseRequirements = "requirements"
	PhaseTechnical    = "technical"
	PhaseCriteria     = "criteria"
)

// Option is one selectable value of a select question.
type Option struct {
	Value       string `yaml:"value" json:"value"`
	Label       string `yaml:"label" json:"label"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
}

// Condition makes a question relevant only when the answer to
// QuestionID is one of Values.
type Condition struct {
	QuestionID string   `yaml:"questionId" json:"questionId"`
	Values     []string `yaml:"values" json:"values"`
}

// Accepts reports whether value is one of the accepted values.
func (c *Condition) Accepts(value string) bool {
	for _, v := range c.Values {
		if v == value {
			return true
		}
	}
	return false
}

// Question is an immutable question template.
type Question struct {
	ID          string       `yaml:"id" json:"id"`
	Phase       string       `yaml:"phase" json:"phase"`
	Prompt      string       `yaml:"question" json:"question"`
	Description string       `yaml:"description,omitempty" json:"description,omitempty"`
	Type        QuestionType `yaml:"questionType" json:"questionType"`
	Options     []Option     `yaml:"options,omitempty" json:"options"`
	AllowOther  bool         `yaml:"allowOther" json:"allowOther"`
	Required    bool         `yaml:"required" json:"required"`
	Condition   *Condition   `yaml:"condition,omitempty" json:"condition,omitempty"`
}

// HasOption reports whether value matches one of the question's options.
func (q *Question) HasOption(value string) bool {
	for _, opt := range q.Options {
		if opt.Value == value {
			return true
		}
	}
	return false
}

// OptionLabel returns the label for value, or value itself when it is not
// one of the options.
func (q *Question) OptionLabel(value string) string {
	for _, opt := range q.Options {
		if opt.Value == value {
			return opt.Label
		}
	}
	return value
}

// Catalog errors.
var (
	ErrEmptyID           = errors.New("question id is empty")
	ErrDuplicateQuestion = errors.New("duplicate question id")
	ErrUnknownDependency = errors.New("condition references unknown question")
	ErrForwardDependency = errors.New("condition references a later question")
)

// FlowError reports a broken question catalog.
type FlowError struct {
	QuestionID string
	DependsOn  string
	Err        error
}

func (e *FlowError) Error() string {
	if e.DependsOn != "" {
		return fmt.Sprintf("question %q: %v %q", e.QuestionID, e.Err, e.DependsOn)
	}
	return fmt.Sprintf("question %q: %v", e.QuestionID, e.Err)
}

func (e *FlowError) Unwrap() error { return e.Err }
