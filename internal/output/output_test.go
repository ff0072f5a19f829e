package output

import (
	"bytes"
	"testing"

	"github.com/jywlabs/ralph/internal/brainstorm"
)

func TestQuestion(t *testing.T) {
	tests := []struct {
		name     string
		q        brainstorm.Question
		expected string
	}{
		{
			name:     "required text",
			q:        brainstorm.Question{ID: "desc", Phase: brainstorm.PhaseRequirements, Prompt: "What?", Type: brainstorm.TypeText, Required: true},
			expected: "2. [desc] What? *\n   phase: requirements, type: text\n",
		},
		{
			name: "conditional single with other",
			q: brainstorm.Question{
				ID: "stack", Phase: brainstorm.PhaseTechnical, Prompt: "Stack?", Type: brainstorm.TypeSingle,
				Options:    []brainstorm.Option{{Value: "go", Label: "Go"}},
				AllowOther: true,
				Condition:  &brainstorm.Condition{QuestionID: "kind", Values: []string{"a", "b"}},
			},
			expected: "2. [stack] Stack?\n   phase: technical, type: single\n   when kind is one of: a, b\n   - go: Go\n   - (other values accepted)\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			New(&buf).Question(2, tt.q)
			if buf.String() != tt.expected {
				t.Errorf("Question() = %q, want %q", buf.String(), tt.expected)
			}
		})
	}
}

func TestQuestions_Numbering(t *testing.T) {
	var buf bytes.Buffer
	New(&buf).Questions(brainstorm.Flow())
	if !bytes.HasPrefix(buf.Bytes(), []byte("1. [task_type] ")) {
		t.Errorf("output starts with %q", buf.String()[:20])
	}
	if !bytes.Contains(buf.Bytes(), []byte("6. [additional_requirements] ")) {
		t.Error("last question not numbered 6")
	}
}

func TestMissing(t *testing.T) {
	tests := []struct {
		name     string
		ids      []string
		expected string
	}{
		{"none", nil, ""},
		{"one", []string{"a"}, "warning: unanswered required questions: a\n"},
		{"several", []string{"a", "b"}, "warning: unanswered required questions: a, b\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var qs []brainstorm.Question
			for _, id := range tt.ids {
				qs = append(qs, brainstorm.Question{ID: id})
			}
			var buf bytes.Buffer
			New(&buf).Missing(qs)
			if buf.String() != tt.expected {
				t.Errorf("Missing() = %q, want %q", buf.String(), tt.expected)
			}
		})
	}
}

func TestDocWritten(t *testing.T) {
	var buf bytes.Buffer
	New(&buf).DocWritten("docs/plans/x.md")
	if buf.String() != "Design: docs/plans/x.md\n" {
		t.Errorf("DocWritten() = %q", buf.String())
	}
}
