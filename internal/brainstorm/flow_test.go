package brainstorm

import (
	"errors"
	"testing"
)

func TestFlow_Order(t *testing.T) {
	want := []string{
		QuestionTaskType,
		QuestionProjectDescription,
		QuestionTechStack,
		QuestionExistingCodeInfo,
		QuestionTestRequirement,
		QuestionAdditionalRequirements,
	}
	flow := Flow()
	if len(flow) != len(want) {
		t.Fatalf("len(Flow()) = %d, want %d", len(flow), len(want))
	}
	for i, id := range want {
		if flow[i].ID != id {
			t.Errorf("Flow()[%d].ID = %q, want %q", i, flow[i].ID, id)
		}
	}
}

func TestFlow_IsValid(t *testing.T) {
	if err := ValidateFlow(Flow()); err != nil {
		t.Fatalf("ValidateFlow(Flow()) = %v, want nil", err)
	}
}

func TestFlow_ReturnsFreshCopy(t *testing.T) {
	a := Flow()
	a[0].Prompt = "changed"
	a[0].Options[0].Value = "changed"

	b := Flow()
	if b[0].Prompt == "changed" || b[0].Options[0].Value == "changed" {
		t.Error("mutating one Flow() result affected another")
	}
}

func TestFlow_TextQuestionsHaveNoOptions(t *testing.T) {
	for _, q := range Flow() {
		if q.Type == TypeText && len(q.Options) != 0 {
			t.Errorf("text question %q has %d options", q.ID, len(q.Options))
		}
		if q.Type != TypeText && len(q.Options) == 0 {
			t.Errorf("select question %q has no options", q.ID)
		}
	}
}

func TestQuestionByID(t *testing.T) {
	q, ok := QuestionByID(QuestionTechStack)
	if !ok {
		t.Fatal("QuestionByID(tech_stack) not found")
	}
	if q.Condition == nil || q.Condition.QuestionID != QuestionTaskType {
		t.Errorf("tech_stack condition = %+v, want dependency on task_type", q.Condition)
	}
	if _, ok := QuestionByID("missing"); ok {
		t.Error("QuestionByID(missing) found a question")
	}
}

func TestValidateFlow_Errors(t *testing.T) {
	tests := []struct {
		name    string
		flow    []Question
		wantErr error
	}{
		{
			name:    "empty id",
			flow:    []Question{{ID: ""}},
			wantErr: ErrEmptyID,
		},
		{
			name:    "duplicate id",
			flow:    []Question{{ID: "a"}, {ID: "a"}},
			wantErr: ErrDuplicateQuestion,
		},
		{
			name: "unknown dependency",
			flow: []Question{
				{ID: "a"},
				{ID: "b", Condition: &Condition{QuestionID: "nope", Values: []string{"x"}}},
			},
			wantErr: ErrUnknownDependency,
		},
		{
			name: "forward dependency",
			flow: []Question{
				{ID: "a", Condition: &Condition{QuestionID: "b", Values: []string{"x"}}},
				{ID: "b"},
			},
			wantErr: ErrForwardDependency,
		},
		{
			name: "self dependency",
			flow: []Question{
				{ID: "a", Condition: &Condition{QuestionID: "a", Values: []string{"x"}}},
			},
			wantErr: ErrForwardDependency,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFlow(tt.flow)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("ValidateFlow() error = %v, want %v", err, tt.wantErr)
			}
			var flowErr *FlowError
			if !errors.As(err, &flowErr) {
				t.Fatalf("ValidateFlow() error type = %T, want *FlowError", err)
			}
		})
	}
}

func TestFlowError_Message(t *testing.T) {
	err := &FlowError{QuestionID: "b", DependsOn: "nope", Err: ErrUnknownDependency}
	want := `question "b": condition references unknown question "nope"`
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}
