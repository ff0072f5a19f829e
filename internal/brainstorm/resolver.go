package brainstorm

import (
	"fmt"
	"strings"
)

// Resolver evaluates question visibility against an answer map.
type Resolver struct {
	flow  []Question
	index map[string]int
}

// NewResolver validates flow and returns a resolver for it.
func NewResolver(flow []Question) (*Resolver, error) {
	if err := ValidateFlow(flow); err != nil {
		return nil, err
	}
	r := &Resolver{
		flow:  make([]Question, len(flow)),
		index: make(map[string]int, len(flow)),
	}
	copy(r.flow, flow)
	for i, q := range flow {
		r.index[q.ID] = i
	}
	return r, nil
}

// The built-in catalog is checked once at startup.
var defaultResolver = mustResolver(Flow())

func mustResolver(flow []Question) *Resolver {
	r, err := NewResolver(flow)
	if err != nil {
		panic(fmt.Sprintf("brainstorm: invalid question flow: %v", err))
	}
	return r
}

// DefaultResolver returns the resolver for the built-in catalog.
func DefaultResolver() *Resolver { return defaultResolver }

// IsVisible reports whether q is relevant for the built-in catalog.
func IsVisible(q Question, answers *Answers) (bool, error) {
	return defaultResolver.IsVisible(q, answers)
}

// Flow returns the resolver's questions in order.
func (r *Resolver) Flow() []Question {
	flow := make([]Question, len(r.flow))
	copy(flow, r.flow)
	return flow
}

// Question returns the question with the given id.
func (r *Resolver) Question(id string) (Question, bool) {
	i, ok := r.index[id]
	if !ok {
		return Question{}, false
	}
	return r.flow[i], true
}

// IsVisible reports whether q is relevant given answers. A question without
// a condition is always visible. Otherwise its prerequisite must itself be
// visible and answered with an accepted value; for a multi-select
// prerequisite any accepted value is enough. A condition naming a question
// outside the flow is a catalog error.
func (r *Resolver) IsVisible(q Question, answers *Answers) (bool, error) {
	return r.visible(q, answers, len(r.flow))
}

func (r *Resolver) visible(q Question, answers *Answers, depth int) (bool, error) {
	if q.Condition == nil {
		return true, nil
	}
	depID := q.Condition.QuestionID
	i, ok := r.index[depID]
	if !ok {
		return false, &FlowError{QuestionID: q.ID, DependsOn: depID, Err: ErrUnknownDependency}
	}
	if depth <= 0 {
		return false, &FlowError{QuestionID: q.ID, DependsOn: depID, Err: ErrForwardDependency}
	}

	depVisible, err := r.visible(r.flow[i], answers, depth-1)
	if err != nil || !depVisible {
		return false, err
	}

	answer, ok := answers.Get(depID)
	if !ok {
		return false, nil
	}
	switch answer.Kind() {
	case KindText:
		s, _ := answer.Text()
		return q.Condition.Accepts(s), nil
	case KindChoices:
		values, _ := answer.Choices()
		for _, v := range values {
			if q.Condition.Accepts(v) {
				return true, nil
			}
		}
		return false, nil
	default:
		return false, nil
	}
}

// Visible returns the visible questions in flow order.
func (r *Resolver) Visible(answers *Answers) []Question {
	var out []Question
	for _, q := range r.flow {
		// Flow questions were validated by NewResolver.
		if ok, _ := r.IsVisible(q, answers); ok {
			out = append(out, q)
		}
	}
	return out
}

// Missing returns the visible required questions lacking a usable answer.
func (r *Resolver) Missing(answers *Answers) []Question {
	var out []Question
	for _, q := range r.Visible(answers) {
		if q.Required && !Answered(q, answers) {
			out = append(out, q)
		}
	}
	return out
}

// Answered reports whether answers holds a usable answer for q: present,
// not blank, and of the shape q expects.
func Answered(q Question, answers *Answers) bool {
	answer, ok := answers.Get(q.ID)
	if !ok || isBlank(answer) {
		return false
	}
	return ValidateAnswer(q, answer) == nil
}

// Prune returns a copy of answers without the answers to invisible
// questions. Ids outside the flow are kept.
func (r *Resolver) Prune(answers *Answers) *Answers {
	pruned := NewAnswers()
	for _, id := range answers.Keys() {
		if q, ok := r.Question(id); ok {
			if visible, _ := r.IsVisible(q, answers); !visible {
				continue
			}
		}
		a, _ := answers.Get(id)
		pruned.Set(id, a)
	}
	return pruned
}

func isBlank(a Answer) bool {
	switch a.Kind() {
	case KindText:
		s, _ := a.Text()
		return strings.TrimSpace(s) == ""
	case KindChoices:
		c, _ := a.Choices()
		return len(c) == 0
	default:
		v, _ := a.Other()
		return v == nil
	}
}

// ValidateAnswers checks every answer bound to a catalog question. Ids
// outside the catalog are ignored.
func ValidateAnswers(answers *Answers) error {
	for _, id := range answers.Keys() {
		q, ok := defaultResolver.Question(id)
		if !ok {
			continue
		}
		answer, _ := answers.Get(id)
		if err := ValidateAnswer(q, answer); err != nil {
			return err
		}
	}
	return nil
}

// ValidateAnswer checks that answer has the shape q expects. It never
// judges the content of free text.
func ValidateAnswer(q Question, answer Answer) error {
	switch q.Type {
	case TypeText:
		if answer.Kind() != KindText {
			return fmt.Errorf("question %q expects text, got %s", q.ID, answer.Kind())
		}
	case TypeSingle:
		s, ok := answer.Text()
		if !ok {
			return fmt.Errorf("question %q expects a single value, got %s", q.ID, answer.Kind())
		}
		if !q.AllowOther && !q.HasOption(s) {
			return fmt.Errorf("question %q: %q is not one of the options", q.ID, s)
		}
	case TypeMultiple:
		values, ok := answer.Choices()
		if !ok {
			return fmt.Errorf("question %q expects a list of values, got %s", q.ID, answer.Kind())
		}
		if !q.AllowOther {
			for _, v := range values {
				if !q.HasOption(v) {
					return fmt.Errorf("question %q: %q is not one of the options", q.ID, v)
				}
			}
		}
	default:
		return fmt.Errorf("question %q has unknown type %q", q.ID, q.Type)
	}
	return nil
}
