package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/jywlabs/ralph/internal/brainstorm"
)

// Printer handles plain output meant for pipes and other programs.
type Printer struct {
	w io.Writer
}

// New creates a new Printer that writes to the given writer.
func New(w io.Writer) *Printer {
	return &Printer{w: w}
}

// Question prints one catalog entry with its options and condition.
// Format: "N. [id] question *" where "*" marks a required question.
func (p *Printer) Question(n int, q brainstorm.Question) {
	required := ""
	if q.Required {
		required = " *"
	}
	fmt.Fprintf(p.w, "%d. [%s] %s%s\n", n, q.ID, q.Prompt, required)
	fmt.Fprintf(p.w, "   phase: %s, type: %s\n", q.Phase, q.Type)
	if q.Condition != nil {
		fmt.Fprintf(p.w, "   when %s is one of: %s\n", q.Condition.QuestionID, strings.Join(q.Condition.Values, ", "))
	}
	for _, opt := range q.Options {
		fmt.Fprintf(p.w, "   - %s: %s\n", opt.Value, opt.Label)
	}
	if q.AllowOther {
		fmt.Fprintf(p.w, "   - (other values accepted)\n")
	}
}

// Questions prints the whole catalog in order.
func (p *Printer) Questions(flow []brainstorm.Question) {
	for i, q := range flow {
		p.Question(i+1, q)
	}
}

// Missing prints a warning naming unanswered required questions.
// Nothing is printed when the list is empty.
// Format: "warning: unanswered required questions: a, b"
func (p *Printer) Missing(questions []brainstorm.Question) {
	if len(questions) == 0 {
		return
	}
	ids := make([]string, len(questions))
	for i, q := range questions {
		ids[i] = q.ID
	}
	fmt.Fprintf(p.w, "warning: unanswered required questions: %s\n", strings.Join(ids, ", "))
}

// DocWritten prints where the design document went.
// Format: "Design: <path>"
func (p *Printer) DocWritten(path string) {
	fmt.Fprintf(p.w, "Design: %s\n", path)
}
