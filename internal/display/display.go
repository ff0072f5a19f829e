package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/jywlabs/ralph/internal/brainstorm"
)

// Display handles formatted terminal output for commands.
type Display struct {
	out io.Writer
}

// NewDisplay creates a new display writer.
func NewDisplay(out io.Writer) *Display {
	return &Display{out: out}
}

// Writer returns the underlying writer.
func (d *Display) Writer() io.Writer { return d.out }

// ShowCommandHeader displays the command name and its subject.
func (d *Display) ShowCommandHeader(command, subject string) {
	title := fmt.Sprintf("%s %s", StyleCommandIcon.String(), StyleTitle.Render(command))
	if subject != "" {
		title += StyleMuted.Render("  " + subject)
	}
	fmt.Fprintln(d.out, HeaderBox().Render(title))
	fmt.Fprintln(d.out)
}

// ShowQuestion displays a question with its numbered options.
func (d *Display) ShowQuestion(current, total int, q brainstorm.Question) {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s", StyleMuted.Render(fmt.Sprintf("[%d/%d]", current, total)), StyleBold.Render(q.Prompt))
	if q.Description != "" {
		fmt.Fprintf(&b, "\n%s", StyleMuted.Render(q.Description))
	}
	for i, opt := range q.Options {
		line := fmt.Sprintf("%d. %s", i+1, opt.Label)
		if opt.Description != "" {
			line += StyleMuted.Render(" - " + opt.Description)
		}
		fmt.Fprintf(&b, "\n  %s", line)
	}
	fmt.Fprintln(d.out, QuestionBox().Render(b.String()))
	if hint := inputHint(q); hint != "" {
		fmt.Fprintln(d.out, StyleMuted.Render(hint))
	}
}

func inputHint(q brainstorm.Question) string {
	var hint string
	switch q.Type {
	case brainstorm.TypeSingle:
		hint = "输入编号"
		if q.AllowOther {
			hint += "，或直接输入你的答案"
		}
	case brainstorm.TypeMultiple:
		hint = "输入多个编号，用逗号分隔"
		if q.AllowOther {
			hint += "；其他值按原样保留"
		}
	}
	if !q.Required {
		hint += "（可选，直接回车跳过）"
	}
	return hint
}

// ShowPrompt writes the input prompt marker without a newline.
func (d *Display) ShowPrompt() {
	fmt.Fprint(d.out, StyleAccent.Render("> "))
}

// ShowWarning displays a warning line.
func (d *Display) ShowWarning(format string, args ...interface{}) {
	fmt.Fprintln(d.out, StyleWarning.Render("[!] "+fmt.Sprintf(format, args...)))
}

// ShowInfo displays an info line.
func (d *Display) ShowInfo(format string, args ...interface{}) {
	fmt.Fprintln(d.out, StyleInfo.Render(fmt.Sprintf(format, args...)))
}

// ShowCommandSuccess displays a success box with optional detail lines.
func (d *Display) ShowCommandSuccess(title string, details ...string) {
	content := StyleSuccess.Render("[ok] " + title)
	for _, line := range details {
		content += "\n" + line
	}
	fmt.Fprintln(d.out)
	fmt.Fprintln(d.out, SuccessBox().Render(content))
}

// ShowError displays an error box.
func (d *Display) ShowError(msg string) {
	fmt.Fprintln(d.out)
	fmt.Fprintln(d.out, ErrorBox().Render(StyleError.Render("[!!] 出错了")+"\n"+msg))
}

// ShowNextSteps lists follow-up commands.
func (d *Display) ShowNextSteps(steps []string) {
	if len(steps) == 0 {
		return
	}
	fmt.Fprintln(d.out)
	fmt.Fprintln(d.out, StyleBold.Render("下一步:"))
	for _, step := range steps {
		fmt.Fprintf(d.out, "  %s %s\n", StyleMuted.Render("$"), step)
	}
}
