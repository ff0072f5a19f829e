package interview

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jywlabs/ralph/internal/brainstorm"
	"github.com/jywlabs/ralph/internal/debug"
	"github.com/jywlabs/ralph/internal/display"
)

// ErrInputClosed is returned when input ends before all required
// questions are answered.
var ErrInputClosed = errors.New("input ended before all questions were answered")

// Interviewer asks the visible questions of a flow one at a time.
type Interviewer struct {
	resolver *brainstorm.Resolver
	reader   *bufio.Reader
	display  *display.Display
}

// New creates an interviewer reading answers from in.
func New(resolver *brainstorm.Resolver, in io.Reader, d *display.Display) *Interviewer {
	return &Interviewer{
		resolver: resolver,
		reader:   bufio.NewReader(in),
		display:  d,
	}
}

// Run asks every visible question not already answered in preset and
// returns the collected answers. A preset of the wrong shape is asked
// again. Answers to questions hidden by a later choice are dropped.
func (iv *Interviewer) Run(preset *brainstorm.Answers) (*brainstorm.Answers, error) {
	answers := preset.Clone()
	asked := make(map[string]bool)

	for {
		visible := iv.resolver.Visible(answers)
		next, pos := nextQuestion(visible, answers, asked)
		if next == nil {
			break
		}
		asked[next.ID] = true

		iv.display.ShowQuestion(pos+1, len(visible), *next)
		if _, stale := answers.Get(next.ID); stale {
			iv.display.ShowWarning("预设答案无效，请重新回答")
		}
		answer, ok, err := iv.ask(*next)
		if err != nil {
			return nil, fmt.Errorf("question %s: %w", next.ID, err)
		}
		if ok {
			answers.Set(next.ID, answer)
			if label := choiceLabel(*next, answer); label != "" {
				iv.display.ShowInfo("已选择: %s", label)
			}
			debug.Log("answered %s (%s)", next.ID, answer.Kind())
		} else {
			// A skipped optional question drops an unusable preset.
			answers.Delete(next.ID)
		}
		fmt.Fprintln(iv.display.Writer())
	}

	return iv.resolver.Prune(answers), nil
}

func nextQuestion(visible []brainstorm.Question, answers *brainstorm.Answers, asked map[string]bool) (*brainstorm.Question, int) {
	for i := range visible {
		q := visible[i]
		if asked[q.ID] || brainstorm.Answered(q, answers) {
			continue
		}
		return &q, i
	}
	return nil, 0
}

// choiceLabel returns the option labels of a select answer, or "" for
// free text.
func choiceLabel(q brainstorm.Question, answer brainstorm.Answer) string {
	switch q.Type {
	case brainstorm.TypeSingle:
		value, _ := answer.Text()
		return q.OptionLabel(value)
	case brainstorm.TypeMultiple:
		values, _ := answer.Choices()
		labels := make([]string, len(values))
		for i, v := range values {
			labels[i] = q.OptionLabel(v)
		}
		return strings.Join(labels, ", ")
	default:
		return ""
	}
}

// ask reads lines until one parses. ok is false when an optional question
// was skipped.
func (iv *Interviewer) ask(q brainstorm.Question) (brainstorm.Answer, bool, error) {
	for {
		iv.display.ShowPrompt()
		line, err := iv.readLine()
		if err != nil {
			if errors.Is(err, io.EOF) && !q.Required {
				return brainstorm.Answer{}, false, nil
			}
			if errors.Is(err, io.EOF) {
				return brainstorm.Answer{}, false, ErrInputClosed
			}
			return brainstorm.Answer{}, false, err
		}

		if line == "" {
			if !q.Required {
				return brainstorm.Answer{}, false, nil
			}
			iv.display.ShowWarning("这个问题必须回答")
			continue
		}

		answer, err := ParseAnswer(q, line)
		if err != nil {
			iv.display.ShowWarning("%v", err)
			continue
		}
		return answer, true, nil
	}
}

// readLine returns the next trimmed line. A final line without a newline
// is returned before io.EOF.
func (iv *Interviewer) readLine() (string, error) {
	line, err := iv.reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// ParseAnswer converts one line of input into an answer for q. Select
// questions accept option numbers or option values; free values are
// accepted only when the question allows them.
func ParseAnswer(q brainstorm.Question, input string) (brainstorm.Answer, error) {
	input = strings.TrimSpace(input)

	switch q.Type {
	case brainstorm.TypeSingle:
		value, err := resolveChoice(q, input)
		if err != nil {
			return brainstorm.Answer{}, err
		}
		return brainstorm.Text(value), nil

	case brainstorm.TypeMultiple:
		var values []string
		for _, part := range strings.Split(input, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			value, err := resolveChoice(q, part)
			if err != nil {
				return brainstorm.Answer{}, err
			}
			values = append(values, value)
		}
		if len(values) == 0 {
			return brainstorm.Answer{}, fmt.Errorf("至少选择一项")
		}
		return brainstorm.Choices(values...), nil

	default:
		return brainstorm.Text(input), nil
	}
}

func resolveChoice(q brainstorm.Question, input string) (string, error) {
	if n, err := strconv.Atoi(input); err == nil {
		if n >= 1 && n <= len(q.Options) {
			return q.Options[n-1].Value, nil
		}
		if !q.AllowOther {
			return "", fmt.Errorf("请输入 1 到 %d 之间的编号", len(q.Options))
		}
	}
	if q.HasOption(input) {
		return input, nil
	}
	if q.AllowOther {
		return input, nil
	}
	return "", fmt.Errorf("%q 不是可选项", input)
}
