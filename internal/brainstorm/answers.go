package brainstorm

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// AnswerKind tags the shape of an Answer.
type AnswerKind int

const (
	KindText AnswerKind = iota
	KindChoices
	KindOther
)

func (k AnswerKind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindChoices:
		return "choices"
	default:
		return "other"
	}
}

// Answer is the value bound to a question id: free text or a single
// selection (Text), a multi-selection (Choices), or any other decoded
// value the caller supplied (Other).
type Answer struct {
	kind    AnswerKind
	text    string
	choices []string
	other   any
}

// Text returns a text answer.
func Text(s string) Answer {
	return Answer{kind: KindText, text: s}
}

// Choices returns a multi-select answer. The order of values is kept.
func Choices(values ...string) Answer {
	c := make([]string, len(values))
	copy(c, values)
	return Answer{kind: KindChoices, choices: c}
}

// Other wraps a value that is neither a string nor a list of strings.
func Other(v any) Answer {
	return Answer{kind: KindOther, other: v}
}

// Kind reports the answer shape.
func (a Answer) Kind() AnswerKind { return a.kind }

// Text returns the string for a text answer and false for any other shape.
func (a Answer) Text() (string, bool) {
	if a.kind != KindText {
		return "", false
	}
	return a.text, true
}

// Choices returns a copy of the selected values for a multi-select answer.
func (a Answer) Choices() ([]string, bool) {
	if a.kind != KindChoices {
		return nil, false
	}
	c := make([]string, len(a.choices))
	copy(c, a.choices)
	return c, true
}

// Other returns the opaque value of an Other answer.
func (a Answer) Other() (any, bool) {
	if a.kind != KindOther {
		return nil, false
	}
	return a.other, true
}

// Answers maps question ids to answers and remembers insertion order.
// The zero value is ready to use.
type Answers struct {
	keys   []string
	values map[string]Answer
}

// NewAnswers returns an empty answer map.
func NewAnswers() *Answers {
	return &Answers{}
}

// AnswersFromMap converts a decoded JSON or YAML object. Go maps carry no
// order, so keys are inserted sorted.
func AnswersFromMap(m map[string]any) *Answers {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	a := NewAnswers()
	for _, k := range keys {
		a.Set(k, answerFromValue(m[k]))
	}
	return a
}

func answerFromValue(v any) Answer {
	switch val := v.(type) {
	case string:
		return Text(val)
	case []string:
		return Choices(val...)
	case []any:
		strs := make([]string, 0, len(val))
		for _, item := range val {
			s, ok := item.(string)
			if !ok {
				return Other(v)
			}
			strs = append(strs, s)
		}
		return Choices(strs...)
	case Answer:
		return val
	default:
		return Other(v)
	}
}

// Set binds id to answer. Re-setting an existing id keeps its position.
func (a *Answers) Set(id string, answer Answer) {
	if a.values == nil {
		a.values = make(map[string]Answer)
	}
	if _, ok := a.values[id]; !ok {
		a.keys = append(a.keys, id)
	}
	a.values[id] = answer
}

// Get returns the answer bound to id.
func (a *Answers) Get(id string) (Answer, bool) {
	if a == nil {
		return Answer{}, false
	}
	v, ok := a.values[id]
	return v, ok
}

// Text returns the text bound to id, or false when absent or not text.
func (a *Answers) Text(id string) (string, bool) {
	v, ok := a.Get(id)
	if !ok {
		return "", false
	}
	return v.Text()
}

// TextOr returns the text bound to id, or def when absent or wrong-shaped.
func (a *Answers) TextOr(id, def string) string {
	if s, ok := a.Text(id); ok {
		return s
	}
	return def
}

// Delete removes id.
func (a *Answers) Delete(id string) {
	if a == nil {
		return
	}
	if _, ok := a.values[id]; !ok {
		return
	}
	delete(a.values, id)
	for i, k := range a.keys {
		if k == id {
			a.keys = append(a.keys[:i], a.keys[i+1:]...)
			break
		}
	}
}

// Keys returns the ids in insertion order.
func (a *Answers) Keys() []string {
	if a == nil {
		return nil
	}
	keys := make([]string, len(a.keys))
	copy(keys, a.keys)
	return keys
}

// Len returns the number of answers.
func (a *Answers) Len() int {
	if a == nil {
		return 0
	}
	return len(a.keys)
}

// Clone returns an independent copy.
func (a *Answers) Clone() *Answers {
	c := NewAnswers()
	for _, k := range a.Keys() {
		c.Set(k, a.values[k])
	}
	return c
}

// Merge sets every answer of other on a, in other's order.
func (a *Answers) Merge(other *Answers) {
	for _, k := range other.Keys() {
		v, _ := other.Get(k)
		a.Set(k, v)
	}
}

// UnmarshalYAML decodes a mapping node keeping document key order.
// Because JSON is a subset of YAML this also reads JSON objects.
func (a *Answers) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.DocumentNode && len(value.Content) > 0 {
		value = value.Content[0]
	}
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("answers must be a mapping, got %v", nodeKindName(value.Kind))
	}

	*a = Answers{}
	for i := 0; i+1 < len(value.Content); i += 2 {
		keyNode := value.Content[i]
		valNode := value.Content[i+1]

		answer, err := answerFromNode(valNode)
		if err != nil {
			return fmt.Errorf("answer %q: %w", keyNode.Value, err)
		}
		a.Set(keyNode.Value, answer)
	}
	return nil
}

func answerFromNode(n *yaml.Node) (Answer, error) {
	n = resolveAlias(n)
	if isTextScalar(n) {
		return Text(n.Value), nil
	}
	if n.Kind == yaml.SequenceNode {
		strs := make([]string, 0, len(n.Content))
		allStrings := true
		for _, item := range n.Content {
			item = resolveAlias(item)
			if !isTextScalar(item) {
				allStrings = false
				break
			}
			strs = append(strs, item.Value)
		}
		if allStrings {
			return Choices(strs...), nil
		}
	}

	var v any
	if err := n.Decode(&v); err != nil {
		return Answer{}, err
	}
	return Other(v), nil
}

func resolveAlias(n *yaml.Node) *yaml.Node {
	for n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	return n
}

// isTextScalar reports whether n reads as text. Unquoted dates stay text so
// a free-form answer keeps its spelling.
func isTextScalar(n *yaml.Node) bool {
	if n.Kind != yaml.ScalarNode {
		return false
	}
	switch n.ShortTag() {
	case "!!str", "!!timestamp":
		return true
	default:
		return false
	}
}

// MarshalYAML writes answers as a mapping in insertion order.
func (a *Answers) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, k := range a.Keys() {
		v := a.values[k]
		valNode := &yaml.Node{}
		var err error
		switch v.kind {
		case KindText:
			err = valNode.Encode(v.text)
		case KindChoices:
			err = valNode.Encode(v.choices)
		default:
			err = valNode.Encode(v.other)
		}
		if err != nil {
			return nil, fmt.Errorf("answer %q: %w", k, err)
		}
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k},
			valNode,
		)
	}
	return node, nil
}

// LoadAnswersFile reads a YAML or JSON answers file.
func LoadAnswersFile(path string) (*Answers, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read answers: %w", err)
	}
	answers := NewAnswers()
	if err := yaml.Unmarshal(data, answers); err != nil {
		return nil, fmt.Errorf("failed to parse answers %s: %w", path, err)
	}
	return answers, nil
}

func nodeKindName(k yaml.Kind) string {
	switch k {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "empty"
	}
}
