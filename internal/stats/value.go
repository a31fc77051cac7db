package stats

import (
	"encoding/json"
	"strconv"
	"strings"
)

// ValueKind discriminates the decoded answer payload
type ValueKind int

const (
	KindText ValueKind = iota
	KindList
	KindNumber
)

// Value is the decoded answer for a single question: a string, a list
// of strings, or a number, depending on the question's declared type.
// The zero Value is an empty text answer.
type Value struct {
	Kind   ValueKind
	Text   string
	List   []string
	Number float64
}

// TextValue wraps a scalar string answer
func TextValue(s string) Value { return Value{Kind: KindText, Text: s} }

// ListValue wraps a multi-selection or sort-order answer
func ListValue(items ...string) Value { return Value{Kind: KindList, List: items} }

// NumberValue wraps a numeric answer
func NumberValue(n float64) Value { return Value{Kind: KindNumber, Number: n} }

// DecodeAnswers parses a stored answers blob into question-id keyed
// values. Decode failures return nil instead of an error: historical
// rows may be corrupt and the dashboards built on top must keep
// rendering. Entries of unsupported shape are skipped.
func DecodeAnswers(blob string) map[string]Value {
	if blob == "" {
		return nil
	}
	var raw map[string]interface{}
	if err := json.Unmarshal([]byte(blob), &raw); err != nil {
		return nil
	}
	if raw == nil {
		return nil
	}
	decoded := make(map[string]Value, len(raw))
	for key, item := range raw {
		if v, ok := decodeValue(item); ok {
			decoded[key] = v
		}
	}
	return decoded
}

func decodeValue(item interface{}) (Value, bool) {
	switch t := item.(type) {
	case string:
		return TextValue(t), true
	case float64:
		return NumberValue(t), true
	case []interface{}:
		list := make([]string, 0, len(t))
		for _, entry := range t {
			switch s := entry.(type) {
			case string:
				list = append(list, s)
			case float64:
				list = append(list, formatNumber(s))
			}
		}
		return ListValue(list...), true
	}
	return Value{}, false
}

// IsTruthy reports whether the value gates scoring and response
// counting: empty strings, empty lists and the number zero do not.
func (v Value) IsTruthy() bool {
	switch v.Kind {
	case KindList:
		return len(v.List) > 0
	case KindNumber:
		return v.Number != 0
	default:
		return v.Text != ""
	}
}

// IsAnswered reports whether the respondent answered the question at
// all: blank or whitespace-only strings and empty lists count as
// unanswered, while any number (including zero) counts as answered.
func (v Value) IsAnswered() bool {
	switch v.Kind {
	case KindList:
		return len(v.List) > 0
	case KindNumber:
		return true
	default:
		return strings.TrimSpace(v.Text) != ""
	}
}

// Selections normalizes the value to a list of selected option texts:
// a bare string becomes a one-element list and a number its decimal
// string form.
func (v Value) Selections() []string {
	switch v.Kind {
	case KindList:
		return v.List
	case KindNumber:
		return []string{formatNumber(v.Number)}
	default:
		return []string{v.Text}
	}
}

// Matches reports whether the value selects the given option text:
// containment for lists, stringified equality otherwise.
func (v Value) Matches(optionText string) bool {
	switch v.Kind {
	case KindList:
		for _, item := range v.List {
			if item == optionText {
				return true
			}
		}
		return false
	case KindNumber:
		return formatNumber(v.Number) == optionText
	default:
		return v.Text == optionText
	}
}

func formatNumber(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}
