package questionnaire

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"
)

// ValueKind tells which representation an answer value uses.
type ValueKind int

const (
	KindText ValueKind = iota
	KindSet
	KindFlag
)

// Value is a single answer: a text, a set of selected options or a flag.
type Value struct {
	Kind  ValueKind
	Text  string
	Items []string
	Flag  bool
}

func TextValue(text string) Value { return Value{Kind: KindText, Text: text} }

func SetValue(items []string) Value {
	return Value{Kind: KindSet, Items: uniqueTrimmed(items)}
}

func FlagValue(flag bool) Value { return Value{Kind: KindFlag, Flag: flag} }

// MarshalJSON encodes texts as strings, sets as arrays and flags as booleans.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.Kind {
	case KindSet:
		items := v.Items
		if items == nil {
			items = []string{}
		}
		return json.Marshal(items)
	case KindFlag:
		return json.Marshal(v.Flag)
	default:
		return json.Marshal(v.Text)
	}
}

func (v *Value) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return fmt.Errorf("empty answer value")
	}

	switch data[0] {
	case '[':
		var items []string
		if err := json.Unmarshal(data, &items); err != nil {
			return err
		}
		*v = SetValue(items)
	case 't', 'f':
		var flag bool
		if err := json.Unmarshal(data, &flag); err != nil {
			return err
		}
		*v = FlagValue(flag)
	default:
		var text string
		if err := json.Unmarshal(data, &text); err != nil {
			return err
		}
		*v = TextValue(text)
	}

	return nil
}

// Answers is the cumulative answer record of one questionnaire session.
// Keys are only ever added or overwritten, never removed.
type Answers map[string]Value

// Has reports whether the key was collected.
func (a Answers) Has(key string) bool {
	_, ok := a[key]
	return ok
}

// Text returns the text answer for key, or "" when absent or not a text.
func (a Answers) Text(key string) string {
	v, ok := a[key]
	if !ok || v.Kind != KindText {
		return ""
	}
	return v.Text
}

// Set returns a copy of the selected options for key.
func (a Answers) Set(key string) []string {
	v, ok := a[key]
	if !ok || v.Kind != KindSet {
		return nil
	}
	return slices.Clone(v.Items)
}

// HasSet reports whether key holds a set, even an empty one.
func (a Answers) HasSet(key string) bool {
	v, ok := a[key]
	return ok && v.Kind == KindSet
}

func (a Answers) Flag(key string) bool {
	v, ok := a[key]
	return ok && v.Kind == KindFlag && v.Flag
}

// Merge writes every entry of patch over the record.
func (a Answers) Merge(patch Answers) {
	for key, value := range patch {
		a[key] = value
	}
}

// Clone returns a deep copy, safe to hand out as a read-only snapshot.
func (a Answers) Clone() Answers {
	clone := make(Answers, len(a))
	for key, value := range a {
		value.Items = slices.Clone(value.Items)
		clone[key] = value
	}
	return clone
}

// Keys returns the collected keys in sorted order.
func (a Answers) Keys() []string {
	keys := make([]string, 0, len(a))
	for key := range a {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	return keys
}
