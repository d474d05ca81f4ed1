package questionnaire

import "strings"

// Fields is the raw submission of one step: field name to the values the
// presentation layer collected. Multi-select fields carry one value per
// selected option, every other field carries at most one value.
type Fields map[string][]string

// Get returns the first value of the field, trimmed.
func (f Fields) Get(name string) string {
	values := f[name]
	if len(values) == 0 {
		return ""
	}
	return strings.TrimSpace(values[0])
}

// Raw returns the first value of the field as submitted.
func (f Fields) Raw(name string) string {
	if values := f[name]; len(values) > 0 {
		return values[0]
	}
	return ""
}

// Values returns the non-empty trimmed values of the field without duplicates,
// in submission order.
func (f Fields) Values(name string) []string {
	return uniqueTrimmed(f[name])
}

// Set replaces the values of the field.
func (f Fields) Set(name string, values ...string) {
	f[name] = values
}

// Checked reports whether a checkbox-like field was ticked.
func (f Fields) Checked(name string) bool {
	switch strings.ToLower(f.Get(name)) {
	case "on", "true", "1", "yes", "sim":
		return true
	default:
		return false
	}
}

func uniqueTrimmed(values []string) []string {
	result := make([]string, 0, len(values))
	seen := make(map[string]struct{}, len(values))
	for _, value := range values {
		value = strings.TrimSpace(value)
		if value == "" {
			continue
		}
		if _, ok := seen[value]; ok {
			continue
		}
		seen[value] = struct{}{}
		result = append(result, value)
	}
	return result
}
