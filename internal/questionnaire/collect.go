package questionnaire

// Patch builds the answer patch for a step submission.
//
// Multi-select fields declared by the step are always written as the current
// selection, so deselecting everything on a revisit is remembered. Consent
// fields are written only when ticked. Every other field is written only when
// its trimmed value is non-empty.
func Patch(step int, fields Fields) (Answers, error) {
	def, err := Step(step)
	if err != nil {
		return nil, err
	}

	patch := make(Answers, len(fields))

	for _, field := range def.Fields {
		if field.Kind.Multiple() {
			patch[field.Name] = SetValue(fields.Values(field.Name))
		}
	}

	for name := range fields {
		field, declared := def.Field(name)
		switch {
		case declared && field.Kind.Multiple():
			continue
		case declared && field.Kind == InputConsent:
			if fields.Checked(name) {
				patch[name] = FlagValue(true)
			}
		default:
			if value := fields.Get(name); value != "" {
				patch[name] = TextValue(value)
			}
		}
	}

	return patch, nil
}
