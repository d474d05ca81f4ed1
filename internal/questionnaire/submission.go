package questionnaire

import (
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Submission is a complete questionnaire filled outside the interactive flow:
// the fields of every step keyed by step number.
type Submission map[int]Fields

// ParseSubmission reads a YAML (or JSON) document shaped as
//
//	1:
//	  nome: Maria Souza
//	  idade: 34
//	2:
//	  habilidades: [analitico, organizacao, paciencia]
//
// Scalars become single values, lists become multi-select values and booleans
// become "1"/"0". Step keys may be quoted, as JSON requires.
func ParseSubmission(data []byte) (Submission, error) {
	var doc map[string]map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse answers: %w", err)
	}

	raw := make(map[int]map[string]any, len(doc))
	for key, fields := range doc {
		step, err := strconv.Atoi(key)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a step number", ErrUnknownStep, key)
		}
		raw[step] = fields
	}

	submission := make(Submission, len(raw))
	cfg := &mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           &submission,
	}

	decoder, err := mapstructure.NewDecoder(cfg)
	if err != nil {
		return nil, err
	}

	if err := decoder.Decode(raw); err != nil {
		return nil, fmt.Errorf("decode answers: %w", err)
	}

	for step := range submission {
		if _, err := Step(step); err != nil {
			return nil, err
		}
	}

	return submission, nil
}

// StepNumbers returns the steps present in the submission in ascending order.
func (s Submission) StepNumbers() []int {
	numbers := make([]int, 0, len(s))
	for n := range s {
		numbers = append(numbers, n)
	}
	sort.Ints(numbers)
	return numbers
}

// Fields returns the fields of step n, never nil.
func (s Submission) Fields(n int) Fields {
	if fields, ok := s[n]; ok && fields != nil {
		return fields
	}
	return Fields{}
}

// Play runs the submission through c: every step but the last is advanced in
// order and the last one is submitted. It stops at the first step that does
// not validate.
func (s Submission) Play(c *Controller) (Answers, error) {
	for c.Current() < TotalSteps {
		step := c.Current()
		if err := c.Advance(step+1, s.Fields(step)); err != nil {
			return nil, err
		}
	}
	return c.Submit(s.Fields(TotalSteps))
}

// Check validates every step independently and returns the failures keyed by
// step number.
func (s Submission) Check() map[int]*ValidationError {
	failures := make(map[int]*ValidationError)
	for step := 1; step <= TotalSteps; step++ {
		var verr *ValidationError
		if errors.As(ValidateStep(step, s.Fields(step)), &verr) {
			failures[step] = verr
		}
	}
	return failures
}
