package questionnaire

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/rota-carreira/rota/internal/logger"
)

// StepStatus is the indicator state of a step relative to the current one.
type StepStatus string

const (
	StatusCompleted StepStatus = "completed"
	StatusActive    StepStatus = "active"
	StatusPending   StepStatus = "pending"
)

// Controller owns the state of one questionnaire session: the current step and
// the answers collected so far. It is not safe for concurrent use.
type Controller struct {
	sessionID string
	current   int
	answers   Answers
	submitted bool
	logger    *zap.Logger
}

// NewController starts a session on step 1 with an empty answer record.
func NewController(log *zap.Logger) *Controller {
	sessionID := uuid.NewString()
	return &Controller{
		sessionID: sessionID,
		current:   1,
		answers:   make(Answers),
		logger:    logger.WithSession(log, sessionID),
	}
}

func (c *Controller) SessionID() string { return c.sessionID }

// Current returns the active step number.
func (c *Controller) Current() int { return c.current }

// Submitted reports whether the final step was validated and collected.
func (c *Controller) Submitted() bool { return c.submitted }

// Answers returns a snapshot of the collected answers.
func (c *Controller) Answers() Answers { return c.answers.Clone() }

// Progress returns the completion percentage shown by the progress bar.
func (c *Controller) Progress() int {
	return c.current * 100 / TotalSteps
}

// Status returns the indicator state of step n.
func (c *Controller) Status(n int) StepStatus {
	switch {
	case n < c.current:
		return StatusCompleted
	case n == c.current:
		return StatusActive
	default:
		return StatusPending
	}
}

// Validate checks the fields of step without touching the session state.
func (c *Controller) Validate(step int, fields Fields) error {
	err := ValidateStep(step, fields)
	for _, ferr := range FieldErrors(err) {
		c.logger.Debug("field rejected",
			zap.Int(logger.FieldStep, step),
			zap.String(logger.FieldName, ferr.Field),
			zap.String("message", ferr.Message),
		)
	}
	return err
}

// Collect merges the non-empty values of the step into the answer record.
// Collecting the same values twice leaves the record as collecting them once.
func (c *Controller) Collect(step int, fields Fields) error {
	patch, err := Patch(step, fields)
	if err != nil {
		return err
	}

	c.answers.Merge(patch)

	for _, key := range patch.Keys() {
		c.logger.Debug("answer collected",
			zap.Int(logger.FieldStep, step),
			zap.String(logger.FieldName, key),
			zap.String("value", logger.TruncateForLog(describe(patch[key]), 60)),
		)
	}

	return nil
}

// Advance validates the current step with fields and, only when every rule
// passes, collects them and moves to target. On failure the step and the
// answers are left untouched and a *ValidationError is returned.
func (c *Controller) Advance(target int, fields Fields) error {
	if _, err := Step(target); err != nil {
		return err
	}

	if err := c.Validate(c.current, fields); err != nil {
		c.logger.Info("step not advanced",
			zap.Int(logger.FieldStep, c.current),
			zap.Int("target", target),
			zap.Strings("invalid_fields", fieldNames(err)),
		)
		return err
	}

	if err := c.Collect(c.current, fields); err != nil {
		return err
	}

	c.logger.Info("step advanced", zap.Int("from", c.current), zap.Int("to", target))
	c.current = target

	return nil
}

// Retreat moves back to target without validation. Collected answers stay.
func (c *Controller) Retreat(target int) error {
	if _, err := Step(target); err != nil {
		return err
	}

	c.logger.Info("step retreated", zap.Int("from", c.current), zap.Int("to", target))
	c.current = target

	return nil
}

// Submit validates and collects the final step and returns the finalized
// answer record.
func (c *Controller) Submit(fields Fields) (Answers, error) {
	if c.current != TotalSteps {
		return nil, fmt.Errorf("%w: current step is %d", ErrNotFinalStep, c.current)
	}

	if err := c.Validate(c.current, fields); err != nil {
		c.logger.Info("questionnaire not submitted",
			zap.Strings("invalid_fields", fieldNames(err)),
		)
		return nil, err
	}

	if err := c.Collect(c.current, fields); err != nil {
		return nil, err
	}

	c.submitted = true
	c.logger.Info("questionnaire submitted", zap.Int("answers", len(c.answers)))

	return c.Answers(), nil
}

func fieldNames(err error) []string {
	errs := FieldErrors(err)
	names := make([]string, 0, len(errs))
	for _, ferr := range errs {
		names = append(names, ferr.Field)
	}
	return names
}

func describe(v Value) string {
	switch v.Kind {
	case KindSet:
		return fmt.Sprintf("%v", v.Items)
	case KindFlag:
		return fmt.Sprintf("%t", v.Flag)
	default:
		return v.Text
	}
}
