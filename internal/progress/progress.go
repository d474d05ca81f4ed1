// Package progress plays the cosmetic "processing" sequence shown between
// submitting the questionnaire and showing the results. It has no effect on
// the recommendations.
package progress

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// DefaultDelay is the pause after each stage.
const DefaultDelay = 800 * time.Millisecond

// Stage is one message of the sequence with the progress it represents.
type Stage struct {
	Message string
	Percent int
}

// DefaultStages returns the messages shown while the answers are analysed.
func DefaultStages() []Stage {
	return []Stage{
		{Message: "Analisando seu perfil...", Percent: 25},
		{Message: "Comparando suas habilidades com o mercado...", Percent: 50},
		{Message: "Calculando a compatibilidade de cada carreira...", Percent: 75},
		{Message: "Preparando suas recomendações...", Percent: 100},
	}
}

// Sequence notifies each stage in order and pauses a fixed delay after it.
type Sequence struct {
	stages []Stage
	delay  time.Duration
	logger *zap.Logger
}

func New(stages []Stage, delay time.Duration, logger *zap.Logger) *Sequence {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Sequence{stages: stages, delay: delay, logger: logger}
}

// Run plays the sequence. Cancelling ctx abandons it; the context error is
// returned and no further stages are notified.
func (s *Sequence) Run(ctx context.Context, notify func(Stage)) error {
	for i, stage := range s.stages {
		if err := ctx.Err(); err != nil {
			return err
		}

		if notify != nil {
			notify(stage)
		}

		if err := WaitFor(ctx, s.delay); err != nil {
			s.logger.Debug("processing sequence abandoned",
				zap.Int("stage", i+1),
				zap.Error(err),
			)
			return err
		}
	}

	return nil
}

// WaitFor pauses for d or until ctx is done, whichever comes first.
func WaitFor(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
