// Package recommend ranks career profiles against a questionnaire answer record.
package recommend

import (
	"go.uber.org/zap"

	"github.com/rota-carreira/rota/internal/careers"
	"github.com/rota-carreira/rota/internal/logger"
	"github.com/rota-carreira/rota/internal/questionnaire"
)

const (
	DefaultMinimumScore = 40
	DefaultLimit        = 4
)

// Options tune the ranking pipeline.
type Options struct {
	// MinimumScore drops profiles scoring below it. Clamped to 0..100.
	MinimumScore int
	// Limit is the maximum number of recommendations. Non-positive means DefaultLimit.
	Limit int
}

// DefaultOptions returns the threshold and size of the results page.
func DefaultOptions() Options {
	return Options{MinimumScore: DefaultMinimumScore, Limit: DefaultLimit}
}

// Engine scores a catalog against answers and ranks the result.
type Engine struct {
	catalog *careers.Catalog
	stages  []Stage
	logger  *zap.Logger
}

// New builds an engine over catalog. A nil logger disables logging.
func New(catalog *careers.Catalog, opts Options, log *zap.Logger) *Engine {
	if opts.MinimumScore < 0 {
		opts.MinimumScore = 0
	}
	if opts.MinimumScore > 100 {
		opts.MinimumScore = 100
	}
	if opts.Limit <= 0 {
		opts.Limit = DefaultLimit
	}

	return &Engine{
		catalog: catalog,
		stages: []Stage{
			NewMinimumScore(opts.MinimumScore),
			NewOrder(),
			NewLimit(opts.Limit),
		},
		logger: logger.WithFields(log),
	}
}

// Recommend returns at most the configured number of recommendations scoring
// at least the minimum, by descending score, ties in catalog order.
func Recommend(answers questionnaire.Answers, catalog *careers.Catalog) []Recommendation {
	return New(catalog, DefaultOptions(), nil).Recommend(answers)
}

// Recommend ranks the catalog against a snapshot of answers.
func (e *Engine) Recommend(answers questionnaire.Answers) []Recommendation {
	snapshot := answers.Clone()
	profiles := e.catalog.Profiles()

	recs := make([]Recommendation, 0, len(profiles))
	for _, profile := range profiles {
		rec := Score(snapshot, profile)
		e.logger.Debug("profile scored",
			zap.String(logger.FieldProfile, profile.ID),
			zap.Int("score", rec.Score),
			zap.Strings("matched_skills", rec.MatchedSkills),
		)
		recs = append(recs, rec)
	}

	for _, stage := range e.stages {
		var info Step
		recs, info = stage.Apply(recs)
		e.logger.Debug("ranking stage",
			zap.String("name", stage.Name()),
			zap.Int("initial", info.Initial),
			zap.Int("dropped", info.Dropped),
			zap.Int("left", info.Left),
		)
	}

	e.logger.Info("recommendations ready", zap.Int("count", len(recs)))

	return recs
}
