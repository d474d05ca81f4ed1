package recommend

import "sort"

// Stage is one step of the ranking pipeline applied after scoring.
type Stage interface {
	Name() string
	Apply(recs []Recommendation) ([]Recommendation, Step)
}

// Step describes the result of executing a ranking stage.
type Step struct {
	Initial int
	Dropped int
	Left    int
}

type minimumScoreStage struct {
	minScore int
}

// NewMinimumScore drops recommendations scoring below minScore.
func NewMinimumScore(minScore int) Stage {
	return &minimumScoreStage{minScore: minScore}
}

func (s *minimumScoreStage) Name() string { return "minimum_score" }

func (s *minimumScoreStage) Apply(recs []Recommendation) ([]Recommendation, Step) {
	initial := len(recs)
	kept := make([]Recommendation, 0, initial)
	for _, rec := range recs {
		if rec.Score >= s.minScore {
			kept = append(kept, rec)
		}
	}
	return kept, Step{Initial: initial, Dropped: initial - len(kept), Left: len(kept)}
}

type orderStage struct{}

// NewOrder sorts recommendations by descending score. Ties keep their order.
func NewOrder() Stage {
	return &orderStage{}
}

func (s *orderStage) Name() string { return "order" }

func (s *orderStage) Apply(recs []Recommendation) ([]Recommendation, Step) {
	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].Score > recs[j].Score
	})
	return recs, Step{Initial: len(recs), Left: len(recs)}
}

type limitStage struct {
	limit int
}

// NewLimit keeps the first limit recommendations.
func NewLimit(limit int) Stage {
	return &limitStage{limit: limit}
}

func (s *limitStage) Name() string { return "limit" }

func (s *limitStage) Apply(recs []Recommendation) ([]Recommendation, Step) {
	initial := len(recs)
	if initial > s.limit {
		recs = recs[:s.limit]
	}
	return recs, Step{Initial: initial, Dropped: initial - len(recs), Left: len(recs)}
}
