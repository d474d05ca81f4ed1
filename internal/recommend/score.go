package recommend

import (
	"math"
	"slices"
	"strings"

	"github.com/rota-carreira/rota/internal/careers"
	"github.com/rota-carreira/rota/internal/questionnaire"
)

// Criterion weights. A profile is only scored on the criteria the answers
// have data for, so the score is earned/applicable scaled to 100.
const (
	SkillWeight    = 40
	AreaWeight     = 30
	GoalWeight     = 20
	WorkModeWeight = 10

	// remoteMarker is what a profile work mode contains when it allows remote work.
	remoteMarker = "Remoto"
)

// Recommendation is a profile with its compatibility score for one answer record.
type Recommendation struct {
	Profile       careers.Profile `json:"profile" yaml:"profile"`
	Score         int             `json:"score" yaml:"score"`
	MatchedSkills []string        `json:"matched_skills" yaml:"matched_skills"`
}

// Breakdown is the per-criterion detail behind a score.
type Breakdown struct {
	Earned        float64
	Applicable    int
	Skills        float64
	Areas         float64
	Goal          float64
	WorkMode      float64
	MatchedSkills []string
}

// Score returns the 0..100 compatibility of profile with answers.
// Answers with no applicable criterion score 0.
func (b Breakdown) Score() int {
	if b.Applicable == 0 {
		return 0
	}
	return int(math.Round(b.Earned / float64(b.Applicable) * 100))
}

// Evaluate computes the criteria breakdown of profile against answers.
func Evaluate(answers questionnaire.Answers, profile careers.Profile) Breakdown {
	var b Breakdown

	// The denominator is the profile's tag count, not the user's selection.
	if answers.HasSet(questionnaire.FieldSkills) && len(profile.Skills) > 0 {
		b.MatchedSkills = intersect(answers.Set(questionnaire.FieldSkills), profile.Skills)
		b.Skills = float64(len(b.MatchedSkills)) / float64(len(profile.Skills)) * SkillWeight
		b.Applicable += SkillWeight
	}

	if areas := answers.Set(questionnaire.FieldAreas); len(areas) > 0 {
		b.Areas = float64(len(intersect(areas, profile.Areas))) / float64(len(areas)) * AreaWeight
		b.Applicable += AreaWeight
	}

	if goal := answers.Text(questionnaire.FieldGoal); goal != "" {
		if slices.Contains(profile.Goals, goal) {
			b.Goal = GoalWeight
		}
		b.Applicable += GoalWeight
	}

	if workType := answers.Text(questionnaire.FieldWorkType); workType != "" {
		switch {
		case workType == questionnaire.WorkTypeRemote && strings.Contains(profile.WorkMode, remoteMarker):
			b.WorkMode = WorkModeWeight
		case workType == questionnaire.WorkTypeAny:
			b.WorkMode = WorkModeWeight / 2
		}
		b.Applicable += WorkModeWeight
	}

	b.Earned = b.Skills + b.Areas + b.Goal + b.WorkMode

	return b
}

// Score builds the recommendation of profile for answers.
func Score(answers questionnaire.Answers, profile careers.Profile) Recommendation {
	b := Evaluate(answers, profile)
	matched := b.MatchedSkills
	if matched == nil {
		matched = []string{}
	}
	return Recommendation{
		Profile:       profile,
		Score:         b.Score(),
		MatchedSkills: matched,
	}
}

// intersect returns the items of selected that are in tags, in selection order.
func intersect(selected, tags []string) []string {
	result := make([]string, 0, len(selected))
	for _, item := range selected {
		if slices.Contains(tags, item) {
			result = append(result, item)
		}
	}
	return result
}
