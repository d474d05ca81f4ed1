package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/rota-carreira/rota/internal/careers"
	"github.com/rota-carreira/rota/internal/questionnaire"
)

func excelAnswers() questionnaire.Answers {
	return questionnaire.Answers{
		questionnaire.FieldSkills:   questionnaire.SetValue([]string{"analitico", "organizacao", "atencao-detalhes", "paciencia"}),
		questionnaire.FieldAreas:    questionnaire.SetValue([]string{"administracao", "financas"}),
		questionnaire.FieldGoal:     questionnaire.TextValue("renda-rapida"),
		questionnaire.FieldWorkType: questionnaire.TextValue(questionnaire.WorkTypeRemote),
	}
}

func ids(recs []Recommendation) []string {
	out := make([]string, 0, len(recs))
	for _, rec := range recs {
		out = append(out, rec.Profile.ID)
	}
	return out
}

func TestScoreExactMatch(t *testing.T) {
	excel, ok := careers.Default().Find("especialista-excel")
	require.True(t, ok)

	rec := Score(excelAnswers(), excel)

	assert.Equal(t, 100, rec.Score)
	assert.Equal(t, []string{"analitico", "organizacao", "atencao-detalhes", "paciencia"}, rec.MatchedSkills)
}

func TestRecommendRanksCatalog(t *testing.T) {
	recs := Recommend(excelAnswers(), careers.Default())

	require.Len(t, recs, 4)
	assert.Equal(t, []string{"especialista-excel", "analista-dados", "marketing-digital", "consultor-vendas"}, ids(recs))
	assert.Equal(t, []int{100, 60, 40, 40}, []int{recs[0].Score, recs[1].Score, recs[2].Score, recs[3].Score})
	assert.Equal(t, []string{"analitico", "atencao-detalhes"}, recs[1].MatchedSkills)
}

func TestRecommendWithoutApplicableCriteria(t *testing.T) {
	answers := questionnaire.Answers{
		questionnaire.FieldName:  questionnaire.TextValue("Maria"),
		questionnaire.FieldAreas: questionnaire.SetValue(nil),
	}

	assert.Empty(t, Recommend(answers, careers.Default()))
	assert.Empty(t, Recommend(questionnaire.Answers{}, careers.Default()))

	for _, p := range careers.Default().Profiles() {
		assert.Equal(t, 0, Score(answers, p).Score, p.ID)
	}
}

func TestRecommendTiesKeepCatalogOrder(t *testing.T) {
	answers := questionnaire.Answers{
		questionnaire.FieldWorkType: questionnaire.TextValue(questionnaire.WorkTypeAny),
	}

	recs := Recommend(answers, careers.Default())

	require.Len(t, recs, 4)
	assert.Equal(t, careers.Default().IDs()[:4], ids(recs))
	for _, rec := range recs {
		assert.Equal(t, 50, rec.Score)
	}
}

func TestRecommendGoalOnly(t *testing.T) {
	answers := questionnaire.Answers{
		questionnaire.FieldGoal: questionnaire.TextValue("renda-rapida"),
	}

	recs := Recommend(answers, careers.Default())

	assert.Equal(t, []string{"especialista-excel", "marketing-digital", "suporte-ti", "consultor-vendas"}, ids(recs))
}

func TestRecommendNonRemoteWorkTypeScoresZero(t *testing.T) {
	answers := questionnaire.Answers{
		questionnaire.FieldWorkType: questionnaire.TextValue(questionnaire.WorkTypeOnSite),
	}

	assert.Empty(t, Recommend(answers, careers.Default()))
}

func TestRecommendInvariants(t *testing.T) {
	cases := []questionnaire.Answers{
		excelAnswers(),
		{questionnaire.FieldSkills: questionnaire.SetValue([]string{"comunicacao", "empatia", "paciencia", "negociacao"})},
		{
			questionnaire.FieldSkills:   questionnaire.SetValue([]string{"logica", "tecnologia", "criatividade"}),
			questionnaire.FieldAreas:    questionnaire.SetValue([]string{"tecnologia", "design", "saude"}),
			questionnaire.FieldGoal:     questionnaire.TextValue("crescimento"),
			questionnaire.FieldWorkType: questionnaire.TextValue(questionnaire.WorkTypeAny),
		},
	}

	for _, answers := range cases {
		recs := Recommend(answers, careers.Default())

		assert.LessOrEqual(t, len(recs), DefaultLimit)
		for i, rec := range recs {
			assert.GreaterOrEqual(t, rec.Score, DefaultMinimumScore)
			assert.LessOrEqual(t, rec.Score, 100)
			if i > 0 {
				assert.GreaterOrEqual(t, recs[i-1].Score, rec.Score)
			}
		}
	}
}

func TestEvaluate(t *testing.T) {
	gestor, ok := careers.Default().Find("gestor-projetos")
	require.True(t, ok)

	answers := questionnaire.Answers{
		questionnaire.FieldSkills: questionnaire.SetValue([]string{"organizacao", "lideranca", "paciencia"}),
		questionnaire.FieldAreas:  questionnaire.SetValue([]string{"administracao", "financas", "saude"}),
	}

	b := Evaluate(answers, gestor)

	assert.Equal(t, SkillWeight+AreaWeight, b.Applicable)
	assert.InDelta(t, 16.0, b.Skills, 1e-9)
	assert.InDelta(t, 10.0, b.Areas, 1e-9)
	assert.Zero(t, b.Goal)
	assert.Zero(t, b.WorkMode)
	assert.Equal(t, 37, b.Score())
	assert.Equal(t, []string{"organizacao", "lideranca"}, b.MatchedSkills)
}

func TestEvaluateSkillDenominatorIsProfileTags(t *testing.T) {
	profile := careers.Profile{ID: "p", Skills: []string{"logica", "paciencia"}}
	answers := questionnaire.Answers{
		questionnaire.FieldSkills: questionnaire.SetValue([]string{"logica", "paciencia", "empatia", "lideranca", "negociacao"}),
	}

	assert.Equal(t, 100, Score(answers, profile).Score)
}

func TestEvaluateEmptySelections(t *testing.T) {
	profile := careers.Profile{ID: "p", Skills: []string{"logica"}, WorkMode: "Remoto"}

	emptySkills := questionnaire.Answers{
		questionnaire.FieldSkills: questionnaire.SetValue(nil),
	}
	b := Evaluate(emptySkills, profile)
	assert.Equal(t, SkillWeight, b.Applicable)
	assert.Equal(t, 0, b.Score())

	noProfileSkills := careers.Profile{ID: "q", WorkMode: "Remoto"}
	answers := questionnaire.Answers{
		questionnaire.FieldSkills:   questionnaire.SetValue([]string{"logica"}),
		questionnaire.FieldWorkType: questionnaire.TextValue(questionnaire.WorkTypeRemote),
	}
	b = Evaluate(answers, noProfileSkills)
	assert.Equal(t, WorkModeWeight, b.Applicable)
	assert.Equal(t, 100, b.Score())
}

func TestEngineOptions(t *testing.T) {
	answers := questionnaire.Answers{
		questionnaire.FieldWorkType: questionnaire.TextValue(questionnaire.WorkTypeAny),
	}

	all := New(careers.Default(), Options{MinimumScore: 0, Limit: 10}, nil).Recommend(answers)
	assert.Len(t, all, 8)

	strict := New(careers.Default(), Options{MinimumScore: 51, Limit: 10}, nil).Recommend(answers)
	assert.Empty(t, strict)

	defaulted := New(careers.Default(), Options{MinimumScore: -5}, nil).Recommend(answers)
	assert.Len(t, defaulted, DefaultLimit)
}

func TestEngineDoesNotMutateAnswers(t *testing.T) {
	answers := excelAnswers()
	before := answers.Clone()

	New(careers.Default(), DefaultOptions(), nil).Recommend(answers)

	assert.Equal(t, before, answers)
}

func TestEngineLogsStages(t *testing.T) {
	core, observed := observer.New(zapcore.DebugLevel)

	New(careers.Default(), DefaultOptions(), zap.New(core)).Recommend(excelAnswers())

	stages := observed.FilterMessage("ranking stage").All()
	require.Len(t, stages, 3)

	threshold := stages[0].ContextMap()
	assert.Equal(t, "minimum_score", threshold["name"])
	assert.Equal(t, int64(8), threshold["initial"])
	assert.Equal(t, int64(4), threshold["dropped"])
	assert.Equal(t, int64(4), threshold["left"])

	assert.Len(t, observed.FilterMessage("profile scored").All(), 8)
	assert.Len(t, observed.FilterMessage("recommendations ready").All(), 1)
}
