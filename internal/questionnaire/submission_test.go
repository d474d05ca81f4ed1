package questionnaire

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const answersYAML = `
1:
  nome: Maria Souza
  idade: 34
  email: maria@example.com
  telefone: "11987654321"
  escolaridade: medio
  profissaoAtual: Recepcionista
2:
  habilidades: [analitico, organizacao, atencao-detalhes, paciencia]
3:
  tempoExperiencia: 5-10
  experienciaTech: basica
4:
  tipoTrabalho: remoto
  ritmoTrabalho: moderado
  areasInteresse:
    - administracao
    - financas
5:
  objetivo: renda-rapida
  tempoDisponivel: 5-10h
  expectativaSalario: 2k-4k
  termos: true
`

func TestParseSubmission(t *testing.T) {
	sub, err := ParseSubmission([]byte(answersYAML))
	require.NoError(t, err)

	assert.Equal(t, []int{1, 2, 3, 4, 5}, sub.StepNumbers())
	assert.Equal(t, "34", sub.Fields(1).Get(FieldAge))
	assert.Equal(t, "Recepcionista", sub.Fields(1).Get(FieldProfession))
	assert.Len(t, sub.Fields(2).Values(FieldSkills), 4)
	assert.Equal(t, []string{"administracao", "financas"}, sub.Fields(4).Values(FieldAreas))
	assert.True(t, sub.Fields(5).Checked(FieldConsent))
	assert.Empty(t, sub.Check())
}

const answersJSON = `{
  "1": {
    "nome": "Maria Souza",
    "idade": 34,
    "email": "maria@example.com",
    "escolaridade": "medio",
    "profissaoAtual": "Recepcionista"
  },
  "2": {"habilidades": ["analitico", "organizacao", "paciencia"]},
  "3": {"tempoExperiencia": "5-10", "experienciaTech": "basica"},
  "4": {"tipoTrabalho": "remoto", "ritmoTrabalho": "moderado"},
  "5": {
    "objetivo": "estabilidade",
    "tempoDisponivel": "5-10h",
    "expectativaSalario": "2k-4k",
    "termos": true
  }
}`

func TestParseSubmissionJSON(t *testing.T) {
	sub, err := ParseSubmission([]byte(answersJSON))
	require.NoError(t, err)

	assert.Equal(t, []int{1, 2, 3, 4, 5}, sub.StepNumbers())
	assert.Equal(t, "34", sub.Fields(1).Get(FieldAge))
	assert.Equal(t, []string{"analitico", "organizacao", "paciencia"}, sub.Fields(2).Values(FieldSkills))
	assert.True(t, sub.Fields(5).Checked(FieldConsent))

	answers, err := sub.Play(NewController(nil))
	require.NoError(t, err)
	assert.Equal(t, "estabilidade", answers.Text(FieldGoal))
}

func TestParseSubmissionErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{name: "not yaml", doc: "1: [unclosed"},
		{name: "unknown step", doc: "7:\n  nome: Maria\n"},
		{name: "step is not a mapping", doc: "1: texto\n"},
		{name: "step key is not a number", doc: `{"primeiro": {"nome": "Maria"}}`},
		{name: "quoted unknown step", doc: `{"0": {"nome": "Maria"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSubmission([]byte(tt.doc))
			assert.Error(t, err)
		})
	}
}

func TestSubmissionPlay(t *testing.T) {
	sub, err := ParseSubmission([]byte(answersYAML))
	require.NoError(t, err)

	c := NewController(nil)
	answers, err := sub.Play(c)
	require.NoError(t, err)

	assert.True(t, c.Submitted())
	assert.Equal(t, "remoto", answers.Text(FieldWorkType))
	assert.True(t, answers.Flag(FieldConsent))
}

func TestSubmissionPlayStopsAtInvalidStep(t *testing.T) {
	sub := validSubmission()
	sub[3] = Fields{FieldExperienceTime: {"1-3"}}

	c := NewController(nil)
	_, err := sub.Play(c)

	assert.Equal(t, []string{FieldTechExperience}, fieldNames(err))
	assert.Equal(t, 3, c.Current())
	assert.False(t, c.Submitted())
}

func TestSubmissionCheck(t *testing.T) {
	sub := validSubmission()
	delete(sub, 2)
	sub[1].Set(FieldAge, "15")

	failures := sub.Check()

	require.Len(t, failures, 2)
	assert.Equal(t, []string{FieldAge}, failures[1].Fields())
	assert.Equal(t, []string{FieldSkills}, failures[2].Fields())
}
