package questionnaire

import "fmt"

// TotalSteps is the number of steps in the questionnaire.
const TotalSteps = 5

// Field names as the form submits them.
const (
	FieldName           = "nome"
	FieldAge            = "idade"
	FieldEmail          = "email"
	FieldPhone          = "telefone"
	FieldEducation      = "escolaridade"
	FieldProfession     = "profissaoAtual"
	FieldSkills         = "habilidades"
	FieldExperienceTime = "tempoExperiencia"
	FieldTechExperience = "experienciaTech"
	FieldWorkType       = "tipoTrabalho"
	FieldWorkPace       = "ritmoTrabalho"
	FieldAreas          = "areasInteresse"
	FieldGoal           = "objetivo"
	FieldTimeAvailable  = "tempoDisponivel"
	FieldSalary         = "expectativaSalario"
	FieldConsent        = "termos"
)

// Work type choices with a meaning for scoring.
const (
	WorkTypeRemote = "remoto"
	WorkTypeOnSite = "presencial"
	WorkTypeHybrid = "hibrido"
	WorkTypeAny    = "indiferente"
)

// FieldKind describes how a field is entered and how its value is collected.
type FieldKind int

const (
	InputText FieldKind = iota
	InputNumber
	InputEmail
	InputPhone
	InputSelect
	InputRadio
	InputMultiSelect
	InputConsent
)

// Multiple reports whether the field collects a set of options.
func (k FieldKind) Multiple() bool { return k == InputMultiSelect }

// Choice reports whether the field value must be one of its options.
func (k FieldKind) Choice() bool {
	return k == InputSelect || k == InputRadio || k == InputMultiSelect
}

type Option struct {
	Value string
	Label string
}

// Field is one input of a step. Rule is a validator tag evaluated against the
// collected value; an empty Rule makes the field optional.
type Field struct {
	Name    string
	Label   string
	Kind    FieldKind
	Options []Option
	Rule    string
	Message string
}

// OptionLabel returns the label of the option with the given value, or the
// value itself when the field has no such option.
func (f Field) OptionLabel(value string) string {
	for _, option := range f.Options {
		if option.Value == value {
			return option.Label
		}
	}
	return value
}

func (f Field) value(fields Fields) any {
	switch f.Kind {
	case InputMultiSelect:
		return fields.Values(f.Name)
	case InputConsent:
		return fields.Checked(f.Name)
	case InputEmail:
		// Surrounding whitespace makes an address invalid.
		return fields.Raw(f.Name)
	default:
		return fields.Get(f.Name)
	}
}

// StepDefinition is one page of the questionnaire.
type StepDefinition struct {
	Number int
	Title  string
	Fields []Field
}

// Field looks up a field of the step by name.
func (s StepDefinition) Field(name string) (Field, bool) {
	for _, field := range s.Fields {
		if field.Name == name {
			return field, true
		}
	}
	return Field{}, false
}

// Step returns the definition of step n.
func Step(n int) (StepDefinition, error) {
	if n < 1 || n > len(steps) {
		return StepDefinition{}, fmt.Errorf("%w: %d", ErrUnknownStep, n)
	}
	return steps[n-1], nil
}

// Steps returns all step definitions in order.
func Steps() []StepDefinition {
	out := make([]StepDefinition, len(steps))
	copy(out, steps)
	return out
}

// LookupField finds a field by name in any step.
func LookupField(name string) (Field, int, bool) {
	for _, step := range steps {
		if field, ok := step.Field(name); ok {
			return field, step.Number, true
		}
	}
	return Field{}, 0, false
}

var steps = []StepDefinition{
	{
		Number: 1,
		Title:  "Perfil básico",
		Fields: []Field{
			{
				Name: FieldName, Label: "Nome completo", Kind: InputText,
				Rule: "min=3", Message: "Digite seu nome completo (mínimo 3 caracteres)",
			},
			{
				Name: FieldAge, Label: "Idade", Kind: InputNumber,
				Rule: "age", Message: "Digite uma idade válida (entre 16 e 100 anos)",
			},
			{
				Name: FieldEmail, Label: "E-mail", Kind: InputEmail,
				Rule: "email_address", Message: "Digite um e-mail válido",
			},
			{
				Name: FieldPhone, Label: "Telefone (opcional)", Kind: InputPhone,
				Rule: "omitempty,phone", Message: "Digite um telefone válido (ex: (11) 98765-4321)",
			},
			{
				Name: FieldEducation, Label: "Escolaridade", Kind: InputSelect,
				Options: []Option{
					{Value: "fundamental", Label: "Ensino fundamental"},
					{Value: "medio", Label: "Ensino médio"},
					{Value: "tecnico", Label: "Curso técnico"},
					{Value: "superior-incompleto", Label: "Superior incompleto"},
					{Value: "superior", Label: "Superior completo"},
					{Value: "pos", Label: "Pós-graduação"},
				},
				Rule: "required", Message: "Selecione seu nível de escolaridade",
			},
			{
				Name: FieldProfession, Label: "Profissão atual", Kind: InputText,
				Rule: "min=3", Message: "Digite sua profissão atual (mínimo 3 caracteres)",
			},
		},
	},
	{
		Number: 2,
		Title:  "Habilidades",
		Fields: []Field{
			{
				Name: FieldSkills, Label: "Habilidades (escolha pelo menos 3)", Kind: InputMultiSelect,
				Options: []Option{
					{Value: "analitico", Label: "Pensamento analítico"},
					{Value: "organizacao", Label: "Organização"},
					{Value: "atencao-detalhes", Label: "Atenção aos detalhes"},
					{Value: "paciencia", Label: "Paciência"},
					{Value: "comunicacao", Label: "Comunicação"},
					{Value: "criatividade", Label: "Criatividade"},
					{Value: "logica", Label: "Raciocínio lógico"},
					{Value: "empatia", Label: "Empatia"},
					{Value: "lideranca", Label: "Liderança"},
					{Value: "resolucao-problemas", Label: "Resolução de problemas"},
					{Value: "tecnologia", Label: "Facilidade com tecnologia"},
					{Value: "negociacao", Label: "Negociação"},
				},
				Rule: "min=3", Message: "Por favor, selecione pelo menos 3 habilidades",
			},
		},
	},
	{
		Number: 3,
		Title:  "Experiência profissional",
		Fields: []Field{
			{
				Name: FieldExperienceTime, Label: "Há quanto tempo trabalha na área atual", Kind: InputSelect,
				Options: []Option{
					{Value: "menos-1", Label: "Menos de 1 ano"},
					{Value: "1-3", Label: "De 1 a 3 anos"},
					{Value: "3-5", Label: "De 3 a 5 anos"},
					{Value: "5-10", Label: "De 5 a 10 anos"},
					{Value: "mais-10", Label: "Mais de 10 anos"},
				},
				Rule: "required", Message: "Selecione há quanto tempo trabalha na área atual",
			},
			{
				Name: FieldTechExperience, Label: "Experiência com tecnologia", Kind: InputRadio,
				Options: []Option{
					{Value: "nenhuma", Label: "Nenhuma"},
					{Value: "basica", Label: "Básica"},
					{Value: "intermediaria", Label: "Intermediária"},
					{Value: "avancada", Label: "Avançada"},
				},
				Rule: "required", Message: "Selecione seu nível de experiência com tecnologia",
			},
		},
	},
	{
		Number: 4,
		Title:  "Interesses",
		Fields: []Field{
			{
				Name: FieldWorkType, Label: "Tipo de trabalho", Kind: InputRadio,
				Options: []Option{
					{Value: WorkTypeRemote, Label: "Remoto"},
					{Value: WorkTypeOnSite, Label: "Presencial"},
					{Value: WorkTypeHybrid, Label: "Híbrido"},
					{Value: WorkTypeAny, Label: "Tanto faz"},
				},
				Rule: "required", Message: "Selecione o tipo de trabalho que prefere",
			},
			{
				Name: FieldWorkPace, Label: "Ritmo de trabalho", Kind: InputRadio,
				Options: []Option{
					{Value: "tranquilo", Label: "Tranquilo e previsível"},
					{Value: "moderado", Label: "Moderado"},
					{Value: "dinamico", Label: "Dinâmico, com desafios constantes"},
				},
				Rule: "required", Message: "Selecione o ritmo de trabalho que combina com você",
			},
			{
				Name: FieldAreas, Label: "Áreas de interesse", Kind: InputMultiSelect,
				Options: []Option{
					{Value: "administracao", Label: "Administração"},
					{Value: "financas", Label: "Finanças"},
					{Value: "tecnologia", Label: "Tecnologia"},
					{Value: "marketing", Label: "Marketing"},
					{Value: "design", Label: "Design"},
					{Value: "vendas", Label: "Vendas"},
					{Value: "educacao", Label: "Educação"},
					{Value: "saude", Label: "Saúde"},
				},
			},
		},
	},
	{
		Number: 5,
		Title:  "Objetivos",
		Fields: []Field{
			{
				Name: FieldGoal, Label: "Principal objetivo", Kind: InputRadio,
				Options: []Option{
					{Value: "renda-rapida", Label: "Gerar renda rapidamente"},
					{Value: "crescimento", Label: "Crescer na carreira"},
					{Value: "estabilidade", Label: "Ter estabilidade"},
					{Value: "flexibilidade", Label: "Ter flexibilidade de horários"},
					{Value: "proposito", Label: "Trabalhar com propósito"},
				},
				Rule: "required", Message: "Selecione seu principal objetivo",
			},
			{
				Name: FieldTimeAvailable, Label: "Tempo disponível para estudo", Kind: InputSelect,
				Options: []Option{
					{Value: "ate-5h", Label: "Até 5 horas por semana"},
					{Value: "5-10h", Label: "De 5 a 10 horas por semana"},
					{Value: "10-20h", Label: "De 10 a 20 horas por semana"},
					{Value: "mais-20h", Label: "Mais de 20 horas por semana"},
				},
				Rule: "required", Message: "Selecione quanto tempo pode dedicar ao estudo",
			},
			{
				Name: FieldSalary, Label: "Expectativa salarial", Kind: InputSelect,
				Options: []Option{
					{Value: "ate-2k", Label: "Até R$ 2.000"},
					{Value: "2k-4k", Label: "De R$ 2.000 a R$ 4.000"},
					{Value: "4k-6k", Label: "De R$ 4.000 a R$ 6.000"},
					{Value: "mais-6k", Label: "Mais de R$ 6.000"},
				},
				Rule: "required", Message: "Selecione sua expectativa salarial",
			},
			{
				Name: FieldConsent, Label: "Concordo com os termos de uso", Kind: InputConsent,
				Rule: "required", Message: "Você precisa concordar com os termos para continuar",
			},
		},
	},
}
