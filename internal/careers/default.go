package careers

// Default returns the built-in catalog of eight career paths.
func Default() *Catalog {
	c, err := NewCatalog(defaultProfiles)
	if err != nil {
		panic(err)
	}
	return c
}

var defaultProfiles = []Profile{
	{
		ID:             "desenvolvedor-web",
		Title:          "Desenvolvedor(a) Web",
		Subtitle:       "Crie sites e aplicações",
		Description:    "Constrói páginas e sistemas web com HTML, CSS, JavaScript e frameworks modernos.",
		Salary:         "R$ 3.000 - R$ 8.000",
		Demand:         "Muito alta",
		TransitionTime: "8 a 12 meses",
		WorkMode:       "Remoto / Híbrido",
		Skills:         []string{"logica", "resolucao-problemas", "tecnologia", "criatividade"},
		Areas:          []string{"tecnologia", "design"},
		Goals:          []string{"crescimento", "flexibilidade"},
	},
	{
		ID:             "analista-dados",
		Title:          "Analista de Dados",
		Subtitle:       "Transforme números em decisões",
		Description:    "Coleta, organiza e interpreta dados para apoiar decisões de negócio com planilhas, SQL e painéis.",
		Salary:         "R$ 4.000 - R$ 9.000",
		Demand:         "Alta",
		TransitionTime: "6 a 10 meses",
		WorkMode:       "Remoto / Híbrido",
		Skills:         []string{"analitico", "logica", "atencao-detalhes", "tecnologia"},
		Areas:          []string{"tecnologia", "financas", "administracao"},
		Goals:          []string{"crescimento", "estabilidade"},
	},
	{
		ID:             "designer-ux",
		Title:          "Designer UX/UI",
		Subtitle:       "Desenhe experiências digitais",
		Description:    "Pesquisa necessidades de usuários e projeta interfaces simples e agradáveis.",
		Salary:         "R$ 3.500 - R$ 8.500",
		Demand:         "Alta",
		TransitionTime: "6 a 9 meses",
		WorkMode:       "Remoto",
		Skills:         []string{"criatividade", "empatia", "comunicacao", "resolucao-problemas"},
		Areas:          []string{"design", "tecnologia", "marketing"},
		Goals:          []string{"crescimento", "flexibilidade", "proposito"},
	},
	{
		ID:             "especialista-excel",
		Title:          "Especialista em Excel",
		Subtitle:       "Planilhas que organizam empresas",
		Description:    "Automatiza controles, relatórios e análises financeiras com fórmulas avançadas, tabelas dinâmicas e macros.",
		Salary:         "R$ 2.500 - R$ 5.000",
		Demand:         "Alta",
		TransitionTime: "2 a 4 meses",
		WorkMode:       "Remoto ou presencial",
		Skills:         []string{"analitico", "organizacao", "atencao-detalhes", "paciencia"},
		Areas:          []string{"administracao", "financas"},
		Goals:          []string{"renda-rapida", "estabilidade"},
	},
	{
		ID:             "marketing-digital",
		Title:          "Analista de Marketing Digital",
		Subtitle:       "Conecte marcas e pessoas",
		Description:    "Planeja campanhas, produz conteúdo e acompanha métricas de redes sociais e anúncios.",
		Salary:         "R$ 2.800 - R$ 6.500",
		Demand:         "Alta",
		TransitionTime: "4 a 6 meses",
		WorkMode:       "Remoto / Híbrido",
		Skills:         []string{"criatividade", "comunicacao", "analitico", "negociacao"},
		Areas:          []string{"marketing", "vendas", "design"},
		Goals:          []string{"renda-rapida", "flexibilidade", "crescimento"},
	},
	{
		ID:             "suporte-ti",
		Title:          "Técnico(a) de Suporte em TI",
		Subtitle:       "A porta de entrada da tecnologia",
		Description:    "Atende usuários, resolve problemas de computadores, redes e sistemas e documenta soluções.",
		Salary:         "R$ 2.000 - R$ 4.500",
		Demand:         "Muito alta",
		TransitionTime: "3 a 6 meses",
		WorkMode:       "Presencial / Híbrido",
		Skills:         []string{"paciencia", "comunicacao", "resolucao-problemas", "tecnologia"},
		Areas:          []string{"tecnologia"},
		Goals:          []string{"renda-rapida", "estabilidade"},
	},
	{
		ID:             "gestor-projetos",
		Title:          "Gestor(a) de Projetos",
		Subtitle:       "Coordene equipes e entregas",
		Description:    "Planeja cronogramas, organiza equipes e acompanha riscos usando metodologias ágeis.",
		Salary:         "R$ 5.000 - R$ 12.000",
		Demand:         "Média",
		TransitionTime: "6 a 12 meses",
		WorkMode:       "Híbrido",
		Skills:         []string{"lideranca", "organizacao", "comunicacao", "negociacao", "resolucao-problemas"},
		Areas:          []string{"administracao", "tecnologia"},
		Goals:          []string{"crescimento", "estabilidade"},
	},
	{
		ID:             "consultor-vendas",
		Title:          "Consultor(a) de Vendas Online",
		Subtitle:       "Venda em canais digitais",
		Description:    "Atende clientes por chat e redes sociais, negocia e acompanha o funil de vendas.",
		Salary:         "R$ 2.000 - R$ 6.000 + comissões",
		Demand:         "Alta",
		TransitionTime: "1 a 3 meses",
		WorkMode:       "Remoto / Presencial",
		Skills:         []string{"comunicacao", "negociacao", "empatia", "paciencia"},
		Areas:          []string{"vendas", "marketing"},
		Goals:          []string{"renda-rapida", "flexibilidade"},
	},
}
