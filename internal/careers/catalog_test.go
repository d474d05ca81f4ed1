package careers

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	c := Default()

	require.Equal(t, 8, c.Len())
	assert.Equal(t, []string{
		"desenvolvedor-web",
		"analista-dados",
		"designer-ux",
		"especialista-excel",
		"marketing-digital",
		"suporte-ti",
		"gestor-projetos",
		"consultor-vendas",
	}, c.IDs())

	excel, ok := c.Find("especialista-excel")
	require.True(t, ok)
	assert.ElementsMatch(t, []string{"analitico", "organizacao", "atencao-detalhes", "paciencia"}, excel.Skills)
	assert.Contains(t, excel.Areas, "administracao")
	assert.Contains(t, excel.Areas, "financas")
	assert.Contains(t, excel.Goals, "renda-rapida")
	assert.Contains(t, excel.WorkMode, "Remoto")

	for _, p := range c.Profiles() {
		assert.NotEmpty(t, p.Title, p.ID)
		assert.NotEmpty(t, p.Skills, p.ID)
	}
}

func TestCatalogIsImmutable(t *testing.T) {
	c := Default()

	profiles := c.Profiles()
	profiles[0].Title = "changed"
	profiles[0].Skills[0] = "changed"

	found, ok := c.Find(profiles[0].ID)
	require.True(t, ok)
	assert.NotEqual(t, "changed", found.Title)
	assert.NotEqual(t, "changed", found.Skills[0])

	found.Areas[0] = "changed"
	again, _ := c.Find(found.ID)
	assert.NotEqual(t, "changed", again.Areas[0])
}

func TestNewCatalogErrors(t *testing.T) {
	tests := []struct {
		name     string
		profiles []Profile
	}{
		{name: "empty", profiles: nil},
		{name: "missing id", profiles: []Profile{{Title: "x"}}},
		{name: "duplicate id", profiles: []Profile{{ID: "a"}, {ID: " a "}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCatalog(tt.profiles)
			assert.Error(t, err)
		})
	}
}

func TestFindUnknown(t *testing.T) {
	_, ok := Default().Find("astronauta")
	assert.False(t, ok)
}

const validCatalog = `[
  {
    "id": "b-career",
    "title": "B",
    "work_mode": "Remoto",
    "skills": ["logica"],
    "areas": ["tecnologia"],
    "goals": ["crescimento"]
  },
  {
    "id": "a-career",
    "title": "A",
    "salary": "R$ 1",
    "work_mode": "Presencial",
    "skills": ["paciencia", "comunicacao"],
    "areas": [],
    "goals": ["renda-rapida"]
  }
]`

func TestParseKeepsDocumentOrder(t *testing.T) {
	c, err := Parse([]byte(validCatalog))
	require.NoError(t, err)

	assert.Equal(t, []string{"b-career", "a-career"}, c.IDs())

	a, ok := c.Find("a-career")
	require.True(t, ok)
	assert.Equal(t, "R$ 1", a.Salary)
	assert.Equal(t, []string{"paciencia", "comunicacao"}, a.Skills)
}

func TestParseSchemaViolations(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{name: "not an array", doc: `{"id": "x"}`},
		{name: "empty array", doc: `[]`},
		{name: "missing skills", doc: `[{"id": "x", "title": "X", "work_mode": "Remoto", "areas": [], "goals": []}]`},
		{name: "empty skills", doc: `[{"id": "x", "title": "X", "work_mode": "Remoto", "skills": [], "areas": [], "goals": []}]`},
		{name: "bad id", doc: `[{"id": "Bad Id", "title": "X", "work_mode": "Remoto", "skills": ["a"], "areas": [], "goals": []}]`},
		{name: "unknown property", doc: `[{"id": "x", "title": "X", "work_mode": "Remoto", "skills": ["a"], "areas": [], "goals": [], "extra": 1}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			require.Error(t, err)

			var schemaErr *SchemaError
			require.True(t, errors.As(err, &schemaErr), "expected schema error, got %v", err)
			assert.NotEmpty(t, schemaErr.Violations)
		})
	}
}

func TestParseDuplicateIDs(t *testing.T) {
	doc := `[
	  {"id": "x", "title": "X", "work_mode": "Remoto", "skills": ["a"], "areas": [], "goals": []},
	  {"id": "x", "title": "Y", "work_mode": "Remoto", "skills": ["b"], "areas": [], "goals": []}
	]`

	_, err := Parse([]byte(doc))
	assert.ErrorContains(t, err, "duplicate id")
}

func TestLoad(t *testing.T) {
	c, err := Load("  ")
	require.NoError(t, err)
	assert.Equal(t, Default().IDs(), c.IDs())

	path := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, os.WriteFile(path, []byte(validCatalog), 0o600))

	c, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, c.Len())

	_, err = Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
