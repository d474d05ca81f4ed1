package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/rota-carreira/rota/internal/questionnaire"
	"github.com/rota-carreira/rota/internal/recommend"
)

const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

const noRecommendations = "Nenhuma carreira atingiu a compatibilidade mínima. Revise suas respostas e tente novamente."

// writeRecommendations renders the ranked recommendations in the given format.
func writeRecommendations(w io.Writer, format string, recs []recommend.Recommendation) error {
	if recs == nil {
		recs = []recommend.Recommendation{}
	}

	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", FormatText:
		return writeText(w, recs)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(recs)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(recs); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

func writeText(w io.Writer, recs []recommend.Recommendation) error {
	if len(recs) == 0 {
		_, err := fmt.Fprintln(w, noRecommendations)
		return err
	}

	skills, _, _ := questionnaire.LookupField(questionnaire.FieldSkills)

	var b strings.Builder
	for i, rec := range recs {
		p := rec.Profile
		fmt.Fprintf(&b, "%d. %s (%d%% compatível)\n", i+1, p.Title, rec.Score)
		if p.Subtitle != "" {
			fmt.Fprintf(&b, "   %s\n", p.Subtitle)
		}
		if p.Description != "" {
			fmt.Fprintf(&b, "   %s\n", p.Description)
		}
		fmt.Fprintf(&b, "   Salário: %s\n", p.Salary)
		fmt.Fprintf(&b, "   Demanda: %s\n", p.Demand)
		fmt.Fprintf(&b, "   Tempo de transição: %s\n", p.TransitionTime)
		fmt.Fprintf(&b, "   Modalidade: %s\n", p.WorkMode)

		if len(rec.MatchedSkills) > 0 {
			labels := make([]string, 0, len(rec.MatchedSkills))
			for _, skill := range rec.MatchedSkills {
				labels = append(labels, skills.OptionLabel(skill))
			}
			fmt.Fprintf(&b, "   Habilidades em comum: %s\n", strings.Join(labels, ", "))
		}

		if i < len(recs)-1 {
			b.WriteString("\n")
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}
