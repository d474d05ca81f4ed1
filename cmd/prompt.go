package cmd

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/manifoldco/promptui"

	q "github.com/rota-carreira/rota/internal/questionnaire"
)

const (
	PromptNext    = "Próxima etapa"
	PromptSubmit  = "Ver recomendações"
	PromptBack    = "Voltar"
	PromptExit    = "Sair"
	PromptDone    = "Concluir"
	PromptYes     = "Sim"
	PromptNo      = "Não"
	checkedMark   = "[x] "
	uncheckedMark = "[ ] "
	selectSize    = 12
)

var errExit = errors.New("exit requested")

// askStep prompts every field of def, prefilled with what was collected before.
func askStep(def q.StepDefinition, answers q.Answers) (q.Fields, error) {
	fields := make(q.Fields, len(def.Fields))

	for _, field := range def.Fields {
		var (
			values []string
			err    error
		)

		switch {
		case field.Kind.Multiple():
			values, err = askMultiSelect(field, answers.Set(field.Name))
		case field.Kind.Choice():
			var value string
			value, err = askSelect(field, answers.Text(field.Name))
			values = []string{value}
		case field.Kind == q.InputConsent:
			var value string
			value, err = askConsent(field, answers.Flag(field.Name))
			values = []string{value}
		default:
			var value string
			value, err = askText(field, answers.Text(field.Name))
			values = []string{value}
		}

		if err != nil {
			return nil, err
		}

		fields.Set(field.Name, values...)
	}

	return fields, nil
}

func askText(field q.Field, current string) (string, error) {
	prompt := promptui.Prompt{
		Label:     field.Label,
		Default:   current,
		AllowEdit: true,
		Validate: func(input string) error {
			if ferr := q.ValidateField(field.Name, input); ferr != nil {
				return ferr
			}
			return nil
		},
	}

	value, err := prompt.Run()
	if err != nil {
		return "", err
	}

	value = strings.TrimSpace(value)
	if field.Kind == q.InputPhone && value != "" {
		value = q.FormatPhone(value)
	}

	return value, nil
}

func askSelect(field q.Field, current string) (string, error) {
	labels := make([]string, 0, len(field.Options))
	cursor := 0
	for i, option := range field.Options {
		labels = append(labels, option.Label)
		if option.Value == current {
			cursor = i
		}
	}

	prompt := promptui.Select{
		Label:     field.Label,
		Items:     labels,
		CursorPos: cursor,
		Size:      selectSize,
	}

	i, _, err := prompt.Run()
	if err != nil {
		return "", err
	}

	return field.Options[i].Value, nil
}

// askMultiSelect toggles options until the user picks PromptDone.
// The returned selection keeps the order the options were picked in.
func askMultiSelect(field q.Field, current []string) ([]string, error) {
	selected := slices.Clone(current)
	cursor := 0

	for {
		items := make([]string, 0, len(field.Options)+1)
		for _, option := range field.Options {
			mark := uncheckedMark
			if slices.Contains(selected, option.Value) {
				mark = checkedMark
			}
			items = append(items, mark+option.Label)
		}
		items = append(items, PromptDone)

		prompt := promptui.Select{
			Label:     fmt.Sprintf("%s (%d selecionadas)", field.Label, len(selected)),
			Items:     items,
			CursorPos: cursor,
			Size:      selectSize + 1,
		}

		i, _, err := prompt.Run()
		if err != nil {
			return nil, err
		}

		if i == len(field.Options) {
			return selected, nil
		}

		cursor = i
		value := field.Options[i].Value
		if idx := slices.Index(selected, value); idx >= 0 {
			selected = slices.Delete(selected, idx, idx+1)
		} else {
			selected = append(selected, value)
		}
	}
}

func askConsent(field q.Field, current bool) (string, error) {
	cursor := 1
	if current {
		cursor = 0
	}

	prompt := promptui.Select{
		Label:     field.Label,
		Items:     []string{PromptYes, PromptNo},
		CursorPos: cursor,
	}

	_, answer, err := prompt.Run()
	if err != nil {
		return "", err
	}

	if answer == PromptYes {
		return "sim", nil
	}
	return "", nil
}

// navigationItems lists the actions offered at the end of step n.
func navigationItems(n int) []string {
	items := make([]string, 0, 3)
	if n < q.TotalSteps {
		items = append(items, PromptNext)
	} else {
		items = append(items, PromptSubmit)
	}
	if n > 1 {
		items = append(items, PromptBack)
	}
	return append(items, PromptExit)
}

func askAction(n int) (string, error) {
	prompt := promptui.Select{
		Label: "O que deseja fazer?",
		Items: navigationItems(n),
	}

	_, action, err := prompt.Run()
	return action, err
}

// writeStepHeader prints the progress bar and the step indicators.
func writeStepHeader(w io.Writer, ctrl *q.Controller, def q.StepDefinition) {
	var indicators strings.Builder
	for _, step := range q.Steps() {
		switch ctrl.Status(step.Number) {
		case q.StatusCompleted:
			indicators.WriteString("[✓]")
		case q.StatusActive:
			fmt.Fprintf(&indicators, "[%d]", step.Number)
		default:
			indicators.WriteString("[ ]")
		}
	}

	fmt.Fprintf(w, "\n%s %d%%\nEtapa %d de %d: %s\n",
		indicators.String(), ctrl.Progress(), def.Number, q.TotalSteps, def.Title)
}

// writeFieldErrors prints the messages of a rejected step under its fields.
func writeFieldErrors(w io.Writer, err error) {
	for _, ferr := range q.FieldErrors(err) {
		label := ferr.Field
		if field, _, ok := q.LookupField(ferr.Field); ok {
			label = field.Label
		}
		fmt.Fprintf(w, "  %s: %s\n", label, ferr.Message)
	}
}

func isPromptAbort(err error) bool {
	return errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) || errors.Is(err, errExit)
}
