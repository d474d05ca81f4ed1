package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	q "github.com/rota-carreira/rota/internal/questionnaire"
)

var validateCmd = &cobra.Command{
	Use:   "validate <answers-file>",
	Short: "Check an answers file against every step and list all invalid fields",
	Args:  cobra.ExactArgs(1),
	Run: func(_ *cobra.Command, args []string) {
		log, _ := setup()

		submission := readSubmission(args[0], log)
		if !writeReport(os.Stdout, submission) {
			log.Fatal("answers file is invalid", zap.String("path", args[0]))
		}

		log.Info("answers file is valid", zap.String("path", args[0]))
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

// writeReport lists the invalid fields of every step and reports whether the
// submission is valid as a whole.
func writeReport(w io.Writer, submission q.Submission) bool {
	failures := submission.Check()

	for _, def := range q.Steps() {
		verr, failed := failures[def.Number]
		if !failed {
			fmt.Fprintf(w, "Etapa %d (%s): ok\n", def.Number, def.Title)
			continue
		}

		fmt.Fprintf(w, "Etapa %d (%s): %d campo(s) inválido(s)\n", def.Number, def.Title, len(verr.Errors))
		writeFieldErrors(w, verr)
	}

	return len(failures) == 0
}
