package cmd

import (
	"errors"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rota-carreira/rota/internal/logger"
	q "github.com/rota-carreira/rota/internal/questionnaire"
	"github.com/rota-carreira/rota/internal/storage"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Recommend careers for an answers file or the last saved profile",
	Run: func(cmd *cobra.Command, _ []string) {
		runRecommend(cmd)
	},
}

func init() {
	rootCmd.AddCommand(recommendCmd)

	recommendCmd.Flags().StringP("answers", "a", "", "YAML or JSON file with the answers of every step")
	recommendCmd.Flags().StringP("format", "o", FormatText, "output format of the recommendations: text, json or yaml")
	recommendCmd.Flags().Bool("save", false, "remember the answers file as the saved profile")
}

func runRecommend(cmd *cobra.Command) {
	log, config := setup()

	answersFile := cmd.Flag("answers").Value.String()

	var answers q.Answers
	if answersFile != "" {
		ctrl := q.NewController(log)
		answers = playAnswersFile(answersFile, ctrl, log)

		if save, _ := cmd.Flags().GetBool("save"); save {
			saveProfile(config, ctrl.SessionID(), answers, log)
		}
	} else {
		answers = loadProfile(config, log)
	}

	recs := recommendFor(answers, config, log)

	if err := writeRecommendations(os.Stdout, cmd.Flag("format").Value.String(), recs); err != nil {
		log.Fatal("writing recommendations", zap.Error(err))
	}
}

// playAnswersFile walks a controller through the answers file the same way the
// interactive questionnaire does.
func playAnswersFile(path string, ctrl *q.Controller, log *zap.Logger) q.Answers {
	submission := readSubmission(path, log)

	answers, err := submission.Play(ctrl)
	if err != nil {
		for _, ferr := range q.FieldErrors(err) {
			log.Error("invalid answer",
				zap.Int(logger.FieldStep, ctrl.Current()),
				zap.String(logger.FieldName, ferr.Field),
				zap.String("message", ferr.Message),
			)
		}
		log.Fatal("answers file rejected", zap.String("path", path), zap.Error(err))
	}

	return answers
}

func readSubmission(path string, log *zap.Logger) q.Submission {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Fatal("reading answers file", zap.Error(err))
	}

	submission, err := q.ParseSubmission(data)
	if err != nil {
		log.Fatal("parsing answers file", zap.String("path", path), zap.Error(err))
	}

	return submission
}

func loadProfile(config *Config, log *zap.Logger) q.Answers {
	if config.ProfileFile == "" {
		log.Fatal("no answers to recommend for",
			zap.String("hint", "pass --answers or set profile-file (ROTA_PROFILE_FILE) to use the last saved profile"),
		)
	}

	store, err := storage.NewFileStore(config.ProfileFile)
	if err != nil {
		log.Fatal("opening profile store", zap.Error(err))
	}

	profile, err := store.Load()
	if errors.Is(err, storage.ErrNoProfile) {
		log.Fatal("no saved profile yet",
			zap.String("path", store.Path()),
			zap.String("hint", "answer the questionnaire with the run command first"),
		)
	}
	if err != nil {
		log.Fatal("loading saved profile", zap.Error(err))
	}

	log.Info("using saved profile",
		zap.String(logger.FieldSession, profile.SessionID),
		zap.Time("saved_at", profile.SavedAt),
	)

	return profile.Answers
}
