package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rota-carreira/rota/internal/progress"
	q "github.com/rota-carreira/rota/internal/questionnaire"
	"github.com/rota-carreira/rota/internal/recommend"
	"github.com/rota-carreira/rota/internal/storage"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Answer the questionnaire interactively and get career recommendations",
	Run: func(cmd *cobra.Command, _ []string) {
		run(cmd)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringP("format", "o", FormatText, "output format of the recommendations: text, json or yaml")
}

// run is the main command for the cli.
func run(cmd *cobra.Command) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger, config := setup()

	logger.Info("starting the rota questionnaire", zap.String("version", version))

	// do not bother error since there is a valid parseable config
	pretty, _ := json.MarshalIndent(config, "", "  ")
	logger.Debug(fmt.Sprintf("starting with config: \n %s", pretty))

	engine, err := newEngine(config, logger)
	if err != nil {
		logger.Fatal("loading the career catalog", zap.Error(err))
	}

	ctrl := q.NewController(logger)

	answers, err := answerQuestionnaire(ctrl)
	if err != nil {
		if isPromptAbort(err) {
			logger.Info("exiting", zap.String("reason", "questionnaire abandoned"), zap.Int("step", ctrl.Current()))
			return
		}
		logger.Fatal("answering the questionnaire", zap.Error(err))
	}

	if config.Processing.Enabled {
		seq := progress.New(progress.DefaultStages(), config.Processing.Delay, logger)
		err := seq.Run(ctx, func(stage progress.Stage) {
			fmt.Fprintf(os.Stdout, "[%3d%%] %s\n", stage.Percent, stage.Message)
		})
		if err != nil {
			logger.Info("exiting", zap.String("reason", "processing interrupted"))
			return
		}
	}

	recs := engine.Recommend(answers)

	if err := writeRecommendations(os.Stdout, cmd.Flag("format").Value.String(), recs); err != nil {
		logger.Fatal("writing recommendations", zap.Error(err))
	}

	saveProfile(config, ctrl.SessionID(), answers, logger)
}

// answerQuestionnaire walks the steps until the final one is submitted.
func answerQuestionnaire(ctrl *q.Controller) (q.Answers, error) {
	for {
		def, err := q.Step(ctrl.Current())
		if err != nil {
			return nil, err
		}

		writeStepHeader(os.Stdout, ctrl, def)

		fields, err := askStep(def, ctrl.Answers())
		if err != nil {
			return nil, err
		}

		action, err := askAction(def.Number)
		if err != nil {
			return nil, err
		}

		switch action {
		case PromptNext:
			err = ctrl.Advance(def.Number+1, fields)
		case PromptSubmit:
			var answers q.Answers
			answers, err = ctrl.Submit(fields)
			if err == nil {
				return answers, nil
			}
		case PromptBack:
			err = ctrl.Retreat(def.Number - 1)
		case PromptExit:
			return nil, errExit
		default:
			return nil, fmt.Errorf("invalid action: %s", action)
		}

		var verr *q.ValidationError
		switch {
		case errors.As(err, &verr):
			fmt.Fprintln(os.Stdout, "Corrija os campos abaixo para continuar:")
			writeFieldErrors(os.Stdout, verr)
		case err != nil:
			return nil, err
		}
	}
}

func saveProfile(config *Config, sessionID string, answers q.Answers, logger *zap.Logger) {
	if config.ProfileFile == "" {
		return
	}

	store, err := storage.NewFileStore(config.ProfileFile)
	if err != nil {
		logger.Warn("profile is not saved", zap.Error(err))
		return
	}

	if _, err := store.Save(sessionID, answers); err != nil {
		logger.Warn("profile is not saved", zap.Error(err), zap.String("path", store.Path()))
		return
	}

	logger.Info("profile saved", zap.String("path", store.Path()))
}

// recommendFor is shared by the non-interactive commands.
func recommendFor(answers q.Answers, config *Config, logger *zap.Logger) []recommend.Recommendation {
	engine, err := newEngine(config, logger)
	if err != nil {
		logger.Fatal("loading the career catalog", zap.Error(err))
	}
	return engine.Recommend(answers)
}
