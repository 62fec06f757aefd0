package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spigell/skin-advisor/internal/consultation"
	"github.com/spigell/skin-advisor/internal/history"
	"github.com/spigell/skin-advisor/internal/knowledge"
	"github.com/spigell/skin-advisor/internal/logger"
	"github.com/spigell/skin-advisor/internal/skincare"
)

var consultCmd = &cobra.Command{
	Use:   "consult",
	Short: "Ask about your skin and get a recommendation with personalised advice",
	Run: func(cmd *cobra.Command, _ []string) {
		consult(cmd)
	},
}

func init() {
	rootCmd.AddCommand(consultCmd)

	consultCmd.Flags().StringP("skin-type", "s", "", "your skin type, asked interactively when empty")
	consultCmd.Flags().StringP("issue", "i", "", "your main skin issue, asked interactively when empty")
	consultCmd.Flags().Bool("no-ai", false, "do not request personalised advice")
	consultCmd.Flags().Bool("no-history", false, "do not append the consultation to the history file")
}

// consult runs one interactive consultation.
func consult(cmd *cobra.Command) {
	ctx := context.Background()

	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}
	defer logger.Sync()

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	logger.Debug("starting the consultation", zap.String("version", version))

	table, err := knowledge.Load(config.KnowledgeFile)
	if err != nil {
		logger.Fatal("loading knowledge table", zap.Error(err))
	}

	logger.Debug("knowledge table loaded", zap.Int("rows", table.Len()), zap.String("path", config.KnowledgeFile))

	deps := consultation.Deps{
		Resolver: skincare.NewResolver(table),
		Logger:   logger,
	}

	noAI, _ := cmd.Flags().GetBool("no-ai")
	if !noAI && config.AI != nil && config.AI.Enabled {
		advisor, err := newAdvisor(ctx, config.AI, logger)
		if err != nil {
			logger.Warn("skipping personalised advice", zap.Error(err))
		} else {
			deps.Advisor = advisor
		}
	}

	noHistory, _ := cmd.Flags().GetBool("no-history")
	if !noHistory && strings.TrimSpace(config.HistoryFile) != "" {
		deps.Recorder = history.NewFileRecorder(config.HistoryFile)
	}

	service := consultation.New(deps)

	rawSkin, err := flagOrPrompt(cmd, "skin-type", promptui.Prompt{
		Label: "Enter your skin type",
	})
	if err != nil {
		logger.Fatal("reading skin type", zap.Error(err))
	}

	rawIssue, err := flagOrPrompt(cmd, "issue", promptui.Prompt{
		Label:    "Enter your main skin issue",
		Validate: validateIssue,
	})
	if err != nil {
		logger.Fatal("reading skin issue", zap.Error(err))
	}

	session, err := service.Start(rawSkin, rawIssue)
	if err != nil {
		logger.Fatal("starting consultation", zap.Error(err))
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Detected skin type: %s\n", session.SkinType)
	fmt.Fprintf(out, "Issue: %s\n\n", session.Issue)

	answers, err := askQuestions(session.Questions)
	if err != nil {
		logger.Fatal("reading answers", zap.Error(err))
	}

	adviceCtx := ctx
	if config.AI != nil && config.AI.Timeout > 0 {
		var cancel context.CancelFunc
		adviceCtx, cancel = context.WithTimeout(ctx, config.AI.Timeout)
		defer cancel()
	}

	record, err := service.Complete(adviceCtx, session, answers)
	if err != nil {
		logger.Fatal("completing consultation", zap.Error(err))
	}

	printRecord(out, record)

	if deps.Recorder != nil {
		logger.Info("consultation saved", zap.String("history_file", config.HistoryFile), zap.String("session_id", record.ID))
	}
}

func flagOrPrompt(cmd *cobra.Command, flag string, prompt promptui.Prompt) (string, error) {
	if value, _ := cmd.Flags().GetString(flag); strings.TrimSpace(value) != "" {
		if prompt.Validate != nil {
			if err := prompt.Validate(value); err != nil {
				return "", err
			}
		}
		return value, nil
	}

	return prompt.Run()
}

func validateIssue(input string) error {
	if strings.TrimSpace(input) == "" {
		return consultation.ErrEmptyIssue
	}
	return nil
}

// askQuestions prompts for every question. Empty answers are kept so the
// record shows which questions were skipped.
func askQuestions(questions []string) ([]skincare.Answer, error) {
	answers := make([]skincare.Answer, 0, len(questions))
	for _, question := range questions {
		prompt := promptui.Prompt{Label: question}

		text, err := prompt.Run()
		if err != nil {
			if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
				return nil, err
			}
			return nil, fmt.Errorf("question %q: %w", question, err)
		}

		answers = append(answers, skincare.Answer{Question: question, Text: strings.TrimSpace(text)})
	}
	return answers, nil
}

func printRecord(out io.Writer, record *history.Record) {
	fmt.Fprintln(out, "Expert System Recommendation")
	fmt.Fprintln(out, record.Recommendation)
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Personalised Advice")
	fmt.Fprintln(out, record.Advice)
}
