package cmd

import (
	"fmt"
	"io"
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spigell/skin-advisor/internal/knowledge"
	"github.com/spigell/skin-advisor/internal/logger"
	"github.com/spigell/skin-advisor/internal/skincare"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Print the knowledge table recommendation without questions or AI advice",
	Run: func(cmd *cobra.Command, _ []string) {
		logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
		if err != nil {
			log.Fatalf("creating a logger: %s", err)
		}
		defer logger.Sync()

		config, err := getConfig()
		if err != nil {
			logger.Fatal("getting a config", zap.Error(err))
		}

		table, err := knowledge.Load(config.KnowledgeFile)
		if err != nil {
			logger.Fatal("loading knowledge table", zap.Error(err))
		}

		rawSkin, _ := cmd.Flags().GetString("skin-type")
		rawIssue, _ := cmd.Flags().GetString("issue")

		if err := recommend(cmd.OutOrStdout(), skincare.NewResolver(table), rawSkin, rawIssue); err != nil {
			logger.Fatal("recommending", zap.Error(err))
		}
	},
}

func init() {
	rootCmd.AddCommand(recommendCmd)

	recommendCmd.Flags().StringP("skin-type", "s", "", "your skin type")
	recommendCmd.Flags().StringP("issue", "i", "", "your main skin issue")

	recommendCmd.MarkFlagRequired("issue")
}

func recommend(out io.Writer, resolver *skincare.Resolver, rawSkin, rawIssue string) error {
	if err := validateIssue(rawIssue); err != nil {
		return err
	}

	skin := skincare.NormalizeSkinType(rawSkin)
	issue := skincare.NormalizeIssue(rawIssue)
	rec := resolver.Recommend(issue, skin)

	fmt.Fprintf(out, "Detected skin type: %s\n", skin)
	fmt.Fprintf(out, "Issue: %s\n\n", issue)

	fmt.Fprintln(out, "Follow-up questions")
	for i, question := range skincare.FollowUpQuestions(issue) {
		fmt.Fprintf(out, "%d. %s\n", i+1, question)
	}
	fmt.Fprintln(out)

	fmt.Fprintf(out, "Expert System Recommendation (%s)\n", rec.Tier)
	fmt.Fprintln(out, rec.Text)
	return nil
}
