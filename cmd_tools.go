package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/careerfuture/backend/linkedin"
	"github.com/careerfuture/backend/models"
	"github.com/careerfuture/backend/recommendations"
	"github.com/careerfuture/backend/server"
)

var (
	askGoal        string
	askCareerLevel string
	askInterests   []string
	askIndustry    string
	askLocation    string
	askExperience  string
	askLinkedIn    string

	recommendGoal        string
	recommendCareerLevel string
	recommendInterests   []string
	recommendLinkedIn    string
)

// askCmd answers a single chat message
var askCmd = &cobra.Command{
	Use:   "ask [message]",
	Short: "Ask the career assistant a question",
	Long: `Answers a message the same way POST /api/chat does.

Examples:
  careerfuture ask "How can I advance from senior developer to tech lead?"
  careerfuture ask --goal skill "what should I learn next?"
  careerfuture ask --linkedin https://www.linkedin.com/in/john-doe-tech/ "leadership workshops"`,
	Args: cobra.ExactArgs(1),
	RunE: runAsk,
}

// profileCmd analyses a LinkedIn profile URL
var profileCmd = &cobra.Command{
	Use:   "profile [linkedin-url]",
	Short: "Analyse a LinkedIn profile URL and print the result as YAML",
	Args:  cobra.ExactArgs(1),
	RunE:  runProfile,
}

// recommendCmd prints recommendations
var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Print recommendations for the given filters as YAML",
	Long: `Prints the recommendation set GET /api/recommendations would return.
With --linkedin the filters come from the analysed profile instead of flags.`,
	Args: cobra.NoArgs,
	RunE: runRecommend,
}

func init() {
	askCmd.Flags().StringVar(&askGoal, "goal", models.DefaultGoal, "Career goal (advancement, skill, job)")
	askCmd.Flags().StringVar(&askCareerLevel, "career-level", models.DefaultCareerLevel, "Career level")
	askCmd.Flags().StringSliceVar(&askInterests, "interest", models.DefaultInterests(), "Interest (repeatable)")
	askCmd.Flags().StringVar(&askIndustry, "industry", models.DefaultIndustry, "Industry")
	askCmd.Flags().StringVar(&askLocation, "location", models.DefaultLocation, "Preferred location")
	askCmd.Flags().StringVar(&askExperience, "experience", models.DefaultExperience, "Years of experience")
	askCmd.Flags().StringVar(&askLinkedIn, "linkedin", "", "Connect this LinkedIn profile URL first")

	recommendCmd.Flags().StringVar(&recommendGoal, "goal", models.DefaultGoal, "Career goal (advancement, skill, job)")
	recommendCmd.Flags().StringVar(&recommendCareerLevel, "career-level", "", "Career level")
	recommendCmd.Flags().StringSliceVar(&recommendInterests, "interest", nil, "Interest (repeatable)")
	recommendCmd.Flags().StringVar(&recommendLinkedIn, "linkedin", "", "Use the filters of this LinkedIn profile URL")
}

func runAsk(cmd *cobra.Command, args []string) error {
	ctx := commandContext(cmd)

	services, err := server.NewServices(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := services.Close(); err != nil {
			logger.Warn("failed to close clients", zap.Error(err))
		}
	}()

	prefs := models.DefaultPreferences()
	prefs.Goal = askGoal
	prefs.CareerLevel = askCareerLevel
	prefs.Interests = askInterests
	prefs.Industry = askIndustry
	prefs.Location = askLocation
	prefs.Experience = askExperience

	if askLinkedIn != "" {
		profile, err := services.Profiles.AnalyzeProfile(askLinkedIn)
		if err != nil {
			return err
		}
		prefs = linkedin.PreferencesFromProfile(profile)
	}

	reply := services.Chat.Respond(ctx, args[0], prefs)
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "[%s]\n%s\n", reply.Source, reply.Text)
	return nil
}

func runProfile(cmd *cobra.Command, args []string) error {
	analyzer, err := linkedin.NewAnalyzer(logger)
	if err != nil {
		return err
	}

	profile, err := analyzer.AnalyzeProfile(args[0])
	if err != nil {
		return err
	}

	return printYAML(cmd.OutOrStdout(), map[string]interface{}{
		"profile":     profile,
		"preferences": linkedin.PreferencesFromProfile(profile),
		"suggestions": linkedin.Suggestions(profile),
	})
}

func runRecommend(cmd *cobra.Command, args []string) error {
	generator, err := recommendations.NewGenerator()
	if err != nil {
		return err
	}

	if recommendLinkedIn == "" {
		return printYAML(cmd.OutOrStdout(), generator.Generate(recommendCareerLevel, recommendInterests, recommendGoal))
	}

	analyzer, err := linkedin.NewAnalyzer(logger)
	if err != nil {
		return err
	}
	profile, err := analyzer.AnalyzeProfile(recommendLinkedIn)
	if err != nil {
		return err
	}
	return printYAML(cmd.OutOrStdout(), generator.ForPreferences(linkedin.PreferencesFromProfile(profile)))
}

func printYAML(w io.Writer, v interface{}) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}
	return enc.Close()
}
