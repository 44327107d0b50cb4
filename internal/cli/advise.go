package cli

import (
	"context"
	"fmt"

	"skilladvisor/internal/advisor"
	"skilladvisor/internal/common"
	"skilladvisor/internal/types"

	"github.com/spf13/cobra"
)

var adviseCmd = &cobra.Command{
	Use:   "advise [resume-file]",
	Short: "Run the full advisory pipeline on a resume or skill list",
	Long: `Analyze a resume file (PDF, DOCX or plain text) or a manual skill list,
match the skills against the role catalog, and produce role recommendations,
a learning plan and chart specifications.

Provide either a resume file argument or a --skills list. With neither, every
role scores zero and the learning plan is empty.`,
	Args: cobra.MaximumNArgs(1),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := getConfigFromContext(cmd.Context())
		// Apply default format if not specified
		if adviseConfig.OutputFormat == "" {
			adviseConfig.OutputFormat = cfg.App.DefaultFormat
		}
		// Validate format against supported formats
		return common.ValidateOutputFormat(adviseConfig.OutputFormat, cfg.App.SupportedFormats)
	},
	RunE: runAdvise,
}

var (
	adviseConfig      common.CommandConfig
	adviseSkills      string
	adviseTopRoles    int
	adviseWeeklyHours int
)

func init() {
	adviseCmd.Flags().StringVarP(&adviseConfig.OutputFile, "output", "o", "", "Output file path (default: stdout)")
	adviseCmd.Flags().StringVar(&adviseConfig.OutputFormat, "format", "", "Output format: json, text, or markdown")
	adviseCmd.Flags().StringVar(&adviseSkills, "skills", "", "Comma-separated skill list instead of a resume file")
	adviseCmd.Flags().IntVar(&adviseTopRoles, "top-roles", 0, "How many top roles to recommend (default from config)")
	adviseCmd.Flags().IntVar(&adviseWeeklyHours, "weekly-hours", 0, "Weekly learning hours (default from config)")

	// Add completion for format flag
	_ = adviseCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		cfg := getConfigFromContext(cmd.Context())
		return common.GetSupportedFormats(cfg.App.SupportedFormats), cobra.ShellCompDirectiveNoFileComp
	})
}

func runAdvise(cmd *cobra.Command, args []string) error {
	cfg := getConfigFromContext(cmd.Context())
	logger := getLoggerFromContext(cmd.Context())

	catalog, err := cfg.ResolveCatalog()
	if err != nil {
		return fmt.Errorf("failed to load role catalog: %w", err)
	}
	svc := advisor.NewService(catalog, cfg.Advisor.TopRoles, logger)

	weeklyHours := adviseWeeklyHours
	if weeklyHours <= 0 {
		weeklyHours = cfg.Advisor.WeeklyHours
	}

	input := types.AdviseInput{
		ManualSkill: adviseSkills,
		WeeklyHours: weeklyHours,
		TopRoles:    adviseTopRoles,
	}

	var resumeFile string
	if len(args) == 1 {
		resumeFile = args[0]
	}

	logDetails := func(input types.AdviseInput, cfg common.CommandConfig) {
		logger.Info("Starting advisory pipeline",
			"resume_bytes", len(input.Resume),
			"manual_skills", input.ManualSkill != "",
			"output_format", cfg.OutputFormat)
	}

	adviseOperation := func(ctx context.Context, input types.AdviseInput) (types.AdviseOutput, error) {
		return svc.Advise(ctx, input)
	}

	err = common.RunPipelineCommand(
		cmd.Context(),
		logger,
		adviseConfig,
		input,
		resumeFile,
		adviseOperation,
		logDetails,
	)

	if err != nil {
		return fmt.Errorf("failed to run advisory pipeline: %w", err)
	}
	logger.Info("Advisory pipeline completed successfully")
	return nil
}
