package cli

import (
	"context"
	"fmt"

	"skilladvisor/internal/advisor"
	"skilladvisor/internal/common"
	"skilladvisor/internal/plan"
	"skilladvisor/internal/types"

	"github.com/spf13/cobra"
)

var planCmd = &cobra.Command{
	Use:   "plan [resume-file]",
	Short: "Generate a learning plan for missing skills",
	Long: `Generate a learning plan covering the skills missing from the
top-matched roles. Each plan item names a missing skill with placeholder
learning resources.

By default the plan is written to ` + plan.Filename + ` in the current
directory; use --output to change the destination or "-o -" for stdout.`,
	Args: cobra.MaximumNArgs(1),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := getConfigFromContext(cmd.Context())
		if planConfig.OutputFile == "" {
			planConfig.OutputFile = plan.Filename
		} else if planConfig.OutputFile == "-" {
			planConfig.OutputFile = ""
		}
		if planConfig.OutputFormat == "" {
			planConfig.OutputFormat = cfg.App.DefaultFormat
		}
		return common.ValidateOutputFormat(planConfig.OutputFormat, cfg.App.SupportedFormats)
	},
	RunE: runPlan,
}

var (
	planConfig   common.CommandConfig
	planSkills   string
	planTopRoles int
)

func init() {
	planCmd.Flags().StringVarP(&planConfig.OutputFile, "output", "o", "", "Output file path (default: "+plan.Filename+", use - for stdout)")
	planCmd.Flags().StringVar(&planConfig.OutputFormat, "format", "", "Output format: json, text, or markdown")
	planCmd.Flags().StringVar(&planSkills, "skills", "", "Comma-separated skill list instead of a resume file")
	planCmd.Flags().IntVar(&planTopRoles, "top-roles", 0, "How many top roles feed the plan (default from config)")

	_ = planCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		cfg := getConfigFromContext(cmd.Context())
		return common.GetSupportedFormats(cfg.App.SupportedFormats), cobra.ShellCompDirectiveNoFileComp
	})
}

func runPlan(cmd *cobra.Command, args []string) error {
	cfg := getConfigFromContext(cmd.Context())
	logger := getLoggerFromContext(cmd.Context())

	catalog, err := cfg.ResolveCatalog()
	if err != nil {
		return fmt.Errorf("failed to load role catalog: %w", err)
	}
	svc := advisor.NewService(catalog, cfg.Advisor.TopRoles, logger)

	input := types.AdviseInput{
		ManualSkill: planSkills,
		TopRoles:    planTopRoles,
	}

	var resumeFile string
	if len(args) == 1 {
		resumeFile = args[0]
	}

	logDetails := func(input types.AdviseInput, cfg common.CommandConfig) {
		logger.Info("Building learning plan",
			"resume_bytes", len(input.Resume),
			"manual_skills", input.ManualSkill != "",
			"output_file", cfg.OutputFile)
	}

	planOperation := func(ctx context.Context, input types.AdviseInput) ([]types.PlanItem, error) {
		output, err := svc.Advise(ctx, input)
		if err != nil {
			return nil, err
		}
		return output.Plan, nil
	}

	err = common.RunPipelineCommand(
		cmd.Context(),
		logger,
		planConfig,
		input,
		resumeFile,
		planOperation,
		logDetails,
	)

	if err != nil {
		return fmt.Errorf("failed to build learning plan: %w", err)
	}
	logger.Info("Learning plan completed successfully")
	return nil
}
