package cli

import (
	"context"
	"fmt"

	"skilladvisor/internal/advisor"
	"skilladvisor/internal/common"
	"skilladvisor/internal/types"

	"github.com/spf13/cobra"
)

var extractCmd = &cobra.Command{
	Use:   "extract [resume-file]",
	Short: "Extract skills, education and experience from a resume",
	Long: `Extract the user profile from a resume file (PDF, DOCX or plain text)
without running role matching. Output includes skill confidence scores,
education keywords and experience mentions, plus any parse warnings.`,
	Args: cobra.ExactArgs(1),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := getConfigFromContext(cmd.Context())
		if extractConfig.OutputFormat == "" {
			extractConfig.OutputFormat = cfg.App.DefaultFormat
		}
		return common.ValidateOutputFormat(extractConfig.OutputFormat, cfg.App.SupportedFormats)
	},
	RunE: runExtract,
}

var extractConfig common.CommandConfig

func init() {
	extractCmd.Flags().StringVarP(&extractConfig.OutputFile, "output", "o", "", "Output file path (default: stdout)")
	extractCmd.Flags().StringVar(&extractConfig.OutputFormat, "format", "", "Output format: json, text, or markdown")

	_ = extractCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		cfg := getConfigFromContext(cmd.Context())
		return common.GetSupportedFormats(cfg.App.SupportedFormats), cobra.ShellCompDirectiveNoFileComp
	})
}

func runExtract(cmd *cobra.Command, args []string) error {
	cfg := getConfigFromContext(cmd.Context())
	logger := getLoggerFromContext(cmd.Context())

	catalog, err := cfg.ResolveCatalog()
	if err != nil {
		return fmt.Errorf("failed to load role catalog: %w", err)
	}
	svc := advisor.NewService(catalog, cfg.Advisor.TopRoles, logger)

	logDetails := func(input types.AdviseInput, cfg common.CommandConfig) {
		logger.Info("Starting resume extraction",
			"resume_bytes", len(input.Resume),
			"mime_type", input.MimeType,
			"output_format", cfg.OutputFormat)
	}

	extractOperation := func(ctx context.Context, input types.AdviseInput) (types.ExtractOutput, error) {
		return svc.Extract(ctx, input.Resume, input.MimeType)
	}

	err = common.RunPipelineCommand(
		cmd.Context(),
		logger,
		extractConfig,
		types.AdviseInput{},
		args[0],
		extractOperation,
		logDetails,
	)

	if err != nil {
		return fmt.Errorf("failed to extract resume: %w", err)
	}
	logger.Info("Resume extraction completed successfully")
	return nil
}
