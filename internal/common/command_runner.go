package common

import (
	"context"

	"skilladvisor/internal/errors"
	"skilladvisor/internal/types"
)

// PipelineFunc is the generic signature for an advisory pipeline operation.
type PipelineFunc[Output any] func(ctx context.Context, input types.AdviseInput) (Output, error)

// LogDetailsFunc defines how to log the start of an operation.
type LogDetailsFunc func(input types.AdviseInput, cfg CommandConfig)

// RunPipelineCommand encapsulates the common logic for CLI commands that read
// an optional resume file, run a pipeline operation, and write formatted
// output.
func RunPipelineCommand[Output any](
	ctx context.Context,
	logger *errors.Logger,
	cmdConfig CommandConfig,
	input types.AdviseInput,
	resumeFile string,
	operation PipelineFunc[Output],
	logDetails LogDetailsFunc,
) error {
	fileProcessor := NewFileProcessor(logger)
	outputHandler := NewOutputHandler(logger)

	if resumeFile != "" {
		content, mimeType, err := fileProcessor.ReadResumeFile(resumeFile)
		if err != nil {
			return err
		}
		input.Resume = content
		input.MimeType = mimeType
	}

	if logDetails != nil {
		logDetails(input, cmdConfig)
	}

	result, err := operation(ctx, input)
	if err != nil {
		return err
	}

	return outputHandler.HandleOutput(result, cmdConfig)
}
