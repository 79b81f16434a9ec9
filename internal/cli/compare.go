package cli

import (
	"fmt"
	"reflect"
	"slices"

	"github.com/spf13/cobra"

	"github.com/roach88/blockmine/internal/engine"
)

// CompareOptions holds flags for the compare command.
type CompareOptions struct {
	*RootOptions
	WindowSize int
}

// CompareResult is the payload of the compare command.
type CompareResult struct {
	Agree      bool   `json:"agree"`
	Conforming bool   `json:"conforming"`
	WindowSize int    `json:"window_size"`
	BlocksRead int    `json:"blocks_read"`
	PairSum    string `json:"pairsum"`    // verdict of the pair-sum strategy
	TwoPointer string `json:"twopointer"` // verdict of the two-pointer strategy
}

// NewCompareCommand creates the compare command.
func NewCompareCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CompareOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "compare <blocks-file>",
		Short: "Run both validation strategies and verify they agree",
		Long: `Run both validation strategies over the same block stream and verify
they produce the same verdict: same acceptance, same offending value and
position on rejection.

The strategies are interchangeable; a disagreement means an engine bug
and exits with a command error.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompare(opts, args[0], cmd)
		},
	}

	cmd.Flags().IntVarP(&opts.WindowSize, "window", "w", DefaultWindowSize, "validation window size")

	return cmd
}

func runCompare(opts *CompareOptions, path string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}
	logger := newCommandLogger(opts.RootOptions, cmd)

	if opts.WindowSize < 2 {
		message := fmt.Sprintf("window size must be at least 2, got %d", opts.WindowSize)
		_ = formatter.Error(ErrCodeGeneric, message, nil)
		return NewExitError(ExitCommandError, message)
	}

	blocks, err := LoadBlocks(path)
	if err != nil {
		return outputLoadError(formatter, err)
	}
	logger.Info("blocks loaded", "path", path, "count", len(blocks))

	psBuild, _ := strategyConstructor("pairsum")
	tpBuild, _ := strategyConstructor("twopointer")

	psErr := engine.TryCreateAndExtend(opts.WindowSize, psBuild, slices.Values(blocks))
	tpErr := engine.TryCreateAndExtend(opts.WindowSize, tpBuild, slices.Values(blocks))

	result := CompareResult{
		Agree:      reflect.DeepEqual(psErr, tpErr),
		Conforming: psErr == nil,
		WindowSize: opts.WindowSize,
		BlocksRead: len(blocks),
		PairSum:    verdict(psErr),
		TwoPointer: verdict(tpErr),
	}

	if !result.Agree {
		message := fmt.Sprintf("strategies disagree: pairsum=%s twopointer=%s", result.PairSum, result.TwoPointer)
		_ = formatter.Error(ErrCodeMismatch, message, result)
		return NewExitError(ExitCommandError, message)
	}

	if formatter.Format == "json" {
		if err := formatter.Success(result); err != nil {
			return err
		}
	} else if result.Conforming {
		fmt.Fprintf(formatter.Writer, "✓ strategies agree: stream conforms (%d blocks, window %d)\n",
			len(blocks), opts.WindowSize)
	} else {
		fmt.Fprintf(formatter.Writer, "✓ strategies agree: %s (%d blocks, window %d)\n",
			result.PairSum, len(blocks), opts.WindowSize)
	}

	if !result.Conforming {
		return NewExitError(ExitFailure, "stream does not conform")
	}
	return nil
}

// verdict renders a validation outcome as a short stable string.
func verdict(err error) string {
	if err == nil {
		return "conforms"
	}
	return err.Error()
}
