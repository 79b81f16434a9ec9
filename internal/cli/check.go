package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/spf13/cobra"

	"github.com/roach88/blockmine/internal/engine"
)

// DefaultWindowSize is the validation window used when --window is not
// given.
const DefaultWindowSize = 25

// CheckOptions holds flags for the check command.
type CheckOptions struct {
	*RootOptions
	WindowSize int
	Strategy   string
}

// CheckResult is the success payload of the check command.
type CheckResult struct {
	Conforming bool   `json:"conforming"`
	Strategy   string `json:"strategy"`
	WindowSize int    `json:"window_size"`
	BlocksRead int    `json:"blocks_read"`
}

// InvalidStreamDetail carries the rejection payload in JSON output.
type InvalidStreamDetail struct {
	Value    uint64 `json:"value"`
	Position int    `json:"position"`
}

// NewCheckCommand creates the check command.
func NewCheckCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CheckOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "check <blocks-file>",
		Short: "Validate a block stream against the pair-sum window rule",
		Long: `Validate a block stream file against the sliding-window pair-sum rule.

The first W values initialize the validation window; every later value
must be the sum of two distinct values among the W most recently
accepted ones. The command reports either a conforming stream or the
first value and position that break the rule.

Example:
  blockmine check --window 25 input.txt
  blockmine check --window 5 --strategy twopointer input.txt --format json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(opts, args[0], cmd)
		},
	}

	cmd.Flags().IntVarP(&opts.WindowSize, "window", "w", DefaultWindowSize, "validation window size")
	cmd.Flags().StringVar(&opts.Strategy, "strategy", "pairsum", "validation strategy (pairsum|twopointer)")

	return cmd
}

// strategyConstructor resolves a strategy name to its engine constructor.
func strategyConstructor(name string) (engine.Constructor[uint64], error) {
	switch name {
	case "pairsum":
		return func(initial []uint64) engine.Engine[uint64] { return engine.NewPairSum(initial) }, nil
	case "twopointer":
		return func(initial []uint64) engine.Engine[uint64] { return engine.NewTwoPointer(initial) }, nil
	default:
		return nil, fmt.Errorf("unknown strategy %q: must be pairsum or twopointer", name)
	}
}

func runCheck(opts *CheckOptions, path string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(), // Verbose logs go to stderr to avoid corrupting JSON
		Verbose:   opts.Verbose,
	}
	logger := newCommandLogger(opts.RootOptions, cmd)

	if opts.WindowSize < 2 {
		message := fmt.Sprintf("window size must be at least 2, got %d", opts.WindowSize)
		_ = formatter.Error(ErrCodeGeneric, message, nil)
		return NewExitError(ExitCommandError, message)
	}

	build, err := strategyConstructor(opts.Strategy)
	if err != nil {
		_ = formatter.Error(ErrCodeBadStrategy, err.Error(), nil)
		return NewExitError(ExitCommandError, err.Error())
	}

	blocks, err := LoadBlocks(path)
	if err != nil {
		return outputLoadError(formatter, err)
	}
	logger.Info("blocks loaded", "path", path, "count", len(blocks))

	verr := engine.TryCreateAndExtend(opts.WindowSize, build, slices.Values(blocks))
	return outputCheckOutcome(formatter, opts, len(blocks), verr)
}

// newCommandLogger builds the slog logger for a command invocation.
// Diagnostics go to stderr; Info level requires --verbose.
func newCommandLogger(opts *RootOptions, cmd *cobra.Command) *slog.Logger {
	level := slog.LevelWarn
	if opts.Verbose {
		level = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
		Level: level,
	}))
}

// outputLoadError reports a loader failure. Load problems are
// command-level errors (exit code 2).
func outputLoadError(formatter *OutputFormatter, err error) error {
	var loadErr *LoadError
	if errors.As(err, &loadErr) {
		_ = formatter.Error(loadErr.Code, loadErr.Message, nil)
		return WrapExitError(ExitCommandError, "failed to load blocks", err)
	}
	_ = formatter.Error(ErrCodeGeneric, err.Error(), nil)
	return WrapExitError(ExitCommandError, "failed to load blocks", err)
}

// outputCheckOutcome reports the validation verdict and maps it to an
// exit code: conforming streams exit 0, rule violations exit 1.
func outputCheckOutcome(formatter *OutputFormatter, opts *CheckOptions, blocksRead int, verr error) error {
	if verr == nil {
		result := CheckResult{
			Conforming: true,
			Strategy:   opts.Strategy,
			WindowSize: opts.WindowSize,
			BlocksRead: blocksRead,
		}
		if formatter.Format == "json" {
			return formatter.Success(result)
		}
		fmt.Fprintf(formatter.Writer, "✓ stream conforms: %d blocks, window %d (%s)\n",
			blocksRead, opts.WindowSize, opts.Strategy)
		return nil
	}

	var invalid *engine.InvalidBlockError[uint64]
	if errors.As(verr, &invalid) {
		message := fmt.Sprintf("block %d at position %d is not a sum of two distinct blocks in the previous %d",
			invalid.Value, invalid.Position, opts.WindowSize)
		_ = formatter.Error(ErrCodeInvalidStream, message, InvalidStreamDetail{
			Value:    invalid.Value,
			Position: invalid.Position,
		})
		return NewExitError(ExitFailure, "stream does not conform")
	}

	var short *engine.InitSizeError
	if errors.As(verr, &short) {
		message := fmt.Sprintf("stream has %d blocks, need %d to initialize the window", short.Got, short.Need)
		_ = formatter.Error(ErrCodeShortInit, message, nil)
		return NewExitError(ExitFailure, "stream too short to initialize")
	}

	_ = formatter.Error(ErrCodeGeneric, verr.Error(), nil)
	return WrapExitError(ExitFailure, "validation failed", verr)
}
