package main

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/on-the-ground/effect_drive_go/effects"
	"github.com/on-the-ground/effect_drive_go/effects/clock"
	"github.com/on-the-ground/effect_drive_go/effects/journal"
	"github.com/on-the-ground/effect_drive_go/effects/log"
	"github.com/on-the-ground/effect_drive_go/effects/memo"
	"github.com/on-the-ground/effect_drive_go/internal/config"
	"github.com/on-the-ground/effect_drive_go/result"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var errDivisionFailed = errors.New("division failed")

// Divide asks the handler for Numerator / Denominator.
type Divide struct {
	Numerator   int
	Denominator int
}

// DivideOptions holds flags for the divide command.
type DivideOptions struct {
	Trace    bool
	MemoSize int
}

func divideHandler(_ context.Context, d Divide) (any, error) {
	if d.Denominator == 0 {
		return result.Err[int]("cannot divide by 0"), nil
	}
	return result.Ok[int, string](d.Numerator / d.Denominator), nil
}

func divideStep(denominator int) effects.Step[int, string] {
	return func(prev int) effects.Computation[result.Result[int, string]] {
		return func(yield effects.Yield) (result.Result[int, string], error) {
			log.Emit(yield, log.LevelDebug, "dividing", map[string]any{
				"numerator":   prev,
				"denominator": denominator,
			})
			return effects.NormalizeResult[int, string](yield(Divide{Numerator: prev, Denominator: denominator}))
		}
	}
}

// divideChain divides numerator by every denominator in turn and reports how
// long the chain took.
func divideChain(numerator int, denominators []int) effects.Computation[result.Result[int, string]] {
	steps := make([]effects.Step[int, string], 0, len(denominators))
	for _, d := range denominators {
		steps = append(steps, divideStep(d))
	}
	chain := effects.MapResultsFrom(numerator, steps...)

	return func(yield effects.Yield) (result.Result[int, string], error) {
		started, err := clock.Read(yield)
		if err != nil {
			return result.Result[int, string]{}, err
		}
		res, err := chain(yield)
		if err != nil {
			return res, err
		}
		finished, err := clock.Read(yield)
		if err != nil {
			return result.Result[int, string]{}, err
		}
		log.Emit(yield, log.LevelInfo, "divide chain finished", map[string]any{
			"result":  res.String(),
			"elapsed": finished.Start().Sub(started.Start()).String(),
		})
		return res, nil
	}
}

func divideHandlers(opts *DivideOptions, logger *zap.Logger, now func(context.Context, clock.Now) (any, error)) effects.HandlerMap {
	hm := effects.NewHandlerMap()
	if opts.MemoSize > 0 {
		effects.On(hm, memo.Wrap(divideHandler, opts.MemoSize))
	} else {
		effects.On(hm, divideHandler)
	}
	log.Register(hm, logger)
	clock.Register(hm, now)
	return hm
}

func parseInts(args []string) ([]int, error) {
	out := make([]int, 0, len(args))
	for _, a := range args {
		n, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("invalid integer %q: %w", a, err)
		}
		out = append(out, n)
	}
	return out, nil
}

// NewDivideCommand creates the divide command.
func NewDivideCommand(settings config.Settings, logger *zap.Logger) *cobra.Command {
	opts := &DivideOptions{}

	cmd := &cobra.Command{
		Use:   "divide NUMERATOR DENOMINATOR [DENOMINATOR...]",
		Short: "Divide a number by each denominator in turn",
		Long: `Divide NUMERATOR by each DENOMINATOR in turn using integer division.

The first division by zero stops the chain and is reported as Err(...); the
remaining denominators are never evaluated.

Examples:
  effectdemo divide 100 5 2
  effectdemo divide --trace 8 2 2`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDivide(cmd, opts, logger, args)
		},
	}

	cmd.Flags().BoolVar(&opts.Trace, "trace", settings.Trace, "print the effect journal as YAML")
	cmd.Flags().IntVar(&opts.MemoSize, "memo-size", settings.MemoSize, "memoize up to this many divisions (0 disables)")

	return cmd
}

func runDivide(cmd *cobra.Command, opts *DivideOptions, logger *zap.Logger, args []string) error {
	nums, err := parseInts(args)
	if err != nil {
		return err
	}
	if opts.MemoSize < 0 {
		return fmt.Errorf("memo size must be >= 0, got %d", opts.MemoSize)
	}

	rec := journal.NewRecorder()
	res, err := effects.Drive(cmd.Context(), divideChain(nums[0], nums[1:]), divideHandlers(opts, logger, clock.SystemHandler()),
		effects.WithLogger(logger),
		effects.WithInterceptor(rec.Intercept),
	)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, res.String())
	if opts.Trace {
		doc, err := rec.YAML()
		if err != nil {
			return err
		}
		fmt.Fprint(out, string(doc))
	}

	if msg, failed := res.GetErr(); failed {
		return fmt.Errorf("%w: %s", errDivisionFailed, msg)
	}
	return nil
}
