package script

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ib-77/intchain/pkg/chain"
	"github.com/ib-77/intchain/pkg/rop"
	"github.com/ib-77/intchain/pkg/rop/solo"
)

// Runner feeds script lines to a single chain and writes each outcome to out.
// The first write error sticks: later output is dropped and Run returns it.
type Runner struct {
	chain *chain.Chain
	out   io.Writer
	err   error
}

func NewRunner(c *chain.Chain, out io.Writer) *Runner {
	return &Runner{chain: c, out: out}
}

// Chain returns the chain the runner edits.
func (r *Runner) Chain() *chain.Chain {
	return r.chain
}

// Err returns the first error hit while writing output.
func (r *Runner) Err() error {
	return r.err
}

func (r *Runner) printf(format string, args ...any) {
	if r.err != nil {
		return
	}
	_, r.err = fmt.Fprintf(r.out, format, args...)
}

// Exec parses and applies one line, writing "error: ..." for failures.
func (r *Runner) Exec(ctx context.Context, line string) rop.Result[string] {
	input := solo.Tee(ctx, solo.Succeed(line), func(ctx context.Context, in rop.Result[string]) {
		if GetOptions(ctx).Echo {
			r.printf("> %s\n", in.Result())
		}
	})

	res := solo.Switch(ctx, solo.Switch(ctx, input, Parse),
		func(ctx context.Context, cmd Command) rop.Result[string] {
			return Apply(ctx, r.chain, cmd)
		})

	text := solo.Finally(ctx, res,
		func(_ context.Context, s string) string { return s },
		func(_ context.Context, err error) string { return "error: " + err.Error() })
	if text != "" {
		r.printf("%s\n", text)
	}
	return res
}

// Run executes every non-blank line of in that does not start with '#'.
// Failed lines are collected and returned joined, or the first one is
// returned immediately when StopOnError is set. A write error ends the run.
func (r *Runner) Run(ctx context.Context, in io.Reader) error {
	opts := GetOptions(ctx)
	scanner := bufio.NewScanner(in)

	var err error
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		lineErr := lineError(lineNo, r.Exec(ctx, line))
		if r.err != nil {
			return r.err
		}
		if lineErr != nil {
			if opts.StopOnError {
				return lineErr
			}
			err = appendError(err, lineErr)
		}
	}
	if scanErr := scanner.Err(); scanErr != nil {
		err = appendError(err, scanErr)
	}
	return err
}

func appendError(err, next error) error {
	e := rop.GetErrors(err)
	e = append(e, next)
	return errors.Join(e...)
}

func lineError(lineNo int, outcome rop.Outcome[string]) error {
	if outcome.IsSuccess() {
		return nil
	}
	return fmt.Errorf("line %d [%s]: %w", lineNo, outcome.Id(), outcome.Err())
}
