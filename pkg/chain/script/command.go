package script

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/ib-77/intchain/pkg/chain"
	"github.com/ib-77/intchain/pkg/rop"
	"github.com/ib-77/intchain/pkg/rop/solo"
)

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrArity          = errors.New("wrong number of arguments")
	ErrBadNumber      = errors.New("bad number")
)

type Op string

const (
	OpInsert Op = "insert"
	OpAppend Op = "append"
	OpDelete Op = "delete"
	OpGet    Op = "get"
	OpLen    Op = "len"
	OpPrint  Op = "print"
	OpSorted Op = "sorted"
	OpClear  Op = "clear"
	OpCheck  Op = "check"
)

// arity is the accepted argument count range for each op.
var arity = map[Op][2]int{
	OpInsert: {1, 2},
	OpAppend: {1, 1},
	OpDelete: {1, 1},
	OpGet:    {1, 1},
	OpLen:    {0, 0},
	OpPrint:  {0, 0},
	OpSorted: {0, 0},
	OpClear:  {0, 0},
	OpCheck:  {0, 0},
}

// Command is one parsed script line.
type Command struct {
	Op       Op
	Value    int32
	Position chain.Position
	Index    int
}

// Parse turns a line such as "insert 35 2" into a Command.
func Parse(ctx context.Context, line string) rop.Result[Command] {
	fields := solo.Validate(ctx, strings.Fields(line), func(_ context.Context, f []string) (bool, string) {
		return len(f) > 0, "empty command"
	})

	return solo.Try(ctx, fields, func(_ context.Context, f []string) (Command, error) {
		op := Op(strings.ToLower(f[0]))
		bounds, ok := arity[op]
		if !ok {
			return Command{}, fmt.Errorf("%w: %q", ErrUnknownCommand, f[0])
		}
		args := f[1:]
		if len(args) < bounds[0] || len(args) > bounds[1] {
			return Command{}, fmt.Errorf("%w: %s takes %s", ErrArity, op, arityText(bounds))
		}
		return build(op, args)
	})
}

func build(op Op, args []string) (Command, error) {
	cmd := Command{Op: op}
	switch op {
	case OpInsert, OpAppend:
		v, err := parseValue(args[0])
		if err != nil {
			return Command{}, err
		}
		cmd.Value = v
		if len(args) == 2 {
			i, err := parseIndex(args[1])
			if err != nil {
				return Command{}, err
			}
			cmd.Position = chain.At(i)
		}
	case OpDelete, OpGet:
		i, err := parseIndex(args[0])
		if err != nil {
			return Command{}, err
		}
		cmd.Index = i
	}
	return cmd, nil
}

func parseValue(s string) (int32, error) {
	v, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: value %q", ErrBadNumber, s)
	}
	return int32(v), nil
}

func parseIndex(s string) (int, error) {
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: position %q", ErrBadNumber, s)
	}
	return i, nil
}

func arityText(b [2]int) string {
	switch {
	case b[0] == b[1] && b[0] == 0:
		return "no arguments"
	case b[0] == b[1]:
		return fmt.Sprintf("%d argument(s)", b[0])
	default:
		return fmt.Sprintf("%d to %d arguments", b[0], b[1])
	}
}
