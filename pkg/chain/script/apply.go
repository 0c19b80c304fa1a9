package script

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/emirpasic/gods/containers"
	"github.com/emirpasic/gods/utils"

	"github.com/ib-77/intchain/pkg/chain"
	"github.com/ib-77/intchain/pkg/rop"
	"github.com/ib-77/intchain/pkg/rop/solo"
)

// Apply runs cmd against c and returns the text to report. Mutating
// commands report nothing on success.
//
// A *chain.BoundsError raised by Insert or Delete is turned into a failed
// result; the chain is unchanged in that case. Any other panic propagates.
func Apply(ctx context.Context, c *chain.Chain, cmd Command) (res rop.Result[string]) {
	defer func() {
		if r := recover(); r != nil {
			be, ok := chain.AsBoundsError(r)
			if !ok {
				panic(r)
			}
			res = rop.Fail[string](be)
		}
	}()

	switch cmd.Op {
	case OpInsert:
		c.Insert(cmd.Value, cmd.Position)
	case OpAppend:
		c.Append(cmd.Value)
	case OpDelete:
		c.Delete(cmd.Index)
	case OpGet:
		return solo.Map(ctx, rop.Success(cmd.Index), func(_ context.Context, i int) string {
			if v, ok := c.Get(i); ok {
				return fmt.Sprintf("Index %d: %d", i, v)
			}
			return fmt.Sprintf("Index %d: absent", i)
		})
	case OpLen:
		return solo.Map(ctx, rop.Success(c), func(_ context.Context, c *chain.Chain) string {
			return fmt.Sprintf("Length: %d", c.Len())
		})
	case OpPrint:
		var b strings.Builder
		_ = WriteListing(&b, "", c)
		return rop.Success(strings.TrimSuffix(b.String(), "\n"))
	case OpSorted:
		return rop.Success(formatValues(containers.GetSortedValues(c, utils.Int32Comparator)))
	case OpClear:
		c.Clear()
	case OpCheck:
		if err := c.Validate(); err != nil {
			return rop.Fail[string](err)
		}
		return rop.Success("ok")
	default:
		return rop.Fail[string](fmt.Errorf("%w: %q", ErrUnknownCommand, cmd.Op))
	}
	return rop.Success("")
}

// WriteListing writes an optional title line followed by one
// "Index i: v" line per cell.
func WriteListing(w io.Writer, title string, c *chain.Chain) error {
	if title != "" {
		if _, err := fmt.Fprintln(w, title); err != nil {
			return err
		}
	}
	for i := 0; i < c.Len(); i++ {
		if v, ok := c.Get(i); ok {
			if _, err := fmt.Fprintf(w, "Index %d: %d\n", i, v); err != nil {
				return err
			}
		}
	}
	return nil
}

func formatValues(values []interface{}) string {
	parts := make([]string, 0, len(values))
	for _, v := range values {
		parts = append(parts, fmt.Sprint(v))
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
