package solo

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/ib-77/intchain/pkg/rop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func nonEmpty(_ context.Context, s string) (bool, string) {
	if s == "" {
		return false, "empty"
	}
	return true, ""
}

func TestValidate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	ok := Validate(ctx, "x", nonEmpty)
	require.True(t, ok.IsSuccess())
	assert.Equal(t, "x", ok.Result())

	bad := Validate(ctx, "", nonEmpty)
	assert.True(t, bad.IsFailure())
	assert.EqualError(t, bad.Err(), "empty")
}

func TestAndValidate_SkipsFailure(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	called := false
	in := Fail[string](errors.New("earlier"))
	out := AndValidate(ctx, in, func(ctx context.Context, s string) (bool, string) {
		called = true
		return true, ""
	})
	assert.False(t, called)
	assert.Equal(t, in.Id(), out.Id())
}

func TestTry(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	parsed := Try(ctx, Succeed("12"), func(_ context.Context, s string) (int, error) {
		return strconv.Atoi(s)
	})
	require.True(t, parsed.IsSuccess())
	assert.Equal(t, 12, parsed.Result())

	broken := Try(ctx, Succeed("x"), func(_ context.Context, s string) (int, error) {
		return strconv.Atoi(s)
	})
	assert.True(t, broken.IsFailure())

	in := Fail[string](errors.New("upstream"))
	skipped := Try(ctx, in, func(_ context.Context, s string) (int, error) {
		t.Fatal("must not run")
		return 0, nil
	})
	assert.Equal(t, in.Id(), skipped.Id())
	assert.EqualError(t, skipped.Err(), "upstream")
}

func TestSwitchAndMap(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	r := Switch(ctx, Succeed(3), func(_ context.Context, v int) rop.Result[string] {
		if v < 0 {
			return Fail[string](errors.New("negative"))
		}
		return Succeed(strconv.Itoa(v))
	})
	require.True(t, r.IsSuccess())
	assert.Equal(t, "3", r.Result())

	m := Map(ctx, r, func(_ context.Context, s string) int { return len(s) })
	assert.Equal(t, 1, m.Result())

	failed := Map(ctx, Fail[string](errors.New("x")), func(_ context.Context, s string) int { return 1 })
	assert.True(t, failed.IsFailure())
}

func TestTee(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	seen := 0
	Tee(ctx, Succeed(1), func(_ context.Context, r rop.Result[int]) { seen += r.Result() })
	Tee(ctx, Fail[int](errors.New("x")), func(_ context.Context, r rop.Result[int]) { seen += 100 })
	assert.Equal(t, 1, seen)
}

func TestFinally(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	onOK := func(_ context.Context, v int) string { return "ok:" + strconv.Itoa(v) }
	onErr := func(_ context.Context, err error) string { return "err:" + err.Error() }

	assert.Equal(t, "ok:4", Finally(ctx, Succeed(4), onOK, onErr))
	assert.Equal(t, "err:bad", Finally(ctx, Fail[int](errors.New("bad")), onOK, onErr))
}
