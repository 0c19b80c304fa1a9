package script

import "context"

type OptionKey string

const RunOptionKey OptionKey = "run_options"

type Options struct {
	// StopOnError ends Run at the first failed line.
	StopOnError bool
	// Echo writes each command as "> line" before its output.
	Echo bool
}

func DefaultOptions() Options {
	return Options{}
}

func WithOptions(ctx context.Context, opts Options) context.Context {
	return context.WithValue(ctx, RunOptionKey, opts)
}

func GetOptions(ctx context.Context) Options {
	options, ok := ctx.Value(RunOptionKey).(Options)
	if ok {
		return options
	}
	return DefaultOptions()
}
