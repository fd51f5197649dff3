package benchmark

import (
	"context"
	"testing"

	"github.com/khmarbaise/hyperfine/internal/command"
	"github.com/khmarbaise/hyperfine/internal/logging"
	"github.com/khmarbaise/hyperfine/internal/options"
	"github.com/khmarbaise/hyperfine/internal/shelladapter"
	"github.com/khmarbaise/hyperfine/internal/shellopt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDriverRunMinRunsOneHasNoStddev(t *testing.T) {
	opts := options.Default()
	opts.Runs.Min = 1
	max := uint64(1)
	opts.Runs.Max = &max

	d := Driver{
		Adapter: shelladapter.New(shellopt.Direct{}, false),
		Options: opts,
		Logger:  logging.Default(),
	}

	result, err := d.Run(context.Background(), command.New("", "true"), "")
	require.NoError(t, err)
	assert.Equal(t, 1, result.Runs)
	assert.Nil(t, result.Stddev)
}

func TestDriverRunRespectsMaxRuns(t *testing.T) {
	opts := options.Default()
	opts.Runs.Min = 3
	max := uint64(3)
	opts.Runs.Max = &max

	d := Driver{
		Adapter: shelladapter.New(shellopt.Direct{}, false),
		Options: opts,
		Logger:  logging.Default(),
	}

	result, err := d.Run(context.Background(), command.New("", "true"), "")
	require.NoError(t, err)
	assert.Equal(t, 3, result.Runs)
}

func TestDriverRunFailsOnNonZeroExitWithRaiseError(t *testing.T) {
	opts := options.Default()
	opts.Runs.Min = 1
	max := uint64(1)
	opts.Runs.Max = &max

	d := Driver{
		Adapter: shelladapter.New(shellopt.Direct{}, false),
		Options: opts,
		Logger:  logging.Default(),
	}

	_, err := d.Run(context.Background(), command.New("", "false"), "")
	require.Error(t, err)
}

func TestDriverRunIgnoresNonZeroExitWhenConfigured(t *testing.T) {
	opts := options.Default()
	opts.Runs.Min = 1
	max := uint64(1)
	opts.Runs.Max = &max
	opts.FailureAction = options.Ignore

	d := Driver{
		Adapter: shelladapter.New(shellopt.Direct{}, false),
		Options: opts,
		Logger:  logging.Default(),
	}

	result, err := d.Run(context.Background(), command.New("", "false"), "")
	require.NoError(t, err)
	assert.Equal(t, []int{1}, result.ExitCodes)
}
