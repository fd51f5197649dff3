package options

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateEmptyRunsRange(t *testing.T) {
	max := uint64(10)
	o := Default()
	o.Runs = RunBounds{Min: 20, Max: &max}
	err := o.Validate()
	require.Error(t, err)
}

func TestValidateOKRange(t *testing.T) {
	max := uint64(20)
	o := Default()
	o.Runs = RunBounds{Min: 10, Max: &max}
	require.NoError(t, o.Validate())
}

func TestValidatePreparationCountSharedOK(t *testing.T) {
	require.NoError(t, ValidatePreparationCount([]string{"warm"}, 5))
}

func TestValidatePreparationCountMatchingOK(t *testing.T) {
	require.NoError(t, ValidatePreparationCount([]string{"a", "b", "c"}, 3))
}

func TestValidatePreparationCountMismatch(t *testing.T) {
	require.Error(t, ValidatePreparationCount([]string{"a", "b"}, 3))
}

func TestPreparationCommandForShared(t *testing.T) {
	assert.Equal(t, "warm", PreparationCommandFor([]string{"warm"}, 2))
}

func TestPreparationCommandForPerCommand(t *testing.T) {
	cmds := []string{"a", "b", "c"}
	assert.Equal(t, "b", PreparationCommandFor(cmds, 1))
}
