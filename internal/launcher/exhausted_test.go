package launcher

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExhaustedError_KeepsAttempts(t *testing.T) {
	spawn := errors.New("spawn: permission denied")
	shell := errors.New("shell-start: exit status 1")

	err := exhaustedError([]error{spawn, shell})

	assert.Equal(t, "LGT-0008", err.Code)
	assert.EqualError(t, err, "All launch strategies failed.")
	assert.ErrorIs(t, err, spawn)
	assert.ErrorIs(t, err, shell)
	assert.Len(t, err.Attempts, 2)
}
