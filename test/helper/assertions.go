package helper

import (
	"testing"

	"github.com/LerianStudio/license-gate/model"
	"github.com/stretchr/testify/assert"
)

// AssertValidation checks the ok flag and message of a validation.
func AssertValidation(t *testing.T, got model.Validation, wantOK bool, wantMessage string) {
	t.Helper()
	assert.Equal(t, wantOK, got.OK, "validation ok mismatch (message %q)", got.Message)
	assert.Equal(t, wantMessage, got.Message, "validation message mismatch")
}

// AssertBootDecision checks the screen and state of a boot decision.
func AssertBootDecision(t *testing.T, got model.BootDecision, wantScreen model.Screen, wantState model.BootState) {
	t.Helper()
	assert.Equal(t, wantScreen, got.Screen, "boot screen mismatch (message %q)", got.Message)
	assert.Equal(t, wantState, got.State, "boot state mismatch")
	assert.Equal(t, wantScreen == model.ScreenLicensed, got.OK, "boot ok mismatch")
}
