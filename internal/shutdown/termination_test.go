package shutdown

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestManager_DefaultHandlerPanics(t *testing.T) {
	m := New()

	assert.PanicsWithValue(t, "LICENSE REQUIRED: no cached license", func() {
		m.Terminate("no cached license")
	})
}

func TestManager_SetHandler(t *testing.T) {
	m := New()

	var got string
	m.SetHandler(func(reason string) { got = reason })
	m.SetHandler(nil)

	m.Terminate("License expired on 2025-01-01.")
	assert.Equal(t, "License expired on 2025-01-01.", got)
}

func TestExitHandler(t *testing.T) {
	var out bytes.Buffer
	code := -1

	ExitHandler(&out, func(c int) { code = c })("Email or product key is incorrect.")

	assert.Equal(t, ExitCodeDenied, code)
	assert.Equal(t, "License required: Email or product key is incorrect.\n", out.String())
}
