package pkg

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePathList(t *testing.T) {
	sep := string(filepath.ListSeparator)

	assert.Empty(t, ParsePathList(""))
	assert.Empty(t, ParsePathList("   "))
	assert.Equal(t, []string{"/opt/a", "/opt/b"}, ParsePathList(strings.Join([]string{" /opt/a ", "", "/opt/b"}, sep)))
}

func TestUniqueNonEmpty(t *testing.T) {
	got := UniqueNonEmpty("/opt/p1", "", "/opt/p1", "  ", "/opt/p2", "/opt/p1")

	assert.Equal(t, []string{"/opt/p1", "/opt/p2"}, got)
	assert.Empty(t, UniqueNonEmpty())
}

func TestExpandPath(t *testing.T) {
	env := map[string]string{
		"HOME":         "/home/ana",
		"LOCALAPPDATA": `C:\Users\ana\AppData\Local`,
	}
	lookup := func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}

	tests := []struct {
		name     string
		in       string
		want     string
		complete bool
	}{
		{name: "brace", in: "${HOME}/bin/app", want: "/home/ana/bin/app", complete: true},
		{name: "dollar", in: "$HOME/bin/app", want: "/home/ana/bin/app", complete: true},
		{name: "percent", in: `%LOCALAPPDATA%\Programs\app.exe`, want: `C:\Users\ana\AppData\Local\Programs\app.exe`, complete: true},
		{name: "plain", in: "/opt/app", want: "/opt/app", complete: true},
		{name: "unset", in: "${MISSING}/app", want: "/app", complete: false},
		{name: "unset percent", in: `%MISSING%\app.exe`, want: `\app.exe`, complete: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, complete := ExpandPath(tt.in, lookup)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.complete, complete)
		})
	}
}
