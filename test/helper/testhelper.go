// Package helper provides test utilities shared by the gate packages
package helper

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/LerianStudio/license-gate/model"
	"github.com/stretchr/testify/require"
)

// LicensePage renders an HTML page embedding records the way the license site does.
func LicensePage(t *testing.T, records any) string {
	t.Helper()

	data, err := json.Marshal(records)
	require.NoError(t, err)

	return fmt.Sprintf(`<!doctype html>
<html>
<head><title>Licenses</title></head>
<body>
<h1>Licensed users</h1>
<script type="application/json" id="licenses">%s</script>
<script>console.log("ready")</script>
</body>
</html>`, data)
}

// LicenseServer is an httptest server serving a license page whose content
// and status can be changed while the test runs.
type LicenseServer struct {
	*httptest.Server

	mu     sync.RWMutex
	status int
	body   string
	hits   atomic.Int64
}

// NewLicenseServer starts a server returning a page with records.
func NewLicenseServer(t *testing.T, records ...model.LicenseRecord) *LicenseServer {
	t.Helper()

	ls := &LicenseServer{status: http.StatusOK}
	ls.SetRecords(t, records...)

	ls.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ls.hits.Add(1)

		ls.mu.RLock()
		status, body := ls.status, ls.body
		ls.mu.RUnlock()

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(ls.Close)

	return ls
}

// SetRecords replaces the embedded license list.
func (ls *LicenseServer) SetRecords(t *testing.T, records ...model.LicenseRecord) {
	t.Helper()

	if records == nil {
		records = []model.LicenseRecord{}
	}

	ls.SetBody(LicensePage(t, records))
}

// SetBody replaces the raw page body.
func (ls *LicenseServer) SetBody(body string) {
	ls.mu.Lock()
	defer ls.mu.Unlock()

	ls.body = body
}

// SetStatus changes the response status code.
func (ls *LicenseServer) SetStatus(status int) {
	ls.mu.Lock()
	defer ls.mu.Unlock()

	ls.status = status
}

// Hits returns how many requests the server received.
func (ls *LicenseServer) Hits() int64 {
	return ls.hits.Load()
}
