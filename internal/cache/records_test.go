package cache

import (
	"testing"
	"time"

	"github.com/LerianStudio/license-gate/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordCache(t *testing.T) {
	rc, err := NewRecordCache(time.Minute)
	require.NoError(t, err)
	t.Cleanup(rc.Close)

	_, ok := rc.Get()
	assert.False(t, ok)

	records := []model.LicenseRecord{{Email: "a@x.com", ProductKey: "K1", EndDate: "2099-01-01"}}
	rc.Store(records)

	got, ok := rc.Get()
	require.True(t, ok)
	assert.Equal(t, records, got)

	rc.Invalidate()

	_, ok = rc.Get()
	assert.False(t, ok)
}

func TestRecordCache_Disabled(t *testing.T) {
	rc, err := NewRecordCache(0)
	require.NoError(t, err)

	rc.Store([]model.LicenseRecord{{Email: "a@x.com"}})

	_, ok := rc.Get()
	assert.False(t, ok)
	assert.NotPanics(t, rc.Invalidate)
	assert.NotPanics(t, rc.Close)
}

func TestRecordCache_NilSafe(t *testing.T) {
	var rc *RecordCache

	_, ok := rc.Get()
	assert.False(t, ok)
	assert.NotPanics(t, func() { rc.Store(nil) })
}
