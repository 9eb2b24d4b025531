package cache

import (
	"context"
	"errors"
	"testing"

	"github.com/LerianStudio/license-gate/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zalando/go-keyring"
)

func TestKeyringStore_RoundTrip(t *testing.T) {
	keyring.MockInit()

	ctx := context.Background()
	s := NewKeyringStore("license-gate-test", "license")

	got, err := s.Get(ctx)
	require.NoError(t, err)
	assert.Nil(t, got)

	rec := model.LicenseRecord{Email: "a@x.com", ProductKey: "K1", EndDate: "2099-01-01"}
	require.NoError(t, s.Set(ctx, rec))

	raw, err := keyring.Get("license-gate-test", "license")
	require.NoError(t, err)
	assert.JSONEq(t, `{"email":"a@x.com","product_key":"K1","end_date":"2099-01-01"}`, raw)

	got, err = s.Get(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, rec, *got)

	require.NoError(t, s.Clear(ctx))
	require.NoError(t, s.Clear(ctx))

	got, err = s.Get(ctx)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestKeyringStore_BackendFailure(t *testing.T) {
	keyring.MockInitWithError(errors.New("secret service unavailable"))
	t.Cleanup(keyring.MockInit)

	ctx := context.Background()
	s := NewKeyringStore("license-gate-test", "license")

	_, err := s.Get(ctx)
	assert.ErrorContains(t, err, "secret service unavailable")
	assert.Error(t, s.Set(ctx, model.LicenseRecord{Email: "a@x.com"}))
	assert.Error(t, s.Clear(ctx))
}

func TestKeyringStore_CorruptEntry(t *testing.T) {
	keyring.MockInit()
	require.NoError(t, keyring.Set("license-gate-test", "license", "not json"))

	_, err := NewKeyringStore("license-gate-test", "license").Get(context.Background())
	assert.ErrorContains(t, err, "decode secret store entry")
}
