package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/LerianStudio/license-gate/constant"
	"github.com/LerianStudio/license-gate/model"
	"github.com/zalando/go-keyring"
)

// KeyringStore keeps the credential JSON in the OS secret store under a
// fixed service/account pair.
type KeyringStore struct {
	service string
	account string
}

// NewKeyringStore creates a KeyringStore.
func NewKeyringStore(service, account string) *KeyringStore {
	return &KeyringStore{service: service, account: account}
}

// Name implements Store.
func (s *KeyringStore) Name() string {
	return constant.TierKeyring
}

// Get implements Store.
func (s *KeyringStore) Get(_ context.Context) (*model.LicenseRecord, error) {
	raw, err := keyring.Get(s.service, s.account)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return nil, nil
		}

		return nil, fmt.Errorf("read secret store: %w", err)
	}

	if raw == "" {
		return nil, nil
	}

	var rec model.LicenseRecord
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		return nil, fmt.Errorf("decode secret store entry: %w", err)
	}

	return &rec, nil
}

// Set implements Store.
func (s *KeyringStore) Set(_ context.Context, rec model.LicenseRecord) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode secret store entry: %w", err)
	}

	if err := keyring.Set(s.service, s.account, string(data)); err != nil {
		return fmt.Errorf("write secret store: %w", err)
	}

	return nil
}

// Clear implements Store.
func (s *KeyringStore) Clear(_ context.Context) error {
	if err := keyring.Delete(s.service, s.account); err != nil && !errors.Is(err, keyring.ErrNotFound) {
		return fmt.Errorf("delete secret store entry: %w", err)
	}

	return nil
}
