package api

import (
	"strings"

	"github.com/LerianStudio/license-gate/model"
)

// NormalizeEmail trims and lowercases an email for comparison.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// NormalizeKey trims a product key for comparison. Keys are case sensitive.
func NormalizeKey(key string) string {
	return strings.TrimSpace(key)
}

// Match returns the first record whose normalized identity equals the
// given credentials, or nil.
func Match(records []model.LicenseRecord, email, productKey string) *model.LicenseRecord {
	e, k := NormalizeEmail(email), NormalizeKey(productKey)
	if e == "" || k == "" {
		return nil
	}

	for i := range records {
		if NormalizeEmail(records[i].Email) == e && NormalizeKey(records[i].ProductKey) == k {
			rec := records[i]
			return &rec
		}
	}

	return nil
}
