package model

// LicenseRecord is one entry of the remote license list and the shape of
// the cached credential.
type LicenseRecord struct {
	Email      string `json:"email"`
	ProductKey string `json:"product_key"`
	EndDate    string `json:"end_date"`
}

// HasCredentials reports whether both identity fields are present.
func (r *LicenseRecord) HasCredentials() bool {
	return r != nil && r.Email != "" && r.ProductKey != ""
}

// Validation is the outcome of checking credentials against the license source.
type Validation struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
	EndDate string `json:"end_date,omitempty"`
	// Offline is set when the source could not be reached.
	Offline bool `json:"-"`
}

// CacheStatus describes the cached credential without exposing the full key.
type CacheStatus struct {
	OK         bool   `json:"ok"`
	Message    string `json:"message,omitempty"`
	Email      string `json:"email,omitempty"`
	ProductKey string `json:"product_key,omitempty"`
	EndDate    string `json:"end_date,omitempty"`
	Expired    bool   `json:"expired"`
	DaysLeft   int    `json:"days_left,omitempty"`
}

// CommandResult is the generic {ok, message} reply.
type CommandResult struct {
	OK      bool   `json:"ok"`
	Message string `json:"message,omitempty"`
}
