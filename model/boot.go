package model

// Screen is what the presentation layer should show next.
type Screen string

const (
	ScreenLogin    Screen = "login"
	ScreenLicensed Screen = "licensed"
)

// BootState names the step of the boot sequence that produced a decision.
type BootState string

const (
	BootNoCache        BootState = "no-cache"
	BootLocallyExpired BootState = "locally-expired"
	BootConfirmed      BootState = "confirmed"
	BootRejected       BootState = "rejected"
	BootLoggedOut      BootState = "logged-out"
)

// BootDecision is the result of a boot or revalidation run.
type BootDecision struct {
	OK      bool      `json:"ok"`
	Screen  Screen    `json:"screen"`
	State   BootState `json:"state"`
	Message string    `json:"message,omitempty"`
	EndDate string    `json:"end_date,omitempty"`
}

// Licensed reports whether the licensed screen was chosen.
func (d BootDecision) Licensed() bool {
	return d.Screen == ScreenLicensed
}
