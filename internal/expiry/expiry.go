// Package expiry decides whether a license end date has passed.
//
// Dates are compared on the local calendar: a license is valid for the
// whole of its end date and expired from the following day. Anything that
// is not a strict YYYY-MM-DD date counts as expired.
package expiry

import (
	"strings"
	"time"

	"github.com/LerianStudio/license-gate/constant"
)

// Evaluator compares end dates against the local wall clock.
type Evaluator struct {
	now func() time.Time
}

// New creates an Evaluator. A nil clock uses time.Now.
func New(now func() time.Time) *Evaluator {
	if now == nil {
		now = time.Now
	}

	return &Evaluator{now: now}
}

// IsExpired reports whether endDate is malformed, empty or before today.
func (e *Evaluator) IsExpired(endDate string) bool {
	end, ok := e.parse(endDate)
	if !ok {
		return true
	}

	return end.Before(e.today())
}

// DaysLeft returns the number of whole days until endDate, counting today
// as zero. Malformed dates return -1.
func (e *Evaluator) DaysLeft(endDate string) int {
	end, ok := e.parse(endDate)
	if !ok {
		return -1
	}

	today := e.today()
	if end.Before(today) {
		return -1
	}

	days := 0
	for d := today; d.Before(end); d = d.AddDate(0, 0, 1) {
		days++
	}

	return days
}

func (e *Evaluator) parse(endDate string) (time.Time, bool) {
	s := strings.TrimSpace(endDate)
	if len(s) != len(constant.DateLayout) {
		return time.Time{}, false
	}

	end, err := time.ParseInLocation(constant.DateLayout, s, e.now().Location())
	if err != nil {
		return time.Time{}, false
	}

	return end, true
}

func (e *Evaluator) today() time.Time {
	now := e.now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}

var defaultEvaluator = New(nil)

// IsExpired evaluates endDate against the current local date.
func IsExpired(endDate string) bool {
	return defaultEvaluator.IsExpired(endDate)
}
