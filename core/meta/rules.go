// core/meta/rules.go
package meta

import (
	"fmt"
	"time"
)

// Rules bounds the metadata fields of one record. Limits travel as an
// explicit value rather than package state so callers can tune them per
// run.
type Rules struct {
	MinAge      int // minimum participant age derived from date_of_birth
	MaxValueLen int // maximum length of any string value
	YearLower   int // inclusive year range for date-valued strings
	YearUpper   int
}

// DefaultRules returns the study defaults.
func DefaultRules() Rules {
	return Rules{MinAge: 40, MaxValueLen: 64, YearLower: 2014, YearUpper: 2024}
}

// BirthDateKey is the one field with dedicated age handling.
const BirthDateKey = "date_of_birth"

// dateLayouts are the accepted date grammars, tried in order.
var dateLayouts = []string{
	"2006-01-02",
	"02/01/2006",
	"01/02/2006",
	"2006-01-02 15:04:05",
	"02-01-2006",
}

// ParseDate attempts each accepted layout and reports whether any
// matched.
func ParseDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Validate walks fields recursively and returns the first rule
// violation found, or nil. Nested maps are validated with the same
// rules.
func (r Rules) Validate(fields map[string]any) error {
	return r.validateAt(fields, time.Now())
}

func (r Rules) validateAt(fields map[string]any, now time.Time) error {
	for key, value := range fields {
		if nested, ok := value.(map[string]any); ok {
			if err := r.validateAt(nested, now); err != nil {
				return err
			}
			continue
		}
		if key == BirthDateKey {
			if err := r.validateBirthDate(value, now); err != nil {
				return err
			}
			continue
		}
		if s, ok := value.(string); ok {
			if err := r.validateString(key, s); err != nil {
				return err
			}
		}
	}
	return nil
}

func (r Rules) validateBirthDate(value any, now time.Time) error {
	s, ok := value.(string)
	if !ok {
		return fmt.Errorf("%s: expected a date string, got %T", BirthDateKey, value)
	}
	birth, ok := ParseDate(s)
	if !ok {
		return fmt.Errorf("%s: unparseable date %q", BirthDateKey, s)
	}
	if a := Age(birth, now); a < r.MinAge {
		return fmt.Errorf("%s: participant age %d below minimum %d", BirthDateKey, a, r.MinAge)
	}
	return nil
}

func (r Rules) validateString(key, value string) error {
	if t, ok := ParseDate(value); ok {
		if t.Year() < r.YearLower || t.Year() > r.YearUpper {
			return fmt.Errorf("%s: date %q outside year range %d-%d", key, value, r.YearLower, r.YearUpper)
		}
	}
	if len(value) > r.MaxValueLen {
		return fmt.Errorf("%s: value length %d exceeds maximum %d", key, len(value), r.MaxValueLen)
	}
	return nil
}

// Age computes whole years between birth and now, counting the
// birthday itself.
func Age(birth, now time.Time) int {
	years := now.Year() - birth.Year()
	if now.Month() < birth.Month() ||
		(now.Month() == birth.Month() && now.Day() < birth.Day()) {
		years--
	}
	return years
}
