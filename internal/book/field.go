package book

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Name is the unique key of a record. It never changes after construction;
// renaming a contact means re-keying the book (remove + add).
type Name string

// Phone is a validated phone number: exactly ten digits.
type Phone string

// Birthday is a validated calendar date in DD.MM.YYYY form.
// The zero value means "not set".
type Birthday struct {
	t time.Time
}

const birthdayLayout = "02.01.2006"

var phoneRe = regexp.MustCompile(`^\d{10}$`)
var birthdayRe = regexp.MustCompile(`^\d{2}\.\d{2}\.\d{4}$`)

// ParseName validates and normalizes a contact name.
func ParseName(raw string) (Name, error) {
	name := strings.TrimSpace(raw)
	if name == "" {
		return "", fmt.Errorf("%w: name must not be empty", ErrValidation)
	}
	return Name(name), nil
}

// ParsePhone validates a phone number string.
func ParsePhone(raw string) (Phone, error) {
	if !phoneRe.MatchString(raw) {
		return "", fmt.Errorf("%w: phone number must be 10 digits, got %q", ErrValidation, raw)
	}
	return Phone(raw), nil
}

// ParseBirthday validates a DD.MM.YYYY date string. The date must exist on
// the calendar; 31.02.1999 is rejected even though it matches the pattern.
func ParseBirthday(raw string) (Birthday, error) {
	if !birthdayRe.MatchString(raw) {
		return Birthday{}, fmt.Errorf("%w: birthday must be in DD.MM.YYYY format, got %q", ErrValidation, raw)
	}
	t, err := time.Parse(birthdayLayout, raw)
	if err != nil {
		return Birthday{}, fmt.Errorf("%w: %q is not a real calendar date", ErrValidation, raw)
	}
	return Birthday{t: t}, nil
}

// IsZero reports whether the birthday is unset.
func (b Birthday) IsZero() bool { return b.t.IsZero() }

func (b Birthday) String() string {
	if b.IsZero() {
		return ""
	}
	return b.t.Format(birthdayLayout)
}

// DaysUntilNext returns the number of whole days from today to the next
// anniversary of the stored month/day, wrapping to next year when the
// anniversary has already passed. No weekend adjustment is applied.
func (b Birthday) DaysUntilNext(today time.Time) int {
	today = time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	next := time.Date(today.Year(), b.t.Month(), b.t.Day(), 0, 0, 0, 0, time.UTC)
	if next.Before(today) {
		next = time.Date(today.Year()+1, b.t.Month(), b.t.Day(), 0, 0, 0, 0, time.UTC)
	}
	return int(next.Sub(today).Hours() / 24)
}
