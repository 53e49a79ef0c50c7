package book

import (
	"fmt"
	"strings"
)

// Record is one contact: a fixed name, an ordered list of phones and an
// optional birthday. Mutation either fully succeeds or leaves the record
// untouched.
type Record struct {
	name     Name
	phones   []Phone
	birthday Birthday
}

// NewRecord creates a record for the given name.
func NewRecord(name string) (*Record, error) {
	n, err := ParseName(name)
	if err != nil {
		return nil, err
	}
	return &Record{name: n}, nil
}

func (r *Record) Name() Name { return r.name }

// Phones returns a copy of the phone list in stored order.
func (r *Record) Phones() []Phone {
	out := make([]Phone, len(r.phones))
	copy(out, r.phones)
	return out
}

// Birthday returns the birthday and whether one is set.
func (r *Record) Birthday() (Birthday, bool) {
	return r.birthday, !r.birthday.IsZero()
}

// AddPhone validates and appends a phone number. Duplicates within one
// record are rejected so that EditPhone can never be ambiguous.
func (r *Record) AddPhone(raw string) error {
	p, err := ParsePhone(raw)
	if err != nil {
		return err
	}
	for _, existing := range r.phones {
		if existing == p {
			return fmt.Errorf("%w: phone %s already stored for %s", ErrDuplicate, p, r.name)
		}
	}
	r.phones = append(r.phones, p)
	return nil
}

// RemovePhone deletes the phone equal to raw.
func (r *Record) RemovePhone(raw string) error {
	for i, p := range r.phones {
		if string(p) == raw {
			r.phones = append(r.phones[:i], r.phones[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: phone %s for %s", ErrNotFound, raw, r.name)
}

// EditPhone replaces old with new in place, keeping the position in the
// list. The new number is validated before old is looked up, so a failed
// edit changes nothing.
func (r *Record) EditPhone(old, new string) error {
	p, err := ParsePhone(new)
	if err != nil {
		return err
	}
	for _, existing := range r.phones {
		if existing == p && string(existing) != old {
			return fmt.Errorf("%w: phone %s already stored for %s", ErrDuplicate, p, r.name)
		}
	}
	for i, existing := range r.phones {
		if string(existing) == old {
			r.phones[i] = p
			return nil
		}
	}
	return fmt.Errorf("%w: phone %s for %s", ErrNotFound, old, r.name)
}

// SetBirthday validates and sets the birthday, replacing any previous one.
func (r *Record) SetBirthday(raw string) error {
	b, err := ParseBirthday(raw)
	if err != nil {
		return err
	}
	r.birthday = b
	return nil
}

// Clone returns a deep copy. The book hands out clones so that no caller
// holds a reference into the live store.
func (r *Record) Clone() *Record {
	return &Record{name: r.name, phones: r.Phones(), birthday: r.birthday}
}

// String renders the record as one display line:
// name, comma-joined phones, then the birthday if set.
func (r *Record) String() string {
	var sb strings.Builder
	sb.WriteString(string(r.name))
	sb.WriteString(":")
	if len(r.phones) == 0 {
		sb.WriteString(" -")
	}
	for i, p := range r.phones {
		if i > 0 {
			sb.WriteString(",")
		}
		sb.WriteString(" " + string(p))
	}
	if !r.birthday.IsZero() {
		sb.WriteString(" (birthday " + r.birthday.String() + ")")
	}
	return sb.String()
}
