package book

import (
	"fmt"
	"iter"
	"slices"
	"strings"
	"time"
)

// AddressBook maps contact names to records, preserving insertion order
// for listing and pagination. It is exclusively owned by one session;
// no locking, no concurrent access.
type AddressBook struct {
	index   map[Name]int
	records []*Record
}

func New() *AddressBook {
	return &AddressBook{index: make(map[Name]int)}
}

func (ab *AddressBook) Len() int { return len(ab.records) }

// Add inserts a record. The book takes ownership of rec.
func (ab *AddressBook) Add(rec *Record) error {
	if _, ok := ab.index[rec.Name()]; ok {
		return fmt.Errorf("%w: contact %s already exists", ErrDuplicate, rec.Name())
	}
	ab.index[rec.Name()] = len(ab.records)
	ab.records = append(ab.records, rec)
	return nil
}

// Find returns a copy of the named record. Mutation goes through the
// book-level operations below, never through the returned copy.
func (ab *AddressBook) Find(name string) (*Record, error) {
	rec, err := ab.lookup(name)
	if err != nil {
		return nil, err
	}
	return rec.Clone(), nil
}

// Remove deletes the named record and its key.
func (ab *AddressBook) Remove(name string) error {
	i, ok := ab.index[Name(strings.TrimSpace(name))]
	if !ok {
		return fmt.Errorf("%w: contact %s", ErrNotFound, name)
	}
	delete(ab.index, ab.records[i].Name())
	ab.records = slices.Delete(ab.records, i, i+1)
	for j := i; j < len(ab.records); j++ {
		ab.index[ab.records[j].Name()] = j
	}
	return nil
}

// Rename re-keys a contact: the record keeps its phones and birthday but
// moves to the end of the iteration order, exactly as remove + add would.
func (ab *AddressBook) Rename(old, new string) error {
	rec, err := ab.lookup(old)
	if err != nil {
		return err
	}
	renamed, err := NewRecord(new)
	if err != nil {
		return err
	}
	if _, ok := ab.index[renamed.Name()]; ok {
		return fmt.Errorf("%w: contact %s already exists", ErrDuplicate, renamed.Name())
	}
	renamed.phones = rec.Phones()
	renamed.birthday = rec.birthday
	if err := ab.Remove(old); err != nil {
		return err
	}
	return ab.Add(renamed)
}

// AddPhone appends a phone to the named record.
func (ab *AddressBook) AddPhone(name, phone string) error {
	rec, err := ab.lookup(name)
	if err != nil {
		return err
	}
	return rec.AddPhone(phone)
}

// RemovePhone deletes a phone from the named record.
func (ab *AddressBook) RemovePhone(name, phone string) error {
	rec, err := ab.lookup(name)
	if err != nil {
		return err
	}
	return rec.RemovePhone(phone)
}

// EditPhone replaces old with new on the named record, preserving position.
func (ab *AddressBook) EditPhone(name, old, new string) error {
	rec, err := ab.lookup(name)
	if err != nil {
		return err
	}
	return rec.EditPhone(old, new)
}

// SetBirthday sets the birthday of the named record.
func (ab *AddressBook) SetBirthday(name, raw string) error {
	rec, err := ab.lookup(name)
	if err != nil {
		return err
	}
	return rec.SetBirthday(raw)
}

// Records returns copies of all records in insertion order.
func (ab *AddressBook) Records() []*Record {
	out := make([]*Record, len(ab.records))
	for i, rec := range ab.records {
		out[i] = rec.Clone()
	}
	return out
}

// Pages yields batches of at most size records in insertion order. The
// sequence is lazy and restartable: each range starts a fresh traversal
// and ends after every record has been yielded once.
func (ab *AddressBook) Pages(size int) iter.Seq[[]*Record] {
	if size < 1 {
		size = 1
	}
	return func(yield func([]*Record) bool) {
		for start := 0; start < len(ab.records); start += size {
			end := min(start+size, len(ab.records))
			page := make([]*Record, 0, end-start)
			for _, rec := range ab.records[start:end] {
				page = append(page, rec.Clone())
			}
			if !yield(page) {
				return
			}
		}
	}
}

// Search returns copies of every record where query is a case-insensitive
// substring of the name, a substring of any phone, or a substring of the
// birthday's DD.MM.YYYY form. Order follows insertion order; an empty
// result is not an error.
func (ab *AddressBook) Search(query string) []*Record {
	q := strings.ToLower(query)
	var out []*Record
	for _, rec := range ab.records {
		if ab.matches(rec, q) {
			out = append(out, rec.Clone())
		}
	}
	return out
}

func (ab *AddressBook) matches(rec *Record, q string) bool {
	if strings.Contains(strings.ToLower(string(rec.name)), q) {
		return true
	}
	for _, p := range rec.phones {
		if strings.Contains(string(p), q) {
			return true
		}
	}
	return !rec.birthday.IsZero() && strings.Contains(rec.birthday.String(), q)
}

// Upcoming returns copies of records whose next birthday anniversary falls
// within the given number of days from today, in insertion order.
func (ab *AddressBook) Upcoming(today time.Time, within int) []*Record {
	var out []*Record
	for _, rec := range ab.records {
		if rec.birthday.IsZero() {
			continue
		}
		if rec.birthday.DaysUntilNext(today) <= within {
			out = append(out, rec.Clone())
		}
	}
	return out
}

func (ab *AddressBook) lookup(name string) (*Record, error) {
	i, ok := ab.index[Name(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%w: contact %s", ErrNotFound, name)
	}
	return ab.records[i], nil
}
