// Package codec converts an address book to and from its persisted forms:
// JSON (full fidelity), CSV and XLSX (tabular). Decoding re-validates every
// field, so a corrupted file surfaces a validation error instead of
// silently producing a bad book.
package codec

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/jeanpaul/rolodex/internal/book"
)

type jsonEntry struct {
	Phones   []string `json:"phones"`
	Birthday *string  `json:"birthday"`
}

// EncodeJSON renders the book as an object mapping each contact name to
// {phones, birthday-or-null}, one contact per line, in insertion order.
func EncodeJSON(ab *book.AddressBook) ([]byte, error) {
	recs := ab.Records()
	var buf bytes.Buffer
	buf.WriteString("{")
	for i, rec := range recs {
		key, err := json.Marshal(string(rec.Name()))
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(entryFor(rec))
		if err != nil {
			return nil, err
		}
		if i > 0 {
			buf.WriteString(",")
		}
		buf.WriteString("\n  ")
		buf.Write(key)
		buf.WriteString(": ")
		buf.Write(val)
	}
	if len(recs) > 0 {
		buf.WriteString("\n")
	}
	buf.WriteString("}\n")
	return buf.Bytes(), nil
}

func entryFor(rec *book.Record) jsonEntry {
	e := jsonEntry{Phones: make([]string, 0, len(rec.Phones()))}
	for _, p := range rec.Phones() {
		e.Phones = append(e.Phones, string(p))
	}
	if b, ok := rec.Birthday(); ok {
		s := b.String()
		e.Birthday = &s
	}
	return e
}

// DecodeJSON rebuilds a book from its JSON form. The object's key order is
// preserved, which is why decoding walks the token stream instead of
// unmarshalling into a map. Structural problems fail with ErrFormat;
// invalid phones or dates fail with ErrValidation.
func DecodeJSON(data []byte) (*book.AddressBook, error) {
	if err := validateShape(data); err != nil {
		return nil, err
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("%w: %v", book.ErrFormat, err)
	}

	ab := book.New()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", book.ErrFormat, err)
		}
		name, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("%w: expected contact name, got %v", book.ErrFormat, tok)
		}
		var e jsonEntry
		if err := dec.Decode(&e); err != nil {
			return nil, fmt.Errorf("%w: %v", book.ErrFormat, err)
		}
		rec, err := recordFrom(name, e.Phones, birthdayOf(e))
		if err != nil {
			return nil, err
		}
		if err := ab.Add(rec); err != nil {
			return nil, err
		}
	}
	return ab, nil
}

func birthdayOf(e jsonEntry) string {
	if e.Birthday == nil {
		return ""
	}
	return *e.Birthday
}

// recordFrom runs the same validation path as interactive add, shared by
// the JSON, CSV and XLSX decoders.
func recordFrom(name string, phones []string, birthday string) (*book.Record, error) {
	rec, err := book.NewRecord(name)
	if err != nil {
		return nil, err
	}
	for _, p := range phones {
		if err := rec.AddPhone(p); err != nil {
			return nil, err
		}
	}
	if birthday != "" {
		if err := rec.SetBirthday(birthday); err != nil {
			return nil, err
		}
	}
	return rec, nil
}
