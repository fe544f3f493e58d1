package model

import (
	"slices"
	"strings"
)

// Record is everything stored about one contact. The name never changes
// after construction.
type Record struct {
	name     Name
	phones   []Phone
	birthday *Birthday
}

// NewRecord creates a record with a name and nothing else.
func NewRecord(name string) *Record {
	return &Record{name: NewName(name)}
}

// Name returns the contact name the record is keyed by.
func (r *Record) Name() string { return r.name.String() }

// Phones returns a copy of the phone numbers in the order they were added.
func (r *Record) Phones() []string {
	out := make([]string, 0, len(r.phones))
	for _, p := range r.phones {
		out = append(out, p.String())
	}
	return out
}

// Birthday returns the birthday and whether one is set.
func (r *Record) Birthday() (Birthday, bool) {
	if r.birthday == nil {
		return Birthday{}, false
	}
	return *r.birthday, true
}

// AddPhone appends phone. Duplicates are allowed.
func (r *Record) AddPhone(phone string) error {
	p, err := NewPhone(phone)
	if err != nil {
		return err
	}
	r.phones = append(r.phones, p)
	return nil
}

// RemovePhone drops every phone equal to phone.
func (r *Record) RemovePhone(phone string) {
	r.phones = slices.DeleteFunc(r.phones, func(p Phone) bool {
		return p.String() == phone
	})
}

// EditPhone replaces the first phone equal to oldPhone. It reports whether
// a replacement happened; an invalid newPhone leaves the record untouched.
func (r *Record) EditPhone(oldPhone, newPhone string) (bool, error) {
	i := slices.IndexFunc(r.phones, func(p Phone) bool { return p.String() == oldPhone })
	if i < 0 {
		return false, nil
	}
	p, err := NewPhone(newPhone)
	if err != nil {
		return false, err
	}
	r.phones[i] = p
	return true, nil
}

// FindPhone returns phone when the record holds it.
func (r *Record) FindPhone(phone string) (string, bool) {
	for _, p := range r.phones {
		if p.String() == phone {
			return phone, true
		}
	}
	return "", false
}

// ReplacePhones makes phone the only number of the record.
func (r *Record) ReplacePhones(phone string) error {
	p, err := NewPhone(phone)
	if err != nil {
		return err
	}
	r.phones = []Phone{p}
	return nil
}

// AddBirthday sets the birthday, overwriting any previous one.
func (r *Record) AddBirthday(date string) error {
	b, err := NewBirthday(date)
	if err != nil {
		return err
	}
	r.birthday = &b
	return nil
}

func (r *Record) String() string {
	return "Contact name: " + r.name.String() + ", phones: " + strings.Join(r.Phones(), "; ")
}
