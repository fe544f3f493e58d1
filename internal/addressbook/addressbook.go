// Package addressbook keeps contact records keyed by name and answers
// queries over all of them.
package addressbook

import (
	"slices"

	"contactbook/internal/model"
)

const contactMissing = "Contact doesn't exist"

// AddressBook maps a contact name to its record and remembers the order in
// which names were first added.
type AddressBook struct {
	records map[string]*model.Record
	order   []string
}

// New creates an empty address book.
func New() *AddressBook {
	return &AddressBook{records: make(map[string]*model.Record)}
}

// AddRecord stores r under its name, discarding any record already there.
func (b *AddressBook) AddRecord(r *model.Record) {
	name := r.Name()
	if _, ok := b.records[name]; !ok {
		b.order = append(b.order, name)
	}
	b.records[name] = r
}

// Find returns the record for name, or false when there is none.
func (b *AddressBook) Find(name string) (*model.Record, bool) {
	r, ok := b.records[name]
	return r, ok
}

// Delete removes name. Unknown names are ignored.
func (b *AddressBook) Delete(name string) {
	if _, ok := b.records[name]; !ok {
		return
	}
	delete(b.records, name)
	b.order = slices.DeleteFunc(b.order, func(n string) bool { return n == name })
}

// ShowBirthday renders the birthday line for name.
func (b *AddressBook) ShowBirthday(name string) string {
	r, ok := b.records[name]
	if !ok {
		return contactMissing
	}
	date := "none"
	if bd, ok := r.Birthday(); ok {
		date = bd.String()
	}
	return "Name: " + r.Name() + ", Birthday: " + date
}

// ShowAll returns every contact name in insertion order.
func (b *AddressBook) ShowAll() []string {
	return slices.Clone(b.order)
}

// Records returns every record in insertion order.
func (b *AddressBook) Records() []*model.Record {
	out := make([]*model.Record, 0, len(b.order))
	for _, name := range b.order {
		out = append(out, b.records[name])
	}
	return out
}

// Len returns the number of contacts.
func (b *AddressBook) Len() int { return len(b.records) }
