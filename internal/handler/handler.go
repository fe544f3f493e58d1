// Package handler turns parsed commands into address book operations and
// formats their results.
package handler

import (
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/text/cases"

	"contactbook/internal/addressbook"
	"contactbook/internal/apperror"
	"contactbook/internal/model"
)

const (
	msgInvalidCommand = "Invalid command."
	msgContactMissing = "Contact doesn't exist"
	msgAdded          = "Contact added."
	msgUpdated        = "Contact updated."
	msgInfoUpdated    = "Contact info updated"
	msgDeleted        = "Contact deleted."
	msgPhoneMissing   = "Phone not found."
	msgNoContacts     = "No contacts."
	msgNoBirthdays    = "No upcoming birthdays."
)

// Command runs one command against the address book.
type Command func(args []string) (string, error)

// Handler wraps the command set with logger and address book.
type Handler struct {
	log      *zap.Logger
	book     *addressbook.AddressBook
	now      func() time.Time
	commands map[string]Command
	fold     cases.Caser
}

// Option customises a Handler.
type Option func(*Handler)

// WithClock replaces time.Now as the source of today's date.
func WithClock(now func() time.Time) Option {
	return func(h *Handler) { h.now = now }
}

// New creates a new Handler instance.
func New(log *zap.Logger, book *addressbook.AddressBook, opts ...Option) *Handler {
	h := &Handler{
		log:  log,
		book: book,
		now:  time.Now,
		fold: cases.Fold(),
	}
	for _, opt := range opts {
		opt(h)
	}
	h.commands = map[string]Command{
		"hello":         h.Hello,
		"help":          h.Help,
		"add":           h.AddContact,
		"change":        h.ChangeContact,
		"phone":         h.ShowPhone,
		"all":           h.ShowAll,
		"delete":        h.DeleteContact,
		"remove-phone":  h.RemovePhone,
		"add-birthday":  h.AddBirthday,
		"show-birthday": h.ShowBirthday,
		"birthdays":     h.Birthdays,
	}
	return h
}

// Normalize folds a command name so lookups ignore case.
func (h *Handler) Normalize(cmd string) string {
	return h.fold.String(strings.TrimSpace(cmd))
}

// IsExit reports whether cmd ends the session.
func (h *Handler) IsExit(cmd string) bool {
	switch h.Normalize(cmd) {
	case "close", "exit":
		return true
	}
	return false
}

// Dispatch runs cmd and always returns text for the user. Errors from the
// command are translated by kind and never escape.
func (h *Handler) Dispatch(cmd string, args []string) string {
	name := h.Normalize(cmd)
	run, ok := h.commands[name]
	if !ok {
		h.log.Debug("unknown command", zap.String("command", cmd))
		return msgInvalidCommand
	}

	out, err := run(args)
	if err != nil {
		level := zap.WarnLevel
		if !knownKind(err) {
			level = zap.ErrorLevel
		}
		h.log.Check(level, "command failed").Write(zap.String("command", name), zap.Strings("args", args), zap.Error(err))
		return apperror.Message(err)
	}
	return out
}

func knownKind(err error) bool {
	return errors.Is(err, apperror.ErrValidation) ||
		errors.Is(err, apperror.ErrMissingArgument) ||
		errors.Is(err, apperror.ErrLookup)
}

// args returns the first len(names) arguments or a missing argument error
// naming the first one absent. Extra arguments are ignored.
func args(given []string, names ...string) ([]string, error) {
	if len(given) < len(names) {
		return nil, apperror.MissingArgument(names[len(given)])
	}
	return given[:len(names)], nil
}

// Hello greets the user.
func (h *Handler) Hello(_ []string) (string, error) {
	return "How can I help you?", nil
}

// Help lists the available commands.
func (h *Handler) Help(_ []string) (string, error) {
	return strings.Join([]string{
		"hello",
		"add <name> <phone>",
		"change <name> <phone>",
		"change <name> <old phone> <new phone>",
		"phone <name>",
		"all",
		"delete <name>",
		"remove-phone <name> <phone>",
		"add-birthday <name> <DD.MM.YYYY>",
		"show-birthday <name>",
		"birthdays",
		"close | exit",
	}, "\n"), nil
}

// AddContact creates the contact when needed and appends a phone.
func (h *Handler) AddContact(in []string) (string, error) {
	a, err := args(in, "name", "phone")
	if err != nil {
		return "", err
	}
	name, phone := a[0], a[1]

	r, ok := h.book.Find(name)
	if ok {
		if err := r.AddPhone(phone); err != nil {
			return "", err
		}
		h.log.Debug("phone added", zap.String("name", name))
		return msgUpdated, nil
	}

	r = model.NewRecord(name)
	if err := r.AddPhone(phone); err != nil {
		return "", err
	}
	h.book.AddRecord(r)
	h.log.Debug("contact added", zap.String("name", name))
	return msgAdded, nil
}

// ChangeContact replaces the phone list of a contact with a single phone.
// Given an old and a new phone it edits just that number.
func (h *Handler) ChangeContact(in []string) (string, error) {
	a, err := args(in, "name", "phone")
	if err != nil {
		return "", err
	}
	name := a[0]

	r, ok := h.book.Find(name)
	if !ok {
		return msgContactMissing, nil
	}

	if len(in) >= 3 {
		edited, err := r.EditPhone(in[1], in[2])
		if err != nil {
			return "", err
		}
		if !edited {
			return msgPhoneMissing, nil
		}
		h.log.Debug("phone edited", zap.String("name", name))
		return msgUpdated, nil
	}

	if err := r.ReplacePhones(a[1]); err != nil {
		return "", err
	}
	h.log.Debug("phones replaced", zap.String("name", name))
	return msgUpdated, nil
}

// ShowPhone renders the contact with its phones.
func (h *Handler) ShowPhone(in []string) (string, error) {
	a, err := args(in, "name")
	if err != nil {
		return "", err
	}
	r, ok := h.book.Find(a[0])
	if !ok {
		return msgContactMissing, nil
	}
	return r.String(), nil
}

// ShowAll lists every contact name, one per line.
func (h *Handler) ShowAll(_ []string) (string, error) {
	names := h.book.ShowAll()
	if len(names) == 0 {
		return msgNoContacts, nil
	}
	return strings.Join(names, "\n"), nil
}

// DeleteContact removes a contact.
func (h *Handler) DeleteContact(in []string) (string, error) {
	a, err := args(in, "name")
	if err != nil {
		return "", err
	}
	if _, ok := h.book.Find(a[0]); !ok {
		return msgContactMissing, nil
	}
	h.book.Delete(a[0])
	h.log.Debug("contact deleted", zap.String("name", a[0]))
	return msgDeleted, nil
}

// RemovePhone drops every copy of a phone from a contact.
func (h *Handler) RemovePhone(in []string) (string, error) {
	a, err := args(in, "name", "phone")
	if err != nil {
		return "", err
	}
	r, ok := h.book.Find(a[0])
	if !ok {
		return msgContactMissing, nil
	}
	if _, ok := r.FindPhone(a[1]); !ok {
		return msgPhoneMissing, nil
	}
	r.RemovePhone(a[1])
	h.log.Debug("phone removed", zap.String("name", a[0]))
	return msgUpdated, nil
}

// AddBirthday sets the birthday, creating the contact when needed.
func (h *Handler) AddBirthday(in []string) (string, error) {
	a, err := args(in, "name", "date")
	if err != nil {
		return "", err
	}
	name, date := a[0], a[1]

	r, ok := h.book.Find(name)
	if !ok {
		r = model.NewRecord(name)
	}
	if err := r.AddBirthday(date); err != nil {
		return "", err
	}
	if !ok {
		h.book.AddRecord(r)
	}
	h.log.Debug("birthday set", zap.String("name", name))
	return msgInfoUpdated, nil
}

// ShowBirthday renders the birthday line of a contact.
func (h *Handler) ShowBirthday(in []string) (string, error) {
	a, err := args(in, "name")
	if err != nil {
		return "", err
	}
	return h.book.ShowBirthday(a[0]), nil
}

// Birthdays lists the next congratulation date of every contact with a birthday.
func (h *Handler) Birthdays(_ []string) (string, error) {
	upcoming := h.book.Birthdays(h.now())
	if len(upcoming) == 0 {
		return msgNoBirthdays, nil
	}
	lines := make([]string, 0, len(upcoming))
	for _, c := range upcoming {
		lines = append(lines, c.String())
	}
	return strings.Join(lines, "\n"), nil
}
