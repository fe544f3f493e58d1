// Package model holds the contact record and the value types it is built from.
package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"contactbook/internal/apperror"
)

// BirthdayLayout is the DD.MM.YYYY format birthdays are entered and shown in.
const BirthdayLayout = "02.01.2006"

const errBirthdayFormat = "Invalid date format. Use DD.MM.YYYY"

// Field is a validated scalar value of a contact that renders as text.
type Field interface {
	fmt.Stringer
}

var (
	_ Field = Name{}
	_ Field = Phone{}
	_ Field = Birthday{}
)

var validate = validator.New()

// phoneRules are all checked, so a value breaking both reports both.
var phoneRules = []struct {
	tag    string
	reason string
}{
	{tag: "len=10", reason: "must be 10 characters long"},
	{tag: "number", reason: "must contain only digits"},
}

// Name identifies a contact within an address book.
type Name struct {
	value string
}

// NewName wraps value. Callers pass non-empty names.
func NewName(value string) Name {
	return Name{value: value}
}

func (n Name) String() string { return n.value }

// Phone is a ten digit phone number.
type Phone struct {
	value string
}

// NewPhone validates value and returns it as a Phone.
func NewPhone(value string) (Phone, error) {
	var reasons []string
	for _, rule := range phoneRules {
		if err := validate.Var(value, rule.tag); err != nil {
			reasons = append(reasons, rule.reason)
		}
	}
	if len(reasons) > 0 {
		return Phone{}, apperror.NewValidation("phone",
			fmt.Sprintf("phone %q %s", value, strings.Join(reasons, " and ")))
	}
	return Phone{value: value}, nil
}

func (p Phone) String() string { return p.value }

// Birthday is a calendar date without time of day.
type Birthday struct {
	date time.Time
}

// NewBirthday parses value in the DD.MM.YYYY layout.
func NewBirthday(value string) (Birthday, error) {
	date, err := time.Parse(BirthdayLayout, value)
	if err != nil {
		return Birthday{}, apperror.NewValidation("birthday", errBirthdayFormat)
	}
	return Birthday{date: date}, nil
}

// Date returns the birthday as UTC midnight.
func (b Birthday) Date() time.Time { return b.date }

// Equal reports whether both birthdays fall on the same date.
func (b Birthday) Equal(other Birthday) bool { return b.date.Equal(other.date) }

func (b Birthday) String() string { return b.date.Format(BirthdayLayout) }
