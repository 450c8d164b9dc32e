// Package contact defines the contact record and its phone number rules.
package contact

import (
	"errors"
	"fmt"
	"unicode"
	"unicode/utf8"
)

// PhoneNumberLength is the exact number of digits a phone number must have.
const PhoneNumberLength = 10

// InvalidPhoneMessage is the user-facing text for a rejected phone number.
const InvalidPhoneMessage = "Enter a valid Phone Number"

// ErrInvalidPhoneNumber indicates a phone number that is not exactly
// PhoneNumberLength decimal digits.
var ErrInvalidPhoneNumber = errors.New("contact: invalid phone number")

// Contact is a single directory entry. The zero value has ID 0 and empty
// name and phone number.
type Contact struct {
	ID          int
	Name        string
	PhoneNumber string
}

// New returns a Contact with all fields set, or ErrInvalidPhoneNumber if
// phone does not validate.
func New(id int, name, phone string) (Contact, error) {
	if err := ValidatePhoneNumber(phone); err != nil {
		return Contact{}, err
	}
	return Contact{ID: id, Name: name, PhoneNumber: phone}, nil
}

// SetID stores id unconditionally.
func (c *Contact) SetID(id int) {
	c.ID = id
}

// SetName stores name unconditionally.
func (c *Contact) SetName(name string) {
	c.Name = name
}

// SetPhoneNumber stores phone if it validates. On failure the previous
// value is kept and the validation error is returned.
func (c *Contact) SetPhoneNumber(phone string) error {
	if err := ValidatePhoneNumber(phone); err != nil {
		return err
	}
	c.PhoneNumber = phone
	return nil
}

// ValidatePhoneNumber reports whether phone is exactly PhoneNumberLength
// characters, each a Unicode decimal digit.
func ValidatePhoneNumber(phone string) error {
	if n := utf8.RuneCountInString(phone); n != PhoneNumberLength {
		return fmt.Errorf("%w: want %d digits, got %d characters", ErrInvalidPhoneNumber, PhoneNumberLength, n)
	}
	for i, r := range []rune(phone) {
		if !unicode.IsDigit(r) {
			return fmt.Errorf("%w: non-digit %q at position %d", ErrInvalidPhoneNumber, r, i)
		}
	}
	return nil
}

// Builder accumulates contact fields and defers validation errors to Build.
// Only the first error is kept.
type Builder struct {
	c   Contact
	err error
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// ID sets the contact identifier.
func (b *Builder) ID(id int) *Builder {
	b.c.SetID(id)
	return b
}

// Name sets the contact name.
func (b *Builder) Name(name string) *Builder {
	b.c.SetName(name)
	return b
}

// PhoneNumber validates and sets the phone number.
func (b *Builder) PhoneNumber(phone string) *Builder {
	if err := b.c.SetPhoneNumber(phone); err != nil && b.err == nil {
		b.err = err
	}
	return b
}

// Build returns the accumulated contact, or the first validation error.
func (b *Builder) Build() (Contact, error) {
	if b.err != nil {
		return Contact{}, b.err
	}
	return b.c, nil
}
