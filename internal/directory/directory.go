// Package directory holds contacts in insertion order and enforces unique IDs.
package directory

import (
	"errors"
	"fmt"
	"sync"

	"github.com/smileynet/contactbook/internal/contact"
)

// User-facing outcomes of Add.
const (
	AddedMessage     = "Contact added successfully"
	DuplicateMessage = "Contact with same ID already exists"
)

// ErrDuplicateID indicates a contact with the same ID is already present.
var ErrDuplicateID = errors.New("directory: duplicate contact ID")

// Directory is an ordered list of contacts keyed by ID.
// It is safe for concurrent use.
type Directory struct {
	mu       sync.Mutex
	contacts []contact.Contact
}

// New returns an empty Directory.
func New() *Directory {
	return &Directory{}
}

// Add appends c unless a contact with the same ID exists, in which case the
// directory is left unchanged and ErrDuplicateID is returned.
func (d *Directory) Add(c contact.Contact) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.find(c.ID); ok {
		return fmt.Errorf("%w: %d", ErrDuplicateID, c.ID)
	}
	d.contacts = append(d.contacts, c)
	return nil
}

// Contacts returns a copy of all contacts in insertion order.
func (d *Directory) Contacts() []contact.Contact {
	d.mu.Lock()
	defer d.mu.Unlock()

	out := make([]contact.Contact, len(d.contacts))
	copy(out, d.contacts)
	return out
}

// SearchByID returns the contact with the given ID.
// Returns (contact, true) if found, (zero, false) if not.
func (d *Directory) SearchByID(id int) (contact.Contact, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.find(id)
}

// Len returns the number of contacts.
func (d *Directory) Len() int {
	d.mu.Lock()
	defer d.mu.Unlock()

	return len(d.contacts)
}

// find scans in insertion order. Callers must hold d.mu.
func (d *Directory) find(id int) (contact.Contact, bool) {
	for _, c := range d.contacts {
		if c.ID == id {
			return c, true
		}
	}
	return contact.Contact{}, false
}
