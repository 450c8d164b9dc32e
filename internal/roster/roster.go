// Package roster imports contacts from a YAML document into a directory.
package roster

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path"

	"gopkg.in/yaml.v3"

	"github.com/smileynet/contactbook/internal/contact"
	"github.com/smileynet/contactbook/internal/directory"
)

// ErrInvalidName indicates a roster name that is empty or not a plain file name.
var ErrInvalidName = errors.New("roster: invalid roster name")

// Entry is one contact as written in a roster file.
type Entry struct {
	ID    int    `yaml:"id"`
	Name  string `yaml:"name"`
	Phone string `yaml:"phone"`
}

// Roster is a parsed roster document.
type Roster struct {
	Contacts []Entry `yaml:"contacts"`
}

// Reporter receives the outcome of each imported entry.
// Implemented by *console.Printer.
type Reporter interface {
	InvalidPhone()
	AddResult(err error) error
}

// Result counts the outcomes of Apply and ApplyStrict.
type Result struct {
	Added         int
	Duplicates    int
	InvalidPhones int
	Skipped       int // Entries dropped by ApplyStrict
}

// Parse decodes a roster document. Unknown fields are rejected.
// An empty or comment-only document yields an empty roster.
func Parse(data []byte) (*Roster, error) {
	var r Roster
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&r); err != nil {
		if errors.Is(err, io.EOF) {
			return &r, nil
		}
		return nil, fmt.Errorf("roster: parsing: %w", err)
	}
	return &r, nil
}

// Load reads and parses the named roster from fsys.
func Load(fsys fs.FS, name string) (*Roster, error) {
	if name == "" || name == "." || name == ".." || name != path.Base(name) || !fs.ValidPath(name) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("roster: reading %s: %w", name, err)
	}
	r, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return r, nil
}

// Apply builds each entry field by field and adds it to d, reporting every
// outcome to rep. An entry with an invalid phone is still added with an
// empty phone number. Only errors rep cannot report are returned.
func (r *Roster) Apply(d *directory.Directory, rep Reporter) (Result, error) {
	return r.apply(d, rep, false)
}

// ApplyStrict is like Apply but skips entries whose phone number does not
// validate instead of adding them with an empty phone.
func (r *Roster) ApplyStrict(d *directory.Directory, rep Reporter) (Result, error) {
	return r.apply(d, rep, true)
}

func (r *Roster) apply(d *directory.Directory, rep Reporter, strict bool) (Result, error) {
	var res Result
	for _, e := range r.Contacts {
		c, ok := build(e, strict)
		if !ok {
			res.InvalidPhones++
			rep.InvalidPhone()
			if strict {
				res.Skipped++
				continue
			}
		}

		err := d.Add(c)
		switch {
		case err == nil:
			res.Added++
		case errors.Is(err, directory.ErrDuplicateID):
			res.Duplicates++
		}
		if err := rep.AddResult(err); err != nil {
			return res, fmt.Errorf("roster: entry %d: %w", e.ID, err)
		}
	}
	return res, nil
}

// build converts e to a contact. ok is false when the phone was rejected;
// in lenient mode c is still usable with an empty phone.
func build(e Entry, strict bool) (c contact.Contact, ok bool) {
	if strict {
		nc, err := contact.New(e.ID, e.Name, e.Phone)
		return nc, err == nil
	}
	c.SetID(e.ID)
	c.SetName(e.Name)
	ok = c.SetPhoneNumber(e.Phone) == nil
	return c, ok
}
