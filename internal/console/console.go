// Package console renders directory outcomes as human-readable lines.
// Text is identical in plain and styled mode; styled mode only adds colour.
package console

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"github.com/smileynet/contactbook/internal/contact"
	"github.com/smileynet/contactbook/internal/directory"
)

// Lookup and table text.
const (
	FoundMessage    = "Contact Found:"
	NotFoundMessage = "Contact not found"
	NamePrefix      = "Name: "
	PhonePrefix     = "Phone: "
)

// Colour modes accepted by Options.Color.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// DefaultDelimiter separates table columns.
const DefaultDelimiter = "\t"

// Options configures printer creation.
type Options struct {
	Writer    io.Writer // Output destination (default: os.Stdout).
	Delimiter string    // Column separator (default: tab).
	Color     string    // ColorAuto styles TTY output; ColorAlways and ColorNever force it on or off.
}

// Printer writes contact directory output to a writer.
type Printer struct {
	w      io.Writer
	delim  string
	styled bool
	st     styles
}

// New returns a Printer. Styling is enabled when Color is ColorAlways, or
// when Color is ColorAuto (or empty) and the writer is a terminal.
func New(opts Options) *Printer {
	if opts.Writer == nil {
		opts.Writer = os.Stdout
	}
	if opts.Delimiter == "" {
		opts.Delimiter = DefaultDelimiter
	}
	p := &Printer{w: opts.Writer, delim: opts.Delimiter}
	switch {
	case opts.Color == ColorAlways:
		r := lipgloss.NewRenderer(opts.Writer)
		r.SetColorProfile(termenv.ANSI256)
		if !isTTY(opts.Writer) {
			// No terminal to query for the background.
			r.SetHasDarkBackground(true)
		}
		p.styled = true
		p.st = newStyles(r)
	case opts.Color != ColorNever && isTTY(opts.Writer):
		p.styled = true
		p.st = newStyles(lipgloss.NewRenderer(opts.Writer))
	}
	return p
}

// isTTY reports whether w is connected to a terminal.
func isTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Added reports a successful add.
func (p *Printer) Added() {
	p.line(p.st.ok, directory.AddedMessage)
}

// Duplicate reports an add rejected for a repeated ID.
func (p *Printer) Duplicate() {
	p.line(p.st.warn, directory.DuplicateMessage)
}

// InvalidPhone reports a rejected phone number.
func (p *Printer) InvalidPhone() {
	p.line(p.st.warn, contact.InvalidPhoneMessage)
}

// Report prints the message for a known business-rule error.
// Unknown errors are returned unprinted; nil is a no-op.
func (p *Printer) Report(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, contact.ErrInvalidPhoneNumber):
		p.InvalidPhone()
	case errors.Is(err, directory.ErrDuplicateID):
		p.Duplicate()
	default:
		return err
	}
	return nil
}

// AddResult prints the outcome of a directory add.
func (p *Printer) AddResult(err error) error {
	if err == nil {
		p.Added()
		return nil
	}
	return p.Report(err)
}

// Section prints a blank line followed by title.
func (p *Printer) Section(title string) {
	_, _ = fmt.Fprintln(p.w)
	p.line(p.st.title, title)
}

// Contacts prints the header row and one row per contact.
func (p *Printer) Contacts(list []contact.Contact) {
	p.line(p.st.header, strings.Join([]string{"ID", "Name", "Phone Number"}, p.delim))
	for _, c := range list {
		_, _ = fmt.Fprintln(p.w, strings.Join([]string{strconv.Itoa(c.ID), c.Name, c.PhoneNumber}, p.delim))
	}
}

// Found prints the details of a located contact.
func (p *Printer) Found(c contact.Contact) {
	p.line(p.st.ok, FoundMessage)
	_, _ = fmt.Fprintln(p.w, NamePrefix+c.Name)
	_, _ = fmt.Fprintln(p.w, PhonePrefix+c.PhoneNumber)
}

// NotFound reports a failed lookup.
func (p *Printer) NotFound() {
	p.line(p.st.warn, NotFoundMessage)
}

// Lookup prints Found or NotFound depending on ok.
func (p *Printer) Lookup(c contact.Contact, ok bool) {
	if ok {
		p.Found(c)
		return
	}
	p.NotFound()
}

// Println writes an unstyled line.
func (p *Printer) Println(s string) {
	_, _ = fmt.Fprintln(p.w, s)
}

func (p *Printer) line(style lipgloss.Style, s string) {
	if p.styled {
		s = style.Render(s)
	}
	_, _ = fmt.Fprintln(p.w, s)
}
