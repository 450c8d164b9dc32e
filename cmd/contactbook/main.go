package main

import (
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/alecthomas/kong"

	"github.com/smileynet/contactbook"
	"github.com/smileynet/contactbook/internal/config"
	"github.com/smileynet/contactbook/internal/console"
	"github.com/smileynet/contactbook/internal/contact"
	"github.com/smileynet/contactbook/internal/directory"
	"github.com/smileynet/contactbook/internal/roster"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// Globals are flags shared by every command.
type Globals struct {
	NoColor bool `help:"Disable coloured output." name:"no-color"`
}

// CLI is the top-level command structure for contactbook.
type CLI struct {
	Globals

	Version    kong.VersionFlag `help:"Show version." short:"V"`
	Demo       DemoCmd          `cmd:"" default:"1" help:"Run the built-in sample session."`
	List       ListCmd          `cmd:"" help:"List the contacts in a roster."`
	Show       ShowCmd          `cmd:"" help:"Look up a contact by ID in a roster."`
	CheckPhone CheckPhoneCmd    `cmd:"" help:"Check whether a phone number is valid."`
}

// loadConfig loads layered config from user and project paths with env overrides.
func loadConfig(g *Globals) (*config.Config, error) {
	cfg, err := config.LoadLayered(
		os.ExpandEnv("$HOME/.config/contactbook/config.yaml"),
		".contactbook/config.yaml",
	)
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	if g != nil && g.NoColor {
		cfg.Display.Color = console.ColorNever
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newPrinter builds a console printer for w from config.
func newPrinter(w io.Writer, cfg *config.Config) *console.Printer {
	return console.New(console.Options{
		Writer:    w,
		Delimiter: cfg.Display.Delimiter,
		Color:     cfg.Display.Color,
	})
}

// rosterFS returns the roster filesystem: local dir first, embedded rosters second.
func rosterFS(cfg *config.Config) fs.FS {
	return contactbook.OverlayFS(cfg.Roster.Dir, contactbook.Rosters)
}

// DemoCmd runs the sample session: two contacts added, listed, and looked up.
type DemoCmd struct {
	SearchID int `help:"Contact ID to look up after listing." default:"1" name:"search-id"`
}

// Run executes the demo command.
func (d *DemoCmd) Run(g *Globals) error {
	cfg, err := loadConfig(g)
	if err != nil {
		return fmt.Errorf("demo: %w", err)
	}
	return d.run(newPrinter(os.Stdout, cfg))
}

// run builds the sample contacts and adds them, enabling testable wiring.
// A sample whose fields do not validate is reported and left out.
func (d *DemoCmd) run(p *console.Printer) error {
	dir := directory.New()

	samples := []struct {
		id    int
		name  string
		phone string
	}{
		{1, "Aadarsh", "9876543210"},
		{2, "Rahul", "9123456789"},
	}

	contacts := make([]contact.Contact, 0, len(samples))
	for _, s := range samples {
		c, err := contact.NewBuilder().
			ID(s.id).
			Name(s.name).
			PhoneNumber(s.phone).
			Build()
		if err != nil {
			if err := p.Report(err); err != nil {
				return fmt.Errorf("demo: %w", err)
			}
			continue
		}
		contacts = append(contacts, c)
	}

	for _, c := range contacts {
		if err := p.AddResult(dir.Add(c)); err != nil {
			return fmt.Errorf("demo: %w", err)
		}
	}

	p.Section("All Contacts:")
	p.Contacts(dir.Contacts())

	p.Section(fmt.Sprintf("Searching for contact with ID %d:", d.SearchID))
	p.Lookup(dir.SearchByID(d.SearchID))
	return nil
}

// ListCmd prints every contact in a roster.
type ListCmd struct {
	Roster string `help:"Roster file name (default from config)." placeholder:"NAME"`
	Strict bool   `help:"Skip roster entries with an invalid phone number."`
}

// Run executes the list command.
func (l *ListCmd) Run(g *Globals) error {
	cfg, err := loadConfig(g)
	if err != nil {
		return fmt.Errorf("list: %w", err)
	}
	return l.run(newPrinter(os.Stdout, cfg), rosterFS(cfg), rosterName(l.Roster, cfg))
}

// run loads the roster and prints the table, enabling testable wiring.
func (l *ListCmd) run(p *console.Printer, fsys fs.FS, name string) error {
	dir, err := loadDirectory(p, fsys, name, l.Strict)
	if err != nil {
		return fmt.Errorf("list: %w", err)
	}
	p.Section("All Contacts:")
	p.Contacts(dir.Contacts())
	return nil
}

// ShowCmd looks up one contact by ID.
type ShowCmd struct {
	ID     int    `arg:"" help:"Contact ID to look up."`
	Roster string `help:"Roster file name (default from config)." placeholder:"NAME"`
	Strict bool   `help:"Skip roster entries with an invalid phone number."`
}

// Run executes the show command.
func (s *ShowCmd) Run(g *Globals) error {
	cfg, err := loadConfig(g)
	if err != nil {
		return fmt.Errorf("show: %w", err)
	}
	return s.run(newPrinter(os.Stdout, cfg), rosterFS(cfg), rosterName(s.Roster, cfg))
}

// run loads the roster and prints the lookup result, enabling testable wiring.
func (s *ShowCmd) run(p *console.Printer, fsys fs.FS, name string) error {
	dir, err := loadDirectory(p, fsys, name, s.Strict)
	if err != nil {
		return fmt.Errorf("show: %w", err)
	}
	p.Section(fmt.Sprintf("Searching for contact with ID %d:", s.ID))
	p.Lookup(dir.SearchByID(s.ID))
	return nil
}

// CheckPhoneCmd validates a phone number without storing it.
type CheckPhoneCmd struct {
	Number string `arg:"" help:"Phone number to check."`
}

// Run executes the check-phone command.
func (c *CheckPhoneCmd) Run(g *Globals) error {
	cfg, err := loadConfig(g)
	if err != nil {
		return fmt.Errorf("check-phone: %w", err)
	}
	return c.run(newPrinter(os.Stdout, cfg))
}

func (c *CheckPhoneCmd) run(p *console.Printer) error {
	if err := contact.ValidatePhoneNumber(c.Number); err != nil {
		return p.Report(err)
	}
	p.Println("Valid phone number")
	return nil
}

// rosterName returns flag if set, otherwise the configured default roster.
func rosterName(flag string, cfg *config.Config) string {
	if flag != "" {
		return flag
	}
	return cfg.Roster.Default
}

// loadDirectory reads a roster and imports it into a fresh directory,
// printing each add outcome. With strict, entries with an invalid phone
// are skipped.
func loadDirectory(p *console.Printer, fsys fs.FS, name string, strict bool) (*directory.Directory, error) {
	r, err := roster.Load(fsys, name)
	if err != nil {
		return nil, err
	}
	dir := directory.New()
	apply := r.Apply
	if strict {
		apply = r.ApplyStrict
	}
	if _, err := apply(dir, p); err != nil {
		return nil, err
	}
	return dir, nil
}

// Exit codes.
const (
	exitSuccess = 0
	exitSetup   = 1
)

// exitCode maps an error to the appropriate exit code.
// Business-rule rejections never reach here; they are reported as output.
func exitCode(err error) int {
	if err == nil {
		return exitSuccess
	}
	return exitSetup
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("contactbook"),
		kong.Description("In-memory contact directory."),
		kong.Vars{"version": version + " " + commit + " " + date},
	)
	err := ctx.Run(&cli.Globals)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(exitCode(err))
	}
}
