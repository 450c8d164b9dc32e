package console

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title  lipgloss.Style
	header lipgloss.Style
	ok     lipgloss.Style
	warn   lipgloss.Style
}

// newStyles builds styles bound to r so colour detection follows the
// printer's writer rather than os.Stdout. Tabs pass through untouched
// since the table header is tab-delimited.
func newStyles(r *lipgloss.Renderer) styles {
	base := r.NewStyle().TabWidth(lipgloss.NoTabConversion)
	return styles{
		title: base.Bold(true),
		header: base.
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "4", Dark: "12"}),
		ok:   base.Foreground(lipgloss.AdaptiveColor{Light: "2", Dark: "10"}),
		warn: base.Foreground(lipgloss.AdaptiveColor{Light: "208", Dark: "208"}),
	}
}
