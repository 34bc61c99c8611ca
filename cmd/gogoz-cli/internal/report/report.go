// Package report formats site content for the command line.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/nfrund/gogoz/internal/content"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Entry is one listed item.
type Entry struct {
	Section string `json:"section"`
	Title   string `json:"title"`
	Detail  string `json:"detail"`
}

// Entries flattens the listable parts of site.
func Entries(site *content.Site) []Entry {
	caser := cases.Title(language.Make(site.Lang))

	var out []Entry
	for _, n := range site.Nav {
		out = append(out, Entry{Section: "nav", Title: caser.String(n.Label), Detail: n.Anchor})
	}
	for _, s := range site.Services.Items {
		out = append(out, Entry{Section: "service", Title: caser.String(s.Title), Detail: s.Description})
	}
	for _, t := range site.Testimonials.Items {
		detail := t.Author
		if t.Role != "" {
			detail += ", " + t.Role
		}
		out = append(out, Entry{Section: "testimonial", Title: t.Quote, Detail: detail})
	}
	return out
}

// Table writes the entries as an aligned table.
func Table(w io.Writer, site *content.Site) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "SECTION\tTITLE\tDETAIL")
	fmt.Fprintln(tw, "-------\t-----\t------")
	for _, e := range Entries(site) {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", e.Section, truncate(e.Title, 40), truncate(e.Detail, 40))
	}
	return tw.Flush()
}

// JSON writes the entries as an indented JSON array.
func JSON(w io.Writer, site *content.Site) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(Entries(site))
}

// truncate shortens s to max runes, marking the cut with an ellipsis.
func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "…"
}
