package printers

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"tableflip.dev/sidelist/pkg/app"
)

// PrettyPrint writes lists for a human reader.
type PrettyPrint struct {
	// ShowIndex prefixes headers and items with the index used to address
	// them on the command line.
	ShowIndex bool
	Out       io.Writer
}

var spacing = strings.Repeat(" ", len("00.00  "))

// DisableColorOffTTY turns color off when stdout is not a terminal.
func DisableColorOffTTY() {
	fd := os.Stdout.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		color.NoColor = true
	}
}

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out == nil {
		return color.Output
	}
	return pp.Out
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out(), "")
}

func (pp *PrettyPrint) Title(index int, title string, expanded bool, count int) {
	w := pp.out()
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)
	y := color.New(color.FgHiYellow, color.Faint)

	if pp.ShowIndex {
		id := fmt.Sprintf("%d", index)
		_, _ = y.Fprint(w, id+spacing[min(len(id), len(spacing)):])
	}
	marker := "▾ "
	if !expanded {
		marker = "▸ "
	}
	_, _ = c.Fprint(w, marker)
	_, _ = t.Fprint(w, title)

	switch count {
	case 1:
		_, _ = c.Fprintln(w, " - 1 item")
	default:
		_, _ = c.Fprintf(w, " - %d items\n", count)
	}
}

// List prints one rendered list. Collapsed lists print only their header.
func (pp *PrettyPrint) List(l app.ListView) {
	w := pp.out()
	pp.Title(l.Index, l.Name, l.Expanded, l.Count)
	if !l.Expanded {
		return
	}
	if len(l.Items) == 0 {
		f := color.New(color.Faint, color.Italic)
		if pp.ShowIndex {
			_, _ = f.Fprint(w, spacing)
		}
		_, _ = f.Fprint(w, " none\n\n")
		return
	}

	t := color.New()
	alt := color.New(color.Faint)
	link := color.New(color.FgCyan, color.Underline)
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)

	for _, it := range l.Items {
		if pp.ShowIndex {
			id := fmt.Sprintf("%d.%d", l.Index, it.Index)
			_, _ = y.Fprint(w, id+spacing[min(len(id), len(spacing)):])
		}
		body := t
		if it.Alternate {
			body = alt
		}
		_, _ = body.Fprint(w, "- ")
		if len(it.Links) > 0 {
			_, _ = link.Fprintln(w, it.Display)
		} else {
			_, _ = body.Fprintln(w, it.Display)
		}
		if it.Divider {
			_, _ = alt.Fprintln(w, "  ┈┈┈")
		}
	}
	_, _ = t.Fprintln(w, "")
}

// View prints every list in v.
func (pp *PrettyPrint) View(v app.View) {
	if len(v.Lists) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Fprint(pp.out(), "no lists\n")
		return
	}
	for _, l := range v.Lists {
		pp.List(l)
	}
}
