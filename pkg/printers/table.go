package printers

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/sidelist/pkg/collection"
)

// ListTable prints one row per list with its index, state and item count.
func ListTable(w io.Writer, c collection.Collection) {
	if w == nil {
		w = color.Output
	}
	table := uitable.New()
	table.MaxColWidth = 60
	table.AddRow("INDEX", "NAME", "EXPANDED", "ITEMS")
	for i, l := range c {
		table.AddRow(i, l.Name, l.Expanded, len(l.Items))
	}
	_, _ = fmt.Fprintln(w, table)
}

// KeyValues prints aligned key/value pairs.
func KeyValues(w io.Writer, pairs ...[2]string) {
	if w == nil {
		w = color.Output
	}
	table := uitable.New()
	table.Separator = "  "
	for _, p := range pairs {
		table.AddRow(p[0]+":", p[1])
	}
	_, _ = fmt.Fprintln(w, table)
}
