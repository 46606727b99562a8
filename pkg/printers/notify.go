package printers

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/sidelist/pkg/store"
)

// Notifier prints save failures to w.
func Notifier(w io.Writer) store.Notifier {
	red := color.New(color.FgRed, color.Bold)
	return store.NotifierFunc(func(msg string) {
		_, _ = red.Fprint(w, "✗ ")
		_, _ = fmt.Fprintln(w, msg)
	})
}
