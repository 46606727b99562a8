package settings

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/sidelist/pkg/app"
	"tableflip.dev/sidelist/pkg/printers"
	"tableflip.dev/sidelist/pkg/settings"
)

// Get prints one option, or all of them when Key is empty.
type Get struct {
	Service *app.Service
	Key     string
	JSON    bool
	Out     io.Writer
}

func (n *Get) Do(ctx context.Context) error {
	w := n.Out
	if w == nil {
		w = color.Output
	}
	cur := n.Service.Current()

	if n.Key != "" {
		v, err := cur.Get(n.Key)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, v)
		return err
	}

	if n.JSON {
		b, err := json.MarshalIndent(cur, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(b))
		return err
	}

	pairs := make([][2]string, 0, len(settings.Keys()))
	for _, k := range settings.Keys() {
		v, _ := cur.Get(k)
		pairs = append(pairs, [2]string{k, v})
	}
	printers.KeyValues(w, pairs...)
	return nil
}

// Set changes one option and persists it. Changing filePath switches the
// sidebar to the new file.
type Set struct {
	Service *app.Service
	Key     string
	Value   string
	Out     io.Writer
}

func (n *Set) Do(ctx context.Context) error {
	next, err := n.Service.Current().Set(n.Key, n.Value)
	if err != nil {
		return err
	}
	if err := n.Service.UpdateSettings(ctx, next); err != nil {
		return err
	}
	w := n.Out
	if w == nil {
		w = color.Output
	}
	v, _ := next.Get(n.Key)
	_, err = fmt.Fprintf(w, "%s = %s\n", n.Key, v)
	return err
}
