package info

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/fatih/color"

	"tableflip.dev/sidelist/pkg/app"
	"tableflip.dev/sidelist/pkg/printers"
	"tableflip.dev/sidelist/pkg/settings"
	"tableflip.dev/sidelist/pkg/store"
)

// Info describes where the lists are stored.
type Info struct {
	Config  store.Config
	Service *app.Service
	Out     io.Writer
}

func (n *Info) Do(ctx context.Context) error {
	w := n.Out
	if w == nil {
		w = color.Output
	}

	if override := os.Getenv("SIDELIST_CONFIG_PATH"); override != "" {
		_, _ = fmt.Fprintln(w, "SIDELIST_CONFIG_PATH found on env, using", override)
	} else {
		_, _ = fmt.Fprintln(w, "SIDELIST_CONFIG_PATH env var not set")
	}

	if n.Config == nil {
		var err error
		n.Config, err = store.LoadConfig()
		if err != nil {
			return err
		}
	}
	if n.Service == nil {
		return fmt.Errorf("failed to open the sidebar")
	}

	cfgFile := n.Config.ConfigFile()
	if cfgFile == "" {
		cfgFile = "(none)"
	}
	cur := n.Service.Current()
	pairs := [][2]string{
		{"Config file", cfgFile},
		{"Vault", n.Config.VaultPath()},
		{"Home", n.Config.HomePath()},
	}
	for _, k := range settings.Keys() {
		v, _ := cur.Get(k)
		pairs = append(pairs, [2]string{k, v})
	}

	path := cur.FilePath
	if abs := n.Service.WatchPath(); abs != "" {
		path = abs
	}
	f, err := n.Service.Guard.Vault().Lookup(ctx, cur.FilePath)
	switch {
	case err != nil:
		pairs = append(pairs, [2]string{"File", path + " (" + err.Error() + ")"})
	case f == nil:
		pairs = append(pairs, [2]string{"File", path + " (not created yet)"})
	default:
		pairs = append(pairs,
			[2]string{"File", path},
			[2]string{"Size", strconv.FormatInt(f.Size, 10) + " bytes"},
			[2]string{"Modified", f.ModTime.Format("2006-01-02 15:04:05")},
		)
	}

	lists := n.Service.Lists()
	pairs = append(pairs,
		[2]string{"Lists", strconv.Itoa(lists.Len())},
		[2]string{"Items", strconv.Itoa(lists.ItemCount())},
	)
	printers.KeyValues(w, pairs...)
	return nil
}
