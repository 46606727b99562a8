package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/sidelist/pkg/app"
	"tableflip.dev/sidelist/pkg/commands/options"
	"tableflip.dev/sidelist/pkg/dialog"
	"tableflip.dev/sidelist/pkg/printers"
	"tableflip.dev/sidelist/pkg/runner/show"
	"tableflip.dev/sidelist/pkg/store"
)

// sidebar is an open service plus what the command needs to tear it down.
type sidebar struct {
	*app.Service
	config store.Config
	dialog *dialog.Terminal
	close  func()
}

func openSidebar(cmd *cobra.Command, io *options.InteractiveOptions) (*sidebar, error) {
	log, err := logOpts.Logger()
	if err != nil {
		return nil, err
	}
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, err
	}
	svc, err := app.Load(ctx(cmd), cfg, log, printers.Notifier(cmd.ErrOrStderr()))
	if err != nil {
		return nil, err
	}

	d := &dialog.Terminal{}
	if io != nil {
		d.Yes = io.Yes
	}
	svc.Dialog = d
	return &sidebar{
		Service: svc,
		config:  cfg,
		dialog:  d,
		close: func() {
			svc.Close()
			_ = log.Sync()
		},
	}, nil
}

func ctx(cmd *cobra.Command) context.Context {
	if c := cmd.Context(); c != nil {
		return c
	}
	return context.Background()
}

// pickList resolves the list named by the first argument. With -i and no
// argument it asks the user to choose.
func (s *sidebar) pickList(cmd *cobra.Command, args []string, io *options.InteractiveOptions) (int, []string, error) {
	lists := s.Lists()
	if len(args) > 0 {
		i, err := options.ResolveList(lists, args[0])
		return i, args[1:], err
	}
	if io == nil || !io.Interactive {
		return -1, nil, errors.New("requires a list, by index or name")
	}
	choices := make([]dialog.Choice, 0, len(lists))
	for _, l := range lists {
		choices = append(choices, dialog.Choice{Name: l.Name, Detail: fmt.Sprintf("%d items", len(l.Items))})
	}
	i, ok, err := s.dialog.Select(ctx(cmd), "List", choices)
	if err != nil {
		return -1, nil, err
	}
	if !ok {
		return -1, nil, errors.New("no list chosen")
	}
	return i, nil, nil
}

// pickItem resolves the item named by the first argument, or asks with -i.
func (s *sidebar) pickItem(cmd *cobra.Command, list int, args []string, io *options.InteractiveOptions) (int, []string, error) {
	lists := s.Lists()
	if len(args) > 0 {
		i, err := options.ResolveItem(lists, list, args[0])
		return i, args[1:], err
	}
	if io == nil || !io.Interactive {
		return -1, nil, errors.New("requires an item index")
	}
	items := lists[list].Items
	choices := make([]dialog.Choice, 0, len(items))
	for _, it := range items {
		choices = append(choices, dialog.Choice{Name: it.Display()})
	}
	i, ok, err := s.dialog.Select(ctx(cmd), "Item", choices)
	if err != nil {
		return -1, nil, err
	}
	if !ok {
		return -1, nil, errors.New("no item chosen")
	}
	return i, nil, nil
}

// printList shows one list after a change, or all lists when list < 0.
func (s *sidebar) printList(cmd *cobra.Command, list int) error {
	r := show.Show{
		Service:   s.Service,
		List:      list,
		ShowIndex: true,
		JSON:      output.JSON,
		Out:       cmd.OutOrStdout(),
	}
	return r.Do(ctx(cmd))
}

// run opens the sidebar, calls fn and reports errors the way --json asks.
func run(cmd *cobra.Command, io *options.InteractiveOptions, fn func(s *sidebar) error) error {
	cmd.SilenceUsage = true
	output.Out = cmd.OutOrStdout()
	s, err := openSidebar(cmd, io)
	if err != nil {
		return output.HandleError(err)
	}
	defer s.close()
	return output.HandleError(fn(s))
}

func listCompletions(cmd *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	s, err := openSidebar(cmd, nil)
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	defer s.close()
	var names []string
	for _, l := range s.Lists() {
		if strings.HasPrefix(strings.ToLower(l.Name), strings.ToLower(toComplete)) {
			names = append(names, l.Name)
		}
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}
