package show

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/sidelist/pkg/app"
	"tableflip.dev/sidelist/pkg/printers"
)

// Show prints the lists, or one of them.
type Show struct {
	Service *app.Service
	// List limits the output to one list when >= 0.
	List      int
	ShowIndex bool
	JSON      bool
	Out       io.Writer
}

type jsonList struct {
	Name     string   `json:"name"`
	Expanded bool     `json:"expanded"`
	Items    []string `json:"items"`
}

func (n *Show) out() io.Writer {
	if n.Out == nil {
		return color.Output
	}
	return n.Out
}

func (n *Show) Do(ctx context.Context) error {
	if n.Service == nil {
		return fmt.Errorf("no sidebar to show")
	}

	if n.JSON {
		lists := n.Service.Lists()
		out := make([]jsonList, 0, len(lists))
		for i, l := range lists {
			if n.List >= 0 && i != n.List {
				continue
			}
			items := make([]string, 0, len(l.Items))
			for _, it := range l.Items {
				items = append(items, it.Content)
			}
			out = append(out, jsonList{Name: l.Name, Expanded: l.Expanded, Items: items})
		}
		b, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(n.out(), string(b))
		return err
	}

	v := n.Service.Render()
	pp := printers.PrettyPrint{ShowIndex: n.ShowIndex, Out: n.out()}
	if n.List >= 0 {
		for _, l := range v.Lists {
			if l.Index == n.List {
				pp.List(l)
			}
		}
		return nil
	}
	pp.View(v)
	return nil
}
