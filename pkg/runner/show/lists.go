package show

import (
	"context"
	"fmt"

	"tableflip.dev/sidelist/pkg/printers"
)

// Lists prints a table of the lists without their items.
type Lists struct {
	Show
}

func (n *Lists) Do(ctx context.Context) error {
	if n.Service == nil {
		return fmt.Errorf("no sidebar to show")
	}
	if n.JSON {
		n.List = -1
		return n.Show.Do(ctx)
	}
	printers.ListTable(n.out(), n.Service.Lists())
	return nil
}
