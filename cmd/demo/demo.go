package main

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"tableflip.dev/sidelist/pkg/app"
)

// demo lists, added to whatever is already stored.
var demo = []struct {
	name  string
	items []string
}{
	{"Groceries", []string{"oat milk", "eggs", "see [[Recipes|recipe book]]"}},
	{"Reading", []string{"[[Designing Data-Intensive Applications]]", "The Go Programming Language"}},
	{"Chores", []string{"water plants", "take out recycling"}},
}

func main() {
	ctx := context.Background()
	log, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}

	s, err := app.Load(ctx, nil, log, nil)
	if err != nil {
		panic(err)
	}
	defer s.Close()

	for _, l := range demo {
		i, err := s.AddList(ctx, l.name)
		if err != nil {
			panic(err)
		}
		for _, it := range l.items {
			if _, err := s.AddItem(ctx, i, it); err != nil {
				panic(err)
			}
		}
	}

	fmt.Print(s.Render().Rows(), " rows in ", s.WatchPath(), "\n")
}
